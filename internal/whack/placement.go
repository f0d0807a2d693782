package whack

// Source is the random source used for mole placement.
// *math/rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
}

// Kind is the variant of the current mole.
type Kind int

const (
	KindGood Kind = iota // Blue, must be clicked
	KindBad              // Red, must be ignored
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindGood:
		return "good"
	case KindBad:
		return "bad"
	default:
		return "unknown"
	}
}

// PickNext returns a uniformly random cell index other than current, so
// the mole always visibly moves. A single-cell grid returns current.
// An out-of-range current picks among all cells.
func PickNext(g Grid, current int, rng Source) int {
	n := g.Len()
	if n <= 1 {
		return current
	}
	if current < 0 || current >= n {
		return rng.Intn(n)
	}
	next := rng.Intn(n - 1)
	if next >= current {
		next++
	}
	return next
}

// PickKind returns Good or Bad with equal probability, independent of
// previous picks.
func PickKind(rng Source) Kind {
	if rng.Intn(2) == 0 {
		return KindGood
	}
	return KindBad
}
