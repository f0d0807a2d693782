package whack

import (
	"fmt"
	"math"

	"github.com/vovakirdan/neon-whack/internal/config"
)

// Curve maps the score to the relocation interval. The interval shrinks
// linearly from StartMS to MinMS and stays at MinMS from MaxScore on.
type Curve struct {
	StartMS  int64
	MinMS    int64
	MaxScore int
}

// CurveFromConfig builds the curve from the timing constants.
func CurveFromConfig(cfg config.TimingConfig) Curve {
	return Curve{
		StartMS:  int64(cfg.StartIntervalMS),
		MinMS:    int64(cfg.MinIntervalMS),
		MaxScore: cfg.MaxDifficultyScore,
	}
}

// Validate reports whether the curve is well formed.
func (c Curve) Validate() error {
	if c.MinMS <= 0 || c.MinMS > c.StartMS || c.MaxScore <= 0 {
		return fmt.Errorf("whack: bad difficulty curve start=%d min=%d max_score=%d", c.StartMS, c.MinMS, c.MaxScore)
	}
	return nil
}

// Progress returns how far along the curve the score is, in [0, 1].
func (c Curve) Progress(score int) float64 {
	if c.MaxScore <= 0 {
		return 1
	}
	return clampF(float64(score)/float64(c.MaxScore), 0, 1)
}

// IntervalForScore returns the relocation interval in milliseconds,
// rounded down: start - (start - min) * progress.
func (c Curve) IntervalForScore(score int) int64 {
	span := float64(c.StartMS - c.MinMS)
	interval := int64(math.Floor(float64(c.StartMS) - span*c.Progress(score)))
	// Floating point can land one below MinMS at progress 1.
	return max(interval, c.MinMS)
}

func clampF(val, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, val))
}
