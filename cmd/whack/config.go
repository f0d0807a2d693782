package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/neon-whack/internal/config"
)

var flagDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration the game would use, as YAML.

Search order: --config, ~/.whack/config.yaml, ./configs/whack.yaml,
then the built-in defaults. Copy the output to one of these paths
and edit the keys you want to change. Command-line overrides such
as --fps are not included.

Examples:
  whack config
  whack config --defaults > ~/.whack/config.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in default document instead")
}

func runConfig(cmd *cobra.Command, args []string) {
	source, err := writeConfig(os.Stdout, flagConfig, flagDefaults)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "# source: %s\n", source)
}

// writeConfig writes the loaded configuration, or the embedded defaults,
// as YAML and reports where it came from.
func writeConfig(w io.Writer, path string, defaults bool) (config.Source, error) {
	if defaults {
		_, err := w.Write(config.DefaultYAML())
		return config.SourceEmbedded, err
	}

	cfg, source, err := config.LoadWhack(path)
	if err != nil {
		return source, fmt.Errorf("loading %s config: %w", source, err)
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		return source, fmt.Errorf("encoding config: %w", err)
	}
	_, err = w.Write(data)
	return source, err
}
