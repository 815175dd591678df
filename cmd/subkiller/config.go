package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/subkiller/internal/config"
)

var flagFormat string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration the game would use, after the search path
and --config are applied. The output is a valid config file.

Search order:
  --config <path>
  ~/.subkiller/config.yaml, ~/.subkiller/config.toml
  ./configs/subkiller.yaml, ./configs/subkiller.toml
  built-in defaults

Examples:
  subkiller config > ~/.subkiller/config.yaml
  subkiller config --format toml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagFormat, "format", "yaml", "Output format: yaml or toml")
}

func runConfig(_ *cobra.Command, _ []string) {
	format, err := config.ParseFormat(flagFormat)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Fprintf(os.Stderr, "# source: %s\n", source)
	if err := config.Encode(os.Stdout, cfg, format); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
