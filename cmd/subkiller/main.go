// subkiller is the Submarine Killer arcade game for the terminal.
//
// Usage:
//
//	subkiller                 - Play locally (same as "subkiller play")
//	subkiller play            - Play locally
//	subkiller serve           - Start SSH server for remote play
//	subkiller config          - Print the effective configuration
//
// Global flags:
//
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--config <path>      - Use a custom YAML or TOML config
//	--log-file <path>    - Write logs to a file
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagSeed     int64
	flagConfig   string
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "subkiller",
	Short: "Submarine Killer - sink the submarine with depth charges",
	Long: `Submarine Killer is a terminal arcade game: steer the battleship,
drop depth charges and sink the submarine cruising below.

Available commands:
  play     - Play in this terminal (default)
  serve    - Start SSH server for remote play
  config   - Print the effective configuration

Examples:
  subkiller
  subkiller play --sound
  subkiller serve --ssh :2222 --http :8080
  subkiller config --format toml`,
	Run: runPlay,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config (YAML or TOML)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	addPlayFlags(rootCmd)

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds the logger for a command. Logs go to --log-file when
// set, otherwise to fallback. The returned func closes the log file.
func newLogger(prefix string, fallback io.Writer) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(strings.ToLower(flagLogLevel))
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	out, closeFn := fallback, func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		out, closeFn = f, func() { f.Close() }
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
	return logger, closeFn, nil
}
