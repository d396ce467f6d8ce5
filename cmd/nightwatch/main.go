// nightwatch is a single-night survival game for the terminal: watch the
// cameras, mind the power and keep the door shut when something is there.
//
// Usage:
//
//	nightwatch               - Play (same as "nightwatch play")
//	nightwatch play          - Play the night
//	nightwatch config        - Print the effective night config as YAML
//
// Global flags:
//
//	--config <path>     - Night config YAML (default: search ~/.nightwatch, ./configs)
//	--seed <value>      - RNG seed for reproducible threat behavior
//	--log-file <path>   - Write logs to a file (default: discard)
//	--log-level <lvl>   - debug, info, warn, error (default: info)
//	--debug             - Enable the F1/F2 threat shortcuts
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig   string
	flagSeed     int64
	flagLogFile  string
	flagLogLevel string
	flagDebug    bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "nightwatch",
	Short: "Nightwatch - survive one night in the office",
	Long: `Nightwatch is a terminal survival game. Keep watch from 12 AM to
6 AM: check the cameras, close the door when something is standing in it
and use the flashlight to see what the dark is hiding. Every action costs
power. When the power runs out, so do you.

Available commands:
  play     - Play the night (default)
  config   - Print the effective night config

Examples:
  nightwatch
  nightwatch play --seed 42
  nightwatch --config ./hard-night.yaml
  nightwatch config > night.yaml`,
	Run: runPlay,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to night config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug shortcuts (F1/F2 move the threat)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(configCmd)
}
