package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/nightwatch/internal/config"
)

var flagValidate bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective night config",
	Long: `Load the night config the same way "play" does and print it as YAML.

Search order:
  1. --config <path>
  2. ~/.nightwatch/night.yaml
  3. ./configs/night.yaml
  4. built-in defaults

Values missing from a file keep their defaults.

Examples:
  nightwatch config
  nightwatch config > ~/.nightwatch/night.yaml
  nightwatch config --config ./hard-night.yaml --validate`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagValidate, "validate", false, "Only check the config, print nothing on success but its source")
}

func runConfig(_ *cobra.Command, _ []string) {
	cfg, source, err := config.LoadNightWithSource(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if flagValidate {
		fmt.Printf("ok: %s\n", source)
		return
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("# source: %s\n", source)
	os.Stdout.Write(data)
}
