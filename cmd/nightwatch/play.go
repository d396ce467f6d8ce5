package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/nightwatch/internal/audio"
	"github.com/vovakirdan/nightwatch/internal/config"
	"github.com/vovakirdan/nightwatch/internal/core"
	"github.com/vovakirdan/nightwatch/internal/platform/tui"
	"github.com/vovakirdan/nightwatch/internal/storage"
)

// assetsDir is where cue assets are looked up, relative to the working
// directory. Missing assets play silently.
const assetsDir = "assets"

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the night",
	Long: `Start the game at the main menu.

Controls:
  Enter/S    - Start the night
  D          - Close/open the door
  C/Tab      - Raise/lower the camera monitor
  1 2 3      - Select a camera
  Space      - Flashlight
  H          - Night journal (menu)
  ?          - All keys
  Q/Ctrl+C   - Quit

The mouse works too: click the on-screen buttons.

Examples:
  nightwatch play
  nightwatch play --seed 42
  nightwatch play --config ./hard-night.yaml --log-file nightwatch.log`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	logger, closer, err := newLogger(flagLogFile, flagLogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot set up logging: %v\n", err)
		os.Exit(1)
	}
	defer closer.Close()

	cfg, source, err := config.LoadNightWithSource(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger.Info("config loaded", "source", source)

	bank := audio.NewBank(cfg.Audio)
	if silent := bank.ProbeDir(assetsDir, logger); silent > 0 {
		logger.Info("playing without some assets", "silent", silent)
	}

	// Nights are journaled for this session only.
	store, err := storage.Open()
	if err != nil {
		logger.Warn("night journal disabled", "err", err)
		store = nil
	} else {
		defer store.Close()
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rt := core.RuntimeConfig{
		ScreenW: width,
		ScreenH: height,
		Seed:    flagSeed,
		Debug:   flagDebug,
	}

	model := tui.NewModel(cfg, rt, tui.Deps{
		Bank:   bank,
		Store:  store,
		Logger: logger,
	})

	if err := tui.Run(model); err != nil {
		logger.Error("program failed", "err", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
