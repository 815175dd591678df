package main

import (
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/subkiller/internal/audio"
	"github.com/vovakirdan/subkiller/internal/config"
	"github.com/vovakirdan/subkiller/internal/games/subkiller"
	"github.com/vovakirdan/subkiller/internal/platform/tui"
	"github.com/vovakirdan/subkiller/internal/storage"
)

var (
	flagSound bool
	flagMouse bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Submarine Killer in this terminal",
	Long: `Start a game in this terminal.

Controls:
  Left/H/A       - Move the battleship left
  Right/L/D      - Move the battleship right
  Down/J/S/Space - Drop a depth charge
  P              - Pause
  Y/R, N         - Play again or quit after game over
  Q/Ctrl+C       - Quit

Click the game or press any key to begin. The game pauses when the
terminal loses focus.

Examples:
  subkiller play
  subkiller play --sound --mouse
  subkiller play --seed 42
  subkiller play --config ./my-subkiller.toml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	addPlayFlags(playCmd)
}

func addPlayFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&flagSound, "sound", false, "Play sound effects")
	cmd.Flags().BoolVar(&flagMouse, "mouse", true, "Click to begin (enables mouse reporting)")
}

func runPlay(_ *cobra.Command, _ []string) {
	logger, closeLog, err := newLogger("subkiller", io.Discard)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger.Debug("config loaded", "source", source)

	// Get terminal size early so the game exists before the first frame
	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	store, err := storage.Open()
	if err != nil {
		logger.Warn("could not open results ledger", "error", err)
		store = nil
	}

	var sound audio.Player = audio.Nop{}
	if flagSound {
		spk, spkErr := audio.NewSpeaker(1.0)
		if spkErr != nil {
			logger.Warn("sound disabled", "error", spkErr)
		} else {
			sound = spk
		}
	}

	opts := tui.Options{
		Config:    cfg,
		Store:     store,
		Sound:     sound,
		Logger:    logger,
		SessionID: uuid.NewString(),
		Player:    os.Getenv("USER"),
		Seed:      flagSeed,
		Width:     width,
		Height:    height,
	}

	runErr := tui.Run(subkiller.New(cfg), opts, flagMouse)

	// Close resources before potential exit
	if closeErr := sound.Close(); closeErr != nil {
		logger.Warn("could not close audio", "error", closeErr)
	}
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
