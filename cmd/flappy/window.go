//go:build !js

package main

import (
	"fmt"
	"math/rand"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flappy-arcade/internal/config"
	"github.com/vovakirdan/flappy-arcade/internal/games/flappy"
	"github.com/vovakirdan/flappy-arcade/internal/platform/gui"
	"github.com/vovakirdan/flappy-arcade/internal/storage"
)

var flagScale float64

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open a window and play Flappy Bird with the mouse or keyboard.

Controls:
  Space/W/Up/Click  - Flap (start, jump, restart)
  Enter             - Start from the title screen
  P/Esc             - Pause
  R                 - Restart (after game over)
  B                 - Back to the title screen
  M                 - Mute

Examples:
  flappy window
  flappy window --scale 1.5 --seed 7`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func init() {
	windowCmd.Flags().Float64Var(&flagScale, "scale", 1, "Window scale factor")
}

func runWindow(_ *cobra.Command, _ []string) error {
	logger, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	store := openStore(logger)
	var kv storage.KeyValue = storage.NewMemoryStore()
	if store != nil {
		defer store.Close()
		kv = store
	}

	s := seed()
	session := flappy.NewSession(cfg, rand.New(rand.NewSource(s)), storage.NewHighScores(kv, storage.HighScoreKey), logger)

	sound := startAudio(cfg.Audio, logger)
	defer sound.Close()

	opts := gui.Options{Sound: sound, Logger: logger}
	if store != nil {
		opts.Scores = store
	}

	logger.Info("opening window", "seed", s, "scale", flagScale)
	if err := gui.Run(gui.New(session, cfg, opts), flagScale, flagFPS); err != nil {
		return fmt.Errorf("running window: %w", err)
	}
	return nil
}
