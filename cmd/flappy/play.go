//go:build !js

package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/flappy-arcade/internal/audio"
	"github.com/vovakirdan/flappy-arcade/internal/config"
	"github.com/vovakirdan/flappy-arcade/internal/core"
	"github.com/vovakirdan/flappy-arcade/internal/games/flappy"
	"github.com/vovakirdan/flappy-arcade/internal/platform/tui"
	"github.com/vovakirdan/flappy-arcade/internal/registry"
)

var flagScreenshotDir string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start playing Flappy Bird in the terminal.

Controls:
  Space/W/Up  - Flap (start, jump, restart)
  Enter       - Start from the title screen
  P/Esc       - Pause
  R           - Restart (after game over)
  B           - Back to the title screen
  M           - Mute
  Ctrl+S      - Save a screenshot
  Q/Ctrl+C    - Quit

Examples:
  flappy play
  flappy play --seed 42
  flappy play --config ./my-flappy.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagScreenshotDir, "screenshots", "", "Directory for Ctrl+S screenshots (default: ~/.flappy/screenshots)")
}

func runPlay(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := fileLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	cfg := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = seed()

	gameCfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	game, err := registry.Create(flappy.ID, gameEnv(gameCfg, store, logger))
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	sound := startAudio(gameCfg.Audio, logger)
	defer sound.Close()

	opts := tui.Options{
		Sound:         sound,
		Logger:        logger,
		ScreenshotDir: flagScreenshotDir,
	}
	if store != nil {
		opts.Scores = store
	}

	logger.Info("starting terminal game", "seed", cfg.Seed, "fps", cfg.TickRate, "size", fmt.Sprintf("%dx%d", cfg.ScreenW, cfg.ScreenH))
	if err := tui.Run(game, cfg, opts); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

// startAudio opens the sound device unless --mute is set. A device
// failure is logged and the game runs silently.
func startAudio(cfg config.AudioConfig, logger *log.Logger) *audio.Manager {
	cfg.Enabled = cfg.Enabled && !flagMute
	sound := audio.NewManager(cfg, logger)
	if err := sound.Init(); err != nil {
		logger.Warn("audio unavailable", "err", err)
	}
	return sound
}
