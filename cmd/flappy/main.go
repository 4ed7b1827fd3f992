//go:build !js

// flappy plays Flappy Bird in the terminal, in a desktop window, or over SSH.
//
// Usage:
//
//	flappy play              - Play in the terminal
//	flappy window            - Play in a desktop window
//	flappy serve             - Start SSH server for remote play
//	flappy scores            - Show the score history
//	flappy reset-scores      - Forget the score history and the high score
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--db <path>          - Set database path (default: ~/.flappy/flappy.db)
//	--config <path>      - Load a custom game config YAML
//	--log-level <level>  - debug, info, warn or error
//	--mute               - Do not open the audio device
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/flappy-arcade/internal/config"
	"github.com/vovakirdan/flappy-arcade/internal/registry"
	"github.com/vovakirdan/flappy-arcade/internal/storage"

	// Import the game to register it
	_ "github.com/vovakirdan/flappy-arcade/internal/games/flappy"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogLevel string
	flagMute     bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flappy",
	Short: "Flappy Bird for the terminal, the desktop and SSH",
	Long: `Flappy Bird with levels, coins and a persistent high score.

Available commands:
  play          - Play in the terminal
  window        - Play in a desktop window
  serve         - Start SSH server for remote play
  scores        - View the score history
  reset-scores  - Clear the score history and the high score

Examples:
  flappy play
  flappy play --seed 42
  flappy window --scale 1.5
  flappy serve --ssh :2222
  flappy scores`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.flappy/flappy.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVar(&flagMute, "mute", false, "Disable audio output")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(resetScoresCmd)
}

// newLogger builds the process logger writing to w.
func newLogger(w io.Writer) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
		Prefix:          "flappy",
		Level:           level,
	})
	return logger, nil
}

// fileLogger logs next to the database so the terminal UI stays clean.
// The returned closer must be called on exit.
func fileLogger() (*log.Logger, func(), error) {
	path := filepath.Join(filepath.Dir(storage.ExpandPath(flagDBPath)), "flappy.log")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	logger, err := newLogger(f)
	if err != nil {
		f.Close()
		return nil, nil, err
	}
	return logger, func() { f.Close() }, nil
}

// seed returns the --seed value, or the clock when it is zero.
func seed() int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return time.Now().UnixNano()
}

// openStore opens the score database. A failure is logged and play
// continues with in-memory scores.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "err", err)
		return nil
	}
	return store
}

// gameEnv is the dependency set handed to the game factory.
// cfg is the config the caller already loaded, so both agree on it.
func gameEnv(cfg config.FlappyConfig, store *storage.Store, logger *log.Logger) registry.Env {
	env := registry.Env{Config: &cfg, ConfigPath: flagConfig, Logger: logger}
	if store != nil {
		env.Store = store
	}
	return env
}
