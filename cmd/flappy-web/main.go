//go:build js && wasm

// flappy-web is the browser build. It draws on a canvas with Ebiten and
// keeps the high score in window.localStorage.
//
// Build:
//
//	GOOS=js GOARCH=wasm go build -o flappy.wasm ./cmd/flappy-web
package main

import (
	"math/rand"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flappy-arcade/internal/audio"
	"github.com/vovakirdan/flappy-arcade/internal/config"
	"github.com/vovakirdan/flappy-arcade/internal/games/flappy"
	"github.com/vovakirdan/flappy-arcade/internal/platform/gui"
	"github.com/vovakirdan/flappy-arcade/internal/storage"
)

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "flappy"})

	cfg, err := config.Load("")
	if err != nil {
		logger.Warn("falling back to built-in config", "err", err)
		cfg = config.DefaultFlappyConfig()
	}

	var kv storage.KeyValue
	if ls, err := storage.OpenLocalStorage(); err != nil {
		logger.Warn("localStorage unavailable, high score will not persist", "err", err)
		kv = storage.NewMemoryStore()
	} else {
		kv = ls
	}

	rnd := rand.New(rand.NewSource(time.Now().UnixNano()))
	session := flappy.NewSession(cfg, rnd, storage.NewHighScores(kv, storage.HighScoreKey), logger)

	sound := audio.NewManager(cfg.Audio, logger)
	if err := sound.Init(); err != nil {
		logger.Warn("audio unavailable", "err", err)
	}
	defer sound.Close()

	if err := gui.Run(gui.New(session, cfg, gui.Options{Sound: sound, Logger: logger}), 1, 60); err != nil {
		logger.Error("game stopped", "err", err)
	}
}
