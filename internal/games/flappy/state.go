package flappy

import (
	"io"
	"slices"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flappy-arcade/internal/core"
)

// Phase is the session lifecycle state.
type Phase int

const (
	PhaseIdle     Phase = iota // Start screen, nothing simulated
	PhaseRunning               // Simulation advances every tick
	PhasePaused                // Frozen until resumed
	PhaseGameOver              // Frozen after a crash until restart or menu
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	case PhasePaused:
		return "paused"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Bird is the player's sprite. X never changes during a run.
type Bird struct {
	X        float64
	Y        float64
	Velocity float64 // Positive = falling
	Size     float64
}

// Rect returns the bird's square hitbox.
func (b Bird) Rect() core.Rect {
	return core.NewRect(b.X, b.Y, b.Size, b.Size)
}

// Tilt returns the drawing angle in degrees, clamped to [-30, 30].
func (b Bird) Tilt() float64 {
	return core.ClampF(b.Velocity*3, -30, 30)
}

// State is the authoritative mutable world.
// It owns every live obstacle and coin exclusively.
type State struct {
	Phase     Phase
	Bird      Bird
	Obstacles []Obstacle
	Coins     []Coin
	Score     int
	Level     int

	// Adopted from the current level row.
	Speed      float64
	Gap        float64
	Background string

	Width  float64
	Height float64
}

// Clone returns a deep copy of the state.
func (s State) Clone() State {
	s.Obstacles = slices.Clone(s.Obstacles)
	s.Coins = slices.Clone(s.Coins)
	return s
}

// Snapshot is a read-only view of the world handed to renderers.
type Snapshot struct {
	State
	Tilt      float64
	HighScore int
	Muted     bool
}

// GameState summarizes the snapshot for the platform layer.
func (s Snapshot) GameState() core.GameState {
	return core.GameState{
		Score:     s.Score,
		Level:     s.Level,
		HighScore: s.HighScore,
		Idle:      s.Phase == PhaseIdle,
		GameOver:  s.Phase == PhaseGameOver,
		Paused:    s.Phase == PhasePaused,
		Muted:     s.Muted,
	}
}

// orDiscard returns logger, or a logger that writes nowhere when nil.
func orDiscard(logger *log.Logger) *log.Logger {
	if logger == nil {
		return log.New(io.Discard)
	}
	return logger
}
