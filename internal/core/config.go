package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score     int  // Current score
	Level     int  // Zero-based difficulty level
	HighScore int  // Best score across sessions
	Idle      bool // Whether the start screen is showing
	GameOver  bool // Whether the game has ended
	Paused    bool // Whether the game is paused
	Muted     bool // Whether sound is muted
}

// Running reports whether the simulation is advancing.
func (s GameState) Running() bool {
	return !s.Idle && !s.GameOver && !s.Paused
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
	Cues  []Cue // Sound cues raised during the tick, in order
}
