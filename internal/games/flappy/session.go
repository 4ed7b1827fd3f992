package flappy

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flappy-arcade/internal/config"
)

// HighScoreStore persists the best score across processes.
type HighScoreStore interface {
	LoadHighScore() (int, error)
	SaveHighScore(score int) error
}

// Intent is a player request delivered by a frontend between ticks.
type Intent int

const (
	IntentNone         Intent = iota
	IntentJump                // Jump if running
	IntentFlap                // Space bar: start from idle, jump while running, restart after game over
	IntentTogglePause         // Running <-> Paused
	IntentStartGame           // Idle -> Running
	IntentRestartGame         // GameOver -> Running
	IntentReturnToMenu        // Running/Paused/GameOver -> Idle
	IntentToggleMute          // Flip the mute flag
)

// String returns a human-readable name for the intent.
func (i Intent) String() string {
	switch i {
	case IntentJump:
		return "jump"
	case IntentFlap:
		return "flap"
	case IntentTogglePause:
		return "toggle_pause"
	case IntentStartGame:
		return "start_game"
	case IntentRestartGame:
		return "restart_game"
	case IntentReturnToMenu:
		return "return_to_menu"
	case IntentToggleMute:
		return "toggle_mute"
	default:
		return "none"
	}
}

// Session owns the simulation state and its lifecycle transitions.
// It is not safe for concurrent use; frontends call it from one goroutine.
type Session struct {
	sim       *Simulation
	state     State
	highScore int
	muted     bool
	jumped    bool
	store     HighScoreStore
	logger    *log.Logger
}

// NewSession creates a session in the idle phase.
// The high score is read from store once; failures degrade to 0.
// store may be nil, in which case the high score lives in memory only.
func NewSession(cfg config.FlappyConfig, rnd RandomSource, store HighScoreStore, logger *log.Logger) *Session {
	logger = orDiscard(logger)
	gen := NewGenerator(cfg, rnd, logger)
	sim := NewSimulation(RulesFromConfig(cfg), gen, NewLevelTable(cfg.Levels))

	s := &Session{
		sim:    sim,
		store:  store,
		logger: logger,
	}
	sim.Reset(&s.state)
	s.state.Phase = PhaseIdle

	if store != nil {
		best, err := store.LoadHighScore()
		if err != nil {
			logger.Warn("could not load high score", "error", err)
			best = 0
		}
		s.highScore = best
	}

	return s
}

// SetSource replaces the random source used for future obstacles.
func (s *Session) SetSource(rnd RandomSource) {
	s.sim.Generator().SetSource(rnd)
}

// Phase returns the current lifecycle phase.
func (s *Session) Phase() Phase {
	return s.state.Phase
}

// HighScore returns the best score seen so far.
func (s *Session) HighScore() int {
	return s.highScore
}

// Muted reports whether sound is muted.
func (s *Session) Muted() bool {
	return s.muted
}

// StartGame begins a fresh run from the idle phase.
func (s *Session) StartGame() bool {
	if s.state.Phase != PhaseIdle {
		return false
	}
	s.begin()
	return true
}

// RestartGame begins a fresh run straight from game over.
func (s *Session) RestartGame() bool {
	if s.state.Phase != PhaseGameOver {
		return false
	}
	s.begin()
	return true
}

func (s *Session) begin() {
	from := s.state.Phase
	s.sim.Reset(&s.state)
	s.state.Phase = PhaseRunning
	s.jumped = false
	s.logger.Debug("session transition", "from", from, "to", PhaseRunning)
}

// TogglePause switches between running and paused.
func (s *Session) TogglePause() bool {
	from := s.state.Phase
	switch from {
	case PhaseRunning:
		s.state.Phase = PhasePaused
	case PhasePaused:
		s.state.Phase = PhaseRunning
	default:
		return false
	}
	s.logger.Debug("session transition", "from", from, "to", s.state.Phase)
	return true
}

// Jump applies the jump impulse while running.
func (s *Session) Jump() bool {
	if s.state.Phase != PhaseRunning {
		return false
	}
	s.sim.Jump(&s.state)
	s.jumped = true
	return true
}

// Flap is the single-button rule: start when idle, jump when running,
// restart after game over. It is ignored while paused.
func (s *Session) Flap() bool {
	switch s.state.Phase {
	case PhaseIdle:
		return s.StartGame()
	case PhaseRunning:
		return s.Jump()
	case PhaseGameOver:
		return s.RestartGame()
	default:
		return false
	}
}

// ReturnToMenu goes back to the start screen. Simulation fields are kept
// as they are; the next StartGame resets them.
func (s *Session) ReturnToMenu() bool {
	from := s.state.Phase
	if from == PhaseIdle {
		return false
	}
	s.state.Phase = PhaseIdle
	s.logger.Debug("session transition", "from", from, "to", PhaseIdle)
	return true
}

// ToggleMute flips the mute flag. It survives restarts.
func (s *Session) ToggleMute() bool {
	s.muted = !s.muted
	return true
}

// Apply dispatches an intent. It reports whether the intent had an effect.
func (s *Session) Apply(in Intent) bool {
	switch in {
	case IntentJump:
		return s.Jump()
	case IntentFlap:
		return s.Flap()
	case IntentTogglePause:
		return s.TogglePause()
	case IntentStartGame:
		return s.StartGame()
	case IntentRestartGame:
		return s.RestartGame()
	case IntentReturnToMenu:
		return s.ReturnToMenu()
	case IntentToggleMute:
		return s.ToggleMute()
	default:
		return false
	}
}

// Tick advances the simulation by one step. Outside the running phase
// it changes nothing.
func (s *Session) Tick() Events {
	prevLevel := s.state.Level
	ev := s.sim.Step(&s.state)
	ev.Jumped = s.jumped
	s.jumped = false

	if ev.LevelChanged {
		s.logger.Debug("level changed", "from", prevLevel+1, "to", s.state.Level+1, "score", s.state.Score)
	}
	if ev.Crashed {
		s.gameOver(ev.Cause)
	}
	return ev
}

// gameOver records the result of a finished run.
func (s *Session) gameOver(cause CrashCause) {
	s.logger.Info("game over",
		"score", s.state.Score,
		"level", s.state.Level+1,
		"cause", cause,
	)

	// Another session sharing the store may have raised the best meanwhile.
	if s.store != nil {
		if best, err := s.store.LoadHighScore(); err == nil && best > s.highScore {
			s.highScore = best
		}
	}

	if s.state.Score <= s.highScore {
		return
	}
	s.highScore = s.state.Score
	if s.store == nil {
		return
	}
	if err := s.store.SaveHighScore(s.highScore); err != nil {
		s.logger.Warn("could not save high score", "score", s.highScore, "error", err)
	}
}

// Snapshot returns a copy of the world for rendering.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		State:     s.state.Clone(),
		Tilt:      s.state.Bird.Tilt(),
		HighScore: s.highScore,
		Muted:     s.muted,
	}
}
