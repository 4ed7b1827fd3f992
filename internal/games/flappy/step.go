package flappy

import (
	"github.com/vovakirdan/flappy-arcade/internal/config"
)

// CrashCause tells which rule ended a run.
type CrashCause int

const (
	CrashNone     CrashCause = iota
	CrashPipe                // Bird overlapped a pipe rectangle
	CrashBoundary            // Bird left the world vertically
)

// String returns a human-readable name for the cause.
func (c CrashCause) String() string {
	switch c {
	case CrashPipe:
		return "pipe"
	case CrashBoundary:
		return "boundary"
	default:
		return "none"
	}
}

// Events summarizes what happened during one tick.
type Events struct {
	Jumped         bool // A jump impulse was applied since the previous tick
	PipesPassed    int
	CoinsCollected int
	LevelChanged   bool
	Crashed        bool
	Cause          CrashCause
}

// Rules are the fixed physical parameters of a simulation.
type Rules struct {
	Gravity     float64
	JumpImpulse float64
	BirdX       float64
	BirdStartY  float64
	BirdSize    float64
	PipeWidth   float64
	CoinSize    float64
	PipeValue   int
	CoinValue   int
	Width       float64
	Height      float64
}

// RulesFromConfig extracts the simulation rules from configuration.
func RulesFromConfig(cfg config.FlappyConfig) Rules {
	return Rules{
		Gravity:     cfg.Bird.Gravity,
		JumpImpulse: cfg.Bird.JumpImpulse,
		BirdX:       cfg.Bird.X,
		BirdStartY:  cfg.Bird.StartY,
		BirdSize:    cfg.Bird.Size,
		PipeWidth:   cfg.Pipes.Width,
		CoinSize:    cfg.Coins.Size,
		PipeValue:   cfg.Scoring.PipeValue,
		CoinValue:   cfg.Coins.Value,
		Width:       cfg.World.Width,
		Height:      cfg.World.Height,
	}
}

// Simulation advances a State one tick at a time.
type Simulation struct {
	rules  Rules
	gen    *Generator
	levels LevelTable
}

// NewSimulation creates a simulation with the given rules, generator and levels.
func NewSimulation(rules Rules, gen *Generator, levels LevelTable) *Simulation {
	return &Simulation{
		rules:  rules,
		gen:    gen,
		levels: levels,
	}
}

// Levels returns the level table.
func (sim *Simulation) Levels() LevelTable {
	return sim.levels
}

// Generator returns the obstacle generator.
func (sim *Simulation) Generator() *Generator {
	return sim.gen
}

// Reset puts s into the initial state of a new run: bird at the start
// position at rest, one fresh obstacle, no coins, score and level zero.
// The phase is left to the caller.
func (sim *Simulation) Reset(s *State) {
	s.Width = sim.rules.Width
	s.Height = sim.rules.Height
	s.Bird = Bird{
		X:    sim.rules.BirdX,
		Y:    sim.rules.BirdStartY,
		Size: sim.rules.BirdSize,
	}
	s.Score = 0
	sim.adoptLevel(s, 0)

	// The coin rolled for the opening obstacle is discarded.
	obs, _ := sim.gen.Generate(s.Gap, s.Width, s.Height)
	s.Obstacles = append(s.Obstacles[:0], obs)
	s.Coins = s.Coins[:0]
}

// Jump sets the bird's velocity to the jump impulse.
// Repeated jumps within a tick overwrite each other.
func (sim *Simulation) Jump(s *State) {
	s.Bird.Velocity = sim.rules.JumpImpulse
}

// Step advances s by one tick. It does nothing unless s is running.
//
// Order: integrate bird, scroll, retire and replace the oldest pipe,
// drop off-screen coins, pipe collisions, coin pickups, boundary.
// A crash moves s to PhaseGameOver.
func (sim *Simulation) Step(s *State) Events {
	var ev Events
	if s.Phase != PhaseRunning {
		return ev
	}

	// Bird movement
	s.Bird.Velocity += sim.rules.Gravity
	s.Bird.Y += s.Bird.Velocity

	// Scroll pipes and coins
	for i := range s.Obstacles {
		s.Obstacles[i].shift(-s.Speed)
	}
	for i := range s.Coins {
		s.Coins[i].X -= s.Speed
	}

	// Retire at most one pipe per tick; the replacement uses the gap
	// in effect before this pipe's point is counted.
	if len(s.Obstacles) > 0 && s.Obstacles[0].X() < -sim.rules.PipeWidth {
		s.Obstacles = append(s.Obstacles[:0], s.Obstacles[1:]...)
		obs, coin := sim.gen.Generate(s.Gap, s.Width, s.Height)
		s.Obstacles = append(s.Obstacles, obs)
		if coin != nil {
			s.Coins = append(s.Coins, *coin)
		}
		s.Score += sim.rules.PipeValue
		ev.PipesPassed++
		sim.updateLevel(s, &ev)
	}

	// Coins that scrolled fully off the left edge
	kept := s.Coins[:0]
	for _, c := range s.Coins {
		if c.X > -sim.rules.CoinSize {
			kept = append(kept, c)
		}
	}
	s.Coins = kept

	bird := s.Bird.Rect()

	// Pipe collision
	for _, o := range s.Obstacles {
		for _, r := range o.Rects() {
			if bird.Intersects(r) {
				sim.crash(s, &ev, CrashPipe)
				return ev
			}
		}
	}

	// Coin pickup
	kept = s.Coins[:0]
	for _, c := range s.Coins {
		if bird.Intersects(c.Rect) {
			s.Score += sim.rules.CoinValue
			ev.CoinsCollected++
			sim.updateLevel(s, &ev)
			continue
		}
		kept = append(kept, c)
	}
	s.Coins = kept

	// Boundary
	if s.Bird.Y < 0 || s.Bird.Y > s.Height {
		sim.crash(s, &ev, CrashBoundary)
	}

	return ev
}

// updateLevel re-selects the level row for the current score.
func (sim *Simulation) updateLevel(s *State, ev *Events) {
	idx := sim.levels.Select(s.Score)
	if idx != s.Level {
		ev.LevelChanged = true
	}
	sim.adoptLevel(s, idx)
}

// adoptLevel copies a level row's parameters into the state.
func (sim *Simulation) adoptLevel(s *State, idx int) {
	row := sim.levels.Row(idx)
	s.Level = idx
	s.Speed = row.PipeSpeed
	s.Gap = row.PipeGap
	s.Background = row.Background
}

func (sim *Simulation) crash(s *State, ev *Events, cause CrashCause) {
	s.Phase = PhaseGameOver
	ev.Crashed = true
	ev.Cause = cause
}
