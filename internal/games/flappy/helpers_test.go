package flappy

import (
	"github.com/vovakirdan/flappy-arcade/internal/config"
)

// scriptedSource replays fixed values in a loop.
type scriptedSource struct {
	vals []float64
	i    int
}

func script(vals ...float64) *scriptedSource {
	return &scriptedSource{vals: vals}
}

func (s *scriptedSource) Float64() float64 {
	v := s.vals[s.i%len(s.vals)]
	s.i++
	return v
}

// newTestSim builds a simulation on the default configuration.
func newTestSim(rnd RandomSource) (*Simulation, config.FlappyConfig) {
	cfg := config.DefaultFlappyConfig()
	gen := NewGenerator(cfg, rnd, nil)
	return NewSimulation(RulesFromConfig(cfg), gen, NewLevelTable(cfg.Levels)), cfg
}

// runningState returns a freshly reset state in the running phase.
func runningState(sim *Simulation) State {
	var s State
	sim.Reset(&s)
	s.Phase = PhaseRunning
	return s
}
