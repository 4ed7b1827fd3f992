package config

import (
	_ "embed"
)

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

// DefaultFlappyConfig returns the default Flappy Bird configuration.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		World: FlappyWorld{
			Width:  400,
			Height: 600,
		},
		Bird: FlappyBird{
			X:           80,
			StartY:      300,
			Size:        35,
			Gravity:     0.5,
			JumpImpulse: -8,
		},
		Pipes: FlappyPipes{
			Width:          60,
			GapCenterMin:   150,
			GapCenterRange: 300,
		},
		Coins: FlappyCoins{
			SpawnChance: 0.3,
			Size:        15,
			Value:       5,
		},
		Scoring: FlappyScoring{
			PipeValue: 1,
		},
		Levels: []LevelRow{
			{Threshold: 0, PipeSpeed: 4, PipeGap: 160, Background: "#87CEEB"},  // Sky blue
			{Threshold: 5, PipeSpeed: 5, PipeGap: 140, Background: "#ADD8E6"},  // Light blue
			{Threshold: 10, PipeSpeed: 6, PipeGap: 120, Background: "#FFB6C1"}, // Light pink
			{Threshold: 15, PipeSpeed: 7, PipeGap: 100, Background: "#90EE90"}, // Light green
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  0.5,
		},
	}
}

// DefaultYAML returns the embedded default YAML document.
func DefaultYAML() []byte {
	return defaultFlappyYAML
}
