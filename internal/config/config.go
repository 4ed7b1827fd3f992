// Package config provides YAML-based game configuration loading
// for the flappy arcade.
package config

// FlappyConfig contains all configuration for the Flappy Bird game.
type FlappyConfig struct {
	World   FlappyWorld   `yaml:"world"`
	Bird    FlappyBird    `yaml:"bird"`
	Pipes   FlappyPipes   `yaml:"pipes"`
	Coins   FlappyCoins   `yaml:"coins"`
	Scoring FlappyScoring `yaml:"scoring"`
	Levels  []LevelRow    `yaml:"levels"`
	Audio   AudioConfig   `yaml:"audio"`
}

// FlappyWorld defines the logical playfield size in world units.
// Frontends scale this to whatever surface they draw on.
type FlappyWorld struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// FlappyBird defines the bird's hitbox and kinematics.
type FlappyBird struct {
	X           float64 `yaml:"x"`
	StartY      float64 `yaml:"start_y"`
	Size        float64 `yaml:"size"`
	Gravity     float64 `yaml:"gravity"`      // Added to velocity every tick
	JumpImpulse float64 `yaml:"jump_impulse"` // Velocity set by a jump (negative = up)
}

// FlappyPipes defines obstacle geometry.
type FlappyPipes struct {
	Width          float64 `yaml:"width"`
	GapCenterMin   float64 `yaml:"gap_center_min"`   // Lowest value the gap reference line can take
	GapCenterRange float64 `yaml:"gap_center_range"` // Width of the uniform draw above GapCenterMin
}

// FlappyCoins defines bonus coin parameters.
type FlappyCoins struct {
	SpawnChance float64 `yaml:"spawn_chance"`
	Size        float64 `yaml:"size"`
	Value       int     `yaml:"value"`
}

// FlappyScoring defines points awarded outside of coins.
type FlappyScoring struct {
	PipeValue int `yaml:"pipe_value"`
}

// LevelRow is one difficulty tier, selected once the score reaches Threshold.
type LevelRow struct {
	Threshold  int     `yaml:"threshold"`
	PipeSpeed  float64 `yaml:"pipe_speed"`
	PipeGap    float64 `yaml:"pipe_gap"`
	Background string  `yaml:"background"`
}

// AudioConfig defines sound output settings.
type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"` // 0.0 - 1.0
}
