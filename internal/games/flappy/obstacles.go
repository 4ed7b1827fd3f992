package flappy

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flappy-arcade/internal/config"
	"github.com/vovakirdan/flappy-arcade/internal/core"
)

// RandomSource yields uniform values in [0, 1).
// *rand.Rand satisfies it; tests inject scripted sources.
type RandomSource interface {
	Float64() float64
}

// Obstacle is a pipe pair sharing one horizontal position.
//
// Lower spans from the gap line h down to the bottom of the world.
// Upper spans from the top of the world down to h-Gap.
type Obstacle struct {
	Lower core.Rect
	Upper core.Rect
	Gap   float64 // Gap size at creation; later level changes never resize it
}

// Rects returns both rectangles, lower first.
func (o Obstacle) Rects() [2]core.Rect {
	return [2]core.Rect{o.Lower, o.Upper}
}

// X returns the shared horizontal position of the pair.
func (o Obstacle) X() float64 {
	return o.Lower.X
}

// shift moves both rectangles horizontally.
func (o *Obstacle) shift(dx float64) {
	o.Lower = o.Lower.Translate(dx, 0)
	o.Upper = o.Upper.Translate(dx, 0)
}

// Coin is a bonus pickup centered in the gap of the pipe it spawned with.
// It scrolls and retires independently of that pipe.
type Coin struct {
	core.Rect
}

// Generator produces one obstacle (and maybe a coin) at a time.
type Generator struct {
	rnd          RandomSource
	pipeWidth    float64
	centerMin    float64
	centerRange  float64
	coinChance   float64
	coinSize     float64
	logger       *log.Logger
	clampedCount int
}

// NewGenerator creates a generator drawing from rnd.
func NewGenerator(cfg config.FlappyConfig, rnd RandomSource, logger *log.Logger) *Generator {
	return &Generator{
		rnd:         rnd,
		pipeWidth:   cfg.Pipes.Width,
		centerMin:   cfg.Pipes.GapCenterMin,
		centerRange: cfg.Pipes.GapCenterRange,
		coinChance:  cfg.Coins.SpawnChance,
		coinSize:    cfg.Coins.Size,
		logger:      orDiscard(logger),
	}
}

// SetSource replaces the random source, e.g. when a new seed is chosen.
func (g *Generator) SetSource(rnd RandomSource) {
	g.rnd = rnd
}

// Generate creates a pipe pair at the right edge of the world.
// The gap line h is drawn first, then the coin roll.
//
// When gap > h the upper rectangle would have negative height; it is
// clamped to zero and reported in the log.
func (g *Generator) Generate(gap, screenW, screenH float64) (Obstacle, *Coin) {
	h := g.rnd.Float64()*g.centerRange + g.centerMin

	upperH := h - gap
	if upperH < 0 {
		g.clampedCount++
		g.logger.Warn("degenerate obstacle clamped",
			"gap", gap,
			"gap_line", h,
			"height", upperH,
		)
		upperH = 0
	}

	obs := Obstacle{
		Lower: core.NewRect(screenW, h, g.pipeWidth, screenH-h),
		Upper: core.NewRect(screenW, 0, g.pipeWidth, upperH),
		Gap:   gap,
	}

	if g.rnd.Float64() >= g.coinChance {
		return obs, nil
	}

	coin := &Coin{Rect: core.NewRect(
		screenW+g.pipeWidth/2-g.coinSize/2,
		h-gap/2-g.coinSize/2,
		g.coinSize,
		g.coinSize,
	)}
	return obs, coin
}

// ClampedCount returns how many obstacles had their upper rectangle clamped.
func (g *Generator) ClampedCount() int {
	return g.clampedCount
}
