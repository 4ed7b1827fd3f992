package flappy

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/flappy-arcade/internal/config"
	"github.com/vovakirdan/flappy-arcade/internal/core"
)

func TestGenerateGeometry(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	gen := NewGenerator(cfg, script(0.5, 0.9), nil)

	obs, coin := gen.Generate(160, 400, 600)

	assert.Equal(t, core.NewRect(400, 300, 60, 300), obs.Lower)
	assert.Equal(t, core.NewRect(400, 0, 60, 140), obs.Upper)
	assert.Equal(t, 160.0, obs.Gap)
	assert.Nil(t, coin, "roll 0.9 is above the coin chance")
}

func TestGenerateCoinCenteredInGap(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	gen := NewGenerator(cfg, script(0.5, 0.1), nil)

	_, coin := gen.Generate(160, 400, 600)

	require.NotNil(t, coin)
	assert.Equal(t, core.NewRect(422.5, 212.5, 15, 15), coin.Rect)

	cx, cy := coin.Center()
	assert.Equal(t, 430.0, cx, "centered on the pipe column")
	assert.Equal(t, 220.0, cy, "centered in the gap")
}

func TestGenerateClampsNegativeUpperHeight(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	gen := NewGenerator(cfg, script(0, 0.9), nil)

	obs, _ := gen.Generate(200, 400, 600)

	assert.Equal(t, 150.0, obs.Lower.Y)
	assert.Equal(t, 0.0, obs.Upper.H, "upper height is clamped to zero")
	assert.Equal(t, 1, gen.ClampedCount())
}

func TestGenerateRanges(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	gen := NewGenerator(cfg, rand.New(rand.NewSource(7)), nil)

	const draws = 2000
	coins := 0
	for i := 0; i < draws; i++ {
		obs, coin := gen.Generate(160, 400, 600)

		h := obs.Lower.Y
		assert.GreaterOrEqual(t, h, 150.0)
		assert.Less(t, h, 450.0)
		assert.InDelta(t, 600.0, obs.Lower.Bottom(), 1e-9, "lower pipe reaches the floor")
		assert.Equal(t, h-160, obs.Upper.Bottom())
		assert.Equal(t, 400.0, obs.X())

		if coin != nil {
			coins++
		}
	}

	rate := float64(coins) / draws
	assert.InDelta(t, 0.30, rate, 0.05, "coin spawn rate")
	assert.Zero(t, gen.ClampedCount())
}

func TestGenerateSameSeedSameSequence(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	a := NewGenerator(cfg, rand.New(rand.NewSource(99)), nil)
	b := NewGenerator(cfg, rand.New(rand.NewSource(99)), nil)

	for i := 0; i < 50; i++ {
		oa, ca := a.Generate(140, 400, 600)
		ob, cb := b.Generate(140, 400, 600)
		require.Equal(t, oa, ob)
		require.Equal(t, ca, cb)
	}
}
