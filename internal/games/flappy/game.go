// Package flappy implements a Flappy Bird-style game.
// The player keeps a bird airborne through gaps in scrolling pipe pairs,
// picking up coins on the way. Difficulty rises with the score.
package flappy

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flappy-arcade/internal/config"
	"github.com/vovakirdan/flappy-arcade/internal/core"
	"github.com/vovakirdan/flappy-arcade/internal/registry"
	"github.com/vovakirdan/flappy-arcade/internal/storage"
)

// ID is the registry and score-history identifier of the game.
const ID = "flappy"

// Visual characters for terminal rendering
const (
	BirdChar      = '●'
	BirdBeakChar  = '▶'
	PipeChar      = '█'
	PipeCapTop    = '▀'
	PipeCapBottom = '▄'
	CoinChar      = '$'
	GroundChar    = '═'
)

// Game adapts a Session to the terminal platform's registry.Game contract.
type Game struct {
	session *Session
	world   config.FlappyWorld
	last    Events
}

// New creates a game on top of a fresh session.
// store may be nil to keep the high score in memory only.
func New(cfg config.FlappyConfig, store HighScoreStore, logger *log.Logger) *Game {
	rnd := rand.New(rand.NewSource(time.Now().UnixNano()))
	return &Game{
		session: NewSession(cfg, rnd, store, logger),
		world:   cfg.World,
	}
}

// Session exposes the underlying session.
func (g *Game) Session() *Session {
	return g.session
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Flappy Bird"
}

// Reset reseeds obstacle generation and returns to the start screen.
// The world size is fixed; the terminal size only affects rendering.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g.session.SetSource(rand.New(rand.NewSource(seed)))
	g.session.ReturnToMenu()
	g.last = Events{}
}

// Step maps the frame's actions to intents, then advances one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	for _, intent := range IntentsFor(in) {
		g.session.Apply(intent)
	}

	g.last = g.session.Tick()
	return core.StepResult{
		State: g.State(),
		Cues:  Cues(g.last),
	}
}

// IntentsFor translates platform actions into session intents.
// Menu and lifecycle actions come before the jump so that a restart
// and a flap in the same frame do not restart twice.
func IntentsFor(in core.InputFrame) []Intent {
	var intents []Intent
	if in.Has(core.ActionMute) {
		intents = append(intents, IntentToggleMute)
	}
	if in.Has(core.ActionBack) {
		intents = append(intents, IntentReturnToMenu)
	}
	if in.Has(core.ActionPause) {
		intents = append(intents, IntentTogglePause)
	}
	if in.Has(core.ActionConfirm) {
		intents = append(intents, IntentStartGame)
	}
	if in.Has(core.ActionRestart) {
		intents = append(intents, IntentRestartGame)
	}
	if in.Has(core.ActionJump) && !in.Has(core.ActionRestart) && !in.Has(core.ActionConfirm) {
		intents = append(intents, IntentFlap)
	}
	return intents
}

// Cues lists the sound cues for a tick's events.
func Cues(ev Events) []core.Cue {
	var cues []core.Cue
	if ev.Jumped {
		cues = append(cues, core.CueJump)
	}
	for i := 0; i < ev.PipesPassed; i++ {
		cues = append(cues, core.CuePoint)
	}
	for i := 0; i < ev.CoinsCollected; i++ {
		cues = append(cues, core.CueCoin)
	}
	if ev.LevelChanged {
		cues = append(cues, core.CueLevelUp)
	}
	if ev.Crashed {
		cues = append(cues, core.CueCrash)
	}
	return cues
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return g.session.Snapshot().GameState()
}

// viewport maps world coordinates to screen cells.
// Row 0 holds the HUD and the last row the ground.
type viewport struct {
	sx, sy float64
	top    int
	rows   int
	cols   int
}

func newViewport(world config.FlappyWorld, dst *core.Screen) viewport {
	rows := dst.Height() - 2
	return viewport{
		sx:   float64(dst.Width()) / world.Width,
		sy:   float64(rows) / world.Height,
		top:  1,
		rows: rows,
		cols: dst.Width(),
	}
}

// cells returns the cell rectangle covered by r, clipped to the playfield.
func (v viewport) cells(r core.Rect) (x, y, w, h int) {
	x0 := core.Clamp(int(math.Floor(r.X*v.sx)), 0, v.cols)
	x1 := core.Clamp(int(math.Ceil(r.Right()*v.sx)), 0, v.cols)
	y0 := core.Clamp(int(math.Floor(r.Y*v.sy)), 0, v.rows)
	y1 := core.Clamp(int(math.Ceil(r.Bottom()*v.sy)), 0, v.rows)
	return x0, v.top + y0, x1 - x0, y1 - y0
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if dst.Width() < 10 || dst.Height() < 6 {
		dst.DrawText(0, 0, "too small")
		return
	}

	snap := g.session.Snapshot()
	dst.SetBackground(snap.Background)
	vp := newViewport(g.world, dst)

	// Ground
	dst.DrawHLine(0, dst.Height()-1, dst.Width(), GroundChar, core.ColorOrange)

	if snap.Phase != PhaseIdle {
		for _, o := range snap.Obstacles {
			drawPipe(dst, vp, o)
		}
		for _, c := range snap.Coins {
			x, y, w, h := vp.cells(c.Rect)
			dst.FillRect(x, y, w, h, CoinChar, core.ColorBrightYellow)
		}
		drawBird(dst, vp, snap.Bird)
	}

	g.drawHUD(dst, snap)

	switch snap.Phase {
	case PhaseIdle:
		drawCenteredMessage(dst, "FLAPPY BIRD", "Space to start  |  Q to quit")
	case PhasePaused:
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	case PhaseGameOver:
		drawCenteredMessage(dst, "GAME OVER",
			fmt.Sprintf("Score: %d  Best: %d  |  Space to restart, B for menu", snap.Score, snap.HighScore))
	}
}

func (g *Game) drawHUD(dst *core.Screen, snap Snapshot) {
	hud := fmt.Sprintf(" Score: %d  Level: %d  Best: %d ", snap.Score, snap.Level+1, snap.HighScore)
	dst.DrawColoredText(1, 0, hud, core.ColorBrightWhite)
	if snap.Muted {
		dst.DrawColoredText(dst.Width()-8, 0, "[muted]", core.ColorGray)
	}
}

// drawPipe renders both rectangles of a pipe pair with caps facing the gap.
func drawPipe(dst *core.Screen, vp viewport, o Obstacle) {
	x, y, w, h := vp.cells(o.Upper)
	if h > 0 {
		dst.FillRect(x, y, w, h, PipeChar, core.ColorGreen)
		dst.DrawHLine(x, y+h-1, w, PipeCapTop, core.ColorBrightGreen)
	}

	x, y, w, h = vp.cells(o.Lower)
	if h > 0 {
		dst.FillRect(x, y, w, h, PipeChar, core.ColorGreen)
		dst.DrawHLine(x, y, w, PipeCapBottom, core.ColorBrightGreen)
	}
}

func drawBird(dst *core.Screen, vp viewport, b Bird) {
	x, y, w, h := vp.cells(b.Rect())
	dst.FillRect(x, y, w, h, BirdChar, core.ColorYellow)

	// Beak row follows the tilt: nose up while rising, down while falling.
	beakY := y + h/2
	switch tilt := b.Tilt(); {
	case tilt < -10:
		beakY = y
	case tilt > 10:
		beakY = y + h - 1
	}
	dst.SetColored(x+w-1, beakY, BirdBeakChar, core.ColorOrange)
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Min(core.Max(len([]rune(title)), len([]rune(subtitle)))+4, w)
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.FillRect(boxX, boxY, boxW, boxH, ' ', core.ColorDefault)
	dst.DrawBox(boxX, boxY, boxW, boxH)

	titleX := boxX + (boxW-len([]rune(title)))/2
	dst.DrawColoredText(titleX, boxY+1, title, core.ColorBrightWhite)

	subtitleX := boxX + (boxW-len([]rune(subtitle)))/2
	dst.DrawText(subtitleX, boxY+3, subtitle)
}

// envConfig returns the preloaded config, loading it only when none was given.
func envConfig(env registry.Env) (config.FlappyConfig, error) {
	if env.Config != nil {
		return *env.Config, nil
	}
	return config.Load(env.ConfigPath)
}

// Register the game with the registry
func init() {
	registry.Register(ID, "Flappy Bird", func(env registry.Env) (registry.Game, error) {
		cfg, err := envConfig(env)
		if err != nil {
			return nil, err
		}

		var store HighScoreStore
		if env.Store != nil {
			store = storage.NewHighScores(env.Store, storage.HighScoreKey)
		}
		return New(cfg, store, env.Logger), nil
	})
}
