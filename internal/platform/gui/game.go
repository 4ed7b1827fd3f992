// Package gui runs the game in a desktop window or a browser canvas
// using Ebiten. The world is drawn at its logical size and Ebiten
// scales it to the window.
package gui

import (
	"fmt"
	"image/color"
	"io"
	"math"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/vovakirdan/flappy-arcade/internal/config"
	"github.com/vovakirdan/flappy-arcade/internal/core"
	"github.com/vovakirdan/flappy-arcade/internal/games/flappy"
)

// Sounder receives the game state and cues after every tick.
type Sounder interface {
	Sync(state core.GameState, cues []core.Cue)
}

// ScoreRecorder stores finished runs.
type ScoreRecorder interface {
	SaveScore(gameID string, score, level int) (int64, error)
}

// Colors for rendering
var (
	colorPipe      = color.RGBA{34, 139, 34, 255}
	colorPipeCap   = color.RGBA{0, 100, 0, 255}
	colorBird      = color.RGBA{255, 215, 0, 255}
	colorBirdEye   = color.RGBA{20, 20, 20, 255}
	colorBeak      = color.RGBA{255, 140, 0, 255}
	colorCoin      = color.RGBA{255, 223, 0, 255}
	colorOverlay   = color.RGBA{0, 0, 0, 140}
	colorFallbackB = color.RGBA{135, 206, 235, 255}
)

// Game implements ebiten.Game on top of a flappy.Session.
type Game struct {
	session  *flappy.Session
	world    config.FlappyWorld
	sound    Sounder
	scores   ScoreRecorder
	logger   *log.Logger
	keys     KeyState
	pointer  Pointer
	birdImg  *ebiten.Image
	recorded bool // Whether the current game over was saved
}

// Options configures optional collaborators. Nil fields are ignored.
type Options struct {
	Sound  Sounder
	Scores ScoreRecorder
	Logger *log.Logger
}

// New creates an Ebiten game driving session.
func New(session *flappy.Session, cfg config.FlappyConfig, opts Options) *Game {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Game{
		session: session,
		world:   cfg.World,
		sound:   opts.Sound,
		scores:  opts.Scores,
		logger:  logger,
		keys:    ebitenInput{},
		pointer: ebitenInput{},
	}
}

// Update applies input and advances one tick.
// Implements ebiten.Game interface.
func (g *Game) Update() error {
	g.advance(intents(g.keys, g.pointer))
	return nil
}

// advance runs one tick with the given intents and notifies collaborators.
func (g *Game) advance(in []flappy.Intent) flappy.Events {
	for _, i := range in {
		g.session.Apply(i)
	}
	ev := g.session.Tick()
	snap := g.session.Snapshot()
	state := snap.GameState()

	if g.sound != nil {
		g.sound.Sync(state, flappy.Cues(ev))
	}

	switch {
	case state.GameOver && !g.recorded:
		g.recordScore(snap)
		g.recorded = true
	case !state.GameOver:
		g.recorded = false
	}
	return ev
}

func (g *Game) recordScore(snap flappy.Snapshot) {
	if g.scores == nil || snap.Score <= 0 {
		return
	}
	if _, err := g.scores.SaveScore(flappy.ID, snap.Score, snap.Level+1); err != nil {
		g.logger.Warn("could not record score", "score", snap.Score, "error", err)
	}
}

// Layout returns the logical world size; Ebiten letterboxes it into the window.
// Implements ebiten.Game interface.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return int(g.world.Width), int(g.world.Height)
}

// Draw renders the current snapshot.
// Implements ebiten.Game interface.
func (g *Game) Draw(screen *ebiten.Image) {
	snap := g.session.Snapshot()

	screen.Fill(backgroundColor(snap.Background))

	if snap.Phase != flappy.PhaseIdle {
		for _, o := range snap.Obstacles {
			drawPipe(screen, o)
		}
		for _, c := range snap.Coins {
			cx, cy := c.Center()
			ebitenutil.DrawCircle(screen, cx, cy, c.W/2, colorCoin)
		}
		g.drawBird(screen, snap.Bird)
	}

	ebitenutil.DebugPrintAt(screen,
		fmt.Sprintf("Score: %d\nLevel: %d\nHigh Score: %d", snap.Score, snap.Level+1, snap.HighScore), 10, 10)
	if snap.Muted {
		ebitenutil.DebugPrintAt(screen, "muted (M)", int(g.world.Width)-70, 10)
	}

	switch snap.Phase {
	case flappy.PhaseIdle:
		g.drawOverlay(screen, "FLAPPY BIRD", "Space or click to start")
	case flappy.PhasePaused:
		g.drawOverlay(screen, "PAUSED", "P to resume")
	case flappy.PhaseGameOver:
		g.drawOverlay(screen, "GAME OVER",
			fmt.Sprintf("Score: %d  Best: %d\nSpace to restart, B for menu", snap.Score, snap.HighScore))
	}
}

func drawPipe(screen *ebiten.Image, o flappy.Obstacle) {
	for _, r := range o.Rects() {
		if r.H <= 0 {
			continue
		}
		ebitenutil.DrawRect(screen, r.X, r.Y, r.W, r.H, colorPipe)
	}

	// Caps facing the gap
	const capH = 12
	if o.Upper.H > 0 {
		ebitenutil.DrawRect(screen, o.Upper.X-3, o.Upper.Bottom()-capH, o.Upper.W+6, capH, colorPipeCap)
	}
	ebitenutil.DrawRect(screen, o.Lower.X-3, o.Lower.Y, o.Lower.W+6, capH, colorPipeCap)
}

// drawBird draws the bird sprite rotated by its tilt around its center.
func (g *Game) drawBird(screen *ebiten.Image, b flappy.Bird) {
	size := int(b.Size)
	if g.birdImg == nil || g.birdImg.Bounds().Dx() != size {
		g.birdImg = newBirdImage(size)
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-b.Size/2, -b.Size/2)
	op.GeoM.Rotate(b.Tilt() * math.Pi / 180)
	op.GeoM.Translate(b.X+b.Size/2, b.Y+b.Size/2)
	screen.DrawImage(g.birdImg, op)
}

func newBirdImage(size int) *ebiten.Image {
	img := ebiten.NewImage(size, size)
	img.Fill(colorBird)
	s := float64(size)
	ebitenutil.DrawRect(img, s*0.6, s*0.2, s*0.2, s*0.2, colorBirdEye)
	ebitenutil.DrawRect(img, s*0.8, s*0.5, s*0.2, s*0.15, colorBeak)
	return img
}

func (g *Game) drawOverlay(screen *ebiten.Image, title, subtitle string) {
	w, h := g.world.Width, g.world.Height
	ebitenutil.DrawRect(screen, 0, h/2-60, w, 120, colorOverlay)
	ebitenutil.DebugPrintAt(screen, title, int(w/2)-len(title)*3, int(h/2)-40)
	ebitenutil.DebugPrintAt(screen, subtitle, int(w/2)-90, int(h/2)-10)
}

// backgroundColor decodes a level's hex colour.
func backgroundColor(hex string) color.Color {
	rgb, err := core.ParseHexColor(hex)
	if err != nil {
		return colorFallbackB
	}
	return color.RGBA{rgb.R, rgb.G, rgb.B, 255}
}

// Run opens a window and plays until it is closed.
func Run(g *Game, scale float64, tps int) error {
	ebiten.SetWindowSize(int(g.world.Width*scale), int(g.world.Height*scale))
	ebiten.SetWindowTitle("Flappy Bird")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if tps > 0 {
		ebiten.SetTPS(tps)
	}
	return ebiten.RunGame(g)
}
