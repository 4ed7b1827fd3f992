package gui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/flappy-arcade/internal/games/flappy"
)

// KeyState reports keys pressed since the previous update.
type KeyState interface {
	JustPressed(k ebiten.Key) bool
}

// Pointer reports a click or tap since the previous update.
type Pointer interface {
	JustTapped() bool
}

type ebitenInput struct{}

func (ebitenInput) JustPressed(k ebiten.Key) bool {
	return inpututil.IsKeyJustPressed(k)
}

func (ebitenInput) JustTapped() bool {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return true
	}
	return len(inpututil.AppendJustPressedTouchIDs(nil)) > 0
}

// Key bindings
var (
	flapKeys   = []ebiten.Key{ebiten.KeySpace, ebiten.KeyW, ebiten.KeyArrowUp}
	pauseKeys  = []ebiten.Key{ebiten.KeyP, ebiten.KeyEscape}
	menuKeys   = []ebiten.Key{ebiten.KeyB}
	muteKeys   = []ebiten.Key{ebiten.KeyM}
	startKeys  = []ebiten.Key{ebiten.KeyEnter}
	restartKey = []ebiten.Key{ebiten.KeyR}
)

func anyPressed(ks KeyState, keys []ebiten.Key) bool {
	for _, k := range keys {
		if ks.JustPressed(k) {
			return true
		}
	}
	return false
}

// intents maps this update's input to session intents.
// A click or tap behaves like the space bar.
func intents(ks KeyState, ptr Pointer) []flappy.Intent {
	var out []flappy.Intent
	if anyPressed(ks, muteKeys) {
		out = append(out, flappy.IntentToggleMute)
	}
	if anyPressed(ks, menuKeys) {
		out = append(out, flappy.IntentReturnToMenu)
	}
	if anyPressed(ks, pauseKeys) {
		out = append(out, flappy.IntentTogglePause)
	}
	switch {
	case anyPressed(ks, startKeys):
		out = append(out, flappy.IntentStartGame)
	case anyPressed(ks, restartKey):
		out = append(out, flappy.IntentRestartGame)
	case anyPressed(ks, flapKeys) || ptr.JustTapped():
		out = append(out, flappy.IntentFlap)
	}
	return out
}
