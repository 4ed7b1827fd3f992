package flappy

import (
	"strings"
	"testing"

	"github.com/vovakirdan/flappy-arcade/internal/config"
	"github.com/vovakirdan/flappy-arcade/internal/core"
	"github.com/vovakirdan/flappy-arcade/internal/registry"
	"github.com/vovakirdan/flappy-arcade/internal/storage"
)

func frame(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func TestGameRegistered(t *testing.T) {
	if !registry.Exists(ID) {
		t.Fatal("flappy is not registered")
	}

	g, err := registry.Create(ID, registry.Env{Store: storage.NewMemoryStore()})
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if g.ID() != ID {
		t.Errorf("ID() = %q, want %q", g.ID(), ID)
	}
	if g.Title() != "Flappy Bird" {
		t.Errorf("Title() = %q", g.Title())
	}
}

func TestGameUsesPreloadedConfig(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	cfg.Levels[0].Background = "#123456"

	// The missing file would fail if the factory loaded the config again.
	g, err := registry.Create(ID, registry.Env{Config: &cfg, ConfigPath: "/nonexistent/flappy.yaml"})
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}

	fg, ok := g.(*Game)
	if !ok {
		t.Fatalf("Create() returned %T", g)
	}
	if bg := fg.Session().Snapshot().Background; bg != "#123456" {
		t.Errorf("Background = %q, want the preloaded level colour", bg)
	}

	if _, err := registry.Create(ID, registry.Env{ConfigPath: "/nonexistent/flappy.yaml"}); err == nil {
		t.Error("Create() without a preloaded config should load ConfigPath and fail")
	}
}

func TestGameResetShowsStartScreen(t *testing.T) {
	g := New(config.DefaultFlappyConfig(), nil, nil)
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 42})

	state := g.State()
	if !state.Idle || state.GameOver || state.Paused {
		t.Errorf("after Reset: %+v, want idle", state)
	}
	if state.Running() {
		t.Error("idle game reports running")
	}
}

func TestGameStepActions(t *testing.T) {
	g := New(config.DefaultFlappyConfig(), nil, nil)
	g.Reset(core.RuntimeConfig{Seed: 1})

	res := g.Step(frame(core.ActionJump))
	if res.State.Idle {
		t.Fatal("jump should start the game from the start screen")
	}
	if !res.State.Running() {
		t.Errorf("state = %+v, want running", res.State)
	}

	res = g.Step(frame(core.ActionJump))
	if len(res.Cues) == 0 || res.Cues[0] != core.CueJump {
		t.Errorf("cues = %v, want jump first", res.Cues)
	}

	res = g.Step(frame(core.ActionPause))
	if !res.State.Paused {
		t.Error("pause action should pause")
	}

	res = g.Step(frame(core.ActionMute))
	if !res.State.Muted {
		t.Error("mute action should mute")
	}

	res = g.Step(frame(core.ActionBack))
	if !res.State.Idle {
		t.Error("back action should return to the start screen")
	}

	g.Step(frame(core.ActionConfirm))
	if g.Session().Phase() != PhaseRunning {
		t.Error("confirm should start the game")
	}
}

func TestGameSameFrameRestartAndJump(t *testing.T) {
	g := New(config.DefaultFlappyConfig(), nil, nil)
	g.Reset(core.RuntimeConfig{Seed: 5})
	g.Step(frame(core.ActionConfirm))

	for i := 0; i < 200 && !g.State().GameOver; i++ {
		g.Step(core.NewInputFrame())
	}
	if !g.State().GameOver {
		t.Fatal("bird should fall out of the world without input")
	}

	g.Step(frame(core.ActionRestart, core.ActionJump))
	if g.Session().Phase() != PhaseRunning {
		t.Fatalf("phase = %v, want running", g.Session().Phase())
	}
	if v := g.Session().Snapshot().Bird.Velocity; v != 0.5 {
		t.Errorf("velocity = %v, want 0.5 (restart without an extra jump)", v)
	}
}

func TestIntentsFor(t *testing.T) {
	tests := []struct {
		name string
		in   core.InputFrame
		want []Intent
	}{
		{"none", core.NewInputFrame(), nil},
		{"jump", frame(core.ActionJump), []Intent{IntentFlap}},
		{"pause", frame(core.ActionPause), []Intent{IntentTogglePause}},
		{"mute", frame(core.ActionMute), []Intent{IntentToggleMute}},
		{"back", frame(core.ActionBack), []Intent{IntentReturnToMenu}},
		{"confirm and jump", frame(core.ActionConfirm, core.ActionJump), []Intent{IntentStartGame}},
		{"restart", frame(core.ActionRestart), []Intent{IntentRestartGame}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IntentsFor(tt.in)
			if len(got) != len(tt.want) {
				t.Fatalf("IntentsFor() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("IntentsFor()[%d] = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestCues(t *testing.T) {
	ev := Events{Jumped: true, PipesPassed: 1, CoinsCollected: 2, LevelChanged: true, Crashed: true, Cause: CrashPipe}
	want := []core.Cue{core.CueJump, core.CuePoint, core.CueCoin, core.CueCoin, core.CueLevelUp, core.CueCrash}

	got := Cues(ev)
	if len(got) != len(want) {
		t.Fatalf("Cues() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Cues()[%d] = %v, want %v", i, got[i], want[i])
		}
	}

	if Cues(Events{}) != nil {
		t.Error("empty events should yield no cues")
	}
}

func TestGameRender(t *testing.T) {
	g := New(config.DefaultFlappyConfig(), nil, nil)
	g.Reset(core.RuntimeConfig{Seed: 9})
	screen := core.NewScreen(80, 24)

	g.Render(screen)
	out := screen.String()
	if !strings.Contains(out, "FLAPPY BIRD") {
		t.Errorf("start screen missing title:\n%s", out)
	}
	if screen.Background() != "#87CEEB" {
		t.Errorf("background = %q, want level 1 sky", screen.Background())
	}

	g.Step(frame(core.ActionJump))
	g.Render(screen)
	out = screen.String()
	for _, want := range []string{"Score: 0", "Level: 1", "Best: 0"} {
		if !strings.Contains(out, want) {
			t.Errorf("HUD missing %q", want)
		}
	}
	if !strings.ContainsRune(out, BirdChar) {
		t.Error("bird not drawn")
	}
	if !strings.ContainsRune(out, PipeChar) {
		t.Error("pipe not drawn")
	}
	if !strings.ContainsRune(screen.Row(23), GroundChar) {
		t.Error("ground not drawn on the last row")
	}
}

func TestGameRenderTinyScreen(t *testing.T) {
	g := New(config.DefaultFlappyConfig(), nil, nil)
	screen := core.NewScreen(4, 3)

	g.Render(screen) // must not panic
}
