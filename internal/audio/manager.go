// Package audio plays the game's background music and sound effects.
// Games raise core.Cue values; the manager turns them into beep streams
// mixed onto the speaker.
package audio

import (
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/flappy-arcade/internal/config"
	"github.com/vovakirdan/flappy-arcade/internal/core"
)

const sampleRate = beep.SampleRate(44100)

// Output is the audio device. The speaker package implements it in
// production; tests substitute a recorder.
type Output interface {
	Init(sr beep.SampleRate, bufferSize int) error
	Play(s beep.Streamer)
	Lock()
	Unlock()
	Close()
}

type speakerOutput struct{}

func (speakerOutput) Init(sr beep.SampleRate, bufferSize int) error {
	return speaker.Init(sr, bufferSize)
}

func (speakerOutput) Play(s beep.Streamer) { speaker.Play(s) }
func (speakerOutput) Lock()                { speaker.Lock() }
func (speakerOutput) Unlock()              { speaker.Unlock() }
func (speakerOutput) Close()               { speaker.Close() }

// Manager keeps the music in step with the game and plays cue effects.
// Music plays only while a run is in progress, not paused and not muted.
type Manager struct {
	mu          sync.Mutex
	cfg         config.AudioConfig
	out         Output
	logger      *log.Logger
	mixer       *beep.Mixer
	music       *beep.Ctrl
	theme       *melody
	initialized bool
}

// NewManager creates a manager that will play on the system speaker.
func NewManager(cfg config.AudioConfig, logger *log.Logger) *Manager {
	return NewManagerWithOutput(cfg, speakerOutput{}, logger)
}

// NewManagerWithOutput creates a manager on a custom output.
func NewManagerWithOutput(cfg config.AudioConfig, out Output, logger *log.Logger) *Manager {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	th := newMelody(sampleRate, theme)
	return &Manager{
		cfg:    cfg,
		out:    out,
		logger: logger,
		mixer:  &beep.Mixer{},
		theme:  th,
		music:  &beep.Ctrl{Streamer: withVolume(th, cfg.Volume*0.4), Paused: true},
	}
}

// Init opens the audio device and starts the mixer.
// When audio is disabled it does nothing. A device failure is returned;
// callers may keep running silently.
func (m *Manager) Init() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized || !m.cfg.Enabled {
		return nil
	}

	if err := m.out.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}

	m.mixer.Add(m.music)
	m.out.Play(m.mixer)
	m.initialized = true
	m.logger.Debug("audio initialized", "sample_rate", int(sampleRate), "volume", m.cfg.Volume)
	return nil
}

// Enabled reports whether the device is open.
func (m *Manager) Enabled() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.initialized
}

// Sync updates the music for the game state and plays the tick's cues.
// Cues are dropped while muted.
func (m *Manager) Sync(state core.GameState, cues []core.Cue) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}

	m.out.Lock()
	defer m.out.Unlock()

	m.music.Paused = !state.Running() || state.Muted
	if state.Idle || state.GameOver {
		m.theme.Rewind()
	}

	if state.Muted {
		return
	}
	for _, c := range cues {
		if s := m.effect(c); s != nil {
			m.mixer.Add(s)
		}
	}
}

// MusicPlaying reports whether the background loop is currently audible.
func (m *Manager) MusicPlaying() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.initialized && !m.music.Paused
}

// effect builds the stream for a cue.
func (m *Manager) effect(c core.Cue) beep.Streamer {
	vol := m.cfg.Volume
	switch c {
	case core.CueJump:
		return withVolume(newSweep(sampleRate, 300, 700, 90*time.Millisecond), vol*0.5)
	case core.CuePoint:
		return withVolume(tone(sampleRate, 1046.5, 60*time.Millisecond), vol*0.3)
	case core.CueCoin:
		return withVolume(beep.Seq(
			tone(sampleRate, 987.77, 70*time.Millisecond),
			tone(sampleRate, 1318.51, 140*time.Millisecond),
		), vol*0.5)
	case core.CueLevelUp:
		return withVolume(beep.Seq(
			tone(sampleRate, 523.25, 80*time.Millisecond),
			tone(sampleRate, 659.25, 80*time.Millisecond),
			tone(sampleRate, 783.99, 80*time.Millisecond),
			tone(sampleRate, 1046.5, 160*time.Millisecond),
		), vol*0.5)
	case core.CueCrash:
		return withVolume(beep.Mix(
			newNoiseBurst(sampleRate, 400*time.Millisecond),
			newSweep(sampleRate, 220, 60, 400*time.Millisecond),
		), vol*0.6)
	default:
		return nil
	}
}

// Close stops all sound and releases the device.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}

	m.out.Lock()
	m.music.Paused = true
	m.mixer.Clear()
	m.out.Unlock()

	m.out.Close()
	m.initialized = false
}

// Pending returns how many streams the mixer is playing, music included.
func (m *Manager) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.out.Lock()
	defer m.out.Unlock()
	return m.mixer.Len()
}
