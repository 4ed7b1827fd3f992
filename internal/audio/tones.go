package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// note is one step of a melody; a zero frequency is a rest.
type note struct {
	freq float64
	dur  time.Duration
}

// theme is the background loop, a bright C-major figure.
var theme = []note{
	{523.25, 150 * time.Millisecond}, {659.25, 150 * time.Millisecond},
	{783.99, 150 * time.Millisecond}, {659.25, 150 * time.Millisecond},
	{587.33, 150 * time.Millisecond}, {698.46, 150 * time.Millisecond},
	{880.00, 300 * time.Millisecond}, {0, 150 * time.Millisecond},
	{493.88, 150 * time.Millisecond}, {587.33, 150 * time.Millisecond},
	{783.99, 150 * time.Millisecond}, {587.33, 150 * time.Millisecond},
	{523.25, 450 * time.Millisecond}, {0, 300 * time.Millisecond},
}

// melody streams a note list forever, square-ish and quiet.
type melody struct {
	sr    beep.SampleRate
	notes []note
	idx   int // Current note
	pos   int // Sample position inside the current note
	phase float64
}

func newMelody(sr beep.SampleRate, notes []note) *melody {
	return &melody{sr: sr, notes: notes}
}

// Rewind restarts the melody from its first note.
func (m *melody) Rewind() {
	m.idx, m.pos, m.phase = 0, 0, 0
}

func (m *melody) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		nt := m.notes[m.idx]
		length := m.sr.N(nt.dur)

		val := 0.0
		if nt.freq > 0 {
			// Soft square: sine plus a third harmonic, with a short decay per note.
			env := math.Exp(-float64(m.pos) / float64(length) * 3)
			val = env * (0.8*math.Sin(2*math.Pi*m.phase) + 0.2*math.Sin(6*math.Pi*m.phase))
			m.phase += nt.freq / float64(m.sr)
			m.phase -= math.Floor(m.phase)
		}

		samples[i][0] = val
		samples[i][1] = val

		m.pos++
		if m.pos >= length {
			m.pos = 0
			m.idx = (m.idx + 1) % len(m.notes)
		}
	}
	return len(samples), true
}

func (m *melody) Err() error { return nil }

// sweep is a sine glide from one frequency to another, fading out.
type sweep struct {
	sr       beep.SampleRate
	from, to float64
	total    int
	pos      int
	phase    float64
}

func newSweep(sr beep.SampleRate, from, to float64, d time.Duration) *sweep {
	return &sweep{sr: sr, from: from, to: to, total: sr.N(d)}
}

func (s *sweep) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if s.pos >= s.total {
			return i, i > 0
		}
		p := float64(s.pos) / float64(s.total)
		freq := s.from + (s.to-s.from)*p
		val := (1 - p) * math.Sin(2*math.Pi*s.phase)

		samples[i][0] = val
		samples[i][1] = val

		s.phase += freq / float64(s.sr)
		s.phase -= math.Floor(s.phase)
		s.pos++
	}
	return len(samples), true
}

func (s *sweep) Err() error { return nil }

// noiseBurst is white noise under an exponential decay.
type noiseBurst struct {
	sr    beep.SampleRate
	total int
	pos   int
	rnd   *rand.Rand
}

func newNoiseBurst(sr beep.SampleRate, d time.Duration) *noiseBurst {
	return &noiseBurst{sr: sr, total: sr.N(d), rnd: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

func (b *noiseBurst) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if b.pos >= b.total {
			return i, i > 0
		}
		t := float64(b.pos) / float64(b.sr)
		val := math.Exp(-t*10) * (b.rnd.Float64()*2 - 1)

		samples[i][0] = val
		samples[i][1] = val
		b.pos++
	}
	return len(samples), true
}

func (b *noiseBurst) Err() error { return nil }

// tone is a plain sine note of fixed length.
func tone(sr beep.SampleRate, freq float64, d time.Duration) beep.Streamer {
	sine, err := generators.SineTone(sr, freq)
	if err != nil {
		// Frequencies above Nyquist are rejected; play silence instead.
		return beep.Silence(sr.N(d))
	}
	return beep.Take(sr.N(d), sine)
}

// withVolume scales s by a linear factor; 0 silences it.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}
