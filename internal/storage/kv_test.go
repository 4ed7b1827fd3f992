package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingKV struct{}

func (failingKV) Get(string) (string, bool, error) { return "", false, errors.New("disk gone") }
func (failingKV) Set(string, string) error         { return errors.New("disk gone") }
func (failingKV) Delete(string) error              { return errors.New("disk gone") }

func TestHighScoresRoundTrip(t *testing.T) {
	kv := NewMemoryStore()
	hs := NewHighScores(kv, HighScoreKey)

	best, err := hs.LoadHighScore()
	require.NoError(t, err)
	assert.Equal(t, 0, best, "absent key reads as 0")

	require.NoError(t, hs.SaveHighScore(42))

	raw, ok, err := kv.Get(HighScoreKey)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "42", raw, "stored as an integer string")

	best, err = hs.LoadHighScore()
	require.NoError(t, err)
	assert.Equal(t, 42, best)

	require.NoError(t, hs.Clear())
	best, err = hs.LoadHighScore()
	require.NoError(t, err)
	assert.Equal(t, 0, best)
}

func TestHighScoresCorruptValue(t *testing.T) {
	for _, raw := range []string{"abc", "", "-3", "1.5"} {
		kv := NewMemoryStore()
		require.NoError(t, kv.Set(HighScoreKey, raw))

		best, err := NewHighScores(kv, HighScoreKey).LoadHighScore()
		assert.Error(t, err, "value %q", raw)
		assert.Equal(t, 0, best, "value %q", raw)
	}
}

func TestHighScoresBackendFailure(t *testing.T) {
	hs := NewHighScores(failingKV{}, HighScoreKey)

	best, err := hs.LoadHighScore()
	assert.Error(t, err)
	assert.Equal(t, 0, best)
	assert.Error(t, hs.SaveHighScore(7))
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("Cannot get home directory")
	}

	assert.Equal(t, filepath.Join(home, ".flappy", "flappy.db"), ExpandPath("~/.flappy/flappy.db"))
	assert.Equal(t, "/tmp/flappy.db", ExpandPath("/tmp/flappy.db"))
	assert.Equal(t, "", ExpandPath(""))
}

// plainKV hides MemoryStore.SetMax to exercise the read-compare-write path.
type plainKV struct{ KeyValue }

func TestHighScoresNeverLowered(t *testing.T) {
	backends := map[string]KeyValue{
		"max setter": NewMemoryStore(),
		"plain":      plainKV{NewMemoryStore()},
	}
	for name, kv := range backends {
		t.Run(name, func(t *testing.T) {
			hs := NewHighScores(kv, HighScoreKey)

			require.NoError(t, hs.SaveHighScore(10))
			require.NoError(t, hs.SaveHighScore(5))

			best, err := hs.LoadHighScore()
			require.NoError(t, err)
			assert.Equal(t, 10, best, "a lower score must not replace the stored best")

			require.NoError(t, hs.SaveHighScore(12))
			best, err = hs.LoadHighScore()
			require.NoError(t, err)
			assert.Equal(t, 12, best)
		})
	}
}

func TestHighScoresReplacesCorruptValue(t *testing.T) {
	kv := NewMemoryStore()
	require.NoError(t, kv.Set(HighScoreKey, "garbage"))

	hs := NewHighScores(kv, HighScoreKey)
	require.NoError(t, hs.SaveHighScore(3))

	best, err := hs.LoadHighScore()
	require.NoError(t, err)
	assert.Equal(t, 3, best)
}
