// Package storage provides persistence for the high score and the score history.
// The SQLite backend uses the pure-Go modernc.org/sqlite driver to avoid CGO;
// the browser build stores values in window.localStorage instead.
package storage

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
)

// HighScoreKey is the key under which the best score is stored.
const HighScoreKey = "flappy_highscore"

// KeyValue is a durable string key/value store.
type KeyValue interface {
	// Get returns the value for key and whether it was present.
	Get(key string) (string, bool, error)
	// Set stores value under key, replacing any previous value.
	Set(key, value string) error
	// Delete removes key. Deleting a missing key is not an error.
	Delete(key string) error
}

// MaxSetter is implemented by stores that can raise an integer value
// atomically. The stored value only changes when value is larger, or when
// the current value is missing or not a number.
type MaxSetter interface {
	SetMax(key string, value int) error
}

// HighScores persists a single best score as a decimal string.
type HighScores struct {
	kv  KeyValue
	key string
}

// NewHighScores stores the best score in kv under key.
func NewHighScores(kv KeyValue, key string) *HighScores {
	return &HighScores{kv: kv, key: key}
}

// LoadHighScore returns the stored best score, 0 when absent.
// An unparseable value yields 0 and an error describing it.
func (h *HighScores) LoadHighScore() (int, error) {
	v, ok, err := h.kv.Get(h.key)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot read %s: %w", h.key, err)
	}
	if !ok {
		return 0, nil
	}

	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return 0, fmt.Errorf("storage: corrupt %s value %q: %w", h.key, v, err)
	}
	if n < 0 {
		return 0, fmt.Errorf("storage: corrupt %s value %q: negative", h.key, v)
	}
	return n, nil
}

// SaveHighScore records score as the best unless a larger one is stored.
// Several sessions may share the store, so a stale caller never lowers it.
func (h *HighScores) SaveHighScore(score int) error {
	if ms, ok := h.kv.(MaxSetter); ok {
		if err := ms.SetMax(h.key, score); err != nil {
			return fmt.Errorf("storage: cannot write %s: %w", h.key, err)
		}
		return nil
	}

	if best, err := h.LoadHighScore(); err == nil && best >= score {
		return nil
	}
	if err := h.kv.Set(h.key, strconv.Itoa(score)); err != nil {
		return fmt.Errorf("storage: cannot write %s: %w", h.key, err)
	}
	return nil
}

// Clear removes the stored best score.
func (h *HighScores) Clear() error {
	return h.kv.Delete(h.key)
}

// MemoryStore is a process-local KeyValue, used when no durable store is available.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

// Get implements KeyValue.
func (m *MemoryStore) Get(key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	v, ok := m.values[key]
	return v, ok, nil
}

// Set implements KeyValue.
func (m *MemoryStore) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.values[key] = value
	return nil
}

// SetMax implements MaxSetter.
func (m *MemoryStore) SetMax(key string, value int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if cur, err := strconv.Atoi(strings.TrimSpace(m.values[key])); err == nil && cur >= value {
		return nil
	}
	m.values[key] = strconv.Itoa(value)
	return nil
}

// Delete implements KeyValue.
func (m *MemoryStore) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.values, key)
	return nil
}
