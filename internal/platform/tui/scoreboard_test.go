package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/flappy-arcade/internal/storage"
)

type fakeScoreSource struct {
	scores []storage.ScoreEntry
	stats  *storage.GameStats
	err    error
}

func (f fakeScoreSource) TopScores(string, int) ([]storage.ScoreEntry, error) {
	return f.scores, f.err
}

func (f fakeScoreSource) GetGameStats(gameID string) (*storage.GameStats, error) {
	if f.stats == nil {
		return &storage.GameStats{GameID: gameID}, nil
	}
	return f.stats, nil
}

func TestScoreboardEmpty(t *testing.T) {
	m := NewScoreboardModel(fakeScoreSource{}, "flappy", "Flappy Bird", 80, 24)

	view := m.View()
	if !strings.Contains(view, "HIGH SCORES - Flappy Bird") {
		t.Error("missing title")
	}
	if !strings.Contains(view, "No scores recorded yet") {
		t.Error("missing empty message")
	}
	if !strings.Contains(view, "No games played yet") {
		t.Error("missing empty stats line")
	}
}

func TestScoreboardRows(t *testing.T) {
	played := time.Date(2026, 3, 14, 9, 26, 0, 0, time.UTC)
	src := fakeScoreSource{
		scores: []storage.ScoreEntry{
			{GameID: "flappy", Score: 42, Level: 4, CreatedAt: played},
			{GameID: "flappy", Score: 17, Level: 3, CreatedAt: played},
		},
		stats: &storage.GameStats{GameID: "flappy", GamesCount: 2, HighScore: 42, BestLevel: 4, AvgScore: 29.5, LastPlayed: played},
	}

	m := NewScoreboardModel(src, "flappy", "Flappy Bird", 100, 30)

	rows := m.table.Rows()
	if len(rows) != 2 {
		t.Fatalf("table has %d rows, want 2", len(rows))
	}
	if rows[0][0] != "#1" || rows[0][1] != "42" || rows[0][2] != "4" || rows[0][3] != "Mar 14 09:26" {
		t.Errorf("first row = %v", rows[0])
	}

	line := m.statsLine()
	for _, want := range []string{"Games: 2", "Best: 42", "Best level: 4", "Average: 29.5"} {
		if !strings.Contains(line, want) {
			t.Errorf("stats line %q missing %q", line, want)
		}
	}
}

func TestScoreboardLoadError(t *testing.T) {
	m := NewScoreboardModel(fakeScoreSource{err: errors.New("locked")}, "flappy", "Flappy Bird", 80, 24)

	if !strings.Contains(m.statsLine(), "locked") {
		t.Errorf("stats line = %q, want the error", m.statsLine())
	}
}

func TestScoreboardQuit(t *testing.T) {
	m := NewScoreboardModel(nil, "flappy", "Flappy Bird", 80, 24)

	next, cmd := m.Update(runeKey('q'))
	if cmd == nil {
		t.Fatal("q should quit")
	}
	if next.(ScoreboardModel).View() != "" {
		t.Error("view should be empty after quitting")
	}
}
