package flappy

import (
	"testing"

	"github.com/vovakirdan/flappy-arcade/internal/config"
)

func TestLevelTableSelect(t *testing.T) {
	table := NewLevelTable(config.DefaultFlappyConfig().Levels)

	tests := []struct {
		score int
		want  int
	}{
		{-1, 0},
		{0, 0},
		{4, 0},
		{5, 1},
		{9, 1},
		{10, 2},
		{14, 2},
		{15, 3},
		{250, 3},
	}

	for _, tt := range tests {
		if got := table.Select(tt.score); got != tt.want {
			t.Errorf("Select(%d) = %d, want %d", tt.score, got, tt.want)
		}
	}
}

func TestLevelTableRows(t *testing.T) {
	table := NewLevelTable(config.DefaultFlappyConfig().Levels)

	row := table.Row(table.Select(5))
	if row.PipeSpeed != 5 || row.PipeGap != 140 || row.Background != "#ADD8E6" {
		t.Errorf("level for score 5 = %+v, want speed 5 gap 140 #ADD8E6", row)
	}

	row = table.Row(table.Select(0))
	if row.PipeSpeed != 4 || row.PipeGap != 160 || row.Background != "#87CEEB" {
		t.Errorf("level for score 0 = %+v, want speed 4 gap 160 #87CEEB", row)
	}
}

func TestLevelTableTiesPickHighest(t *testing.T) {
	table := LevelTable{
		{Threshold: 0, PipeSpeed: 1, PipeGap: 100},
		{Threshold: 5, PipeSpeed: 2, PipeGap: 90},
		{Threshold: 5, PipeSpeed: 3, PipeGap: 80},
	}

	if got := table.Select(5); got != 2 {
		t.Errorf("Select(5) = %d, want 2", got)
	}
}
