package flappy

import "github.com/vovakirdan/flappy-arcade/internal/config"

// LevelRow is one difficulty tier: once the score reaches Threshold,
// pipes move at PipeSpeed and new pipes open a PipeGap-high gap.
type LevelRow struct {
	Threshold  int
	PipeSpeed  float64
	PipeGap    float64
	Background string // Hex color, e.g. "#87CEEB"
}

// LevelTable is the static list of tiers, ordered by ascending threshold.
type LevelTable []LevelRow

// NewLevelTable builds the table from configuration rows.
func NewLevelTable(rows []config.LevelRow) LevelTable {
	table := make(LevelTable, len(rows))
	for i, r := range rows {
		table[i] = LevelRow{
			Threshold:  r.Threshold,
			PipeSpeed:  r.PipeSpeed,
			PipeGap:    r.PipeGap,
			Background: r.Background,
		}
	}
	return table
}

// Select returns the index of the highest row whose threshold is <= score.
// Rows are scanned from the top so ties resolve to the highest level.
// Returns 0 when no row applies.
func (t LevelTable) Select(score int) int {
	for i := len(t) - 1; i >= 0; i-- {
		if score >= t[i].Threshold {
			return i
		}
	}
	return 0
}

// Row returns the row at index i.
func (t LevelTable) Row(i int) LevelRow {
	return t[i]
}
