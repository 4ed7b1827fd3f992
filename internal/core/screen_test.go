package core

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewScreenIsBlank(t *testing.T) {
	s := NewScreen(12, 4)

	assert.Equal(t, 12, s.Width())
	assert.Equal(t, 4, s.Height())
	assert.Equal(t, strings.Repeat(strings.Repeat(" ", 12)+"\n", 3)+strings.Repeat(" ", 12), s.String())
	assert.Empty(t, s.Background())
}

func TestScreenClipsOutOfBounds(t *testing.T) {
	s := NewScreen(6, 3)

	for _, p := range [][2]int{{-1, 0}, {6, 0}, {0, -1}, {0, 3}} {
		s.SetColored(p[0], p[1], '#', ColorRed)
		assert.Equal(t, ' ', s.Get(p[0], p[1]), "out of bounds read at %v", p)
	}

	// Pipes entering from the right edge are partly off-screen.
	s.FillRect(4, 1, 5, 5, '█', ColorGreen)
	assert.Equal(t, "      ", s.Row(0))
	assert.Equal(t, "    ██", s.Row(1))
	assert.Equal(t, "    ██", s.Row(2))

	s.DrawText(3, 0, "Score")
	assert.Equal(t, "   Sco", s.Row(0))
}

func TestScreenColoredCells(t *testing.T) {
	s := NewScreen(10, 3)
	s.SetColored(1, 1, '$', ColorYellow)
	s.DrawColoredText(3, 0, "ok", ColorGreen)
	s.DrawHLine(0, 2, 10, '═', ColorOrange)

	assert.Equal(t, Cell{Rune: '$', Color: ColorYellow}, s.GetCell(1, 1))
	assert.Equal(t, Cell{Rune: 'k', Color: ColorGreen}, s.GetCell(4, 0))
	assert.Equal(t, Cell{Rune: '═', Color: ColorOrange}, s.GetCell(9, 2))
	assert.Equal(t, Cell{Rune: ' '}, s.GetCell(-1, 0))

	s.Set(1, 1, 'x')
	assert.Equal(t, ColorDefault, s.GetCell(1, 1).Color)
}

func TestScreenBackground(t *testing.T) {
	s := NewScreen(4, 2)
	s.SetBackground("#87CEEB")
	s.Set(0, 0, '●')

	assert.Equal(t, "#87CEEB", s.Background())

	s.Clear()
	assert.Empty(t, s.Background())
	assert.Equal(t, Cell{Rune: ' '}, s.GetCell(0, 0))

	s.Fill('.')
	assert.Equal(t, "....\n....", s.String())
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(7, 5)
	s.DrawBox(1, 1, 5, 3)

	assert.Equal(t, []string{
		"       ",
		" ┌───┐ ",
		" │   │ ",
		" └───┘ ",
		"       ",
	}, strings.Split(s.String(), "\n"))
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(11, 1)
	s.DrawTextCentered(0, "PAUSED")

	assert.Equal(t, "  PAUSED   ", s.Row(0))
}

func TestScreenResizeKeepsTopLeft(t *testing.T) {
	s := NewScreen(10, 6)
	s.DrawText(0, 0, "Level 2")
	s.DrawText(0, 5, "ground")

	s.Resize(5, 3)
	assert.Equal(t, 5, s.Width())
	assert.Equal(t, 3, s.Height())
	assert.Equal(t, "Level", s.Row(0))

	s.Resize(9, 7)
	assert.Equal(t, "Level    ", s.Row(0))
	assert.Equal(t, strings.Repeat(" ", 9), s.Row(5), "rows cut by the shrink stay blank")
	assert.Equal(t, strings.Repeat(" ", 9), s.Row(-1))
}
