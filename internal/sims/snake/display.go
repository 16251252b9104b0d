package snake

import (
	"image/color"
	"strings"
)

// DisplayHead marks the head cell in the Cells buffer so renderers can tint it.
const DisplayHead uint8 = uint8(Outside) + 1

var snakePalette = []color.RGBA{
	Empty:       {R: 18, G: 20, B: 26, A: 255},
	Snake:       {R: 70, G: 170, B: 80, A: 255},
	Food:        {R: 220, G: 60, B: 50, A: 255},
	Outside:     {R: 0, G: 0, B: 0, A: 255},
	DisplayHead: {R: 150, G: 230, B: 120, A: 255},
}

// Palette maps Cells values to colors.
func (s *Simulation) Palette() []color.RGBA { return snakePalette }

// Cells returns the board as one byte per cell in row-major order, using the
// CellState values plus DisplayHead on the head cell. The buffer is owned by
// the simulation and rebuilt on each call; writing to it has no effect on the
// game.
func (s *Simulation) Cells() []uint8 {
	s.display = s.grid.CopyTo(s.display)
	h := s.body.head()
	s.display[s.cellIndex(h)] = DisplayHead
	return s.display
}

// String draws the board as text: '.' empty, 'o' body, '@' head, '*' food,
// with an 'x' on the head when the game is over.
func (s *Simulation) String() string {
	var b strings.Builder
	b.Grow((s.cfg.Cols + 1) * s.cfg.Rows)
	head := s.body.head()
	for r := 0; r < s.cfg.Rows; r++ {
		for c := 0; c < s.cfg.Cols; c++ {
			p := Position{Row: r, Col: c}
			switch {
			case p == head && s.gameOver:
				b.WriteByte('x')
			case p == head:
				b.WriteByte('@')
			default:
				b.WriteByte(cellGlyph(CellState(s.grid.At(c, r))))
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func cellGlyph(c CellState) byte {
	switch c {
	case Snake:
		return 'o'
	case Food:
		return '*'
	default:
		return '.'
	}
}
