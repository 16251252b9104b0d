package snake

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func newSim(t *testing.T, rows, cols int) *Simulation {
	t.Helper()
	s, err := New(rows, cols, WithSeed(7))
	require.NoError(t, err)
	return s
}

// forceFood moves the food item to p, which must be Empty.
func forceFood(t *testing.T, s *Simulation, p Position) {
	t.Helper()
	if old, ok := s.Food(); ok {
		s.grid.Set(old.Col, old.Row, uint8(Empty))
		s.free.add(s.cellIndex(old))
		s.hasFood = false
	}
	require.Equal(t, Empty, s.At(p), "food target %v must be empty", p)
	s.grid.Set(p.Col, p.Row, uint8(Food))
	s.free.remove(s.cellIndex(p))
	s.food = p
	s.hasFood = true
}

// setBody replaces the board with a snake laid out head-first along ps and
// no food.
func setBody(s *Simulation, dir Direction, ps ...Position) {
	total := s.cfg.Rows * s.cfg.Cols
	s.grid.Clear()
	s.free = newFreeCells(total)
	s.body = newBody(total)
	s.hasFood = false
	s.npending = 0
	s.dir = dir
	for i := len(ps) - 1; i >= 0; i-- {
		s.addHead(ps[i])
	}
}

// requireConsistent checks the board, body and free-cell index agree.
func requireConsistent(t *testing.T, s *Simulation) {
	t.Helper()
	body := s.Body()
	require.Len(t, body, s.Len())
	require.GreaterOrEqual(t, len(body), 1)

	inBody := make(map[Position]bool, len(body))
	for _, p := range body {
		require.False(t, inBody[p], "duplicate body position %v", p)
		inBody[p] = true
	}
	require.Equal(t, body[0], s.Head())
	require.Equal(t, body[len(body)-1], s.Tail())

	foodCells, emptyCells := 0, 0
	for r, row := range s.Grid() {
		for c, cell := range row {
			p := Position{Row: r, Col: c}
			idx := s.cellIndex(p)
			require.Equal(t, inBody[p], cell == Snake, "cell %v is %v", p, cell)
			require.Equal(t, cell == Empty, s.free.contains(idx), "free index disagrees at %v", p)
			switch cell {
			case Food:
				foodCells++
				food, ok := s.Food()
				require.True(t, ok)
				require.Equal(t, food, p)
			case Empty:
				emptyCells++
			}
		}
	}
	require.LessOrEqual(t, foodCells, 1)
	_, hasFood := s.Food()
	require.Equal(t, hasFood, foodCells == 1)
	require.Equal(t, emptyCells, s.EmptyCells())
	if !hasFood {
		require.Zero(t, emptyCells, "an empty cell exists but no food was placed")
	}
}
