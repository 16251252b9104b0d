package snake

// Head returns the head position.
func (s *Simulation) Head() Position { return s.body.head() }

// Tail returns the tail position.
func (s *Simulation) Tail() Position { return s.body.tail() }

// Len returns the number of body segments.
func (s *Simulation) Len() int { return s.body.len() }

// Body returns the body positions from head to tail. The slice is a copy.
func (s *Simulation) Body() []Position {
	return s.body.appendTo(make([]Position, 0, s.body.len()))
}

// Score returns the number of food items eaten.
func (s *Simulation) Score() int { return s.score }

// GameOver reports whether the snake has crashed.
func (s *Simulation) GameOver() bool { return s.gameOver }

// Direction returns the heading used by the most recent move.
func (s *Simulation) Direction() Direction { return s.dir }

// Pending returns the queued turns, oldest first.
func (s *Simulation) Pending() []Direction {
	return append([]Direction(nil), s.pending[:s.npending]...)
}

// Ticks returns how many moves have been processed, including the final one.
func (s *Simulation) Ticks() int { return s.ticks }

// Rows returns the board height.
func (s *Simulation) Rows() int { return s.cfg.Rows }

// Cols returns the board width.
func (s *Simulation) Cols() int { return s.cfg.Cols }

// At returns the state of the cell at p, or Outside when p is off the board.
func (s *Simulation) At(p Position) CellState {
	if !s.inBounds(p) {
		return Outside
	}
	return CellState(s.grid.At(p.Col, p.Row))
}

// Food returns the food position. ok is false once the board is full.
func (s *Simulation) Food() (Position, bool) { return s.food, s.hasFood }

// EmptyCells returns the number of Empty cells.
func (s *Simulation) EmptyCells() int { return s.free.len() }

// Grid returns a detached copy of the board indexed [row][col].
func (s *Simulation) Grid() [][]CellState {
	out := make([][]CellState, s.cfg.Rows)
	for r := range out {
		row := make([]CellState, s.cfg.Cols)
		for c := range row {
			row[c] = CellState(s.grid.At(c, r))
		}
		out[r] = row
	}
	return out
}

// Snapshot summarises the observable state in a single value.
type Snapshot struct {
	Ticks     int
	Score     int
	Length    int
	Head      Position
	Tail      Position
	Direction Direction
	Pending   int
	Food      Position
	HasFood   bool
	GameOver  bool
	// Full is set when no Empty cell remains.
	Full bool
}

// Snapshot returns the current state summary.
func (s *Simulation) Snapshot() Snapshot {
	return Snapshot{
		Ticks:     s.ticks,
		Score:     s.score,
		Length:    s.body.len(),
		Head:      s.body.head(),
		Tail:      s.body.tail(),
		Direction: s.dir,
		Pending:   s.npending,
		Food:      s.food,
		HasFood:   s.hasFood,
		GameOver:  s.gameOver,
		Full:      s.free.len() == 0,
	}
}
