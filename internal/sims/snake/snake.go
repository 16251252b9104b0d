// Package snake implements the deterministic simulation core of a grid-based
// snake game: board state, the snake's body, buffered direction changes,
// movement, food placement and collision detection.
//
// A Simulation is not safe for concurrent use. Drivers call
// RequestDirectionChange as input arrives and Advance once per tick from the
// same goroutine, then read the query methods to render.
package snake

import (
	"fmt"

	"mad-snake/internal/core"
)

var _ core.Sim = (*Simulation)(nil)

// Simulation is one game from construction until game over. There is no
// in-place reset; start a new game by constructing a new Simulation.
type Simulation struct {
	cfg  Config
	grid *core.ByteGrid
	body *body
	free *freeCells
	rng  *core.RNG

	pending  [maxPending]Direction
	npending int

	dir      Direction
	score    int
	ticks    int
	gameOver bool

	food    Position
	hasFood bool

	display []uint8
}

// New builds a rows x cols simulation.
func New(rows, cols int, opts ...Option) (*Simulation, error) {
	cfg := DefaultConfig()
	cfg.Rows = rows
	cfg.Cols = cols
	for _, opt := range opts {
		opt(&cfg)
	}
	return NewWithConfig(cfg)
}

// NewWithConfig builds a simulation from cfg: an empty board, a three-segment
// snake on the middle row at columns 1..3 heading Right, and one food cell.
func NewWithConfig(cfg Config) (*Simulation, error) {
	if cfg.Rows < MinRows || cfg.Cols < MinCols {
		return nil, fmt.Errorf("%w: %dx%d, need at least %dx%d",
			ErrGridTooSmall, cfg.Rows, cfg.Cols, MinRows, MinCols)
	}
	total := cfg.Rows * cfg.Cols
	s := &Simulation{
		cfg:  cfg,
		grid: core.NewByteGrid(cfg.Cols, cfg.Rows),
		body: newBody(total),
		free: newFreeCells(total),
		rng:  core.NewRNG(cfg.Seed),
		dir:  Right,
	}
	row := cfg.Rows / 2
	for c := 1; c <= initialLength; c++ {
		s.addHead(Position{Row: row, Col: c})
	}
	s.placeFood()
	return s, nil
}

// Name returns the simulation identifier.
func (s *Simulation) Name() string { return "snake" }

// Size returns the grid dimensions, W being columns and H rows.
func (s *Simulation) Size() core.Size { return core.Size{W: s.cfg.Cols, H: s.cfg.Rows} }

// Config returns the configuration the simulation was built with.
func (s *Simulation) Config() Config { return s.cfg }

// RequestDirectionChange queues d to be applied on a later Advance. The
// request is dropped when two turns are already queued, when d repeats the
// last queued heading (or the current one if none are queued), or when d
// would reverse it. It reports whether d was queued.
func (s *Simulation) RequestDirectionChange(d Direction) bool {
	if s.gameOver || !d.Valid() || s.npending == maxPending {
		return false
	}
	last := s.lastDirection()
	if d == last || d == last.Opposite() {
		return false
	}
	s.pending[s.npending] = d
	s.npending++
	return true
}

func (s *Simulation) lastDirection() Direction {
	if s.npending == 0 {
		return s.dir
	}
	return s.pending[s.npending-1]
}

// Advance moves the snake one cell. It applies the oldest queued turn, then
// either ends the game on a wall or body hit, slides forward onto an empty
// cell, or grows onto food, scores and places new food. Calling Advance after
// the game has ended returns ErrGameOver and changes nothing.
func (s *Simulation) Advance() error {
	if s.gameOver {
		return ErrGameOver
	}
	if s.npending > 0 {
		s.dir = s.pending[0]
		copy(s.pending[:], s.pending[1:s.npending])
		s.npending--
	}
	s.ticks++

	next := s.body.head().Translate(s.dir)
	switch s.willHit(next) {
	case Outside, Snake:
		s.gameOver = true
	case Empty:
		s.removeTail()
		s.addHead(next)
	case Food:
		s.food, s.hasFood = Position{}, false
		s.addHead(next)
		s.score++
		s.placeFood()
	}
	return nil
}

// Step advances one tick, ignoring ErrGameOver.
func (s *Simulation) Step() { _ = s.Advance() }

// willHit classifies the cell the head is about to enter. The current tail
// reads as Empty because it vacates on the same tick.
func (s *Simulation) willHit(p Position) CellState {
	if !s.inBounds(p) {
		return Outside
	}
	if p == s.body.tail() {
		return Empty
	}
	return CellState(s.grid.At(p.Col, p.Row))
}

func (s *Simulation) inBounds(p Position) bool { return s.grid.InBounds(p.Col, p.Row) }

func (s *Simulation) cellIndex(p Position) int { return s.grid.Index(p.Col, p.Row) }

func (s *Simulation) addHead(p Position) {
	s.body.pushFront(p)
	s.grid.Set(p.Col, p.Row, uint8(Snake))
	s.free.remove(s.cellIndex(p))
}

func (s *Simulation) removeTail() {
	p := s.body.popBack()
	s.grid.Set(p.Col, p.Row, uint8(Empty))
	s.free.add(s.cellIndex(p))
}

// placeFood puts food on a uniformly random empty cell. A full board gets no
// food.
func (s *Simulation) placeFood() {
	if s.free.len() == 0 {
		return
	}
	idx := s.free.pick(s.rng)
	col, row := s.grid.Coords(idx)
	s.grid.Set(col, row, uint8(Food))
	s.free.remove(idx)
	s.food = Position{Row: row, Col: col}
	s.hasFood = true
}
