package snake

// CellState is the content of one grid cell.
type CellState uint8

const (
	Empty CellState = iota
	Snake
	Food
	// Outside is returned for positions off the board and is never stored.
	Outside
)

func (c CellState) String() string {
	switch c {
	case Empty:
		return "empty"
	case Snake:
		return "snake"
	case Food:
		return "food"
	case Outside:
		return "outside"
	}
	return "unknown"
}
