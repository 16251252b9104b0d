package snake

import "errors"

var (
	// ErrGridTooSmall is returned when the board cannot seat the initial snake
	// plus one free cell.
	ErrGridTooSmall = errors.New("snake: grid too small")
	// ErrGameOver is returned by Advance once the game has ended.
	ErrGameOver = errors.New("snake: game over")
)
