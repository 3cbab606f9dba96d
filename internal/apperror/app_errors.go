package apperror

import "errors"

var (
	ErrPositionOutOfBounds = errors.New("specified position is outside of the board")
	ErrCellOccupied        = errors.New("the cell is not empty")
	ErrGameOver            = errors.New("the game is over")

	ErrInvalidInput = errors.New("invalid input")
	ErrInputClosed  = errors.New("input closed")
)
