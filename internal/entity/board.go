package entity

const BoardSize = 3

// Board is a fixed 3x3 grid stored row-major.
type Board [BoardSize][BoardSize]Mark

// InBounds - checks that row and column address a cell of the board.
func InBounds(row, column int) bool {
	return row >= 0 && row < BoardSize && column >= 0 && column < BoardSize
}

// Cell - returns the mark at row, column. The position must be in bounds.
func (that *Board) Cell(row, column int) Mark {
	return that[row][column]
}

// IsFull - true when no cell is empty.
func (that *Board) IsFull() bool {
	for _, row := range that {
		for _, cell := range row {
			if cell == Empty {
				return false
			}
		}
	}

	return true
}

