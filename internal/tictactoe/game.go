package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

type Status string

const (
	StatusOngoing Status = "ongoing"
	StatusWon     Status = "won"
	StatusDrawn   Status = "drawn"
)

// Game holds the whole state of one tic-tac-toe game.
// It is not safe for concurrent use.
type Game struct {
	board         entity.Board
	currentPlayer entity.Mark
	winner        entity.Mark
}

// New - returns a game with an empty board and X to move.
func New() *Game {
	return &Game{
		currentPlayer: entity.PlayerX,
		winner:        entity.Empty,
	}
}

// MakeMove - places the current player's mark at row, column.
// A rejected move leaves the game unchanged.
func (that *Game) MakeMove(row, column int) error {
	if err := validatePosition(row, column); err != nil {
		return err
	}

	if that.IsGameOver() {
		return apperror.ErrGameOver
	}

	if that.board[row][column] != entity.Empty {
		return fmt.Errorf("%w: row %d, column %d", apperror.ErrCellOccupied, row, column)
	}

	that.board[row][column] = that.currentPlayer

	if that.winner == entity.Empty && that.hasWon(that.currentPlayer, row, column) {
		that.winner = that.currentPlayer
	}

	that.currentPlayer = that.currentPlayer.Opponent()

	return nil
}

// CurrentPlayer - returns the mark that moves next.
func (that *Game) CurrentPlayer() entity.Mark {
	return that.currentPlayer
}

// Winner - returns the winning mark, or Empty while there is none.
func (that *Game) Winner() entity.Mark {
	return that.winner
}

// Cell - returns the mark at row, column.
func (that *Game) Cell(row, column int) (entity.Mark, error) {
	if err := validatePosition(row, column); err != nil {
		return entity.Empty, err
	}

	return that.board.Cell(row, column), nil
}

func (that *Game) BoardIsFull() bool {
	return that.board.IsFull()
}

func (that *Game) IsGameOver() bool {
	return that.winner != entity.Empty || that.board.IsFull()
}

// Status - reports which of ongoing, won or drawn the game is in.
func (that *Game) Status() Status {
	switch {
	case that.winner != entity.Empty:
		return StatusWon
	case that.board.IsFull():
		return StatusDrawn
	default:
		return StatusOngoing
	}
}

// Reset - discards the game and starts a fresh one.
func (that *Game) Reset() {
	*that = *New()
}

// hasWon - checks the lines passing through the cell that was just played.
func (that *Game) hasWon(mark entity.Mark, row, column int) bool {
	rowWin, columnWin, mainWin, antiWin := true, true, row == column, row+column == entity.BoardSize-1

	for i := range entity.BoardSize {
		rowWin = rowWin && that.board[row][i] == mark
		columnWin = columnWin && that.board[i][column] == mark
		mainWin = mainWin && that.board[i][i] == mark
		antiWin = antiWin && that.board[i][entity.BoardSize-1-i] == mark
	}

	return rowWin || columnWin || mainWin || antiWin
}

func validatePosition(row, column int) error {
	if !entity.InBounds(row, column) {
		return fmt.Errorf("%w: row %d, column %d", apperror.ErrPositionOutOfBounds, row, column)
	}

	return nil
}
