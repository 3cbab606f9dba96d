package tictactoe

import (
	"fmt"
	"strings"
)

// Render - returns the board, one row per line, followed by a status line.
func (that *Game) Render() string {
	var sb strings.Builder

	for _, row := range that.board {
		fmt.Fprintf(&sb, "%s %s %s\n", row[0], row[1], row[2])
	}

	switch that.Status() {
	case StatusWon:
		fmt.Fprintf(&sb, "Winner: %s\n", that.winner)
	case StatusDrawn:
		sb.WriteString("Draw\n")
	default:
		fmt.Fprintf(&sb, "Current player: %s\n", that.currentPlayer)
	}

	return sb.String()
}

func (that *Game) String() string {
	return that.Render()
}
