package console

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

// Scoreboard counts the results of the rounds played in one session.
type Scoreboard struct {
	WinsX int
	WinsO int
	Draws int
}

func (that *Scoreboard) Record(winner entity.Mark) {
	switch winner {
	case entity.PlayerX:
		that.WinsX++
	case entity.PlayerO:
		that.WinsO++
	default:
		that.Draws++
	}
}

func (that Scoreboard) Rounds() int {
	return that.WinsX + that.WinsO + that.Draws
}

func (that Scoreboard) String() string {
	return fmt.Sprintf("Score: %s %d | %s %d | Draw %d", entity.PlayerX, that.WinsX, entity.PlayerO, that.WinsO, that.Draws)
}
