package entity

// Mark is the content of a board cell and the identity of a player.
type Mark uint8

const (
	Empty Mark = iota
	PlayerX
	PlayerO
)

// String - returns the display glyph of the mark.
func (that Mark) String() string {
	switch that {
	case PlayerX:
		return "X"
	case PlayerO:
		return "O"
	default:
		return "*"
	}
}

// IsPlayer - reports whether the mark belongs to one of the two players.
func (that Mark) IsPlayer() bool {
	return that == PlayerX || that == PlayerO
}

// Opponent - returns the other player's mark. Empty has no opponent.
func (that Mark) Opponent() Mark {
	switch that {
	case PlayerX:
		return PlayerO
	case PlayerO:
		return PlayerX
	default:
		return Empty
	}
}
