package pkg

import "github.com/google/uuid"

// GenerateGameID - returns a random identifier for one round of play.
func GenerateGameID() string {
	return uuid.NewString()
}
