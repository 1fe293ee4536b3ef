package pkg

import (
	"crypto/rand"
	"math/big"

	"github.com/google/uuid"
)

// GenerateNewSessionID - generates a new unique player session ID.
func GenerateNewSessionID() string {
	return uuid.NewString()
}

// GenerateGameID - generates a short numeric identifier for a game.
func GenerateGameID() string {
	n, err := rand.Int(rand.Reader, big.NewInt(99999999))
	if err != nil {
		return ""
	}

	return n.String()
}
