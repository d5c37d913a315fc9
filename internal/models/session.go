package models

import (
	"time"
)

// Session ties a player token to a seat in a game. Tokens are opaque
// to clients and are the only credential the API accepts.
type Session struct {
	// Token is the secret identifier handed to the client
	Token string

	// GameID is the game the token belongs to
	GameID string

	// PlayerID is the seat within that game
	PlayerID string

	// CreatedAt is when the session was issued
	CreatedAt time.Time
}
