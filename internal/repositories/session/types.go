package session

import "teamcoup/internal/models"

// SaveSessionInput contains parameters for saving a session
type SaveSessionInput struct {
	Session *models.Session
}

// GetSessionInput contains parameters for resolving a token
type GetSessionInput struct {
	Token string
}
