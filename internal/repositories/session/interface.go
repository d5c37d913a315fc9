package session

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go teamcoup/internal/repositories/session Repository

import (
	"context"

	"teamcoup/internal/models"
)

// Repository defines the interface for player session persistence
type Repository interface {
	// SaveSession persists a token-to-seat mapping
	SaveSession(ctx context.Context, input *SaveSessionInput) error

	// GetSession resolves a player token
	GetSession(ctx context.Context, input *GetSessionInput) (*models.Session, error)
}
