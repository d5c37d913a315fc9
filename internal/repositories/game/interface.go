package game

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go teamcoup/internal/repositories/game Repository

import (
	"context"

	"teamcoup/internal/models"
)

// Repository defines the interface for game state persistence
type Repository interface {
	// SaveGame persists a game aggregate
	SaveGame(ctx context.Context, input *SaveGameInput) error

	// GetGame retrieves a game by ID
	GetGame(ctx context.Context, input *GetGameInput) (*models.Game, error)

	// DeleteGame removes a game
	DeleteGame(ctx context.Context, input *DeleteGameInput) error

	// GetOpenGames retrieves every game still in its lobby
	GetOpenGames(ctx context.Context, input *GetOpenGamesInput) (*GetOpenGamesOutput, error)
}
