package game

import "teamcoup/internal/models"

// SaveGameInput contains parameters for saving a game
type SaveGameInput struct {
	Game *models.Game
}

// GetGameInput contains parameters for retrieving a game
type GetGameInput struct {
	GameID string
}

// DeleteGameInput contains parameters for deleting a game
type DeleteGameInput struct {
	GameID string
}

// GetOpenGamesInput contains parameters for listing open lobbies
type GetOpenGamesInput struct{}

// GetOpenGamesOutput contains the games still in their lobby
type GetOpenGamesOutput struct {
	Games []*models.Game
}
