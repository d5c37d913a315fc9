package match

import (
	"teamcoup/internal/common/clock"
	"teamcoup/internal/common/uuid"
	"teamcoup/internal/models"
	gameRepo "teamcoup/internal/repositories/game"
	sessionRepo "teamcoup/internal/repositories/session"
	"teamcoup/internal/shuffle"
)

// Config holds configuration for the match service
type Config struct {
	// Repository dependencies
	GameRepo    gameRepo.Repository
	SessionRepo sessionRepo.Repository

	// Service dependencies
	Shuffler      *shuffle.Shuffler
	Clock         clock.Clock
	UUIDGenerator uuid.Generator
}

// CreateGameInput contains parameters for creating a game
type CreateGameInput struct {
	// Mode is "normal" or "super"
	Mode string

	// Name is the creator's display name
	Name string

	// Team is the side the creator joins, "A" or "B"
	Team string
}

// CreateGameOutput contains the result of creating a game
type CreateGameOutput struct {
	GameID      string
	PlayerToken string
}

// JoinGameInput contains parameters for joining a lobby
type JoinGameInput struct {
	GameID string
	Name   string
	Team   string
}

// JoinGameOutput contains the result of joining a lobby
type JoinGameOutput struct {
	PlayerToken string
}

// StartGameInput starts the token-holder's game
type StartGameInput struct {
	Token string
}

// GetStateInput requests the token-holder's view
type GetStateInput struct {
	Token string
}

// DeclareActionInput declares an action for the token-holder
type DeclareActionInput struct {
	Token    string
	Action   string
	TargetID string
}

// DeclareBlockInput declares a block for the token-holder
type DeclareBlockInput struct {
	Token     string
	BlockType string
}

// ChallengeInput challenges the pending claim
type ChallengeInput struct {
	Token string
}

// PassChallengeInput declines to challenge
type PassChallengeInput struct {
	Token string
}

// PassBlockInput declines to block
type PassBlockInput struct {
	Token string
}

// FinishExchangeInput submits the ambassador keep choice
type FinishExchangeInput struct {
	Token       string
	KeepIndices []int
}

// ChooseLossInput picks which influence to reveal
type ChooseLossInput struct {
	Token     string
	CardIndex int
}

// ListOpenGamesInput requests the joinable lobbies
type ListOpenGamesInput struct{}

// GameSummary is the public description of one joinable lobby
type GameSummary struct {
	GameID     string
	Mode       models.Mode
	NumPlayers int
}

// ListOpenGamesOutput contains the joinable lobbies, oldest first
type ListOpenGamesOutput struct {
	Games []*GameSummary
}

// StateOutput carries the caller's redacted view after a command
type StateOutput struct {
	View *models.GameView
}
