package match

import "context"

// Service defines the interface for match operations. Every command
// resolves a player token to a seat, applies one engine command under
// the game's lock, and returns the caller's redacted view.
type Service interface {
	// CreateGame creates a game and seats its first player
	CreateGame(ctx context.Context, input *CreateGameInput) (*CreateGameOutput, error)

	// JoinGame seats another player in a lobby
	JoinGame(ctx context.Context, input *JoinGameInput) (*JoinGameOutput, error)

	// ListOpenGames returns the lobbies still accepting players
	ListOpenGames(ctx context.Context, input *ListOpenGamesInput) (*ListOpenGamesOutput, error)

	// StartGame starts the game the token belongs to
	StartGame(ctx context.Context, input *StartGameInput) (*StateOutput, error)

	// GetState returns the caller's view without mutating anything
	GetState(ctx context.Context, input *GetStateInput) (*StateOutput, error)

	// DeclareAction declares the turn-holder's action
	DeclareAction(ctx context.Context, input *DeclareActionInput) (*StateOutput, error)

	// DeclareBlock declares a block against the pending action
	DeclareBlock(ctx context.Context, input *DeclareBlockInput) (*StateOutput, error)

	// Challenge contests the pending action or block
	Challenge(ctx context.Context, input *ChallengeInput) (*StateOutput, error)

	// PassChallenge declines to challenge
	PassChallenge(ctx context.Context, input *PassChallengeInput) (*StateOutput, error)

	// PassBlock declines to block
	PassBlock(ctx context.Context, input *PassBlockInput) (*StateOutput, error)

	// FinishExchange submits the ambassador keep choice
	FinishExchange(ctx context.Context, input *FinishExchangeInput) (*StateOutput, error)

	// ChooseLoss picks which influence to reveal
	ChooseLoss(ctx context.Context, input *ChooseLossInput) (*StateOutput, error)
}
