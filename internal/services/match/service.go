package match

import (
	"context"
	"errors"
	"sort"

	"teamcoup/internal/common/clock"
	commonUUID "teamcoup/internal/common/uuid"
	"teamcoup/internal/engine"
	"teamcoup/internal/models"
	gameRepo "teamcoup/internal/repositories/game"
	sessionRepo "teamcoup/internal/repositories/session"
	"teamcoup/internal/shuffle"
)

// service implements the Service interface
type service struct {
	gameRepo    gameRepo.Repository
	sessionRepo sessionRepo.Repository
	shuffler    *shuffle.Shuffler
	clock       clock.Clock
	uuidGen     commonUUID.Generator
	locks       *gameLocks
}

// New creates a new match service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.GameRepo == nil {
		return nil, ErrNilGameRepo
	}
	if cfg.SessionRepo == nil {
		return nil, ErrNilSessionRepo
	}
	if cfg.Shuffler == nil {
		return nil, ErrNilShuffler
	}
	if cfg.Clock == nil {
		return nil, ErrNilClock
	}
	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	return &service{
		gameRepo:    cfg.GameRepo,
		sessionRepo: cfg.SessionRepo,
		shuffler:    cfg.Shuffler,
		clock:       cfg.Clock,
		uuidGen:     cfg.UUIDGenerator,
		locks:       newGameLocks(),
	}, nil
}

func parseMode(mode string) (models.Mode, error) {
	switch mode {
	case "normal":
		return models.ModeNormalTeam, nil
	case "super":
		return models.ModeSuperTeam, nil
	}
	return "", ErrInvalidMode
}

// CreateGame creates a game and seats its first player
func (s *service) CreateGame(ctx context.Context, input *CreateGameInput) (*CreateGameOutput, error) {
	mode, err := parseMode(input.Mode)
	if err != nil {
		return nil, err
	}

	game := models.NewGame(s.uuidGen.NewID(), mode, s.clock.Now())
	eng, err := engine.New(&engine.Config{Game: game, Shuffler: s.shuffler})
	if err != nil {
		return nil, err
	}

	playerID, err := eng.AddPlayer(input.Name, models.Team(input.Team))
	if err != nil {
		return nil, err
	}

	if err := s.gameRepo.SaveGame(ctx, &gameRepo.SaveGameInput{Game: game}); err != nil {
		return nil, err
	}

	token, err := s.issueToken(ctx, game.ID, playerID)
	if err != nil {
		return nil, err
	}

	return &CreateGameOutput{
		GameID:      game.ID,
		PlayerToken: token,
	}, nil
}

// JoinGame seats another player in a lobby
func (s *service) JoinGame(ctx context.Context, input *JoinGameInput) (*JoinGameOutput, error) {
	unlock := s.locks.acquire(input.GameID)
	defer unlock()

	game, err := s.loadGame(ctx, input.GameID)
	if err != nil {
		return nil, err
	}

	eng, err := engine.New(&engine.Config{Game: game, Shuffler: s.shuffler})
	if err != nil {
		return nil, err
	}

	playerID, err := eng.AddPlayer(input.Name, models.Team(input.Team))
	if err != nil {
		return nil, err
	}

	game.UpdatedAt = s.clock.Now()
	if err := s.gameRepo.SaveGame(ctx, &gameRepo.SaveGameInput{Game: game}); err != nil {
		return nil, err
	}

	token, err := s.issueToken(ctx, game.ID, playerID)
	if err != nil {
		return nil, err
	}

	return &JoinGameOutput{
		PlayerToken: token,
	}, nil
}

// ListOpenGames returns the lobbies still accepting players, oldest
// first
func (s *service) ListOpenGames(ctx context.Context, input *ListOpenGamesInput) (*ListOpenGamesOutput, error) {
	output, err := s.gameRepo.GetOpenGames(ctx, &gameRepo.GetOpenGamesInput{})
	if err != nil {
		return nil, err
	}

	games := output.Games
	sort.Slice(games, func(i, j int) bool {
		if games[i].CreatedAt.Equal(games[j].CreatedAt) {
			return games[i].ID < games[j].ID
		}
		return games[i].CreatedAt.Before(games[j].CreatedAt)
	})

	summaries := make([]*GameSummary, 0, len(games))
	for _, game := range games {
		summaries = append(summaries, &GameSummary{
			GameID:     game.ID,
			Mode:       game.Mode,
			NumPlayers: len(game.Players),
		})
	}

	return &ListOpenGamesOutput{Games: summaries}, nil
}

// StartGame starts the game the token belongs to
func (s *service) StartGame(ctx context.Context, input *StartGameInput) (*StateOutput, error) {
	return s.command(ctx, input.Token, func(eng *engine.Engine, _ string) error {
		return eng.Start()
	})
}

// GetState returns the caller's view without mutating anything
func (s *service) GetState(ctx context.Context, input *GetStateInput) (*StateOutput, error) {
	session, err := s.resolveToken(ctx, input.Token)
	if err != nil {
		return nil, err
	}

	unlock := s.locks.acquire(session.GameID)
	defer unlock()

	game, err := s.loadGame(ctx, session.GameID)
	if err != nil {
		return nil, err
	}

	eng, err := engine.New(&engine.Config{Game: game, Shuffler: s.shuffler})
	if err != nil {
		return nil, err
	}

	return &StateOutput{View: eng.View(session.PlayerID)}, nil
}

// DeclareAction declares the turn-holder's action
func (s *service) DeclareAction(ctx context.Context, input *DeclareActionInput) (*StateOutput, error) {
	return s.command(ctx, input.Token, func(eng *engine.Engine, playerID string) error {
		return eng.DeclareAction(playerID, input.Action, input.TargetID)
	})
}

// DeclareBlock declares a block against the pending action
func (s *service) DeclareBlock(ctx context.Context, input *DeclareBlockInput) (*StateOutput, error) {
	return s.command(ctx, input.Token, func(eng *engine.Engine, playerID string) error {
		return eng.DeclareBlock(playerID, input.BlockType)
	})
}

// Challenge contests the pending action or block
func (s *service) Challenge(ctx context.Context, input *ChallengeInput) (*StateOutput, error) {
	return s.command(ctx, input.Token, func(eng *engine.Engine, playerID string) error {
		return eng.Challenge(playerID)
	})
}

// PassChallenge declines to challenge
func (s *service) PassChallenge(ctx context.Context, input *PassChallengeInput) (*StateOutput, error) {
	return s.command(ctx, input.Token, func(eng *engine.Engine, playerID string) error {
		return eng.PassChallenge(playerID)
	})
}

// PassBlock declines to block
func (s *service) PassBlock(ctx context.Context, input *PassBlockInput) (*StateOutput, error) {
	return s.command(ctx, input.Token, func(eng *engine.Engine, playerID string) error {
		return eng.PassBlock(playerID)
	})
}

// FinishExchange submits the ambassador keep choice
func (s *service) FinishExchange(ctx context.Context, input *FinishExchangeInput) (*StateOutput, error) {
	return s.command(ctx, input.Token, func(eng *engine.Engine, playerID string) error {
		return eng.FinishExchange(playerID, input.KeepIndices)
	})
}

// ChooseLoss picks which influence to reveal
func (s *service) ChooseLoss(ctx context.Context, input *ChooseLossInput) (*StateOutput, error) {
	return s.command(ctx, input.Token, func(eng *engine.Engine, playerID string) error {
		return eng.ChooseLoss(playerID, input.CardIndex)
	})
}

// command resolves the token, applies one engine command under the
// game's lock, persists the result, and projects the caller's view.
// Engine rule violations pass through unwrapped so the handler can
// report the reason verbatim.
func (s *service) command(ctx context.Context, token string, fn func(eng *engine.Engine, playerID string) error) (*StateOutput, error) {
	session, err := s.resolveToken(ctx, token)
	if err != nil {
		return nil, err
	}

	unlock := s.locks.acquire(session.GameID)
	defer unlock()

	game, err := s.loadGame(ctx, session.GameID)
	if err != nil {
		return nil, err
	}

	eng, err := engine.New(&engine.Config{Game: game, Shuffler: s.shuffler})
	if err != nil {
		return nil, err
	}

	if err := fn(eng, session.PlayerID); err != nil {
		return nil, err
	}

	game.UpdatedAt = s.clock.Now()
	if err := s.gameRepo.SaveGame(ctx, &gameRepo.SaveGameInput{Game: game}); err != nil {
		return nil, err
	}

	return &StateOutput{View: eng.View(session.PlayerID)}, nil
}

func (s *service) resolveToken(ctx context.Context, token string) (*models.Session, error) {
	session, err := s.sessionRepo.GetSession(ctx, &sessionRepo.GetSessionInput{Token: token})
	if err != nil {
		if errors.Is(err, sessionRepo.ErrSessionNotFound) {
			return nil, ErrInvalidToken
		}
		return nil, err
	}
	return session, nil
}

func (s *service) loadGame(ctx context.Context, gameID string) (*models.Game, error) {
	game, err := s.gameRepo.GetGame(ctx, &gameRepo.GetGameInput{GameID: gameID})
	if err != nil {
		if errors.Is(err, gameRepo.ErrGameNotFound) {
			return nil, ErrGameNotFound
		}
		return nil, err
	}
	return game, nil
}

func (s *service) issueToken(ctx context.Context, gameID, playerID string) (string, error) {
	token := s.uuidGen.NewID()
	err := s.sessionRepo.SaveSession(ctx, &sessionRepo.SaveSessionInput{
		Session: &models.Session{
			Token:     token,
			GameID:    gameID,
			PlayerID:  playerID,
			CreatedAt: s.clock.Now(),
		},
	})
	if err != nil {
		return "", err
	}
	return token, nil
}
