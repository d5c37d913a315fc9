// Package engine implements the rules of the team variant of the
// bluffing card game: phase-gated command legality, challenge and
// block arbitration, loss-choice continuations, and team victory.
//
// An Engine wraps exactly one game aggregate and is not safe for
// concurrent use; the calling layer serializes commands per game.
package engine

import (
	"fmt"

	"teamcoup/internal/models"
	"teamcoup/internal/shuffle"
)

// Engine applies commands to a single game instance
type Engine struct {
	game     *models.Game
	shuffler *shuffle.Shuffler
}

// Config holds the dependencies for an engine
type Config struct {
	// Game is the aggregate the engine mutates
	Game *models.Game

	// Shuffler is the only source of randomness
	Shuffler *shuffle.Shuffler
}

// New creates an engine around an existing game
func New(cfg *Config) (*Engine, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.Game == nil {
		return nil, ErrNilGame
	}
	if cfg.Shuffler == nil {
		return nil, ErrNilShuffler
	}

	return &Engine{
		game:     cfg.Game,
		shuffler: cfg.Shuffler,
	}, nil
}

// Game returns the underlying aggregate
func (e *Engine) Game() *models.Game {
	return e.game
}

func (e *Engine) logf(format string, args ...any) {
	e.game.Logs = append(e.game.Logs, fmt.Sprintf(format, args...))
}

func (e *Engine) player(id string) (*models.Player, error) {
	p, ok := e.game.Players[id]
	if !ok {
		return nil, ErrUnknownPlayer
	}
	return p, nil
}

func (e *Engine) shuffleDeck() {
	deck := e.game.Deck
	e.shuffler.Shuffle(len(deck), func(i, j int) {
		deck[i], deck[j] = deck[j], deck[i]
	})
}

// draw removes the top card of the deck. Depletion should be
// unreachable under the fixed 15-card economy but stays a guarded
// error rather than a panic.
func (e *Engine) draw() (models.Role, error) {
	if len(e.game.Deck) == 0 {
		return "", ErrDeckEmpty
	}
	last := len(e.game.Deck) - 1
	card := e.game.Deck[last]
	e.game.Deck = e.game.Deck[:last]
	return card, nil
}

// advanceTurn moves to the next player who still holds influence,
// wrapping the turn order. It is a no-op once the game is over.
func (e *Engine) advanceTurn() {
	if e.game.Phase == models.PhaseGameOver {
		return
	}
	for range e.game.TurnOrder {
		e.game.TurnIndex = (e.game.TurnIndex + 1) % len(e.game.TurnOrder)
		pid := e.game.TurnOrder[e.game.TurnIndex]
		if e.game.Players[pid].NumCards() > 0 {
			break
		}
	}
}
