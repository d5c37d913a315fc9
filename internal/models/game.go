package models

import (
	"time"
)

// Game is the full mutable state of one game instance. It is owned
// exclusively by whichever command is being applied; the engine never
// shares it between instances.
type Game struct {
	// ID is the unique identifier for the game
	ID string

	// Mode selects the rule set
	Mode Mode

	// Phase gates which commands are legal
	Phase Phase

	// Players maps player ID to player state; players are never
	// removed, eliminated players simply hold an empty hand
	Players map[string]*Player

	// Teams maps each team to its roster in join order
	Teams map[Team][]string

	// TurnOrder interleaves the two teams, fixed at start
	TurnOrder []string

	// TurnIndex points at the current turn-holder in TurnOrder
	TurnIndex int

	// Deck is the shuffled draw pile; the last element is drawn first
	Deck []Role

	// Revealed is the face-up discard, public for the rest of the game
	Revealed []Role

	// Logs is the append-only human-readable game log
	Logs []string

	// Winner is the winning team, empty until the game ends
	Winner Team

	// PendingAction is the active undecided action, if any
	PendingAction *PendingAction

	// PendingBlock is the active block declaration, if any
	PendingBlock *PendingBlock

	// Exchange is the ambassador exchange in progress, if any
	Exchange *ExchangeState

	// LossChoice is the influence loss awaiting a pick, if any
	LossChoice *LossChoiceState

	// CreatedAt is when the game was created
	CreatedAt time.Time

	// UpdatedAt is when the game was last updated
	UpdatedAt time.Time
}

// NewGame returns a fresh game in the lobby phase
func NewGame(id string, mode Mode, now time.Time) *Game {
	return &Game{
		ID:      id,
		Mode:    mode,
		Phase:   PhaseLobby,
		Players: make(map[string]*Player),
		Teams: map[Team][]string{
			TeamA: {},
			TeamB: {},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// CurrentPlayerID returns the turn-holder's ID, or empty before start
func (g *Game) CurrentPlayerID() string {
	if len(g.TurnOrder) == 0 {
		return ""
	}
	return g.TurnOrder[g.TurnIndex]
}
