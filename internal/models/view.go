package models

// The view types are the wire format served to clients. They carry the
// per-viewer redaction: nothing in a view may reveal another player's
// hand, the deck contents, or an exchange or loss-choice pool that
// belongs to someone else.

// PlayerView is the public projection of one player
type PlayerView struct {
	ID       string `json:"player_id"`
	Name     string `json:"name"`
	Team     Team   `json:"team"`
	Coins    int    `json:"coins"`
	Alive    bool   `json:"alive"`
	NumCards int    `json:"num_cards"`

	// Cards is set only when the player is the viewer
	Cards []Role `json:"cards,omitempty"`
}

// PendingActionView exposes the public half of a pending action; the
// claimed role stays hidden beyond what the action kind implies
type PendingActionView struct {
	ActorID  string `json:"actor_id"`
	Action   string `json:"action"`
	TargetID string `json:"target_id,omitempty"`
}

// PendingBlockView exposes the public half of a pending block
type PendingBlockView struct {
	BlockerID string `json:"blocker_id"`
	BlockType string `json:"block_type"`
}

// GameView is a per-viewer snapshot of a game
type GameView struct {
	GameID        string                 `json:"game_id"`
	Mode          Mode                   `json:"mode"`
	Phase         Phase                  `json:"phase"`
	You           string                 `json:"you"`
	CurrentPlayer string                 `json:"current_player,omitempty"`
	TurnOrder     []string               `json:"turn_order"`
	Players       map[string]*PlayerView `json:"players"`
	Winner        Team                   `json:"winner_team,omitempty"`
	Logs          []string               `json:"logs"`

	PendingAction *PendingActionView `json:"pending_action,omitempty"`
	PendingBlock  *PendingBlockView  `json:"pending_block,omitempty"`

	// ExchangePoolSize is the number of freshly drawn exchange cards,
	// public to onlookers; ExchangeCards holds the full pool and is
	// set only for the exchanging player during swap_choice
	ExchangePoolSize int    `json:"exchange_pool_size"`
	ExchangeCards    []Role `json:"exchange_cards,omitempty"`

	// LossChoiceCards is set only for the player picking a card to lose
	LossChoicePlayerID string `json:"loss_choice_player_id,omitempty"`
	LossChoiceCards    []Role `json:"loss_choice_cards,omitempty"`

	DeckSize int    `json:"deck_size"`
	Revealed []Role `json:"revealed_cards"`
}
