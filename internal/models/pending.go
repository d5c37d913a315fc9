package models

// Claim is an assertion of holding a specific role, made by an action
// or a block and contestable by challenge. RequiresTwo marks the
// two-copy "super" variants.
type Claim struct {
	Role        Role
	RequiresTwo bool
}

// PendingAction is the currently declared, not-yet-resolved action.
// At most one exists at a time.
type PendingAction struct {
	// ActorID is the player who declared the action
	ActorID string

	// Action is the declared action kind
	Action string

	// TargetID is the targeted player, empty for untargeted actions
	TargetID string

	// Claim is the role the action asserts, nil for claim-free actions
	Claim *Claim

	// Cost is the number of coins already deducted up front
	Cost int

	// Refundable marks a cost returned to the actor if the action
	// resolves without being blocked
	Refundable bool
}

// PendingBlock is an active block declaration. It exists only while a
// PendingAction is active and its challenge window is open.
type PendingBlock struct {
	// BlockerID is the player who declared the block
	BlockerID string

	// BlockType is the declared block kind
	BlockType string

	// Claim is the role the block asserts
	Claim *Claim
}

// ExchangeState tracks an ambassador exchange in progress
type ExchangeState struct {
	// ActorID is the exchanging player
	ActorID string

	// Pool is the actor's hand plus the drawn cards, visible only to
	// the actor until partitioned
	Pool []Role
}

// Continuation tags what resumes once a loss-choice completes
type Continuation string

const (
	// ContinuationResolveAction resumes the interrupted pending action
	ContinuationResolveAction Continuation = "resolve_action"

	// ContinuationCancelAction discards the pending action and
	// advances the turn
	ContinuationCancelAction Continuation = "cancel_action"

	// ContinuationBlockStands lets the block prevent the action
	ContinuationBlockStands Continuation = "block_stands"

	// ContinuationBlockFails drops the block and resolves the action
	ContinuationBlockFails Continuation = "block_fails"

	// ContinuationNextTurn simply advances to the next turn
	ContinuationNextTurn Continuation = "next_turn"
)

// LossChoiceState tracks a forced influence loss awaiting the victim's
// pick, plus the continuation to dispatch once the loss completes.
type LossChoiceState struct {
	PlayerID     string
	Continuation Continuation
}
