package engine

import "errors"

// IllegalMove is a rule violation. These are expected, recoverable,
// caller-visible conditions: the engine validates fully before any
// mutation, so a returned IllegalMove means state is unchanged.
type IllegalMove string

// Error implements the error interface
func (e IllegalMove) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilConfig   IllegalMove = "config cannot be nil"
	ErrNilGame     IllegalMove = "game cannot be nil"
	ErrNilShuffler IllegalMove = "shuffler cannot be nil"

	ErrUnknownPlayer IllegalMove = "unknown player"
	ErrDeckEmpty     IllegalMove = "deck is empty"

	ErrLobbyClosed   IllegalMove = "cannot join after game start"
	ErrInvalidTeam   IllegalMove = "invalid team"
	ErrAlreadyActive IllegalMove = "game already started"
	ErrPlayerCount   IllegalMove = "need exactly 4 or 6 players"
	ErrUnevenTeams   IllegalMove = "teams must have the same number of players"

	ErrNotYourTurn        IllegalMove = "it is not your turn"
	ErrNotActionPhase     IllegalMove = "cannot act right now"
	ErrNoInfluence        IllegalMove = "you have no influence"
	ErrSuperNeedsTwoCards IllegalMove = "you need two copies of that role to use its super ability"
	ErrSuperModeOnly      IllegalMove = "super abilities are only available in super team mode"
	ErrInvalidTarget      IllegalMove = "invalid target"
	ErrTargetTeammate     IllegalMove = "cannot target your own teammate"
	ErrTargetEliminated   IllegalMove = "target has no influence"
	ErrActionNeedsTarget  IllegalMove = "this action requires a target"
	ErrInsufficientCoins  IllegalMove = "not enough coins for this action"

	ErrNotChallengeWindow     IllegalMove = "no action to challenge currently"
	ErrNoPendingAction        IllegalMove = "no pending action"
	ErrChallengeOwnTeam       IllegalMove = "you cannot challenge your own teammate"
	ErrChallengeOwnBlock      IllegalMove = "you cannot challenge your own teammate's block"
	ErrActionNotChallengeable IllegalMove = "this action cannot be challenged"
	ErrBlockNotChallengeable  IllegalMove = "this block cannot be challenged"

	ErrNotBlockWindow     IllegalMove = "not in block window"
	ErrBlockAlreadyMade   IllegalMove = "a block has already been declared"
	ErrUnknownBlock       IllegalMove = "unknown block type"
	ErrBlockWrongAction   IllegalMove = "this block does not apply to the pending action"
	ErrBlockOwnTeam       IllegalMove = "you cannot block your own teammate"
	ErrBlockNotTarget     IllegalMove = "only the target can declare this block"
	ErrSuperBlockModeOnly IllegalMove = "super contessa only exists in super team mode"
	ErrSuperBlockTwoCards IllegalMove = "need two contessas to super-block a coup"

	ErrNotSwapPhase     IllegalMove = "not in ambassador exchange"
	ErrNotExchanging    IllegalMove = "you are not exchanging right now"
	ErrKeepCount        IllegalMove = "you must keep exactly your number of cards"
	ErrInvalidKeepIndex IllegalMove = "invalid keep index"
	ErrNotLossPhase     IllegalMove = "not choosing a card to lose right now"
	ErrNotLossChooser   IllegalMove = "you are not the one choosing a card to lose"
	ErrInvalidCardIndex IllegalMove = "invalid card index"
)

// IsIllegalMove reports whether err is a rule violation rather than an
// internal failure
func IsIllegalMove(err error) bool {
	var im IllegalMove
	return errors.As(err, &im)
}
