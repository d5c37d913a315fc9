package engine

import (
	"fmt"
	"strings"

	"teamcoup/internal/models"
)

// Action kinds accepted by DeclareAction
const (
	ActionIncome           = "income"
	ActionForeignAid       = "foreign_aid"
	ActionCoup             = "coup"
	ActionSuperCoup        = "super_coup"
	ActionTax              = "tax"
	ActionSuperTax         = "super_tax"
	ActionSteal            = "steal"
	ActionSuperSteal       = "super_steal"
	ActionExchange         = "exchange"
	ActionSuperExchange    = "super_exchange"
	ActionAssassinate      = "assassinate"
	ActionSuperAssassinate = "super_assassinate"
)

const (
	coupCost        = 7
	superCoupCost   = 12
	assassinateCost = 3

	forcedCoupThresholdNormal = 10
	forcedCoupThresholdSuper  = 11
)

// claimSpec parameterizes the claim-bearing actions
type claimSpec struct {
	role        models.Role
	requiresTwo bool
	needsTarget bool
	cost        int
	refundable  bool
}

var claimActions = map[string]claimSpec{
	ActionTax:           {role: models.RoleDuke},
	ActionSuperTax:      {role: models.RoleDuke, requiresTwo: true},
	ActionSteal:         {role: models.RoleCaptain, needsTarget: true},
	ActionSuperSteal:    {role: models.RoleCaptain, requiresTwo: true, needsTarget: true},
	ActionExchange:      {role: models.RoleAmbassador},
	ActionSuperExchange: {role: models.RoleAmbassador, requiresTwo: true},
	ActionAssassinate:   {role: models.RoleAssassin, needsTarget: true, cost: assassinateCost},
	ActionSuperAssassinate: {
		role:        models.RoleAssassin,
		requiresTwo: true,
		needsTarget: true,
		cost:        assassinateCost,
		// cost comes back if the assassination is not blocked
		refundable: true,
	},
}

func isSuperAction(action string) bool {
	return strings.HasPrefix(action, "super_")
}

// isBlockableAction reports whether an uncontested action still offers
// a block window after its challenge window closes
func isBlockableAction(action string) bool {
	switch action {
	case ActionSteal, ActionSuperSteal, ActionAssassinate, ActionSuperAssassinate:
		return true
	}
	return false
}

// DeclareAction is the entry point for a turn. Validation order: turn
// ownership, influence, super two-card requirement, forced coup
// threshold, target legality, then per-action requirements. Nothing is
// mutated until every check passes.
func (e *Engine) DeclareAction(playerID, action, targetID string) error {
	if e.game.Phase != models.PhaseActionSelection {
		return ErrNotActionPhase
	}
	if playerID != e.game.CurrentPlayerID() {
		return ErrNotYourTurn
	}

	player, err := e.player(playerID)
	if err != nil {
		return err
	}
	if player.NumCards() == 0 {
		return ErrNoInfluence
	}

	// Super abilities need two cards in hand to be claimable at all
	// (Super Coup carries no claim and is exempt)
	if isSuperAction(action) && action != ActionSuperCoup && player.NumCards() < 2 {
		return ErrSuperNeedsTwoCards
	}

	threshold := forcedCoupThresholdNormal
	if e.game.Mode == models.ModeSuperTeam {
		threshold = forcedCoupThresholdSuper
	}
	if player.Coins >= threshold && !isCoupAction(e.game.Mode, action) {
		return IllegalMove(fmt.Sprintf("at %d+ coins you must coup", threshold))
	}

	var target *models.Player
	if targetID != "" {
		target = e.game.Players[targetID]
		if target == nil {
			return ErrInvalidTarget
		}
		if target.Team == player.Team {
			return ErrTargetTeammate
		}
		if target.NumCards() == 0 {
			return ErrTargetEliminated
		}
	}

	switch action {
	case ActionIncome:
		e.clearPending()
		player.Coins++
		e.logf("%s takes income (+1 coin).", player.Name)
		e.checkVictory()
		e.advanceTurn()
		return nil

	case ActionForeignAid:
		// Blockable by Duke, not challengeable
		e.clearPending()
		e.game.PendingAction = &models.PendingAction{
			ActorID: playerID,
			Action:  ActionForeignAid,
		}
		e.game.Phase = models.PhaseBlockWindow
		e.logf("%s attempts Foreign Aid (+2 coins).", player.Name)
		return nil

	case ActionCoup:
		if target == nil {
			return ErrActionNeedsTarget
		}
		if player.Coins < coupCost {
			return ErrInsufficientCoins
		}
		e.clearPending()
		player.Coins -= coupCost
		e.game.PendingAction = &models.PendingAction{
			ActorID:  playerID,
			Action:   ActionCoup,
			TargetID: targetID,
			Cost:     coupCost,
		}
		// Only a Super Contessa can stop a coup, and only in super mode
		e.game.Phase = models.PhaseBlockWindow
		e.logf("%s launches a coup on %s (cost %d).", player.Name, target.Name, coupCost)
		return nil

	case ActionSuperCoup:
		if e.game.Mode != models.ModeSuperTeam {
			return ErrSuperModeOnly
		}
		if target == nil {
			return ErrActionNeedsTarget
		}
		if player.Coins < superCoupCost {
			return ErrInsufficientCoins
		}
		e.clearPending()
		player.Coins -= superCoupCost
		e.logf("%s launches a SUPER coup on %s (cost %d).", player.Name, target.Name, superCoupCost)
		// Unblockable and unchallengeable: straight to the loss
		e.startLossChoice(targetID, models.ContinuationNextTurn)
		return nil
	}

	spec, ok := claimActions[action]
	if !ok {
		return IllegalMove(fmt.Sprintf("unknown action: %s", action))
	}
	if e.game.Mode == models.ModeNormalTeam && isSuperAction(action) {
		return ErrSuperModeOnly
	}
	if spec.needsTarget && target == nil {
		return ErrActionNeedsTarget
	}
	if spec.cost > 0 && player.Coins < spec.cost {
		return ErrInsufficientCoins
	}

	e.clearPending()
	if spec.cost > 0 {
		// Cost is paid up front; only refundable actions get it back
		player.Coins -= spec.cost
	}

	e.game.PendingAction = &models.PendingAction{
		ActorID:  playerID,
		Action:   action,
		TargetID: targetID,
		Claim: &models.Claim{
			Role:        spec.role,
			RequiresTwo: spec.requiresTwo,
		},
		Cost:       spec.cost,
		Refundable: spec.refundable,
	}
	e.game.Phase = models.PhaseChallengeWindow

	switch {
	case target != nil && (action == ActionSteal || action == ActionSuperSteal):
		e.logf("%s attempts %s from %s.", player.Name, humanAction(action), target.Name)
	case target != nil:
		e.logf("%s attempts %s on %s.", player.Name, humanAction(action), target.Name)
	default:
		e.logf("%s attempts %s.", player.Name, humanAction(action))
	}

	return nil
}

func isCoupAction(mode models.Mode, action string) bool {
	if action == ActionCoup {
		return true
	}
	return mode == models.ModeSuperTeam && action == ActionSuperCoup
}

// clearPending wipes any leftover interaction state before a new
// declaration takes effect
func (e *Engine) clearPending() {
	e.game.PendingAction = nil
	e.game.PendingBlock = nil
	e.game.Exchange = nil
	e.game.LossChoice = nil
}

// resolvePending applies the effect of the pending action once it is
// past every challenge and block
func (e *Engine) resolvePending() {
	pa := e.game.PendingAction
	if pa == nil {
		return
	}

	actor := e.game.Players[pa.ActorID]
	var target *models.Player
	if pa.TargetID != "" {
		target = e.game.Players[pa.TargetID]
	}

	switch pa.Action {
	case ActionForeignAid:
		actor.Coins += 2
		e.logf("%s gains 2 coins from Foreign Aid.", actor.Name)
		e.finishResolution()

	case ActionCoup:
		if target == nil {
			e.endTurnWithoutEffect()
			return
		}
		e.logf("%s's coup on %s goes through.", actor.Name, target.Name)
		e.game.PendingAction = nil
		e.startLossChoice(target.ID, models.ContinuationNextTurn)

	case ActionTax, ActionSuperTax:
		gain := 3
		if pa.Action == ActionSuperTax {
			gain = 5
		}
		actor.Coins += gain
		e.logf("%s gains %d coins from Duke.", actor.Name, gain)
		e.finishResolution()

	case ActionSteal, ActionSuperSteal:
		if target == nil {
			e.endTurnWithoutEffect()
			return
		}
		if target.Coins <= 0 {
			// Still a legal resolution, just nothing to take
			e.logf("%s attempts to steal from %s, but they have no coins.", actor.Name, target.Name)
			e.finishResolution()
			return
		}
		amount := 2
		if pa.Action == ActionSuperSteal {
			amount = 3
		}
		take := min(amount, target.Coins)
		target.Coins -= take
		actor.Coins += take
		e.logf("%s steals %d coin(s) from %s as Captain.", actor.Name, take, target.Name)
		e.finishResolution()

	case ActionExchange, ActionSuperExchange:
		drawCount := 2
		if pa.Action == ActionSuperExchange {
			drawCount = 3
		}
		e.game.PendingAction = nil
		e.startExchange(actor.ID, drawCount)

	case ActionAssassinate, ActionSuperAssassinate:
		if target == nil {
			e.endTurnWithoutEffect()
			return
		}
		if pa.Action == ActionSuperAssassinate && pa.Cost > 0 && pa.Refundable {
			actor.Coins += pa.Cost
			e.logf("%s keeps their %d coins from Super Assassin.", actor.Name, pa.Cost)
		}
		e.game.PendingAction = nil
		e.startLossChoice(target.ID, models.ContinuationNextTurn)

	default:
		e.endTurnWithoutEffect()
	}
}

// finishResolution closes out a fully-applied action and hands the
// turn to the next player
func (e *Engine) finishResolution() {
	e.game.PendingAction = nil
	e.checkVictory()
	if e.game.Phase != models.PhaseGameOver {
		e.game.Phase = models.PhaseActionSelection
	}
	e.advanceTurn()
}

func (e *Engine) endTurnWithoutEffect() {
	e.game.PendingAction = nil
	if e.game.Phase != models.PhaseGameOver {
		e.game.Phase = models.PhaseActionSelection
	}
	e.advanceTurn()
}

// humanAction translates an action kind into the name used in logs
func humanAction(action string) string {
	switch action {
	case ActionTax:
		return "Duke"
	case ActionSuperTax:
		return "Super Duke"
	case ActionExchange:
		return "Ambassador"
	case ActionSuperExchange:
		return "Super Ambassador"
	case ActionSteal:
		return "Captain steal"
	case ActionSuperSteal:
		return "Super Captain steal"
	case ActionAssassinate:
		return "Assassin"
	case ActionSuperAssassinate:
		return "Super Assassin"
	case ActionForeignAid:
		return "Foreign Aid"
	case ActionCoup:
		return "Coup"
	case ActionSuperCoup:
		return "Super Coup"
	}
	return action
}
