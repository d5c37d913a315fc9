package engine

import "teamcoup/internal/models"

// requiredCopies returns how many copies of the claimed role make the
// claim truthful
func requiredCopies(claim *models.Claim) int {
	if claim.RequiresTwo {
		return 2
	}
	return 1
}

// Challenge contests the pending block if one exists, otherwise the
// pending action. Exactly one player ends up choosing a card to lose:
// the losing claimant or the losing challenger, never both.
func (e *Engine) Challenge(challengerID string) error {
	if e.game.Phase != models.PhaseChallengeWindow {
		return ErrNotChallengeWindow
	}

	challenger, err := e.player(challengerID)
	if err != nil {
		return err
	}

	if pb := e.game.PendingBlock; pb != nil {
		blocker := e.game.Players[pb.BlockerID]
		if challenger.Team == blocker.Team {
			return ErrChallengeOwnBlock
		}
		if pb.Claim == nil {
			return ErrBlockNotChallengeable
		}

		needed := requiredCopies(pb.Claim)
		if blocker.CountRole(pb.Claim.Role) >= needed {
			// Truthful block: claimed card gets replaced, challenger
			// pays an influence, block stands
			e.replaceClaimedCard(blocker, pb.Claim.Role)
			e.logf("%s challenges %s's block and loses the challenge.", challenger.Name, blocker.Name)
			e.startLossChoice(challengerID, models.ContinuationBlockStands)
		} else {
			e.logf("%s successfully challenges %s's block.", challenger.Name, blocker.Name)
			e.startLossChoice(blocker.ID, models.ContinuationBlockFails)
		}
		return nil
	}

	pa := e.game.PendingAction
	if pa == nil {
		return ErrNoPendingAction
	}

	actor := e.game.Players[pa.ActorID]
	if challenger.Team == actor.Team {
		return ErrChallengeOwnTeam
	}
	if pa.Claim == nil {
		return ErrActionNotChallengeable
	}

	needed := requiredCopies(pa.Claim)
	if actor.CountRole(pa.Claim.Role) >= needed {
		e.replaceClaimedCard(actor, pa.Claim.Role)
		e.logf("%s challenges %s's %s and loses the challenge.", challenger.Name, actor.Name, pa.Claim.Role)
		e.startLossChoice(challengerID, models.ContinuationResolveAction)
	} else {
		e.logf("%s successfully challenges %s's %s.", challenger.Name, actor.Name, pa.Claim.Role)
		e.startLossChoice(actor.ID, models.ContinuationCancelAction)
	}
	return nil
}

// PassChallenge declines to challenge. With a block on the table the
// block stands; otherwise the action proceeds to its block window, or
// resolves immediately if nothing can block it.
func (e *Engine) PassChallenge(playerID string) error {
	if e.game.Phase != models.PhaseChallengeWindow {
		return ErrNotChallengeWindow
	}
	if _, err := e.player(playerID); err != nil {
		return err
	}

	if e.game.PendingBlock != nil {
		e.blockStands()
		return nil
	}

	pa := e.game.PendingAction
	if pa == nil {
		return ErrNoPendingAction
	}

	if isBlockableAction(pa.Action) {
		e.game.Phase = models.PhaseBlockWindow
		return nil
	}
	e.resolvePending()
	return nil
}

// replaceClaimedCard swaps a correctly claimed card for a fresh draw:
// the claimed card shuffles back into the deck and the player draws a
// replacement. Observers learn that the claim was truthful, never the
// identity of the new card.
func (e *Engine) replaceClaimedCard(player *models.Player, role models.Role) {
	idx := -1
	for i, c := range player.Cards {
		if c == role {
			idx = i
			break
		}
	}
	if idx < 0 {
		// Caller already verified the count; nothing to do
		return
	}

	e.game.Deck = append(e.game.Deck, role)
	e.shuffleDeck()
	card, err := e.draw()
	if err != nil {
		// Deck can't be empty right after the append
		return
	}
	player.Cards[idx] = card

	e.logf("%s's %s claim was correct. %s draws a new influence card.", player.Name, role, player.Name)
}
