package engine

import "teamcoup/internal/models"

// startLossChoice suspends play until the victim picks which influence
// to reveal, remembering what to resume afterwards. A victim with no
// cards left cannot be asked to choose, so the continuation applies
// immediately.
func (e *Engine) startLossChoice(victimID string, cont models.Continuation) {
	victim := e.game.Players[victimID]
	if victim == nil {
		return
	}
	if victim.NumCards() == 0 {
		e.applyContinuation(cont)
		return
	}

	e.game.LossChoice = &models.LossChoiceState{
		PlayerID:     victimID,
		Continuation: cont,
	}
	e.game.Phase = models.PhaseLossChoice
}

// ChooseLoss reveals and discards one of the victim's cards, then
// resumes whatever the loss interrupted
func (e *Engine) ChooseLoss(playerID string, cardIndex int) error {
	if e.game.Phase != models.PhaseLossChoice {
		return ErrNotLossPhase
	}
	lc := e.game.LossChoice
	if lc == nil || playerID != lc.PlayerID {
		return ErrNotLossChooser
	}

	victim := e.game.Players[playerID]
	if cardIndex < 0 || cardIndex >= victim.NumCards() {
		return ErrInvalidCardIndex
	}

	lost := victim.Cards[cardIndex]
	victim.Cards = append(victim.Cards[:cardIndex], victim.Cards[cardIndex+1:]...)
	e.game.Revealed = append(e.game.Revealed, lost)
	e.logf("%s loses influence (%s).", victim.Name, lost)

	if victim.NumCards() == 0 {
		e.logf("%s is eliminated.", victim.Name)
	}
	e.game.LossChoice = nil

	e.checkVictory()
	if e.game.Phase == models.PhaseGameOver {
		return nil
	}

	e.applyContinuation(lc.Continuation)
	return nil
}

// applyContinuation is the single dispatch point for the suspended
// branch a loss-choice interrupted
func (e *Engine) applyContinuation(cont models.Continuation) {
	switch cont {
	case models.ContinuationResolveAction:
		e.resolvePending()
	case models.ContinuationCancelAction:
		e.game.PendingAction = nil
		e.game.PendingBlock = nil
		e.game.Phase = models.PhaseActionSelection
		e.advanceTurn()
	case models.ContinuationBlockStands:
		e.blockStands()
	case models.ContinuationBlockFails:
		e.blockFails()
	case models.ContinuationNextTurn:
		e.game.Phase = models.PhaseActionSelection
		e.advanceTurn()
	default:
		e.game.Phase = models.PhaseActionSelection
	}
}
