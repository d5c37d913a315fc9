package engine

import "teamcoup/internal/models"

// Block kinds accepted by DeclareBlock
const (
	BlockForeignAid      = "block_foreign_aid"
	BlockStealCaptain    = "block_steal_captain"
	BlockStealAmbassador = "block_steal_ambassador"
	BlockAssassinate     = "block_assassinate"
	BlockCoup            = "block_coup"
)

// DeclareBlock lets a player contest the pending action with a claimed
// defense. Only one block per action; declaring reopens the challenge
// window with the block as the contested claim.
func (e *Engine) DeclareBlock(playerID, blockType string) error {
	if e.game.Phase != models.PhaseBlockWindow {
		return ErrNotBlockWindow
	}
	pa := e.game.PendingAction
	if pa == nil {
		return ErrNoPendingAction
	}
	if e.game.PendingBlock != nil {
		return ErrBlockAlreadyMade
	}

	blocker, err := e.player(playerID)
	if err != nil {
		return err
	}
	actor := e.game.Players[pa.ActorID]
	var target *models.Player
	if pa.TargetID != "" {
		target = e.game.Players[pa.TargetID]
	}

	var claim models.Claim
	switch blockType {
	case BlockForeignAid:
		if pa.Action != ActionForeignAid {
			return ErrBlockWrongAction
		}
		if blocker.Team == actor.Team {
			return ErrBlockOwnTeam
		}
		claim = models.Claim{Role: models.RoleDuke}

	case BlockStealCaptain, BlockStealAmbassador:
		if pa.Action != ActionSteal && pa.Action != ActionSuperSteal {
			return ErrBlockWrongAction
		}
		if target == nil || blocker.ID != target.ID {
			return ErrBlockNotTarget
		}
		claim = models.Claim{Role: models.RoleCaptain}
		if blockType == BlockStealAmbassador {
			claim = models.Claim{Role: models.RoleAmbassador}
		}

	case BlockAssassinate:
		if pa.Action != ActionAssassinate && pa.Action != ActionSuperAssassinate {
			return ErrBlockWrongAction
		}
		if target == nil || blocker.ID != target.ID {
			return ErrBlockNotTarget
		}
		claim = models.Claim{Role: models.RoleContessa}

	case BlockCoup:
		// Super Contessa: two Contessas stop a coup, super mode only
		if pa.Action != ActionCoup {
			return ErrBlockWrongAction
		}
		if e.game.Mode != models.ModeSuperTeam {
			return ErrSuperBlockModeOnly
		}
		if target == nil || blocker.ID != target.ID {
			return ErrBlockNotTarget
		}
		if blocker.NumCards() < 2 {
			return ErrSuperBlockTwoCards
		}
		claim = models.Claim{Role: models.RoleContessa, RequiresTwo: true}

	default:
		return ErrUnknownBlock
	}

	e.game.PendingBlock = &models.PendingBlock{
		BlockerID: playerID,
		BlockType: blockType,
		Claim:     &claim,
	}
	e.game.Phase = models.PhaseChallengeWindow

	withText := ""
	switch blockType {
	case BlockStealCaptain:
		withText = " with Captain"
	case BlockStealAmbassador:
		withText = " with Ambassador"
	}
	e.logf("%s attempts to block %s's %s%s.", blocker.Name, actor.Name, humanAction(pa.Action), withText)

	return nil
}

// PassBlock declines to block; the pending action resolves
func (e *Engine) PassBlock(playerID string) error {
	if e.game.Phase != models.PhaseBlockWindow {
		return ErrNotBlockWindow
	}
	if e.game.PendingAction == nil {
		return ErrNoPendingAction
	}
	if _, err := e.player(playerID); err != nil {
		return err
	}
	// The first pass stands for the table: no one blocks
	e.resolvePending()
	return nil
}

// blockStands cancels the pending action. Coins already paid stay
// paid: a stood block on a coup or assassination burns the cost.
func (e *Engine) blockStands() {
	pa := e.game.PendingAction
	pb := e.game.PendingBlock
	if pa == nil || pb == nil {
		return
	}
	actor := e.game.Players[pa.ActorID]
	blocker := e.game.Players[pb.BlockerID]

	e.logf("%s's block stands. %s's %s is prevented.", blocker.Name, actor.Name, humanAction(pa.Action))
	e.game.PendingAction = nil
	e.game.PendingBlock = nil
	e.checkVictory()
	if e.game.Phase != models.PhaseGameOver {
		e.game.Phase = models.PhaseActionSelection
	}
	e.advanceTurn()
}

// blockFails drops the block and lets the action resolve
func (e *Engine) blockFails() {
	pa := e.game.PendingAction
	pb := e.game.PendingBlock
	if pa == nil || pb == nil {
		return
	}
	blocker := e.game.Players[pb.BlockerID]
	e.logf("%s's block fails. %s goes through.", blocker.Name, humanAction(pa.Action))
	e.game.PendingBlock = nil
	e.resolvePending()
}
