package engine

import "teamcoup/internal/models"

// View projects the game for one viewer. The projection is the privacy
// contract: a viewer sees their own hand, everyone's coins, counts and
// liveness, the public half of any pending action or block, the deck
// size, and the revealed discard. Exchange pools and loss-choice hands
// are visible only to their owner.
func (e *Engine) View(viewerID string) *models.GameView {
	g := e.game

	players := make(map[string]*models.PlayerView, len(g.Players))
	for pid, p := range g.Players {
		pv := &models.PlayerView{
			ID:       p.ID,
			Name:     p.Name,
			Team:     p.Team,
			Coins:    p.Coins,
			Alive:    p.Alive(),
			NumCards: p.NumCards(),
		}
		if pid == viewerID {
			pv.Cards = append([]models.Role(nil), p.Cards...)
		}
		players[pid] = pv
	}

	view := &models.GameView{
		GameID:    g.ID,
		Mode:      g.Mode,
		Phase:     g.Phase,
		You:       viewerID,
		TurnOrder: append([]string(nil), g.TurnOrder...),
		Players:   players,
		Winner:    g.Winner,
		Logs:      append([]string(nil), g.Logs...),
		DeckSize:  len(g.Deck),
		Revealed:  append([]models.Role(nil), g.Revealed...),
	}

	if g.Phase != models.PhaseLobby && g.Phase != models.PhaseGameOver {
		view.CurrentPlayer = g.CurrentPlayerID()
	}

	if pa := g.PendingAction; pa != nil {
		// The claimed role stays private beyond what the kind implies
		view.PendingAction = &models.PendingActionView{
			ActorID:  pa.ActorID,
			Action:   pa.Action,
			TargetID: pa.TargetID,
		}
	}
	if pb := g.PendingBlock; pb != nil {
		view.PendingBlock = &models.PendingBlockView{
			BlockerID: pb.BlockerID,
			BlockType: pb.BlockType,
		}
	}

	if ex := g.Exchange; ex != nil {
		actor := g.Players[ex.ActorID]
		drawn := len(ex.Pool) - actor.NumCards()
		if drawn < 0 {
			drawn = 0
		}
		view.ExchangePoolSize = drawn
		if viewerID == ex.ActorID && g.Phase == models.PhaseSwapChoice {
			view.ExchangeCards = append([]models.Role(nil), ex.Pool...)
		}
	}

	if lc := g.LossChoice; lc != nil && g.Phase == models.PhaseLossChoice {
		view.LossChoicePlayerID = lc.PlayerID
		if lc.PlayerID == viewerID {
			view.LossChoiceCards = append([]models.Role(nil), g.Players[viewerID].Cards...)
		}
	}

	return view
}
