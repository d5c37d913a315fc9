package engine

import (
	"sort"

	"teamcoup/internal/models"
)

// startExchange draws the ambassador's extra cards and opens the
// swap-choice phase. The pool is the actor's hand plus the draws.
func (e *Engine) startExchange(actorID string, drawCount int) {
	actor := e.game.Players[actorID]

	drawn := make([]models.Role, 0, drawCount)
	for i := 0; i < drawCount; i++ {
		card, err := e.draw()
		if err != nil {
			break
		}
		drawn = append(drawn, card)
	}

	pool := make([]models.Role, 0, len(actor.Cards)+len(drawn))
	pool = append(pool, actor.Cards...)
	pool = append(pool, drawn...)

	e.game.Exchange = &models.ExchangeState{
		ActorID: actorID,
		Pool:    pool,
	}
	e.game.Phase = models.PhaseSwapChoice
	e.logf("%s looks at %d cards with Ambassador.", actor.Name, len(pool))
}

// FinishExchange partitions the pool: keepIndices become the new hand
// (ascending pool order), the rest shuffles back into the deck. The
// keep set must match the current hand size exactly.
func (e *Engine) FinishExchange(playerID string, keepIndices []int) error {
	if e.game.Phase != models.PhaseSwapChoice {
		return ErrNotSwapPhase
	}
	ex := e.game.Exchange
	if ex == nil || playerID != ex.ActorID {
		return ErrNotExchanging
	}

	actor := e.game.Players[playerID]
	pool := ex.Pool

	keep := make(map[int]bool, len(keepIndices))
	for _, i := range keepIndices {
		if i < 0 || i >= len(pool) {
			return ErrInvalidKeepIndex
		}
		keep[i] = true
	}
	// Duplicate indices would silently shrink the hand and break card
	// conservation, so the de-duplicated set must match exactly
	if len(keep) != actor.NumCards() {
		return ErrKeepCount
	}

	kept := make([]int, 0, len(keep))
	for i := range keep {
		kept = append(kept, i)
	}
	sort.Ints(kept)

	newHand := make([]models.Role, 0, len(kept))
	for _, i := range kept {
		newHand = append(newHand, pool[i])
	}
	returned := make([]models.Role, 0, len(pool)-len(kept))
	for i, card := range pool {
		if !keep[i] {
			returned = append(returned, card)
		}
	}

	actor.Cards = newHand
	e.game.Deck = append(e.game.Deck, returned...)
	e.shuffleDeck()

	e.game.Exchange = nil
	e.game.Phase = models.PhaseActionSelection
	e.logf("%s completes Ambassador exchange.", actor.Name)
	e.checkVictory()
	e.advanceTurn()
	return nil
}
