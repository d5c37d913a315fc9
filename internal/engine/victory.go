package engine

import "teamcoup/internal/models"

func (e *Engine) aliveInTeam(team models.Team) int {
	alive := 0
	for _, pid := range e.game.Teams[team] {
		if e.game.Players[pid].NumCards() > 0 {
			alive++
		}
	}
	return alive
}

// checkVictory ends the game the moment one team has no living
// members. A simultaneous wipe-out of both teams cannot happen through
// normal play (influence is lost one card at a time), but if it ever
// did the game ends with no winner recorded.
func (e *Engine) checkVictory() {
	aliveA := e.aliveInTeam(models.TeamA)
	aliveB := e.aliveInTeam(models.TeamB)

	switch {
	case aliveA > 0 && aliveB > 0:
		return
	case aliveA > 0:
		e.game.Winner = models.TeamA
		e.game.Phase = models.PhaseGameOver
		e.logf("Team A wins!")
	case aliveB > 0:
		e.game.Winner = models.TeamB
		e.game.Phase = models.PhaseGameOver
		e.logf("Team B wins!")
	default:
		e.game.Phase = models.PhaseGameOver
		e.logf("Both teams are eliminated. No winner.")
	}
}
