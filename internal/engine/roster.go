package engine

import (
	"fmt"
	"sort"
	"strings"

	"teamcoup/internal/models"
)

// AddPlayer registers a player in the lobby and returns the assigned
// player ID
func (e *Engine) AddPlayer(name string, team models.Team) (string, error) {
	if e.game.Phase != models.PhaseLobby {
		return "", ErrLobbyClosed
	}
	if team != models.TeamA && team != models.TeamB {
		return "", ErrInvalidTeam
	}

	playerID := fmt.Sprintf("p%d", len(e.game.Players)+1)
	e.game.Players[playerID] = &models.Player{
		ID:   playerID,
		Name: name,
		Team: team,
	}
	e.game.Teams[team] = append(e.game.Teams[team], playerID)
	e.logf("%s joined Team %s.", name, team)

	return playerID, nil
}

// Start locks the roster, builds the turn order, and deals the opening
// hands. Requires exactly 4 or 6 players split evenly across teams.
func (e *Engine) Start() error {
	if e.game.Phase != models.PhaseLobby {
		return ErrAlreadyActive
	}

	n := len(e.game.Players)
	if n != 4 && n != 6 {
		return ErrPlayerCount
	}
	if len(e.game.Teams[models.TeamA]) != len(e.game.Teams[models.TeamB]) {
		return ErrUnevenTeams
	}

	// Alternating order: A1, B1, A2, B2, ...
	teamA := append([]string(nil), e.game.Teams[models.TeamA]...)
	teamB := append([]string(nil), e.game.Teams[models.TeamB]...)
	sort.Strings(teamA)
	sort.Strings(teamB)

	order := make([]string, 0, n)
	for i := range teamA {
		order = append(order, teamA[i], teamB[i])
	}
	e.game.TurnOrder = order
	e.game.TurnIndex = 0

	e.game.Deck = models.NewDeck()
	e.shuffleDeck()

	// Deal 2 cards each, everyone starts broke
	for _, pid := range order {
		p := e.game.Players[pid]
		first, err := e.draw()
		if err != nil {
			return err
		}
		second, err := e.draw()
		if err != nil {
			return err
		}
		p.Cards = []models.Role{first, second}
		p.Coins = 0
	}

	e.game.Phase = models.PhaseActionSelection

	names := make([]string, len(order))
	for i, pid := range order {
		names[i] = e.game.Players[pid].Name
	}
	e.logf("Game started. Turn order: %s", strings.Join(names, ", "))

	return nil
}
