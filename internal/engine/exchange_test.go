package engine

import (
	"teamcoup/internal/models"
)

func (s *EngineTestSuite) swapChoiceAfterExchange(mode models.Mode, action string) *Engine {
	hands := map[string][]models.Role{
		"p1": {models.RoleAmbassador, models.RoleDuke},
		"p2": {models.RoleCaptain, models.RoleContessa},
		"p3": {models.RoleAmbassador, models.RoleDuke},
		"p4": {models.RoleCaptain, models.RoleContessa},
	}
	eng := s.newStartedGame(mode, hands)
	s.Require().NoError(eng.DeclareAction("p1", action, ""))
	s.Require().NoError(eng.PassChallenge("p2"))
	s.Require().Equal(models.PhaseSwapChoice, s.game.Phase)
	return eng
}

func (s *EngineTestSuite) TestExchangeDrawsTwoIntoPool() {
	s.swapChoiceAfterExchange(models.ModeNormalTeam, ActionExchange)

	s.Require().NotNil(s.game.Exchange)
	s.Equal("p1", s.game.Exchange.ActorID)
	s.Len(s.game.Exchange.Pool, 4)
	s.Len(s.game.Deck, 5)

	// Hand comes first in the pool
	s.Equal(models.RoleAmbassador, s.game.Exchange.Pool[0])
	s.Equal(models.RoleDuke, s.game.Exchange.Pool[1])
}

func (s *EngineTestSuite) TestSuperExchangeDrawsThree() {
	s.swapChoiceAfterExchange(models.ModeSuperTeam, ActionSuperExchange)

	s.Len(s.game.Exchange.Pool, 5)
	s.Len(s.game.Deck, 4)
}

func (s *EngineTestSuite) TestFinishExchangeKeepsChosenCards() {
	eng := s.swapChoiceAfterExchange(models.ModeNormalTeam, ActionExchange)
	drawn := []models.Role{s.game.Exchange.Pool[2], s.game.Exchange.Pool[3]}

	s.Require().NoError(eng.FinishExchange("p1", []int{2, 3}))

	s.Equal(drawn, s.game.Players["p1"].Cards)
	s.Len(s.game.Deck, 7)
	s.Nil(s.game.Exchange)
	s.Equal(models.PhaseActionSelection, s.game.Phase)
	s.Equal("p2", s.game.CurrentPlayerID())
	s.assertConservation()
}

func (s *EngineTestSuite) TestFinishExchangeKeepingOwnHandIsLegal() {
	eng := s.swapChoiceAfterExchange(models.ModeNormalTeam, ActionExchange)

	s.Require().NoError(eng.FinishExchange("p1", []int{0, 1}))

	s.Equal([]models.Role{models.RoleAmbassador, models.RoleDuke}, s.game.Players["p1"].Cards)
	s.assertConservation()
}

func (s *EngineTestSuite) TestFinishExchangeValidation() {
	eng := s.swapChoiceAfterExchange(models.ModeNormalTeam, ActionExchange)

	s.Require().ErrorIs(eng.FinishExchange("p2", []int{0, 1}), ErrNotExchanging)
	s.Require().ErrorIs(eng.FinishExchange("p1", []int{0}), ErrKeepCount)
	s.Require().ErrorIs(eng.FinishExchange("p1", []int{0, 1, 2}), ErrKeepCount)
	s.Require().ErrorIs(eng.FinishExchange("p1", []int{0, 4}), ErrInvalidKeepIndex)
	s.Require().ErrorIs(eng.FinishExchange("p1", []int{0, -1}), ErrInvalidKeepIndex)

	// Duplicates collapse to a single card and would shrink the hand
	s.Require().ErrorIs(eng.FinishExchange("p1", []int{1, 1}), ErrKeepCount)

	// Failed attempts leave the exchange open
	s.Equal(models.PhaseSwapChoice, s.game.Phase)
	s.Len(s.game.Exchange.Pool, 4)
}

func (s *EngineTestSuite) TestFinishExchangeOutsideSwapPhase() {
	eng := s.newStartedGame(models.ModeNormalTeam, defaultHands())

	err := eng.FinishExchange("p1", []int{0, 1})
	s.Require().ErrorIs(err, ErrNotSwapPhase)
}

func (s *EngineTestSuite) TestExchangeWithOneCardKeepsOne() {
	hands := map[string][]models.Role{
		"p1": {models.RoleAmbassador},
		"p2": {models.RoleCaptain, models.RoleContessa},
		"p3": {models.RoleDuke, models.RoleDuke},
		"p4": {models.RoleCaptain, models.RoleContessa},
	}
	eng := s.newStartedGame(models.ModeNormalTeam, hands)
	s.Require().NoError(eng.DeclareAction("p1", ActionExchange, ""))
	s.Require().NoError(eng.PassChallenge("p2"))

	s.Len(s.game.Exchange.Pool, 3)
	s.Require().NoError(eng.FinishExchange("p1", []int{2}))

	s.Equal(1, s.game.Players["p1"].NumCards())
	s.assertConservation()
}
