package engine

import (
	"teamcoup/internal/models"
)

// defaultHands deals a spread of roles that leaves every claim
// challengeable in both directions
func defaultHands() map[string][]models.Role {
	return map[string][]models.Role{
		"p1": {models.RoleDuke, models.RoleAssassin},
		"p2": {models.RoleCaptain, models.RoleContessa},
		"p3": {models.RoleAmbassador, models.RoleDuke},
		"p4": {models.RoleCaptain, models.RoleContessa},
	}
}

func (s *EngineTestSuite) TestDeclareActionOutsideActionPhase() {
	eng := s.newLobby(models.ModeNormalTeam)

	err := eng.DeclareAction("p1", ActionIncome, "")
	s.Require().ErrorIs(err, ErrNotActionPhase)
}

func (s *EngineTestSuite) TestDeclareActionOutOfTurn() {
	eng := s.newStartedGame(models.ModeNormalTeam, defaultHands())

	err := eng.DeclareAction("p2", ActionIncome, "")
	s.Require().ErrorIs(err, ErrNotYourTurn)
	s.Zero(s.game.Players["p2"].Coins)
}

func (s *EngineTestSuite) TestIncome() {
	eng := s.newStartedGame(models.ModeNormalTeam, defaultHands())

	s.Require().NoError(eng.DeclareAction("p1", ActionIncome, ""))

	s.Equal(1, s.game.Players["p1"].Coins)
	s.Equal(models.PhaseActionSelection, s.game.Phase)
	s.Equal("p2", s.game.CurrentPlayerID())
	s.assertConservation()
}

func (s *EngineTestSuite) TestIncomeByEliminatedPlayer() {
	hands := defaultHands()
	hands["p1"] = nil
	eng := s.newStartedGame(models.ModeNormalTeam, hands)

	err := eng.DeclareAction("p1", ActionIncome, "")
	s.Require().ErrorIs(err, ErrNoInfluence)
}

func (s *EngineTestSuite) TestForcedCoupAtTenCoins() {
	eng := s.newStartedGame(models.ModeNormalTeam, defaultHands())
	s.game.Players["p1"].Coins = 10

	err := eng.DeclareAction("p1", ActionIncome, "")
	s.Require().Error(err)
	s.True(IsIllegalMove(err))
	s.Contains(err.Error(), "must coup")

	s.Require().NoError(eng.DeclareAction("p1", ActionCoup, "p2"))
	s.Equal(3, s.game.Players["p1"].Coins)
	s.Equal(models.PhaseBlockWindow, s.game.Phase)
}

func (s *EngineTestSuite) TestForcedCoupThresholdIsElevenInSuperMode() {
	eng := s.newStartedGame(models.ModeSuperTeam, defaultHands())
	s.game.Players["p1"].Coins = 10

	s.Require().NoError(eng.DeclareAction("p1", ActionIncome, ""))
	s.Equal(11, s.game.Players["p1"].Coins)
}

func (s *EngineTestSuite) TestSuperActionsRejectedInNormalMode() {
	eng := s.newStartedGame(models.ModeNormalTeam, defaultHands())

	s.Require().ErrorIs(eng.DeclareAction("p1", ActionSuperTax, ""), ErrSuperModeOnly)

	s.game.Players["p1"].Coins = superCoupCost
	s.Require().ErrorIs(eng.DeclareAction("p1", ActionSuperCoup, "p2"), ErrSuperModeOnly)
}

func (s *EngineTestSuite) TestSuperActionNeedsTwoCardsInHand() {
	hands := defaultHands()
	hands["p1"] = []models.Role{models.RoleDuke}
	eng := s.newStartedGame(models.ModeSuperTeam, hands)

	err := eng.DeclareAction("p1", ActionSuperTax, "")
	s.Require().ErrorIs(err, ErrSuperNeedsTwoCards)
}

func (s *EngineTestSuite) TestTaxResolvesWhenUnchallenged() {
	eng := s.newStartedGame(models.ModeNormalTeam, defaultHands())

	s.Require().NoError(eng.DeclareAction("p1", ActionTax, ""))
	s.Equal(models.PhaseChallengeWindow, s.game.Phase)
	s.Require().NotNil(s.game.PendingAction)
	s.Equal(models.RoleDuke, s.game.PendingAction.Claim.Role)

	s.Require().NoError(eng.PassChallenge("p2"))

	s.Equal(3, s.game.Players["p1"].Coins)
	s.Equal(models.PhaseActionSelection, s.game.Phase)
	s.Equal("p2", s.game.CurrentPlayerID())
	s.Nil(s.game.PendingAction)
	s.assertConservation()
}

func (s *EngineTestSuite) TestSuperTaxGainsFive() {
	eng := s.newStartedGame(models.ModeSuperTeam, defaultHands())

	s.Require().NoError(eng.DeclareAction("p1", ActionSuperTax, ""))
	s.True(s.game.PendingAction.Claim.RequiresTwo)

	s.Require().NoError(eng.PassChallenge("p2"))
	s.Equal(5, s.game.Players["p1"].Coins)
}

func (s *EngineTestSuite) TestForeignAidResolvesWhenUnblocked() {
	eng := s.newStartedGame(models.ModeNormalTeam, defaultHands())

	s.Require().NoError(eng.DeclareAction("p1", ActionForeignAid, ""))
	s.Equal(models.PhaseBlockWindow, s.game.Phase)
	s.Nil(s.game.PendingAction.Claim)

	s.Require().NoError(eng.PassBlock("p2"))
	s.Equal(2, s.game.Players["p1"].Coins)
	s.Equal("p2", s.game.CurrentPlayerID())
}

func (s *EngineTestSuite) TestCoupValidation() {
	eng := s.newStartedGame(models.ModeNormalTeam, defaultHands())
	p1 := s.game.Players["p1"]

	p1.Coins = coupCost
	s.Require().ErrorIs(eng.DeclareAction("p1", ActionCoup, ""), ErrActionNeedsTarget)
	s.Require().ErrorIs(eng.DeclareAction("p1", ActionCoup, "p9"), ErrInvalidTarget)
	s.Require().ErrorIs(eng.DeclareAction("p1", ActionCoup, "p3"), ErrTargetTeammate)

	p1.Coins = coupCost - 1
	s.Require().ErrorIs(eng.DeclareAction("p1", ActionCoup, "p2"), ErrInsufficientCoins)
	s.Equal(coupCost-1, p1.Coins)
}

func (s *EngineTestSuite) TestCoupCannotTargetEliminatedPlayer() {
	hands := defaultHands()
	hands["p2"] = nil
	eng := s.newStartedGame(models.ModeNormalTeam, hands)
	s.game.Players["p1"].Coins = coupCost

	err := eng.DeclareAction("p1", ActionCoup, "p2")
	s.Require().ErrorIs(err, ErrTargetEliminated)
}

func (s *EngineTestSuite) TestCoupForcesInfluenceLoss() {
	eng := s.newStartedGame(models.ModeNormalTeam, defaultHands())
	s.game.Players["p1"].Coins = coupCost

	s.Require().NoError(eng.DeclareAction("p1", ActionCoup, "p2"))
	s.Zero(s.game.Players["p1"].Coins)
	s.Equal(models.PhaseBlockWindow, s.game.Phase)

	s.Require().NoError(eng.PassBlock("p2"))
	s.Equal(models.PhaseLossChoice, s.game.Phase)
	s.Equal("p2", s.game.LossChoice.PlayerID)

	s.Require().NoError(eng.ChooseLoss("p2", 0))
	s.Equal(1, s.game.Players["p2"].NumCards())
	s.Len(s.game.Revealed, 1)
	s.Equal(models.PhaseActionSelection, s.game.Phase)
	s.Equal("p2", s.game.CurrentPlayerID())
	s.assertConservation()
}

func (s *EngineTestSuite) TestSuperCoupSkipsBlockAndChallenge() {
	eng := s.newStartedGame(models.ModeSuperTeam, defaultHands())
	s.game.Players["p1"].Coins = superCoupCost

	s.Require().NoError(eng.DeclareAction("p1", ActionSuperCoup, "p2"))

	s.Zero(s.game.Players["p1"].Coins)
	s.Equal(models.PhaseLossChoice, s.game.Phase)
	s.Equal("p2", s.game.LossChoice.PlayerID)
	s.Nil(s.game.PendingAction)
}

func (s *EngineTestSuite) TestStealTransfersUpToTwoCoins() {
	eng := s.newStartedGame(models.ModeNormalTeam, defaultHands())
	s.game.Players["p2"].Coins = 1

	s.Require().NoError(eng.DeclareAction("p1", ActionSteal, "p2"))
	s.Require().NoError(eng.PassChallenge("p2"))
	s.Equal(models.PhaseBlockWindow, s.game.Phase)
	s.Require().NoError(eng.PassBlock("p2"))

	s.Equal(1, s.game.Players["p1"].Coins)
	s.Zero(s.game.Players["p2"].Coins)
	s.Equal("p2", s.game.CurrentPlayerID())
}

func (s *EngineTestSuite) TestStealFromBrokeTargetStillEndsTurn() {
	eng := s.newStartedGame(models.ModeNormalTeam, defaultHands())

	s.Require().NoError(eng.DeclareAction("p1", ActionSteal, "p2"))
	s.Require().NoError(eng.PassChallenge("p2"))
	s.Require().NoError(eng.PassBlock("p2"))

	s.Zero(s.game.Players["p1"].Coins)
	s.Equal("p2", s.game.CurrentPlayerID())
}

func (s *EngineTestSuite) TestSuperStealTransfersThree() {
	eng := s.newStartedGame(models.ModeSuperTeam, defaultHands())
	s.game.Players["p2"].Coins = 5

	s.Require().NoError(eng.DeclareAction("p1", ActionSuperSteal, "p2"))
	s.Require().NoError(eng.PassChallenge("p2"))
	s.Require().NoError(eng.PassBlock("p2"))

	s.Equal(3, s.game.Players["p1"].Coins)
	s.Equal(2, s.game.Players["p2"].Coins)
}

func (s *EngineTestSuite) TestAssassinateCostPaidUpFront() {
	eng := s.newStartedGame(models.ModeNormalTeam, defaultHands())
	s.game.Players["p1"].Coins = assassinateCost

	s.Require().NoError(eng.DeclareAction("p1", ActionAssassinate, "p2"))
	s.Zero(s.game.Players["p1"].Coins)
	s.Equal(models.PhaseChallengeWindow, s.game.Phase)

	s.Require().NoError(eng.PassChallenge("p2"))
	s.Require().NoError(eng.PassBlock("p2"))

	s.Zero(s.game.Players["p1"].Coins)
	s.Equal(models.PhaseLossChoice, s.game.Phase)
	s.Equal("p2", s.game.LossChoice.PlayerID)
}

func (s *EngineTestSuite) TestAssassinateNeedsThreeCoins() {
	eng := s.newStartedGame(models.ModeNormalTeam, defaultHands())
	s.game.Players["p1"].Coins = assassinateCost - 1

	err := eng.DeclareAction("p1", ActionAssassinate, "p2")
	s.Require().ErrorIs(err, ErrInsufficientCoins)
}

func (s *EngineTestSuite) TestSuperAssassinateRefundsWhenUnblocked() {
	eng := s.newStartedGame(models.ModeSuperTeam, defaultHands())
	s.game.Players["p1"].Coins = assassinateCost

	s.Require().NoError(eng.DeclareAction("p1", ActionSuperAssassinate, "p2"))
	s.Zero(s.game.Players["p1"].Coins)

	s.Require().NoError(eng.PassChallenge("p2"))
	s.Require().NoError(eng.PassBlock("p2"))

	s.Equal(assassinateCost, s.game.Players["p1"].Coins)
	s.Equal(models.PhaseLossChoice, s.game.Phase)
}

func (s *EngineTestSuite) TestUnknownActionRejected() {
	eng := s.newStartedGame(models.ModeNormalTeam, defaultHands())

	err := eng.DeclareAction("p1", "bribe", "")
	s.Require().Error(err)
	s.True(IsIllegalMove(err))
	s.Contains(err.Error(), "unknown action")
}
