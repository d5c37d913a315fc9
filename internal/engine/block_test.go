package engine

import (
	"teamcoup/internal/models"
)

func (s *EngineTestSuite) TestDeclareBlockOutsideBlockWindow() {
	eng := s.newStartedGame(models.ModeNormalTeam, defaultHands())

	err := eng.DeclareBlock("p2", BlockForeignAid)
	s.Require().ErrorIs(err, ErrNotBlockWindow)
}

func (s *EngineTestSuite) TestBlockForeignAidByTeammateRejected() {
	eng := s.newStartedGame(models.ModeNormalTeam, defaultHands())
	s.Require().NoError(eng.DeclareAction("p1", ActionForeignAid, ""))

	err := eng.DeclareBlock("p3", BlockForeignAid)
	s.Require().ErrorIs(err, ErrBlockOwnTeam)
}

func (s *EngineTestSuite) TestBlockMustMatchPendingAction() {
	eng := s.newStartedGame(models.ModeNormalTeam, defaultHands())
	s.Require().NoError(eng.DeclareAction("p1", ActionForeignAid, ""))

	s.Require().ErrorIs(eng.DeclareBlock("p2", BlockAssassinate), ErrBlockWrongAction)
	s.Require().ErrorIs(eng.DeclareBlock("p2", "block_everything"), ErrUnknownBlock)
}

func (s *EngineTestSuite) TestBlockForeignAidStandsWhenUnchallenged() {
	eng := s.newStartedGame(models.ModeNormalTeam, defaultHands())
	s.Require().NoError(eng.DeclareAction("p1", ActionForeignAid, ""))

	s.Require().NoError(eng.DeclareBlock("p2", BlockForeignAid))
	s.Equal(models.PhaseChallengeWindow, s.game.Phase)
	s.Require().NotNil(s.game.PendingBlock)
	s.Equal(models.RoleDuke, s.game.PendingBlock.Claim.Role)

	s.Require().NoError(eng.PassChallenge("p1"))

	s.Zero(s.game.Players["p1"].Coins)
	s.Equal(models.PhaseActionSelection, s.game.Phase)
	s.Equal("p2", s.game.CurrentPlayerID())
	s.Nil(s.game.PendingAction)
	s.Nil(s.game.PendingBlock)
}

func (s *EngineTestSuite) TestBlockStealOnlyByTarget() {
	eng := s.newStartedGame(models.ModeNormalTeam, defaultHands())
	s.Require().NoError(eng.DeclareAction("p1", ActionSteal, "p2"))
	s.Require().NoError(eng.PassChallenge("p2"))

	err := eng.DeclareBlock("p4", BlockStealCaptain)
	s.Require().ErrorIs(err, ErrBlockNotTarget)
}

func (s *EngineTestSuite) TestBlockStealWithAmbassadorIsItsOwnClaim() {
	eng := s.newStartedGame(models.ModeNormalTeam, defaultHands())
	s.game.Players["p2"].Coins = 2

	s.Require().NoError(eng.DeclareAction("p1", ActionSteal, "p2"))
	s.Require().NoError(eng.PassChallenge("p2"))
	s.Require().NoError(eng.DeclareBlock("p2", BlockStealAmbassador))

	s.Equal(models.RoleAmbassador, s.game.PendingBlock.Claim.Role)
	s.Contains(s.lastLog(), "with Ambassador")

	// p2 holds no Ambassador, so the challenge exposes the bluff and
	// the steal goes through after the penalty
	s.Require().NoError(eng.Challenge("p1"))
	s.Equal("p2", s.game.LossChoice.PlayerID)
	s.Require().NoError(eng.ChooseLoss("p2", 0))

	s.Equal(2, s.game.Players["p1"].Coins)
	s.Zero(s.game.Players["p2"].Coins)
	s.Equal(1, s.game.Players["p2"].NumCards())
	s.assertConservation()
}

func (s *EngineTestSuite) TestBlockCoupRequiresSuperMode() {
	eng := s.newStartedGame(models.ModeNormalTeam, defaultHands())
	s.game.Players["p1"].Coins = coupCost
	s.Require().NoError(eng.DeclareAction("p1", ActionCoup, "p2"))

	err := eng.DeclareBlock("p2", BlockCoup)
	s.Require().ErrorIs(err, ErrSuperBlockModeOnly)
}

func (s *EngineTestSuite) TestBlockCoupNeedsTwoCards() {
	hands := defaultHands()
	hands["p2"] = []models.Role{models.RoleContessa}
	eng := s.newStartedGame(models.ModeSuperTeam, hands)
	s.game.Players["p1"].Coins = coupCost
	s.Require().NoError(eng.DeclareAction("p1", ActionCoup, "p2"))

	err := eng.DeclareBlock("p2", BlockCoup)
	s.Require().ErrorIs(err, ErrSuperBlockTwoCards)
}

func (s *EngineTestSuite) TestBlockCoupStandsAndBurnsTheCost() {
	hands := map[string][]models.Role{
		"p1": {models.RoleDuke, models.RoleAssassin},
		"p2": {models.RoleContessa, models.RoleContessa},
		"p3": {models.RoleAmbassador, models.RoleDuke},
		"p4": {models.RoleCaptain, models.RoleCaptain},
	}
	eng := s.newStartedGame(models.ModeSuperTeam, hands)
	s.game.Players["p1"].Coins = coupCost

	s.Require().NoError(eng.DeclareAction("p1", ActionCoup, "p2"))
	s.Require().NoError(eng.DeclareBlock("p2", BlockCoup))
	s.True(s.game.PendingBlock.Claim.RequiresTwo)

	s.Require().NoError(eng.PassChallenge("p1"))

	s.Zero(s.game.Players["p1"].Coins)
	s.Equal(2, s.game.Players["p2"].NumCards())
	s.Equal("p2", s.game.CurrentPlayerID())
	s.assertConservation()
}

func (s *EngineTestSuite) TestPassBlockOutsideBlockWindow() {
	eng := s.newStartedGame(models.ModeNormalTeam, defaultHands())

	err := eng.PassBlock("p2")
	s.Require().ErrorIs(err, ErrNotBlockWindow)
}
