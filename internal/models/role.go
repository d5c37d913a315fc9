package models

// Role is one of the five influence cards in the deck
type Role string

const (
	RoleDuke       Role = "Duke"
	RoleAssassin   Role = "Assassin"
	RoleCaptain    Role = "Captain"
	RoleAmbassador Role = "Ambassador"
	RoleContessa   Role = "Contessa"
)

// CopiesPerRole is how many copies of each role the deck holds
const CopiesPerRole = 3

// AllRoles returns the five roles in a fixed order
func AllRoles() []Role {
	return []Role{RoleDuke, RoleAssassin, RoleCaptain, RoleAmbassador, RoleContessa}
}

// NewDeck returns the full 15-card deck, unshuffled
func NewDeck() []Role {
	deck := make([]Role, 0, len(AllRoles())*CopiesPerRole)
	for i := 0; i < CopiesPerRole; i++ {
		deck = append(deck, AllRoles()...)
	}
	return deck
}

// Team is one of the two sides in a team game
type Team string

const (
	TeamA Team = "A"
	TeamB Team = "B"
)

// Mode selects the rule set for a game
type Mode string

const (
	// ModeNormalTeam is the base team rule set
	ModeNormalTeam Mode = "normal_team"

	// ModeSuperTeam enables the two-copy "super" abilities
	ModeSuperTeam Mode = "super_team"
)

// Phase is the single gate for command legality
type Phase string

const (
	PhaseLobby           Phase = "lobby"
	PhaseActionSelection Phase = "action_selection"
	PhaseChallengeWindow Phase = "challenge_window"
	PhaseBlockWindow     Phase = "block_window"
	PhaseSwapChoice      Phase = "swap_choice"
	PhaseLossChoice      Phase = "loss_choice"
	PhaseGameOver        Phase = "game_over"
)
