package models

// Player represents a registered player in a game
type Player struct {
	// ID is the engine-assigned player identifier
	ID string

	// Name is the display name chosen at registration
	Name string

	// Team is the side the player registered for
	Team Team

	// Coins is the player's balance, never negative
	Coins int

	// Cards is the hand in insertion order; the order carries no
	// gameplay meaning but stays stable for index-based choices
	Cards []Role
}

// NumCards returns the current hand size
func (p *Player) NumCards() int {
	return len(p.Cards)
}

// Alive reports whether the player still holds influence
func (p *Player) Alive() bool {
	return len(p.Cards) > 0
}

// CountRole returns how many copies of role the player holds
func (p *Player) CountRole(role Role) int {
	count := 0
	for _, c := range p.Cards {
		if c == role {
			count++
		}
	}
	return count
}
