package domain

import "time"

// Player is an account holding two currency balances and an inventory
type Player struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"`
	Gold         int       `json:"gold"`
	Gems         int       `json:"gems"`
	IsAdmin      bool      `json:"is_admin"`
	CreatedAt    time.Time `json:"created_at"`
}

// Balance returns the player's balance in currency c
func (p *Player) Balance(c Currency) int {
	if c == CurrencyGems {
		return p.Gems
	}
	return p.Gold
}

// SetBalance stores value as the player's balance in currency c.
// Callers are responsible for keeping value within bounds.
func (p *Player) SetBalance(c Currency, value int) {
	if c == CurrencyGems {
		p.Gems = value
		return
	}
	p.Gold = value
}

// PlayerInventory is a display snapshot of a player and their items
type PlayerInventory struct {
	Player Player           `json:"player"`
	Items  []InventoryEntry `json:"items"`
}
