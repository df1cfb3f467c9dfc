package domain

// InventorySlot records how many units of an item a player owns.
// Slots with a zero amount do not exist.
type InventorySlot struct {
	PlayerID string `json:"player_id"`
	ItemID   int    `json:"item_id"`
	Amount   int    `json:"amount"`
}

// InventoryEntry is a slot joined with its item for display
type InventoryEntry struct {
	Item   Item `json:"item"`
	Amount int  `json:"amount"`
}

// Receipt describes the outcome of a buy or sell
type Receipt struct {
	PlayerName string   `json:"player_name"`
	ItemName   string   `json:"item_name"`
	Price      int      `json:"price"`
	Currency   Currency `json:"currency"`
	Owned      int      `json:"owned"`
	Gold       int      `json:"gold"`
	Gems       int      `json:"gems"`
}

// GrindResult is the reward actually credited by a grind
type GrindResult struct {
	GoldGained int `json:"gold_gained"`
	GemsGained int `json:"gems_gained"`
	Gold       int `json:"gold"`
	Gems       int `json:"gems"`
}

// ExchangeResult is the state after a currency exchange
type ExchangeResult struct {
	GemsDelta int `json:"gems_delta"`
	GoldDelta int `json:"gold_delta"`
	Rate      int `json:"rate"`
	Gold      int `json:"gold"`
	Gems      int `json:"gems"`
}
