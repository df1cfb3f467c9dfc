package domain

// Balance limits
const (
	MaxGold = 99999
	MaxGems = 99999
)

// Starting balances for newly registered players
const (
	StartingGold = 10
	StartingGems = 0
)

// Grind reward ranges, lower bound inclusive and upper bound exclusive
const (
	GrindGoldMin = 10
	GrindGoldMax = 17
	GrindGemsMin = 0
	GrindGemsMax = 3
)

// SellPriceDivisor halves the catalog price when an item is sold back
const SellPriceDivisor = 2

// MaxNameLength bounds player and item names
const MaxNameLength = 100

// MaxItemPrice is the largest price the items.price INTEGER column holds
const MaxItemPrice = 2147483647
