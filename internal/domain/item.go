package domain

// Item is a catalog entry. Items are immutable once created.
type Item struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Price       int      `json:"price"`
	Currency    Currency `json:"currency"`
}

// SellPrice is what a player receives for selling one unit back
func (i *Item) SellPrice() int {
	return i.Price / SellPriceDivisor
}
