package catalog

import "github.com/osse101/InventoryApp_Go/internal/domain"

// itemNames implements fuzzy.Source over catalog item names
type itemNames []domain.Item

func (n itemNames) String(i int) string {
	return n[i].Name
}

func (n itemNames) Len() int {
	return len(n)
}
