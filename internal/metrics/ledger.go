package metrics

import (
	"errors"

	"github.com/osse101/InventoryApp_Go/internal/domain"
)

// RecordPurchase records a successful buy
func RecordPurchase(item string, currency domain.Currency, price int) {
	ItemsBought.WithLabelValues(item).Inc()
	CurrencySpent.WithLabelValues(string(currency)).Add(float64(price))
}

// RecordSale records a successful sell
func RecordSale(item string, currency domain.Currency, credited int) {
	ItemsSold.WithLabelValues(item).Inc()
	CurrencyEarned.WithLabelValues(string(currency)).Add(float64(credited))
}

// RecordGrind records the reward actually credited by a grind
func RecordGrind(gold, gems int) {
	GrindsTotal.Inc()
	CurrencyEarned.WithLabelValues(string(domain.CurrencyGold)).Add(float64(gold))
	CurrencyEarned.WithLabelValues(string(domain.CurrencyGems)).Add(float64(gems))
}

// RecordExchange records a completed exchange
func RecordExchange(gemsDelta, goldDelta int) {
	if gemsDelta > 0 {
		ExchangesTotal.WithLabelValues(DirectionBuy).Inc()
		CurrencySpent.WithLabelValues(string(domain.CurrencyGold)).Add(float64(-goldDelta))
		CurrencyEarned.WithLabelValues(string(domain.CurrencyGems)).Add(float64(gemsDelta))
		return
	}
	ExchangesTotal.WithLabelValues(DirectionSell).Inc()
	CurrencySpent.WithLabelValues(string(domain.CurrencyGems)).Add(float64(-gemsDelta))
	CurrencyEarned.WithLabelValues(string(domain.CurrencyGold)).Add(float64(goldDelta))
}

// RecordRejection counts a ledger operation refused by a business rule.
// Storage failures are not counted.
func RecordRejection(operation string, err error) {
	if reason := rejectionReason(err); reason != "" {
		LedgerRejections.WithLabelValues(operation, reason).Inc()
	}
}

func rejectionReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrPlayerNotFound):
		return "player_not_found"
	case errors.Is(err, domain.ErrItemNotFound):
		return "item_not_found"
	case errors.Is(err, domain.ErrNotInInventory):
		return "not_in_inventory"
	case errors.Is(err, domain.ErrInsufficientFunds):
		return "insufficient_funds"
	case errors.Is(err, domain.ErrWalletOverflow):
		return "wallet_overflow"
	case errors.Is(err, domain.ErrMismatch):
		return "mismatch"
	case errors.Is(err, domain.ErrAccessDenied):
		return "access_denied"
	case errors.Is(err, domain.ErrDuplicateItem):
		return "duplicate"
	case errors.Is(err, domain.ErrInvalidInput):
		return "invalid_input"
	}
	return ""
}
