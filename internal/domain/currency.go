package domain

import (
	"fmt"
	"strings"
)

// Currency is one of the two player balances
type Currency string

const (
	CurrencyGold Currency = "gold"
	CurrencyGems Currency = "gems"
)

// ParseCurrency converts user input into a Currency
func ParseCurrency(s string) (Currency, error) {
	switch Currency(strings.ToLower(strings.TrimSpace(s))) {
	case CurrencyGold:
		return CurrencyGold, nil
	case CurrencyGems:
		return CurrencyGems, nil
	}
	return "", fmt.Errorf("%w: unknown currency %q", ErrInvalidInput, s)
}

// Valid reports whether c is gold or gems
func (c Currency) Valid() bool {
	return c == CurrencyGold || c == CurrencyGems
}

// Max returns the upper bound of a balance held in this currency
func (c Currency) Max() int {
	if c == CurrencyGems {
		return MaxGems
	}
	return MaxGold
}

// Clamp bounds value to [0, Max]. Used where a balance is assigned directly.
func (c Currency) Clamp(value int64) int {
	if value < 0 {
		return 0
	}
	if value > int64(c.Max()) {
		return c.Max()
	}
	return int(value)
}

// TryAdd returns current+delta, or ErrBalanceUnderflow / ErrBalanceOverflow
// when the result leaves [0, Max]. Nothing is clamped.
// The bounds are compared against delta directly so no delta can wrap.
func (c Currency) TryAdd(current int, delta int64) (int, error) {
	if delta < -int64(current) {
		return current, fmt.Errorf("%w: %s %d%+d", ErrBalanceUnderflow, c, current, delta)
	}
	if delta > int64(c.Max())-int64(current) {
		return current, fmt.Errorf("%w: %s %d%+d exceeds %d", ErrBalanceOverflow, c, current, delta, c.Max())
	}
	return current + int(delta), nil
}

// ClampAdd adds delta and clamps the result, returning the new value and the
// delta that was actually applied.
func (c Currency) ClampAdd(current int, delta int64) (int, int) {
	var next int
	switch {
	case delta < -int64(current):
		next = 0
	case delta > int64(c.Max())-int64(current):
		next = c.Max()
	default:
		next = c.Clamp(int64(current) + delta)
	}
	return next, next - current
}
