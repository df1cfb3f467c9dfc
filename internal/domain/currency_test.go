package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurrency_Clamp(t *testing.T) {
	tests := []struct {
		name     string
		currency Currency
		value    int64
		want     int
	}{
		{"negative becomes zero", CurrencyGold, -5, 0},
		{"zero stays zero", CurrencyGems, 0, 0},
		{"in range unchanged", CurrencyGold, 1234, 1234},
		{"exactly max", CurrencyGems, MaxGems, MaxGems},
		{"above max becomes max", CurrencyGold, MaxGold + 1, MaxGold},
		{"far above max", CurrencyGems, 1 << 40, MaxGems},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.currency.Clamp(tt.value))
		})
	}
}

func TestCurrency_TryAdd(t *testing.T) {
	t.Run("within bounds", func(t *testing.T) {
		got, err := CurrencyGold.TryAdd(100, -40)
		require.NoError(t, err)
		assert.Equal(t, 60, got)
	})

	t.Run("reaching max exactly is allowed", func(t *testing.T) {
		got, err := CurrencyGold.TryAdd(MaxGold-1, 1)
		require.NoError(t, err)
		assert.Equal(t, MaxGold, got)
	})

	t.Run("reaching zero exactly is allowed", func(t *testing.T) {
		got, err := CurrencyGems.TryAdd(3, -3)
		require.NoError(t, err)
		assert.Equal(t, 0, got)
	})

	t.Run("underflow", func(t *testing.T) {
		got, err := CurrencyGems.TryAdd(2, -3)
		assert.ErrorIs(t, err, ErrBalanceUnderflow)
		assert.Equal(t, 2, got, "current value is returned on failure")
	})

	t.Run("overflow", func(t *testing.T) {
		got, err := CurrencyGold.TryAdd(MaxGold, 1)
		assert.ErrorIs(t, err, ErrBalanceOverflow)
		assert.Equal(t, MaxGold, got)
	})

	t.Run("int64 extremes do not wrap", func(t *testing.T) {
		got, err := CurrencyGold.TryAdd(505, math.MaxInt64)
		assert.ErrorIs(t, err, ErrBalanceOverflow)
		assert.Equal(t, 505, got)

		got, err = CurrencyGold.TryAdd(505, math.MinInt64)
		assert.ErrorIs(t, err, ErrBalanceUnderflow)
		assert.Equal(t, 505, got)
	})

	t.Run("large delta does not wrap", func(t *testing.T) {
		_, err := CurrencyGold.TryAdd(10, 1<<62)
		assert.ErrorIs(t, err, ErrBalanceOverflow)
	})
}

func TestCurrency_ClampAdd(t *testing.T) {
	next, applied := CurrencyGold.ClampAdd(MaxGold-5, 16)
	assert.Equal(t, MaxGold, next)
	assert.Equal(t, 5, applied)

	next, applied = CurrencyGems.ClampAdd(7, 2)
	assert.Equal(t, 9, next)
	assert.Equal(t, 2, applied)

	next, applied = CurrencyGold.ClampAdd(10, math.MaxInt64)
	assert.Equal(t, MaxGold, next)
	assert.Equal(t, MaxGold-10, applied)

	next, applied = CurrencyGold.ClampAdd(10, math.MinInt64)
	assert.Equal(t, 0, next)
	assert.Equal(t, -10, applied)
}

func TestParseCurrency(t *testing.T) {
	c, err := ParseCurrency(" Gold ")
	require.NoError(t, err)
	assert.Equal(t, CurrencyGold, c)

	c, err = ParseCurrency("gems")
	require.NoError(t, err)
	assert.Equal(t, CurrencyGems, c)

	_, err = ParseCurrency("silver")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestItem_SellPrice(t *testing.T) {
	assert.Equal(t, 0, (&Item{Price: 1}).SellPrice())
	assert.Equal(t, 1, (&Item{Price: 2}).SellPrice())
	assert.Equal(t, 1, (&Item{Price: 3}).SellPrice())
	assert.Equal(t, 0, (&Item{Price: 0}).SellPrice())
}

func TestPlayer_Balance(t *testing.T) {
	p := &Player{Gold: 5, Gems: 7}
	assert.Equal(t, 5, p.Balance(CurrencyGold))
	assert.Equal(t, 7, p.Balance(CurrencyGems))

	p.SetBalance(CurrencyGems, 9)
	p.SetBalance(CurrencyGold, 1)
	assert.Equal(t, 1, p.Gold)
	assert.Equal(t, 9, p.Gems)
}
