package calc

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestDiscountAmount(t *testing.T) {
	amount := DiscountAmount(decimal.NewFromInt(200), decimal.NewFromInt(15))
	assert.True(t, amount.Equal(decimal.NewFromInt(30)), "got %s", amount)
}

func TestDiscountedPrice(t *testing.T) {
	price := DiscountedPrice(decimal.NewFromInt(100), decimal.NewFromInt(20))
	assert.True(t, price.Equal(decimal.NewFromInt(80)), "got %s", price)
}

func TestDiscountedPriceRoundsToCents(t *testing.T) {
	price := DiscountedPrice(decimal.RequireFromString("19.99"), decimal.NewFromInt(33))
	assert.Equal(t, "13.39", price.StringFixed(2))
}

func TestDiscountedPriceNotClamped(t *testing.T) {
	price := DiscountedPrice(decimal.NewFromInt(50), decimal.NewFromInt(120))
	assert.True(t, price.IsNegative(), "got %s", price)
}

func TestZeroPercentLeavesPriceAlone(t *testing.T) {
	price := DiscountedPrice(decimal.RequireFromString("49.99"), decimal.Zero)
	assert.Equal(t, "49.99", price.StringFixed(2))
}
