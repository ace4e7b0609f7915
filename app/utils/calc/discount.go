package calc

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// DiscountAmount returns the cut a percentage takes off a price.
func DiscountAmount(price, percent decimal.Decimal) decimal.Decimal {
	return price.Mul(percent).Div(hundred)
}

// DiscountedPrice applies a percentage discount. The amount is not clamped:
// a misconfigured percent above 100 yields a negative price on purpose, that
// is a back-office input problem and not a pricing one.
func DiscountedPrice(price, percent decimal.Decimal) decimal.Decimal {
	return price.Sub(DiscountAmount(price, percent)).Round(2)
}
