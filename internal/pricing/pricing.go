package pricing

import (
	"vitrine-be/internal/catalog"
	"vitrine-be/internal/coupon"
	"vitrine-be/internal/shipping"

	"github.com/shopspring/decimal"
)

// FreeShippingThreshold is the subtotal at or above which shipping is free,
// in the catalog's currency.
var FreeShippingThreshold = decimal.NewFromInt(299)

var oneHundred = decimal.NewFromInt(100)

// Totals is the full price breakdown for a cart.
type Totals struct {
	Subtotal     decimal.Decimal `json:"subtotal"`
	Discount     decimal.Decimal `json:"discount"`
	ShippingCost decimal.Decimal `json:"shippingCost"`
	Total        decimal.Decimal `json:"total"`
}

// Subtotal sums the promotional prices of all cart lines.
func Subtotal(lines []catalog.Product) decimal.Decimal {
	sum := decimal.Zero
	for _, line := range lines {
		sum = sum.Add(line.PromoPrice)
	}
	return sum
}

// Compute derives the totals for a cart with an optional applied coupon and
// shipping quote. Pure: no side effects, safe to call on every read.
//
// The total cannot go negative: the discount is at most 100% of the subtotal
// and shipping cost is never negative.
func Compute(lines []catalog.Product, applied *coupon.Coupon, quote *shipping.Quote) Totals {
	subtotal := Subtotal(lines)

	discount := decimal.Zero
	if applied != nil {
		discount = subtotal.Mul(decimal.NewFromInt(int64(applied.DiscountPercent))).Div(oneHundred)
	}

	shippingCost := decimal.Zero
	if subtotal.LessThan(FreeShippingThreshold) && quote != nil {
		shippingCost = quote.Price
	}

	return Totals{
		Subtotal:     subtotal,
		Discount:     discount,
		ShippingCost: shippingCost,
		Total:        subtotal.Sub(discount).Add(shippingCost),
	}
}
