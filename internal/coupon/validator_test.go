package coupon

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalog() []Coupon {
	min := decimal.NewFromInt(200)
	return []Coupon{
		{
			Code:            "PROMO10",
			DiscountPercent: 10,
			ExpiresAt:       time.Date(2024, time.December, 31, 0, 0, 0, 0, time.UTC),
		},
		{
			Code:            "FRETE20",
			DiscountPercent: 20,
			MinCartValue:    &min,
			ExpiresAt:       time.Date(2024, time.December, 31, 0, 0, 0, 0, time.UTC),
		},
	}
}

func TestNormalize(t *testing.T) {
	t.Run("Strips whitespace and uppercases", func(t *testing.T) {
		assert.Equal(t, "PROMO10", Normalize(" promo10 "))
		assert.Equal(t, "FRETE20", Normalize("f r e t e 2 0"))
		assert.Equal(t, "PROMO10", Normalize("\tProMo10\n"))
	})

	t.Run("Idempotent", func(t *testing.T) {
		inputs := []string{" promo10 ", "FRETE20", "  a B c  ", ""}
		for _, in := range inputs {
			once := Normalize(in)
			assert.Equal(t, once, Normalize(once))
		}
	})
}

func TestValidate(t *testing.T) {
	ctx := context.Background()
	before := time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Success with messy input", func(t *testing.T) {
		subtotal := decimal.RequireFromString("219.80")

		c, err := Validate(ctx, "  frete 20 ", subtotal, testCatalog(), before)
		require.NoError(t, err)
		assert.Equal(t, "FRETE20", c.Code)
		assert.Equal(t, 20, c.DiscountPercent)
	})

	t.Run("Case and whitespace insensitive equivalence", func(t *testing.T) {
		subtotal := decimal.NewFromInt(300)

		a, errA := Validate(ctx, " promo10 ", subtotal, testCatalog(), before)
		b, errB := Validate(ctx, "PROMO10", subtotal, testCatalog(), before)
		require.NoError(t, errA)
		require.NoError(t, errB)
		assert.Equal(t, a, b)
	})

	t.Run("Not found", func(t *testing.T) {
		_, err := Validate(ctx, "NAOEXISTE", decimal.NewFromInt(500), testCatalog(), before)
		assert.ErrorIs(t, err, ErrCouponNotFound)
	})

	t.Run("Expired only after the expiry instant", func(t *testing.T) {
		expiry := time.Date(2024, time.December, 31, 0, 0, 0, 0, time.UTC)

		// Exactly at the instant: still valid.
		_, err := Validate(ctx, "PROMO10", decimal.NewFromInt(100), testCatalog(), expiry)
		assert.NoError(t, err)

		// One nanosecond past: expired.
		_, err = Validate(ctx, "PROMO10", decimal.NewFromInt(100), testCatalog(), expiry.Add(time.Nanosecond))
		assert.ErrorIs(t, err, ErrCouponExpired)
	})

	t.Run("Below minimum reports required value", func(t *testing.T) {
		_, err := Validate(ctx, "FRETE20", decimal.NewFromInt(150), testCatalog(), before)

		var belowMin *BelowMinimumError
		require.ErrorAs(t, err, &belowMin)
		assert.True(t, belowMin.Required.Equal(decimal.NewFromInt(200)))
	})

	t.Run("Subtotal exactly at minimum succeeds", func(t *testing.T) {
		c, err := Validate(ctx, "FRETE20", decimal.NewFromInt(200), testCatalog(), before)
		require.NoError(t, err)
		assert.Equal(t, "FRETE20", c.Code)
	})

	t.Run("Empty catalog", func(t *testing.T) {
		_, err := Validate(ctx, "PROMO10", decimal.NewFromInt(100), nil, before)
		assert.ErrorIs(t, err, ErrCouponNotFound)
	})
}
