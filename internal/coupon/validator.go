package coupon

import (
	"context"
	"strings"
	"time"
	"unicode"

	"vitrine-be/internal/logger"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Normalize strips all whitespace from a submitted code and uppercases it.
// Idempotent: Normalize(Normalize(x)) == Normalize(x).
func Normalize(code string) string {
	var b strings.Builder
	b.Grow(len(code))
	for _, r := range code {
		if unicode.IsSpace(r) {
			continue
		}
		b.WriteRune(r)
	}
	return strings.ToUpper(b.String())
}

// Validate resolves a submitted code against the coupon catalog.
//
// Order of checks: lookup by normalized code, then expiry, then minimum cart
// value against the subtotal at validation time. Expiry is strict: a coupon
// is valid through its ExpiresAt instant and rejected only after it.
func Validate(ctx context.Context, code string, subtotal decimal.Decimal, catalog []Coupon, now time.Time) (*Coupon, error) {
	normalized := Normalize(code)

	log := logger.FromCtx(ctx).With(
		zap.String("service", "Coupon"),
		zap.String("code", normalized),
	)

	var match *Coupon
	for i := range catalog {
		if catalog[i].Code == normalized {
			match = &catalog[i]
			break
		}
	}
	if match == nil {
		log.Debug("coupon not found")
		return nil, ErrCouponNotFound
	}

	if now.After(match.ExpiresAt) {
		log.Debug("coupon expired", zap.Time("expires_at", match.ExpiresAt))
		return nil, ErrCouponExpired
	}

	if match.MinCartValue != nil && subtotal.LessThan(*match.MinCartValue) {
		log.Debug("cart below coupon minimum",
			zap.String("subtotal", subtotal.StringFixed(2)),
			zap.String("required", match.MinCartValue.StringFixed(2)),
		)
		return nil, &BelowMinimumError{Required: *match.MinCartValue}
	}

	found := *match
	log.Info("coupon validated", zap.Int("discount_percent", found.DiscountPercent))
	return &found, nil
}
