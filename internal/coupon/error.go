package coupon

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	// -- Validation --
	ErrCouponNotFound = errors.New("coupon not found")
	ErrCouponExpired  = errors.New("coupon expired")
)

// BelowMinimumError reports the cart subtotal falling short of the coupon's
// minimum value; Required carries the threshold so the caller can surface it.
type BelowMinimumError struct {
	Required decimal.Decimal
}

func (e *BelowMinimumError) Error() string {
	return fmt.Sprintf("cart subtotal below coupon minimum of %s", e.Required.StringFixed(2))
}
