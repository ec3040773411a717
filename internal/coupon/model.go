package coupon

import (
	"time"

	"github.com/shopspring/decimal"
)

// Coupon is a percentage discount gated by an optional minimum cart value
// and an expiry instant. Codes are stored already normalized.
type Coupon struct {
	Code            string           `json:"code"`
	DiscountPercent int              `json:"discountPercent"`
	MinCartValue    *decimal.Decimal `json:"minCartValue,omitempty"`
	ExpiresAt       time.Time        `json:"expiresAt"`
}
