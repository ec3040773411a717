package catalog

import "github.com/shopspring/decimal"

type Product struct {
	ID            int             `json:"id"`
	Name          string          `json:"name"`
	OriginalPrice decimal.Decimal `json:"originalPrice"`
	PromoPrice    decimal.Decimal `json:"promoPrice"`
	PromoType     string          `json:"promoType"`
	Stock         int             `json:"stock"`
}

// Promotion is an informational banner entry; it carries no pricing rules
// of its own.
type Promotion struct {
	ID         int     `json:"id"`
	Name       string  `json:"name"`
	Discount   *string `json:"discount,omitempty"`
	Conditions *string `json:"conditions,omitempty"`
	Validity   string  `json:"validity"`
}
