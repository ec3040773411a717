package shipping

import "github.com/shopspring/decimal"

type Carrier string

const (
	CarrierPAC   Carrier = "PAC"
	CarrierSEDEX Carrier = "SEDEX"
)

// Quote is a priced delivery estimate for a CEP. Session-scoped, never
// persisted.
type Quote struct {
	CEP          string          `json:"cep"`
	Price        decimal.Decimal `json:"price"`
	DeliveryDays int             `json:"deliveryDays"`
	Carrier      Carrier         `json:"carrier"`
}
