package shipping

import (
	"context"
	"errors"
	"time"

	"vitrine-be/internal/logger"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Estimator resolves a shipping quote for a CEP. Implementations may take
// arbitrarily long; callers are expected to discard results of superseded
// lookups.
type Estimator interface {
	Estimate(ctx context.Context, cep string) (*Quote, error)
}

// ValidCEP reports whether the input is exactly 8 ASCII digits. Transport
// strips formatting characters before calling the estimator.
func ValidCEP(cep string) bool {
	if len(cep) != 8 {
		return false
	}
	for i := 0; i < len(cep); i++ {
		if cep[i] < '0' || cep[i] > '9' {
			return false
		}
	}
	return true
}

type mockEstimator struct {
	delay time.Duration
}

// NewMockEstimator returns a deterministic estimator that simulates the
// carrier round-trip with a fixed delay. The delay affects only when the
// quote lands, never its values.
func NewMockEstimator(delay time.Duration) Estimator {
	return &mockEstimator{delay: delay}
}

// Estimate derives the quote from the CEP's last digit:
// price = 15+d, delivery days = 3 + d mod 3, carrier PAC when d is even.
func (e *mockEstimator) Estimate(ctx context.Context, cep string) (*Quote, error) {
	if !ValidCEP(cep) {
		return nil, ErrInvalidCEP
	}

	if e.delay > 0 {
		timer := time.NewTimer(e.delay)
		defer timer.Stop()

		select {
		case <-timer.C:
		case <-ctx.Done():
			if errors.Is(ctx.Err(), context.DeadlineExceeded) {
				return nil, ErrLookupFailed
			}
			return nil, ctx.Err()
		}
	}

	d := int(cep[len(cep)-1] - '0')

	carrier := CarrierSEDEX
	if d%2 == 0 {
		carrier = CarrierPAC
	}

	quote := &Quote{
		CEP:          cep,
		Price:        decimal.NewFromInt(int64(15 + d)),
		DeliveryDays: 3 + d%3,
		Carrier:      carrier,
	}

	logger.FromCtx(ctx).Debug("shipping quote derived",
		zap.String("cep", cep),
		zap.String("price", quote.Price.StringFixed(2)),
		zap.Int("delivery_days", quote.DeliveryDays),
		zap.String("carrier", string(quote.Carrier)),
	)

	return quote, nil
}
