package session

import (
	"context"
	"sync"
	"time"

	"vitrine-be/internal/cart"
	"vitrine-be/internal/catalog"
	"vitrine-be/internal/checkout"
	"vitrine-be/internal/coupon"
	"vitrine-be/internal/logger"
	"vitrine-be/internal/pricing"
	"vitrine-be/internal/shipping"
	"vitrine-be/internal/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// OrderSnapshot is the terminal output of a checkout: everything a payment
// or order backend would need, serialized as JSON at the transport boundary.
type OrderSnapshot struct {
	OrderNumber string                 `json:"orderNumber"`
	Items       []catalog.Product      `json:"items"`
	Customer    checkout.CustomerData  `json:"customer"`
	Payment     checkout.PaymentMethod `json:"payment"`
	Totals      pricing.Totals         `json:"totals"`
	PlacedAt    time.Time              `json:"placedAt"`
}

// Session owns all mutable storefront state for one visitor: the cart, the
// applied coupon, the shipping quote, and the checkout sequencer. At most
// one coupon and one quote are active at a time; both are replaced
// wholesale on each successful validation or lookup.
//
// HTTP handlers run concurrently, so every state access goes through the
// session mutex even though the logical flow is a single caller.
type Session struct {
	ID uuid.UUID

	mu        sync.Mutex
	cart      *cart.Store
	applied   *coupon.Coupon
	quote     *shipping.Quote
	sequencer *checkout.Sequencer

	// lookupSeq orders shipping lookups so a superseded in-flight result
	// can never overwrite a later one.
	lookupSeq uint64

	lastSeen time.Time
}

func newSession() *Session {
	return &Session{
		ID:        uuid.New(),
		cart:      cart.NewStore(),
		sequencer: checkout.NewSequencer(),
		lastSeen:  time.Now(),
	}
}

func (s *Session) touch() {
	s.lastSeen = time.Now()
}

/* ---------- CART ---------- */

func (s *Session) AddProduct(ctx context.Context, p catalog.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()

	s.cart.Add(p)

	logger.FromCtx(ctx).Info("product added to cart",
		zap.Int("product_id", p.ID),
		zap.Int("cart_size", s.cart.Len()),
	)
}

func (s *Session) RemoveLine(ctx context.Context, index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()

	if err := s.cart.RemoveAt(index); err != nil {
		return err
	}

	logger.FromCtx(ctx).Info("cart line removed",
		zap.Int("index", index),
		zap.Int("cart_size", s.cart.Len()),
	)
	return nil
}

func (s *Session) Items() []catalog.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Items()
}

/* ---------- COUPON ---------- */

// ApplyCoupon validates the submitted code against the current subtotal.
// Success replaces any previously applied coupon; any failure also clears
// it, so a failed re-validation revokes a prior success.
func (s *Session) ApplyCoupon(ctx context.Context, code string, defs []coupon.Coupon, now time.Time) (*coupon.Coupon, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()

	subtotal := pricing.Subtotal(s.cart.Items())

	validated, err := coupon.Validate(ctx, code, subtotal, defs, now)
	if err != nil {
		s.applied = nil
		return nil, err
	}

	s.applied = validated
	return validated, nil
}

func (s *Session) AppliedCoupon() *coupon.Coupon {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.applied
}

/* ---------- SHIPPING ---------- */

// CalculateShipping runs a quote lookup for the CEP. When lookups overlap,
// only the most recently initiated one may store its result: earlier
// in-flight results are discarded on arrival (last write wins).
// A failed lookup leaves the previous quote unchanged.
func (s *Session) CalculateShipping(ctx context.Context, estimator shipping.Estimator, cep string) (*shipping.Quote, error) {
	s.mu.Lock()
	s.touch()
	s.lookupSeq++
	seq := s.lookupSeq
	s.mu.Unlock()

	quote, err := estimator.Estimate(ctx, cep)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if seq != s.lookupSeq {
		logger.FromCtx(ctx).Debug("stale shipping result discarded",
			zap.String("cep", cep),
			zap.Uint64("seq", seq),
			zap.Uint64("latest", s.lookupSeq),
		)
		return quote, nil
	}

	s.quote = quote
	return quote, nil
}

func (s *Session) Quote() *shipping.Quote {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.quote
}

/* ---------- TOTALS ---------- */

func (s *Session) Totals() pricing.Totals {
	s.mu.Lock()
	defer s.mu.Unlock()
	return pricing.Compute(s.cart.Items(), s.applied, s.quote)
}

/* ---------- CHECKOUT ---------- */

func (s *Session) CheckoutStep() checkout.Step {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sequencer.Step()
}

func (s *Session) CheckoutCustomer() *checkout.CustomerData {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sequencer.Customer()
}

func (s *Session) CheckoutPayment() *checkout.PaymentMethod {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sequencer.Payment()
}

func (s *Session) SubmitCustomer(ctx context.Context, data checkout.CustomerData) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	return s.sequencer.SubmitCustomer(ctx, data)
}

func (s *Session) SubmitPayment(ctx context.Context, pm checkout.PaymentMethod) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	return s.sequencer.SubmitPayment(ctx, pm)
}

func (s *Session) CheckoutBack(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	return s.sequencer.Back()
}

// ConfirmOrder terminates the checkout, emits the order snapshot, and
// resets the session: cart cleared, coupon and quote dropped, sequencer
// back at the customer step for a fresh checkout. The snapshot is not
// persisted; handing it to an order backend is a collaborator's job.
func (s *Session) ConfirmOrder(ctx context.Context) (*OrderSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()

	if err := s.sequencer.Confirm(); err != nil {
		return nil, err
	}

	items := s.cart.Items()
	snapshot := &OrderSnapshot{
		OrderNumber: utils.GenerateOrderNumber(),
		Items:       items,
		Customer:    *s.sequencer.Customer(),
		Payment:     *s.sequencer.Payment(),
		Totals:      pricing.Compute(items, s.applied, s.quote),
		PlacedAt:    time.Now().UTC(),
	}

	s.cart.Clear()
	s.applied = nil
	s.quote = nil
	s.sequencer = checkout.NewSequencer()

	logger.FromCtx(ctx).Info("order placed",
		zap.String("order_number", snapshot.OrderNumber),
		zap.Int("items", len(snapshot.Items)),
		zap.String("total", snapshot.Totals.Total.StringFixed(2)),
	)

	return snapshot, nil
}
