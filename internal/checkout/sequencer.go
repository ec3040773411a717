package checkout

import (
	"context"

	"vitrine-be/internal/logger"

	"go.uber.org/zap"
)

type Step string

const (
	StepCustomer Step = "customer"
	StepPayment  Step = "payment"
	StepReview   Step = "review"
)

// Sequencer is the linear checkout workflow: customer data, then payment
// method, then review. Steps only advance through explicit submits; back
// navigation is allowed from payment and review; no step can be skipped.
// Captured form data survives back navigation.
//
// Sequencer is not safe for concurrent use; the owning session serializes
// access.
type Sequencer struct {
	step      Step
	customer  *CustomerData
	payment   *PaymentMethod
	completed bool
}

func NewSequencer() *Sequencer {
	return &Sequencer{step: StepCustomer}
}

func (s *Sequencer) Step() Step {
	return s.step
}

func (s *Sequencer) Completed() bool {
	return s.completed
}

// Customer returns the captured customer data, or nil before a successful
// customer submit.
func (s *Sequencer) Customer() *CustomerData {
	return s.customer
}

// Payment returns the captured payment method, or nil before a successful
// payment submit.
func (s *Sequencer) Payment() *PaymentMethod {
	return s.payment
}

// SubmitCustomer validates the customer form and advances to the payment
// step. On validation failure the sequencer stays at the customer step and
// field-level errors are returned; previously captured data is untouched.
func (s *Sequencer) SubmitCustomer(ctx context.Context, data CustomerData) error {
	if s.completed {
		return ErrCheckoutComplete
	}
	if s.step != StepCustomer {
		return ErrInvalidTransition
	}

	if ferrs := ValidateCustomer(data); ferrs != nil {
		logger.FromCtx(ctx).Debug("customer form rejected",
			zap.Int("field_errors", len(ferrs)),
		)
		return ferrs
	}

	s.customer = &data
	s.step = StepPayment

	logger.FromCtx(ctx).Info("checkout advanced",
		zap.String("step", string(s.step)),
	)
	return nil
}

// SubmitPayment validates the payment method and advances to review.
func (s *Sequencer) SubmitPayment(ctx context.Context, pm PaymentMethod) error {
	if s.completed {
		return ErrCheckoutComplete
	}
	if s.step != StepPayment {
		return ErrInvalidTransition
	}

	if ferrs := ValidatePayment(pm); ferrs != nil {
		return ferrs
	}

	s.payment = &pm
	s.step = StepReview

	logger.FromCtx(ctx).Info("checkout advanced",
		zap.String("step", string(s.step)),
	)
	return nil
}

// Back navigates one step backwards: payment to customer, review to
// payment. Captured data is preserved.
func (s *Sequencer) Back() error {
	if s.completed {
		return ErrCheckoutComplete
	}

	switch s.step {
	case StepPayment:
		s.step = StepCustomer
	case StepReview:
		s.step = StepPayment
	default:
		return ErrInvalidTransition
	}
	return nil
}

// Confirm terminates the workflow. Only valid from the review step, which
// by construction means both customer data and payment method were
// captured.
func (s *Sequencer) Confirm() error {
	if s.completed {
		return ErrCheckoutComplete
	}
	if s.step != StepReview {
		return ErrInvalidTransition
	}

	s.completed = true
	return nil
}
