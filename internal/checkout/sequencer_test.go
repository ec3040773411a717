package checkout

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCustomer() CustomerData {
	return CustomerData{
		Name:  "Maria da Silva",
		Email: "maria@example.com",
		CPF:   "12345678901",
		Phone: "11987654321",
		Address: Address{
			CEP:          "01310930",
			Street:       "Avenida Paulista",
			Number:       "1578",
			Neighborhood: "Bela Vista",
			City:         "São Paulo",
			State:        "SP",
		},
	}
}

func validPayment() PaymentMethod {
	return PaymentMethod{Type: PaymentPix}
}

func TestSequencer_HappyPath(t *testing.T) {
	ctx := context.Background()
	s := NewSequencer()

	assert.Equal(t, StepCustomer, s.Step())
	require.NoError(t, s.SubmitCustomer(ctx, validCustomer()))
	assert.Equal(t, StepPayment, s.Step())
	require.NoError(t, s.SubmitPayment(ctx, validPayment()))
	assert.Equal(t, StepReview, s.Step())
	require.NoError(t, s.Confirm())
	assert.True(t, s.Completed())
}

func TestSequencer_NoSkipping(t *testing.T) {
	ctx := context.Background()

	t.Run("Payment before customer", func(t *testing.T) {
		s := NewSequencer()
		assert.ErrorIs(t, s.SubmitPayment(ctx, validPayment()), ErrInvalidTransition)
		assert.Equal(t, StepCustomer, s.Step())
	})

	t.Run("Confirm before review", func(t *testing.T) {
		s := NewSequencer()
		assert.ErrorIs(t, s.Confirm(), ErrInvalidTransition)

		require.NoError(t, s.SubmitCustomer(ctx, validCustomer()))
		assert.ErrorIs(t, s.Confirm(), ErrInvalidTransition)
	})

	t.Run("Customer submit from later steps", func(t *testing.T) {
		s := NewSequencer()
		require.NoError(t, s.SubmitCustomer(ctx, validCustomer()))
		assert.ErrorIs(t, s.SubmitCustomer(ctx, validCustomer()), ErrInvalidTransition)
	})
}

func TestSequencer_BackPreservesData(t *testing.T) {
	ctx := context.Background()
	s := NewSequencer()

	customer := validCustomer()
	require.NoError(t, s.SubmitCustomer(ctx, customer))
	require.NoError(t, s.Back())
	assert.Equal(t, StepCustomer, s.Step())

	// Round trip: data entered, navigate away and back, data unchanged.
	require.NotNil(t, s.Customer())
	assert.Equal(t, customer, *s.Customer())

	require.NoError(t, s.SubmitCustomer(ctx, customer))
	require.NoError(t, s.SubmitPayment(ctx, validPayment()))
	require.NoError(t, s.Back())
	assert.Equal(t, StepPayment, s.Step())
	require.NotNil(t, s.Payment())
	assert.Equal(t, PaymentPix, s.Payment().Type)
}

func TestSequencer_BackFromCustomer(t *testing.T) {
	s := NewSequencer()
	assert.ErrorIs(t, s.Back(), ErrInvalidTransition)
}

func TestSequencer_ValidationFailureKeepsStep(t *testing.T) {
	ctx := context.Background()
	s := NewSequencer()

	bad := validCustomer()
	bad.Name = "ab"
	bad.Email = "not-an-email"

	err := s.SubmitCustomer(ctx, bad)
	require.Error(t, err)
	assert.Equal(t, StepCustomer, s.Step())
	assert.Nil(t, s.Customer())

	var ferrs ValidationErrors
	require.ErrorAs(t, err, &ferrs)
	fields := make(map[string]string, len(ferrs))
	for _, fe := range ferrs {
		fields[fe.Field] = fe.Message
	}
	assert.Equal(t, "Nome deve ter no mínimo 3 caracteres", fields["name"])
	assert.Equal(t, "Email inválido", fields["email"])
}

func TestSequencer_Completed(t *testing.T) {
	ctx := context.Background()
	s := NewSequencer()
	require.NoError(t, s.SubmitCustomer(ctx, validCustomer()))
	require.NoError(t, s.SubmitPayment(ctx, validPayment()))
	require.NoError(t, s.Confirm())

	assert.ErrorIs(t, s.Confirm(), ErrCheckoutComplete)
	assert.ErrorIs(t, s.Back(), ErrCheckoutComplete)
	assert.ErrorIs(t, s.SubmitCustomer(ctx, validCustomer()), ErrCheckoutComplete)
	assert.ErrorIs(t, s.SubmitPayment(ctx, validPayment()), ErrCheckoutComplete)
}
