package catalog

import (
	"context"
	"errors"
	"testing"

	"vitrine-be/internal/coupon"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockRepository is a mock implementation of the Repository interface
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) ListProducts(ctx context.Context) ([]Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Product), args.Error(1)
}

func (m *MockRepository) GetProduct(ctx context.Context, id int) (*Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Product), args.Error(1)
}

func (m *MockRepository) ListPromotions(ctx context.Context) ([]Promotion, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Promotion), args.Error(1)
}

func (m *MockRepository) ListCoupons(ctx context.Context) ([]coupon.Coupon, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]coupon.Coupon), args.Error(1)
}

func TestService_ListProducts(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("ListProducts", ctx).Return([]Product{{ID: 1, Name: "Camiseta"}}, nil)

		svc := NewService(repo)
		products, err := svc.ListProducts(ctx)

		require.NoError(t, err)
		assert.Len(t, products, 1)
		repo.AssertExpectations(t)
	})

	t.Run("Repository error propagates", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("ListProducts", ctx).Return(nil, errors.New("boom"))

		svc := NewService(repo)
		_, err := svc.ListProducts(ctx)

		assert.Error(t, err)
	})
}

func TestService_GetProduct(t *testing.T) {
	ctx := context.Background()

	t.Run("Found", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("GetProduct", ctx, 2).Return(&Product{ID: 2, Name: "Calça"}, nil)

		svc := NewService(repo)
		p, err := svc.GetProduct(ctx, 2)

		require.NoError(t, err)
		assert.Equal(t, "Calça", p.Name)
	})

	t.Run("Not found", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("GetProduct", ctx, 9).Return(nil, ErrProductNotFound)

		svc := NewService(repo)
		_, err := svc.GetProduct(ctx, 9)

		assert.ErrorIs(t, err, ErrProductNotFound)
	})
}
