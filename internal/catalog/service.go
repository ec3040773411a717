package catalog

import (
	"context"

	"vitrine-be/internal/coupon"
	"vitrine-be/internal/logger"

	"go.uber.org/zap"
)

// Service exposes the catalog to the transport layer.
type Service interface {
	ListProducts(ctx context.Context) ([]Product, error)
	GetProduct(ctx context.Context, id int) (*Product, error)
	ListPromotions(ctx context.Context) ([]Promotion, error)
	ListCoupons(ctx context.Context) ([]coupon.Coupon, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) ListProducts(ctx context.Context) ([]Product, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("service", "Catalog"),
		zap.String("method", "ListProducts"),
	)

	products, err := s.repo.ListProducts(ctx)
	if err != nil {
		log.Error("failed to list products", zap.Error(err))
		return nil, err
	}

	log.Debug("products listed", zap.Int("count", len(products)))
	return products, nil
}

func (s *service) GetProduct(ctx context.Context, id int) (*Product, error) {
	product, err := s.repo.GetProduct(ctx, id)
	if err != nil {
		logger.FromCtx(ctx).Warn("product lookup failed",
			zap.Int("product_id", id),
			zap.Error(err),
		)
		return nil, err
	}
	return product, nil
}

func (s *service) ListPromotions(ctx context.Context) ([]Promotion, error) {
	return s.repo.ListPromotions(ctx)
}

func (s *service) ListCoupons(ctx context.Context) ([]coupon.Coupon, error) {
	return s.repo.ListCoupons(ctx)
}
