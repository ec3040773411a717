package catalog

import (
	"context"
	"fmt"
	"os"
	"time"

	"vitrine-be/internal/coupon"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Repository provides read access to the storefront catalog. The catalog is
// static for the lifetime of the process: either the built-in seed data or a
// YAML file loaded at startup.
type Repository interface {
	ListProducts(ctx context.Context) ([]Product, error)
	GetProduct(ctx context.Context, id int) (*Product, error)
	ListPromotions(ctx context.Context) ([]Promotion, error)
	ListCoupons(ctx context.Context) ([]coupon.Coupon, error)
}

type staticRepository struct {
	products   []Product
	promotions []Promotion
	coupons    []coupon.Coupon
}

// NewRepository returns a repository backed by the built-in seed catalog.
func NewRepository() Repository {
	return &staticRepository{
		products:   defaultProducts(),
		promotions: defaultPromotions(),
		coupons:    defaultCoupons(),
	}
}

// NewRepositoryFromFile loads the catalog from a YAML file.
func NewRepositoryFromFile(path string) (Repository, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}

	var file catalogFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCatalogFile, err)
	}

	repo := &staticRepository{}

	for _, p := range file.Products {
		product, err := p.toProduct()
		if err != nil {
			return nil, err
		}
		repo.products = append(repo.products, product)
	}

	for _, pr := range file.Promotions {
		repo.promotions = append(repo.promotions, Promotion{
			ID:         pr.ID,
			Name:       pr.Name,
			Discount:   pr.Discount,
			Conditions: pr.Conditions,
			Validity:   pr.Validity,
		})
	}

	for _, c := range file.Coupons {
		def, err := c.toCoupon()
		if err != nil {
			return nil, err
		}
		repo.coupons = append(repo.coupons, def)
	}

	return repo, nil
}

func (r *staticRepository) ListProducts(ctx context.Context) ([]Product, error) {
	out := make([]Product, len(r.products))
	copy(out, r.products)
	return out, nil
}

func (r *staticRepository) GetProduct(ctx context.Context, id int) (*Product, error) {
	for _, p := range r.products {
		if p.ID == id {
			found := p
			return &found, nil
		}
	}
	return nil, ErrProductNotFound
}

func (r *staticRepository) ListPromotions(ctx context.Context) ([]Promotion, error) {
	out := make([]Promotion, len(r.promotions))
	copy(out, r.promotions)
	return out, nil
}

func (r *staticRepository) ListCoupons(ctx context.Context) ([]coupon.Coupon, error) {
	out := make([]coupon.Coupon, len(r.coupons))
	copy(out, r.coupons)
	return out, nil
}

/* ---------- YAML FILE SCHEMA ---------- */

type catalogFile struct {
	Products   []productEntry   `yaml:"products"`
	Promotions []promotionEntry `yaml:"promotions"`
	Coupons    []couponEntry    `yaml:"coupons"`
}

type productEntry struct {
	ID            int    `yaml:"id"`
	Name          string `yaml:"name"`
	OriginalPrice string `yaml:"original_price"`
	PromoPrice    string `yaml:"promo_price"`
	PromoType     string `yaml:"promo_type"`
	Stock         int    `yaml:"stock"`
}

type promotionEntry struct {
	ID         int     `yaml:"id"`
	Name       string  `yaml:"name"`
	Discount   *string `yaml:"discount"`
	Conditions *string `yaml:"conditions"`
	Validity   string  `yaml:"validity"`
}

type couponEntry struct {
	Code            string `yaml:"code"`
	DiscountPercent int    `yaml:"discount_percent"`
	MinCartValue    string `yaml:"min_cart_value"`
	ValidUntil      string `yaml:"valid_until"`
}

func (e productEntry) toProduct() (Product, error) {
	original, err := decimal.NewFromString(e.OriginalPrice)
	if err != nil {
		return Product{}, fmt.Errorf("%w: product %d original_price %q", ErrInvalidPrice, e.ID, e.OriginalPrice)
	}
	promo, err := decimal.NewFromString(e.PromoPrice)
	if err != nil {
		return Product{}, fmt.Errorf("%w: product %d promo_price %q", ErrInvalidPrice, e.ID, e.PromoPrice)
	}
	if original.LessThanOrEqual(decimal.Zero) || promo.LessThanOrEqual(decimal.Zero) || promo.GreaterThan(original) {
		return Product{}, fmt.Errorf("%w: product %d promo_price must be within (0, original_price]", ErrInvalidPrice, e.ID)
	}
	if e.Stock < 0 {
		return Product{}, fmt.Errorf("%w: product %d negative stock", ErrInvalidCatalogFile, e.ID)
	}

	return Product{
		ID:            e.ID,
		Name:          e.Name,
		OriginalPrice: original,
		PromoPrice:    promo,
		PromoType:     e.PromoType,
		Stock:         e.Stock,
	}, nil
}

func (e couponEntry) toCoupon() (coupon.Coupon, error) {
	validUntil, err := time.Parse("2006-01-02", e.ValidUntil)
	if err != nil {
		return coupon.Coupon{}, fmt.Errorf("%w: coupon %s valid_until %q", ErrInvalidCatalogFile, e.Code, e.ValidUntil)
	}
	if e.DiscountPercent < 0 || e.DiscountPercent > 100 {
		return coupon.Coupon{}, fmt.Errorf("%w: coupon %s discount_percent must be in [0, 100]", ErrInvalidCatalogFile, e.Code)
	}

	def := coupon.Coupon{
		Code:            coupon.Normalize(e.Code),
		DiscountPercent: e.DiscountPercent,
		ExpiresAt:       validUntil,
	}

	if e.MinCartValue != "" {
		min, err := decimal.NewFromString(e.MinCartValue)
		if err != nil {
			return coupon.Coupon{}, fmt.Errorf("%w: coupon %s min_cart_value %q", ErrInvalidCatalogFile, e.Code, e.MinCartValue)
		}
		def.MinCartValue = &min
	}

	return def, nil
}

/* ---------- SEED DATA ---------- */

func defaultProducts() []Product {
	return []Product{
		{
			ID:            1,
			Name:          "Camiseta Básica",
			OriginalPrice: decimal.RequireFromString("79.90"),
			PromoPrice:    decimal.RequireFromString("59.90"),
			PromoType:     "Desconto Direto",
			Stock:         15,
		},
		{
			ID:            2,
			Name:          "Calça Jeans",
			OriginalPrice: decimal.RequireFromString("199.90"),
			PromoPrice:    decimal.RequireFromString("159.90"),
			PromoType:     "Cupom JEANS20",
			Stock:         8,
		},
		{
			ID:            3,
			Name:          "Tênis Casual",
			OriginalPrice: decimal.RequireFromString("299.90"),
			PromoPrice:    decimal.RequireFromString("239.90"),
			PromoType:     "Pagamento em Dinheiro",
			Stock:         5,
		},
	}
}

func defaultPromotions() []Promotion {
	discount := "25%"
	conditions := "Compras acima de R$299"
	return []Promotion{
		{ID: 1, Name: "Desconto Verão", Discount: &discount, Validity: "Até 31/12"},
		{ID: 2, Name: "Frete Grátis", Conditions: &conditions, Validity: "Até 15/12"},
	}
}

func defaultCoupons() []coupon.Coupon {
	minFrete := decimal.NewFromInt(200)
	return []coupon.Coupon{
		{
			Code:            "PROMO10",
			DiscountPercent: 10,
			ExpiresAt:       time.Date(2024, time.December, 31, 0, 0, 0, 0, time.UTC),
		},
		{
			Code:            "FRETE20",
			DiscountPercent: 20,
			MinCartValue:    &minFrete,
			ExpiresAt:       time.Date(2024, time.December, 31, 0, 0, 0, 0, time.UTC),
		},
	}
}
