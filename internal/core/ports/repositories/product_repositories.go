package repositories

import (
	"context"

	"github.com/cefinvest/invest_backend/internal/core/domain"
)

// ProductReader exposes read access to the product catalog.
type ProductReader interface {
	// FindProductByID retrieves one product, or apperrors.ErrNotFound.
	FindProductByID(ctx context.Context, productID int64) (*domain.Product, error)

	// ListProducts returns the full catalog ordered by id.
	ListProducts(ctx context.Context) ([]domain.Product, error)

	// ListProductsByRecommendedProfile returns the products whose
	// recommended-profile attribute matches the given label, compared
	// case-insensitively.
	ListProductsByRecommendedProfile(ctx context.Context, profile string) ([]domain.Product, error)
}

// ProductWriter exposes catalog maintenance operations.
type ProductWriter interface {
	// SaveProduct persists a new product and fills in its generated id.
	SaveProduct(ctx context.Context, product *domain.Product) error

	// CountProducts returns the catalog size.
	CountProducts(ctx context.Context) (int64, error)
}

// ProductRepository combines catalog reads and writes.
type ProductRepository interface {
	ProductReader
	ProductWriter
}
