package services

import (
	"context"

	"github.com/cefinvest/invest_backend/internal/core/domain"
	"github.com/cefinvest/invest_backend/internal/dto"
)

// ProductSvc maintains the investment product catalog.
type ProductSvc interface {
	// ListProducts returns the full catalog ordered by id.
	ListProducts(ctx context.Context) ([]domain.Product, error)

	// CreateProduct persists a new catalog product.
	CreateProduct(ctx context.Context, req dto.CreateProductRequest) (*domain.Product, error)
}
