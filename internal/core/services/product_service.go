package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/cefinvest/invest_backend/internal/apperrors"
	"github.com/cefinvest/invest_backend/internal/core/domain"
	portsrepo "github.com/cefinvest/invest_backend/internal/core/ports/repositories"
	portssvc "github.com/cefinvest/invest_backend/internal/core/ports/services"
	"github.com/cefinvest/invest_backend/internal/dto"
	"github.com/cefinvest/invest_backend/internal/middleware"
)

// ProductService maintains the investment product catalog.
type ProductService struct {
	productRepo portsrepo.ProductRepository
}

// NewProductService creates a ProductService.
func NewProductService(productRepo portsrepo.ProductRepository) *ProductService {
	return &ProductService{productRepo: productRepo}
}

var _ portssvc.ProductSvc = (*ProductService)(nil)

// ListProducts returns the full catalog ordered by id.
func (s *ProductService) ListProducts(ctx context.Context) ([]domain.Product, error) {
	products, err := s.productRepo.ListProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: listing products: %v", apperrors.ErrInternal, err)
	}
	return products, nil
}

// CreateProduct persists a new catalog product. The range check here guards
// combinations the per-field binding tags cannot express.
func (s *ProductService) CreateProduct(ctx context.Context, req dto.CreateProductRequest) (*domain.Product, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.MinTermMonths != nil && req.MaxTermMonths != nil &&
		*req.MaxTermMonths > 0 && *req.MinTermMonths > *req.MaxTermMonths {
		return nil, fmt.Errorf("%w: minTermMonths exceeds maxTermMonths", apperrors.ErrValidation)
	}

	product := domain.Product{
		Name:               strings.TrimSpace(req.Name),
		Type:               strings.TrimSpace(req.Type),
		AnnualReturnRate:   req.AnnualReturnRate,
		RiskLabel:          strings.TrimSpace(req.RiskLabel),
		MinTermMonths:      req.MinTermMonths,
		MaxTermMonths:      req.MaxTermMonths,
		LiquidityDays:      req.LiquidityDays,
		RecommendedProfile: strings.ToUpper(strings.TrimSpace(req.RecommendedProfile)),
	}
	if product.Name == "" || product.Type == "" {
		return nil, fmt.Errorf("%w: name and type must not be blank", apperrors.ErrValidation)
	}

	if err := s.productRepo.SaveProduct(ctx, &product); err != nil {
		return nil, asKnownOrInternal(fmt.Errorf("saving product: %w", err))
	}

	logger.Info("Product created", slog.Int64("product_id", product.ID), slog.String("name", product.Name))
	return &product, nil
}
