package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/cefinvest/invest_backend/internal/apperrors"
	"github.com/cefinvest/invest_backend/internal/core/domain"
	portsrepo "github.com/cefinvest/invest_backend/internal/core/ports/repositories"
	portssvc "github.com/cefinvest/invest_backend/internal/core/ports/services"
)

// RecommendationService answers profile-based catalog lookups.
type RecommendationService struct {
	productRepo portsrepo.ProductReader
}

// NewRecommendationService creates a RecommendationService.
func NewRecommendationService(productRepo portsrepo.ProductReader) *RecommendationService {
	return &RecommendationService{productRepo: productRepo}
}

var _ portssvc.RecommendationSvc = (*RecommendationService)(nil)

// RecommendByProfile returns the products whose recommended-profile
// attribute matches the label, ignoring case and surrounding whitespace.
// A blank label matches nothing.
func (s *RecommendationService) RecommendByProfile(ctx context.Context, profile string) ([]domain.Product, error) {
	normalized := strings.ToUpper(strings.TrimSpace(profile))
	if normalized == "" {
		return []domain.Product{}, nil
	}

	products, err := s.productRepo.ListProductsByRecommendedProfile(ctx, normalized)
	if err != nil {
		return nil, fmt.Errorf("%w: listing products for profile %q: %v", apperrors.ErrInternal, normalized, err)
	}
	return products, nil
}
