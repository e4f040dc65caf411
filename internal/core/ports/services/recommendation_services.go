package services

import (
	"context"

	"github.com/cefinvest/invest_backend/internal/core/domain"
)

// RecommendationSvc looks up catalog products by recommended profile.
type RecommendationSvc interface {
	// RecommendByProfile matches the label case-insensitively against each
	// product's recommended-profile attribute. A blank label yields an
	// empty list.
	RecommendByProfile(ctx context.Context, profile string) ([]domain.Product, error)
}
