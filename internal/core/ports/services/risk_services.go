package services

import (
	"context"

	"github.com/cefinvest/invest_backend/internal/core/domain"
)

// RiskProfileSvc derives a customer's risk profile from investment history.
type RiskProfileSvc interface {
	// CalculateProfile scores the customer's history and classifies it.
	// The computation is read-only; persisting the resulting profile is the
	// caller's decision.
	CalculateProfile(ctx context.Context, customerID int64) (domain.RiskAssessment, error)
}
