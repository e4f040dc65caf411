package services

import "github.com/cefinvest/invest_backend/internal/core/domain"

// MaxAllowedRisk maps a declared customer profile to the highest product
// risk level it tolerates. Unknown profiles default to moderate.
func MaxAllowedRisk(profile domain.RiskProfile) domain.RiskLevel {
	switch profile {
	case domain.ProfileConservative:
		return domain.RiskLow
	case domain.ProfileModerate:
		return domain.RiskMedium
	case domain.ProfileAggressive:
		return domain.RiskHigh
	default:
		return domain.RiskMedium
	}
}

// IsProfileCompatible reports whether the product's risk level fits the
// customer's tolerance. An unknown profile never blocks a product.
func (rc *RiskClassifier) IsProfileCompatible(product domain.Product, profile domain.RiskProfile) bool {
	if !profile.IsKnown() {
		return true
	}
	return rc.ClassifyRiskLabel(product.RiskLabel) <= MaxAllowedRisk(profile)
}

// FilterByProfile keeps only the products compatible with a known profile.
// For an unknown profile it returns an empty list; the caller falls back to
// the unfiltered candidate set, keeping profile a soft constraint.
func (rc *RiskClassifier) FilterByProfile(products []domain.Product, profile domain.RiskProfile) []domain.Product {
	filtered := make([]domain.Product, 0, len(products))
	if !profile.IsKnown() {
		return filtered
	}
	maxRisk := MaxAllowedRisk(profile)
	for _, p := range products {
		if rc.ClassifyRiskLabel(p.RiskLabel) <= maxRisk {
			filtered = append(filtered, p)
		}
	}
	return filtered
}
