package dto

import "github.com/cefinvest/invest_backend/internal/core/domain"

// RiskProfileResponse is the output of GET /customers/:id/risk-profile.
type RiskProfileResponse struct {
	CustomerID  int64  `json:"customerId"`
	Profile     string `json:"profile"`
	Score       int    `json:"score"`
	Description string `json:"description"`
}

// ToRiskProfileResponse converts a scoring assessment.
func ToRiskProfileResponse(a domain.RiskAssessment) RiskProfileResponse {
	return RiskProfileResponse{
		CustomerID:  a.CustomerID,
		Profile:     a.Profile,
		Score:       a.Score,
		Description: a.Description,
	}
}
