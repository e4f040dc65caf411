package dto

import (
	"time"

	"github.com/cefinvest/invest_backend/internal/core/domain"
)

// CustomerResponse is one row of GET /customers.
type CustomerResponse struct {
	ID          int64     `json:"id"`
	RiskProfile string    `json:"riskProfile"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ToCustomerResponses converts the customer registry, never nil.
func ToCustomerResponses(customers []domain.Customer) []CustomerResponse {
	out := make([]CustomerResponse, 0, len(customers))
	for _, c := range customers {
		out = append(out, CustomerResponse{
			ID:          c.ID,
			RiskProfile: string(c.RiskProfile),
			CreatedAt:   c.CreatedAt,
		})
	}
	return out
}
