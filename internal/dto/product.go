package dto

import "github.com/cefinvest/invest_backend/internal/core/domain"

// ProductResponse is the wire shape of a catalog product. Optional columns
// serialize as null when absent.
type ProductResponse struct {
	ID                 int64    `json:"id"`
	Name               string   `json:"name"`
	Type               string   `json:"type"`
	AnnualReturnRate   *float64 `json:"annualReturnRate"`
	RiskLabel          string   `json:"riskLabel"`
	MinTermMonths      *int     `json:"minTermMonths"`
	MaxTermMonths      *int     `json:"maxTermMonths"`
	LiquidityDays      *int     `json:"liquidityDays"`
	RecommendedProfile string   `json:"recommendedProfile,omitempty"`
}

// ToProductResponse converts a domain product.
func ToProductResponse(p domain.Product) ProductResponse {
	return ProductResponse{
		ID:                 p.ID,
		Name:               p.Name,
		Type:               p.Type,
		AnnualReturnRate:   p.AnnualReturnRate,
		RiskLabel:          p.RiskLabel,
		MinTermMonths:      p.MinTermMonths,
		MaxTermMonths:      p.MaxTermMonths,
		LiquidityDays:      p.LiquidityDays,
		RecommendedProfile: p.RecommendedProfile,
	}
}

// ToProductResponses converts a slice, never returning nil.
func ToProductResponses(products []domain.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, ToProductResponse(p))
	}
	return out
}

// CreateProductRequest is the admin input for POST /products.
type CreateProductRequest struct {
	Name               string   `json:"name" binding:"required"`
	Type               string   `json:"type" binding:"required"`
	AnnualReturnRate   *float64 `json:"annualReturnRate" binding:"required,gte=0"`
	RiskLabel          string   `json:"riskLabel" binding:"required"`
	MinTermMonths      *int     `json:"minTermMonths" binding:"omitempty,gte=0"`
	MaxTermMonths      *int     `json:"maxTermMonths" binding:"omitempty,gte=0"`
	LiquidityDays      *int     `json:"liquidityDays" binding:"omitempty,gte=0"`
	RecommendedProfile string   `json:"recommendedProfile"`
}
