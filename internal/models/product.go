package models

// Product is the database shape of a catalog product. Optional columns map
// to pointers so NULL survives the round trip.
type Product struct {
	ID                 int64    `json:"id"`
	Name               string   `json:"name"`
	Type               string   `json:"type"`
	AnnualReturnRate   *float64 `json:"annualReturnRate"`
	RiskLabel          string   `json:"riskLabel"`
	MinTermMonths      *int     `json:"minTermMonths"`
	MaxTermMonths      *int     `json:"maxTermMonths"`
	LiquidityDays      *int     `json:"liquidityDays"`
	RecommendedProfile string   `json:"recommendedProfile"`
}
