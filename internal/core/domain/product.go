package domain

// Product is an investment product from the catalog. Immutable reference
// data; rates are decimal fractions (0.12 = 12% a year).
type Product struct {
	ID                 int64
	Name               string
	Type               string
	AnnualReturnRate   *float64
	RiskLabel          string
	MinTermMonths      *int
	MaxTermMonths      *int
	LiquidityDays      *int
	RecommendedProfile string
}

// AnnualReturnRateOrZero returns the product's annual rate, treating an
// absent rate as zero for ordering purposes.
func (p Product) AnnualReturnRateOrZero() float64 {
	if p.AnnualReturnRate == nil {
		return 0
	}
	return *p.AnnualReturnRate
}
