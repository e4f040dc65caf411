package services

import (
	"fmt"
	"math"

	"github.com/cefinvest/invest_backend/internal/apperrors"
)

// CompoundResult carries the figures of one compound-interest projection.
type CompoundResult struct {
	MonthlyRate     float64
	FinalValue      float64
	EffectiveReturn float64
}

// InterestCalculator converts an annual rate into its equivalent monthly
// rate and compounds it over the requested term. Pure math, no side effects.
type InterestCalculator struct{}

// NewInterestCalculator creates an InterestCalculator.
func NewInterestCalculator() *InterestCalculator {
	return &InterestCalculator{}
}

// Simulate projects principal over termMonths at the given annual rate.
// The monthly rate is the exact 12th root of the annual rate, so twelve
// compoundings reproduce the annual rate. A nil or negative rate is a
// validation error.
func (c *InterestCalculator) Simulate(principal float64, annualRate *float64, termMonths int) (CompoundResult, error) {
	if annualRate == nil || *annualRate < 0 {
		return CompoundResult{}, fmt.Errorf("%w: product has no valid annual return rate", apperrors.ErrValidation)
	}

	monthlyRate := math.Pow(1.0+*annualRate, 1.0/12.0) - 1.0
	finalValue := principal * math.Pow(1.0+monthlyRate, float64(termMonths))

	return CompoundResult{
		MonthlyRate:     monthlyRate,
		FinalValue:      finalValue,
		EffectiveReturn: finalValue/principal - 1.0,
	}, nil
}
