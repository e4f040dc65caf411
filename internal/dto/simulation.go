package dto

import (
	"time"

	"github.com/cefinvest/invest_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SimulationRequest is the input of POST /simulations. ProductID is
// optional: when absent the recommendation engine auto-selects a product
// matching term, type and profile.
type SimulationRequest struct {
	CustomerID  int64   `json:"customerId" binding:"required,gt=0"`
	ProductID   *int64  `json:"productId" binding:"omitempty,gt=0"`
	Amount      float64 `json:"amount" binding:"required,gt=0"`
	TermMonths  int     `json:"termMonths" binding:"required,gt=0"`
	ProductType string  `json:"productType" binding:"omitempty"`
}

// ValidatedProduct is the snapshot of the product a simulation ran against.
type ValidatedProduct struct {
	ID               int64   `json:"id"`
	Name             string  `json:"name"`
	Type             string  `json:"type"`
	AnnualReturnRate float64 `json:"annualReturnRate"`
	RiskLabel        string  `json:"riskLabel"`
}

// SimulationResult carries the computed figures of one run.
type SimulationResult struct {
	FinalValue      float64 `json:"finalValue"`
	EffectiveReturn float64 `json:"effectiveReturn"`
	TermMonths      int     `json:"termMonths"`
}

// SimulationResponse is the envelope returned by POST /simulations.
type SimulationResponse struct {
	ValidatedProduct ValidatedProduct `json:"validatedProduct"`
	Result           SimulationResult `json:"simulationResult"`
	SimulatedAt      time.Time        `json:"simulatedAt"`
}

// NewSimulationResponse assembles the response envelope, rounding money to
// 2 places and the effective return to 4, like the upstream contract.
func NewSimulationResponse(product domain.Product, finalValue, effectiveReturn float64, termMonths int, simulatedAt time.Time) *SimulationResponse {
	return &SimulationResponse{
		ValidatedProduct: ValidatedProduct{
			ID:               product.ID,
			Name:             product.Name,
			Type:             product.Type,
			AnnualReturnRate: product.AnnualReturnRateOrZero(),
			RiskLabel:        product.RiskLabel,
		},
		Result: SimulationResult{
			FinalValue:      roundTo(finalValue, 2),
			EffectiveReturn: roundTo(effectiveReturn, 4),
			TermMonths:      termMonths,
		},
		SimulatedAt: simulatedAt,
	}
}

func roundTo(v float64, places int32) float64 {
	return decimal.NewFromFloat(v).Round(places).InexactFloat64()
}

// SimulationHistoryResponse is one row of GET /simulations.
type SimulationHistoryResponse struct {
	ID             int64     `json:"id"`
	CustomerID     int64     `json:"customerId"`
	Product        string    `json:"product"`
	AmountInvested float64   `json:"amountInvested"`
	FinalValue     float64   `json:"finalValue"`
	TermMonths     int       `json:"termMonths"`
	SimulatedAt    time.Time `json:"simulatedAt"`
}

// ToSimulationHistoryResponse converts a persisted simulation.
func ToSimulationHistoryResponse(s domain.Simulation) SimulationHistoryResponse {
	return SimulationHistoryResponse{
		ID:             s.ID,
		CustomerID:     s.CustomerID,
		Product:        s.ProductName,
		AmountInvested: s.AmountInvested,
		FinalValue:     s.FinalValue,
		TermMonths:     s.TermMonths,
		SimulatedAt:    s.SimulatedAt,
	}
}

// SimulationByProductDayResponse is one row of GET /simulations/by-product-day.
type SimulationByProductDayResponse struct {
	Product       string  `json:"product"`
	Day           string  `json:"day"`
	Count         int64   `json:"simulationCount"`
	AvgFinalValue float64 `json:"avgFinalValue"`
}

// ToSimulationByProductDayResponse converts one aggregate row. The day is
// rendered as a plain calendar date.
func ToSimulationByProductDayResponse(a domain.ProductDayAggregate) SimulationByProductDayResponse {
	return SimulationByProductDayResponse{
		Product:       a.ProductName,
		Day:           a.Day.Format("2006-01-02"),
		Count:         a.Count,
		AvgFinalValue: roundTo(a.AvgFinalValue, 2),
	}
}
