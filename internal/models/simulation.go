package models

import "time"

// Simulation is the database shape of one accepted simulation run.
type Simulation struct {
	ID             int64     `json:"id"`
	CustomerID     int64     `json:"customerId"`
	ProductID      int64     `json:"productId"`
	AmountInvested float64   `json:"amountInvested"`
	FinalValue     float64   `json:"finalValue"`
	TermMonths     int       `json:"termMonths"`
	SimulatedAt    time.Time `json:"simulatedAt"`
}
