package domain

import "time"

// Simulation is one persisted simulation run. ProductName is populated on
// reads (joined from the catalog) and ignored on writes.
type Simulation struct {
	ID             int64
	CustomerID     int64
	ProductID      int64
	ProductName    string
	AmountInvested float64
	FinalValue     float64
	TermMonths     int
	SimulatedAt    time.Time
}

// ProductDayAggregate is the per-product, per-calendar-day rollup of
// persisted simulations.
type ProductDayAggregate struct {
	ProductName   string
	Day           time.Time
	Count         int64
	AvgFinalValue float64
}
