package domain

import "time"

// HistoryEntry is an investment actually carried out by a customer. One
// entry is derived from every accepted simulation; the risk scoring engine
// is its only consumer.
type HistoryEntry struct {
	ID         int64
	CustomerID int64
	Type       string
	Amount     float64
	ReturnRate float64
	Date       time.Time
}
