package models

import "time"

// HistoryEntry is the database shape of one realized investment.
type HistoryEntry struct {
	ID         int64     `json:"id"`
	CustomerID int64     `json:"customerId"`
	Type       string    `json:"type"`
	Amount     float64   `json:"amount"`
	ReturnRate float64   `json:"returnRate"`
	Date       time.Time `json:"date"`
}
