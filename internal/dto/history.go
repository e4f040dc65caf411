package dto

import (
	"time"

	"github.com/cefinvest/invest_backend/internal/core/domain"
)

// HistoryEntryResponse is one row of GET /customers/:id/history.
type HistoryEntryResponse struct {
	ID         int64     `json:"id"`
	Type       string    `json:"type"`
	Amount     float64   `json:"amount"`
	ReturnRate float64   `json:"returnRate"`
	Date       time.Time `json:"date"`
}

// ToHistoryEntryResponses converts a customer's history, never nil.
func ToHistoryEntryResponses(entries []domain.HistoryEntry) []HistoryEntryResponse {
	out := make([]HistoryEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, HistoryEntryResponse{
			ID:         e.ID,
			Type:       e.Type,
			Amount:     e.Amount,
			ReturnRate: e.ReturnRate,
			Date:       e.Date,
		})
	}
	return out
}
