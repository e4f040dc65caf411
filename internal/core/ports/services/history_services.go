package services

import (
	"context"

	"github.com/cefinvest/invest_backend/internal/core/domain"
)

// HistorySvc exposes a customer's realized investment history.
type HistorySvc interface {
	// ListCustomerHistory returns the customer's entries ordered by date.
	ListCustomerHistory(ctx context.Context, customerID int64) ([]domain.HistoryEntry, error)
}
