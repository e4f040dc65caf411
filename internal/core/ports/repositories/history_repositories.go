package repositories

import (
	"context"

	"github.com/cefinvest/invest_backend/internal/core/domain"
)

// HistoryRepository stores realized investments per customer.
type HistoryRepository interface {
	// SaveHistoryEntry persists an entry and fills in its generated id.
	SaveHistoryEntry(ctx context.Context, entry *domain.HistoryEntry) error

	// ListHistoryByCustomer returns a customer's entries ordered by date.
	ListHistoryByCustomer(ctx context.Context, customerID int64) ([]domain.HistoryEntry, error)

	// CountHistoryEntries returns the total number of stored entries.
	CountHistoryEntries(ctx context.Context) (int64, error)
}
