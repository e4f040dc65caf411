package services

import (
	"context"
	"fmt"

	"github.com/cefinvest/invest_backend/internal/apperrors"
	"github.com/cefinvest/invest_backend/internal/core/domain"
	portsrepo "github.com/cefinvest/invest_backend/internal/core/ports/repositories"
	portssvc "github.com/cefinvest/invest_backend/internal/core/ports/services"
)

// HistoryService reads a customer's realized investment history.
type HistoryService struct {
	historyRepo portsrepo.HistoryRepository
}

// NewHistoryService creates a HistoryService.
func NewHistoryService(historyRepo portsrepo.HistoryRepository) *HistoryService {
	return &HistoryService{historyRepo: historyRepo}
}

var _ portssvc.HistorySvc = (*HistoryService)(nil)

// ListCustomerHistory returns the customer's entries ordered by date. An
// unknown customer simply has no entries.
func (s *HistoryService) ListCustomerHistory(ctx context.Context, customerID int64) ([]domain.HistoryEntry, error) {
	if customerID <= 0 {
		return nil, fmt.Errorf("%w: customer id must be positive", apperrors.ErrValidation)
	}
	entries, err := s.historyRepo.ListHistoryByCustomer(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("%w: listing history for customer %d: %v", apperrors.ErrInternal, customerID, err)
	}
	return entries, nil
}
