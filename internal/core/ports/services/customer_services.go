package services

import (
	"context"

	"github.com/cefinvest/invest_backend/internal/core/domain"
)

// CustomerSvc exposes the customer registry reads.
type CustomerSvc interface {
	// ListCustomers returns every registered customer ordered by id.
	ListCustomers(ctx context.Context) ([]domain.Customer, error)
}
