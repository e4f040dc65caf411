package repositories

import (
	"context"

	"github.com/cefinvest/invest_backend/internal/core/domain"
)

// CustomerRepository stores customers and their derived risk profiles.
type CustomerRepository interface {
	// FindCustomerByID retrieves one customer, or apperrors.ErrNotFound.
	FindCustomerByID(ctx context.Context, customerID int64) (*domain.Customer, error)

	// SaveCustomer persists a new customer with its application-assigned id.
	SaveCustomer(ctx context.Context, customer domain.Customer) error

	// UpdateCustomerRiskProfile overwrites the stored risk profile.
	UpdateCustomerRiskProfile(ctx context.Context, customerID int64, profile domain.RiskProfile) error

	// ListCustomers returns all customers ordered by id.
	ListCustomers(ctx context.Context) ([]domain.Customer, error)

	// CountCustomers returns the number of stored customers.
	CountCustomers(ctx context.Context) (int64, error)
}
