package services

import (
	"context"
	"fmt"

	"github.com/cefinvest/invest_backend/internal/apperrors"
	"github.com/cefinvest/invest_backend/internal/core/domain"
	portsrepo "github.com/cefinvest/invest_backend/internal/core/ports/repositories"
	portssvc "github.com/cefinvest/invest_backend/internal/core/ports/services"
)

// CustomerService reads the customer registry.
type CustomerService struct {
	customerRepo portsrepo.CustomerRepository
}

// NewCustomerService creates a CustomerService.
func NewCustomerService(customerRepo portsrepo.CustomerRepository) *CustomerService {
	return &CustomerService{customerRepo: customerRepo}
}

var _ portssvc.CustomerSvc = (*CustomerService)(nil)

// ListCustomers returns all registered customers ordered by id.
func (s *CustomerService) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	customers, err := s.customerRepo.ListCustomers(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: listing customers: %v", apperrors.ErrInternal, err)
	}
	return customers, nil
}
