package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/cefinvest/invest_backend/internal/apperrors"
	"github.com/cefinvest/invest_backend/internal/core/domain"
	portsrepo "github.com/cefinvest/invest_backend/internal/core/ports/repositories"
	"github.com/cefinvest/invest_backend/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxCustomerRepository struct {
	db *pgxpool.Pool
}

func newPgxCustomerRepository(db *pgxpool.Pool) portsrepo.CustomerRepository {
	return &PgxCustomerRepository{db: db}
}

var _ portsrepo.CustomerRepository = (*PgxCustomerRepository)(nil)

func toDomainCustomer(m models.Customer) domain.Customer {
	return domain.Customer{
		ID:          m.ID,
		RiskProfile: domain.RiskProfile(m.RiskProfile),
		CreatedAt:   m.CreatedAt,
	}
}

func (r *PgxCustomerRepository) FindCustomerByID(ctx context.Context, customerID int64) (*domain.Customer, error) {
	query := `SELECT id, risk_profile, created_at FROM customers WHERE id = $1;`

	var m models.Customer
	err := queryRunner(ctx, r.db).QueryRow(ctx, query, customerID).Scan(&m.ID, &m.RiskProfile, &m.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find customer by ID %d: %w", customerID, err)
	}

	d := toDomainCustomer(m)
	return &d, nil
}

func (r *PgxCustomerRepository) SaveCustomer(ctx context.Context, customer domain.Customer) error {
	query := `INSERT INTO customers (id, risk_profile, created_at) VALUES ($1, $2, $3);`

	_, err := queryRunner(ctx, r.db).Exec(ctx, query, customer.ID, string(customer.RiskProfile), customer.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: customer %d already exists", apperrors.ErrDuplicate, customer.ID)
		}
		return fmt.Errorf("failed to save customer: %w", err)
	}
	return nil
}

func (r *PgxCustomerRepository) UpdateCustomerRiskProfile(ctx context.Context, customerID int64, profile domain.RiskProfile) error {
	query := `UPDATE customers SET risk_profile = $1 WHERE id = $2;`

	tag, err := queryRunner(ctx, r.db).Exec(ctx, query, string(profile), customerID)
	if err != nil {
		return fmt.Errorf("failed to update risk profile for customer %d: %w", customerID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: customer %d", apperrors.ErrNotFound, customerID)
	}
	return nil
}

func (r *PgxCustomerRepository) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	query := `SELECT id, risk_profile, created_at FROM customers ORDER BY id;`

	rows, err := queryRunner(ctx, r.db).Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}
	defer rows.Close()

	customers := make([]domain.Customer, 0)
	for rows.Next() {
		var m models.Customer
		if err := rows.Scan(&m.ID, &m.RiskProfile, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan customer row: %w", err)
		}
		customers = append(customers, toDomainCustomer(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed iterating customer rows: %w", err)
	}
	return customers, nil
}

func (r *PgxCustomerRepository) CountCustomers(ctx context.Context) (int64, error) {
	var count int64
	err := queryRunner(ctx, r.db).QueryRow(ctx, `SELECT COUNT(*) FROM customers;`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count customers: %w", err)
	}
	return count, nil
}
