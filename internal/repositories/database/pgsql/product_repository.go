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

type PgxProductRepository struct {
	db *pgxpool.Pool
}

func newPgxProductRepository(db *pgxpool.Pool) portsrepo.ProductRepository {
	return &PgxProductRepository{db: db}
}

var _ portsrepo.ProductRepository = (*PgxProductRepository)(nil)

func toDomainProduct(m models.Product) domain.Product {
	return domain.Product{
		ID:                 m.ID,
		Name:               m.Name,
		Type:               m.Type,
		AnnualReturnRate:   m.AnnualReturnRate,
		RiskLabel:          m.RiskLabel,
		MinTermMonths:      m.MinTermMonths,
		MaxTermMonths:      m.MaxTermMonths,
		LiquidityDays:      m.LiquidityDays,
		RecommendedProfile: m.RecommendedProfile,
	}
}

const productColumns = `id, name, type, annual_return_rate, risk_label, min_term_months, max_term_months, liquidity_days, recommended_profile`

func scanProduct(row pgx.Row) (models.Product, error) {
	var m models.Product
	err := row.Scan(
		&m.ID,
		&m.Name,
		&m.Type,
		&m.AnnualReturnRate,
		&m.RiskLabel,
		&m.MinTermMonths,
		&m.MaxTermMonths,
		&m.LiquidityDays,
		&m.RecommendedProfile,
	)
	return m, err
}

func (r *PgxProductRepository) FindProductByID(ctx context.Context, productID int64) (*domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1;`

	m, err := scanProduct(queryRunner(ctx, r.db).QueryRow(ctx, query, productID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find product by ID %d: %w", productID, err)
	}

	d := toDomainProduct(m)
	return &d, nil
}

func (r *PgxProductRepository) ListProducts(ctx context.Context) ([]domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products ORDER BY id;`

	rows, err := queryRunner(ctx, r.db).Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	defer rows.Close()

	return collectProducts(rows)
}

func (r *PgxProductRepository) ListProductsByRecommendedProfile(ctx context.Context, profile string) ([]domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE UPPER(recommended_profile) = UPPER($1) ORDER BY id;`

	rows, err := queryRunner(ctx, r.db).Query(ctx, query, profile)
	if err != nil {
		return nil, fmt.Errorf("failed to list products for profile %s: %w", profile, err)
	}
	defer rows.Close()

	return collectProducts(rows)
}

func collectProducts(rows pgx.Rows) ([]domain.Product, error) {
	products := make([]domain.Product, 0)
	for rows.Next() {
		m, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product row: %w", err)
		}
		products = append(products, toDomainProduct(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed iterating product rows: %w", err)
	}
	return products, nil
}

func (r *PgxProductRepository) SaveProduct(ctx context.Context, product *domain.Product) error {
	query := `
		INSERT INTO products (name, type, annual_return_rate, risk_label, min_term_months, max_term_months, liquidity_days, recommended_profile)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id;
	`
	err := queryRunner(ctx, r.db).QueryRow(ctx, query,
		product.Name,
		product.Type,
		product.AnnualReturnRate,
		product.RiskLabel,
		product.MinTermMonths,
		product.MaxTermMonths,
		product.LiquidityDays,
		product.RecommendedProfile,
	).Scan(&product.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: product %q already exists", apperrors.ErrDuplicate, product.Name)
		}
		return fmt.Errorf("failed to save product: %w", err)
	}
	return nil
}

func (r *PgxProductRepository) CountProducts(ctx context.Context) (int64, error) {
	var count int64
	err := queryRunner(ctx, r.db).QueryRow(ctx, `SELECT COUNT(*) FROM products;`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count products: %w", err)
	}
	return count, nil
}
