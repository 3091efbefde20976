package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/client-registry/internal/domain"
)

// SupplierRepository defines persistence access for supplier records.
type SupplierRepository interface {
	Create(ctx context.Context, supplier *domain.Supplier) error
	ExistsByTaxID(ctx context.Context, taxID string) (bool, error)
	List(ctx context.Context) ([]domain.SupplierSummary, error)
}

type supplierRepository struct {
	pool *pgxpool.Pool
}

// NewSupplierRepository returns a Postgres-backed implementation.
func NewSupplierRepository(pool *pgxpool.Pool) SupplierRepository {
	return &supplierRepository{pool: pool}
}

func (r *supplierRepository) Create(ctx context.Context, supplier *domain.Supplier) error {
	const query = `
        INSERT INTO suppliers (name, legal_name, tax_id, age, phone, email, address,
                               website, service, duration, contract_ref, responsible, notes)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
        RETURNING id, created_at`

	err := r.pool.QueryRow(ctx, query,
		supplier.Name,
		supplier.LegalName,
		supplier.TaxID,
		supplier.Age,
		supplier.Phone,
		supplier.Email,
		supplier.Address,
		supplier.Website,
		supplier.Service,
		supplier.Duration,
		supplier.ContractRef,
		supplier.Responsible,
		supplier.Notes,
	).Scan(&supplier.ID, &supplier.CreatedAt)
	return translateDuplicate(err)
}

func (r *supplierRepository) ExistsByTaxID(ctx context.Context, taxID string) (bool, error) {
	const query = `SELECT id FROM suppliers WHERE tax_id=$1 LIMIT 1`

	var id int64
	err := r.pool.QueryRow(ctx, query, taxID).Scan(&id)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	return false, err
}

func (r *supplierRepository) List(ctx context.Context) ([]domain.SupplierSummary, error) {
	const query = `
        SELECT id, name, tax_id, email, phone, service
        FROM suppliers ORDER BY id DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	summaries := make([]domain.SupplierSummary, 0)
	for rows.Next() {
		var s domain.SupplierSummary
		if err := rows.Scan(&s.ID, &s.Name, &s.TaxID, &s.Email, &s.Phone, &s.Service); err != nil {
			return nil, err
		}
		summaries = append(summaries, s)
	}
	return summaries, rows.Err()
}
