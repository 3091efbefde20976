package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/client-registry/internal/domain"
)

// uniqueViolation is the Postgres SQLSTATE for unique constraint violations.
const uniqueViolation = "23505"

// ClientRepository defines persistence access for client records.
type ClientRepository interface {
	Create(ctx context.Context, client *domain.Client) error
	GetByEmail(ctx context.Context, email string) (*domain.Client, error)
	ExistsByEmailOrNationalID(ctx context.Context, email, nationalID string) (bool, error)
	List(ctx context.Context) ([]domain.ClientSummary, error)
}

type clientRepository struct {
	pool *pgxpool.Pool
}

// NewClientRepository returns a Postgres-backed implementation.
func NewClientRepository(pool *pgxpool.Pool) ClientRepository {
	return &clientRepository{pool: pool}
}

// Create inserts the record. The unique indexes on email and national_id are
// the authoritative duplicate guard; a violation surfaces as
// domain.ErrDuplicateKey rather than a raw storage error.
func (r *clientRepository) Create(ctx context.Context, client *domain.Client) error {
	const query = `
        INSERT INTO clients (name, age, email, phone, address, gender, national_id, password_hash)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING id, created_at`

	err := r.pool.QueryRow(ctx, query,
		client.Name,
		client.Age,
		client.Email,
		client.Phone,
		client.Address,
		client.Gender,
		client.NationalID,
		client.PasswordHash,
	).Scan(&client.ID, &client.CreatedAt)
	return translateDuplicate(err)
}

func (r *clientRepository) GetByEmail(ctx context.Context, email string) (*domain.Client, error) {
	const query = `
        SELECT id, name, age, email, phone, address, gender, national_id, password_hash, created_at
        FROM clients WHERE email=$1`

	var client domain.Client
	if err := r.pool.QueryRow(ctx, query, email).Scan(
		&client.ID,
		&client.Name,
		&client.Age,
		&client.Email,
		&client.Phone,
		&client.Address,
		&client.Gender,
		&client.NationalID,
		&client.PasswordHash,
		&client.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &client, nil
}

func (r *clientRepository) ExistsByEmailOrNationalID(ctx context.Context, email, nationalID string) (bool, error) {
	const query = `SELECT id FROM clients WHERE email=$1 OR national_id=$2 LIMIT 1`

	var id int64
	err := r.pool.QueryRow(ctx, query, email, nationalID).Scan(&id)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	return false, err
}

// List returns client summaries most-recently-created first. The password
// hash is never selected.
func (r *clientRepository) List(ctx context.Context) ([]domain.ClientSummary, error) {
	const query = `
        SELECT id, name, email, phone, national_id, gender
        FROM clients ORDER BY id DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	summaries := make([]domain.ClientSummary, 0)
	for rows.Next() {
		var s domain.ClientSummary
		if err := rows.Scan(&s.ID, &s.Name, &s.Email, &s.Phone, &s.NationalID, &s.Gender); err != nil {
			return nil, err
		}
		summaries = append(summaries, s)
	}
	return summaries, rows.Err()
}

func translateDuplicate(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return domain.ErrDuplicateKey
	}
	return err
}
