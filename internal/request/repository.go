package request

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository provê acesso à tabela document_requests.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository cria instância do repositório.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// Insert grava um novo pedido já com o status informado.
func (r *Repository) Insert(ctx context.Context, input SubmitInput, status Status) (*DocumentRequest, error) {
	const query = `
        INSERT INTO document_requests (resident_name, resident_email, document_type, purpose, status)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, resident_name, resident_email, document_type, purpose, status, created_at
    `

	row := r.pool.QueryRow(ctx, query,
		input.ResidentName,
		input.ResidentEmail,
		input.DocumentType,
		input.Purpose,
		status,
	)
	return scanRequest(row)
}

// ListAll devolve todos os pedidos, mais recentes primeiro.
func (r *Repository) ListAll(ctx context.Context) ([]DocumentRequest, error) {
	const query = `
        SELECT id, resident_name, resident_email, document_type, purpose, status, created_at
        FROM document_requests
        ORDER BY created_at DESC
    `
	return r.list(ctx, query)
}

// ListByEmail filtra por correspondência exata de e-mail, sem
// normalização, mais recentes primeiro.
func (r *Repository) ListByEmail(ctx context.Context, email string) ([]DocumentRequest, error) {
	const query = `
        SELECT id, resident_name, resident_email, document_type, purpose, status, created_at
        FROM document_requests
        WHERE resident_email = $1
        ORDER BY created_at DESC
    `
	return r.list(ctx, query, email)
}

// GetStatus devolve o status atual do pedido.
func (r *Repository) GetStatus(ctx context.Context, id uuid.UUID) (Status, error) {
	var status Status
	err := r.pool.QueryRow(ctx, `SELECT status FROM document_requests WHERE id = $1`, id).Scan(&status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", ErrNotFound
		}
		return "", err
	}
	return status, nil
}

// UpdateStatus grava o novo status do pedido.
func (r *Repository) UpdateStatus(ctx context.Context, id uuid.UUID, status Status) error {
	_, err := r.pool.Exec(ctx, `UPDATE document_requests SET status = $1 WHERE id = $2`, status, id)
	return err
}

func (r *Repository) list(ctx context.Context, query string, args ...any) ([]DocumentRequest, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []DocumentRequest
	for rows.Next() {
		req, err := scanRequest(rows)
		if err != nil {
			return nil, err
		}
		requests = append(requests, *req)
	}

	if rows.Err() != nil {
		return nil, rows.Err()
	}

	return requests, nil
}

func scanRequest(row pgx.Row) (*DocumentRequest, error) {
	var req DocumentRequest
	if err := row.Scan(&req.ID, &req.ResidentName, &req.ResidentEmail, &req.DocumentType, &req.Purpose, &req.Status, &req.CreatedAt); err != nil {
		return nil, err
	}
	return &req, nil
}
