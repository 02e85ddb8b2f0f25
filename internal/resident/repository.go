package resident

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tibungco/portal/internal/db"
)

const uniqueViolation = "23505"

// Repository provê acesso à tabela residents.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository cria instância do repositório.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// Create insere um novo morador. A checagem prévia de e-mail dentro da
// transação é só o caminho rápido para a mensagem amigável; quem garante
// a unicidade sob concorrência é a constraint UNIQUE da coluna.
func (r *Repository) Create(ctx context.Context, params CreateParams) (*Resident, error) {
	var created *Resident

	err := db.WithTx(ctx, r.pool, func(ctx context.Context, tx pgx.Tx) error {
		var existing string
		err := tx.QueryRow(ctx, `SELECT id FROM residents WHERE email = $1`, params.Email).Scan(&existing)
		if err == nil {
			return ErrEmailTaken
		}
		if !errors.Is(err, pgx.ErrNoRows) {
			return err
		}

		const insert = `
            INSERT INTO residents (full_name, email, phone, password_hash)
            VALUES ($1, $2, $3, $4)
            RETURNING id, full_name, email, phone, created_at
        `
		row := tx.QueryRow(ctx, insert, params.FullName, params.Email, params.Phone, params.PasswordHash)
		created, err = scanResident(row)
		return err
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	return created, nil
}

// FindByEmail busca por correspondência exata de e-mail, incluindo o
// hash de senha para verificação no login.
func (r *Repository) FindByEmail(ctx context.Context, email string) (*Resident, error) {
	const query = `
        SELECT id, full_name, email, phone, password_hash, created_at
        FROM residents
        WHERE email = $1
    `

	var res Resident
	err := r.pool.QueryRow(ctx, query, email).Scan(
		&res.ID, &res.FullName, &res.Email, &res.Phone, &res.PasswordHash, &res.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &res, nil
}

// Count devolve o total de moradores cadastrados.
func (r *Repository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM residents`).Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}

func scanResident(row pgx.Row) (*Resident, error) {
	var res Resident
	if err := row.Scan(&res.ID, &res.FullName, &res.Email, &res.Phone, &res.CreatedAt); err != nil {
		return nil, err
	}
	return &res, nil
}
