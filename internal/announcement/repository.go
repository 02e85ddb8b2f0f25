package announcement

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository provê acesso à tabela announcements.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository cria instância do repositório.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// Insert grava um novo aviso e devolve a linha completa.
func (r *Repository) Insert(ctx context.Context, input CreateInput) (*Announcement, error) {
	const query = `
        INSERT INTO announcements (title, details, type, scheduled_date, author_name)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, title, details, type, scheduled_date, author_name, created_at
    `

	row := r.pool.QueryRow(ctx, query,
		input.Title,
		input.Details,
		input.Type,
		input.ScheduledDate,
		input.AuthorName,
	)
	return scanAnnouncement(row)
}

// List devolve todos os avisos, mais recentes primeiro.
func (r *Repository) List(ctx context.Context) ([]Announcement, error) {
	const query = `
        SELECT id, title, details, type, scheduled_date, author_name, created_at
        FROM announcements
        ORDER BY created_at DESC
    `

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []Announcement
	for rows.Next() {
		item, err := scanAnnouncement(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *item)
	}

	if rows.Err() != nil {
		return nil, rows.Err()
	}

	return items, nil
}

// Delete remove o aviso. Id inexistente é sucesso silencioso: o
// DELETE simplesmente não afeta linha nenhuma.
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM announcements WHERE id = $1`, id)
	return err
}

func scanAnnouncement(row pgx.Row) (*Announcement, error) {
	var a Announcement
	if err := row.Scan(&a.ID, &a.Title, &a.Details, &a.Type, &a.ScheduledDate, &a.AuthorName, &a.CreatedAt); err != nil {
		return nil, err
	}
	return &a, nil
}
