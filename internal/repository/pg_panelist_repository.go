package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/qlf-seminar/backend/internal/model"
)

type pgPanelistRepository struct {
	pool *pgxpool.Pool
}

// NewPgPanelistRepository returns a PostgreSQL-backed PanelistRepository.
func NewPgPanelistRepository(pool *pgxpool.Pool) PanelistRepository {
	return &pgPanelistRepository{pool: pool}
}

const panelistSelectCols = `id, title, name, COALESCE(description, ''),
	COALESCE(image_url, ''), COALESCE(image_key, ''), created_at`

func scanPanelist(scan func(...any) error) (*model.Panelist, error) {
	p := &model.Panelist{}
	return p, scan(&p.ID, &p.Title, &p.Name, &p.Description, &p.ImageURL, &p.ImageKey, &p.CreatedAt)
}

func (r *pgPanelistRepository) Create(ctx context.Context, p *model.Panelist) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO panelists (title, name, description, image_url, image_key)
		 VALUES ($1, $2, NULLIF($3, ''), NULLIF($4, ''), NULLIF($5, ''))
		 RETURNING id, created_at`,
		p.Title, p.Name, p.Description, p.ImageURL, p.ImageKey,
	).Scan(&p.ID, &p.CreatedAt)
	return translate(err)
}

func (r *pgPanelistRepository) GetByID(ctx context.Context, id string) (*model.Panelist, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+panelistSelectCols+` FROM panelists WHERE id = $1`, id)
	p, err := scanPanelist(row.Scan)
	if err != nil {
		return nil, translate(err)
	}
	return p, nil
}

func (r *pgPanelistRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM panelists WHERE id = $1`, id)
	if err != nil {
		return translate(err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// List returns panelists in the order they were added; the moderator is
// conventionally created first.
func (r *pgPanelistRepository) List(ctx context.Context) ([]*model.Panelist, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+panelistSelectCols+` FROM panelists ORDER BY created_at ASC`)
	if err != nil {
		return nil, translate(err)
	}
	defer rows.Close()

	var list []*model.Panelist
	for rows.Next() {
		p, err := scanPanelist(rows.Scan)
		if err != nil {
			return nil, translate(err)
		}
		list = append(list, p)
	}
	return list, translate(rows.Err())
}

func (r *pgPanelistRepository) Count(ctx context.Context) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM panelists`).Scan(&n)
	return n, translate(err)
}
