package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/qlf-seminar/backend/internal/model"
)

type pgContestantRepository struct {
	pool *pgxpool.Pool
}

// NewPgContestantRepository returns a PostgreSQL-backed ContestantRepository.
func NewPgContestantRepository(pool *pgxpool.Pool) ContestantRepository {
	return &pgContestantRepository{pool: pool}
}

const contestantSelectCols = `id, name, institution, research, COALESCE(image_url, ''), created_at, updated_at`

func scanContestant(scan func(...any) error) (*model.Contestant, error) {
	c := &model.Contestant{}
	return c, scan(&c.ID, &c.Name, &c.Institution, &c.Research, &c.ImageURL, &c.CreatedAt, &c.UpdatedAt)
}

func (r *pgContestantRepository) Create(ctx context.Context, c *model.Contestant) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO contestants (name, institution, research, image_url)
		 VALUES ($1, $2, $3, NULLIF($4, ''))
		 RETURNING id, created_at, updated_at`,
		c.Name, c.Institution, c.Research, c.ImageURL,
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	return translate(err)
}

func (r *pgContestantRepository) Update(ctx context.Context, c *model.Contestant) error {
	err := r.pool.QueryRow(ctx,
		`UPDATE contestants
		 SET name = $2, institution = $3, research = $4, image_url = NULLIF($5, ''), updated_at = NOW()
		 WHERE id = $1
		 RETURNING created_at, updated_at`,
		c.ID, c.Name, c.Institution, c.Research, c.ImageURL,
	).Scan(&c.CreatedAt, &c.UpdatedAt)
	return translate(err)
}

func (r *pgContestantRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM contestants WHERE id = $1`, id)
	if err != nil {
		return translate(err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgContestantRepository) List(ctx context.Context) ([]*model.Contestant, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+contestantSelectCols+` FROM contestants ORDER BY name ASC`)
	if err != nil {
		return nil, translate(err)
	}
	defer rows.Close()

	var list []*model.Contestant
	for rows.Next() {
		c, err := scanContestant(rows.Scan)
		if err != nil {
			return nil, translate(err)
		}
		list = append(list, c)
	}
	return list, translate(rows.Err())
}

func (r *pgContestantRepository) Count(ctx context.Context) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM contestants`).Scan(&n)
	return n, translate(err)
}
