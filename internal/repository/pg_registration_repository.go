package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/qlf-seminar/backend/internal/model"
)

// PgRegistrationRepository is the PostgreSQL implementation of RegistrationRepository.
// Email uniqueness is enforced by the registrations_email_key index.
type PgRegistrationRepository struct {
	pool *pgxpool.Pool
}

// NewPgRegistrationRepository creates a PgRegistrationRepository backed by the given pool.
func NewPgRegistrationRepository(pool *pgxpool.Pool) *PgRegistrationRepository {
	return &PgRegistrationRepository{pool: pool}
}

var _ RegistrationRepository = (*PgRegistrationRepository)(nil)

const registrationSelectCols = `id, full_name, email, phone, COALESCE(institution, ''),
	address, city, state, zip_code, created_at`

func scanRegistration(scan func(...any) error) (*model.Registration, error) {
	r := &model.Registration{}
	return r, scan(
		&r.ID, &r.FullName, &r.Email, &r.Phone, &r.Institution,
		&r.Address, &r.City, &r.State, &r.ZipCode, &r.CreatedAt,
	)
}

// Create inserts reg and fills ID and CreatedAt from the RETURNING clause.
// A concurrent insert of the same email surfaces as ErrDuplicate.
func (r *PgRegistrationRepository) Create(ctx context.Context, reg *model.Registration) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO registrations
		 (full_name, email, phone, institution, address, city, state, zip_code)
		 VALUES ($1, $2, $3, NULLIF($4, ''), $5, $6, $7, $8)
		 RETURNING id, created_at`,
		reg.FullName, reg.Email, reg.Phone, reg.Institution,
		reg.Address, reg.City, reg.State, reg.ZipCode,
	).Scan(&reg.ID, &reg.CreatedAt)
	return translate(err)
}

func (r *PgRegistrationRepository) FindByEmail(ctx context.Context, email string) (*model.Registration, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+registrationSelectCols+` FROM registrations WHERE email = $1`, email)
	reg, err := scanRegistration(row.Scan)
	if err != nil {
		return nil, translate(err)
	}
	return reg, nil
}

func (r *PgRegistrationRepository) List(ctx context.Context, limit int) ([]*model.Registration, error) {
	query := `SELECT ` + registrationSelectCols + ` FROM registrations ORDER BY created_at DESC`
	var args []any
	if limit > 0 {
		query += ` LIMIT $1`
		args = append(args, limit)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, translate(err)
	}
	defer rows.Close()

	var list []*model.Registration
	for rows.Next() {
		reg, err := scanRegistration(rows.Scan)
		if err != nil {
			return nil, translate(err)
		}
		list = append(list, reg)
	}
	return list, translate(rows.Err())
}

func (r *PgRegistrationRepository) Count(ctx context.Context) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM registrations`).Scan(&n)
	return n, translate(err)
}
