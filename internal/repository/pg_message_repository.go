package repository

import (
	"context"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/qlf-seminar/backend/internal/model"
)

// PgMessageRepository is the PostgreSQL implementation of MessageRepository.
type PgMessageRepository struct {
	pool *pgxpool.Pool
}

// NewPgMessageRepository creates a PgMessageRepository backed by the given pool.
func NewPgMessageRepository(pool *pgxpool.Pool) *PgMessageRepository {
	return &PgMessageRepository{pool: pool}
}

// Ensure PgMessageRepository implements MessageRepository at compile time.
var _ MessageRepository = (*PgMessageRepository)(nil)

const messageSelectCols = `id, name, email, message, read, reply, replied_at, created_at, updated_at`

func scanMessage(scan func(...any) error) (*model.Message, error) {
	m := &model.Message{}
	return m, scan(
		&m.ID, &m.Name, &m.Email, &m.Message, &m.Read,
		&m.Reply, &m.RepliedAt, &m.CreatedAt, &m.UpdatedAt,
	)
}

// Save inserts a new messages row and populates msg.ID and timestamps
// from the database RETURNING clause. read/reply/replied_at take the column defaults.
func (r *PgMessageRepository) Save(ctx context.Context, msg *model.Message) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO messages (name, email, message)
		 VALUES ($1, $2, $3)
		 RETURNING `+messageSelectCols,
		msg.Name, msg.Email, msg.Message,
	).Scan(
		&msg.ID, &msg.Name, &msg.Email, &msg.Message, &msg.Read,
		&msg.Reply, &msg.RepliedAt, &msg.CreatedAt, &msg.UpdatedAt,
	)
	return translate(err)
}

// List returns messages newest first, optionally filtered by read state.
func (r *PgMessageRepository) List(ctx context.Context, opts model.MessageListOptions) ([]*model.Message, error) {
	where := ""
	switch strings.TrimSpace(opts.Status) {
	case "read":
		where = "WHERE read = TRUE "
	case "unread":
		where = "WHERE read = FALSE "
	}

	rows, err := r.pool.Query(ctx,
		`SELECT `+messageSelectCols+` FROM messages `+where+`ORDER BY created_at DESC`)
	if err != nil {
		return nil, translate(err)
	}
	defer rows.Close()

	var messages []*model.Message
	for rows.Next() {
		m, err := scanMessage(rows.Scan)
		if err != nil {
			return nil, translate(err)
		}
		messages = append(messages, m)
	}
	return messages, translate(rows.Err())
}

func (r *PgMessageRepository) GetByID(ctx context.Context, id string) (*model.Message, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+messageSelectCols+` FROM messages WHERE id = $1`, id)
	m, err := scanMessage(row.Scan)
	if err != nil {
		return nil, translate(err)
	}
	return m, nil
}

// SetRead stores the read flag and returns the updated message.
func (r *PgMessageRepository) SetRead(ctx context.Context, id string, read bool) (*model.Message, error) {
	row := r.pool.QueryRow(ctx,
		`UPDATE messages SET read = $2, updated_at = NOW()
		 WHERE id = $1
		 RETURNING `+messageSelectCols,
		id, read)
	m, err := scanMessage(row.Scan)
	if err != nil {
		return nil, translate(err)
	}
	return m, nil
}

// Reply stores the reply text, stamps replied_at and marks the message read.
func (r *PgMessageRepository) Reply(ctx context.Context, id, reply string) (*model.Message, error) {
	row := r.pool.QueryRow(ctx,
		`UPDATE messages SET reply = $2, replied_at = NOW(), read = TRUE, updated_at = NOW()
		 WHERE id = $1
		 RETURNING `+messageSelectCols,
		id, reply)
	m, err := scanMessage(row.Scan)
	if err != nil {
		return nil, translate(err)
	}
	return m, nil
}

func (r *PgMessageRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM messages WHERE id = $1`, id)
	if err != nil {
		return translate(err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PgMessageRepository) Count(ctx context.Context) (total, unread int, err error) {
	err = r.pool.QueryRow(ctx,
		`SELECT COUNT(*), COUNT(*) FILTER (WHERE NOT read) FROM messages`,
	).Scan(&total, &unread)
	return total, unread, translate(err)
}
