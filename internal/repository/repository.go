package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

const defaultConnectTimeout = 5 * time.Second

// NewPool creates the PostgreSQL pool shared by every repository and
// verifies it with a ping bounded by connectTimeout.
func NewPool(ctx context.Context, connString string, connectTimeout time.Duration) (*pgxpool.Pool, error) {
	if connectTimeout <= 0 {
		connectTimeout = defaultConnectTimeout
	}
	cfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, err
	}
	cfg.ConnConfig.ConnectTimeout = connectTimeout
	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}

	pingCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, translate(err)
	}
	return pool, nil
}
