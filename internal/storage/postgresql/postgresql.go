package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v4/pgxpool"
)

type Storage struct {
	db *pgxpool.Pool
}

// New opens a bounded connection pool against dsn. The pool is the only
// shared resource in the process; every repository call checks a connection
// out for the duration of that single call.
func New(ctx context.Context, dsn string) (*Storage, error) {
	const op = "storage.postgresql.New"

	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	db, err := pgxpool.ConnectConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Storage{db: db}, nil
}

func (s *Storage) Pool() *pgxpool.Pool {
	return s.db
}

func (s *Storage) Ping(ctx context.Context) error {
	return s.db.Ping(ctx)
}

func (s *Storage) Stop() {
	s.db.Close()
}
