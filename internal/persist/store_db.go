package persist

import (
	"context"
	"database/sql"
	"time"
)

const (
	pingTimeout  = 1 * time.Second
	queryTimeout = 3 * time.Second
)

// PostgresStore keeps slots in a single table:
//
//	CREATE TABLE slots (
//	    key        text PRIMARY KEY,
//	    doc        bytea NOT NULL,
//	    updated_at timestamptz NOT NULL DEFAULT now()
//	);
//
// Concurrent writers of the same key follow last-writer-wins.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Ping(ctx context.Context) error {
	return withTimeout(ctx, pingTimeout, func(ctx context.Context) error {
		return s.db.PingContext(ctx)
	})
}

func (s *PostgresStore) Load(ctx context.Context, key string) ([]byte, bool, error) {
	var doc []byte

	err := withTimeout(ctx, queryTimeout, func(ctx context.Context) error {
		return s.db.QueryRowContext(ctx, `
			SELECT doc
			FROM slots
			WHERE key = $1
		`, key).Scan(&doc)
	})

	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return doc, true, nil
}

func (s *PostgresStore) Save(ctx context.Context, key string, doc []byte) error {
	return withTimeout(ctx, queryTimeout, func(ctx context.Context) error {
		_, err := s.db.ExecContext(ctx, `
			INSERT INTO slots (key, doc, updated_at)
			VALUES ($1, $2, now())
			ON CONFLICT (key) DO UPDATE SET doc = EXCLUDED.doc, updated_at = now()
		`, key, doc)
		return err
	})
}

func (s *PostgresStore) Delete(ctx context.Context, key string) error {
	return withTimeout(ctx, queryTimeout, func(ctx context.Context) error {
		_, err := s.db.ExecContext(ctx, `
			DELETE FROM slots
			WHERE key = $1
		`, key)
		return err
	})
}

func withTimeout(parent context.Context, d time.Duration, fn func(ctx context.Context) error) error {
	ctx, cancel := context.WithTimeout(parent, d)
	defer cancel()
	return fn(ctx)
}
