package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PGStore is a KV store backed by PostgreSQL, used by the server for
// cross-device draft persistence.
type PGStore struct {
	pool *pgxpool.Pool
}

// ConnectPG establishes a connection pool and ensures the backing table
// exists.
func ConnectPG(ctx context.Context, databaseURL string) (*PGStore, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	s := &PGStore{pool: pool}
	if err := s.ensureSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return s, nil
}

// Close closes the connection pool.
func (s *PGStore) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

func (s *PGStore) ensureSchema(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS profile_state (
			profile    TEXT NOT NULL,
			key        TEXT NOT NULL,
			value      TEXT NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			PRIMARY KEY (profile, key)
		)`)
	if err != nil {
		return fmt.Errorf("failed to create profile_state table: %w", err)
	}
	return nil
}

// Get returns the value for a key, or ErrNotFound.
func (s *PGStore) Get(ctx context.Context, profile, key string) (string, error) {
	var value string
	err := s.pool.QueryRow(ctx,
		`SELECT value FROM profile_state WHERE profile = $1 AND key = $2`,
		profile, key,
	).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to read profile state: %w", err)
	}
	return value, nil
}

// Put stores a value under a key, last writer wins.
func (s *PGStore) Put(ctx context.Context, profile, key, value string) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO profile_state (profile, key, value)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (profile, key) DO UPDATE SET value = $3, updated_at = NOW()`,
		profile, key, value,
	)
	if err != nil {
		return fmt.Errorf("failed to write profile state: %w", err)
	}
	return nil
}
