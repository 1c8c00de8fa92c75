package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("not found")

// BlobRepo stores opaque byte blobs under string keys.
type BlobRepo interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
}

// SQLiteBlobRepo implements BlobRepo using a SQLite database.
type SQLiteBlobRepo struct {
	db *sql.DB
}

// NewSQLiteBlobRepo creates a new SQLiteBlobRepo.
func NewSQLiteBlobRepo(db *sql.DB) *SQLiteBlobRepo {
	return &SQLiteBlobRepo{db: db}
}

func (r *SQLiteBlobRepo) Get(ctx context.Context, key string) ([]byte, error) {
	query := `SELECT value FROM blobs WHERE key = ?`
	var value []byte
	err := r.db.QueryRowContext(ctx, query, key).Scan(&value)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("blob %q: %w", key, ErrNotFound)
		}
		return nil, fmt.Errorf("reading blob %q: %w", key, err)
	}
	return value, nil
}

func (r *SQLiteBlobRepo) Put(ctx context.Context, key string, value []byte) error {
	query := `INSERT INTO blobs (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`
	_, err := r.db.ExecContext(ctx, query, key, value, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("writing blob %q: %w", key, err)
	}
	return nil
}
