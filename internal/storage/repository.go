package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// Repository is a sqlite-backed byte cache for stream thumbnails.
type Repository struct {
	db    *sql.DB
	nowFn func() time.Time
}

func NewRepository(path string) (*Repository, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	db.SetMaxOpenConns(1)
	return &Repository{db: db, nowFn: time.Now}, nil
}

func (r *Repository) Close() error {
	if r == nil || r.db == nil {
		return nil
	}
	return r.db.Close()
}

func (r *Repository) Init(ctx context.Context) error {
	const schema = `
CREATE TABLE IF NOT EXISTS thumbnails (
  stream_id TEXT PRIMARY KEY,
  data BLOB NOT NULL,
  fetched_at TEXT NOT NULL
);
`
	_, err := r.db.ExecContext(ctx, schema)
	if err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}

// CheckWritable performs a throwaway write so that a read-only cache path
// fails at startup instead of on the first thumbnail.
func (r *Repository) CheckWritable(ctx context.Context) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS write_probe (id INTEGER)`); err != nil {
		return fmt.Errorf("write probe: %w", err)
	}
	return nil
}

func (r *Repository) SaveThumbnail(ctx context.Context, streamID string, data []byte) error {
	_, err := r.db.ExecContext(ctx, `
INSERT INTO thumbnails (stream_id, data, fetched_at)
VALUES (?, ?, ?)
ON CONFLICT(stream_id) DO UPDATE SET
  data=excluded.data,
  fetched_at=excluded.fetched_at
`, streamID, data, r.nowFn().UTC().Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("save thumbnail %s: %w", streamID, err)
	}
	return nil
}

// LoadThumbnail returns the cached bytes for streamID. The boolean is false
// when nothing is cached or the entry is older than maxAge (zero disables
// expiry).
func (r *Repository) LoadThumbnail(ctx context.Context, streamID string, maxAge time.Duration) ([]byte, bool, error) {
	var data []byte
	var fetchedAt string
	err := r.db.QueryRowContext(ctx, `
SELECT data, fetched_at
FROM thumbnails
WHERE stream_id = ?
`, streamID).Scan(&data, &fetchedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("query thumbnail %s: %w", streamID, err)
	}

	if maxAge > 0 {
		at, err := time.Parse(time.RFC3339Nano, fetchedAt)
		if err != nil {
			return nil, false, fmt.Errorf("parse thumbnail fetched_at %q: %w", fetchedAt, err)
		}
		if r.nowFn().Sub(at) > maxAge {
			return nil, false, nil
		}
	}
	return data, true, nil
}

// PruneThumbnails deletes entries fetched before the cutoff and returns the
// number of removed rows.
func (r *Repository) PruneThumbnails(ctx context.Context, olderThan time.Duration) (int64, error) {
	cutoff := r.nowFn().Add(-olderThan).UTC().Format(time.RFC3339Nano)
	res, err := r.db.ExecContext(ctx, `DELETE FROM thumbnails WHERE fetched_at < ?`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("prune thumbnails: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("prune thumbnails: %w", err)
	}
	return n, nil
}
