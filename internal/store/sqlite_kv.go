package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// SQLiteKV implements HistoryKV on the store's kv table.
type SQLiteKV struct {
	db  *sql.DB
	seq *sequenceCounter

	now func() time.Time
}

func (r *SQLiteKV) clock() time.Time {
	if r.now != nil {
		return r.now()
	}
	return time.Now()
}

func (r *SQLiteKV) Get(ctx context.Context, key string) (string, error) {
	var value string
	err := r.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("get %q: %w", key, err)
	}
	return value, nil
}

func (r *SQLiteKV) Set(ctx context.Context, key, value string) error {
	return r.write(ctx, key, value, false)
}

func (r *SQLiteKV) Delete(ctx context.Context, key string) error {
	return r.write(ctx, key, "", true)
}

func (r *SQLiteKV) write(ctx context.Context, key, value string, deleted bool) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	seqNum, err := r.seq.NextIn(ctx, tx)
	if err != nil {
		return err
	}

	now := r.clock().UnixMilli()
	if deleted {
		_, err = tx.ExecContext(ctx, `DELETE FROM kv WHERE key = ?`, key)
	} else {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO kv (key, value, updated_at) VALUES (?, ?, ?)
			 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
			key, value, now)
	}
	if err != nil {
		return fmt.Errorf("write %q: %w", key, err)
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO kv_history (sequence, key, value, deleted, written_at) VALUES (?, ?, ?, ?, ?)`,
		seqNum, key, value, deleted, now)
	if err != nil {
		return fmt.Errorf("record history for %q: %w", key, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

func (r *SQLiteKV) History(ctx context.Context, key string, limit int) ([]Revision, error) {
	query := `SELECT sequence, key, value, deleted, written_at FROM kv_history
		WHERE key = ? ORDER BY sequence DESC`
	args := []any{key}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}
	defer rows.Close()

	var revs []Revision
	for rows.Next() {
		var (
			rev       Revision
			writtenAt int64
		)
		if err := rows.Scan(&rev.Sequence, &rev.Key, &rev.Value, &rev.Deleted, &writtenAt); err != nil {
			return nil, fmt.Errorf("scan history: %w", err)
		}
		rev.WrittenAt = time.UnixMilli(writtenAt)
		revs = append(revs, rev)
	}
	return revs, rows.Err()
}

var _ HistoryKV = (*SQLiteKV)(nil)
