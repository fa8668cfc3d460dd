package store

import (
	"context"
	"time"
)

// KV is a small string key-value store. Get returns an empty string for
// absent keys.
type KV interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// Revision is one recorded write to a key.
type Revision struct {
	Sequence  int64
	Key       string
	Value     string
	Deleted   bool
	WrittenAt time.Time
}

// HistoryKV is a KV that also keeps a write log.
type HistoryKV interface {
	KV
	// History returns the most recent writes to key, newest first.
	// A limit of 0 returns all of them.
	History(ctx context.Context, key string, limit int) ([]Revision, error)
}
