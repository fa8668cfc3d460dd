package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		{"journal_mode", "wal"},
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestMigrationCreatesTables(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	for _, table := range []string{"kv", "kv_history", "global_sequence"} {
		var name string
		err := db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		if err != nil {
			t.Fatalf("query sqlite_master for %s: %v", table, err)
		}
		if name != table {
			t.Errorf("table name = %q, want %q", name, table)
		}
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := s.seq.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	// Should be monotonically increasing starting from 1.
	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}

func TestSQLiteKV_GetSetDelete(t *testing.T) {
	kv := openTestStore(t).KV()
	ctx := context.Background()

	got, err := kv.Get(ctx, "lastDay")
	require.NoError(t, err)
	assert.Empty(t, got, "absent key should read as empty string")

	require.NoError(t, kv.Set(ctx, "lastDay", "17"))
	got, err = kv.Get(ctx, "lastDay")
	require.NoError(t, err)
	assert.Equal(t, "17", got)

	require.NoError(t, kv.Set(ctx, "lastDay", "18"))
	got, err = kv.Get(ctx, "lastDay")
	require.NoError(t, err)
	assert.Equal(t, "18", got)

	require.NoError(t, kv.Delete(ctx, "lastDay"))
	got, err = kv.Get(ctx, "lastDay")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSQLiteKV_History(t *testing.T) {
	kv := openTestStore(t).KV()
	base := time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC)
	tick := 0
	kv.now = func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Minute)
	}
	ctx := context.Background()

	require.NoError(t, kv.Set(ctx, "legendaryGachaSpecies", "150"))
	require.NoError(t, kv.Set(ctx, "lastDay", "17"))
	require.NoError(t, kv.Set(ctx, "legendaryGachaSpecies", "249"))
	require.NoError(t, kv.Delete(ctx, "legendaryGachaSpecies"))

	revs, err := kv.History(ctx, "legendaryGachaSpecies", 0)
	require.NoError(t, err)
	require.Len(t, revs, 3)

	assert.True(t, revs[0].Deleted)
	assert.Equal(t, "249", revs[1].Value)
	assert.Equal(t, "150", revs[2].Value)
	assert.Greater(t, revs[0].Sequence, revs[1].Sequence)
	assert.Equal(t, base.Add(time.Minute).UnixMilli(), revs[2].WrittenAt.UnixMilli())

	limited, err := kv.History(ctx, "legendaryGachaSpecies", 1)
	require.NoError(t, err)
	require.Len(t, limited, 1)
	assert.Equal(t, revs[0].Sequence, limited[0].Sequence)
}

func TestSQLiteKV_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "persist.db")
	ctx := context.Background()

	s, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s.KV().Set(ctx, "legendaryGachaSpecies", "384"))
	require.NoError(t, s.Close())

	s, err = Open(path)
	require.NoError(t, err)
	defer s.Close()

	got, err := s.KV().Get(ctx, "legendaryGachaSpecies")
	require.NoError(t, err)
	assert.Equal(t, "384", got)
}

func TestDefaultDBPath_Env(t *testing.T) {
	want := filepath.Join(t.TempDir(), "nested", "hatchery.db")
	t.Setenv("HATCHERY_DB", want)

	got, err := DefaultDBPath()
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.DirExists(t, filepath.Dir(want))
}

func TestDefaultDBPath_XDG(t *testing.T) {
	dataHome := t.TempDir()
	t.Setenv("HATCHERY_DB", "")
	t.Setenv("XDG_DATA_HOME", dataHome)

	got, err := DefaultDBPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dataHome, "hatchery", "hatchery.db"), got)
}
