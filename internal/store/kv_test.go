package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Every backend must agree on the KV contract.
func TestKVBackends(t *testing.T) {
	backends := map[string]func(t *testing.T) KV{
		"memory": func(t *testing.T) KV { return &MemoryKV{} },
		"sqlite": func(t *testing.T) KV {
			s, err := Open(filepath.Join(t.TempDir(), "kv.db"))
			require.NoError(t, err)
			t.Cleanup(func() { s.Close() })
			return s.KV()
		},
		"redis": func(t *testing.T) KV {
			mr := miniredis.RunT(t)
			kv := NewRedisKV(redis.NewClient(&redis.Options{Addr: mr.Addr()}), "")
			t.Cleanup(func() { kv.Close() })
			return kv
		},
	}

	for name, open := range backends {
		t.Run(name, func(t *testing.T) {
			kv := open(t)
			ctx := context.Background()

			got, err := kv.Get(ctx, "missing")
			require.NoError(t, err)
			assert.Equal(t, "", got)

			require.NoError(t, kv.Set(ctx, "k", "v1"))
			require.NoError(t, kv.Set(ctx, "k", "v2"))
			got, err = kv.Get(ctx, "k")
			require.NoError(t, err)
			assert.Equal(t, "v2", got)

			require.NoError(t, kv.Delete(ctx, "k"))
			require.NoError(t, kv.Delete(ctx, "never-set"))
			got, err = kv.Get(ctx, "k")
			require.NoError(t, err)
			assert.Equal(t, "", got)
		})
	}
}

func TestRedisKV_Prefix(t *testing.T) {
	mr := miniredis.RunT(t)
	kv := NewRedisKV(redis.NewClient(&redis.Options{Addr: mr.Addr()}), "pr")
	defer kv.Close()

	require.NoError(t, kv.Set(context.Background(), "lastDay", "3"))

	got, err := mr.Get("pr:lastDay")
	require.NoError(t, err)
	assert.Equal(t, "3", got)
}

func TestRedisKV_Unreachable(t *testing.T) {
	mr := miniredis.RunT(t)
	kv := NewRedisKV(redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1}), "")
	defer kv.Close()
	mr.Close()

	_, err := kv.Get(context.Background(), "k")
	assert.Error(t, err)
}

func TestNewMemoryKV_Preloaded(t *testing.T) {
	kv := NewMemoryKV(map[string]string{"lastDay": "9"})
	got, err := kv.Get(context.Background(), "lastDay")
	require.NoError(t, err)
	assert.Equal(t, "9", got)
}
