// Package app wires configuration, storage and domain services together.
package app

import (
	"fmt"
	"io"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/abhisek/hatchery/internal/config"
	"github.com/abhisek/hatchery/internal/egg"
	"github.com/abhisek/hatchery/internal/i18n"
	"github.com/abhisek/hatchery/internal/legendary"
	"github.com/abhisek/hatchery/internal/rng"
	"github.com/abhisek/hatchery/internal/species"
	"github.com/abhisek/hatchery/internal/store"
)

// App holds the long-lived services used by commands.
type App struct {
	Config     config.Config
	Logger     *zap.Logger
	Catalog    *species.Catalog
	Engine     *rng.Engine
	KV         store.KV
	Selector   *legendary.Selector
	Translator *i18n.Translator
	Describer  *egg.Describer

	closers []io.Closer
}

// New builds an App from cfg. The caller owns logger and must Close the App.
func New(cfg config.Config, logger *zap.Logger) (*App, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}

	catalog, err := species.Default()
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	tr, err := i18n.New(cfg.Language)
	if err != nil {
		return nil, fmt.Errorf("load translations: %w", err)
	}

	a := &App{
		Config:     cfg,
		Logger:     logger,
		Catalog:    catalog,
		Engine:     rng.New(cfg.Seed),
		Translator: tr,
	}

	kv, err := a.openKV()
	if err != nil {
		return nil, err
	}
	a.KV = kv

	a.Selector = legendary.New(catalog, a.Engine, kv,
		legendary.WithLocation(loc),
		legendary.WithLogger(logger.Named("legendary")),
	)
	a.Describer = egg.NewDescriber(tr, a.Selector, catalog)
	return a, nil
}

func (a *App) openKV() (store.KV, error) {
	switch a.Config.Store.Backend {
	case config.BackendMemory:
		return &store.MemoryKV{}, nil
	case config.BackendRedis:
		client := redis.NewClient(&redis.Options{Addr: a.Config.Store.RedisAddr})
		kv := store.NewRedisKV(client, a.Config.Store.RedisPrefix)
		a.closers = append(a.closers, kv)
		return kv, nil
	default:
		path := a.Config.DBPath
		if path == "" {
			p, err := store.DefaultDBPath()
			if err != nil {
				return nil, fmt.Errorf("resolve DB path: %w", err)
			}
			path = p
		} else if err := store.EnsureDir(path); err != nil {
			return nil, fmt.Errorf("create DB dir: %w", err)
		}
		st, err := store.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open store: %w", err)
		}
		a.closers = append(a.closers, st)
		return st.KV(), nil
	}
}

// History returns the cache's write log when the backend keeps one.
func (a *App) History() (store.HistoryKV, bool) {
	h, ok := a.KV.(store.HistoryKV)
	return h, ok
}

// Close releases storage connections.
func (a *App) Close() error {
	var first error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i].Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}
