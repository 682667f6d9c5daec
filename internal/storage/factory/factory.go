package factory

import (
	"context"
	"fmt"

	"github.com/nikitaapatil/howtobangalore/internal/domain"
	"github.com/nikitaapatil/howtobangalore/internal/storage"
	"github.com/nikitaapatil/howtobangalore/internal/storage/api"
	"github.com/nikitaapatil/howtobangalore/internal/storage/bolt"
	"github.com/nikitaapatil/howtobangalore/internal/storage/es"
	"github.com/nikitaapatil/howtobangalore/internal/storage/file"
	"github.com/nikitaapatil/howtobangalore/internal/storage/in_mem"
	"github.com/nikitaapatil/howtobangalore/internal/storage/pg"
	"github.com/nikitaapatil/howtobangalore/pkg/server"
)

// Backend bundles what a command needs from one storage type.
type Backend struct {
	Reader storage.Reader
	Storer storage.Storer
	Health server.HealthChecker
	close  func()
}

func (b *Backend) Close() {
	if b.close != nil {
		b.close()
	}
}

// Open connects to the configured backend. Storer is nil for read-only
// types. Seed only applies to in_mem.
func Open(ctx context.Context, cfg *StorageConfig, seed ...domain.Article) (*Backend, error) {
	switch cfg.Type {
	case storage.API:
		client, err := api.NewClient(*cfg.API)
		if err != nil {
			return nil, fmt.Errorf("failed to create article API client: %w", err)
		}
		return &Backend{Reader: client, Health: client}, nil

	case storage.File:
		reader, err := file.NewReader(cfg.CatalogPath)
		if err != nil {
			return nil, fmt.Errorf("failed to create catalog file reader: %w", err)
		}
		return &Backend{Reader: reader, Health: reader}, nil

	case storage.PG:
		pool, err := pg.NewConnectionPool(ctx, *cfg.Pg)
		if err != nil {
			return nil, fmt.Errorf("failed to create PostgreSQL connection pool: %w", err)
		}
		reader, err := pg.NewReader(pool)
		if err != nil {
			pool.Close()
			return nil, err
		}
		storer, err := pg.NewStorer(pool)
		if err != nil {
			pool.Close()
			return nil, err
		}
		return &Backend{
			Reader: reader,
			Storer: storer,
			Health: pool,
			close:  pool.Close,
		}, nil

	case storage.ES:
		reader, err := es.NewReader(*cfg.Es)
		if err != nil {
			return nil, err
		}
		storer, err := es.NewStorer(ctx, *cfg.Es)
		if err != nil {
			return nil, err
		}
		health, err := es.NewHealthChecker(*cfg.Es)
		if err != nil {
			return nil, err
		}
		return &Backend{Reader: reader, Storer: storer, Health: health}, nil

	case storage.Bolt:
		store, err := bolt.Open(*cfg.Bolt)
		if err != nil {
			return nil, err
		}
		return &Backend{
			Reader: store,
			Storer: store,
			Health: store,
			close:  func() { _ = store.Close() },
		}, nil

	case storage.InMem:
		store := in_mem.NewStore(seed...)
		return &Backend{Reader: store, Storer: store, Health: server.Static(true)}, nil

	default:
		return nil, fmt.Errorf(string(storage.ErrUnsupportedStorer), cfg.Type)
	}
}
