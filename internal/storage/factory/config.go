package factory

import (
	"fmt"
	"log/slog"

	"github.com/nikitaapatil/howtobangalore/internal/storage"
	"github.com/nikitaapatil/howtobangalore/internal/storage/api"
	"github.com/nikitaapatil/howtobangalore/internal/storage/bolt"
	"github.com/nikitaapatil/howtobangalore/internal/storage/es"
	"github.com/nikitaapatil/howtobangalore/internal/storage/pg"
	"github.com/nikitaapatil/howtobangalore/pkg/config/env"
)

const defaultBoltPath = "./data/articles.db"

type StorageConfig struct {
	storage.Type
	API         *api.ClientConfig
	CatalogPath string
	Pg          *pg.PoolConfig
	Es          *es.ClientConfig
	Bolt        *bolt.Options
}

// LoadEnv reads the backend named by typeKey (SOURCE_TYPE for readers,
// STORAGE_TYPE for the importer) and its connection settings.
func LoadEnv(typeKey string, allowed []storage.Type) (*StorageConfig, error) {
	storageType := storage.Type(env.String(typeKey, ""))
	if storageType == "" {
		slog.Error("Storage type environment variable is not set", "key", typeKey)
		return nil, fmt.Errorf("%s environment variable is not set", typeKey)
	}
	if !isAllowed(allowed, storageType) {
		slog.Error("Invalid storage type environment variable value", "key", typeKey, "value", storageType)
		return nil, fmt.Errorf("invalid %s environment variable value: %s, expected one of %v", typeKey, storageType, allowed)
	}

	cfg := &StorageConfig{Type: storageType}

	switch storageType {
	case storage.API:
		timeout, err := env.Duration("API_TIMEOUT", 0)
		if err != nil {
			return nil, err
		}
		cfg.API = &api.ClientConfig{
			BaseURL: env.String("API_BASE_URL", ""),
			Timeout: timeout,
		}
		if cfg.API.BaseURL == "" {
			slog.Error("Article API base URL is not set")
			return nil, fmt.Errorf("API_BASE_URL is not set")
		}

	case storage.File:
		cfg.CatalogPath = env.String("CATALOG_PATH", "")
		if cfg.CatalogPath == "" {
			slog.Error("Catalog path is not set")
			return nil, fmt.Errorf("CATALOG_PATH is not set")
		}

	case storage.PG:
		maxConns, err := env.Int("PG_MAX_CONNS", 0)
		if err != nil {
			return nil, err
		}
		cfg.Pg = &pg.PoolConfig{
			ConnStr:  env.String("PG_CONNECTION_STRING", ""),
			MaxConns: int32(maxConns),
		}
		if cfg.Pg.ConnStr == "" {
			slog.Error("PostgreSQL connection string is not set")
			return nil, fmt.Errorf("PostgreSQL connection string is not set")
		}

	case storage.ES:
		cfg.Es = &es.ClientConfig{
			Addresses: env.List("ES_ADDRESSES"),
			IndexName: env.String("ES_INDEX_NAME", ""),
			Username:  env.String("ES_USERNAME", ""),
			Password:  env.String("ES_PASSWORD", ""),
		}
		if len(cfg.Es.Addresses) == 0 || cfg.Es.IndexName == "" {
			slog.Error("Elasticsearch configuration is incomplete", "addresses", cfg.Es.Addresses, "indexName", cfg.Es.IndexName)
			return nil, fmt.Errorf("elasticsearch configuration is incomplete: addresses or index name is missing")
		}

	case storage.Bolt:
		cfg.Bolt = &bolt.Options{Path: env.String("BOLT_PATH", defaultBoltPath)}
	}

	return cfg, nil
}

func isAllowed(allowed []storage.Type, t storage.Type) bool {
	for _, a := range allowed {
		if a == t {
			return true
		}
	}
	return false
}
