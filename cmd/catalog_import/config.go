package main

import (
	"log/slog"
	"os"

	"github.com/nikitaapatil/howtobangalore/internal/storage"
	"github.com/nikitaapatil/howtobangalore/internal/storage/factory"
	"github.com/nikitaapatil/howtobangalore/pkg/config/env"
)

const (
	defaultEnvPath  = "cmd/catalog_import/.env"
	defaultBulkSize = 500
)

func NewAppConfig() *AppConfig {
	return &AppConfig{
		ENV: os.Getenv("ENV"),
	}
}

type AppConfig struct {
	ENV string
}

type ImportConfig struct {
	BulkSize int
	*factory.StorageConfig
}

// Load reads the import target. A dry run never touches a real backend, so
// it skips the storage settings entirely.
func (as *AppConfig) Load(dryRun bool) (*ImportConfig, error) {
	if err := env.LoadDotEnv(as.ENV, defaultEnvPath); err != nil {
		slog.Info("Skipping .env environment variables...", "error", err)
	}

	bulkSize, err := env.Int("BULK_SIZE", defaultBulkSize)
	if err != nil {
		return nil, err
	}

	if dryRun {
		return &ImportConfig{
			BulkSize:      bulkSize,
			StorageConfig: &factory.StorageConfig{Type: storage.InMem},
		}, nil
	}

	storageCfg, err := factory.LoadEnv("STORAGE_TYPE", storage.StorerTypes())
	if err != nil {
		slog.Error("Failed to load storage configuration from environment", "error", err)
		return nil, err
	}

	return &ImportConfig{
		BulkSize:      bulkSize,
		StorageConfig: storageCfg,
	}, nil
}
