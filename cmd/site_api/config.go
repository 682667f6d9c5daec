package main

import (
	"log/slog"
	"os"

	"github.com/nikitaapatil/howtobangalore/internal/storage"
	"github.com/nikitaapatil/howtobangalore/internal/storage/factory"
	"github.com/nikitaapatil/howtobangalore/pkg/config/env"
)

const defaultEnvPath = "cmd/site_api/.env"

func NewAppConfig() *AppConfig {
	return &AppConfig{
		ENV: os.Getenv("ENV"),
	}
}

type AppConfig struct {
	ENV string
}

type SiteAPIConfig struct {
	LogLevel string
	*factory.StorageConfig
}

func (as *AppConfig) Load() (*SiteAPIConfig, error) {
	if err := env.LoadDotEnv(as.ENV, defaultEnvPath); err != nil {
		slog.Info("Skipping .env environment variables...", "error", err)
	}

	storageCfg, err := factory.LoadEnv("SOURCE_TYPE", storage.ReaderTypes())
	if err != nil {
		slog.Error("Failed to load article source configuration from environment", "error", err)
		return nil, err
	}

	return &SiteAPIConfig{
		LogLevel:      env.String("LOG_LEVEL", "info"),
		StorageConfig: storageCfg,
	}, nil
}
