// Package main How to Bangalore site API
// @title How to Bangalore API
// @version 1.0
// @description Article pages, search and table of contents for the How to Bangalore site
// @contact.name API Support
// @BasePath /
package main

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/labstack/echo/v4"
	_ "github.com/nikitaapatil/howtobangalore/docs"
	"github.com/nikitaapatil/howtobangalore/internal/articles"
	"github.com/nikitaapatil/howtobangalore/internal/resolver"
	"github.com/nikitaapatil/howtobangalore/internal/router"
	"github.com/nikitaapatil/howtobangalore/internal/server"
	"github.com/nikitaapatil/howtobangalore/internal/storage/factory"
	"github.com/nikitaapatil/howtobangalore/internal/view"
)

func main() {
	appSettings := NewAppConfig()
	cfg, err := appSettings.Load()
	if err != nil {
		slog.Error("Failed to load app configuration", "error", err)
		os.Exit(1)
	}
	slog.SetLogLoggerLevel(server.ParseLogLevel(cfg.LogLevel))

	sCfg, err := server.LoadConfig(defaultEnvPath)
	if err != nil {
		slog.Error("Failed to load server config", "error", err)
		os.Exit(1)
	}

	s := server.New(sCfg).
		SetupMiddlewares().
		SetupErrorHandler().
		SetupOpenApi("/swagger/*")

	backend, err := factory.Open(s.Context(), cfg.StorageConfig)
	if err != nil {
		slog.Error("Failed to open article source", "type", cfg.Type, "error", err)
		os.Exit(1)
	}
	defer backend.Close()

	s.SetupHealthChecks("/health", backend.Health)

	s.Echo.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, "How to Bangalore API is running")
	})

	adapter := articles.NewAdapter(backend.Reader, string(cfg.Type))
	pagesRouter := router.NewPagesRouter(s.Echo, view.NewPages(adapter), resolver.NewService(adapter))
	pagesRouter.Bind()

	go func() {
		<-s.ShutdownSignal()
		slog.Info("Shutdown started, cleaning up resources...")
	}()

	slog.Info("Serving articles", "source", cfg.Type)
	if err := s.Start(); err != nil {
		slog.Error("Failed to start server", "error", err)
		os.Exit(1)
	}
}
