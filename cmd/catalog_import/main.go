package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/nikitaapatil/howtobangalore/internal/storage/factory"
	"github.com/spf13/cobra"
)

var (
	bulkSize int
	dryRun   bool
	replace  bool
)

var rootCmd = &cobra.Command{
	Use:   "catalog_import <catalog-file>",
	Short: "Import a How to Bangalore catalog into article storage",
	Long: `Reads a nested or flat catalog file (JSON or YAML), validates it against
the catalog schema, normalizes every post and saves the articles, in catalog
order, to the storage selected by STORAGE_TYPE.`,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := NewAppConfig().Load(dryRun)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("bulk-size") {
			cfg.BulkSize = bulkSize
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		backend, err := factory.Open(ctx, cfg.StorageConfig)
		if err != nil {
			return fmt.Errorf("failed to open storage %s: %w", cfg.Type, err)
		}
		defer backend.Close()

		stats, err := runImport(ctx, importOptions{
			path:     args[0],
			bulkSize: cfg.BulkSize,
			replace:  replace,
		}, backend.Storer)
		if err != nil {
			return err
		}

		slog.Info("Import finished",
			"storage", cfg.Type,
			"dry_run", dryRun,
			"saved", stats.Saved,
			"batches", stats.Batches,
			"duration", stats.Duration,
		)
		return nil
	},
}

func init() {
	rootCmd.Flags().IntVar(&bulkSize, "bulk-size", defaultBulkSize, "Articles per storage batch")
	rootCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Validate and normalize into memory without touching storage")
	rootCmd.Flags().BoolVar(&replace, "replace", false, "Clear the storage before importing")
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		slog.Error("Catalog import failed", "error", err)
		os.Exit(1)
	}
}
