package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/nikitaapatil/howtobangalore/internal/catalog"
	"github.com/nikitaapatil/howtobangalore/internal/domain"
	"github.com/nikitaapatil/howtobangalore/internal/processor"
	"github.com/nikitaapatil/howtobangalore/internal/storage"
)

type importOptions struct {
	path     string
	bulkSize int
	replace  bool
}

// readCatalog validates, normalizes and uniqueness-checks one catalog file.
func readCatalog(path string) ([]domain.Article, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog: %w", err)
	}
	defer f.Close()

	loader, err := catalog.NewLoader()
	if err != nil {
		return nil, err
	}

	doc, err := loader.Load(f, catalog.EncodingFromPath(path))
	if err != nil {
		return nil, err
	}

	articles, err := catalog.NewNormalizer().NormalizeAll(doc.Posts())
	if err != nil {
		return nil, err
	}

	if err := catalog.ValidateUnique(articles); err != nil {
		return nil, err
	}

	slog.Info("Catalog loaded", "path", path, "articles", len(articles), "nested", doc.Nested != nil)
	return articles, nil
}

func runImport(ctx context.Context, opts importOptions, storer storage.Storer) (processor.Stats, error) {
	articles, err := readCatalog(opts.path)
	if err != nil {
		return processor.Stats{}, err
	}

	pipeline := processor.NewPipeline(storer,
		processor.WithBulk(opts.bulkSize),
		processor.WithReplace(opts.replace),
	)
	return pipeline.Run(ctx, articles)
}
