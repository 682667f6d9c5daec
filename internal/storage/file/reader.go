package file

import (
	"context"
	"fmt"
	"os"

	"github.com/nikitaapatil/howtobangalore/internal/apperr"
	"github.com/nikitaapatil/howtobangalore/internal/catalog"
	"github.com/nikitaapatil/howtobangalore/internal/domain"
	"github.com/nikitaapatil/howtobangalore/internal/storage"
)

const sourceName = "file"

// Reader serves a catalog file, nested or flat. The file is read on every
// List so edits show up on the next page load.
type Reader struct {
	path       string
	loader     *catalog.Loader
	normalizer *catalog.Normalizer
}

func NewReader(path string) (*Reader, error) {
	if path == "" {
		return nil, fmt.Errorf("catalog path is required")
	}
	loader, err := catalog.NewLoader()
	if err != nil {
		return nil, err
	}
	return &Reader{
		path:       path,
		loader:     loader,
		normalizer: catalog.NewNormalizer(),
	}, nil
}

func (r *Reader) List(ctx context.Context) ([]domain.Article, error) {
	f, err := os.Open(r.path)
	if err != nil {
		return nil, apperr.NewFetchFailed(sourceName, err)
	}
	defer f.Close()

	doc, err := r.loader.Load(f, catalog.EncodingFromPath(r.path))
	if err != nil {
		return nil, apperr.NewFetchFailed(sourceName, err)
	}

	articles, err := r.normalizer.NormalizeAll(doc.Posts())
	if err != nil {
		return nil, apperr.NewFetchFailed(sourceName, err)
	}
	return storage.Published(articles), nil
}

func (r *Reader) Get(ctx context.Context, slug string) (domain.Article, error) {
	articles, err := r.List(ctx)
	if err != nil {
		return domain.Article{}, err
	}
	return storage.FindBySlug(articles, slug)
}

var _ storage.Reader = (*Reader)(nil)

func (r *Reader) Healthy(ctx context.Context) bool {
	_, err := os.Stat(r.path)
	return err == nil
}
