package articles

import (
	"context"
	"errors"
	"log/slog"
	"slices"

	"github.com/nikitaapatil/howtobangalore/internal/apperr"
	"github.com/nikitaapatil/howtobangalore/internal/catalog"
	"github.com/nikitaapatil/howtobangalore/internal/domain"
	"github.com/nikitaapatil/howtobangalore/internal/storage"
)

// Snapshot is the article collection fetched for one page view. It is never
// mutated after creation.
type Snapshot struct {
	articles []domain.Article
}

func NewSnapshot(articles []domain.Article) Snapshot {
	return Snapshot{articles: slices.Clone(articles)}
}

// Articles returns a copy of the collection in source order.
func (s Snapshot) Articles() []domain.Article {
	return slices.Clone(s.articles)
}

func (s Snapshot) Len() int {
	return len(s.articles)
}

func (s Snapshot) Empty() bool {
	return len(s.articles) == 0
}

// Adapter turns any storage.Reader into normalized snapshots. Source failures
// always come back as *apperr.FetchFailedError so callers can tell them apart
// from an empty collection.
type Adapter struct {
	reader storage.Reader
	source string
}

func NewAdapter(reader storage.Reader, source string) *Adapter {
	return &Adapter{reader: reader, source: source}
}

func (a *Adapter) Snapshot(ctx context.Context) (Snapshot, error) {
	list, err := a.reader.List(ctx)
	if err != nil {
		return Snapshot{}, a.fetchFailed(err)
	}

	list = catalog.Dedupe(storage.Published(list))
	slog.Debug("Article snapshot fetched", "source", a.source, "count", len(list))
	return Snapshot{articles: list}, nil
}

// Get fetches one published article by slug. A missing article is reported
// as found == false with a nil error.
func (a *Adapter) Get(ctx context.Context, slug string) (domain.Article, bool, error) {
	article, err := a.reader.Get(ctx, slug)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return domain.Article{}, false, nil
		}
		return domain.Article{}, false, a.fetchFailed(err)
	}
	if !article.Published {
		return domain.Article{}, false, nil
	}
	return article, true, nil
}

func (a *Adapter) fetchFailed(err error) error {
	if errors.Is(err, context.Canceled) || apperr.IsFetchFailed(err) {
		return err
	}
	return apperr.NewFetchFailed(a.source, err)
}
