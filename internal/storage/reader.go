package storage

import (
	"context"
	"errors"

	"github.com/nikitaapatil/howtobangalore/internal/domain"
)

// ErrNotFound is returned by Reader.Get when no published article has the slug.
var ErrNotFound = errors.New("article not found in storage")

// Reader is an article source. Implementations return normalized articles
// and wrap transport or status failures in apperr.FetchFailedError.
type Reader interface {
	// List returns the published collection in its stored order.
	List(ctx context.Context) ([]domain.Article, error)
	// Get returns one published article by slug, or ErrNotFound.
	Get(ctx context.Context, slug string) (domain.Article, error)
}

// FindBySlug is the Get fallback for sources that can only list.
func FindBySlug(articles []domain.Article, slug string) (domain.Article, error) {
	for _, a := range articles {
		if a.Slug == slug {
			return a, nil
		}
	}
	return domain.Article{}, ErrNotFound
}

// Published keeps the published articles in order.
func Published(articles []domain.Article) []domain.Article {
	out := make([]domain.Article, 0, len(articles))
	for _, a := range articles {
		if a.Published {
			out = append(out, a)
		}
	}
	return out
}
