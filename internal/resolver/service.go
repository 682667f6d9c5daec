package resolver

import (
	"context"
	"log/slog"
	"strings"

	"github.com/nikitaapatil/howtobangalore/internal/apperr"
	"github.com/nikitaapatil/howtobangalore/internal/articles"
	"github.com/nikitaapatil/howtobangalore/internal/domain"
	"golang.org/x/sync/errgroup"
)

type Result struct {
	Outcome
	Related []domain.Article
}

type Service struct {
	adapter *articles.Adapter
}

func NewService(adapter *articles.Adapter) *Service {
	return &Service{adapter: adapter}
}

// Resolve looks an identifier up against the source. The slug lookup and the
// full list fetch run concurrently; a slug hit wins, otherwise the lookup
// chain runs over the list. Related articles are derived only after the
// primary article is known.
//
// Errors: apperr.ErrNoIdentifier for an empty identifier (nothing is
// fetched), apperr.ErrNotFound, or *apperr.FetchFailedError.
func (s *Service) Resolve(ctx context.Context, identifier string) (Result, error) {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" {
		return Result{}, apperr.ErrNoIdentifier
	}

	var (
		g          errgroup.Group
		primary    domain.Article
		found      bool
		primaryErr error
		snapshot   articles.Snapshot
	)

	g.Go(func() error {
		primary, found, primaryErr = s.adapter.Get(ctx, identifier)
		return nil
	})
	g.Go(func() error {
		var err error
		snapshot, err = s.adapter.Snapshot(ctx)
		return err
	})
	listErr := g.Wait()

	if primaryErr != nil {
		slog.Warn("Primary article lookup failed, falling back to list", "identifier", identifier, "error", primaryErr)
	}

	outcome := Outcome{Method: NotFound}
	if found {
		outcome = Resolve([]domain.Article{primary}, identifier)
	}

	if listErr != nil {
		if outcome.Method != FoundBySlug {
			return Result{}, listErr
		}
		slog.Warn("Article list unavailable, skipping related articles", "identifier", identifier, "error", listErr)
		return Result{Outcome: outcome}, nil
	}

	collection := snapshot.Articles()
	if outcome.Method != FoundBySlug {
		outcome = Resolve(collection, identifier)
	}
	if !outcome.Found() {
		return Result{Outcome: outcome}, apperr.ErrNotFound
	}

	slog.Debug("Article resolved", "identifier", identifier, "method", outcome.Method, "id", outcome.Article.ID)
	return Result{
		Outcome: outcome,
		Related: Related(collection, outcome.Article, RelatedLimit),
	}, nil
}
