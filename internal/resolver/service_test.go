package resolver

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/nikitaapatil/howtobangalore/internal/apperr"
	"github.com/nikitaapatil/howtobangalore/internal/articles"
	"github.com/nikitaapatil/howtobangalore/internal/domain"
	"github.com/nikitaapatil/howtobangalore/internal/storage"
	"github.com/nikitaapatil/howtobangalore/internal/storage/in_mem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubReader struct {
	articles []domain.Article
	listErr  error
	getErr   error
	calls    atomic.Int32
}

func (r *stubReader) List(context.Context) ([]domain.Article, error) {
	r.calls.Add(1)
	if r.listErr != nil {
		return nil, r.listErr
	}
	return r.articles, nil
}

func (r *stubReader) Get(_ context.Context, slug string) (domain.Article, error) {
	r.calls.Add(1)
	if r.getErr != nil {
		return domain.Article{}, r.getErr
	}
	return storage.FindBySlug(r.articles, slug)
}

func newService(reader storage.Reader) *Service {
	return NewService(articles.NewAdapter(reader, "test"))
}

func TestService_Resolve(t *testing.T) {
	store := in_mem.NewStore(
		domain.Article{ID: "1", Slug: "renting-guide", Category: "housing", Published: true},
		domain.Article{ID: "2", Slug: "metro-guide", Category: "transport", Published: true},
		domain.Article{ID: "3", Slug: "pg-guide", Category: "housing", Published: true},
	)
	svc := newService(store)

	res, err := svc.Resolve(t.Context(), "renting-guide")
	require.NoError(t, err)
	assert.Equal(t, FoundBySlug, res.Method)
	require.Len(t, res.Related, 1)
	assert.Equal(t, "pg-guide", res.Related[0].Slug)

	res, err = svc.Resolve(t.Context(), "2")
	require.NoError(t, err)
	assert.Equal(t, FoundByID, res.Method)
	assert.Equal(t, "metro-guide", res.Article.Slug)
	assert.Empty(t, res.Related)

	_, err = svc.Resolve(t.Context(), "missing")
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestService_NoIdentifierSkipsFetch(t *testing.T) {
	reader := &stubReader{}
	_, err := newService(reader).Resolve(t.Context(), "   ")

	assert.ErrorIs(t, err, apperr.ErrNoIdentifier)
	assert.Zero(t, reader.calls.Load())
}

func TestService_FetchFailed(t *testing.T) {
	reader := &stubReader{listErr: errors.New("down"), getErr: errors.New("down")}
	_, err := newService(reader).Resolve(t.Context(), "renting-guide")

	assert.True(t, apperr.IsFetchFailed(err))
	assert.NotErrorIs(t, err, apperr.ErrNotFound)
}

func TestService_SlugHitSurvivesListFailure(t *testing.T) {
	reader := &stubReader{
		articles: []domain.Article{{ID: "1", Slug: "renting-guide", Category: "housing", Published: true}},
		listErr:  errors.New("list timeout"),
	}

	res, err := newService(reader).Resolve(t.Context(), "renting-guide")
	require.NoError(t, err)
	assert.Equal(t, FoundBySlug, res.Method)
	assert.Empty(t, res.Related)
}

func TestService_PrimaryFailureFallsBackToList(t *testing.T) {
	reader := &stubReader{
		articles: []domain.Article{{ID: "1", Slug: "renting-guide", Published: true}},
		getErr:   errors.New("single article endpoint missing"),
	}

	res, err := newService(reader).Resolve(t.Context(), "1")
	require.NoError(t, err)
	assert.Equal(t, FoundByID, res.Method)
}
