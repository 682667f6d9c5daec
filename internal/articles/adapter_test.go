package articles

import (
	"context"
	"errors"
	"testing"

	"github.com/nikitaapatil/howtobangalore/internal/apperr"
	"github.com/nikitaapatil/howtobangalore/internal/domain"
	"github.com/nikitaapatil/howtobangalore/internal/storage"
	"github.com/nikitaapatil/howtobangalore/internal/storage/in_mem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingReader struct {
	err error
}

func (r failingReader) List(context.Context) ([]domain.Article, error) {
	return nil, r.err
}

func (r failingReader) Get(context.Context, string) (domain.Article, error) {
	return domain.Article{}, r.err
}

func TestAdapter_Snapshot(t *testing.T) {
	store := in_mem.NewStore(
		domain.Article{ID: "1", Slug: "renting-guide", Published: true},
		domain.Article{ID: "2", Slug: "draft", Published: false},
		domain.Article{ID: "1", Slug: "duplicate-id", Published: true},
		domain.Article{ID: "3", Slug: "metro-guide", Published: true},
	)

	snap, err := NewAdapter(store, "in_mem").Snapshot(t.Context())
	require.NoError(t, err)

	got := snap.Articles()
	require.Len(t, got, 2)
	assert.Equal(t, "renting-guide", got[0].Slug)
	assert.Equal(t, "metro-guide", got[1].Slug)
}

func TestAdapter_EmptyIsNotAnError(t *testing.T) {
	snap, err := NewAdapter(in_mem.NewStore(), "in_mem").Snapshot(t.Context())
	require.NoError(t, err)
	assert.True(t, snap.Empty())
	assert.Equal(t, 0, snap.Len())
}

func TestAdapter_WrapsSourceErrors(t *testing.T) {
	adapter := NewAdapter(failingReader{err: errors.New("connection refused")}, "pg")

	_, err := adapter.Snapshot(t.Context())
	require.Error(t, err)

	var fetchErr *apperr.FetchFailedError
	require.ErrorAs(t, err, &fetchErr)
	assert.Equal(t, "pg", fetchErr.Source)

	_, _, err = adapter.Get(t.Context(), "x")
	assert.True(t, apperr.IsFetchFailed(err))
}

func TestAdapter_KeepsExistingFetchFailed(t *testing.T) {
	cause := apperr.NewFetchFailedStatus("api", 503)
	_, err := NewAdapter(failingReader{err: cause}, "api").Snapshot(t.Context())

	var fetchErr *apperr.FetchFailedError
	require.ErrorAs(t, err, &fetchErr)
	assert.Equal(t, 503, fetchErr.Status)
}

func TestAdapter_GetMissing(t *testing.T) {
	adapter := NewAdapter(failingReader{err: storage.ErrNotFound}, "api")

	_, found, err := adapter.Get(t.Context(), "missing")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestSnapshot_ArticlesIsACopy(t *testing.T) {
	snap := NewSnapshot([]domain.Article{{ID: "1", Title: "A"}})
	got := snap.Articles()
	got[0].Title = "changed"
	assert.Equal(t, "A", snap.Articles()[0].Title)
}
