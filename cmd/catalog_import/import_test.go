package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/nikitaapatil/howtobangalore/internal/apperr"
	"github.com/nikitaapatil/howtobangalore/internal/domain"
	"github.com/nikitaapatil/howtobangalore/internal/storage/in_mem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const nestedCatalog = `
categories:
  - id: housing
    subcategories:
      - id: finding-home
        posts:
          - id: 1
            slug: renting-guide
            title: Renting in Bangalore
            content: "<h2>Brokers</h2><p>Always negotiate.</p>"
  - id: transport
    subcategories:
      - id: metro
        posts:
          - id: 2
            slug: metro-guide
            title: Namma Metro Guide
            content: "<p>Purple and green lines.</p>"
          - id: 3
            slug: bus-guide
            title: BMTC Buses
            published: false
`

func writeCatalog(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// savedArticles records every article handed to the storer, including the
// unpublished ones a Reader never lists.
type savedArticles struct {
	*in_mem.Store
	saved []domain.Article
}

func (s *savedArticles) SaveBulk(ctx context.Context, articles []domain.Article) error {
	s.saved = append(s.saved, articles...)
	return s.Store.SaveBulk(ctx, articles)
}

func TestRunImport_NestedYAML(t *testing.T) {
	path := writeCatalog(t, "catalog.yaml", nestedCatalog)
	store := &savedArticles{Store: in_mem.NewStore()}

	stats, err := runImport(context.Background(), importOptions{path: path, bulkSize: 2}, store)
	require.NoError(t, err)
	assert.Equal(t, 3, stats.Saved)
	assert.Equal(t, 2, stats.Batches)

	require.Len(t, store.saved, 3)
	assert.Equal(t, "bus-guide", store.saved[2].Slug)
	assert.False(t, store.saved[2].Published)

	got, err := store.List(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "renting-guide", got[0].Slug)
	assert.Equal(t, "housing", got[0].Category)
	assert.Equal(t, "metro", got[1].Subcategory)
}

func TestRunImport_Replace(t *testing.T) {
	path := writeCatalog(t, "catalog.yml", nestedCatalog)
	store := in_mem.NewStore(domain.Article{ID: "old", Slug: "old", Published: true})

	stats, err := runImport(context.Background(), importOptions{path: path, replace: true}, store)
	require.NoError(t, err)
	assert.True(t, stats.Replaced)
	assert.Equal(t, 3, stats.Saved)

	got, err := store.List(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "renting-guide", got[0].Slug)
	assert.Equal(t, "metro-guide", got[1].Slug)
}

func TestRunImport_RejectsDuplicateSlugs(t *testing.T) {
	path := writeCatalog(t, "catalog.json", `[
		{"id": 1, "slug": "same", "title": "One"},
		{"id": 2, "slug": "same", "title": "Two"}
	]`)
	store := in_mem.NewStore()

	_, err := runImport(context.Background(), importOptions{path: path}, store)
	var vErr *apperr.ValidationError
	require.ErrorAs(t, err, &vErr)

	got, err := store.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestRunImport_MissingFile(t *testing.T) {
	_, err := runImport(context.Background(), importOptions{path: filepath.Join(t.TempDir(), "nope.json")}, in_mem.NewStore())
	assert.ErrorContains(t, err, "failed to open catalog")
}
