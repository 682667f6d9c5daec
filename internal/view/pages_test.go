package view

import (
	"testing"

	"github.com/nikitaapatil/howtobangalore/internal/articles"
	"github.com/nikitaapatil/howtobangalore/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPages(reader *flakyReader) *Pages {
	return NewPages(articles.NewAdapter(reader, "test"))
}

func catalogArticles() []domain.Article {
	return []domain.Article{
		{ID: "1", Slug: "renting-guide", Title: "Renting in Bangalore", Excerpt: "Deposits and brokers", Category: "housing", Subcategory: "renting", Featured: true, Published: true},
		{ID: "2", Slug: "metro-guide", Title: "Namma Metro", Excerpt: "Purple line <tips>", Category: "transport", Published: true},
		{ID: "3", Slug: "pg-guide", Title: "PG life", Excerpt: "Near the metro", Category: "housing", Published: true},
	}
}

func TestPages_Home(t *testing.T) {
	screen := newPages(&flakyReader{healthy: true, articles: catalogArticles()}).Home(t.Context())

	assert.Equal(t, StatusReady, screen.Status)
	require.Len(t, screen.Featured, 1)
	assert.Equal(t, "renting-guide", screen.Featured[0].Slug)
	assert.Len(t, screen.Latest, 3)
	require.Len(t, screen.Categories, 2)
	assert.Equal(t, "housing", screen.Categories[0].Name)
}

func TestPages_Search(t *testing.T) {
	pages := newPages(&flakyReader{healthy: true, articles: catalogArticles()})

	screen := pages.Search(t.Context(), domain.SearchQuery{Text: "metro"})
	assert.Equal(t, StatusReady, screen.Status)
	assert.Equal(t, domain.CategoryAll, screen.Query.Category)
	assert.Equal(t, []string{"housing", "transport"}, screen.Categories)
	require.Equal(t, 2, screen.Total)
	assert.Equal(t, "Namma <mark>Metro</mark>", screen.Results[0].TitleHTML)
	assert.Equal(t, "Purple line &lt;tips&gt;", screen.Results[0].ExcerptHTML)
	assert.Equal(t, "Near the <mark>metro</mark>", screen.Results[1].ExcerptHTML)

	screen = pages.Search(t.Context(), domain.SearchQuery{Text: "metro", Category: "transport"})
	assert.Equal(t, 1, screen.Total)

	screen = pages.Search(t.Context(), domain.SearchQuery{Text: "zzz"})
	assert.Equal(t, StatusReady, screen.Status)
	assert.Zero(t, screen.Total)
	assert.NotNil(t, screen.Results)
	require.NotNil(t, screen.Notice)
	assert.Nil(t, screen.Notice.Action)
}

func TestPages_SearchFetchFailedIsNotEmpty(t *testing.T) {
	screen := newPages(&flakyReader{}).Search(t.Context(), domain.SearchQuery{Text: "metro"})

	assert.Equal(t, StatusFetchFailed, screen.Status)
	require.NotNil(t, screen.Notice)
	require.NotNil(t, screen.Notice.Action)
	assert.Equal(t, ActionRetry, screen.Notice.Action.Kind)
	assert.Equal(t, "/api/pages/search?category=all&q=metro", screen.Notice.Action.Href)
}

func TestPages_Category(t *testing.T) {
	pages := newPages(&flakyReader{healthy: true, articles: catalogArticles()})

	screen := pages.Category(t.Context(), "housing")
	assert.Equal(t, StatusReady, screen.Status)
	require.NotNil(t, screen.Category)
	assert.Equal(t, 2, screen.Category.Count)
	assert.Len(t, screen.Articles, 2)

	screen = pages.Category(t.Context(), "food")
	assert.Equal(t, StatusNotFound, screen.Status)
	assert.Nil(t, screen.Category)
}

func TestPages_CategoriesAndSitemap(t *testing.T) {
	pages := newPages(&flakyReader{healthy: true, articles: catalogArticles()})

	cats := pages.Categories(t.Context())
	assert.Len(t, cats.Categories, 2)

	sitemap := pages.Sitemap(t.Context())
	require.Len(t, sitemap.Sections, 2)
	assert.Equal(t, "housing", sitemap.Sections[0].Category)
	assert.Len(t, sitemap.Sections[0].Articles, 2)
	assert.Equal(t, "transport", sitemap.Sections[1].Category)
}

func TestPages_FetchFailed(t *testing.T) {
	pages := newPages(&flakyReader{})

	assert.Equal(t, StatusFetchFailed, pages.Home(t.Context()).Status)
	assert.Equal(t, StatusFetchFailed, pages.Categories(t.Context()).Status)
	assert.Equal(t, StatusFetchFailed, pages.Category(t.Context(), "housing").Status)
	assert.Equal(t, StatusFetchFailed, pages.Sitemap(t.Context()).Status)
}
