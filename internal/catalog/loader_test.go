package catalog

import (
	"strings"
	"testing"

	"github.com/nikitaapatil/howtobangalore/internal/apperr"
	"github.com/nikitaapatil/howtobangalore/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLoader(t *testing.T) *Loader {
	t.Helper()
	l, err := NewLoader()
	require.NoError(t, err)
	return l
}

func TestLoader_NestedYAML(t *testing.T) {
	yamlContent := `
categories:
  - id: housing
    name: Housing & Home Setup
    icon: Home
    subcategories:
      - id: finding-home
        name: Finding Your Home
        posts:
          - id: 1
            title: The Ultimate Guide to Renting in Bangalore
            excerpt: Navigate the complex world of Bangalore rentals.
            content: "<h2>Brokers</h2><p>...</p>"
            readTime: 12 min read
            publishDate: 2024-01-15
            featured: true
  - id: transport
    subcategories:
      - id: metro
        posts:
          - id: 2
            slug: metro-guide
            title: Namma Metro Guide
`
	doc, err := newTestLoader(t).Load(strings.NewReader(yamlContent), EncodingYAML)
	require.NoError(t, err)
	require.NotNil(t, doc.Nested)

	posts := doc.Posts()
	require.Len(t, posts, 2)
	assert.Equal(t, domain.ArticleID("1"), posts[0].ID)
	assert.Equal(t, "housing", posts[0].Category)
	assert.Equal(t, "12 min read", posts[0].readTime())
	assert.Equal(t, "2024-01-15", posts[0].publishDate())
	assert.True(t, posts[0].Featured)
	assert.Equal(t, "metro-guide", posts[1].Slug)
	assert.Equal(t, "metro", posts[1].Subcategory)
}

func TestLoader_YAMLKeepsDateText(t *testing.T) {
	yamlContent := `
- id: 1
  slug: renting-guide
  title: Renting
  publish_date: 2024-01-15
  featured: true
- id: 2
  slug: metro-guide
  title: Metro
  publishDate: 2023-11-02T09:30:00Z
  word_count: 420
- id: 3
  slug: pg-guide
  title: PG
  publish_date: "2022-05-01"
`
	doc, err := newTestLoader(t).Load(strings.NewReader(yamlContent), EncodingYAML)
	require.NoError(t, err)

	posts := doc.Posts()
	require.Len(t, posts, 3)
	assert.Equal(t, "2024-01-15", posts[0].publishDate())
	assert.Equal(t, "2023-11-02T09:30:00Z", posts[1].publishDate())
	assert.Equal(t, "2022-05-01", posts[2].publishDate())
	assert.True(t, posts[0].Featured)
	assert.Equal(t, 420, posts[1].wordCount())
}

func TestLoader_YAMLAliases(t *testing.T) {
	yamlContent := `
- id: 1
  slug: renting-guide
  title: &title Renting
- id: 2
  slug: renting-guide-2
  title: *title
`
	doc, err := newTestLoader(t).Load(strings.NewReader(yamlContent), EncodingYAML)
	require.NoError(t, err)
	require.Len(t, doc.Posts(), 2)
	assert.Equal(t, "Renting", doc.Posts()[1].Title)
}

func TestLoader_RejectsEmptyYAML(t *testing.T) {
	_, err := newTestLoader(t).Load(strings.NewReader(""), EncodingYAML)
	var ve *apperr.ValidationError
	require.ErrorAs(t, err, &ve)
}

func TestLoader_CategoryArrayJSON(t *testing.T) {
	jsonContent := `[{"id":"housing","subcategories":[{"id":"pg","posts":[{"id":3,"title":"PG Culture"}]}]}]`

	doc, err := newTestLoader(t).Load(strings.NewReader(jsonContent), EncodingJSON)
	require.NoError(t, err)
	require.NotNil(t, doc.Nested)
	require.Len(t, doc.Posts(), 1)
	assert.Equal(t, "pg", doc.Posts()[0].Subcategory)
}

func TestLoader_FlatJSON(t *testing.T) {
	jsonContent := `[
		{"id":"a1","slug":"renting-guide","title":"Renting","category":"housing","read_time":"5 min read","published":true},
		{"id":7,"slug":"metro-guide","title":"Metro","category":"transport","featured_image":null,"published":false}
	]`

	doc, err := newTestLoader(t).Load(strings.NewReader(jsonContent), EncodingJSON)
	require.NoError(t, err)
	assert.Nil(t, doc.Nested)

	posts := doc.Posts()
	require.Len(t, posts, 2)
	assert.Equal(t, domain.ArticleID("a1"), posts[0].ID)
	assert.Equal(t, domain.ArticleID("7"), posts[1].ID)
	assert.False(t, posts[1].published())
}

func TestLoader_RejectsSchemaViolations(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"post without title", `[{"id":1,"slug":"x"}]`},
		{"bad slug", `[{"title":"X","slug":"Not A Slug"}]`},
		{"unknown format", `[{"title":"X","format":"rst"}]`},
		{"category without subcategories", `{"categories":[{"id":"housing"}]}`},
		{"scalar document", `42`},
	}

	l := newTestLoader(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := l.Load(strings.NewReader(tt.content), EncodingJSON)
			var ve *apperr.ValidationError
			require.ErrorAs(t, err, &ve)
		})
	}
}

func TestEncodingFromPath(t *testing.T) {
	assert.Equal(t, EncodingYAML, EncodingFromPath("data/catalog.yaml"))
	assert.Equal(t, EncodingYAML, EncodingFromPath("catalog.YML"))
	assert.Equal(t, EncodingJSON, EncodingFromPath("catalog.json"))
	assert.Equal(t, EncodingJSON, EncodingFromPath("catalog"))
}
