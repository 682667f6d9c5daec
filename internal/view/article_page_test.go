package view

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"testing"

	"github.com/nikitaapatil/howtobangalore/internal/apperr"
	"github.com/nikitaapatil/howtobangalore/internal/articles"
	"github.com/nikitaapatil/howtobangalore/internal/domain"
	"github.com/nikitaapatil/howtobangalore/internal/resolver"
	"github.com/nikitaapatil/howtobangalore/internal/storage"
	"github.com/nikitaapatil/howtobangalore/internal/toc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// flakyReader fails until healthy is set.
type flakyReader struct {
	mu       sync.Mutex
	healthy  bool
	articles []domain.Article
}

func (r *flakyReader) setHealthy(v bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.healthy = v
}

func (r *flakyReader) List(context.Context) ([]domain.Article, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.healthy {
		return nil, apperr.NewFetchFailedStatus("api", http.StatusServiceUnavailable)
	}
	return r.articles, nil
}

func (r *flakyReader) Get(ctx context.Context, slug string) (domain.Article, error) {
	list, err := r.List(ctx)
	if err != nil {
		return domain.Article{}, err
	}
	return storage.FindBySlug(list, slug)
}

func testArticles() []domain.Article {
	return []domain.Article{
		{ID: "1", Slug: "renting-guide", Title: "Renting", Category: "housing", Published: true,
			Content: "<h2>Deposits</h2><p>Ten months.</p><h3>Deposits</h3>"},
		{ID: "2", Slug: "metro-guide", Title: "Metro", Category: "transport", Published: true,
			Content: "<p>No headings here</p>"},
		{ID: "3", Slug: "pg-guide", Title: "PG", Category: "housing", Published: true},
	}
}

func newPage(reader storage.Reader, bus *toc.ScrollBus) *ArticlePage {
	return NewArticlePage(resolver.NewService(articles.NewAdapter(reader, "test")), bus)
}

func TestArticlePage_Ready(t *testing.T) {
	bus := toc.NewScrollBus()
	page := newPage(&flakyReader{healthy: true, articles: testArticles()}, bus)
	defer page.Close()

	require.Equal(t, StatusReady, page.Load(t.Context(), "renting-guide"))

	screen := page.Screen()
	assert.Equal(t, StatusReady, screen.Status)
	assert.Nil(t, screen.Notice)
	require.NotNil(t, screen.Article)
	assert.Equal(t, "slug", screen.Article.ResolvedBy)
	assert.Equal(t,
		`<h2 id="deposits-0">Deposits</h2><p>Ten months.</p><h3 id="deposits-1">Deposits</h3>`,
		screen.Article.Content)
	require.Len(t, screen.Related, 1)
	assert.Equal(t, "pg-guide", screen.Related[0].Slug)
	assert.Equal(t, []domain.Heading{
		{ID: "deposits-0", Text: "Deposits", Level: 2},
		{ID: "deposits-1", Text: "Deposits", Level: 3},
	}, screen.TOC)
	assert.Equal(t, 1, bus.Listeners())
	assert.Equal(t, http.StatusOK, screen.Status.HTTPStatus())
}

func TestArticlePage_EmptyTOCIsOmitted(t *testing.T) {
	page := newPage(&flakyReader{healthy: true, articles: testArticles()}, nil)

	require.Equal(t, StatusReady, page.Load(t.Context(), "2"))
	screen := page.Screen()
	assert.Equal(t, "id", screen.Article.ResolvedBy)
	assert.Nil(t, screen.TOC)
	assert.Nil(t, screen.Related)
}

func TestArticlePage_ErrorStates(t *testing.T) {
	tests := []struct {
		name       string
		healthy    bool
		identifier string
		want       Status
		action     ActionKind
		code       int
	}{
		{"no identifier", true, "", StatusNoIdentifier, ActionHome, http.StatusBadRequest},
		{"not found", true, "missing", StatusNotFound, ActionHome, http.StatusNotFound},
		{"fetch failed", false, "renting-guide", StatusFetchFailed, ActionRetry, http.StatusBadGateway},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bus := toc.NewScrollBus()
			page := newPage(&flakyReader{healthy: tt.healthy, articles: testArticles()}, bus)

			assert.Equal(t, tt.want, page.Load(t.Context(), tt.identifier))

			screen := page.Screen()
			require.NotNil(t, screen.Notice)
			assert.NotEmpty(t, screen.Notice.Title)
			assert.NotEmpty(t, screen.Notice.Message)
			require.NotNil(t, screen.Notice.Action)
			assert.Equal(t, tt.action, screen.Notice.Action.Kind)
			assert.Nil(t, screen.Article)
			assert.Nil(t, screen.Related)
			assert.Nil(t, screen.TOC)
			assert.Equal(t, tt.code, screen.Status.HTTPStatus())
			assert.Zero(t, bus.Listeners())
		})
	}
}

func TestArticlePage_RetryAfterFetchFailed(t *testing.T) {
	reader := &flakyReader{articles: testArticles()}
	page := newPage(reader, toc.NewScrollBus())

	require.Equal(t, StatusFetchFailed, page.Load(t.Context(), "metro-guide"))
	screen := page.Screen()
	require.NotNil(t, screen.Notice.Action)
	assert.Equal(t, ActionRetry, screen.Notice.Action.Kind)
	assert.Equal(t, "/api/pages/articles/metro-guide", screen.Notice.Action.Href)

	reader.setHealthy(true)
	assert.Equal(t, StatusReady, page.Retry(t.Context()))
	assert.Equal(t, "metro-guide", page.Screen().Article.Slug)
}

// gatedResolver blocks each identifier until its gate is closed.
type gatedResolver struct {
	inner   ArticleResolver
	gates   map[string]chan struct{}
	started chan string
}

func (r *gatedResolver) Resolve(ctx context.Context, identifier string) (resolver.Result, error) {
	r.started <- identifier
	if gate, ok := r.gates[identifier]; ok {
		<-gate
	}
	return r.inner.Resolve(ctx, identifier)
}

func TestArticlePage_StaleLoadIsDiscarded(t *testing.T) {
	inner := resolver.NewService(articles.NewAdapter(&flakyReader{healthy: true, articles: testArticles()}, "test"))
	gated := &gatedResolver{
		inner:   inner,
		gates:   map[string]chan struct{}{"renting-guide": make(chan struct{})},
		started: make(chan string, 2),
	}
	bus := toc.NewScrollBus()
	page := NewArticlePage(gated, bus)

	done := make(chan Status)
	go func() {
		done <- page.Load(context.Background(), "renting-guide")
	}()
	require.Equal(t, "renting-guide", <-gated.started)

	assert.Equal(t, StatusReady, page.Load(t.Context(), "metro-guide"))
	<-gated.started

	close(gated.gates["renting-guide"])
	<-done

	screen := page.Screen()
	assert.Equal(t, "metro-guide", screen.Identifier)
	require.NotNil(t, screen.Article)
	assert.Equal(t, "metro-guide", screen.Article.Slug)
	assert.Zero(t, bus.Listeners())
}

func TestArticlePage_NavigationUnmountsTracker(t *testing.T) {
	bus := toc.NewScrollBus()
	page := newPage(&flakyReader{healthy: true, articles: testArticles()}, bus)

	for i := 0; i < 5; i++ {
		page.Load(t.Context(), "renting-guide")
		assert.Equal(t, 1, bus.Listeners())
	}

	tracker := page.Tracker()
	require.NotNil(t, tracker)
	bus.Publish(toc.ScrollEvent{Tops: []float64{-10, 300}})
	assert.Equal(t, "deposits-0", tracker.ActiveID())
	assert.Equal(t, 0.5, tracker.Progress())

	page.Load(t.Context(), "missing")
	assert.Zero(t, bus.Listeners())

	page.Load(t.Context(), "renting-guide")
	page.Close()
	assert.Zero(t, bus.Listeners())
}

func TestStatusOf(t *testing.T) {
	assert.Equal(t, StatusReady, StatusOf(nil))
	assert.Equal(t, StatusNoIdentifier, StatusOf(apperr.ErrNoIdentifier))
	assert.Equal(t, StatusNotFound, StatusOf(apperr.ErrNotFound))
	assert.Equal(t, StatusFetchFailed, StatusOf(apperr.NewFetchFailed("api", errors.New("x"))))
}
