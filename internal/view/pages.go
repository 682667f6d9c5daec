package view

import (
	"context"
	"log/slog"
	"net/url"

	"github.com/nikitaapatil/howtobangalore/internal/articles"
	"github.com/nikitaapatil/howtobangalore/internal/category"
	"github.com/nikitaapatil/howtobangalore/internal/domain"
	"github.com/nikitaapatil/howtobangalore/internal/search"
)

// Pages renders the collection backed screens. Every call fetches a fresh
// snapshot.
type Pages struct {
	adapter *articles.Adapter
}

func NewPages(adapter *articles.Adapter) *Pages {
	return &Pages{adapter: adapter}
}

type HomeScreen struct {
	Status     Status            `json:"status"`
	Notice     *Notice           `json:"notice,omitempty"`
	Featured   []domain.Summary  `json:"featured"`
	Latest     []domain.Summary  `json:"latest"`
	Categories []domain.Category `json:"categories"`
}

// latestLimit matches the home page grid.
const latestLimit = 6

func (p *Pages) Home(ctx context.Context) HomeScreen {
	snap, err := p.adapter.Snapshot(ctx)
	if err != nil {
		return HomeScreen{Status: failed(err), Notice: noticeFor(StatusFetchFailed, "/api/pages/home")}
	}

	all := snap.Articles()
	var featured []domain.Article
	for _, a := range all {
		if a.Featured {
			featured = append(featured, a)
		}
	}
	return HomeScreen{
		Status:     StatusReady,
		Featured:   domain.Summaries(featured),
		Latest:     domain.Summaries(all[:min(latestLimit, len(all))]),
		Categories: nonNil(category.Build(all)),
	}
}

type SearchHit struct {
	domain.Summary
	TitleHTML   string `json:"title_html"`
	ExcerptHTML string `json:"excerpt_html"`
}

type SearchScreen struct {
	Status     Status             `json:"status"`
	Notice     *Notice            `json:"notice,omitempty"`
	Query      domain.SearchQuery `json:"query"`
	Categories []string           `json:"categories"`
	Results    []SearchHit        `json:"results"`
	Total      int                `json:"total"`
}

// Search filters the collection. A source failure is reported as
// fetch_failed, never as an empty result list.
func (p *Pages) Search(ctx context.Context, q domain.SearchQuery) SearchScreen {
	q = q.WithDefaults()
	screen := SearchScreen{Query: q, Categories: []string{}, Results: []SearchHit{}}

	snap, err := p.adapter.Snapshot(ctx)
	if err != nil {
		screen.Status = failed(err)
		screen.Notice = noticeFor(StatusFetchFailed, searchHref(q))
		return screen
	}

	all := snap.Articles()
	screen.Status = StatusReady
	screen.Categories = append(screen.Categories, search.Categories(all)...)
	for _, a := range search.Filter(all, q) {
		screen.Results = append(screen.Results, SearchHit{
			Summary:     a.Summary(),
			TitleHTML:   search.HighlightHTML(a.Title, q.Text),
			ExcerptHTML: search.HighlightHTML(a.Excerpt, q.Text),
		})
	}
	screen.Total = len(screen.Results)
	if screen.Total == 0 {
		screen.Notice = &Notice{
			Title:   "No articles found",
			Message: "Try a different search term or category.",
		}
	}
	return screen
}

type CategoriesScreen struct {
	Status     Status            `json:"status"`
	Notice     *Notice           `json:"notice,omitempty"`
	Categories []domain.Category `json:"categories"`
}

func (p *Pages) Categories(ctx context.Context) CategoriesScreen {
	snap, err := p.adapter.Snapshot(ctx)
	if err != nil {
		return CategoriesScreen{
			Status:     failed(err),
			Notice:     noticeFor(StatusFetchFailed, "/api/pages/categories"),
			Categories: []domain.Category{},
		}
	}
	return CategoriesScreen{Status: StatusReady, Categories: nonNil(category.Build(snap.Articles()))}
}

type CategoryScreen struct {
	Status   Status           `json:"status"`
	Notice   *Notice          `json:"notice,omitempty"`
	Category *domain.Category `json:"category,omitempty"`
	Articles []domain.Summary `json:"articles"`
}

// Category renders one category. A category without articles is not found.
func (p *Pages) Category(ctx context.Context, name string) CategoryScreen {
	snap, err := p.adapter.Snapshot(ctx)
	if err != nil {
		return CategoryScreen{
			Status:   failed(err),
			Notice:   noticeFor(StatusFetchFailed, "/api/pages/categories/"+url.PathEscape(name)),
			Articles: []domain.Summary{},
		}
	}

	all := snap.Articles()
	c, ok := category.Find(all, name)
	if !ok {
		return CategoryScreen{
			Status: StatusNotFound,
			Notice: &Notice{
				Title:   "Category not found",
				Message: "There are no articles in this category yet.",
				Action:  homeAction,
			},
			Articles: []domain.Summary{},
		}
	}
	return CategoryScreen{
		Status:   StatusReady,
		Category: &c,
		Articles: domain.Summaries(category.InCategory(all, name)),
	}
}

type SitemapSection struct {
	Category string           `json:"category"`
	Articles []domain.Summary `json:"articles"`
}

type SitemapScreen struct {
	Status   Status           `json:"status"`
	Notice   *Notice          `json:"notice,omitempty"`
	Sections []SitemapSection `json:"sections"`
}

// Sitemap groups the collection by category in first-appearance order.
func (p *Pages) Sitemap(ctx context.Context) SitemapScreen {
	snap, err := p.adapter.Snapshot(ctx)
	if err != nil {
		return SitemapScreen{
			Status:   failed(err),
			Notice:   noticeFor(StatusFetchFailed, "/api/pages/sitemap"),
			Sections: []SitemapSection{},
		}
	}

	all := snap.Articles()
	sections := []SitemapSection{}
	for _, c := range category.Build(all) {
		sections = append(sections, SitemapSection{
			Category: c.Name,
			Articles: domain.Summaries(category.InCategory(all, c.Name)),
		})
	}
	return SitemapScreen{Status: StatusReady, Sections: sections}
}

func failed(err error) Status {
	slog.Error("Article collection unavailable", "error", err)
	return StatusOf(err)
}

func searchHref(q domain.SearchQuery) string {
	v := url.Values{}
	if q.Text != "" {
		v.Set("q", q.Text)
	}
	v.Set("category", q.Category)
	return "/api/pages/search?" + v.Encode()
}

func nonNil(c []domain.Category) []domain.Category {
	if c == nil {
		return []domain.Category{}
	}
	return c
}
