package view

import (
	"context"
	"log/slog"
	"net/url"
	"sync"

	"github.com/nikitaapatil/howtobangalore/internal/domain"
	"github.com/nikitaapatil/howtobangalore/internal/resolver"
	"github.com/nikitaapatil/howtobangalore/internal/toc"
	"github.com/nikitaapatil/howtobangalore/pkg/utils"
)

const progressDecimals = 4

// ArticleResolver is satisfied by *resolver.Service.
type ArticleResolver interface {
	Resolve(ctx context.Context, identifier string) (resolver.Result, error)
}

// ArticleView is the resolved article with heading ids written into its body.
type ArticleView struct {
	domain.Article
	ResolvedBy string `json:"resolved_by"`
}

type ArticleScreen struct {
	Status     Status           `json:"status"`
	Identifier string           `json:"identifier"`
	Notice     *Notice          `json:"notice,omitempty"`
	Article    *ArticleView     `json:"article,omitempty"`
	Related    []domain.Summary `json:"related,omitempty"`
	TOC        []domain.Heading `json:"toc,omitempty"`
}

// ArticlePage holds the state of one article view across navigations.
// Every Load starts a new generation; a completion from an older
// generation is dropped.
type ArticlePage struct {
	resolver ArticleResolver
	bus      *toc.ScrollBus

	mu         sync.Mutex
	generation uint64
	identifier string
	status     Status
	result     resolver.Result
	body       string
	tracker    *toc.Tracker
}

func NewArticlePage(r ArticleResolver, bus *toc.ScrollBus) *ArticlePage {
	return &ArticlePage{resolver: r, bus: bus, status: StatusLoading}
}

// Load navigates to identifier and returns the status it settled in. A load
// superseded by a newer one returns the status current at completion and
// leaves the page untouched.
func (p *ArticlePage) Load(ctx context.Context, identifier string) Status {
	p.mu.Lock()
	p.generation++
	gen := p.generation
	p.identifier = identifier
	p.status = StatusLoading
	p.result = resolver.Result{}
	p.body = ""
	p.unmountLocked()
	p.mu.Unlock()

	result, err := p.resolver.Resolve(ctx, identifier)

	var (
		tracker *toc.Tracker
		body    string
	)
	if err == nil {
		tracker = toc.NewTracker()
		headings := tracker.Load(result.Article.Content)
		body = result.Article.Content
		if withIDs, assignErr := toc.AssignIDs(body, headings); assignErr != nil {
			slog.Warn("Heading ids not assigned", "identifier", identifier, "error", assignErr)
		} else {
			body = withIDs
		}
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if gen != p.generation {
		slog.Debug("Discarding stale article load", "identifier", identifier, "generation", gen, "current", p.generation)
		return p.status
	}

	p.status = StatusOf(err)
	if err != nil {
		if p.status == StatusFetchFailed {
			slog.Error("Article load failed", "identifier", identifier, "error", err)
		}
		return p.status
	}

	p.result = result
	p.body = body
	p.tracker = tracker
	if p.bus != nil && len(tracker.Headings()) > 0 {
		tracker.Mount(p.bus)
	}
	return p.status
}

// Retry re-runs the last navigation.
func (p *ArticlePage) Retry(ctx context.Context) Status {
	p.mu.Lock()
	identifier := p.identifier
	p.mu.Unlock()
	return p.Load(ctx, identifier)
}

// Close unmounts the tracker and invalidates any load in flight.
func (p *ArticlePage) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.generation++
	p.unmountLocked()
}

func (p *ArticlePage) Status() Status {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.status
}

// Tracker returns the mounted tracker, nil unless the page is ready.
func (p *ArticlePage) Tracker() *toc.Tracker {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.tracker
}

// Screen renders the current state. Related articles and the table of
// contents only appear once the article is ready.
func (p *ArticlePage) Screen() ArticleScreen {
	p.mu.Lock()
	defer p.mu.Unlock()

	screen := ArticleScreen{Status: p.status, Identifier: p.identifier}
	if p.status != StatusReady {
		screen.Notice = noticeFor(p.status, "/api/pages/articles/"+url.PathEscape(p.identifier))
		return screen
	}

	article := p.result.Article
	article.Content = p.body
	screen.Article = &ArticleView{Article: article, ResolvedBy: p.result.Method.String()}
	if len(p.result.Related) > 0 {
		screen.Related = domain.Summaries(p.result.Related)
	}
	if p.tracker != nil {
		screen.TOC = p.tracker.Headings()
	}
	return screen
}

func (p *ArticlePage) unmountLocked() {
	if p.tracker != nil {
		p.tracker.Unmount()
		p.tracker = nil
	}
}

type TOCScreen struct {
	Status   Status           `json:"status"`
	Notice   *Notice          `json:"notice,omitempty"`
	Headings []domain.Heading `json:"headings"`
	ActiveID string           `json:"active_id,omitempty"`
	Progress float64          `json:"progress"`
}

// TOC reports the reading position of the mounted tracker.
func (p *ArticlePage) TOC() TOCScreen {
	p.mu.Lock()
	defer p.mu.Unlock()

	screen := TOCScreen{Status: p.status, Headings: []domain.Heading{}}
	if p.status != StatusReady {
		screen.Notice = noticeFor(p.status, "/api/pages/articles/"+url.PathEscape(p.identifier)+"/toc")
		return screen
	}
	if p.tracker == nil {
		return screen
	}
	if headings := p.tracker.Headings(); len(headings) > 0 {
		screen.Headings = headings
	}
	screen.ActiveID = p.tracker.ActiveID()
	screen.Progress = utils.RoundDecimal(p.tracker.Progress(), progressDecimals)
	return screen
}
