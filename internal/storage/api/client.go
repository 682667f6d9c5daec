package api

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/nikitaapatil/howtobangalore/internal/apperr"
	"github.com/nikitaapatil/howtobangalore/internal/catalog"
	"github.com/nikitaapatil/howtobangalore/internal/domain"
	"github.com/nikitaapatil/howtobangalore/internal/storage"
)

const (
	sourceName     = "api"
	defaultTimeout = 10 * time.Second
)

type ClientConfig struct {
	BaseURL string
	Timeout time.Duration
}

// Client reads articles from the CMS REST API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	normalizer *catalog.Normalizer
}

func NewClient(cfg ClientConfig) (*Client, error) {
	base := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if base == "" {
		return nil, fmt.Errorf("api base URL is required")
	}
	if _, err := url.ParseRequestURI(base); err != nil {
		return nil, fmt.Errorf("invalid api base URL %q: %w", base, err)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &Client{
		baseURL:    base,
		httpClient: &http.Client{Timeout: timeout},
		normalizer: catalog.NewNormalizer(),
	}, nil
}

func (c *Client) List(ctx context.Context) ([]domain.Article, error) {
	body, err := c.get(ctx, "/api/articles")
	if err != nil {
		return nil, err
	}
	defer body.Close()

	posts, err := catalog.DecodeFlat(body)
	if err != nil {
		return nil, apperr.NewFetchFailed(sourceName, err)
	}

	articles, err := c.normalizer.NormalizeAll(posts)
	if err != nil {
		return nil, apperr.NewFetchFailed(sourceName, err)
	}

	slog.Debug("Fetched articles from api", "count", len(articles))
	return storage.Published(articles), nil
}

func (c *Client) Get(ctx context.Context, slug string) (domain.Article, error) {
	body, err := c.get(ctx, "/api/articles/"+url.PathEscape(slug))
	if err != nil {
		return domain.Article{}, err
	}
	defer body.Close()

	post, err := catalog.DecodePost(body)
	if err != nil {
		return domain.Article{}, apperr.NewFetchFailed(sourceName, err)
	}

	article, err := c.normalizer.Normalize(post)
	if err != nil {
		return domain.Article{}, apperr.NewFetchFailed(sourceName, err)
	}
	if !article.Published {
		return domain.Article{}, storage.ErrNotFound
	}
	return article, nil
}

// Healthy reports whether the API answers the article listing.
func (c *Client) Healthy(ctx context.Context) bool {
	body, err := c.get(ctx, "/api/articles")
	if err != nil {
		slog.Warn("Article API health check failed", "error", err)
		return false
	}
	_ = body.Close()
	return true
}

func (c *Client) get(ctx context.Context, path string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return nil, err
		}
		return nil, apperr.NewFetchFailed(sourceName, err)
	}

	if resp.StatusCode == http.StatusNotFound {
		resp.Body.Close()
		return nil, storage.ErrNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		resp.Body.Close()
		slog.Warn("Api returned non-success status", "path", path, "status", resp.StatusCode)
		return nil, apperr.NewFetchFailedStatus(sourceName, resp.StatusCode)
	}

	return resp.Body, nil
}

var _ storage.Reader = (*Client)(nil)
