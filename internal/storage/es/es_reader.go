package es

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types/enums/sortorder"
	"github.com/nikitaapatil/howtobangalore/internal/apperr"
	"github.com/nikitaapatil/howtobangalore/internal/domain"
	"github.com/nikitaapatil/howtobangalore/internal/storage"
)

// listPageSize is the number of hits fetched per search_after page.
const listPageSize = 1000

type Reader struct {
	client    *elasticsearch.TypedClient
	indexName string
	pageSize  int
}

func NewReader(config ClientConfig) (*Reader, error) {
	client, err := newClient(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create Elasticsearch client: %w", err)
	}

	return &Reader{
		client:    client,
		indexName: config.IndexName,
		pageSize:  listPageSize,
	}, nil
}

// List pages through the whole index in position order with search_after,
// so the collection is never cut at the result window.
func (r *Reader) List(ctx context.Context) ([]domain.Article, error) {
	var (
		articles = make([]domain.Article, 0)
		after    []types.FieldValue
		pages    int
	)
	for {
		page, last, err := r.search(ctx, publishedFilter(), r.pageSize, after)
		if err != nil {
			return nil, err
		}
		articles = append(articles, page...)
		pages++
		if len(page) < r.pageSize || last == nil {
			break
		}
		after = last
	}

	slog.Debug("Articles listed from elasticsearch", "count", len(articles), "pages", pages, "index", r.indexName)
	return articles, nil
}

func (r *Reader) Get(ctx context.Context, slug string) (domain.Article, error) {
	filter := append(publishedFilter(), types.Query{
		Term: map[string]types.TermQuery{"slug": {Value: slug}},
	})

	articles, _, err := r.search(ctx, filter, 1, nil)
	if err != nil {
		return domain.Article{}, err
	}
	if len(articles) == 0 {
		return domain.Article{}, storage.ErrNotFound
	}
	return articles[0], nil
}

// search returns one page of hits sorted by position and the sort values
// of the last hit, which continue the walk.
func (r *Reader) search(ctx context.Context, filter []types.Query, size int, after []types.FieldValue) ([]domain.Article, []types.FieldValue, error) {
	asc := sortorder.Asc
	req := r.client.Search().
		Index(r.indexName).
		Query(&types.Query{Bool: &types.BoolQuery{Filter: filter}}).
		Sort(&types.SortOptions{
			SortOptions: map[string]types.FieldSort{
				"position": {Order: &asc},
			},
		}).
		Size(size)
	if len(after) > 0 {
		req = req.SearchAfter(after...)
	}

	res, err := req.Do(ctx)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return nil, nil, err
		}
		slog.Error("Elasticsearch query failed", "error", err, "index", r.indexName)
		return nil, nil, apperr.NewFetchFailed(sourceName, err)
	}

	articles := make([]domain.Article, 0, len(res.Hits.Hits))
	for _, hit := range res.Hits.Hits {
		var doc Document
		if err := json.Unmarshal(hit.Source_, &doc); err != nil {
			return nil, nil, apperr.NewFetchFailed(sourceName, fmt.Errorf("failed to unmarshal document: %w", err))
		}
		articles = append(articles, doc.toDomain())
	}

	var last []types.FieldValue
	if n := len(res.Hits.Hits); n > 0 {
		last = res.Hits.Hits[n-1].Sort
	}
	return articles, last, nil
}

func publishedFilter() []types.Query {
	return []types.Query{{
		Term: map[string]types.TermQuery{"published": {Value: true}},
	}}
}

var _ storage.Reader = (*Reader)(nil)
