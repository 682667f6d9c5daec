package pg

import (
	"context"
	"errors"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikitaapatil/howtobangalore/internal/apperr"
	"github.com/nikitaapatil/howtobangalore/internal/domain"
	"github.com/nikitaapatil/howtobangalore/internal/storage"
)

const sourceName = "pg"

type Reader struct {
	db *pgxpool.Pool
}

func NewReader(pool *ConnectionPool) (*Reader, error) {
	return &Reader{db: pool.db}, nil
}

func (r *Reader) List(ctx context.Context) ([]domain.Article, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+articleColumns+`
		FROM articles
		WHERE published
		ORDER BY position ASC
	`)
	if err != nil {
		return nil, apperr.NewFetchFailed(sourceName, err)
	}
	defer rows.Close()

	articles := make([]domain.Article, 0)
	for rows.Next() {
		a, err := scanArticle(rows)
		if err != nil {
			return nil, apperr.NewFetchFailed(sourceName, err)
		}
		articles = append(articles, a)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.NewFetchFailed(sourceName, err)
	}

	slog.Debug("Listed articles from pg", "count", len(articles))
	return articles, nil
}

func (r *Reader) Get(ctx context.Context, slug string) (domain.Article, error) {
	row := r.db.QueryRow(ctx, `
		SELECT `+articleColumns+`
		FROM articles
		WHERE slug = $1 AND published
	`, slug)

	a, err := scanArticle(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Article{}, storage.ErrNotFound
	}
	if err != nil {
		return domain.Article{}, apperr.NewFetchFailed(sourceName, err)
	}
	return a, nil
}

var _ storage.Reader = (*Reader)(nil)
