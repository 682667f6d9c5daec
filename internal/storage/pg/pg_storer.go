package pg

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikitaapatil/howtobangalore/internal/domain"
	"github.com/nikitaapatil/howtobangalore/internal/storage"
)

type Storer struct {
	db *pgxpool.Pool
}

func NewStorer(pool *ConnectionPool) (*Storer, error) {
	return &Storer{db: pool.db}, nil
}

func (s *Storer) SaveBulk(ctx context.Context, articles []domain.Article) error {
	if len(articles) == 0 {
		return nil
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	var next int64
	if err := tx.QueryRow(ctx, `SELECT COALESCE(MAX(position) + 1, 0) FROM articles`).Scan(&next); err != nil {
		return fmt.Errorf("failed to read next position: %w", err)
	}

	rows := make([][]any, len(articles))
	for i, a := range articles {
		rows[i] = copyRow(a, next+int64(i))
	}

	n, err := tx.CopyFrom(ctx, pgx.Identifier{"articles"}, copyColumns, pgx.CopyFromRows(rows))
	if err != nil {
		return fmt.Errorf("failed to bulk insert articles: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit articles: %w", err)
	}

	slog.Info("Saved articles to pg", "count", n, "first_position", next)
	return nil
}

func (s *Storer) Clear(ctx context.Context) error {
	if _, err := s.db.Exec(ctx, "TRUNCATE TABLE articles"); err != nil {
		return fmt.Errorf("failed to clear articles: %w", err)
	}
	return nil
}

var _ storage.Storer = (*Storer)(nil)
