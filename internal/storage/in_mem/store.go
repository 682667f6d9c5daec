package in_mem

import (
	"context"
	"log/slog"
	"sync"

	"github.com/nikitaapatil/howtobangalore/internal/domain"
	"github.com/nikitaapatil/howtobangalore/internal/storage"
)

type Store struct {
	storageLock sync.RWMutex
	articles    []domain.Article
}

func NewStore(articles ...domain.Article) *Store {
	return &Store{articles: append([]domain.Article(nil), articles...)}
}

func (s *Store) SaveBulk(ctx context.Context, articles []domain.Article) error {
	s.storageLock.Lock()
	defer s.storageLock.Unlock()

	s.articles = append(s.articles, articles...)
	slog.Info("Saved articles to in-memory storage", "count", len(articles), "total", len(s.articles))
	return nil
}

func (s *Store) Clear(ctx context.Context) error {
	s.storageLock.Lock()
	defer s.storageLock.Unlock()

	s.articles = nil
	return nil
}

func (s *Store) List(ctx context.Context) ([]domain.Article, error) {
	s.storageLock.RLock()
	defer s.storageLock.RUnlock()

	return storage.Published(s.articles), nil
}

func (s *Store) Get(ctx context.Context, slug string) (domain.Article, error) {
	articles, err := s.List(ctx)
	if err != nil {
		return domain.Article{}, err
	}
	return storage.FindBySlug(articles, slug)
}

var _ storage.Reader = (*Store)(nil)
var _ storage.Storer = (*Store)(nil)
