package bolt

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/nikitaapatil/howtobangalore/internal/apperr"
	"github.com/nikitaapatil/howtobangalore/internal/domain"
	"github.com/nikitaapatil/howtobangalore/internal/storage"
	bolt "go.etcd.io/bbolt"
)

const sourceName = "bolt"

var (
	bArticles = []byte("articles")
	bSlugs    = []byte("slugs")
)

type Options struct {
	Path    string
	Timeout time.Duration
}

// Store keeps articles in a single bbolt file. Keys in the articles bucket
// are big-endian sequence numbers so a cursor walk yields insertion order.
type Store struct {
	db *bolt.DB
}

func Open(opt Options) (*Store, error) {
	if opt.Path == "" {
		return nil, errors.New("bolt: missing path")
	}
	if opt.Timeout <= 0 {
		opt.Timeout = time.Second
	}
	if err := os.MkdirAll(filepath.Dir(opt.Path), 0o755); err != nil {
		return nil, err
	}

	db, err := bolt.Open(opt.Path, 0o600, &bolt.Options{Timeout: opt.Timeout})
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt db: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists(bArticles); err != nil {
			return err
		}
		_, err := tx.CreateBucketIfNotExists(bSlugs)
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create buckets: %w", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *Store) List(ctx context.Context) ([]domain.Article, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var articles []domain.Article
	err := s.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(bArticles).ForEach(func(_, v []byte) error {
			var a domain.Article
			if err := json.Unmarshal(v, &a); err != nil {
				return err
			}
			if a.Published {
				articles = append(articles, a)
			}
			return nil
		})
	})
	if err != nil {
		return nil, apperr.NewFetchFailed(sourceName, err)
	}
	return articles, nil
}

func (s *Store) Get(ctx context.Context, slug string) (domain.Article, error) {
	if err := ctx.Err(); err != nil {
		return domain.Article{}, err
	}

	var (
		a     domain.Article
		found bool
	)
	err := s.db.View(func(tx *bolt.Tx) error {
		key := tx.Bucket(bSlugs).Get([]byte(slug))
		if key == nil {
			return nil
		}
		v := tx.Bucket(bArticles).Get(key)
		if v == nil {
			return nil
		}
		found = true
		return json.Unmarshal(v, &a)
	})
	if err != nil {
		return domain.Article{}, apperr.NewFetchFailed(sourceName, err)
	}
	if !found || !a.Published {
		return domain.Article{}, storage.ErrNotFound
	}
	return a, nil
}

func (s *Store) SaveBulk(ctx context.Context, articles []domain.Article) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return s.db.Update(func(tx *bolt.Tx) error {
		ab := tx.Bucket(bArticles)
		sb := tx.Bucket(bSlugs)
		for _, a := range articles {
			seq, err := ab.NextSequence()
			if err != nil {
				return err
			}
			key := seqKey(seq)

			v, err := json.Marshal(a)
			if err != nil {
				return fmt.Errorf("failed to marshal article %s: %w", a.ID, err)
			}
			if err := ab.Put(key, v); err != nil {
				return err
			}
			if a.Slug == "" {
				continue
			}
			if err := sb.Put([]byte(a.Slug), key); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *Store) Clear(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return s.db.Update(func(tx *bolt.Tx) error {
		for _, name := range [][]byte{bArticles, bSlugs} {
			if err := tx.DeleteBucket(name); err != nil && !errors.Is(err, bolt.ErrBucketNotFound) {
				return err
			}
			if _, err := tx.CreateBucket(name); err != nil {
				return err
			}
		}
		return nil
	})
}

func seqKey(seq uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, seq)
	return b
}

var (
	_ storage.Reader = (*Store)(nil)
	_ storage.Storer = (*Store)(nil)
)

func (s *Store) Healthy(ctx context.Context) bool {
	return s.db.View(func(tx *bolt.Tx) error {
		if tx.Bucket(bArticles) == nil {
			return bolt.ErrBucketNotFound
		}
		return nil
	}) == nil
}
