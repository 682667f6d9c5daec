package storage

import (
	"context"

	"github.com/nikitaapatil/howtobangalore/internal/domain"
)

type Storer interface {
	// SaveBulk appends the articles after the ones already stored, keeping
	// their order.
	SaveBulk(ctx context.Context, articles []domain.Article) error
	// Clear removes every stored article.
	Clear(ctx context.Context) error
}

type Type string

const (
	API   Type = "api"
	File  Type = "file"
	PG    Type = "pg"
	ES    Type = "es"
	Bolt  Type = "bolt"
	InMem Type = "in_mem"
)

var readerTypes = []Type{API, File, PG, ES, Bolt, InMem}
var storerTypes = []Type{PG, ES, Bolt, InMem}

func ReaderTypes() []Type { return readerTypes }
func StorerTypes() []Type { return storerTypes }

func (t Type) CanRead() bool  { return contains(readerTypes, t) }
func (t Type) CanStore() bool { return contains(storerTypes, t) }

func contains(types []Type, t Type) bool {
	for _, candidate := range types {
		if candidate == t {
			return true
		}
	}
	return false
}

type StorerError string

const (
	ErrUnsupportedStorer StorerError = "unsupported storage type: %s"
)

func (e StorerError) Error() string {
	return string(e)
}
