package resolver

import (
	"strconv"
	"strings"

	"github.com/nikitaapatil/howtobangalore/internal/domain"
)

// RelatedLimit caps the related articles shown under an article.
const RelatedLimit = 3

type Method int

const (
	NotFound Method = iota
	FoundBySlug
	FoundByID
)

func (m Method) String() string {
	switch m {
	case FoundBySlug:
		return "slug"
	case FoundByID:
		return "id"
	default:
		return "not_found"
	}
}

type Outcome struct {
	Method  Method
	Article domain.Article
}

func (o Outcome) Found() bool {
	return o.Method != NotFound
}

// Resolve runs the lookup chain over a collection: exact slug, then legacy
// numeric id, then not found. The first match in collection order wins.
func Resolve(articles []domain.Article, identifier string) Outcome {
	if identifier == "" {
		return Outcome{Method: NotFound}
	}

	for _, a := range articles {
		if a.Slug != "" && a.Slug == identifier {
			return Outcome{Method: FoundBySlug, Article: a}
		}
	}

	n, err := strconv.ParseInt(strings.TrimSpace(identifier), 10, 64)
	if err != nil {
		return Outcome{Method: NotFound}
	}
	for _, a := range articles {
		if a.ID.String() == identifier {
			return Outcome{Method: FoundByID, Article: a}
		}
		if id, ok := a.ID.Int(); ok && id == n {
			return Outcome{Method: FoundByID, Article: a}
		}
	}

	return Outcome{Method: NotFound}
}

// Related returns other published articles in the same category, in
// collection order, capped at limit.
func Related(articles []domain.Article, primary domain.Article, limit int) []domain.Article {
	if primary.Category == "" || limit <= 0 {
		return nil
	}

	var out []domain.Article
	for _, a := range articles {
		if !a.Published || a.Category != primary.Category || a.ID == primary.ID {
			continue
		}
		out = append(out, a)
		if len(out) == limit {
			break
		}
	}
	return out
}
