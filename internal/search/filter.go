// Package search filters an article collection by free text and category
// and marks query occurrences for display.
package search

import (
	"net/url"
	"strings"

	"github.com/nikitaapatil/howtobangalore/internal/domain"
)

// ParseQuery reads the q and category parameters. A missing category means
// domain.CategoryAll.
func ParseQuery(values url.Values) domain.SearchQuery {
	return domain.SearchQuery{
		Text:     values.Get("q"),
		Category: values.Get("category"),
	}.WithDefaults()
}

// Filter keeps the articles matching both conditions, in collection order.
func Filter(articles []domain.Article, q domain.SearchQuery) []domain.Article {
	out := make([]domain.Article, 0, len(articles))
	needle := strings.ToLower(q.Text)
	for _, a := range articles {
		if q.HasCategory() && a.Category != q.Category {
			continue
		}
		if q.HasText() && !matchesText(a, needle) {
			continue
		}
		out = append(out, a)
	}
	return out
}

// Matches reports whether one article satisfies the query.
func Matches(a domain.Article, q domain.SearchQuery) bool {
	if q.HasCategory() && a.Category != q.Category {
		return false
	}
	return !q.HasText() || matchesText(a, strings.ToLower(q.Text))
}

// matchesText is a literal substring test; the body is matched as raw HTML.
func matchesText(a domain.Article, needle string) bool {
	return strings.Contains(strings.ToLower(a.Title), needle) ||
		strings.Contains(strings.ToLower(a.Excerpt), needle) ||
		strings.Contains(strings.ToLower(a.Content), needle)
}

// Categories lists the distinct non-empty categories for the filter select.
func Categories(articles []domain.Article) []string {
	var (
		out  []string
		seen = make(map[string]struct{})
	)
	for _, a := range articles {
		if a.Category == "" {
			continue
		}
		if _, ok := seen[a.Category]; ok {
			continue
		}
		seen[a.Category] = struct{}{}
		out = append(out, a.Category)
	}
	return out
}
