package domain

import "strings"

// CategoryAll disables the category constraint of a SearchQuery.
const CategoryAll = "all"

// SearchQuery is a pure filter over an article collection, sourced from the
// q and category URL parameters.
type SearchQuery struct {
	Text     string `json:"q" query:"q"`
	Category string `json:"category" query:"category"`
}

// HasText reports whether the free-text condition constrains anything.
// Whitespace-only text matches every article.
func (q SearchQuery) HasText() bool {
	return strings.TrimSpace(q.Text) != ""
}

// HasCategory reports whether the category condition constrains anything.
func (q SearchQuery) HasCategory() bool {
	return q.Category != "" && q.Category != CategoryAll
}

// WithDefaults returns a copy with the category defaulted to CategoryAll.
func (q SearchQuery) WithDefaults() SearchQuery {
	if q.Category == "" {
		q.Category = CategoryAll
	}
	return q
}
