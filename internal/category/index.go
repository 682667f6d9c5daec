// Package category derives the category index from an article collection.
// Categories and subcategories keep first-appearance order.
package category

import (
	"github.com/nikitaapatil/howtobangalore/internal/domain"
)

func Build(articles []domain.Article) []domain.Category {
	var (
		out   []domain.Category
		index = make(map[string]int)
	)
	for _, a := range articles {
		if a.Category == "" {
			continue
		}
		i, ok := index[a.Category]
		if !ok {
			i = len(out)
			index[a.Category] = i
			out = append(out, domain.Category{Name: a.Category})
		}
		out[i].Count++
	}

	for i := range out {
		out[i].Subcategories = Subcategories(articles, out[i].Name)
	}
	return out
}

// Subcategories lists the subcategories used inside one category.
func Subcategories(articles []domain.Article, category string) []domain.Subcategory {
	var (
		out   []domain.Subcategory
		index = make(map[string]int)
	)
	for _, a := range articles {
		if a.Category != category || a.Subcategory == "" {
			continue
		}
		i, ok := index[a.Subcategory]
		if !ok {
			i = len(out)
			index[a.Subcategory] = i
			out = append(out, domain.Subcategory{Name: a.Subcategory})
		}
		out[i].Count++
	}
	return out
}

// Find returns one category of the index, or false when no article uses it.
func Find(articles []domain.Article, name string) (domain.Category, bool) {
	count := 0
	for _, a := range articles {
		if a.Category == name {
			count++
		}
	}
	if name == "" || count == 0 {
		return domain.Category{}, false
	}
	return domain.Category{
		Name:          name,
		Count:         count,
		Subcategories: Subcategories(articles, name),
	}, true
}

// InCategory keeps the articles of one category, in order.
func InCategory(articles []domain.Article, name string) []domain.Article {
	var out []domain.Article
	for _, a := range articles {
		if a.Category == name {
			out = append(out, a)
		}
	}
	return out
}
