package es

import (
	"github.com/elastic/go-elasticsearch/v8/typedapi/types"
	"github.com/google/uuid"
	"github.com/nikitaapatil/howtobangalore/internal/domain"
)

// Document is the indexed shape of an article. Position keeps catalog order.
type Document struct {
	ID            string `json:"id"`
	Position      int64  `json:"position"`
	Slug          string `json:"slug"`
	Title         string `json:"title"`
	Excerpt       string `json:"excerpt"`
	Content       string `json:"content"`
	Category      string `json:"category"`
	Subcategory   string `json:"subcategory"`
	Featured      bool   `json:"featured"`
	Published     bool   `json:"published"`
	ReadTime      string `json:"read_time"`
	PublishDate   string `json:"publish_date"`
	WordCount     int    `json:"word_count"`
	FeaturedImage string `json:"featured_image,omitempty"`
	Author        string `json:"author"`
}

func toDocument(a domain.Article, position int64) Document {
	id := a.ID.String()
	if id == "" {
		id = uuid.NewString()
	}
	return Document{
		ID:            id,
		Position:      position,
		Slug:          a.Slug,
		Title:         a.Title,
		Excerpt:       a.Excerpt,
		Content:       a.Content,
		Category:      a.Category,
		Subcategory:   a.Subcategory,
		Featured:      a.Featured,
		Published:     a.Published,
		ReadTime:      a.ReadTime,
		PublishDate:   a.PublishDate,
		WordCount:     a.WordCount,
		FeaturedImage: a.FeaturedImage,
		Author:        a.Author,
	}
}

func (d Document) toDomain() domain.Article {
	author := d.Author
	if author == "" {
		author = domain.ArticleDefaultAuthor
	}
	return domain.Article{
		ID:            domain.ArticleID(d.ID),
		Slug:          d.Slug,
		Title:         d.Title,
		Excerpt:       d.Excerpt,
		Content:       d.Content,
		Category:      d.Category,
		Subcategory:   d.Subcategory,
		Featured:      d.Featured,
		Published:     d.Published,
		ReadTime:      d.ReadTime,
		PublishDate:   d.PublishDate,
		WordCount:     d.WordCount,
		FeaturedImage: d.FeaturedImage,
		Author:        author,
	}
}

func buildMapping() types.TypeMapping {
	return types.TypeMapping{
		Properties: map[string]types.Property{
			"id":             types.NewKeywordProperty(),
			"position":       types.NewLongNumberProperty(),
			"slug":           types.NewKeywordProperty(),
			"title":          textWithKeyword(),
			"excerpt":        types.NewTextProperty(),
			"content":        types.NewTextProperty(),
			"category":       types.NewKeywordProperty(),
			"subcategory":    types.NewKeywordProperty(),
			"featured":       types.NewBooleanProperty(),
			"published":      types.NewBooleanProperty(),
			"read_time":      types.NewKeywordProperty(),
			"publish_date":   types.NewKeywordProperty(),
			"word_count":     types.NewIntegerNumberProperty(),
			"featured_image": types.NewKeywordProperty(),
			"author":         types.NewKeywordProperty(),
		},
	}
}

func textWithKeyword() types.Property {
	textProp := types.NewTextProperty()
	textProp.Fields = map[string]types.Property{
		"keyword": types.NewKeywordProperty(),
	}
	return textProp
}
