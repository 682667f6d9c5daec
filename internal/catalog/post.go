package catalog

import "github.com/nikitaapatil/howtobangalore/internal/domain"

const (
	FormatHTML     = "html"
	FormatMarkdown = "markdown"
)

// Post is one article record as found in either source shape. The nested
// mock catalogs use camelCase names, the API uses snake_case; both are
// accepted and the snake_case value wins when both are set.
type Post struct {
	ID          domain.ArticleID `json:"id"`
	Slug        string           `json:"slug"`
	Title       string           `json:"title"`
	Excerpt     string           `json:"excerpt"`
	Content     string           `json:"content"`
	Format      string           `json:"format,omitempty"`
	Category    string           `json:"category"`
	Subcategory string           `json:"subcategory"`
	Featured    bool             `json:"featured"`
	Published   *bool            `json:"published,omitempty"`
	Author      string           `json:"author,omitempty"`

	ReadTime            string `json:"read_time"`
	ReadTimeLegacy      string `json:"readTime,omitempty"`
	PublishDate         string `json:"publish_date"`
	PublishDateLegacy   string `json:"publishDate,omitempty"`
	WordCount           int    `json:"word_count"`
	WordCountLegacy     int    `json:"wordCount,omitempty"`
	FeaturedImage       string `json:"featured_image,omitempty"`
	FeaturedImageLegacy string `json:"featuredImage,omitempty"`
}

func (p Post) readTime() string {
	return firstNonEmpty(p.ReadTime, p.ReadTimeLegacy)
}

func (p Post) publishDate() string {
	return firstNonEmpty(p.PublishDate, p.PublishDateLegacy)
}

func (p Post) featuredImage() string {
	return firstNonEmpty(p.FeaturedImage, p.FeaturedImageLegacy)
}

func (p Post) wordCount() int {
	if p.WordCount > 0 {
		return p.WordCount
	}
	return p.WordCountLegacy
}

func (p Post) published() bool {
	if p.Published == nil {
		return true
	}
	return *p.Published
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
