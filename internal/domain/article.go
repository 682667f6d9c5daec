package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

const ArticleDefaultAuthor = "Admin"

// ArticleID is either a legacy numeric id or an opaque string id.
// JSON input may carry it as a number or a string.
type ArticleID string

func (id *ArticleID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ArticleID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("article id must be a string or a number: %w", err)
	}
	*id = ArticleID(n.String())
	return nil
}

func (id ArticleID) String() string {
	return string(id)
}

// Int reports the numeric value of a legacy id.
func (id ArticleID) Int() (int64, bool) {
	n, err := strconv.ParseInt(strings.TrimSpace(string(id)), 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

type Article struct {
	ID            ArticleID `json:"id"`
	Slug          string    `json:"slug"`
	Title         string    `json:"title"`
	Excerpt       string    `json:"excerpt"`
	Content       string    `json:"content"`
	Category      string    `json:"category"`
	Subcategory   string    `json:"subcategory,omitempty"`
	Featured      bool      `json:"featured"`
	Published     bool      `json:"published"`
	ReadTime      string    `json:"read_time"`
	PublishDate   string    `json:"publish_date"`
	WordCount     int       `json:"word_count"`
	FeaturedImage string    `json:"featured_image,omitempty"`
	Author        string    `json:"author,omitempty"`
}

// Summary is the article card shown in listings; it never carries the body.
type Summary struct {
	ID            ArticleID `json:"id"`
	Slug          string    `json:"slug"`
	Title         string    `json:"title"`
	Excerpt       string    `json:"excerpt"`
	Category      string    `json:"category"`
	Subcategory   string    `json:"subcategory,omitempty"`
	Featured      bool      `json:"featured"`
	ReadTime      string    `json:"read_time"`
	PublishDate   string    `json:"publish_date"`
	FeaturedImage string    `json:"featured_image,omitempty"`
}

func (a Article) Summary() Summary {
	return Summary{
		ID:            a.ID,
		Slug:          a.Slug,
		Title:         a.Title,
		Excerpt:       a.Excerpt,
		Category:      a.Category,
		Subcategory:   a.Subcategory,
		Featured:      a.Featured,
		ReadTime:      a.ReadTime,
		PublishDate:   a.PublishDate,
		FeaturedImage: a.FeaturedImage,
	}
}

func Summaries(articles []Article) []Summary {
	out := make([]Summary, 0, len(articles))
	for _, a := range articles {
		out = append(out, a.Summary())
	}
	return out
}

type Subcategory struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// Category is derived from a collection, never stored.
type Category struct {
	Name          string        `json:"name"`
	Count         int           `json:"count"`
	Subcategories []Subcategory `json:"subcategories,omitempty"`
}

// Heading is a table of contents entry; Level is 2, 3 or 4.
type Heading struct {
	ID    string `json:"id"`
	Text  string `json:"text"`
	Level int    `json:"level"`
}
