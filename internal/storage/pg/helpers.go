package pg

import (
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/nikitaapatil/howtobangalore/internal/domain"
)

const articleColumns = `id, slug, title, excerpt, content, category, subcategory, featured, published,
	read_time, publish_date, word_count, featured_image, author`

var copyColumns = []string{
	"id", "position", "slug", "title", "excerpt", "content", "category", "subcategory", "featured",
	"published", "read_time", "publish_date", "word_count", "featured_image", "author",
}

func scanArticle(row pgx.Row) (domain.Article, error) {
	var a domain.Article
	var id string
	var image *string

	if err := row.Scan(
		&id,
		&a.Slug,
		&a.Title,
		&a.Excerpt,
		&a.Content,
		&a.Category,
		&a.Subcategory,
		&a.Featured,
		&a.Published,
		&a.ReadTime,
		&a.PublishDate,
		&a.WordCount,
		&image,
		&a.Author,
	); err != nil {
		return domain.Article{}, fmt.Errorf("failed to scan article: %w", err)
	}

	a.ID = domain.ArticleID(id)
	if image != nil {
		a.FeaturedImage = *image
	}
	return a, nil
}

func copyRow(a domain.Article, position int64) []any {
	var image *string
	if a.FeaturedImage != "" {
		image = &a.FeaturedImage
	}
	author := a.Author
	if author == "" {
		author = domain.ArticleDefaultAuthor
	}
	return []any{
		a.ID.String(),
		position,
		a.Slug,
		a.Title,
		a.Excerpt,
		a.Content,
		a.Category,
		a.Subcategory,
		a.Featured,
		a.Published,
		a.ReadTime,
		a.PublishDate,
		a.WordCount,
		image,
		author,
	}
}
