package catalog

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/nikitaapatil/howtobangalore/internal/apperr"
	"github.com/nikitaapatil/howtobangalore/internal/domain"
)

// idNamespace scopes the name-based ids generated for posts without one, so
// a post keeps the same id across reads of the same file.
var idNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://howtobangalore.com/articles"))

type IDFunc func(p Post) domain.ArticleID

// SlugID derives a stable UUID from the post slug.
func SlugID(p Post) domain.ArticleID {
	return domain.ArticleID(uuid.NewSHA1(idNamespace, []byte(p.Slug)).String())
}

// RandomID assigns a fresh UUID.
func RandomID(Post) domain.ArticleID {
	return domain.ArticleID(uuid.NewString())
}

type Normalizer struct {
	markdown *MarkdownRenderer
	newID    IDFunc
}

type NormalizerOption func(*Normalizer)

func WithIDFunc(fn IDFunc) NormalizerOption {
	return func(n *Normalizer) {
		n.newID = fn
	}
}

func NewNormalizer(opts ...NormalizerOption) *Normalizer {
	n := &Normalizer{
		markdown: NewMarkdownRenderer(),
		newID:    SlugID,
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Normalize maps one post of either shape onto the canonical article,
// deriving the display fields the post does not carry.
func (n *Normalizer) Normalize(p Post) (domain.Article, error) {
	content := p.Content
	image := p.featuredImage()

	if strings.EqualFold(p.Format, FormatMarkdown) {
		rendered, err := n.markdown.Render(p.Content)
		if err != nil {
			return domain.Article{}, fmt.Errorf("post %q: %w", p.Title, err)
		}
		content = rendered
		if image == "" {
			image = FirstImage(rendered)
		}
	}

	if p.Slug == "" {
		p.Slug = Slug(p.Title)
	}
	if p.ID == "" {
		p.ID = n.newID(p)
	}

	article := domain.Article{
		ID:            p.ID,
		Slug:          p.Slug,
		Title:         strings.TrimSpace(p.Title),
		Excerpt:       p.Excerpt,
		Content:       content,
		Category:      strings.TrimSpace(p.Category),
		Subcategory:   strings.TrimSpace(p.Subcategory),
		Featured:      p.Featured,
		Published:     p.published(),
		ReadTime:      p.readTime(),
		PublishDate:   p.publishDate(),
		WordCount:     p.wordCount(),
		FeaturedImage: image,
		Author:        p.Author,
	}

	if article.WordCount == 0 || article.ReadTime == "" || article.Excerpt == "" {
		text := PlainText(content)
		if article.WordCount == 0 {
			article.WordCount = CountWords(text)
		}
		if article.ReadTime == "" {
			article.ReadTime = ReadTime(article.WordCount)
		}
		if article.Excerpt == "" {
			article.Excerpt = Excerpt(text)
		}
	}
	if article.Author == "" {
		article.Author = domain.ArticleDefaultAuthor
	}

	return article, nil
}

// NormalizeAll keeps the input order. Slugs generated from titles are made
// unique against every slug in the batch by appending -2, -3, ...; slugs
// set in the catalog are kept as written.
func (n *Normalizer) NormalizeAll(posts []Post) ([]domain.Article, error) {
	used := make(map[string]struct{}, len(posts))
	for _, p := range posts {
		if p.Slug != "" {
			used[p.Slug] = struct{}{}
		}
	}

	articles := make([]domain.Article, 0, len(posts))
	for i, p := range posts {
		if p.Slug == "" {
			p.Slug = uniqueSlug(Slug(p.Title), used)
		}
		a, err := n.Normalize(p)
		if err != nil {
			return nil, fmt.Errorf("failed to normalize post %d: %w", i, err)
		}
		articles = append(articles, a)
	}
	return articles, nil
}

func uniqueSlug(base string, used map[string]struct{}) string {
	slug := base
	for i := 2; ; i++ {
		if _, taken := used[slug]; !taken {
			break
		}
		slug = fmt.Sprintf("%s-%d", base, i)
	}
	used[slug] = struct{}{}
	return slug
}

// ValidateUnique rejects collections with duplicate ids or slugs.
func ValidateUnique(articles []domain.Article) error {
	ids := make(map[domain.ArticleID]int, len(articles))
	slugs := make(map[string]int, len(articles))
	for i, a := range articles {
		if prev, ok := ids[a.ID]; ok {
			return apperr.NewValidation(fmt.Sprintf("duplicate article id %q at positions %d and %d", a.ID, prev, i))
		}
		ids[a.ID] = i
		if a.Slug == "" {
			continue
		}
		if prev, ok := slugs[a.Slug]; ok {
			return apperr.NewValidation(fmt.Sprintf("duplicate article slug %q at positions %d and %d", a.Slug, prev, i))
		}
		slugs[a.Slug] = i
	}
	return nil
}

// Dedupe drops records whose id or slug was already seen, keeping the first.
func Dedupe(articles []domain.Article) []domain.Article {
	ids := make(map[domain.ArticleID]struct{}, len(articles))
	slugs := make(map[string]struct{}, len(articles))
	out := make([]domain.Article, 0, len(articles))
	for _, a := range articles {
		if _, ok := ids[a.ID]; ok {
			slog.Warn("Dropping article with duplicate id", "id", a.ID, "slug", a.Slug)
			continue
		}
		if _, ok := slugs[a.Slug]; ok && a.Slug != "" {
			slog.Warn("Dropping article with duplicate slug", "id", a.ID, "slug", a.Slug)
			continue
		}
		ids[a.ID] = struct{}{}
		if a.Slug != "" {
			slugs[a.Slug] = struct{}{}
		}
		out = append(out, a)
	}
	return out
}
