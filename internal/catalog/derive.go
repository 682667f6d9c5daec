package catalog

import (
	"fmt"
	"math"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
)

const (
	wordsPerMinute   = 200
	excerptMaxLength = 150
	minSentenceLen   = 50
	excerptWords     = 20
	slugMaxWords     = 5
	fallbackSlug     = "article"
)

var (
	markdownMarks = regexp.MustCompile("[#*_`\\[\\]()!]")
	newlines      = regexp.MustCompile(`\n+`)
	slugStrip     = regexp.MustCompile(`[^a-z0-9\s-]`)
	hyphens       = regexp.MustCompile(`-+`)

	slugStopWords = map[string]struct{}{
		"the": {}, "a": {}, "an": {}, "and": {}, "or": {}, "but": {}, "in": {}, "on": {},
		"at": {}, "to": {}, "for": {}, "of": {}, "with": {}, "by": {}, "how": {}, "your": {},
	}
)

// PlainText returns the text content of an HTML fragment. Input that cannot
// be parsed is returned unchanged.
func PlainText(html string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return html
	}
	return doc.Text()
}

// FirstImage returns the src of the first <img> in an HTML fragment.
func FirstImage(html string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return ""
	}
	src, _ := doc.Find("img[src]").First().Attr("src")
	return src
}

func CountWords(text string) int {
	return len(strings.Fields(text))
}

// ReadTime renders the display read time for a word count.
func ReadTime(words int) string {
	minutes := int(math.Max(1, math.Round(float64(words)/wordsPerMinute)))
	return fmt.Sprintf("%d min read", minutes)
}

// Excerpt picks the first substantial sentence of a plain-text body, or
// falls back to its first words.
func Excerpt(text string) string {
	clean := markdownMarks.ReplaceAllString(text, "")
	clean = newlines.ReplaceAllString(clean, " ")
	clean = strings.TrimSpace(clean)

	for _, sentence := range strings.Split(clean, ".") {
		sentence = strings.TrimSpace(sentence)
		if utf8.RuneCountInString(sentence) <= minSentenceLen {
			continue
		}
		excerpt := []rune(sentence + ".")
		if len(excerpt) > excerptMaxLength {
			return string(excerpt[:excerptMaxLength-3]) + "..."
		}
		return string(excerpt)
	}

	words := strings.Fields(clean)
	if len(words) > excerptWords {
		words = words[:excerptWords]
	}
	return strings.Join(words, " ") + "..."
}

// Slug builds a keyword slug from a title: stop words and words of two
// letters or fewer are dropped and at most five words are kept.
func Slug(title string) string {
	s := strings.ToLower(title)
	s = slugStrip.ReplaceAllString(s, "")

	var keywords []string
	for _, word := range strings.Fields(s) {
		if _, stop := slugStopWords[word]; stop || len(word) <= 2 {
			continue
		}
		keywords = append(keywords, word)
		if len(keywords) == slugMaxWords {
			break
		}
	}

	s = strings.Join(keywords, "-")
	s = hyphens.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")
	if s == "" {
		return fallbackSlug
	}
	return s
}
