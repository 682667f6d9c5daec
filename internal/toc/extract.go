// Package toc builds the table of contents of an article body and tracks
// the heading the reader is in.
package toc

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/nikitaapatil/howtobangalore/internal/apperr"
	"github.com/nikitaapatil/howtobangalore/internal/domain"
)

const headingSelector = "h2, h3, h4"

// emptyAnchor stands in for headings whose text has no [a-z0-9] characters.
const emptyAnchor = "section"

// Extract returns the h2-h4 headings of body in document order. It never
// fails: input that cannot be parsed yields no headings.
func Extract(body string) []domain.Heading {
	doc, err := parse(body)
	if err != nil {
		slog.Warn("Heading extraction skipped", "error", err)
		return nil
	}

	var headings []domain.Heading
	doc.Find(headingSelector).Each(func(i int, s *goquery.Selection) {
		text := strings.TrimSpace(s.Text())
		headings = append(headings, domain.Heading{
			ID:    AnchorID(text, i),
			Text:  text,
			Level: level(s),
		})
	})
	return headings
}

// AnchorID lower-cases text, collapses every run of characters outside
// [a-z0-9] into one hyphen, trims hyphens and appends -index.
func AnchorID(text string, index int) string {
	var b strings.Builder
	pendingHyphen := false
	for _, r := range strings.ToLower(text) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
			continue
		}
		pendingHyphen = true
	}

	base := b.String()
	if base == "" {
		base = emptyAnchor
	}
	return base + "-" + strconv.Itoa(index)
}

// AssignIDs writes each heading id onto the first element of the rendered
// body with the same level and text that has no id assigned yet, and
// returns the resulting HTML. Headings without a matching element are
// skipped.
func AssignIDs(body string, headings []domain.Heading) (string, error) {
	if len(headings) == 0 {
		return body, nil
	}

	doc, err := parse(body)
	if err != nil {
		return body, err
	}

	elements := doc.Find(headingSelector)
	assigned := make([]bool, elements.Length())

	for _, h := range headings {
		elements.EachWithBreak(func(i int, s *goquery.Selection) bool {
			if assigned[i] || level(s) != h.Level || strings.TrimSpace(s.Text()) != h.Text {
				return true
			}
			s.SetAttr("id", h.ID)
			assigned[i] = true
			return false
		})
	}

	out, err := doc.Find("body").Html()
	if err != nil {
		return body, fmt.Errorf("%w: %w", apperr.ErrParseFailed, err)
	}
	return out, nil
}

func parse(body string) (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", apperr.ErrParseFailed, err)
	}
	return doc, nil
}

func level(s *goquery.Selection) int {
	switch goquery.NodeName(s) {
	case "h2":
		return 2
	case "h3":
		return 3
	default:
		return 4
	}
}
