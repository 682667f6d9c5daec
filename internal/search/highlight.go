package search

import (
	"html"
	"strings"
)

type Segment struct {
	Text  string `json:"text"`
	Match bool   `json:"match,omitempty"`
}

// Highlight splits text into plain and matching segments. Every
// case-insensitive, non-overlapping occurrence of query is a match segment
// carrying the original casing. A blank query yields one plain segment.
func Highlight(text, query string) []Segment {
	if text == "" {
		return nil
	}
	if strings.TrimSpace(query) == "" {
		return []Segment{{Text: text}}
	}

	// strings.ToLower maps rune to rune, so rune offsets into the folded
	// text are valid offsets into the original.
	orig := []rune(text)
	folded := []rune(strings.ToLower(text))
	needle := []rune(strings.ToLower(query))

	var (
		segments []Segment
		start    int
	)
	for i := 0; i+len(needle) <= len(folded); {
		if !hasPrefix(folded[i:], needle) {
			i++
			continue
		}
		if i > start {
			segments = append(segments, Segment{Text: string(orig[start:i])})
		}
		segments = append(segments, Segment{Text: string(orig[i : i+len(needle)]), Match: true})
		i += len(needle)
		start = i
	}
	if start < len(orig) {
		segments = append(segments, Segment{Text: string(orig[start:])})
	}
	return segments
}

// HighlightHTML renders Highlight as escaped HTML with <mark> around matches.
func HighlightHTML(text, query string) string {
	var b strings.Builder
	for _, s := range Highlight(text, query) {
		if s.Match {
			b.WriteString("<mark>")
			b.WriteString(html.EscapeString(s.Text))
			b.WriteString("</mark>")
			continue
		}
		b.WriteString(html.EscapeString(s.Text))
	}
	return b.String()
}

func hasPrefix(s, prefix []rune) bool {
	if len(prefix) > len(s) {
		return false
	}
	for i, r := range prefix {
		if s[i] != r {
			return false
		}
	}
	return true
}
