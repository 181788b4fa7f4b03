package search

import (
	"html"
	"regexp"
	"strings"

	"github.com/hyperjump/storefront/internal/ranking"
	"github.com/hyperjump/storefront/pkg/utils"
)

// DefaultHighlightClass is the CSS class of highlight spans.
const DefaultHighlightClass = "search-highlight"

// Highlighter wraps query-word matches in text with <mark> spans.
type Highlighter struct {
	class      string
	normalizer *ranking.Normalizer
}

// NewHighlighter creates a Highlighter. An empty class selects
// DefaultHighlightClass; a nil normalizer the default one.
func NewHighlighter(class string, n *ranking.Normalizer) *Highlighter {
	if class == "" {
		class = DefaultHighlightClass
	}
	if n == nil {
		n = ranking.NewNormalizer()
	}
	return &Highlighter{class: html.EscapeString(class), normalizer: n}
}

var defaultHighlighter = NewHighlighter("", nil)

// Highlight wraps matches with the default class. See Highlighter.Highlight.
func Highlight(text, query string) string {
	return defaultHighlighter.Highlight(text, query)
}

// Highlight wraps every case-insensitive occurrence of a query word in text.
// text is inserted as is, so it must already be safe markup; use
// HighlightEscaped for untrusted text. Text comes back unchanged when the
// query is empty or matches nothing.
func (h *Highlighter) Highlight(text, query string) string {
	re := h.pattern(text, query)
	if re == nil {
		return text
	}
	return re.ReplaceAllStringFunc(text, h.wrap)
}

// HighlightEscaped is Highlight for untrusted text: the text around and
// inside every match is HTML-escaped.
func (h *Highlighter) HighlightEscaped(text, query string) string {
	re := h.pattern(text, query)
	if re == nil {
		return html.EscapeString(text)
	}
	var b strings.Builder
	last := 0
	for _, loc := range re.FindAllStringIndex(text, -1) {
		b.WriteString(html.EscapeString(text[last:loc[0]]))
		b.WriteString(h.wrap(html.EscapeString(text[loc[0]:loc[1]])))
		last = loc[1]
	}
	b.WriteString(html.EscapeString(text[last:]))
	return b.String()
}

// Snippet truncates text to maxLen runes and then highlights it with escaping.
func (h *Highlighter) Snippet(text, query string, maxLen int) string {
	return h.HighlightEscaped(utils.Truncate(text, maxLen), query)
}

func (h *Highlighter) wrap(s string) string {
	return `<mark class="` + h.class + `">` + s + `</mark>`
}

// pattern builds an alternation of the escaped query words, or nil when there
// is nothing to highlight.
func (h *Highlighter) pattern(text, query string) *regexp.Regexp {
	if text == "" || query == "" {
		return nil
	}
	words := strings.Fields(h.normalizer.Normalize(query))
	if len(words) == 0 {
		return nil
	}
	for i, w := range words {
		words[i] = ranking.EscapeForPattern(w)
	}
	re, err := regexp.Compile(`(?i)(` + strings.Join(words, "|") + `)`)
	if err != nil {
		return nil
	}
	return re
}
