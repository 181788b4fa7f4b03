package ranking

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// MaxQueryLength bounds normalized text, in characters.
const MaxQueryLength = 100

// disallowedChars matches anything outside the allow-list: ASCII word
// characters, whitespace, hyphen, apostrophe, period, and comma.
var disallowedChars = regexp.MustCompile(`[^\w\s\-'.,]`)

// Normalizer sanitizes raw text into the form every match and pattern is built from.
// The output is ASCII, lowercase, single-spaced, trimmed, and at most
// MaxQueryLength characters long. Normalize is idempotent.
type Normalizer struct {
	foldAccents bool
}

// NormalizerOption configures a Normalizer.
type NormalizerOption func(*Normalizer)

// WithAccentFolding strips diacritics before the allow-list is applied, so
// "Décor" becomes "decor" rather than "dcor".
func WithAccentFolding(enabled bool) NormalizerOption {
	return func(n *Normalizer) {
		n.foldAccents = enabled
	}
}

// NewNormalizer creates a Normalizer.
func NewNormalizer(opts ...NormalizerOption) *Normalizer {
	n := &Normalizer{}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

var defaultNormalizer = NewNormalizer()

// Normalize applies the default Normalizer (no accent folding).
func Normalize(raw string) string {
	return defaultNormalizer.Normalize(raw)
}

// Normalize returns the sanitized form of raw. Empty input yields "".
func (n *Normalizer) Normalize(raw string) string {
	if raw == "" {
		return ""
	}
	s := raw
	if n.foldAccents {
		s = foldAccents(s)
	}
	s = disallowedChars.ReplaceAllString(s, "")
	s = strings.Join(strings.Fields(s), " ")
	s = strings.ToLower(s)
	if len(s) > MaxQueryLength {
		// Only ASCII survives the allow-list, so a byte cut is a character cut.
		s = strings.TrimSpace(s[:MaxQueryLength])
	}
	return s
}

// foldAccents decomposes s, drops combining marks, and recomposes.
func foldAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return folded
}

// EscapeForPattern quotes every regular expression metacharacter in s.
// No pattern is ever compiled from text that has not passed through here.
func EscapeForPattern(s string) string {
	return regexp.QuoteMeta(s)
}
