package ranking

import (
	"regexp"
	"strings"
	"sync"

	"github.com/hyperjump/storefront/internal/keyword"
	"github.com/hyperjump/storefront/internal/models"
)

// Matcher scores how well a query matches a piece of text. It is safe for
// concurrent use.
type Matcher struct {
	weights    *ScoringWeights
	normalizer *Normalizer
	patterns   *patternCache
}

// NewMatcher creates a Matcher. Nil arguments select the defaults.
func NewMatcher(weights *ScoringWeights, normalizer *Normalizer) *Matcher {
	if weights == nil {
		weights = DefaultScoringWeights()
	}
	if normalizer == nil {
		normalizer = defaultNormalizer
	}
	return &Matcher{
		weights:    weights,
		normalizer: normalizer,
		patterns:   newPatternCache(1024),
	}
}

// Match classifies the match of query against text. The first applicable
// kind wins: exact, starts, word, word-boundary/partial-word, contains,
// fuzzy, multi-word.
func (m *Matcher) Match(text, query string) models.FieldMatch {
	if text == "" || query == "" {
		return models.FieldMatch{Kind: models.MatchNone}
	}
	normText := m.normalizer.Normalize(text)
	normQuery := m.normalizer.Normalize(query)
	if normText == "" || normQuery == "" {
		return models.FieldMatch{Kind: models.MatchNone}
	}
	w := m.weights

	if normText == normQuery {
		return models.FieldMatch{Kind: models.MatchExact, Score: w.ExactScore * w.ExactBonus}
	}
	if strings.HasPrefix(normText, normQuery) {
		return models.FieldMatch{Kind: models.MatchStarts, Score: w.StartsScore}
	}

	p := m.patterns.get(normQuery)
	// Word patterns run against the original text; substring positions
	// are taken from the normalized text.
	if p.word.MatchString(text) {
		return models.FieldMatch{Kind: models.MatchWord, Score: w.WordScore}
	}
	if p.anywhere.MatchString(text) {
		if idx := strings.Index(normText, normQuery); idx != -1 {
			end := idx + len(normQuery)
			if (idx > 0 && isWordByte(normText[idx-1])) || (end < len(normText) && isWordByte(normText[end])) {
				return models.FieldMatch{Kind: models.MatchPartialWord, Score: w.PartialWordScore}
			}
			return models.FieldMatch{Kind: models.MatchWordBoundary, Score: w.WordBoundaryScore}
		}
	}
	if strings.Contains(normText, normQuery) {
		return models.FieldMatch{Kind: models.MatchContains, Score: w.ContainsScore}
	}

	if sim := keyword.Similarity(normText, normQuery); sim >= w.FuzzyThreshold {
		return models.FieldMatch{Kind: models.MatchFuzzy, Score: w.FuzzyScore * sim}
	}

	words := strings.Fields(normQuery)
	if len(words) > 1 {
		matched := 0
		for _, word := range words {
			if m.patterns.get(word).word.MatchString(text) ||
				strings.Contains(normText, word) ||
				keyword.Similarity(normText, word) >= w.FuzzyThreshold {
				matched++
			}
		}
		if matched > 0 {
			ratio := float64(matched) / float64(len(words))
			return models.FieldMatch{Kind: models.MatchMultiWord, Score: w.MultiWordScore * ratio}
		}
	}

	return models.FieldMatch{Kind: models.MatchNone}
}

// HasWordPrefix reports whether term starts a word somewhere in text
// (leading word boundary, case-insensitive).
func (m *Matcher) HasWordPrefix(text, term string) bool {
	if text == "" || term == "" {
		return false
	}
	return m.patterns.get(term).prefix.MatchString(text)
}

// Similarity is the normalized edit-distance similarity of two strings.
func (m *Matcher) Similarity(a, b string) float64 {
	return keyword.Similarity(a, b)
}

func isWordByte(b byte) bool {
	return b == '_' || ('0' <= b && b <= '9') || ('a' <= b && b <= 'z') || ('A' <= b && b <= 'Z')
}

// termPatterns are the compiled patterns for one escaped term.
type termPatterns struct {
	word     *regexp.Regexp // \bterm\b
	prefix   *regexp.Regexp // \bterm
	anywhere *regexp.Regexp // term
}

func compileTermPatterns(term string) *termPatterns {
	escaped := EscapeForPattern(term)
	return &termPatterns{
		word:     regexp.MustCompile(`(?i)\b` + escaped + `\b`),
		prefix:   regexp.MustCompile(`(?i)\b` + escaped),
		anywhere: regexp.MustCompile(`(?i)` + escaped),
	}
}

// patternCache memoizes compiled patterns. It is reset wholesale once full.
type patternCache struct {
	mu      sync.Mutex
	max     int
	entries map[string]*termPatterns
}

func newPatternCache(max int) *patternCache {
	return &patternCache{max: max, entries: make(map[string]*termPatterns)}
}

func (c *patternCache) get(term string) *termPatterns {
	c.mu.Lock()
	defer c.mu.Unlock()
	if p, ok := c.entries[term]; ok {
		return p
	}
	if len(c.entries) >= c.max {
		c.entries = make(map[string]*termPatterns)
	}
	p := compileTermPatterns(term)
	c.entries[term] = p
	return p
}
