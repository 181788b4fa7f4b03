package ranking

import (
	"math"
	"testing"

	"github.com/hyperjump/storefront/internal/models"
)

func TestMatcher_Match(t *testing.T) {
	m := NewMatcher(nil, nil)

	tests := []struct {
		name      string
		text      string
		query     string
		wantKind  models.MatchKind
		wantScore float64
	}{
		{"empty text", "", "candle", models.MatchNone, 0},
		{"empty query", "Candles", "", models.MatchNone, 0},
		{"query normalizes to empty", "Candles", "!!!", models.MatchNone, 0},
		{"exact", "Candles", "candles", models.MatchExact, 150},
		{"exact ignores case and spacing", "  Tote   BAG ", "tote bag", models.MatchExact, 150},
		{"starts", "Crochet Flower Bouquet", "crochet", models.MatchStarts, 80},
		{"word", "Handmade Crochet", "crochet", models.MatchWord, 75},
		{"word-boundary", "Tote bag. Red", "bag.", models.MatchWordBoundary, 65},
		{"partial-word", "Aquarium Stand", "qua", models.MatchPartialWord, 55},
		{"contains", "Red Tote!bag", "totebag", models.MatchContains, 50},
		{"fuzzy", "Candles", "candel", models.MatchFuzzy, 30 * 5.0 / 7.0},
		{"multi-word half", "Lavender Soy Candle", "candle jar", models.MatchMultiWord, 20},
		{"none", "Candles", "xyz", models.MatchNone, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := m.Match(tt.text, tt.query)
			if got.Kind != tt.wantKind {
				t.Errorf("Match(%q, %q).Kind = %v, want %v", tt.text, tt.query, got.Kind, tt.wantKind)
			}
			if math.Abs(got.Score-tt.wantScore) > 1e-9 {
				t.Errorf("Match(%q, %q).Score = %v, want %v", tt.text, tt.query, got.Score, tt.wantScore)
			}
		})
	}
}

func TestMatcher_TypoSimilarity(t *testing.T) {
	m := NewMatcher(nil, nil)
	got := m.Match("Candles", "candel")
	if got.Kind != models.MatchFuzzy {
		t.Fatalf("kind = %v, want fuzzy", got.Kind)
	}
	if sim := m.Similarity("candles", "candel"); sim < 0.7 {
		t.Errorf("similarity = %v, want >= 0.7", sim)
	}
}

func TestMatcher_ExactDominates(t *testing.T) {
	m := NewMatcher(nil, nil)
	for _, text := range []string{"Candles", "Tote Bag", "Frames & Paintings", "crochet"} {
		exact := m.Match(text, text)
		if exact.Kind != models.MatchExact {
			t.Errorf("Match(%q, itself).Kind = %v, want exact", text, exact.Kind)
		}
		w := DefaultScoringWeights()
		if exact.Score <= w.ContainsScore || exact.Score <= w.FuzzyScore {
			t.Errorf("exact score %v does not dominate contains/fuzzy", exact.Score)
		}
	}
	if DefaultScoringWeights().StartsScore < DefaultScoringWeights().ContainsScore {
		t.Error("starts must score at least contains")
	}
}

func TestMatcher_RegexSafety(t *testing.T) {
	m := NewMatcher(nil, nil)
	inputs := []string{`(`, `[a-`, `\`, `.*`, `a|b`, `^$`, `{2}`, `?`, `a.b`}
	for _, q := range inputs {
		// Must not panic.
		_ = m.Match("a.b (c) [d] {e} f|g ^h$ \\i", q)
		_ = m.HasWordPrefix("a.b (c)", q)
	}
	if got := m.Match("a.b", "."); got.Kind == models.MatchNone {
		t.Errorf("Match(a.b, .) should match, got none")
	}
}

func TestMatcher_HasWordPrefix(t *testing.T) {
	m := NewMatcher(nil, nil)
	tests := []struct {
		text, term string
		want       bool
	}{
		{"Lavender Candle", "candle", true},
		{"Lavender Candles", "candle", true},
		{"Handbags", "bag", false},
		{"Tote Bag", "tote bag", true},
		{"", "x", false},
		{"x", "", false},
	}
	for _, tt := range tests {
		if got := m.HasWordPrefix(tt.text, tt.term); got != tt.want {
			t.Errorf("HasWordPrefix(%q, %q) = %v, want %v", tt.text, tt.term, got, tt.want)
		}
	}
}

func TestMatcher_CustomWeights(t *testing.T) {
	w := DefaultScoringWeights()
	w.ExactBonus = 2
	w.FuzzyThreshold = 0.9
	m := NewMatcher(w, nil)
	if got := m.Match("Candles", "candles"); got.Score != 200 {
		t.Errorf("exact with bonus 2 = %v, want 200", got.Score)
	}
	if got := m.Match("Candles", "candel"); got.Kind != models.MatchNone {
		t.Errorf("fuzzy threshold 0.9 should reject candel, got %v", got.Kind)
	}
}

func TestPatternCache_Reset(t *testing.T) {
	c := newPatternCache(2)
	a := c.get("a")
	c.get("b")
	if c.get("a") != a {
		t.Error("cached pattern should be reused")
	}
	c.get("c")
	if len(c.entries) != 1 {
		t.Errorf("cache should reset when full, has %d entries", len(c.entries))
	}
}
