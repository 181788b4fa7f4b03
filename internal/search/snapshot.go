package search

import (
	"fmt"
	"strings"
	"time"

	"github.com/hyperjump/storefront/internal/catalogue"
	"github.com/hyperjump/storefront/internal/keyword"
	"github.com/hyperjump/storefront/internal/ranking"
	"github.com/hyperjump/storefront/internal/synonyms"
)

// spellCacheSize bounds the per-snapshot memo of spelling suggestions.
const spellCacheSize = 512

// Snapshot bundles one catalogue with everything derived from it. A Snapshot
// is immutable; reloading builds a new one and swaps it into the Engine.
type Snapshot struct {
	Catalogue *catalogue.Index
	Ranker    *ranking.Ranker
	// Spell is nil when spell checking is disabled.
	Spell *keyword.SpellChecker
	// VocabularySize is the number of distinct catalogue terms.
	VocabularySize int
	Source         string
	LoadedAt       time.Time
}

// SnapshotOption configures NewSnapshot.
type SnapshotOption func(*snapshotOptions)

type snapshotOptions struct {
	weights     *ranking.ScoringWeights
	tables      *synonyms.Tables
	foldAccents bool
	spellCheck  bool
	source      string
}

// WithWeights sets the scoring weights. Nil means the defaults.
func WithWeights(w *ranking.ScoringWeights) SnapshotOption {
	return func(o *snapshotOptions) {
		o.weights = w
	}
}

// WithSynonymTables replaces the built-in synonym tables.
func WithSynonymTables(t *synonyms.Tables) SnapshotOption {
	return func(o *snapshotOptions) {
		o.tables = t
	}
}

// WithAccentFolding strips diacritics during normalization.
func WithAccentFolding(enabled bool) SnapshotOption {
	return func(o *snapshotOptions) {
		o.foldAccents = enabled
	}
}

// WithSpellCheck enables the catalogue vocabulary and "did you mean" suggestions.
func WithSpellCheck(enabled bool) SnapshotOption {
	return func(o *snapshotOptions) {
		o.spellCheck = enabled
	}
}

// WithSource records where the catalogue came from.
func WithSource(source string) SnapshotOption {
	return func(o *snapshotOptions) {
		o.source = source
	}
}

// NewSnapshot derives the ranker and, optionally, the spell checker from idx.
func NewSnapshot(idx *catalogue.Index, opts ...SnapshotOption) (*Snapshot, error) {
	if idx == nil {
		return nil, fmt.Errorf("snapshot requires a catalogue index")
	}
	o := &snapshotOptions{spellCheck: true}
	for _, opt := range opts {
		opt(o)
	}

	weights := o.weights
	if weights != nil {
		// The ranker keeps the pointer; later edits to the caller's copy must not leak in.
		w := *weights
		weights = &w
	}
	normalizer := ranking.NewNormalizer(ranking.WithAccentFolding(o.foldAccents))
	ranker := ranking.NewRanker(weights, idx,
		ranking.WithNormalizer(normalizer),
		ranking.WithExpander(synonyms.NewExpander(o.tables)),
	)

	s := &Snapshot{
		Catalogue: idx,
		Ranker:    ranker,
		Source:    o.source,
		LoadedAt:  time.Now(),
	}
	if o.spellCheck {
		vocab, err := keyword.BuildVocabulary(vocabularyDocs(idx, normalizer))
		if err != nil {
			return nil, fmt.Errorf("failed to build vocabulary: %w", err)
		}
		s.VocabularySize = vocab.Len()
		s.Spell = keyword.NewSpellChecker(vocab,
			keyword.WithTranspositions(true),
			keyword.WithSuggestionCache(spellCacheSize),
		)
	}
	return s, nil
}

// vocabularyDocs returns one document per catalogue entity, normalized the
// same way queries are so corrections line up with matching.
func vocabularyDocs(idx *catalogue.Index, n *ranking.Normalizer) []string {
	products := idx.Products()
	categories := idx.Categories()
	docs := make([]string, 0, len(products)+len(categories))
	for _, p := range products {
		parts := []string{p.Title, p.Description}
		parts = append(parts, p.Tags...)
		parts = append(parts, p.Keywords...)
		docs = append(docs, normalizeAll(n, parts))
	}
	for _, c := range categories {
		parts := []string{c.Name, c.Description}
		parts = append(parts, c.Keywords...)
		docs = append(docs, normalizeAll(n, parts))
	}
	return docs
}

// normalizeAll normalizes each part separately, since normalization caps
// its output length.
func normalizeAll(n *ranking.Normalizer, parts []string) string {
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := n.Normalize(p); s != "" {
			out = append(out, s)
		}
	}
	return strings.Join(out, " ")
}
