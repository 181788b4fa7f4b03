package ranking

import (
	"strings"

	"github.com/hyperjump/storefront/internal/models"
	"github.com/hyperjump/storefront/internal/synonyms"
)

// QueryAnalyzer turns a raw query into an AnalyzedQuery.
type QueryAnalyzer struct {
	normalizer *Normalizer
	expander   *synonyms.Expander
	resolver   CategoryResolver
}

// NewQueryAnalyzer creates a QueryAnalyzer. Nil normalizer or expander select
// the defaults; a nil resolver leaves intent ids unresolved.
func NewQueryAnalyzer(normalizer *Normalizer, expander *synonyms.Expander, resolver CategoryResolver) *QueryAnalyzer {
	if normalizer == nil {
		normalizer = defaultNormalizer
	}
	if expander == nil {
		expander = synonyms.NewExpander(nil)
	}
	return &QueryAnalyzer{normalizer: normalizer, expander: expander, resolver: resolver}
}

// Normalizer returns the normalizer the analyzer uses.
func (qa *QueryAnalyzer) Normalizer() *Normalizer {
	return qa.normalizer
}

// Analyze normalizes raw and derives its words, synonym expansion, and intent.
// A query that normalizes to "" yields an empty AnalyzedQuery.
func (qa *QueryAnalyzer) Analyze(raw string) *AnalyzedQuery {
	q := &AnalyzedQuery{
		Raw:        raw,
		Normalized: qa.normalizer.Normalize(raw),
		Words:      []string{},
		Expanded:   []string{},
		Intent:     &models.SearchIntent{Categories: []string{}, Synonyms: []string{}, Keywords: []string{}},
		intentIDs:  map[string]struct{}{},
	}
	if q.Normalized == "" {
		return q
	}

	q.Words = strings.Fields(q.Normalized)
	q.Expanded = qa.expander.ExpandQuery(q.Normalized)
	q.Intent = qa.expander.Intent(q.Normalized)

	for _, id := range q.Intent.Categories {
		q.intentIDs[id] = struct{}{}
		if qa.resolver == nil {
			continue
		}
		if cat, ok := qa.resolver.ResolveCategory(models.CategoryByID(id)); ok {
			q.intentIDs[cat.ID] = struct{}{}
		}
	}

	if len(q.Words) > 1 {
		q.WordSynonyms = make(map[string][]string, len(q.Words))
		for _, w := range q.Words {
			q.WordSynonyms[w] = qa.expander.Synonyms(w)
		}
	}
	return q
}
