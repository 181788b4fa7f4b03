// Package ranking implements query normalization, fuzzy matching, and
// relevance scoring of catalogue products and categories.
package ranking

import (
	"github.com/hyperjump/storefront/internal/models"
)

// CategoryResolver resolves a product's category reference.
type CategoryResolver interface {
	ResolveCategory(ref models.CategoryRef) (*models.Category, bool)
}

// AnalyzedQuery holds everything derived from one raw query. It is built per
// search call and never reused across calls.
type AnalyzedQuery struct {
	// Raw is the query as the caller supplied it.
	Raw string
	// Normalized is the sanitized query used for all matching.
	Normalized string
	// Words are the space-separated words of Normalized.
	Words []string
	// Expanded is the synonym expansion of Normalized.
	Expanded []string
	// WordSynonyms maps each word to its synonyms; only filled for multi-word queries.
	WordSynonyms map[string][]string
	// Intent is the keyword-table intent of Normalized.
	Intent *models.SearchIntent

	// intentIDs holds intent categories plus the catalogue ids they resolve to.
	intentIDs map[string]struct{}
}

// Empty reports whether the query normalized to nothing.
func (q *AnalyzedQuery) Empty() bool {
	return q == nil || q.Normalized == ""
}

// IntendsCategory reports whether categoryID is one of the intended categories.
func (q *AnalyzedQuery) IntendsCategory(categoryID string) bool {
	if q == nil || categoryID == "" {
		return false
	}
	_, ok := q.intentIDs[categoryID]
	return ok
}

// ProductScore is the outcome of scoring one product.
type ProductScore struct {
	Total         float64
	TitleMatch    models.FieldMatch
	CategoryMatch models.FieldMatch
	IntentMatch   bool
	// CategoryID is the resolved category id, or the raw id when unresolved.
	CategoryID string
}

// CategoryScore is the outcome of scoring one category.
type CategoryScore struct {
	Total       float64
	NameMatch   models.FieldMatch
	IntentMatch bool
}
