package ranking

import (
	"cmp"
	"slices"
	"strings"

	"github.com/hyperjump/storefront/internal/models"
	"github.com/hyperjump/storefront/internal/synonyms"
	"github.com/hyperjump/storefront/pkg/utils"
)

// Ranker scores, filters, sorts, and truncates catalogue entities for one query.
type Ranker struct {
	weights  *ScoringWeights
	analyzer *QueryAnalyzer
	matcher  *Matcher
	scorer   *Scorer
}

// RankerOption configures a Ranker.
type RankerOption func(*rankerOptions)

type rankerOptions struct {
	normalizer *Normalizer
	expander   *synonyms.Expander
}

// WithNormalizer sets the normalizer used for queries and field text.
func WithNormalizer(n *Normalizer) RankerOption {
	return func(o *rankerOptions) {
		o.normalizer = n
	}
}

// WithExpander sets the synonym expander used for intent and expansion.
func WithExpander(e *synonyms.Expander) RankerOption {
	return func(o *rankerOptions) {
		o.expander = e
	}
}

// NewRanker creates a Ranker. Nil weights select the defaults; non-nil
// weights are used as given, zeros included.
func NewRanker(weights *ScoringWeights, resolver CategoryResolver, opts ...RankerOption) *Ranker {
	if weights == nil {
		weights = DefaultScoringWeights()
	}

	o := &rankerOptions{}
	for _, opt := range opts {
		opt(o)
	}
	if o.normalizer == nil {
		o.normalizer = defaultNormalizer
	}

	matcher := NewMatcher(weights, o.normalizer)
	return &Ranker{
		weights:  weights,
		analyzer: NewQueryAnalyzer(o.normalizer, o.expander, resolver),
		matcher:  matcher,
		scorer:   NewScorer(weights, matcher, resolver),
	}
}

// Weights returns the scoring policy in use.
func (r *Ranker) Weights() *ScoringWeights {
	return r.weights
}

// Matcher returns the fuzzy matcher in use.
func (r *Ranker) Matcher() *Matcher {
	return r.matcher
}

// Scorer returns the scorer in use.
func (r *Ranker) Scorer() *Scorer {
	return r.scorer
}

// Analyze parses and analyzes a raw query.
func (r *Ranker) Analyze(raw string) *AnalyzedQuery {
	return r.analyzer.Analyze(raw)
}

// MatchingCategories returns the ids of categories whose name or slug
// overlaps the query textually, plus every intended category.
func (r *Ranker) MatchingCategories(categories []*models.Category, q *AnalyzedQuery) map[string]struct{} {
	out := make(map[string]struct{})
	if q.Empty() {
		return out
	}
	minLen := r.weights.CategoryOverlapMinLength
	for _, c := range categories {
		if overlaps(strings.ToLower(c.Name), q.Normalized, minLen) ||
			overlaps(strings.ToLower(c.Slug), q.Normalized, minLen) ||
			q.IntendsCategory(c.ID) {
			out[c.ID] = struct{}{}
		}
	}
	return out
}

// RankProducts scores every product, adds the category boost for products in
// a matching category, drops those below minScore, sorts, and keeps at most limit.
func (r *Ranker) RankProducts(products []*models.Product, categories []*models.Category, q *AnalyzedQuery, minScore float64, limit int) []*models.ScoredProduct {
	results := []*models.ScoredProduct{}
	if q.Empty() || limit <= 0 {
		return results
	}

	matching := r.MatchingCategories(categories, q)
	for _, p := range products {
		s := r.scorer.ScoreProduct(p, q)
		score := s.Total
		_, boosted := matching[s.CategoryID]
		boosted = boosted && s.CategoryID != ""
		if boosted {
			score = utils.Round2(score + r.weights.CategoryBoost)
		}
		if score < minScore {
			continue
		}
		results = append(results, &models.ScoredProduct{
			Product:        p,
			RelevanceScore: score,
			MatchDetails: models.MatchDetails{
				TitleMatch:    s.TitleMatch,
				CategoryMatch: s.CategoryMatch,
				IntentMatch:   s.IntentMatch,
				CategoryBoost: boosted,
			},
		})
	}

	SortScoredProducts(results)
	return truncate(results, limit)
}

// RankCategories scores every category, drops those below minScore, sorts,
// and keeps at most limit.
func (r *Ranker) RankCategories(categories []*models.Category, q *AnalyzedQuery, minScore float64, limit int) []*models.ScoredCategory {
	results := []*models.ScoredCategory{}
	if q.Empty() || limit <= 0 {
		return results
	}

	for _, c := range categories {
		s := r.scorer.ScoreCategory(c, q)
		if s.Total < minScore {
			continue
		}
		results = append(results, &models.ScoredCategory{
			Category:       c,
			RelevanceScore: s.Total,
			MatchDetails: models.CategoryMatchDetails{
				NameMatch:   s.NameMatch,
				IntentMatch: s.IntentMatch,
			},
		})
	}

	SortScoredCategories(results)
	return truncate(results, limit)
}

// MergeHits tags products and categories with their type and orders the
// combined list by relevance alone. Categories precede products on ties.
func MergeHits(products []*models.ScoredProduct, categories []*models.ScoredCategory) []models.SearchHit {
	hits := make([]models.SearchHit, 0, len(products)+len(categories))
	for _, c := range categories {
		hits = append(hits, models.SearchHit{Type: models.HitCategory, RelevanceScore: c.RelevanceScore, Category: c})
	}
	for _, p := range products {
		hits = append(hits, models.SearchHit{Type: models.HitProduct, RelevanceScore: p.RelevanceScore, Product: p})
	}
	slices.SortStableFunc(hits, func(a, b models.SearchHit) int {
		return cmp.Compare(b.RelevanceScore, a.RelevanceScore)
	})
	return hits
}

// SortScoredProducts orders by score descending, then category boost, intent
// match, popular, featured, and finally title in locale order.
func SortScoredProducts(results []*models.ScoredProduct) {
	collator := utils.NewTitleCollator()
	slices.SortStableFunc(results, func(a, b *models.ScoredProduct) int {
		if c := cmp.Compare(b.RelevanceScore, a.RelevanceScore); c != 0 {
			return c
		}
		if c := trueFirst(a.MatchDetails.CategoryBoost, b.MatchDetails.CategoryBoost); c != 0 {
			return c
		}
		if c := trueFirst(a.MatchDetails.IntentMatch, b.MatchDetails.IntentMatch); c != 0 {
			return c
		}
		if c := trueFirst(a.Popular, b.Popular); c != 0 {
			return c
		}
		if c := trueFirst(a.Featured, b.Featured); c != 0 {
			return c
		}
		return collator.CompareString(a.Title, b.Title)
	})
}

// SortScoredCategories puts intended categories first, then orders by score
// descending, featured, and display order ascending.
func SortScoredCategories(results []*models.ScoredCategory) {
	slices.SortStableFunc(results, func(a, b *models.ScoredCategory) int {
		if c := trueFirst(a.MatchDetails.IntentMatch, b.MatchDetails.IntentMatch); c != 0 {
			return c
		}
		if c := cmp.Compare(b.RelevanceScore, a.RelevanceScore); c != 0 {
			return c
		}
		if c := trueFirst(a.Featured, b.Featured); c != 0 {
			return c
		}
		return cmp.Compare(a.Order, b.Order)
	})
}

func trueFirst(a, b bool) int {
	switch {
	case a == b:
		return 0
	case a:
		return -1
	default:
		return 1
	}
}

func truncate[T any](s []T, limit int) []T {
	if limit < 0 {
		limit = 0
	}
	if len(s) > limit {
		return s[:limit]
	}
	return s
}
