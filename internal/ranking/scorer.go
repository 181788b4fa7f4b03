package ranking

import (
	"strings"

	"github.com/hyperjump/storefront/internal/models"
	"github.com/hyperjump/storefront/pkg/utils"
)

// Scorer combines per-field matches, bonuses, and boosts into one relevance
// score per product or category. Scores are open-ended and only comparable
// within one search call.
type Scorer struct {
	weights  *ScoringWeights
	matcher  *Matcher
	resolver CategoryResolver
}

// NewScorer creates a Scorer. A nil resolver means product category
// references are never resolved.
func NewScorer(weights *ScoringWeights, matcher *Matcher, resolver CategoryResolver) *Scorer {
	if weights == nil {
		weights = DefaultScoringWeights()
	}
	if matcher == nil {
		matcher = NewMatcher(weights, nil)
	}
	return &Scorer{weights: weights, matcher: matcher, resolver: resolver}
}

// ResolveProductCategory returns the category a product belongs to, if its
// reference resolves.
func (s *Scorer) ResolveProductCategory(p *models.Product) (*models.Category, bool) {
	if s.resolver == nil || p.Category.IsZero() {
		return nil, false
	}
	return s.resolver.ResolveCategory(p.Category)
}

// ScoreProduct scores one product against an analyzed query.
func (s *Scorer) ScoreProduct(p *models.Product, q *AnalyzedQuery) ProductScore {
	var out ProductScore
	if p == nil || q.Empty() {
		return out
	}
	w := s.weights
	nq := q.Normalized
	total := 0.0

	// Title
	out.TitleMatch = s.matcher.Match(p.Title, nq)
	total += out.TitleMatch.Score * w.TitleWeight

	boundary := s.matcher.HasWordPrefix(p.Title, nq)
	if boundary && out.TitleMatch.Kind != models.MatchExact {
		total += w.TitleWordBoundaryBonus
	}
	if !boundary && strings.Contains(strings.ToLower(p.Title), nq) {
		total += w.TitleSubstringBonus
	}
	for _, term := range q.Expanded {
		if term != nq && len(term) >= w.SynonymMinLength && s.matcher.HasWordPrefix(p.Title, term) {
			total += w.TitleSynonymBonus
		}
	}

	// Category
	categoryName := ""
	if cat, ok := s.ResolveProductCategory(p); ok {
		categoryName = cat.Name
		out.CategoryID = cat.ID
	} else if p.Category.IsByName() {
		categoryName = p.Category.Value()
	} else if p.Category.IsByID() {
		out.CategoryID = p.Category.Value()
	}
	if categoryName != "" {
		out.CategoryMatch = s.matcher.Match(categoryName, nq)
		total += out.CategoryMatch.Score * w.CategoryWeight
		if overlaps(strings.ToLower(categoryName), nq, w.CategoryOverlapMinLength) {
			total += w.CategoryOverlapBonus
		}
	}

	// Description
	if p.Description != "" {
		total += s.matcher.Match(p.Description, nq).Score * w.DescriptionWeight
		if strings.Contains(strings.ToLower(p.Description), nq) {
			total += w.DescriptionSubstringBonus
		}
	}

	total += s.averageBestMatch(p.Tags, q) * w.TagWeight
	total += s.averageBestMatch(p.Keywords, q) * w.KeywordWeight

	out.IntentMatch = q.IntendsCategory(out.CategoryID)
	if out.IntentMatch {
		total += w.IntentBonus
	}

	if len(q.Words) > 1 && s.allWordsPresent(p, q) {
		total += w.AllWordsBonus
	}

	if p.Popular {
		total += w.PopularBonus
	}
	if p.Featured {
		total += w.FeaturedBonus
	}

	out.Total = utils.Round2(total)
	return out
}

// ScoreCategory scores one category against an analyzed query.
func (s *Scorer) ScoreCategory(c *models.Category, q *AnalyzedQuery) CategoryScore {
	var out CategoryScore
	if c == nil || q.Empty() {
		return out
	}
	w := s.weights
	nq := q.Normalized
	total := 0.0

	out.NameMatch = s.matcher.Match(c.Name, nq)
	total += out.NameMatch.Score * w.CategoryNameWeight
	for _, term := range q.Expanded {
		if term == nq {
			continue
		}
		if m := s.matcher.Match(c.Name, term); m.Score > 0 {
			total += m.Score * w.CategoryNameSynonymWeight
		}
	}

	total += s.matcher.Match(c.Slug, nq).Score * w.CategorySlugWeight
	if c.Description != "" {
		total += s.matcher.Match(c.Description, nq).Score * w.CategoryDescriptionWeight
	}
	total += s.averageBestMatch(c.Keywords, q) * w.CategoryKeywordWeight

	out.IntentMatch = q.IntendsCategory(c.ID)
	if out.IntentMatch {
		total += w.CategoryIntentBonus
	}
	if c.Featured {
		total += w.CategoryFeaturedBonus
	}

	out.Total = utils.Round2(total)
	return out
}

// averageBestMatch takes, per field value, the better of the direct match and
// the best synonym match, then averages over the values that matched at all.
func (s *Scorer) averageBestMatch(values []string, q *AnalyzedQuery) float64 {
	scores := make([]float64, 0, len(values))
	for _, v := range values {
		best := s.matcher.Match(v, q.Normalized).Score
		for _, term := range q.Expanded {
			if sc := s.matcher.Match(v, term).Score; sc > best {
				best = sc
			}
		}
		if best > 0 {
			scores = append(scores, best)
		}
	}
	return utils.Mean(scores)
}

// allWordsPresent reports whether every query word, or one of its synonyms,
// matches the title, description, or a tag.
func (s *Scorer) allWordsPresent(p *models.Product, q *AnalyzedQuery) bool {
	for _, word := range q.Words {
		if s.termPresent(p, word) {
			continue
		}
		found := false
		for _, syn := range q.WordSynonyms[word] {
			if s.termPresent(p, syn) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func (s *Scorer) termPresent(p *models.Product, term string) bool {
	if s.matcher.Match(p.Title, term).Score > 0 {
		return true
	}
	if p.Description != "" && s.matcher.Match(p.Description, term).Score > 0 {
		return true
	}
	for _, tag := range p.Tags {
		if s.matcher.Match(tag, term).Score > 0 {
			return true
		}
	}
	return false
}

// overlaps reports whether a and b contain one another, counting only when
// both are at least minLen bytes long.
func overlaps(a, b string, minLen int) bool {
	if a == "" || b == "" || len(a) < minLen || len(b) < minLen {
		return false
	}
	return strings.Contains(a, b) || strings.Contains(b, a)
}
