package catalogue

import (
	"cmp"
	"slices"

	"github.com/hyperjump/storefront/internal/models"
	"github.com/hyperjump/storefront/pkg/utils"
)

// SortType selects a product listing order.
type SortType string

const (
	SortRelevance SortType = "relevance"
	SortLatest    SortType = "latest"
	SortPriceLow  SortType = "price-low"
	SortPriceHigh SortType = "price-high"
)

// DefaultSort is used for empty or unknown sort types.
const DefaultSort = SortRelevance

var sortLabels = map[SortType]string{
	SortRelevance: "Relevance",
	SortLatest:    "Latest Arrivals",
	SortPriceLow:  "Price: Low to High",
	SortPriceHigh: "Price: High to Low",
}

// SortTypes returns every supported sort type in display order.
func SortTypes() []SortType {
	return []SortType{SortRelevance, SortLatest, SortPriceLow, SortPriceHigh}
}

// Label returns the human-readable name of the sort type.
func (s SortType) Label() string {
	return sortLabels[s]
}

// ParseSortType validates s, falling back to DefaultSort. The boolean
// reports whether s was recognized.
func ParseSortType(s string) (SortType, bool) {
	t := SortType(s)
	if _, ok := sortLabels[t]; ok {
		return t, true
	}
	return DefaultSort, false
}

// SortProducts returns a sorted copy of products. For SortRelevance, scores
// maps product ids to relevance scores and may be nil; missing ids count as 0.
func SortProducts(products []*models.Product, sortType SortType, scores map[int]float64) []*models.Product {
	out := slices.Clone(products)
	if len(out) < 2 {
		return out
	}
	collator := utils.NewTitleCollator()
	byTitle := func(a, b *models.Product) int {
		return collator.CompareString(a.Title, b.Title)
	}

	var fn func(a, b *models.Product) int
	switch t, _ := ParseSortType(string(sortType)); t {
	case SortLatest:
		fn = func(a, b *models.Product) int {
			return cmp.Compare(addedAt(b), addedAt(a))
		}
	case SortPriceLow:
		fn = func(a, b *models.Product) int {
			if c := cmp.Compare(a.Price, b.Price); c != 0 {
				return c
			}
			return byTitle(a, b)
		}
	case SortPriceHigh:
		fn = func(a, b *models.Product) int {
			if c := cmp.Compare(b.Price, a.Price); c != 0 {
				return c
			}
			return byTitle(a, b)
		}
	default:
		fn = func(a, b *models.Product) int {
			if scores != nil {
				if c := cmp.Compare(scores[b.ID], scores[a.ID]); c != 0 {
					return c
				}
			}
			if a.Popular != b.Popular {
				if a.Popular {
					return -1
				}
				return 1
			}
			if a.Featured != b.Featured {
				if a.Featured {
					return -1
				}
				return 1
			}
			return byTitle(a, b)
		}
	}
	slices.SortStableFunc(out, fn)
	return out
}

// addedAt orders products by creation time; products without one fall back
// to their id in seconds, so higher ids count as newer.
func addedAt(p *models.Product) int64 {
	if !p.CreatedAt.IsZero() {
		return p.CreatedAt.UnixMilli()
	}
	return int64(p.ID) * 1000
}

// RelevanceScores extracts product id to score from ranked results.
func RelevanceScores(results []*models.ScoredProduct) map[int]float64 {
	if len(results) == 0 {
		return nil
	}
	scores := make(map[int]float64, len(results))
	for _, r := range results {
		scores[r.ID] = r.RelevanceScore
	}
	return scores
}
