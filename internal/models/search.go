package models

import "time"

// SearchIntent is derived from a query through the keyword tables. It is
// rebuilt on every search call.
type SearchIntent struct {
	// Categories are the category identifiers the query points at.
	Categories []string `json:"categories"`
	// Synonyms are the expanded terms of every query word.
	Synonyms []string `json:"synonyms"`
	// Keywords are the query's own words.
	Keywords []string `json:"keywords"`
}

// HasCategory reports whether id is one of the intended categories.
func (i *SearchIntent) HasCategory(id string) bool {
	if i == nil || id == "" {
		return false
	}
	for _, c := range i.Categories {
		if c == id {
			return true
		}
	}
	return false
}

// MatchDetails explains how a product earned its score.
type MatchDetails struct {
	TitleMatch    FieldMatch `json:"titleMatch"`
	CategoryMatch FieldMatch `json:"categoryMatch"`
	IntentMatch   bool       `json:"intentMatch"`
	CategoryBoost bool       `json:"categoryBoost"`
}

// ScoredProduct is a product with its relevance for one search call.
type ScoredProduct struct {
	*Product
	RelevanceScore float64           `json:"_relevanceScore"`
	MatchDetails   MatchDetails      `json:"_matchDetails"`
	Highlights     map[string]string `json:"_highlights,omitempty"`
}

// CategoryMatchDetails explains how a category earned its score.
type CategoryMatchDetails struct {
	NameMatch   FieldMatch `json:"nameMatch"`
	IntentMatch bool       `json:"intentMatch"`
}

// ScoredCategory is a category with its relevance for one search call.
type ScoredCategory struct {
	*Category
	RelevanceScore float64              `json:"_relevanceScore"`
	MatchDetails   CategoryMatchDetails `json:"_matchDetails"`
}

// HitType tags entries of a combined result list.
type HitType string

const (
	HitProduct  HitType = "product"
	HitCategory HitType = "category"
)

// SearchHit is one entry of a combined product+category result list.
type SearchHit struct {
	Type           HitType         `json:"_type"`
	RelevanceScore float64         `json:"_relevanceScore"`
	Product        *ScoredProduct  `json:"product,omitempty"`
	Category       *ScoredCategory `json:"category,omitempty"`
}

// CombinedResponse is the result of a combined product and category search.
type CombinedResponse struct {
	Products        []*ScoredProduct  `json:"products"`
	Categories      []*ScoredCategory `json:"categories"`
	All             []SearchHit       `json:"all"`
	NormalizedQuery string            `json:"normalizedQuery"`
	TotalResults    int               `json:"totalResults"`
	HasResults      bool              `json:"hasResults"`
	// Suggestions holds "did you mean" corrections when nothing matched.
	Suggestions []string `json:"suggestions,omitempty"`
}

// EmptyCombinedResponse returns a well-formed response with no results.
func EmptyCombinedResponse(normalized string) *CombinedResponse {
	return &CombinedResponse{
		Products:        []*ScoredProduct{},
		Categories:      []*ScoredCategory{},
		All:             []SearchHit{},
		NormalizedQuery: normalized,
	}
}

// Suggestion is an autocomplete entry.
type Suggestion struct {
	Text string `json:"text"`
	Type string `json:"type"`
	ID   int    `json:"id"`
	Slug string `json:"slug"`
}

// SearchStats summarizes a wide combined search for one query.
type SearchStats struct {
	Query            string  `json:"query"`
	TotalProducts    int     `json:"totalProducts"`
	TotalCategories  int     `json:"totalCategories"`
	TotalResults     int     `json:"totalResults"`
	AvgProductScore  float64 `json:"avgProductScore"`
	AvgCategoryScore float64 `json:"avgCategoryScore"`
}

// SearchEvent is one logged search, used by the optional analytics log.
type SearchEvent struct {
	ID              string    `json:"id"`
	Query           string    `json:"query"`
	NormalizedQuery string    `json:"normalized_query"`
	Kind            string    `json:"kind"`
	ResultCount     int       `json:"result_count"`
	DurationMS      int64     `json:"duration_ms"`
	CreatedAt       time.Time `json:"created_at"`
}

// QueryCount is an aggregated analytics row.
type QueryCount struct {
	Query    string    `json:"query"`
	Count    int       `json:"count"`
	LastSeen time.Time `json:"last_seen"`
}
