package catalogue

import (
	"slices"
	"testing"
	"time"

	"github.com/hyperjump/storefront/internal/models"
)

func sortFixture() []*models.Product {
	day := func(d int) time.Time { return time.Date(2024, 1, d, 0, 0, 0, 0, time.UTC) }
	return []*models.Product{
		{ID: 1, Title: "banana", Price: 300, CreatedAt: day(5)},
		{ID: 2, Title: "Apple", Price: 100, Popular: true},
		{ID: 3, Title: "cherry", Price: 300, Featured: true, CreatedAt: day(20)},
		{ID: 4, Title: "Date", Price: 200, Popular: true, Featured: true},
	}
}

func TestSortProducts(t *testing.T) {
	tests := []struct {
		name   string
		sort   SortType
		scores map[int]float64
		want   []int
	}{
		{"relevance without scores", SortRelevance, nil, []int{4, 2, 3, 1}},
		{"relevance with scores", SortRelevance, map[int]float64{1: 90, 3: 90, 2: 10}, []int{3, 1, 2, 4}},
		{"price low", SortPriceLow, nil, []int{2, 4, 1, 3}},
		{"price high", SortPriceHigh, nil, []int{1, 3, 4, 2}},
		// Undated products count their id as seconds since the epoch.
		{"latest", SortLatest, nil, []int{3, 1, 4, 2}},
		{"unknown falls back to relevance", SortType("cheapest"), nil, []int{4, 2, 3, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := sortFixture()
			got := productIDs(SortProducts(in, tt.sort, tt.scores))
			if !slices.Equal(got, tt.want) {
				t.Errorf("order = %v, want %v", got, tt.want)
			}
			if !slices.Equal(productIDs(in), []int{1, 2, 3, 4}) {
				t.Error("input slice was reordered")
			}
		})
	}
}

func TestSortProducts_Small(t *testing.T) {
	if got := SortProducts(nil, SortLatest, nil); len(got) != 0 {
		t.Errorf("nil input: %v", got)
	}
	one := []*models.Product{{ID: 1}}
	if got := SortProducts(one, SortPriceHigh, nil); len(got) != 1 || got[0].ID != 1 {
		t.Errorf("single input: %v", productIDs(got))
	}
}

func TestParseSortType(t *testing.T) {
	for _, st := range SortTypes() {
		got, ok := ParseSortType(string(st))
		if !ok || got != st {
			t.Errorf("ParseSortType(%q) = %q, %v", st, got, ok)
		}
		if st.Label() == "" {
			t.Errorf("%q has no label", st)
		}
	}
	if got, ok := ParseSortType(""); ok || got != DefaultSort {
		t.Errorf("empty sort = %q, %v", got, ok)
	}
}

func TestRelevanceScores(t *testing.T) {
	if RelevanceScores(nil) != nil {
		t.Error("no results should give nil scores")
	}
	scores := RelevanceScores([]*models.ScoredProduct{
		{Product: &models.Product{ID: 3}, RelevanceScore: 12.5},
	})
	if scores[3] != 12.5 {
		t.Errorf("scores = %v", scores)
	}
}
