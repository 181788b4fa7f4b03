package catalogue

import (
	"errors"
	"slices"
	"testing"

	"github.com/hyperjump/storefront/internal/models"
)

func loadTestdata(t *testing.T) *Index {
	t.Helper()
	idx, err := Load("testdata/catalogue.yaml")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	return idx
}

func productIDs(ps []*models.Product) []int {
	out := make([]int, len(ps))
	for i, p := range ps {
		out[i] = p.ID
	}
	return out
}

func categoryIDs(cs []*models.Category) []string {
	out := make([]string, len(cs))
	for i, c := range cs {
		out[i] = c.ID
	}
	return out
}

func TestNewIndex_DuplicateIDs(t *testing.T) {
	_, err := NewIndex(nil, []*models.Product{{ID: 1}, {ID: 1}})
	if !errors.Is(err, models.ErrDuplicateID) {
		t.Errorf("duplicate product: err = %v, want ErrDuplicateID", err)
	}

	_, err = NewIndex([]*models.Category{{ID: "a"}, {ID: "a"}}, nil)
	if !errors.Is(err, models.ErrDuplicateID) {
		t.Errorf("duplicate category: err = %v, want ErrDuplicateID", err)
	}

	if _, err := NewIndex([]*models.Category{{ID: " "}}, nil); err == nil {
		t.Error("blank category id should fail")
	}
}

func TestNewIndex_Issues(t *testing.T) {
	idx, err := NewIndex(
		[]*models.Category{{ID: "Candles", Name: "Candles", Slug: "Candles"}},
		[]*models.Product{
			{ID: 1, Category: models.CategoryByID("Candles")},
			{ID: 2, Category: models.CategoryByID("Soaps")},
			{ID: 3},
			{ID: 4, Category: models.CategoryByName("Old Name")},
		},
	)
	if err != nil {
		t.Fatalf("NewIndex: %v", err)
	}
	issues := idx.Issues()
	if len(issues) != 3 {
		t.Fatalf("issues = %v, want 3", issues)
	}
	var got []int
	for _, is := range issues {
		got = append(got, is.ProductID)
	}
	if !slices.Equal(got, []int{2, 3, 4}) {
		t.Errorf("issue products = %v", got)
	}
	if issues[0].String() != "product 2: unresolved category reference id:Soaps" {
		t.Errorf("issue string = %q", issues[0].String())
	}
}

func TestIndex_ResolveCategory(t *testing.T) {
	idx := loadTestdata(t)

	tests := []struct {
		name   string
		ref    models.CategoryRef
		wantID string
		wantOK bool
	}{
		{"exact id", models.CategoryByID("Candles"), "Candles", true},
		{"slug", models.CategoryByID("Frames&Paintings"), "Frames&Paintings", true},
		{"id ignoring case", models.CategoryByID("home-decor"), "Home-decor", true},
		{"legacy name", models.CategoryByName("Handmade Crochet"), "Crochet", true},
		{"legacy name is exact", models.CategoryByName("handmade crochet"), "", false},
		{"name is not an id", models.CategoryByID("Handmade Crochet"), "", false},
		{"unknown", models.CategoryByID("Soaps"), "", false},
		{"zero", models.CategoryRef{}, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, ok := idx.ResolveCategory(tt.ref)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && c.ID != tt.wantID {
				t.Errorf("id = %q, want %q", c.ID, tt.wantID)
			}
		})
	}
}

func TestIndex_CategoryLabel(t *testing.T) {
	idx := loadTestdata(t)

	p, _ := idx.ProductByID(4)
	if got := idx.CategoryLabel(p); got != "Handmade Crochet" {
		t.Errorf("resolved label = %q", got)
	}
	stray := &models.Product{ID: 99, Category: models.CategoryByID("Soaps")}
	if got := idx.CategoryLabel(stray); got != "Soaps" {
		t.Errorf("raw label = %q, want Soaps", got)
	}
	if got := idx.CategoryLabel(&models.Product{ID: 100}); got != DefaultCategoryLabel {
		t.Errorf("fallback label = %q", got)
	}
	if got := idx.CategoryLabel(nil); got != DefaultCategoryLabel {
		t.Errorf("nil label = %q", got)
	}
}

func TestIndex_Lookups(t *testing.T) {
	idx := loadTestdata(t)

	if len(idx.Products()) != 13 || len(idx.Categories()) != 5 {
		t.Fatalf("counts = %d products, %d categories", len(idx.Products()), len(idx.Categories()))
	}
	if len(idx.Issues()) != 0 {
		t.Errorf("unexpected issues: %v", idx.Issues())
	}

	if p, ok := idx.ProductBySlug("sunflower-tote-bag"); !ok || p.ID != 22 {
		t.Error("ProductBySlug failed")
	}
	if _, ok := idx.ProductByID(12345); ok {
		t.Error("ProductByID found a missing product")
	}
	if c, ok := idx.CategoryByIDOrSlug("Handbags"); !ok || c.Name != "Handbags" {
		t.Error("CategoryByIDOrSlug failed")
	}
	if _, ok := idx.CategoryByIDOrSlug("handbags"); ok {
		t.Error("CategoryByIDOrSlug should be exact")
	}
	for _, key := range []string{"Handbags", "handbags", "HANDBAGS"} {
		if c, ok := idx.LookupCategory(key); !ok || c.ID != "Handbags" {
			t.Errorf("LookupCategory(%q) = %v, %v", key, c, ok)
		}
	}
	if _, ok := idx.LookupCategory("garden"); ok {
		t.Error("LookupCategory found a missing category")
	}
	if got := productIDs(idx.ProductsByCategory("candles")); !slices.Equal(got, []int{2, 5, 9, 11, 19}) {
		t.Errorf("ProductsByCategory(candles) = %v", got)
	}

	candles := productIDs(idx.ProductsByCategory("Candles"))
	if !slices.Equal(candles, []int{2, 5, 9, 11, 19}) {
		t.Errorf("ProductsByCategory(Candles) = %v", candles)
	}
	if got := idx.ProductCount("Candles"); got != 5 {
		t.Errorf("ProductCount(Candles) = %d", got)
	}
	if got := idx.ProductCount("nope"); got != 0 {
		t.Errorf("ProductCount(nope) = %d", got)
	}
	if len(idx.ProductsByCategory("all")) != 13 || len(idx.ProductsByCategory("")) != 13 {
		t.Error("all should list every product")
	}
	if got := idx.ProductsByCategory("nope"); got == nil || len(got) != 0 {
		t.Error("unknown category should list nothing")
	}

	byName := productIDs(idx.ProductsByCategoryName("Home decor"))
	if !slices.Equal(byName, []int{40, 41}) {
		t.Errorf("ProductsByCategoryName = %v", byName)
	}
	if len(idx.ProductsByCategoryName("All")) != 13 {
		t.Error("All should list every product")
	}

	if got := productIDs(idx.FeaturedProducts()); !slices.Equal(got, []int{1, 2, 23, 30}) {
		t.Errorf("FeaturedProducts = %v", got)
	}
	if got := productIDs(idx.PopularProducts()); !slices.Equal(got, []int{1, 4, 2, 9, 19, 22, 40}) {
		t.Errorf("PopularProducts = %v", got)
	}
}

func TestIndex_CategoryOrdering(t *testing.T) {
	idx, err := NewIndex([]*models.Category{
		{ID: "c", Order: 3, Featured: true},
		{ID: "a", Order: 1},
		{ID: "b", Order: 1, Featured: true},
	}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if got := categoryIDs(idx.Categories()); !slices.Equal(got, []string{"c", "a", "b"}) {
		t.Errorf("Categories = %v", got)
	}
	if got := categoryIDs(idx.SortedCategories()); !slices.Equal(got, []string{"a", "b", "c"}) {
		t.Errorf("SortedCategories = %v", got)
	}
	if got := categoryIDs(idx.FeaturedCategories()); !slices.Equal(got, []string{"b", "c"}) {
		t.Errorf("FeaturedCategories = %v", got)
	}
}

func TestIndex_ReturnsCopies(t *testing.T) {
	idx := loadTestdata(t)
	ps := idx.Products()
	ps[0] = nil
	if idx.Products()[0] == nil {
		t.Error("Products exposed the internal slice")
	}
}
