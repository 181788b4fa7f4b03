package ranking

import (
	"strings"

	"github.com/hyperjump/storefront/internal/models"
)

// mapResolver resolves ids and slugs case-insensitively and names exactly.
type mapResolver []*models.Category

func (m mapResolver) ResolveCategory(ref models.CategoryRef) (*models.Category, bool) {
	for _, c := range m {
		switch {
		case ref.IsByID() && (strings.EqualFold(c.ID, ref.Value()) || strings.EqualFold(c.Slug, ref.Value())):
			return c, true
		case ref.IsByName() && c.Name == ref.Value():
			return c, true
		}
	}
	return nil, false
}

func testCategories() []*models.Category {
	return []*models.Category{
		{ID: "Crochet", Name: "Handmade Crochet", Slug: "Crochet", Order: 1, Featured: true, Keywords: []string{"crochet", "flowers", "handmade"}},
		{ID: "Candles", Name: "Candles", Slug: "Candles", Order: 2, Featured: true, Keywords: []string{"candle", "candles"}},
		{ID: "Handbags", Name: "Handbags", Slug: "Handbags", Order: 3, Featured: true, Keywords: []string{"bags", "bag"}},
		{ID: "Home-decor", Name: "Home decor", Slug: "Home-decor", Order: 5, Keywords: []string{"decor", "glass"}},
	}
}
