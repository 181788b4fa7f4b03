// Package synonyms maps query words to related terms and intended categories
// through fixed keyword tables.
package synonyms

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// CategoryKeywords lists the words that point at one category.
type CategoryKeywords struct {
	Category string   `yaml:"category"`
	Keywords []string `yaml:"keywords"`
}

// Tables is the static configuration behind synonym expansion and intent detection.
// Category order is significant: it fixes the order of expanded terms and intent categories.
type Tables struct {
	Categories       []CategoryKeywords `yaml:"categories"`
	PluralToSingular map[string]string  `yaml:"plural_to_singular"`
	SingularToPlural map[string]string  `yaml:"singular_to_plural"`
}

// LoadTables reads tables from a YAML file. A missing singular_to_plural
// section is derived by inverting plural_to_singular.
func LoadTables(path string) (*Tables, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read synonym tables: %w", err)
	}
	var t Tables
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("failed to parse synonym tables: %w", err)
	}
	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("invalid synonym tables %s: %w", path, err)
	}
	t.normalize()
	return &t, nil
}

// Validate checks the tables for empty or duplicated categories.
func (t *Tables) Validate() error {
	seen := make(map[string]struct{}, len(t.Categories))
	for i, c := range t.Categories {
		if strings.TrimSpace(c.Category) == "" {
			return fmt.Errorf("category entry %d has no category id", i)
		}
		if _, dup := seen[c.Category]; dup {
			return fmt.Errorf("category %q listed twice", c.Category)
		}
		seen[c.Category] = struct{}{}
	}
	return nil
}

// normalize lowercases every keyword and fills the inverse plural table.
func (t *Tables) normalize() {
	for i := range t.Categories {
		for j, kw := range t.Categories[i].Keywords {
			t.Categories[i].Keywords[j] = strings.ToLower(strings.TrimSpace(kw))
		}
	}
	if t.PluralToSingular == nil {
		t.PluralToSingular = make(map[string]string)
	}
	if len(t.SingularToPlural) == 0 {
		t.SingularToPlural = make(map[string]string, len(t.PluralToSingular))
		for plural, singular := range t.PluralToSingular {
			t.SingularToPlural[singular] = plural
		}
	}
}

// DefaultTables returns the built-in storefront tables.
func DefaultTables() *Tables {
	t := &Tables{
		Categories: []CategoryKeywords{
			{
				Category: "home-decor",
				Keywords: []string{
					"home", "decor", "decoration", "decorative", "interior", "furniture",
					"house", "houses", "household", "home decor", "home decoration",
					"interior design", "interior decor", "room", "rooms", "living room",
					"bedroom", "kitchen", "dining", "furnishings", "furnishing",
					"home accessories", "home goods", "household items", "domestic",
					"residential", "indoor", "indoor decor", "home improvement",
					"home styling", "home design", "decorative items", "ornaments",
					"homeware", "homewares",
				},
			},
			{
				Category: "personalized-gifts",
				Keywords: []string{
					"personalized", "personalised", "custom", "customized", "customised",
					"gift", "gifts", "present", "presents",
					"engraved", "engraving", "monogram", "monogrammed", "initial",
					"initials", "name", "names", "personal", "bespoke", "made to order",
					"custom made", "personalized gift", "custom gift", "engraved gift",
					"special gift", "unique gift", "thoughtful gift", "meaningful gift",
					"memorial", "commemorative", "dedicated", "inscribed", "etched",
					"carved", "personalization", "customization",
				},
			},
			{
				Category: "fashion-accessories",
				Keywords: []string{
					"fashion", "accessories", "accessory", "clothing", "clothes", "apparel",
					"jewelry", "jewellery", "jewel", "jewels",
					"style", "styling", "wear", "wearing", "attire", "outfit", "outfits",
					"wardrobe", "garment", "garments", "dress", "dresses", "fashionable",
					"trendy", "trend", "trends", "style accessories", "fashion items",
					"fashion accessories", "jewelry items", "ornaments", "adornments",
					"trinkets", "fashion pieces", "style pieces", "wearable", "wearables",
					"necklace", "necklaces", "bracelet", "bracelets", "earring", "earrings",
					"ring", "rings", "pendant", "pendants",
				},
			},
		},
		PluralToSingular: map[string]string{
			"houses":      "house",
			"gifts":       "gift",
			"presents":    "present",
			"accessories": "accessory",
			"jewelries":   "jewelry",
			"jewelleries": "jewellery",
			"jewels":      "jewel",
			"rooms":       "room",
			"items":       "item",
			"products":    "product",
			"categories":  "category",
			"decorations": "decoration",
			"furnishings": "furnishing",
			"ornaments":   "ornament",
			"names":       "name",
			"initials":    "initial",
			"outfits":     "outfit",
			"garments":    "garment",
			"dresses":     "dress",
			"trends":      "trend",
			"necklaces":   "necklace",
			"bracelets":   "bracelet",
			"earrings":    "earring",
			"rings":       "ring",
			"pendants":    "pendant",
		},
	}
	t.normalize()
	return t
}
