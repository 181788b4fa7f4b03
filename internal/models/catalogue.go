// Package models defines core data structures for catalogue entities, search intent, and search results.
package models

import (
	"encoding/json"
	"time"
)

type categoryRefKind int

const (
	refNone categoryRefKind = iota
	refByID
	refByName
)

// CategoryRef is how a product points at its category: either by category
// identifier (or slug), or by the legacy display name.
type CategoryRef struct {
	kind  categoryRefKind
	value string
}

// CategoryByID references a category by its identifier or slug.
func CategoryByID(id string) CategoryRef {
	return CategoryRef{kind: refByID, value: id}
}

// CategoryByName references a category by its display name (legacy catalogues).
func CategoryByName(name string) CategoryRef {
	return CategoryRef{kind: refByName, value: name}
}

// IsByID reports whether the reference carries a category identifier.
func (r CategoryRef) IsByID() bool { return r.kind == refByID }

// IsByName reports whether the reference carries a legacy display name.
func (r CategoryRef) IsByName() bool { return r.kind == refByName }

// IsZero reports whether the product has no category reference at all.
func (r CategoryRef) IsZero() bool { return r.kind == refNone || r.value == "" }

// Value returns the raw stored identifier or name.
func (r CategoryRef) Value() string { return r.value }

// String returns a debug representation.
func (r CategoryRef) String() string {
	switch r.kind {
	case refByID:
		return "id:" + r.value
	case refByName:
		return "name:" + r.value
	default:
		return ""
	}
}

// MarshalJSON encodes the reference as {"id": ...} or {"name": ...}.
func (r CategoryRef) MarshalJSON() ([]byte, error) {
	switch r.kind {
	case refByID:
		return json.Marshal(map[string]string{"id": r.value})
	case refByName:
		return json.Marshal(map[string]string{"name": r.value})
	default:
		return []byte("null"), nil
	}
}

// UnmarshalJSON decodes the form written by MarshalJSON.
func (r *CategoryRef) UnmarshalJSON(data []byte) error {
	var raw map[string]string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch {
	case raw["id"] != "":
		*r = CategoryByID(raw["id"])
	case raw["name"] != "":
		*r = CategoryByName(raw["name"])
	default:
		*r = CategoryRef{}
	}
	return nil
}

// Product is a catalogue item.
type Product struct {
	ID          int         `json:"id"`
	Title       string      `json:"title"`
	Slug        string      `json:"slug"`
	Description string      `json:"description,omitempty"`
	Price       int         `json:"price"`
	Images      []string    `json:"images,omitempty"`
	Category    CategoryRef `json:"category"`
	Tags        []string    `json:"tags,omitempty"`
	Keywords    []string    `json:"keywords,omitempty"`
	Popular     bool        `json:"popular"`
	Featured    bool        `json:"featured"`
	InStock     bool        `json:"inStock"`
	CreatedAt   time.Time   `json:"createdAt,omitzero"`
}

// Category is a catalogue grouping of products.
type Category struct {
	ID          string   `json:"id" yaml:"id"`
	Name        string   `json:"name" yaml:"name"`
	Slug        string   `json:"slug" yaml:"slug"`
	Description string   `json:"description,omitempty" yaml:"description"`
	Icon        string   `json:"icon,omitempty" yaml:"icon"`
	Order       int      `json:"order" yaml:"order"`
	Featured    bool     `json:"featured" yaml:"featured"`
	Keywords    []string `json:"keywords,omitempty" yaml:"keywords"`
}
