// Package catalogue holds the immutable product and category index that
// searches run against, along with its loaders and listing sort orders.
package catalogue

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/hyperjump/storefront/internal/models"
)

// DefaultCategoryLabel is shown for products whose category cannot be resolved.
const DefaultCategoryLabel = "Product"

// Issue is a non-fatal catalogue problem found while indexing.
type Issue struct {
	ProductID int    `json:"product_id"`
	Message   string `json:"message"`
}

func (i Issue) String() string {
	return fmt.Sprintf("product %d: %s", i.ProductID, i.Message)
}

// Index is a read-only view over one catalogue. It is never mutated after
// NewIndex returns and is safe for concurrent use.
type Index struct {
	categories []*models.Category
	products   []*models.Product

	categoryByID   map[string]*models.Category
	categoryBySlug map[string]*models.Category
	categoryByName map[string]*models.Category
	productByID    map[int]*models.Product
	productBySlug  map[string]*models.Product
	// productCategory holds the resolved category of each product, if any.
	productCategory map[int]*models.Category

	issues      []Issue
	fingerprint string
}

// NewIndex indexes categories and products. Duplicate ids are errors;
// unresolved product category references are recorded as Issues.
func NewIndex(categories []*models.Category, products []*models.Product) (*Index, error) {
	idx := &Index{
		categories:      make([]*models.Category, 0, len(categories)),
		products:        make([]*models.Product, 0, len(products)),
		categoryByID:    make(map[string]*models.Category, len(categories)),
		categoryBySlug:  make(map[string]*models.Category, len(categories)),
		categoryByName:  make(map[string]*models.Category, len(categories)),
		productByID:     make(map[int]*models.Product, len(products)),
		productBySlug:   make(map[string]*models.Product, len(products)),
		productCategory: make(map[int]*models.Category, len(products)),
	}

	for i, c := range categories {
		if c == nil {
			continue
		}
		if strings.TrimSpace(c.ID) == "" {
			return nil, fmt.Errorf("category %d has no id", i)
		}
		if _, dup := idx.categoryByID[c.ID]; dup {
			return nil, fmt.Errorf("%w: category %q", models.ErrDuplicateID, c.ID)
		}
		idx.categories = append(idx.categories, c)
		idx.categoryByID[c.ID] = c
		if c.Slug != "" {
			if _, taken := idx.categoryBySlug[c.Slug]; !taken {
				idx.categoryBySlug[c.Slug] = c
			}
		}
		if _, taken := idx.categoryByName[c.Name]; !taken && c.Name != "" {
			idx.categoryByName[c.Name] = c
		}
	}

	for _, p := range products {
		if p == nil {
			continue
		}
		if _, dup := idx.productByID[p.ID]; dup {
			return nil, fmt.Errorf("%w: product %d", models.ErrDuplicateID, p.ID)
		}
		idx.products = append(idx.products, p)
		idx.productByID[p.ID] = p
		if p.Slug != "" {
			if _, taken := idx.productBySlug[p.Slug]; !taken {
				idx.productBySlug[p.Slug] = p
			}
		}

		switch cat, ok := idx.ResolveCategory(p.Category); {
		case ok:
			idx.productCategory[p.ID] = cat
		case p.Category.IsZero():
			idx.issues = append(idx.issues, Issue{ProductID: p.ID, Message: "no category"})
		default:
			idx.issues = append(idx.issues, Issue{
				ProductID: p.ID,
				Message:   fmt.Sprintf("unresolved category reference %s", p.Category),
			})
		}
	}
	return idx, nil
}

// Issues returns the non-fatal problems found while indexing.
func (idx *Index) Issues() []Issue {
	return slices.Clone(idx.issues)
}

// Fingerprint returns the hash of the source the index was loaded from, or
// "" for indexes built in memory.
func (idx *Index) Fingerprint() string {
	return idx.fingerprint
}

// Products returns all products in source order.
func (idx *Index) Products() []*models.Product {
	return slices.Clone(idx.products)
}

// Categories returns all categories in source order.
func (idx *Index) Categories() []*models.Category {
	return slices.Clone(idx.categories)
}

// SortedCategories returns all categories by display order, ascending.
func (idx *Index) SortedCategories() []*models.Category {
	out := slices.Clone(idx.categories)
	slices.SortStableFunc(out, func(a, b *models.Category) int {
		return cmp.Compare(a.Order, b.Order)
	})
	return out
}

// FeaturedCategories returns the featured categories by display order.
func (idx *Index) FeaturedCategories() []*models.Category {
	out := []*models.Category{}
	for _, c := range idx.SortedCategories() {
		if c.Featured {
			out = append(out, c)
		}
	}
	return out
}

// CategoryByIDOrSlug finds a category by exact id or slug.
func (idx *Index) CategoryByIDOrSlug(idOrSlug string) (*models.Category, bool) {
	if c, ok := idx.categoryByID[idOrSlug]; ok {
		return c, true
	}
	c, ok := idx.categoryBySlug[idOrSlug]
	return c, ok
}

// ResolveCategory resolves a product's category reference. ById references
// match an id or slug, exactly first and then ignoring case; ByName
// references match the display name. It never fails, it just reports false.
func (idx *Index) ResolveCategory(ref models.CategoryRef) (*models.Category, bool) {
	if ref.IsZero() {
		return nil, false
	}
	v := ref.Value()
	if ref.IsByName() {
		c, ok := idx.categoryByName[v]
		return c, ok
	}
	return idx.LookupCategory(v)
}

// LookupCategory matches an id or slug exactly, then ignoring case. Listing
// pages and stored product references both go through it.
func (idx *Index) LookupCategory(idOrSlug string) (*models.Category, bool) {
	if c, ok := idx.CategoryByIDOrSlug(idOrSlug); ok {
		return c, true
	}
	for _, c := range idx.categories {
		if strings.EqualFold(c.ID, idOrSlug) || strings.EqualFold(c.Slug, idOrSlug) {
			return c, true
		}
	}
	return nil, false
}

// ProductCategory returns the resolved category of a product.
func (idx *Index) ProductCategory(p *models.Product) (*models.Category, bool) {
	if p == nil {
		return nil, false
	}
	if indexed, ok := idx.productByID[p.ID]; ok && indexed == p {
		c, ok := idx.productCategory[p.ID]
		return c, ok
	}
	return idx.ResolveCategory(p.Category)
}

// CategoryLabel returns the display label of a product's category: the
// resolved name, else the raw stored reference, else DefaultCategoryLabel.
func (idx *Index) CategoryLabel(p *models.Product) string {
	if c, ok := idx.ProductCategory(p); ok && c.Name != "" {
		return c.Name
	}
	if p != nil && !p.Category.IsZero() {
		return p.Category.Value()
	}
	return DefaultCategoryLabel
}

// ProductByID finds a product by id.
func (idx *Index) ProductByID(id int) (*models.Product, bool) {
	p, ok := idx.productByID[id]
	return p, ok
}

// ProductBySlug finds a product by exact slug.
func (idx *Index) ProductBySlug(slug string) (*models.Product, bool) {
	p, ok := idx.productBySlug[slug]
	return p, ok
}

// ProductsByCategory lists the products of the category with the given id or
// slug. "" and "all" list every product; an unknown category lists none.
func (idx *Index) ProductsByCategory(idOrSlug string) []*models.Product {
	if idOrSlug == "" || idOrSlug == "all" {
		return idx.Products()
	}
	c, ok := idx.LookupCategory(idOrSlug)
	if !ok {
		return []*models.Product{}
	}
	return idx.productsIn(c)
}

// ProductsByCategoryName lists products by category display name. "" and
// "All" list every product.
func (idx *Index) ProductsByCategoryName(name string) []*models.Product {
	if name == "" || name == "All" {
		return idx.Products()
	}
	c, ok := idx.categoryByName[name]
	if !ok {
		return []*models.Product{}
	}
	return idx.productsIn(c)
}

// FeaturedProducts lists featured products in source order.
func (idx *Index) FeaturedProducts() []*models.Product {
	return idx.filter(func(p *models.Product) bool { return p.Featured })
}

// PopularProducts lists popular products in source order.
func (idx *Index) PopularProducts() []*models.Product {
	return idx.filter(func(p *models.Product) bool { return p.Popular })
}

// ProductCount returns how many products resolve to the given category id.
func (idx *Index) ProductCount(categoryID string) int {
	c, ok := idx.categoryByID[categoryID]
	if !ok {
		return 0
	}
	return len(idx.productsIn(c))
}

func (idx *Index) productsIn(c *models.Category) []*models.Product {
	return idx.filter(func(p *models.Product) bool {
		return idx.productCategory[p.ID] == c
	})
}

func (idx *Index) filter(keep func(*models.Product) bool) []*models.Product {
	out := []*models.Product{}
	for _, p := range idx.products {
		if keep(p) {
			out = append(out, p)
		}
	}
	return out
}
