package synonyms

import (
	"strings"

	"github.com/hyperjump/storefront/internal/models"
)

// Expander answers synonym and intent lookups over a fixed set of tables.
// It is immutable after construction and safe for concurrent use.
type Expander struct {
	categories       []CategoryKeywords
	keywordIndex     map[string][]int // keyword -> positions in categories
	pluralToSingular map[string]string
	singularToPlural map[string]string
}

// NewExpander precomputes the keyword index. Nil tables mean DefaultTables.
func NewExpander(t *Tables) *Expander {
	if t == nil {
		t = DefaultTables()
	}
	e := &Expander{
		categories:       t.Categories,
		keywordIndex:     make(map[string][]int),
		pluralToSingular: t.PluralToSingular,
		singularToPlural: t.SingularToPlural,
	}
	for i, c := range t.Categories {
		for _, kw := range c.Keywords {
			idx := e.keywordIndex[kw]
			if len(idx) == 0 || idx[len(idx)-1] != i {
				e.keywordIndex[kw] = append(idx, i)
			}
		}
	}
	return e
}

// CategoryIDs returns the category ids of the tables in declaration order.
func (e *Expander) CategoryIDs() []string {
	out := make([]string, len(e.categories))
	for i, c := range e.categories {
		out[i] = c.Category
	}
	return out
}

// Synonyms returns the word itself, its tabulated singular/plural form, and
// every keyword listed alongside it in a category entry.
func (e *Expander) Synonyms(word string) []string {
	w := strings.ToLower(strings.TrimSpace(word))
	set := newOrderedSet()
	set.add(w)
	if s, ok := e.pluralToSingular[w]; ok {
		set.add(s)
	}
	if p, ok := e.singularToPlural[w]; ok {
		set.add(p)
	}
	for _, i := range e.keywordIndex[w] {
		set.addAll(e.categories[i].Keywords)
	}
	return set.items
}

// CategoriesForKeyword returns the categories whose keywords contain the word
// or its singular/plural form.
func (e *Expander) CategoriesForKeyword(word string) []string {
	w := strings.ToLower(strings.TrimSpace(word))
	forms := []string{w}
	if s, ok := e.pluralToSingular[w]; ok {
		forms = append(forms, s)
	}
	if p, ok := e.singularToPlural[w]; ok {
		forms = append(forms, p)
	}

	hits := make(map[int]struct{})
	for _, f := range forms {
		for _, i := range e.keywordIndex[f] {
			hits[i] = struct{}{}
		}
	}
	// Declaration order keeps the result deterministic.
	out := []string{}
	for i, c := range e.categories {
		if _, ok := hits[i]; ok {
			out = append(out, c.Category)
		}
	}
	return out
}

// ExpandQuery unions the synonyms of every whitespace-separated word of query.
func (e *Expander) ExpandQuery(query string) []string {
	set := newOrderedSet()
	for _, w := range strings.Fields(strings.ToLower(query)) {
		set.addAll(e.Synonyms(w))
	}
	return set.items
}

// Intent derives the search intent of query: intended categories, synonym
// terms, and the query's own words, each deduplicated in first-seen order.
func (e *Expander) Intent(query string) *models.SearchIntent {
	categories := newOrderedSet()
	syns := newOrderedSet()
	keywords := newOrderedSet()
	for _, w := range strings.Fields(strings.ToLower(query)) {
		categories.addAll(e.CategoriesForKeyword(w))
		syns.addAll(e.Synonyms(w))
		keywords.add(w)
	}
	return &models.SearchIntent{
		Categories: categories.items,
		Synonyms:   syns.items,
		Keywords:   keywords.items,
	}
}

type orderedSet struct {
	seen  map[string]struct{}
	items []string
}

func newOrderedSet() *orderedSet {
	return &orderedSet{seen: make(map[string]struct{}), items: []string{}}
}

func (s *orderedSet) add(v string) {
	if _, ok := s.seen[v]; ok {
		return
	}
	s.seen[v] = struct{}{}
	s.items = append(s.items, v)
}

func (s *orderedSet) addAll(vs []string) {
	for _, v := range vs {
		s.add(v)
	}
}
