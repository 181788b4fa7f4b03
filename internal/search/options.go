package search

// Option adjusts a single search call.
type Option func(*searchOptions)

type searchOptions struct {
	limit            int
	minScore         float64
	productLimit     int
	productLimitSet  bool
	categoryLimit    int
	categoryLimitSet bool
	highlight        bool
}

// WithLimit caps the number of results of SearchProducts or SearchCategories.
func WithLimit(n int) Option {
	return func(o *searchOptions) {
		o.limit = n
	}
}

// WithMinScore drops results scoring below s.
func WithMinScore(s float64) Option {
	return func(o *searchOptions) {
		o.minScore = s
	}
}

// WithProductLimit caps the products of SearchAll.
func WithProductLimit(n int) Option {
	return func(o *searchOptions) {
		o.productLimit = n
		o.productLimitSet = true
	}
}

// WithCategoryLimit caps the categories of SearchAll.
func WithCategoryLimit(n int) Option {
	return func(o *searchOptions) {
		o.categoryLimit = n
		o.categoryLimitSet = true
	}
}

// WithHighlights fills the escaped title and description highlights of
// product results.
func WithHighlights(enabled bool) Option {
	return func(o *searchOptions) {
		o.highlight = enabled
	}
}

func (e *Engine) options(limit int, minScore float64, opts []Option) *searchOptions {
	o := &searchOptions{limit: limit, minScore: minScore}
	for _, opt := range opts {
		opt(o)
	}
	return o
}
