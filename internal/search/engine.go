// Package search provides the storefront search engine: product, category,
// and combined search over an atomically swappable catalogue snapshot.
package search

import (
	"cmp"
	"slices"
	"strings"
	"sync/atomic"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/hyperjump/storefront/internal/config"
	"github.com/hyperjump/storefront/internal/models"
	"github.com/hyperjump/storefront/internal/ranking"
	"github.com/hyperjump/storefront/pkg/utils"
)

// Search kinds reported to observers and the analytics log.
const (
	KindProducts   = "products"
	KindCategories = "categories"
	KindAll        = "all"
	KindSuggest    = "suggest"
)

// statsLimit bounds both result lists when computing Stats.
const statsLimit = 100

// Observer receives one call per completed search.
type Observer interface {
	ObserveSearch(kind string, duration time.Duration, results int)
}

// Engine runs searches against the current Snapshot. Every call loads the
// snapshot once, so a concurrent Swap never changes data mid-search.
type Engine struct {
	snapshot    atomic.Pointer[Snapshot]
	config      *config.SearchConfig
	highlighter *Highlighter
	normalizer  *ranking.Normalizer
	observer    Observer
	logger      *zap.Logger
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithLogger sets the logger; searches are logged at debug level.
func WithLogger(l *zap.Logger) EngineOption {
	return func(e *Engine) {
		e.logger = l
	}
}

// WithObserver sets a search observer, typically metrics.
func WithObserver(o Observer) EngineOption {
	return func(e *Engine) {
		e.observer = o
	}
}

// NewEngine creates a search engine over snap. A nil cfg selects the
// default limits. snap may be nil until the first Swap.
func NewEngine(snap *Snapshot, cfg *config.SearchConfig, opts ...EngineOption) *Engine {
	if cfg == nil {
		cfg = &config.Default().Search
	}
	e := &Engine{
		config: cfg,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.normalizer = ranking.NewNormalizer(ranking.WithAccentFolding(cfg.FoldAccents))
	e.highlighter = NewHighlighter(cfg.HighlightClass, e.normalizer)
	if snap != nil {
		e.snapshot.Store(snap)
	}
	return e
}

// Snapshot returns the current snapshot, or nil before the first load.
func (e *Engine) Snapshot() *Snapshot {
	return e.snapshot.Load()
}

// Swap installs snap and returns the previous snapshot.
func (e *Engine) Swap(snap *Snapshot) *Snapshot {
	return e.snapshot.Swap(snap)
}

// Config returns the search configuration in use.
func (e *Engine) Config() *config.SearchConfig {
	return e.config
}

// Highlighter returns the highlighter configured with the engine's class.
func (e *Engine) Highlighter() *Highlighter {
	return e.highlighter
}

// Normalize returns query the way searches see it.
func (e *Engine) Normalize(query string) string {
	return e.normalizer.Normalize(query)
}

// SearchProducts ranks products for query. The defaults are the configured
// product limit and minimum score; WithLimit and WithMinScore override them.
func (e *Engine) SearchProducts(query string, opts ...Option) []*models.ScoredProduct {
	start := time.Now()
	o := e.options(e.config.ProductLimit, e.config.ProductMinScore, opts)
	snap := e.snapshot.Load()
	if snap == nil {
		return []*models.ScoredProduct{}
	}

	q := snap.Ranker.Analyze(query)
	results := snap.Ranker.RankProducts(snap.Catalogue.Products(), snap.Catalogue.Categories(), q, o.minScore, o.limit)
	if o.highlight {
		e.highlightProducts(results, q.Normalized)
	}
	e.done(KindProducts, q, start, len(results))
	return results
}

// SearchCategories ranks categories for query. The defaults are the
// configured category limit and minimum score.
func (e *Engine) SearchCategories(query string, opts ...Option) []*models.ScoredCategory {
	start := time.Now()
	o := e.options(e.config.CategoryLimit, e.config.CategoryMinScore, opts)
	snap := e.snapshot.Load()
	if snap == nil {
		return []*models.ScoredCategory{}
	}

	q := snap.Ranker.Analyze(query)
	results := snap.Ranker.RankCategories(snap.Catalogue.Categories(), q, o.minScore, o.limit)
	e.done(KindCategories, q, start, len(results))
	return results
}

// SearchAll runs product and category search with one analyzed query and
// merges them by relevance. When nothing matches and spell checking is on,
// Suggestions carries corrected queries.
func (e *Engine) SearchAll(query string, opts ...Option) *models.CombinedResponse {
	start := time.Now()
	o := e.options(0, e.config.AllMinScore, opts)
	if !o.productLimitSet {
		o.productLimit = e.config.AllProductLimit
	}
	if !o.categoryLimitSet {
		o.categoryLimit = e.config.AllCategoryLimit
	}

	snap := e.snapshot.Load()
	if snap == nil {
		return models.EmptyCombinedResponse("")
	}
	q := snap.Ranker.Analyze(query)
	if q.Empty() {
		e.done(KindAll, q, start, 0)
		return models.EmptyCombinedResponse("")
	}

	products := snap.Ranker.RankProducts(snap.Catalogue.Products(), snap.Catalogue.Categories(), q, o.minScore, o.productLimit)
	categories := snap.Ranker.RankCategories(snap.Catalogue.Categories(), q, o.minScore, o.categoryLimit)
	if o.highlight {
		e.highlightProducts(products, q.Normalized)
	}

	all := ranking.MergeHits(products, categories)
	resp := &models.CombinedResponse{
		Products:        products,
		Categories:      categories,
		All:             all,
		NormalizedQuery: q.Normalized,
		TotalResults:    len(all),
		HasResults:      len(all) > 0,
	}
	if !resp.HasResults && e.config.SpellCheckOrDefault() {
		resp.Suggestions = didYouMean(snap, q.Normalized, e.config.SuggestionLimit)
	}
	e.done(KindAll, q, start, resp.TotalResults)
	return resp
}

// Suggest returns autocomplete entries: products whose title equals or
// starts with the query, best match first. Queries shorter than two
// characters return nothing. A non-positive limit selects the configured one.
func (e *Engine) Suggest(query string, limit int) []models.Suggestion {
	start := time.Now()
	out := []models.Suggestion{}
	snap := e.snapshot.Load()
	if snap == nil || utf8.RuneCountInString(strings.TrimSpace(query)) < 2 {
		return out
	}
	if limit <= 0 {
		limit = e.config.SuggestionLimit
	}

	type candidate struct {
		product *models.Product
		score   float64
	}
	matcher := snap.Ranker.Matcher()
	var candidates []candidate
	for _, p := range snap.Catalogue.Products() {
		m := matcher.Match(p.Title, query)
		if m.Kind == models.MatchStarts || m.Kind == models.MatchExact {
			candidates = append(candidates, candidate{product: p, score: m.Score})
		}
	}
	slices.SortStableFunc(candidates, func(a, b candidate) int {
		return cmp.Compare(b.score, a.score)
	})

	for _, c := range candidates {
		if len(out) == limit {
			break
		}
		out = append(out, models.Suggestion{
			Text: c.product.Title,
			Type: string(models.HitProduct),
			ID:   c.product.ID,
			Slug: c.product.Slug,
		})
	}
	if e.observer != nil {
		e.observer.ObserveSearch(KindSuggest, time.Since(start), len(out))
	}
	return out
}

// Stats runs a wide combined search and summarizes it. It returns nil for a
// blank query.
func (e *Engine) Stats(query string) *models.SearchStats {
	if strings.TrimSpace(query) == "" {
		return nil
	}
	resp := e.SearchAll(query, WithProductLimit(statsLimit), WithCategoryLimit(statsLimit))

	productScores := make([]float64, len(resp.Products))
	for i, p := range resp.Products {
		productScores[i] = p.RelevanceScore
	}
	categoryScores := make([]float64, len(resp.Categories))
	for i, c := range resp.Categories {
		categoryScores[i] = c.RelevanceScore
	}
	return &models.SearchStats{
		Query:            resp.NormalizedQuery,
		TotalProducts:    len(resp.Products),
		TotalCategories:  len(resp.Categories),
		TotalResults:     resp.TotalResults,
		AvgProductScore:  utils.Mean(productScores),
		AvgCategoryScore: utils.Mean(categoryScores),
	}
}

// DidYouMean proposes corrected queries from the catalogue vocabulary. It
// returns nil when spell checking is off or every word is known.
func (e *Engine) DidYouMean(query string) []string {
	snap := e.snapshot.Load()
	if snap == nil {
		return nil
	}
	q := snap.Ranker.Analyze(query)
	if q.Empty() {
		return nil
	}
	return didYouMean(snap, q.Normalized, e.config.SuggestionLimit)
}

func didYouMean(snap *Snapshot, normalized string, limit int) []string {
	if snap.Spell == nil || normalized == "" {
		return nil
	}
	res, err := snap.Spell.Check(normalized)
	if err != nil || !res.HasCorrections {
		return nil
	}

	seen := map[string]struct{}{res.CorrectedQuery: {}}
	out := []string{res.CorrectedQuery}
	words := strings.Fields(normalized)
	for _, misspelled := range res.MisspelledTerms {
		for _, s := range snap.Spell.Suggest(misspelled) {
			variant := replaceWord(words, misspelled, s.Term)
			if _, dup := seen[variant]; dup {
				continue
			}
			seen[variant] = struct{}{}
			out = append(out, variant)
		}
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

func replaceWord(words []string, from, to string) string {
	out := make([]string, len(words))
	for i, w := range words {
		if w == from {
			w = to
		}
		out[i] = w
	}
	return strings.Join(out, " ")
}

func (e *Engine) highlightProducts(results []*models.ScoredProduct, query string) {
	for _, r := range results {
		r.Highlights = map[string]string{
			"title": e.highlighter.HighlightEscaped(r.Title, query),
		}
		if r.Description != "" {
			r.Highlights["description"] = e.highlighter.HighlightEscaped(r.Description, query)
		}
	}
}

func (e *Engine) done(kind string, q *ranking.AnalyzedQuery, start time.Time, results int) {
	elapsed := time.Since(start)
	e.logger.Debug("search",
		zap.String("kind", kind),
		zap.String("query", q.Raw),
		zap.String("normalized", q.Normalized),
		zap.Int("results", results),
		zap.Duration("duration", elapsed),
	)
	if e.observer != nil {
		e.observer.ObserveSearch(kind, elapsed, results)
	}
}
