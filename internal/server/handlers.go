package server

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/hyperjump/storefront/internal/catalogue"
	"github.com/hyperjump/storefront/internal/indexer"
	"github.com/hyperjump/storefront/internal/models"
	"github.com/hyperjump/storefront/internal/search"
)

// Error codes returned next to the message of 4xx/5xx responses.
const (
	codeInvalidQueryType = "InvalidQueryType"
	codeBadRequest       = "BadRequest"
	codeNotFound         = "NotFound"
	codeUnavailable      = "CatalogueUnavailable"
	codeInternal         = "InternalError"
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type searchLogStatus struct {
	Enabled   bool  `json:"enabled"`
	Searches  int64 `json:"searches"`
	SizeBytes int64 `json:"size_bytes,omitempty"`
}

type statusResponse struct {
	Catalogue *indexer.Status  `json:"catalogue"`
	SearchLog searchLogStatus  `json:"search_log"`
	SortTypes []sortTypeOption `json:"sort_types"`
}

type sortTypeOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	resp := statusResponse{}
	if s.status != nil {
		resp.Catalogue = s.status.Status()
	}
	for _, st := range catalogue.SortTypes() {
		resp.SortTypes = append(resp.SortTypes, sortTypeOption{Value: string(st), Label: st.Label()})
	}
	if s.searchLog != nil {
		n, err := s.searchLog.CountSearches(r.Context())
		if err != nil {
			s.logger.Error("status: count searches failed", zap.Error(err))
			s.respondError(w, http.StatusInternalServerError, codeInternal, err.Error())
			return
		}
		resp.SearchLog = searchLogStatus{Enabled: true, Searches: n}
		if sized, ok := s.searchLog.(interface{ SizeBytes() (int64, error) }); ok {
			if size, err := sized.SizeBytes(); err == nil {
				resp.SearchLog.SizeBytes = size
			}
		}
	}
	s.respondJSON(w, http.StatusOK, resp)
}

// searchRequest is the POST /search body. Query stays untyped so a
// non-string value can be rejected with a precise error.
type searchRequest struct {
	Query         any      `json:"query"`
	ProductLimit  *int     `json:"product_limit,omitempty"`
	CategoryLimit *int     `json:"category_limit,omitempty"`
	MinScore      *float64 `json:"min_score,omitempty"`
	Highlight     bool     `json:"highlight,omitempty"`
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	p := newParams(r)
	cfg := s.engine.Config()
	opts := []search.Option{
		search.WithProductLimit(s.clamp(p.intParam("product_limit", cfg.AllProductLimit))),
		search.WithCategoryLimit(s.clamp(p.intParam("category_limit", cfg.AllCategoryLimit))),
		search.WithMinScore(p.floatParam("min_score", cfg.AllMinScore)),
		search.WithHighlights(p.boolParam("highlight", false)),
	}
	if err := p.err(); err != nil {
		s.respondError(w, http.StatusBadRequest, codeBadRequest, err.Error())
		return
	}
	s.searchAll(w, r, p.query(), opts)
}

func (s *Server) handleSearchJSON(w http.ResponseWriter, r *http.Request) {
	var req searchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, codeBadRequest, "invalid request body")
		return
	}
	query, err := search.ProcessQuery(req.Query)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, codeInvalidQueryType, err.Error())
		return
	}
	cfg := s.engine.Config()
	productLimit, categoryLimit, minScore := cfg.AllProductLimit, cfg.AllCategoryLimit, cfg.AllMinScore
	if req.ProductLimit != nil {
		productLimit = *req.ProductLimit
	}
	if req.CategoryLimit != nil {
		categoryLimit = *req.CategoryLimit
	}
	if req.MinScore != nil {
		minScore = *req.MinScore
	}
	s.searchAll(w, r, query, []search.Option{
		search.WithProductLimit(s.clamp(productLimit)),
		search.WithCategoryLimit(s.clamp(categoryLimit)),
		search.WithMinScore(minScore),
		search.WithHighlights(req.Highlight),
	})
}

func (s *Server) searchAll(w http.ResponseWriter, r *http.Request, query string, opts []search.Option) {
	if !s.ready(w) {
		return
	}
	start := time.Now()
	resp := s.engine.SearchAll(query, opts...)
	s.record(r.Context(), search.KindAll, query, resp.NormalizedQuery, resp.TotalResults, start)
	s.respondJSON(w, http.StatusOK, resp)
}

type productsResponse struct {
	Query    string                  `json:"query"`
	Sort     catalogue.SortType      `json:"sort"`
	Total    int                     `json:"total"`
	Products []*models.ScoredProduct `json:"products"`
}

func (s *Server) handleSearchProducts(w http.ResponseWriter, r *http.Request) {
	p := newParams(r)
	cfg := s.engine.Config()
	limit := s.clamp(p.intParam("limit", cfg.ProductLimit))
	minScore := p.floatParam("min_score", cfg.ProductMinScore)
	highlight := p.boolParam("highlight", false)
	sortType := p.sort()
	if err := p.err(); err != nil {
		s.respondError(w, http.StatusBadRequest, codeBadRequest, err.Error())
		return
	}
	if !s.ready(w) {
		return
	}

	start := time.Now()
	query := p.query()
	results := s.engine.SearchProducts(query,
		search.WithLimit(limit),
		search.WithMinScore(minScore),
		search.WithHighlights(highlight),
	)
	results = sortScored(results, sortType)
	s.record(r.Context(), search.KindProducts, query, s.engine.Normalize(query), len(results), start)
	s.respondJSON(w, http.StatusOK, productsResponse{
		Query:    query,
		Sort:     sortType,
		Total:    len(results),
		Products: results,
	})
}

// sortScored reorders ranked results by sortType; relevance keeps the
// ranker's order.
func sortScored(results []*models.ScoredProduct, sortType catalogue.SortType) []*models.ScoredProduct {
	if sortType == catalogue.SortRelevance || len(results) < 2 {
		return results
	}
	byID := make(map[int]*models.ScoredProduct, len(results))
	products := make([]*models.Product, len(results))
	for i, r := range results {
		byID[r.ID] = r
		products[i] = r.Product
	}
	sorted := catalogue.SortProducts(products, sortType, catalogue.RelevanceScores(results))
	out := make([]*models.ScoredProduct, len(sorted))
	for i, p := range sorted {
		out[i] = byID[p.ID]
	}
	return out
}

type categoriesResponse struct {
	Query      string                   `json:"query"`
	Total      int                      `json:"total"`
	Categories []*models.ScoredCategory `json:"categories"`
}

func (s *Server) handleSearchCategories(w http.ResponseWriter, r *http.Request) {
	p := newParams(r)
	cfg := s.engine.Config()
	limit := s.clamp(p.intParam("limit", cfg.CategoryLimit))
	minScore := p.floatParam("min_score", cfg.CategoryMinScore)
	if err := p.err(); err != nil {
		s.respondError(w, http.StatusBadRequest, codeBadRequest, err.Error())
		return
	}
	if !s.ready(w) {
		return
	}

	start := time.Now()
	query := p.query()
	results := s.engine.SearchCategories(query, search.WithLimit(limit), search.WithMinScore(minScore))
	s.record(r.Context(), search.KindCategories, query, s.engine.Normalize(query), len(results), start)
	s.respondJSON(w, http.StatusOK, categoriesResponse{Query: query, Total: len(results), Categories: results})
}

type suggestResponse struct {
	Query       string              `json:"query"`
	Suggestions []models.Suggestion `json:"suggestions"`
	DidYouMean  []string            `json:"didYouMean,omitempty"`
}

func (s *Server) handleSuggest(w http.ResponseWriter, r *http.Request) {
	p := newParams(r)
	limit := s.clamp(p.intParam("limit", s.engine.Config().SuggestionLimit))
	if err := p.err(); err != nil {
		s.respondError(w, http.StatusBadRequest, codeBadRequest, err.Error())
		return
	}
	if !s.ready(w) {
		return
	}
	query := p.query()
	resp := suggestResponse{Query: query, Suggestions: []models.Suggestion{}}
	if limit > 0 {
		resp.Suggestions = s.engine.Suggest(query, limit)
	}
	if len(resp.Suggestions) == 0 && s.engine.Config().SpellCheckOrDefault() {
		resp.DidYouMean = s.engine.DidYouMean(query)
	}
	s.respondJSON(w, http.StatusOK, resp)
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	if !s.ready(w) {
		return
	}
	stats := s.engine.Stats(r.URL.Query().Get("q"))
	if stats == nil {
		s.respondError(w, http.StatusBadRequest, codeBadRequest, "query is required")
		return
	}
	s.respondJSON(w, http.StatusOK, stats)
}

type categoryEntry struct {
	*models.Category
	ProductCount int `json:"productCount"`
}

func (s *Server) handleCategories(w http.ResponseWriter, r *http.Request) {
	snap := s.snapshot(w)
	if snap == nil {
		return
	}
	cat := snap.Catalogue
	sorted := cat.SortedCategories()
	out := make([]categoryEntry, len(sorted))
	for i, c := range sorted {
		out[i] = categoryEntry{Category: c, ProductCount: cat.ProductCount(c.ID)}
	}
	s.respondJSON(w, http.StatusOK, map[string]any{"categories": out, "total": len(out)})
}

type categoryProductsResponse struct {
	Category *models.Category   `json:"category"`
	Sort     catalogue.SortType `json:"sort"`
	Total    int                `json:"total"`
	Products []*models.Product  `json:"products"`
}

func (s *Server) handleCategoryProducts(w http.ResponseWriter, r *http.Request) {
	p := newParams(r)
	sortType := p.sort()
	if err := p.err(); err != nil {
		s.respondError(w, http.StatusBadRequest, codeBadRequest, err.Error())
		return
	}
	snap := s.snapshot(w)
	if snap == nil {
		return
	}
	c, ok := snap.Catalogue.LookupCategory(chi.URLParam(r, "idOrSlug"))
	if !ok {
		s.respondError(w, http.StatusNotFound, codeNotFound, models.ErrCategoryNotFound.Error())
		return
	}
	products := catalogue.SortProducts(snap.Catalogue.ProductsByCategory(c.ID), sortType, nil)
	s.respondJSON(w, http.StatusOK, categoryProductsResponse{
		Category: c,
		Sort:     sortType,
		Total:    len(products),
		Products: products,
	})
}

type productResponse struct {
	*models.Product
	CategoryLabel string           `json:"categoryLabel"`
	Category      *models.Category `json:"categoryDetails,omitempty"`
}

func (s *Server) handleProduct(w http.ResponseWriter, r *http.Request) {
	snap := s.snapshot(w)
	if snap == nil {
		return
	}
	idOrSlug := chi.URLParam(r, "idOrSlug")
	var (
		product *models.Product
		ok      bool
	)
	if id, err := strconv.Atoi(idOrSlug); err == nil {
		product, ok = snap.Catalogue.ProductByID(id)
	}
	if !ok {
		product, ok = snap.Catalogue.ProductBySlug(idOrSlug)
	}
	if !ok {
		s.respondError(w, http.StatusNotFound, codeNotFound, models.ErrProductNotFound.Error())
		return
	}
	resp := productResponse{Product: product, CategoryLabel: snap.Catalogue.CategoryLabel(product)}
	if c, found := snap.Catalogue.ProductCategory(product); found {
		resp.Category = c
	}
	s.respondJSON(w, http.StatusOK, resp)
}

type analyticsResponse struct {
	TotalSearches     int64               `json:"total_searches"`
	TopQueries        []models.QueryCount `json:"top_queries"`
	ZeroResultQueries []models.QueryCount `json:"zero_result_queries"`
}

func (s *Server) handleAnalyticsQueries(w http.ResponseWriter, r *http.Request) {
	if s.searchLog == nil {
		s.respondError(w, http.StatusNotFound, codeNotFound, models.ErrSearchLogDisabled.Error())
		return
	}
	p := newParams(r)
	limit := s.clamp(p.intParam("limit", 10))
	if err := p.err(); err != nil {
		s.respondError(w, http.StatusBadRequest, codeBadRequest, err.Error())
		return
	}
	ctx := r.Context()
	var resp analyticsResponse
	var err error
	if resp.TotalSearches, err = s.searchLog.CountSearches(ctx); err == nil {
		if resp.TopQueries, err = s.searchLog.TopQueries(ctx, limit); err == nil {
			resp.ZeroResultQueries, err = s.searchLog.ZeroResultQueries(ctx, limit)
		}
	}
	if err != nil {
		s.logger.Error("analytics query failed", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, codeInternal, err.Error())
		return
	}
	s.respondJSON(w, http.StatusOK, resp)
}

// record logs a search event when analytics are enabled. Failures are
// logged and never fail the request.
func (s *Server) record(ctx context.Context, kind, query, normalized string, results int, start time.Time) {
	if s.searchLog == nil || strings.TrimSpace(query) == "" {
		return
	}
	ev := &models.SearchEvent{
		Query:           query,
		NormalizedQuery: normalized,
		Kind:            kind,
		ResultCount:     results,
		DurationMS:      time.Since(start).Milliseconds(),
	}
	if err := s.searchLog.RecordSearch(ctx, ev); err != nil {
		s.logger.Warn("failed to record search", zap.Error(err))
	}
}

func (s *Server) clamp(n int) int {
	return search.ClampLimit(n, s.engine.Config().MaxLimit)
}

// ready responds 503 and returns false when no catalogue is loaded yet.
func (s *Server) ready(w http.ResponseWriter) bool {
	return s.snapshot(w) != nil
}

func (s *Server) snapshot(w http.ResponseWriter) *search.Snapshot {
	snap := s.engine.Snapshot()
	if snap == nil {
		s.respondError(w, http.StatusServiceUnavailable, codeUnavailable, "catalogue not loaded")
	}
	return snap
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func (s *Server) respondError(w http.ResponseWriter, status int, code, message string) {
	s.respondJSON(w, status, map[string]string{"error": message, "code": code})
}
