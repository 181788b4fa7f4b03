// Package indexer builds search snapshots from the configured catalogue and
// synonym files and installs them into the search engine.
package indexer

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/hyperjump/storefront/internal/catalogue"
	"github.com/hyperjump/storefront/internal/config"
	"github.com/hyperjump/storefront/internal/search"
	"github.com/hyperjump/storefront/internal/synonyms"
)

// Indexer loads catalogue sources into snapshots and swaps them into an Engine.
type Indexer struct {
	cfg      *config.Config
	engine   *search.Engine
	logger   *zap.Logger // optional; when set, logs reloads and warnings
	observer ReloadObserver

	// reloadMu is held across build and swap so an older build never
	// replaces a newer one.
	reloadMu sync.Mutex

	mu      sync.Mutex
	reloads int
	lastErr error
}

// ReloadObserver is notified after every Reload. products and categories
// describe the snapshot being served afterwards.
type ReloadObserver interface {
	ObserveReload(changed bool, err error, products, categories int)
}

// IndexerOption configures an Indexer.
type IndexerOption func(*Indexer)

// WithLogger sets a logger for reload and catalogue warning output.
func WithLogger(l *zap.Logger) IndexerOption {
	return func(idx *Indexer) { idx.logger = l }
}

// WithObserver registers o to be told about reload outcomes.
func WithObserver(o ReloadObserver) IndexerOption {
	return func(idx *Indexer) { idx.observer = o }
}

// NewIndexer creates an indexer that installs snapshots into engine.
func NewIndexer(cfg *config.Config, engine *search.Engine, opts ...IndexerOption) *Indexer {
	idx := &Indexer{
		cfg:    cfg,
		engine: engine,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(idx)
	}
	return idx
}

// Build loads the catalogue and synonym tables and derives a new snapshot.
// It does not touch the engine.
func (idx *Indexer) Build(ctx context.Context) (*search.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	path := idx.cfg.Catalogue.Path
	if path == "" {
		return nil, fmt.Errorf("no catalogue path configured")
	}
	cat, err := catalogue.Load(path)
	if err != nil {
		return nil, err
	}
	for _, issue := range cat.Issues() {
		idx.logger.Warn("catalogue issue",
			zap.Int("product_id", issue.ProductID),
			zap.String("message", issue.Message),
		)
	}

	var tables *synonyms.Tables
	if p := idx.cfg.Catalogue.SynonymsPath; p != "" {
		tables, err = synonyms.LoadTables(p)
		if err != nil {
			return nil, err
		}
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	snap, err := search.NewSnapshot(cat,
		search.WithWeights(idx.cfg.Ranking),
		search.WithSynonymTables(tables),
		search.WithAccentFolding(idx.cfg.Search.FoldAccents),
		search.WithSpellCheck(idx.cfg.Search.SpellCheckOrDefault()),
		search.WithSource(path),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to build snapshot: %w", err)
	}
	return snap, nil
}

// Reload builds a snapshot and swaps it in. The engine keeps serving the
// previous snapshot when the build fails. changed is false when the
// catalogue fingerprint and synonym source are unchanged. Concurrent calls
// run one after another.
func (idx *Indexer) Reload(ctx context.Context) (changed bool, err error) {
	idx.reloadMu.Lock()
	defer idx.reloadMu.Unlock()

	start := time.Now()
	snap, err := idx.Build(ctx)

	idx.mu.Lock()
	defer idx.mu.Unlock()
	defer func() { idx.observe(changed, err) }()
	idx.lastErr = err
	if err != nil {
		idx.logger.Warn("catalogue reload failed, keeping current snapshot", zap.Error(err))
		return false, err
	}

	prev := idx.engine.Snapshot()
	if prev != nil && idx.cfg.Catalogue.SynonymsPath == "" &&
		prev.Catalogue.Fingerprint() == snap.Catalogue.Fingerprint() {
		idx.logger.Debug("catalogue unchanged", zap.String("fingerprint", snap.Catalogue.Fingerprint()))
		return false, nil
	}

	idx.engine.Swap(snap)
	idx.reloads++
	idx.logger.Info("catalogue loaded",
		zap.String("path", snap.Source),
		zap.Int("products", len(snap.Catalogue.Products())),
		zap.Int("categories", len(snap.Catalogue.Categories())),
		zap.Int("vocabulary", snap.VocabularySize),
		zap.Int("issues", len(snap.Catalogue.Issues())),
		zap.Duration("duration", time.Since(start)),
	)
	return true, nil
}

func (idx *Indexer) observe(changed bool, err error) {
	if idx.observer == nil {
		return
	}
	var products, categories int
	if snap := idx.engine.Snapshot(); snap != nil {
		products = len(snap.Catalogue.Products())
		categories = len(snap.Catalogue.Categories())
	}
	idx.observer.ObserveReload(changed, err, products, categories)
}

// HandleChange is the watcher callback: it reloads when path is one of the
// configured source files.
func (idx *Indexer) HandleChange(ctx context.Context, path string) {
	if !idx.IsSource(path) {
		return
	}
	idx.logger.Debug("catalogue source changed", zap.String("path", path))
	_, _ = idx.Reload(ctx)
}

// IsSource reports whether path is the catalogue or the synonym tables file.
func (idx *Indexer) IsSource(path string) bool {
	clean := filepath.Clean(path)
	for _, p := range idx.Sources() {
		if filepath.Clean(p) == clean {
			return true
		}
	}
	return false
}

// Sources returns the configured source files.
func (idx *Indexer) Sources() []string {
	var out []string
	if p := idx.cfg.Catalogue.Path; p != "" {
		out = append(out, p)
	}
	if p := idx.cfg.Catalogue.SynonymsPath; p != "" {
		out = append(out, p)
	}
	return out
}

// Status describes the snapshot currently served.
type Status struct {
	Loaded      bool      `json:"loaded"`
	Source      string    `json:"source"`
	Fingerprint string    `json:"fingerprint"`
	Products    int       `json:"products"`
	Categories  int       `json:"categories"`
	Vocabulary  int       `json:"vocabulary"`
	Issues      []string  `json:"issues"`
	LoadedAt    time.Time `json:"loaded_at"`
	Reloads     int       `json:"reloads"`
	LastError   string    `json:"last_error,omitempty"`
}

// Status reports the served snapshot and the outcome of the last reload.
func (idx *Indexer) Status() *Status {
	idx.mu.Lock()
	st := &Status{Reloads: idx.reloads, Issues: []string{}}
	if idx.lastErr != nil {
		st.LastError = idx.lastErr.Error()
	}
	idx.mu.Unlock()

	snap := idx.engine.Snapshot()
	if snap == nil {
		return st
	}
	st.Loaded = true
	st.Source = snap.Source
	st.Fingerprint = snap.Catalogue.Fingerprint()
	st.Products = len(snap.Catalogue.Products())
	st.Categories = len(snap.Catalogue.Categories())
	st.Vocabulary = snap.VocabularySize
	st.LoadedAt = snap.LoadedAt
	for _, issue := range snap.Catalogue.Issues() {
		st.Issues = append(st.Issues, issue.String())
	}
	return st
}
