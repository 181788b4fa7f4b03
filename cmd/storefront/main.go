// Package main is the storefront CLI entry point.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/hyperjump/storefront/internal/catalogue"
	"github.com/hyperjump/storefront/internal/cli"
	"github.com/hyperjump/storefront/internal/config"
	"github.com/hyperjump/storefront/internal/indexer"
	"github.com/hyperjump/storefront/internal/metrics"
	"github.com/hyperjump/storefront/internal/models"
	"github.com/hyperjump/storefront/internal/search"
	"github.com/hyperjump/storefront/internal/server"
	"github.com/hyperjump/storefront/internal/storage"
	"github.com/hyperjump/storefront/internal/synonyms"
	"github.com/hyperjump/storefront/internal/watcher"
	"github.com/hyperjump/storefront/pkg/utils"
)

var version = "dev"

const (
	defaultConfigPath = "/usr/local/etc/storefront/config.yaml"
	defaultServerURL  = "http://localhost:8080"
)

// loadConfig loads config from path. When path is the default, it first looks for
// config.yaml in the current directory (for development); if that exists it is used,
// so that "storefront server" from the project dir uses the project's config.
// Returns the config and the path that was actually loaded.
func loadConfig(path string) (*config.Config, string, error) {
	if path == defaultConfigPath {
		if cwd, cwdErr := os.Getwd(); cwdErr == nil {
			fallback := filepath.Join(cwd, "config.yaml")
			if _, statErr := os.Stat(fallback); statErr == nil {
				cfg, loadErr := config.Load(fallback)
				if loadErr != nil {
					return nil, "", loadErr
				}
				return cfg, fallback, nil
			}
		}
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, "", err
	}
	return cfg, path, nil
}

// localConfig loads the config for commands that search in-process. An
// explicit catalogue path overrides the configured one and makes a missing
// config file acceptable.
func localConfig(configPath, cataloguePath string) (*config.Config, error) {
	cfg, _, err := loadConfig(configPath)
	if err != nil {
		if cataloguePath == "" {
			return nil, err
		}
		cfg = config.Default()
	}
	if cataloguePath != "" {
		abs, err := filepath.Abs(cataloguePath)
		if err != nil {
			return nil, fmt.Errorf("invalid catalogue path: %w", err)
		}
		cfg.Catalogue.Path = abs
	}
	return cfg, nil
}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}
	command := os.Args[1]
	switch command {
	case "server":
		runServer()
	case "search":
		runSearch()
	case "categories":
		runCategories()
	case "products":
		runProducts()
	case "suggest":
		runSuggest()
	case "stats":
		runStats()
	case "validate":
		runValidate()
	case "status":
		runStatus()
	case "init":
		runInit()
	case "version", "--version", "-v":
		fmt.Printf("storefront version %s\n", version)
	case "help", "--help", "-h":
		printUsage()
	default:
		fmt.Printf("Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}

func runServer() {
	fs := flag.NewFlagSet("server", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "config file path")
	debug := fs.Bool("debug", false, "enable debug logging (per-request and per-search output)")
	_ = fs.Parse(os.Args[2:])

	cfg, resolvedConfigPath, err := loadConfig(*configPath)
	if err != nil {
		exitf("Failed to load config: %v", err)
	}
	debugMode := cfg.Debug || *debug
	logger, err := utils.NewLogger(debugMode)
	if err != nil {
		exitf("Failed to create logger: %v", err)
	}
	defer logger.Sync()

	logger.Info("config loaded",
		zap.String("config_path", resolvedConfigPath),
		zap.String("catalogue", cfg.Catalogue.Path),
		zap.Bool("debug", debugMode),
	)

	components, err := initializeComponents(cfg, logger, true)
	if err != nil {
		logger.Fatal("Failed to initialize components", zap.Error(err))
	}
	defer components.Close()

	watchCtx, watchCancel := context.WithCancel(context.Background())
	defer watchCancel()
	if cfg.Catalogue.Watch {
		idx := components.Indexer
		watchSvc, err := watcher.NewWatcher(
			idx.Sources(),
			func(path string) { idx.HandleChange(watchCtx, path) },
			watcher.WithLogger(logger),
			watcher.WithDebounce(cfg.Catalogue.Debounce),
		)
		if err != nil {
			logger.Fatal("Failed to create watcher", zap.Error(err))
		}
		if err := watchSvc.Start(watchCtx); err != nil {
			logger.Fatal("Failed to start watcher", zap.Error(err))
		}
		defer watchSvc.Stop()
	}

	srv := server.NewServer(components.Engine, components.Indexer, components.SearchLog, &cfg.Server, logger)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Server failed", zap.Error(err))
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	logger.Info("Shutting down...")
	watchCancel()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Stop(ctx)
}

// printSearchUsage prints search subcommand usage.
func printSearchUsage(fs *flag.FlagSet) {
	fmt.Fprintf(fs.Output(), "Usage: storefront search [flags] <query>\n\n")
	fmt.Fprintf(fs.Output(), "Query is all remaining arguments joined by spaces. Multi-word queries work with or without quotes.\n\n")
	fs.PrintDefaults()
	fmt.Fprintf(fs.Output(), `
Results list matching categories first, then products, each ranked by relevance.
  • --limit and --category-limit cap each list; --min-score drops weak matches.
  • Misspelled queries with no results print "Did you mean" corrections.
  • --server queries a running server instead of loading the catalogue.

Examples:
  storefront search tote bag
  storefront search "scented candles"                 # same as without quotes
  storefront search --min-score 50 --limit 3 crochet
  storefront search --output json --server http://localhost:8080 candel
`)
}

// buildSearchQuery joins all positional args with spaces so multi-word queries
// work the same with or without shell quoting (e.g. "tote bag" vs tote bag).
func buildSearchQuery(args []string) string {
	return strings.TrimSpace(strings.Join(args, " "))
}

// searchConfigPathFromArgs returns the value of -config/--config from args if present, else defaultPath.
func searchConfigPathFromArgs(args []string, defaultPath string) string {
	for i, a := range args {
		if (a == "-config" || a == "--config") && i+1 < len(args) {
			return args[i+1]
		}
	}
	return defaultPath
}

// searchDefaultsFromConfig loads config at path and returns the combined search
// defaults. On load failure the built-in defaults are returned.
func searchDefaultsFromConfig(path string) (productLimit, categoryLimit int, minScore float64) {
	cfg, _, err := loadConfig(path)
	if err != nil || cfg == nil {
		cfg = config.Default()
	}
	return cfg.Search.AllProductLimit, cfg.Search.AllCategoryLimit, cfg.Search.AllMinScore
}

// searchArgsReorder moves any flags (and their values) that appear after the query
// to the front of the slice so that flag.Parse() sees them. Go's flag package
// stops at the first non-flag argument, so "storefront search candles -limit 3"
// would otherwise leave -limit unparsed.
func searchArgsReorder(args []string) []string {
	for i, a := range args {
		if len(a) > 0 && a[0] == '-' {
			if i == 0 {
				return args
			}
			reordered := make([]string, 0, len(args))
			reordered = append(reordered, args[i:]...)
			reordered = append(reordered, args[:i]...)
			return reordered
		}
	}
	return args
}

func runSearch() {
	searchArgs := searchArgsReorder(os.Args[2:])
	configPath := searchConfigPathFromArgs(searchArgs, defaultConfigPath)
	defaultLimit, defaultCategoryLimit, defaultMinScore := searchDefaultsFromConfig(configPath)

	fs := flag.NewFlagSet("search", flag.ExitOnError)
	configPathFlag := fs.String("config", defaultConfigPath, "config file path")
	cataloguePath := fs.String("catalogue", "", "catalogue file (overrides the config)")
	serverURL := fs.String("server", "", "server URL (empty = load the catalogue in-process)")
	limit := fs.Int("limit", defaultLimit, "maximum number of products")
	categoryLimit := fs.Int("category-limit", defaultCategoryLimit, "maximum number of categories")
	minScore := fs.Float64("min-score", defaultMinScore, "minimum relevance score")
	highlight := fs.Bool("highlight", false, "include HTML highlights of the matched text")
	outputFormat := fs.String("output", "text", "output format: text (human-readable), compact (one result per line), or json (parseable)")
	fs.Usage = func() { printSearchUsage(fs) }
	_ = fs.Parse(searchArgs)

	queryStr := buildSearchQuery(fs.Args())
	if queryStr == "" {
		printSearchUsage(fs)
		os.Exit(1)
	}
	format, err := cli.ParseOutputFormat(*outputFormat)
	if err != nil {
		exitf("%v", err)
	}

	req := &searchRequest{
		Query:         queryStr,
		ProductLimit:  *limit,
		CategoryLimit: *categoryLimit,
		MinScore:      *minScore,
		Highlight:     *highlight,
	}

	var response *models.CombinedResponse
	if *serverURL != "" {
		response, err = searchViaHTTP(*serverURL, req)
		if err != nil {
			exitf("Search failed: %v", err)
		}
	} else {
		components := localComponents(*configPathFlag, *cataloguePath)
		defer components.Close()
		response = components.Engine.SearchAll(req.Query,
			search.WithProductLimit(req.ProductLimit),
			search.WithCategoryLimit(req.CategoryLimit),
			search.WithMinScore(req.MinScore),
			search.WithHighlights(req.Highlight),
		)
	}
	if err := cli.WriteSearchResults(os.Stdout, response, format); err != nil {
		exitf("Output failed: %v", err)
	}
}

func runCategories() {
	fs := flag.NewFlagSet("categories", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "config file path")
	cataloguePath := fs.String("catalogue", "", "catalogue file (overrides the config)")
	featured := fs.Bool("featured", false, "list featured categories only")
	outputFormat := fs.String("output", "text", "output format: text, compact, or json")
	_ = fs.Parse(os.Args[2:])

	format, err := cli.ParseOutputFormat(*outputFormat)
	if err != nil {
		exitf("%v", err)
	}
	components := localComponents(*configPath, *cataloguePath)
	defer components.Close()

	rows := categoryRows(components.Engine.Snapshot().Catalogue, *featured)
	if err := cli.WriteCategories(os.Stdout, rows, format); err != nil {
		exitf("Output failed: %v", err)
	}
}

// categoryRows lists categories in display order with their product counts.
func categoryRows(idx *catalogue.Index, featuredOnly bool) []cli.CategoryRow {
	categories := idx.SortedCategories()
	if featuredOnly {
		categories = idx.FeaturedCategories()
	}
	rows := make([]cli.CategoryRow, 0, len(categories))
	for _, c := range categories {
		rows = append(rows, cli.CategoryRow{
			ID:           c.ID,
			Name:         c.Name,
			Slug:         c.Slug,
			Order:        c.Order,
			Featured:     c.Featured,
			ProductCount: idx.ProductCount(c.ID),
		})
	}
	return rows
}

func runProducts() {
	fs := flag.NewFlagSet("products", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "config file path")
	cataloguePath := fs.String("catalogue", "", "catalogue file (overrides the config)")
	category := fs.String("category", "", "category id or slug (empty = all)")
	sortFlag := fs.String("sort", string(catalogue.DefaultSort), "sort order: relevance, latest, price-low, price-high")
	featured := fs.Bool("featured", false, "featured products only")
	popular := fs.Bool("popular", false, "popular products only")
	outputFormat := fs.String("output", "text", "output format: text, compact, or json")
	_ = fs.Parse(os.Args[2:])

	format, err := cli.ParseOutputFormat(*outputFormat)
	if err != nil {
		exitf("%v", err)
	}
	sortType, ok := catalogue.ParseSortType(*sortFlag)
	if !ok {
		exitf("Unknown sort %q", *sortFlag)
	}
	components := localComponents(*configPath, *cataloguePath)
	defer components.Close()

	idx := components.Engine.Snapshot().Catalogue
	products, err := productListing(idx, *category, *featured, *popular, sortType)
	if err != nil {
		exitf("%v", err)
	}
	if err := cli.WriteProducts(os.Stdout, products, idx.CategoryLabel, format); err != nil {
		exitf("Output failed: %v", err)
	}
}

// productListing filters the catalogue like the storefront's listing pages.
func productListing(idx *catalogue.Index, category string, featured, popular bool, sortType catalogue.SortType) ([]*models.Product, error) {
	var products []*models.Product
	switch {
	case category != "" && category != "all":
		if _, ok := idx.LookupCategory(category); !ok {
			return nil, fmt.Errorf("%w: %s", models.ErrCategoryNotFound, category)
		}
		products = idx.ProductsByCategory(category)
	case featured:
		products = idx.FeaturedProducts()
	case popular:
		products = idx.PopularProducts()
	default:
		products = idx.Products()
	}
	out := make([]*models.Product, 0, len(products))
	for _, p := range products {
		if (featured && !p.Featured) || (popular && !p.Popular) {
			continue
		}
		out = append(out, p)
	}
	return catalogue.SortProducts(out, sortType, nil), nil
}

func runSuggest() {
	fs := flag.NewFlagSet("suggest", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "config file path")
	cataloguePath := fs.String("catalogue", "", "catalogue file (overrides the config)")
	limit := fs.Int("limit", 0, "maximum number of suggestions (0 = config default)")
	outputFormat := fs.String("output", "text", "output format: text, compact, or json")
	_ = fs.Parse(searchArgsReorder(os.Args[2:]))

	query := buildSearchQuery(fs.Args())
	if query == "" {
		exitf("Usage: storefront suggest [flags] <prefix>")
	}
	format, err := cli.ParseOutputFormat(*outputFormat)
	if err != nil {
		exitf("%v", err)
	}
	components := localComponents(*configPath, *cataloguePath)
	defer components.Close()

	if err := cli.WriteSuggestions(os.Stdout, suggest(components.Engine, query, *limit), format); err != nil {
		exitf("Output failed: %v", err)
	}
}

// suggest runs autocomplete and falls back to spelling corrections when
// nothing matches.
func suggest(engine *search.Engine, query string, limit int) *cli.SuggestResult {
	cfg := engine.Config()
	if limit <= 0 {
		limit = cfg.SuggestionLimit
	}
	res := &cli.SuggestResult{Query: query, Suggestions: engine.Suggest(query, limit)}
	if len(res.Suggestions) == 0 && cfg.SpellCheckOrDefault() {
		res.DidYouMean = engine.DidYouMean(query)
	}
	return res
}

func runStats() {
	fs := flag.NewFlagSet("stats", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "config file path")
	cataloguePath := fs.String("catalogue", "", "catalogue file (overrides the config)")
	outputFormat := fs.String("output", "text", "output format: text, compact, or json")
	_ = fs.Parse(searchArgsReorder(os.Args[2:]))

	query := buildSearchQuery(fs.Args())
	if query == "" {
		exitf("Usage: storefront stats [flags] <query>")
	}
	format, err := cli.ParseOutputFormat(*outputFormat)
	if err != nil {
		exitf("%v", err)
	}
	components := localComponents(*configPath, *cataloguePath)
	defer components.Close()

	stats := components.Engine.Stats(query)
	if stats == nil {
		exitf("Query %q normalizes to nothing", query)
	}
	if err := cli.WriteStats(os.Stdout, stats, format); err != nil {
		exitf("Output failed: %v", err)
	}
}

func runValidate() {
	fs := flag.NewFlagSet("validate", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "config file path")
	cataloguePath := fs.String("catalogue", "", "catalogue file (overrides the config)")
	synonymsPath := fs.String("synonyms", "", "synonym tables file (overrides the config)")
	export := fs.String("export", "", "write the catalogue as YAML to this path")
	strict := fs.Bool("strict", false, "treat catalogue issues as errors")
	_ = fs.Parse(os.Args[2:])

	cfg, err := localConfig(*configPath, *cataloguePath)
	if err != nil {
		exitf("Failed to load config: %v", err)
	}
	if *synonymsPath != "" {
		cfg.Catalogue.SynonymsPath = *synonymsPath
	}
	idx, err := validateCatalogue(os.Stdout, cfg.Catalogue.Path, cfg.Catalogue.SynonymsPath)
	if err != nil {
		exitf("Validation failed: %v", err)
	}
	if *export != "" {
		if err := catalogue.Export(idx).Save(*export); err != nil {
			exitf("Export failed: %v", err)
		}
		fmt.Printf("exported:    %s\n", *export)
	}
	if *strict && len(idx.Issues()) > 0 {
		os.Exit(1)
	}
}

// validateCatalogue loads the catalogue and optional synonym tables and
// writes a summary with every catalogue issue to w.
func validateCatalogue(w io.Writer, cataloguePath, synonymsPath string) (*catalogue.Index, error) {
	idx, err := catalogue.Load(cataloguePath)
	if err != nil {
		return nil, err
	}
	fmt.Fprintf(w, "catalogue:   %s\n", cataloguePath)
	fmt.Fprintf(w, "fingerprint: %s\n", idx.Fingerprint())
	fmt.Fprintf(w, "products:    %d\n", len(idx.Products()))
	fmt.Fprintf(w, "categories:  %d\n", len(idx.Categories()))
	if synonymsPath != "" {
		tables, err := synonyms.LoadTables(synonymsPath)
		if err != nil {
			return nil, err
		}
		fmt.Fprintf(w, "synonyms:    %s (%d categories)\n", synonymsPath, len(tables.Categories))
		for _, c := range tables.Categories {
			if _, ok := idx.CategoryByIDOrSlug(c.Category); !ok {
				fmt.Fprintf(w, "warning: synonym category %q is not in the catalogue\n", c.Category)
			}
		}
	}
	issues := idx.Issues()
	fmt.Fprintf(w, "issues:      %d\n", len(issues))
	for _, issue := range issues {
		fmt.Fprintf(w, "  %s\n", issue)
	}
	return idx, nil
}

func runStatus() {
	fs := flag.NewFlagSet("status", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "config file path")
	serverURL := fs.String("server", defaultServerURL, "server URL (empty = load the catalogue in-process)")
	outputFormat := fs.String("output", "text", "output format: text or json")
	_ = fs.Parse(os.Args[2:])

	var status *statusResponse
	if *serverURL != "" {
		res, err := statusViaHTTP(*serverURL)
		if err != nil {
			exitf("Status failed: %v", err)
		}
		status = res
	} else {
		cfg, _, err := loadConfig(*configPath)
		if err != nil {
			exitf("Failed to load config: %v", err)
		}
		logger, err := utils.NewLogger(cfg.Debug)
		if err != nil {
			exitf("Failed to create logger: %v", err)
		}
		defer logger.Sync()
		components, err := initializeComponents(cfg, debugLogger(cfg.Debug, logger), true)
		if err != nil {
			exitf("Failed to initialize: %v", err)
		}
		defer components.Close()
		status, err = localStatus(context.Background(), components)
		if err != nil {
			exitf("Status failed: %v", err)
		}
	}

	switch *outputFormat {
	case "json":
		if err := writeJSON(os.Stdout, status); err != nil {
			exitf("Output failed: %v", err)
		}
	case "text":
		writeStatus(os.Stdout, status)
	default:
		exitf("Unknown output format %q; use text or json", *outputFormat)
	}
}

func runInit() {
	fs := flag.NewFlagSet("init", flag.ExitOnError)
	configPath := fs.String("config", "config.yaml", "config file to create")
	cataloguePath := fs.String("catalogue", "", "catalogue file to reference")
	force := fs.Bool("force", false, "overwrite an existing config file")
	_ = fs.Parse(os.Args[2:])

	if err := initConfig(*configPath, *cataloguePath, *force); err != nil {
		exitf("Init failed: %v", err)
	}
	fmt.Printf("Wrote %s\n", *configPath)
}

// initConfig writes a config with every default filled in.
func initConfig(path, cataloguePath string, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%s already exists (use -force to overwrite)", path)
	}
	cfg := config.Default()
	if cataloguePath != "" {
		cfg.Catalogue.Path = cataloguePath
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}
	}
	return config.Save(path, cfg)
}

// Components holds initialized services.
type Components struct {
	Engine    *search.Engine
	Indexer   *indexer.Indexer
	SearchLog storage.SearchLog
}

// Close releases the search log, if one was opened.
func (c *Components) Close() {
	if c.SearchLog != nil {
		_ = c.SearchLog.Close()
	}
}

// initializeComponents wires the engine, the indexer and, when configured and
// requested, the search log, then loads the catalogue.
func initializeComponents(cfg *config.Config, logger *zap.Logger, withSearchLog bool) (*Components, error) {
	engine := search.NewEngine(nil, &cfg.Search,
		search.WithLogger(logger),
		search.WithObserver(metrics.SearchObserver{}),
	)
	idx := indexer.NewIndexer(cfg, engine,
		indexer.WithLogger(logger),
		indexer.WithObserver(metrics.ReloadObserver{}),
	)
	components := &Components{Engine: engine, Indexer: idx}

	if withSearchLog && cfg.Storage.SearchLogPath != "" {
		searchLog, err := storage.NewSQLiteSearchLog(cfg.Storage.SearchLogPath)
		if err != nil {
			return nil, fmt.Errorf("failed to open search log: %w", err)
		}
		components.SearchLog = searchLog
	}

	if _, err := idx.Reload(context.Background()); err != nil {
		components.Close()
		return nil, fmt.Errorf("failed to load catalogue: %w", err)
	}
	return components, nil
}

// localComponents builds in-process components for one-shot commands,
// exiting on failure. Logging is only enabled in debug mode.
func localComponents(configPath, cataloguePath string) *Components {
	cfg, err := localConfig(configPath, cataloguePath)
	if err != nil {
		exitf("Failed to load config: %v", err)
	}
	logger, err := utils.NewLogger(cfg.Debug)
	if err != nil {
		exitf("Failed to create logger: %v", err)
	}
	components, err := initializeComponents(cfg, debugLogger(cfg.Debug, logger), false)
	if err != nil {
		exitf("Failed to initialize: %v", err)
	}
	return components
}

func debugLogger(debug bool, logger *zap.Logger) *zap.Logger {
	if debug {
		return logger
	}
	return zap.NewNop()
}

func printUsage() {
	fmt.Println(`storefront - Fuzzy search and ranking for a product catalogue

Usage:
  storefront server [flags]             Start the HTTP server
  storefront search [flags] <query>     Search products and categories
  storefront categories [flags]         List categories with product counts
  storefront products [flags]           List products by category, sorted
  storefront suggest [flags] <prefix>   Autocomplete product titles
  storefront stats [flags] <query>      Show result counts and average scores
  storefront validate [flags]           Check the catalogue and synonym files
  storefront status [flags]             Show the served catalogue and search log
  storefront init [flags]               Write a config file with defaults
  storefront version                    Show version
  storefront help                       Show this help

Server Flags:
  --config string    Config file path (default: /usr/local/etc/storefront/config.yaml)
  --debug            Enable debug logging

Search Flags:
  --config string          Config file path (also used for default limits)
  --catalogue string       Catalogue file, overrides the config
  --server string          Server URL; empty (default) loads the catalogue in-process
  --limit int              Maximum number of products (default from config, or 8)
  --category-limit int     Maximum number of categories (default from config, or 3)
  --min-score float        Minimum relevance score (default from config, or 10)
  --highlight              Include HTML highlights
  --output string          Output format: text, compact, or json (default: text)

Categories / Products / Suggest / Stats Flags:
  --config, --catalogue, --output as above
  --featured               Featured entries only (categories, products)
  --popular                Popular products only (products)
  --category string        Category id or slug (products)
  --sort string            relevance, latest, price-low, price-high (products)
  --limit int              Maximum number of suggestions (suggest)

Validate Flags:
  --catalogue string       Catalogue file, overrides the config
  --synonyms string        Synonym tables file, overrides the config
  --export string          Write the catalogue as YAML (e.g. to convert .xlsx)
  --strict                 Exit non-zero when the catalogue has issues

Status Flags:
  --server string          Server URL (default: http://localhost:8080). Use empty (--server "") to load in-process.
  --output string          Output format: text or json (default: text)

Examples:
  storefront server
  storefront search tote bag
  storefront search --output json "scented candles"
  storefront categories --featured
  storefront products --category candles --sort price-low
  storefront suggest cro
  storefront validate --catalogue products.xlsx --export catalogue.yaml
  storefront status --output json`)
}
