package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
server:
  host: "127.0.0.1"
  port: 9000
catalogue:
  path: "/srv/shop/catalogue.yaml"
  watch: true
  debounce: 2s
search:
  product_limit: 20
  fold_accents: true
  spell_check: false
ranking:
  title_weight: 3
`
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Server.Host != "127.0.0.1" || cfg.Server.Port != 9000 {
		t.Errorf("unexpected server config: %+v", cfg.Server)
	}
	if cfg.Catalogue.Path != "/srv/shop/catalogue.yaml" || !cfg.Catalogue.Watch {
		t.Errorf("unexpected catalogue config: %+v", cfg.Catalogue)
	}
	if cfg.Catalogue.Debounce != 2*time.Second {
		t.Errorf("debounce = %v, want 2s", cfg.Catalogue.Debounce)
	}
	if cfg.Search.ProductLimit != 20 || cfg.Search.CategoryLimit != 5 {
		t.Errorf("unexpected limits: %+v", cfg.Search)
	}
	if !cfg.Search.FoldAccents || cfg.Search.SpellCheckOrDefault() {
		t.Errorf("fold_accents/spell_check not honoured: %+v", cfg.Search)
	}
	if cfg.Ranking.TitleWeight != 3 || cfg.Ranking.CategoryBoost != 80 {
		t.Errorf("ranking weights = %+v", cfg.Ranking)
	}
	if cfg.Storage.SearchLogPath != "" {
		t.Error("search log should stay disabled when unset")
	}
	if cfg.Debug {
		t.Error("debug should default to false when unset")
	}
}

func TestLoad_explicitZeros(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
search:
  product_min_score: 0
  product_limit: 0
ranking:
  popular_bonus: 0
  featured_bonus: 0
`
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Search.ProductMinScore != 0 {
		t.Errorf("product_min_score = %v, want 0", cfg.Search.ProductMinScore)
	}
	if cfg.Ranking.PopularBonus != 0 || cfg.Ranking.FeaturedBonus != 0 {
		t.Errorf("bonuses = %v/%v, want 0/0", cfg.Ranking.PopularBonus, cfg.Ranking.FeaturedBonus)
	}
	// Untouched keys keep their defaults.
	if cfg.Search.CategoryMinScore != 10 || cfg.Ranking.IntentBonus != 100 {
		t.Errorf("defaults lost: %v %v", cfg.Search.CategoryMinScore, cfg.Ranking.IntentBonus)
	}
	// A zero limit has no meaning and falls back.
	if cfg.Search.ProductLimit != 10 {
		t.Errorf("product_limit = %d, want 10", cfg.Search.ProductLimit)
	}
}

func TestLoad_nullRanking(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("ranking:\n"), 0600); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Ranking == nil || cfg.Ranking.ExactScore != 100 {
		t.Errorf("ranking = %+v, want defaults", cfg.Ranking)
	}
}

func TestLoad_debugTrue(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("debug: true\n"), 0600); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if !cfg.Debug {
		t.Error("debug should be true when set in config")
	}
}

func TestLoad_expandPathDotSlashRelativeToConfigDir(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
catalogue:
  path: "./data/catalogue.xlsx"
  synonyms_path: "./data/synonyms.yaml"
storage:
  search_log_path: "./data/searches.db"
`
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	tests := map[string]string{
		cfg.Catalogue.Path:         filepath.Join(dir, "data", "catalogue.xlsx"),
		cfg.Catalogue.SynonymsPath: filepath.Join(dir, "data", "synonyms.yaml"),
		cfg.Storage.SearchLogPath:  filepath.Join(dir, "data", "searches.db"),
	}
	for got, want := range tests {
		if got != want {
			t.Errorf("path = %s, want %s", got, want)
		}
	}
}

func TestLoad_Errors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing file should fail")
	}
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("server: [\n"), 0600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("malformed yaml should fail")
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	ApplyDefaults(cfg)
	if cfg.Server.Host != "localhost" {
		t.Errorf("default host: got %s", cfg.Server.Host)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("default port: got %d", cfg.Server.Port)
	}
	if cfg.Catalogue.Path != DefaultCataloguePath || cfg.Catalogue.Debounce != 500*time.Millisecond {
		t.Errorf("catalogue defaults: %+v", cfg.Catalogue)
	}

	s := cfg.Search
	ints := []struct {
		name      string
		got, want int
	}{
		{"product_limit", s.ProductLimit, 10},
		{"category_limit", s.CategoryLimit, 5},
		{"all_product_limit", s.AllProductLimit, 8},
		{"all_category_limit", s.AllCategoryLimit, 3},
		{"suggestion_limit", s.SuggestionLimit, 5},
		{"max_limit", s.MaxLimit, 100},
	}
	for _, tt := range ints {
		if tt.got != tt.want {
			t.Errorf("%s = %d, want %d", tt.name, tt.got, tt.want)
		}
	}
	if s.ProductMinScore != 0 || s.CategoryMinScore != 0 || s.AllMinScore != 0 {
		t.Errorf("zero min scores are valid and must be kept: %v %v %v", s.ProductMinScore, s.CategoryMinScore, s.AllMinScore)
	}
	d := Default().Search
	if d.ProductMinScore != 5 || d.CategoryMinScore != 10 || d.AllMinScore != 10 {
		t.Errorf("default min scores: %v %v %v", d.ProductMinScore, d.CategoryMinScore, d.AllMinScore)
	}
	if s.HighlightClass != "search-highlight" {
		t.Errorf("highlight class: %q", s.HighlightClass)
	}
	if s.FoldAccents {
		t.Error("accent folding should default to off")
	}
	if cfg.Ranking == nil || cfg.Ranking.ExactScore != 100 {
		t.Errorf("ranking defaults: %+v", cfg.Ranking)
	}
}

func TestSearchConfig_SpellCheckOrDefault(t *testing.T) {
	t.Run("nil_returns_true", func(t *testing.T) {
		s := &SearchConfig{}
		if got := s.SpellCheckOrDefault(); !got {
			t.Errorf("SpellCheckOrDefault() = %v, want true", got)
		}
	})
	t.Run("false_returns_false", func(t *testing.T) {
		f := false
		s := &SearchConfig{SpellCheck: &f}
		if got := s.SpellCheckOrDefault(); got {
			t.Errorf("SpellCheckOrDefault() = %v, want false", got)
		}
	})
}

func TestSave(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "saved.yaml")
	cfg := Default()
	cfg.Server.Port = 9090
	cfg.Catalogue.Path = "/tmp/catalogue.yaml"
	cfg.Ranking.IntentBonus = 120
	if err := Save(path, cfg); err != nil {
		t.Fatal(err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Server.Port != 9090 {
		t.Errorf("loaded port: got %d", loaded.Server.Port)
	}
	if loaded.Ranking.IntentBonus != 120 {
		t.Errorf("loaded intent bonus: got %v", loaded.Ranking.IntentBonus)
	}
	if loaded.Catalogue.Debounce != cfg.Catalogue.Debounce {
		t.Errorf("loaded debounce: got %v", loaded.Catalogue.Debounce)
	}
}

func TestLoad_exampleMatchesDefaults(t *testing.T) {
	cfg, err := Load("../../config.example.yaml")
	if err != nil {
		t.Fatalf("Load example: %v", err)
	}
	def := Default()
	if !reflect.DeepEqual(cfg.Ranking, def.Ranking) {
		t.Errorf("example ranking = %+v, want %+v", cfg.Ranking, def.Ranking)
	}
	search := cfg.Search
	search.SpellCheck = nil
	if !reflect.DeepEqual(search, def.Search) {
		t.Errorf("example search = %+v, want %+v", search, def.Search)
	}
	if cfg.Server != def.Server || cfg.Catalogue.Debounce != def.Catalogue.Debounce {
		t.Errorf("example server/debounce = %+v, %v", cfg.Server, cfg.Catalogue.Debounce)
	}
	if !cfg.Catalogue.Watch || filepath.Base(cfg.Catalogue.Path) != "catalogue.yaml" || cfg.Storage.SearchLogPath != "" {
		t.Errorf("example catalogue/storage = %+v, %+v", cfg.Catalogue, cfg.Storage)
	}
}
