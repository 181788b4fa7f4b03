// Package config provides configuration loading and structs for the storefront search server.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/hyperjump/storefront/internal/ranking"
)

// Config holds all configuration for the application.
type Config struct {
	Debug     bool                    `yaml:"debug"`
	Server    ServerConfig            `yaml:"server"`
	Catalogue CatalogueConfig         `yaml:"catalogue"`
	Search    SearchConfig            `yaml:"search"`
	Ranking   *ranking.ScoringWeights `yaml:"ranking"`
	Storage   StorageConfig           `yaml:"storage"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// CatalogueConfig points at the catalogue and synonym table files.
type CatalogueConfig struct {
	// Path is a .yaml, .yml, .json or .xlsx catalogue.
	Path string `yaml:"path"`
	// SynonymsPath optionally replaces the built-in synonym tables.
	SynonymsPath string `yaml:"synonyms_path"`
	// Watch reloads the catalogue when either file changes.
	Watch    bool          `yaml:"watch"`
	Debounce time.Duration `yaml:"debounce"`
}

// SearchConfig holds result limits and per-entry-point minimum scores.
type SearchConfig struct {
	ProductLimit     int     `yaml:"product_limit"`
	ProductMinScore  float64 `yaml:"product_min_score"`
	CategoryLimit    int     `yaml:"category_limit"`
	CategoryMinScore float64 `yaml:"category_min_score"`
	AllProductLimit  int     `yaml:"all_product_limit"`
	AllCategoryLimit int     `yaml:"all_category_limit"`
	AllMinScore      float64 `yaml:"all_min_score"`
	SuggestionLimit  int     `yaml:"suggestion_limit"`
	MaxLimit         int     `yaml:"max_limit"`
	FoldAccents      bool    `yaml:"fold_accents"`
	HighlightClass   string  `yaml:"highlight_class"`
	SpellCheck       *bool   `yaml:"spell_check"`
}

// SpellCheckOrDefault returns whether "did you mean" suggestions are enabled; defaults to true when unset.
func (s *SearchConfig) SpellCheckOrDefault() bool {
	if s.SpellCheck != nil {
		return *s.SpellCheck
	}
	return true
}

// StorageConfig holds paths for optional persistent state.
type StorageConfig struct {
	// SearchLogPath is the SQLite search analytics log; empty disables it.
	SearchLogPath string `yaml:"search_log_path"`
}

// Load reads the config file at path over Default, expands paths, and applies defaults.
// Returns an error if the file cannot be read or parsed.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	// Keys absent from the file keep their Default values, so an explicit
	// zero such as popular_bonus: 0 survives.
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	ApplyDefaults(cfg)

	configDir := filepath.Dir(path)
	cfg.Catalogue.Path = expandPath(cfg.Catalogue.Path, configDir)
	if cfg.Catalogue.SynonymsPath != "" {
		cfg.Catalogue.SynonymsPath = expandPath(cfg.Catalogue.SynonymsPath, configDir)
	}
	if cfg.Storage.SearchLogPath != "" {
		cfg.Storage.SearchLogPath = expandPath(cfg.Storage.SearchLogPath, configDir)
	}

	return cfg, nil
}

// Save writes the config to path.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// expandPath converts a path to absolute. Paths starting with "./" are relative to configDir;
// other relative paths are relative to the home directory.
func expandPath(path string, configDir string) string {
	if filepath.IsAbs(path) {
		return path
	}
	if strings.HasPrefix(path, "./") || path == "." {
		return filepath.Join(configDir, path)
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, path)
	}
	return path
}
