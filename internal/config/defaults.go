package config

import (
	"time"

	"github.com/hyperjump/storefront/internal/ranking"
)

// DefaultCataloguePath is used when no catalogue path is configured.
const DefaultCataloguePath = "/usr/local/var/storefront/catalogue.yaml"

// ApplyDefaults fills settings that have no meaningful zero value: the
// server address, paths, limits and a missing ranking section. Minimum
// scores and ranking weights accept zero and are left alone; Default
// supplies their starting values.
func ApplyDefaults(cfg *Config) {
	if cfg.Server.Host == "" {
		cfg.Server.Host = "localhost"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Catalogue.Path == "" {
		cfg.Catalogue.Path = DefaultCataloguePath
	}
	if cfg.Catalogue.Debounce == 0 {
		cfg.Catalogue.Debounce = 500 * time.Millisecond
	}
	if cfg.Search.ProductLimit == 0 {
		cfg.Search.ProductLimit = 10
	}
	if cfg.Search.CategoryLimit == 0 {
		cfg.Search.CategoryLimit = 5
	}
	if cfg.Search.AllProductLimit == 0 {
		cfg.Search.AllProductLimit = 8
	}
	if cfg.Search.AllCategoryLimit == 0 {
		cfg.Search.AllCategoryLimit = 3
	}
	if cfg.Search.SuggestionLimit == 0 {
		cfg.Search.SuggestionLimit = 5
	}
	if cfg.Search.MaxLimit == 0 {
		cfg.Search.MaxLimit = 100
	}
	if cfg.Search.HighlightClass == "" {
		cfg.Search.HighlightClass = "search-highlight"
	}
	if cfg.Ranking == nil {
		cfg.Ranking = ranking.DefaultScoringWeights()
	}
}

// Default returns a configuration with every default applied.
func Default() *Config {
	cfg := &Config{
		Search: SearchConfig{
			ProductMinScore:  5,
			CategoryMinScore: 10,
			AllMinScore:      10,
		},
	}
	ApplyDefaults(cfg)
	return cfg
}
