// Package cli provides output writers for the storefront CLI.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/hyperjump/storefront/internal/models"
	"github.com/hyperjump/storefront/pkg/utils"
)

// OutputFormat is the format for command output.
type OutputFormat string

const (
	// OutputText is human-readable text (default).
	OutputText OutputFormat = "text"
	// OutputCompact prints one tab-separated line per entry.
	OutputCompact OutputFormat = "compact"
	// OutputJSON is structured JSON for machine consumption.
	OutputJSON OutputFormat = "json"
)

const descriptionWidth = 120

// ParseOutputFormat validates s.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch f := OutputFormat(s); f {
	case OutputText, OutputCompact, OutputJSON:
		return f, nil
	}
	return "", fmt.Errorf("unknown output format %q; use text, compact, or json", s)
}

// CategoryRow is a category with its product count, as listed by the
// categories command and the categories endpoint.
type CategoryRow struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Slug         string `json:"slug"`
	Order        int    `json:"order"`
	Featured     bool   `json:"featured"`
	ProductCount int    `json:"productCount"`
}

// WriteSearchResults writes a combined search response to w in the given format.
func WriteSearchResults(w io.Writer, resp *models.CombinedResponse, format OutputFormat) error {
	switch format {
	case OutputJSON:
		return writeJSON(w, resp)
	case OutputCompact:
		for _, hit := range resp.All {
			switch hit.Type {
			case models.HitProduct:
				fmt.Fprintf(w, "product\t%d\t%.2f\t%s\n", hit.Product.ID, hit.RelevanceScore, hit.Product.Title)
			case models.HitCategory:
				fmt.Fprintf(w, "category\t%s\t%.2f\t%s\n", hit.Category.ID, hit.RelevanceScore, hit.Category.Name)
			}
		}
		return nil
	default:
		writeSearchResultsText(w, resp)
		return nil
	}
}

func writeSearchResultsText(w io.Writer, resp *models.CombinedResponse) {
	fmt.Fprintf(w, "\nFound %d results for %q (%d products, %d categories)\n\n",
		resp.TotalResults, resp.NormalizedQuery, len(resp.Products), len(resp.Categories))
	if !resp.HasResults {
		if len(resp.Suggestions) > 0 {
			fmt.Fprintf(w, "Did you mean: %s?\n", strings.Join(resp.Suggestions, ", "))
		}
		return
	}
	if len(resp.Categories) > 0 {
		fmt.Fprintln(w, "--- Categories ---")
		for i, c := range resp.Categories {
			fmt.Fprintf(w, "%2d. %s (%s) | Score: %.2f | name: %s",
				i+1, c.Name, c.ID, c.RelevanceScore, c.MatchDetails.NameMatch.Kind)
			if c.MatchDetails.IntentMatch {
				fmt.Fprint(w, " | intent")
			}
			fmt.Fprintln(w)
		}
		fmt.Fprintln(w)
	}
	if len(resp.Products) > 0 {
		fmt.Fprintln(w, "--- Products ---")
		for i, p := range resp.Products {
			writeProduct(w, i+1, p)
		}
	}
}

func writeProduct(w io.Writer, rank int, p *models.ScoredProduct) {
	fmt.Fprintf(w, "─────────────────────────────────────────────────────────\n")
	fmt.Fprintf(w, "[%d] %s | Score: %.2f | title: %s\n", rank, p.Title, p.RelevanceScore, p.MatchDetails.TitleMatch.Kind)
	fmt.Fprintf(w, "ID: %d | Slug: %s | Price: %d", p.ID, p.Slug, p.Price)
	if c := p.Category.Value(); c != "" {
		fmt.Fprintf(w, " | Category: %s", c)
	}
	fmt.Fprintln(w)
	if p.Description != "" {
		fmt.Fprintf(w, "%s\n", utils.Truncate(p.Description, descriptionWidth))
	}
}

// WriteCategories writes a category listing.
func WriteCategories(w io.Writer, rows []CategoryRow, format OutputFormat) error {
	switch format {
	case OutputJSON:
		return writeJSON(w, rows)
	case OutputCompact:
		for _, r := range rows {
			fmt.Fprintf(w, "%s\t%s\t%d\n", r.ID, r.Name, r.ProductCount)
		}
		return nil
	default:
		for _, r := range rows {
			featured := ""
			if r.Featured {
				featured = " *"
			}
			fmt.Fprintf(w, "%-20s %-24s %3d products%s\n", r.ID, r.Name, r.ProductCount, featured)
		}
		return nil
	}
}

// WriteProducts writes a product listing. label returns the display
// category of a product; nil prints the stored reference.
func WriteProducts(w io.Writer, products []*models.Product, label func(*models.Product) string, format OutputFormat) error {
	if label == nil {
		label = func(p *models.Product) string { return p.Category.Value() }
	}
	switch format {
	case OutputJSON:
		return writeJSON(w, products)
	case OutputCompact:
		for _, p := range products {
			fmt.Fprintf(w, "%d\t%d\t%s\t%s\n", p.ID, p.Price, label(p), p.Title)
		}
		return nil
	default:
		for _, p := range products {
			fmt.Fprintf(w, "%4d  %-40s %6d  %s\n", p.ID, utils.Truncate(p.Title, 40), p.Price, label(p))
		}
		return nil
	}
}

// SuggestResult is the output of the suggest command.
type SuggestResult struct {
	Query       string              `json:"query"`
	Suggestions []models.Suggestion `json:"suggestions"`
	DidYouMean  []string            `json:"didYouMean,omitempty"`
}

// WriteSuggestions writes autocomplete entries and spelling corrections.
func WriteSuggestions(w io.Writer, res *SuggestResult, format OutputFormat) error {
	switch format {
	case OutputJSON:
		return writeJSON(w, res)
	case OutputCompact:
		for _, s := range res.Suggestions {
			fmt.Fprintf(w, "%d\t%s\n", s.ID, s.Text)
		}
		return nil
	default:
		if len(res.Suggestions) == 0 {
			fmt.Fprintf(w, "No suggestions for %q\n", res.Query)
		}
		for _, s := range res.Suggestions {
			fmt.Fprintf(w, "%s (%s)\n", s.Text, s.Slug)
		}
		if len(res.DidYouMean) > 0 {
			fmt.Fprintf(w, "Did you mean: %s?\n", strings.Join(res.DidYouMean, ", "))
		}
		return nil
	}
}

// WriteStats writes search statistics.
func WriteStats(w io.Writer, stats *models.SearchStats, format OutputFormat) error {
	switch format {
	case OutputJSON:
		return writeJSON(w, stats)
	case OutputCompact:
		fmt.Fprintf(w, "%s\t%d\t%d\t%.2f\t%.2f\n", stats.Query, stats.TotalProducts, stats.TotalCategories,
			stats.AvgProductScore, stats.AvgCategoryScore)
		return nil
	default:
		fmt.Fprintf(w, "query:              %s\n", stats.Query)
		fmt.Fprintf(w, "products:           %d\n", stats.TotalProducts)
		fmt.Fprintf(w, "categories:         %d\n", stats.TotalCategories)
		fmt.Fprintf(w, "total_results:      %d\n", stats.TotalResults)
		fmt.Fprintf(w, "avg_product_score:  %.2f\n", stats.AvgProductScore)
		fmt.Fprintf(w, "avg_category_score: %.2f\n", stats.AvgCategoryScore)
		return nil
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
