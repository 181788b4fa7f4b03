package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/hyperjump/storefront/internal/indexer"
	"github.com/hyperjump/storefront/internal/models"
	"github.com/hyperjump/storefront/internal/storage"
)

// searchRequest is the body of POST /api/v1/search.
type searchRequest struct {
	Query         string  `json:"query"`
	ProductLimit  int     `json:"product_limit"`
	CategoryLimit int     `json:"category_limit"`
	MinScore      float64 `json:"min_score"`
	Highlight     bool    `json:"highlight,omitempty"`
}

func searchViaHTTP(serverURL string, req *searchRequest) (*models.CombinedResponse, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}
	resp, err := http.Post(strings.TrimSuffix(serverURL, "/")+"/api/v1/search", "application/json", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("server returned %d: %s", resp.StatusCode, strings.TrimSpace(string(b)))
	}
	var response models.CombinedResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return &response, nil
}

// searchLogStatus mirrors the search_log section of GET /api/v1/status.
type searchLogStatus struct {
	Enabled   bool  `json:"enabled"`
	Searches  int64 `json:"searches"`
	SizeBytes int64 `json:"size_bytes,omitempty"`
}

// statusResponse is the shape of GET /api/v1/status response.
type statusResponse struct {
	Catalogue *indexer.Status `json:"catalogue"`
	SearchLog searchLogStatus `json:"search_log"`
}

func statusViaHTTP(serverURL string) (*statusResponse, error) {
	resp, err := http.Get(strings.TrimSuffix(serverURL, "/") + "/api/v1/status")
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("server returned %d: %s", resp.StatusCode, strings.TrimSpace(string(b)))
	}
	var s statusResponse
	if err := json.NewDecoder(resp.Body).Decode(&s); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return &s, nil
}

func localStatus(ctx context.Context, c *Components) (*statusResponse, error) {
	status := &statusResponse{Catalogue: c.Indexer.Status()}
	if c.SearchLog == nil {
		return status, nil
	}
	n, err := c.SearchLog.CountSearches(ctx)
	if err != nil {
		return nil, fmt.Errorf("count searches: %w", err)
	}
	status.SearchLog = searchLogStatus{Enabled: true, Searches: n}
	if sqlite, ok := c.SearchLog.(*storage.SQLiteSearchLog); ok {
		if size, err := sqlite.SizeBytes(); err == nil {
			status.SearchLog.SizeBytes = size
		}
	}
	return status, nil
}

func writeStatus(w io.Writer, status *statusResponse) {
	st := status.Catalogue
	if st == nil || !st.Loaded {
		fmt.Fprintln(w, "loaded:       false")
		if st != nil && st.LastError != "" {
			fmt.Fprintf(w, "last_error:   %s\n", st.LastError)
		}
	} else {
		fmt.Fprintf(w, "source:       %s\n", st.Source)
		fmt.Fprintf(w, "fingerprint:  %s\n", st.Fingerprint)
		fmt.Fprintf(w, "products:     %d\n", st.Products)
		fmt.Fprintf(w, "categories:   %d\n", st.Categories)
		fmt.Fprintf(w, "vocabulary:   %d   # spell check terms\n", st.Vocabulary)
		fmt.Fprintf(w, "loaded_at:    %s\n", st.LoadedAt.Format(time.RFC3339))
		fmt.Fprintf(w, "reloads:      %d\n", st.Reloads)
		if st.LastError != "" {
			fmt.Fprintf(w, "last_error:   %s   # serving the previous catalogue\n", st.LastError)
		}
		if len(st.Issues) > 0 {
			fmt.Fprintf(w, "issues:       %d\n", len(st.Issues))
			for _, issue := range st.Issues {
				fmt.Fprintf(w, "  %s\n", issue)
			}
		}
	}
	if status.SearchLog.Enabled {
		fmt.Fprintf(w, "search_log:   %d searches", status.SearchLog.Searches)
		if status.SearchLog.SizeBytes > 0 {
			fmt.Fprintf(w, ", %d bytes on disk", status.SearchLog.SizeBytes)
		}
		fmt.Fprintln(w)
	} else {
		fmt.Fprintln(w, "search_log:   disabled")
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
