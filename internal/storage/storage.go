// Package storage persists the optional search analytics log.
package storage

import (
	"context"

	"github.com/hyperjump/storefront/internal/models"
)

// SearchLog records searches and answers aggregate queries over them.
type SearchLog interface {
	RecordSearch(ctx context.Context, event *models.SearchEvent) error
	// TopQueries returns the most frequent normalized queries.
	TopQueries(ctx context.Context, limit int) ([]models.QueryCount, error)
	// ZeroResultQueries returns the most frequent queries that found nothing.
	ZeroResultQueries(ctx context.Context, limit int) ([]models.QueryCount, error)
	CountSearches(ctx context.Context) (int64, error)
	Close() error
}
