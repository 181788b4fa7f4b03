package search

import (
	"fmt"

	"github.com/hyperjump/storefront/internal/models"
)

// ProcessQuery validates a query value decoded from a request body. Strings
// pass through and a missing query is treated as empty; anything else is
// ErrInvalidQueryType.
func ProcessQuery(v any) (string, error) {
	switch q := v.(type) {
	case nil:
		return "", nil
	case string:
		return q, nil
	default:
		return "", fmt.Errorf("%w: got %T", models.ErrInvalidQueryType, v)
	}
}

// ClampLimit bounds a requested limit to [0, ceiling]. A non-positive
// ceiling leaves the upper bound open.
func ClampLimit(n, ceiling int) int {
	if n < 0 {
		return 0
	}
	if ceiling > 0 && n > ceiling {
		return ceiling
	}
	return n
}
