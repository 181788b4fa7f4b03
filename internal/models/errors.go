package models

import "errors"

var (
	// ErrInvalidQueryType is returned when a query is supplied as something other than a string.
	ErrInvalidQueryType = errors.New("query must be a string")
	// ErrProductNotFound is returned when a product id or slug does not exist.
	ErrProductNotFound = errors.New("product not found")
	// ErrCategoryNotFound is returned when a category id or slug does not exist.
	ErrCategoryNotFound = errors.New("category not found")
	// ErrUnsupportedFormat is returned for catalogue files with an unknown extension.
	ErrUnsupportedFormat = errors.New("unsupported catalogue format")
	// ErrDuplicateID is returned when two catalogue entities share an identifier.
	ErrDuplicateID = errors.New("duplicate identifier")
	// ErrSearchLogDisabled is returned by analytics endpoints when no search log is configured.
	ErrSearchLogDisabled = errors.New("search log is disabled")
)
