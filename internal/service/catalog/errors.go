package catalog

import "errors"

var (
	// ErrMenuNotFound is returned when the menu does not exist
	ErrMenuNotFound = errors.New("menu not found")

	// ErrCategoryNotFound is returned when the category does not exist
	ErrCategoryNotFound = errors.New("category not found")

	// ErrUnavailable is returned when the salon API cannot be reached
	ErrUnavailable = errors.New("catalog: salon API unavailable")

	// ErrInternal is returned for internal service errors
	ErrInternal = errors.New("catalog: internal error")
)
