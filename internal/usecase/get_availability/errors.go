package get_availability

import "errors"

var (
	// ErrMenuNotFound is returned when the menu does not exist in the catalog
	ErrMenuNotFound = errors.New("get_availability: menu not found")

	// ErrOptionNotFound is returned when an option id does not belong to the menu
	ErrOptionNotFound = errors.New("get_availability: option not found on menu")

	// ErrInvalidDate is returned for dates in the past
	ErrInvalidDate = errors.New("get_availability: invalid date")

	// ErrInvalidInput is returned for malformed request data
	ErrInvalidInput = errors.New("get_availability: invalid input data")

	// ErrUnavailable is returned when the salon API cannot be reached
	ErrUnavailable = errors.New("get_availability: salon API unavailable")

	// ErrInternal is returned for internal usecase errors
	ErrInternal = errors.New("get_availability: internal error")
)
