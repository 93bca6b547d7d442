package selections

import "errors"

var (
	// ErrSelectionNotFound is returned when the selection does not exist or
	// does not belong to the requesting user
	ErrSelectionNotFound = errors.New("selection not found")

	// ErrMenuNotFound is returned when the menu a selection is created for
	// does not exist in the catalog
	ErrMenuNotFound = errors.New("menu not found")

	// ErrInvalidState is returned when a transition is attempted out of order
	ErrInvalidState = errors.New("invalid selection state for this operation")

	// ErrUnknownOption is returned when an option id does not belong to the
	// selection's menu
	ErrUnknownOption = errors.New("option does not belong to the selected menu")

	// ErrTimeNotAvailable is returned when the requested start time is not a
	// startable slot in the fresh availability view (reserved, too close to
	// closing for the run-length, or not a slot at all). Local validation,
	// not a network failure.
	ErrTimeNotAvailable = errors.New("requested time cannot start the booking")

	// ErrSelectionChanged is returned when the selection's date or option set
	// changed while availability was being fetched; the stale view was
	// discarded and the caller must retry against the new state
	ErrSelectionChanged = errors.New("selection changed during availability fetch")

	// ErrSubmissionInFlight is returned when the selection is locked by a
	// running submission
	ErrSubmissionInFlight = errors.New("submission in flight, selection is locked")

	// ErrInvalidInput is returned for malformed input data
	ErrInvalidInput = errors.New("invalid input data")

	// ErrUnavailable is returned when the salon API cannot be reached
	ErrUnavailable = errors.New("selections: salon API unavailable")

	// ErrInternal is returned for internal service errors
	ErrInternal = errors.New("selections: internal error")
)
