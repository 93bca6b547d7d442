package selections

import "errors"

var (
	// ErrSelectionNotFound is returned when no selection exists for the id
	// (never created, expired, or already submitted and removed)
	ErrSelectionNotFound = errors.New("selection not found")

	// ErrSelectionExists is returned when a selection id collides on create
	ErrSelectionExists = errors.New("selection already exists")
)
