package submit_reservation

import "errors"

var (
	// ErrSelectionNotFound is returned when the selection does not exist or
	// does not belong to the requesting user
	ErrSelectionNotFound = errors.New("submit_reservation: selection not found")

	// ErrInvalidSelectionState is returned when the selection has no chosen
	// time yet (caller bug: the UI must enforce the state machine)
	ErrInvalidSelectionState = errors.New("submit_reservation: selection is not ready to submit")

	// ErrSubmissionInFlight is returned when a submission for this selection
	// is already running; submissions are not idempotent
	ErrSubmissionInFlight = errors.New("submit_reservation: submission already in flight")

	// ErrSlotConflict is returned when another booking claimed an overlapping
	// slot between the availability fetch and this submission. The selection
	// is moved back to DateChosen and availability must be refetched.
	ErrSlotConflict = errors.New("submit_reservation: slot was taken by another booking")

	// ErrValidation is returned when the salon API rejected the reservation
	// payload; the selection invariants should make this impossible
	ErrValidation = errors.New("submit_reservation: reservation rejected by validation")

	// ErrUnavailable is returned when the salon API cannot be reached; the
	// user may re-submit explicitly, the gateway never retries on its own
	ErrUnavailable = errors.New("submit_reservation: salon API unavailable")

	// ErrInternal is returned for internal usecase errors
	ErrInternal = errors.New("submit_reservation: internal error")
)
