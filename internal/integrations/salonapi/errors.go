package salonapi

import "errors"

var (
	// ErrNotFound is returned when the requested resource does not exist upstream
	ErrNotFound = errors.New("salonapi client: resource not found")

	// ErrConflict is returned when a reservation lost a slot race: another
	// booking claimed an overlapping slot between the availability fetch and
	// this submission. Expected under concurrent load, not a bug.
	ErrConflict = errors.New("salonapi client: slot already reserved")

	// ErrUnauthorized is returned when the access token is missing or rejected
	ErrUnauthorized = errors.New("salonapi client: unauthorized")

	// ErrForbidden is returned when the token lacks the required role
	ErrForbidden = errors.New("salonapi client: forbidden")

	// ErrValidation is returned when the salon API rejected the request body
	ErrValidation = errors.New("salonapi client: request rejected by validation")

	// ErrInvalidResponse is returned when the salon API answered with a body
	// the client cannot interpret
	ErrInvalidResponse = errors.New("salonapi client: invalid response")

	// ErrUnavailable is returned for transport failures and 5xx answers.
	// Retry is user-initiated only; the client never retries by itself.
	ErrUnavailable = errors.New("salonapi client: salon API unavailable")

	// ErrInternal is returned for errors inside the client itself
	ErrInternal = errors.New("salonapi client: internal error")
)
