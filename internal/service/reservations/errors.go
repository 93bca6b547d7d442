package reservations

import "errors"

var (
	ErrReservationNotFound = errors.New("reservations: reservation not found")
	ErrNotCancellable      = errors.New("reservations: reservation cannot be cancelled")
	ErrNotCompletable      = errors.New("reservations: reservation cannot be completed")
	ErrUnauthorized        = errors.New("reservations: unauthorized")
	ErrForbidden           = errors.New("reservations: forbidden")
	ErrInvalidInput        = errors.New("reservations: invalid input")
	ErrUnavailable         = errors.New("reservations: salon api unavailable")
	ErrInternal            = errors.New("reservations: internal error")
)
