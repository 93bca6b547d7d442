package domain

import (
	"time"

	"github.com/hyeonbit/Salon-BookingGateway/pkg/types"
)

// ReservationStatus represents the lifecycle state of a reservation record.
type ReservationStatus string

const (
	StatusConfirmed ReservationStatus = "CONFIRMED"
	StatusCancelled ReservationStatus = "CANCELLED"
	StatusCompleted ReservationStatus = "COMPLETED"
)

// ParseReservationStatus validates a status string from a query or upstream.
func ParseReservationStatus(s string) (ReservationStatus, bool) {
	switch ReservationStatus(s) {
	case StatusConfirmed, StatusCancelled, StatusCompleted:
		return ReservationStatus(s), true
	default:
		return "", false
	}
}

// Reservation is a server-owned reservation record, read via the salon API.
// The gateway never computes its identity or timestamps; it is created by
// submission and mutated only by the cancel/complete transitions upstream.
type Reservation struct {
	ID              int64
	UserID          int64
	MenuID          int64
	OptionIDs       []int64
	Date            time.Time
	StartTime       types.TimeString
	EndTime         types.TimeString
	DurationMinutes int
	Status          ReservationStatus

	// Denormalized snapshot of what was booked
	MenuName   string
	TotalPrice int64

	CreatedAt time.Time
}

// IsActive reports whether the reservation still occupies its slots.
func (r *Reservation) IsActive() bool {
	return r.Status == StatusConfirmed
}

// CanBeCancelled reports whether the cancel transition is allowed.
func (r *Reservation) CanBeCancelled() bool {
	return r.Status == StatusConfirmed
}

// CanBeCompleted reports whether the complete transition is allowed.
func (r *Reservation) CanBeCompleted() bool {
	return r.Status == StatusConfirmed
}
