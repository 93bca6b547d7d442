package cancel_reservation

import (
	"context"

	"github.com/hyeonbit/Salon-BookingGateway/internal/domain"
)

// ReservationsService cancels the caller's reservations.
type ReservationsService interface {
	Cancel(ctx context.Context, token string, reservationID int64) (*domain.Reservation, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
