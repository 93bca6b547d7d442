package complete_reservation

import (
	"context"

	"github.com/hyeonbit/Salon-BookingGateway/internal/domain"
)

// ReservationsService marks reservations as completed.
type ReservationsService interface {
	Complete(ctx context.Context, token string, reservationID int64) (*domain.Reservation, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
