package get_my_reservations

import (
	"context"

	"github.com/hyeonbit/Salon-BookingGateway/internal/domain"
)

// ReservationsService reads the caller's reservation history.
type ReservationsService interface {
	ForUser(ctx context.Context, token string) ([]domain.Reservation, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
