package get_admin_reservations

import (
	"context"

	"github.com/hyeonbit/Salon-BookingGateway/internal/domain"
)

// ReservationsService lists reservations across all users.
type ReservationsService interface {
	AdminList(ctx context.Context, token string, date *string, status *domain.ReservationStatus) ([]domain.Reservation, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
