package reservations

import (
	"context"

	"github.com/hyeonbit/Salon-BookingGateway/internal/domain"
)

// SalonAPIClient covers the reservation endpoints of the salon API.
type SalonAPIClient interface {
	GetMyReservations(ctx context.Context, token string) ([]domain.Reservation, error)
	CancelReservation(ctx context.Context, token string, reservationID int64) (*domain.Reservation, error)
	ListReservations(ctx context.Context, token string, date *string, status *domain.ReservationStatus) ([]domain.Reservation, error)
	CompleteReservation(ctx context.Context, token string, reservationID int64) (*domain.Reservation, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
