package submit_reservation

import (
	"context"

	"github.com/google/uuid"

	"github.com/hyeonbit/Salon-BookingGateway/internal/domain"
	"github.com/hyeonbit/Salon-BookingGateway/internal/integrations/salonapi"
)

// SelectionStore is the slice of the selection store the usecase needs.
type SelectionStore interface {
	Get(id uuid.UUID) (*domain.Selection, error)
	Update(id uuid.UUID, fn func(sel *domain.Selection) error) (*domain.Selection, error)
	Delete(id uuid.UUID) error
}

// ReservationsClient submits reservations to the salon API.
type ReservationsClient interface {
	CreateReservation(ctx context.Context, token string, req salonapi.CreateReservationRequest) (*domain.Reservation, error)
}

// Logger is the logging interface the usecase depends on.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
