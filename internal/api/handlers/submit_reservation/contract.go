package submit_reservation

import (
	"context"

	submitReservation "github.com/hyeonbit/Salon-BookingGateway/internal/usecase/submit_reservation"
)

// SubmitReservationUseCase turns a completed selection into a reservation.
type SubmitReservationUseCase interface {
	Execute(ctx context.Context, req *submitReservation.Request) (*submitReservation.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
