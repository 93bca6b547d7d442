package get_availability

import (
	"context"

	getAvailability "github.com/hyeonbit/Salon-BookingGateway/internal/usecase/get_availability"
)

// GetAvailabilityUseCase computes the annotated slot list for one day.
type GetAvailabilityUseCase interface {
	Execute(ctx context.Context, req *getAvailability.Request) (*getAvailability.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
