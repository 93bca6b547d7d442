package get_selection

import (
	"context"

	"github.com/google/uuid"

	"github.com/hyeonbit/Salon-BookingGateway/internal/service/selections"
)

// SelectionsService reads selections.
type SelectionsService interface {
	Get(ctx context.Context, userID int64, id uuid.UUID) (*selections.SelectionView, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
