package create_selection

import (
	"context"

	"github.com/hyeonbit/Salon-BookingGateway/internal/service/selections"
)

// SelectionsService starts booking flows.
type SelectionsService interface {
	Create(ctx context.Context, userID, menuID int64) (*selections.SelectionView, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
