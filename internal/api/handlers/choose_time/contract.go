package choose_time

import (
	"context"

	"github.com/google/uuid"

	"github.com/hyeonbit/Salon-BookingGateway/internal/service/selections"
	"github.com/hyeonbit/Salon-BookingGateway/pkg/types"
)

// SelectionsService drives selection transitions.
type SelectionsService interface {
	ChooseTime(ctx context.Context, userID int64, id uuid.UUID, start types.TimeString) (*selections.SelectionView, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
