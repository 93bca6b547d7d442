package choose_date

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/hyeonbit/Salon-BookingGateway/internal/service/selections"
)

// SelectionsService drives selection transitions.
type SelectionsService interface {
	ChooseDate(ctx context.Context, userID int64, id uuid.UUID, date time.Time) (*selections.SelectionView, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
