package get_availability

import (
	"context"
	"time"

	"github.com/hyeonbit/Salon-BookingGateway/internal/domain"
	"github.com/hyeonbit/Salon-BookingGateway/pkg/types"
)

// CatalogClient is the slice of the salon API the usecase needs for menus.
type CatalogClient interface {
	GetMenu(ctx context.Context, menuID int64) (*domain.Menu, error)
}

// ReservationsClient fetches the raw reserved-time set for a date.
type ReservationsClient interface {
	GetReservedTimes(ctx context.Context, date time.Time) ([]types.TimeString, error)
}

// TimeProvider supplies the current time (swapped out in tests).
type TimeProvider interface {
	Now() time.Time
}

// Logger is the logging interface the usecase depends on.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider is the production TimeProvider.
type RealTimeProvider struct{}

// Now returns the current time.
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
