package catalog

import (
	"context"

	"github.com/hyeonbit/Salon-BookingGateway/internal/domain"
)

// SalonAPIClient is the slice of the salon API the service needs.
type SalonAPIClient interface {
	GetCategories(ctx context.Context) ([]domain.Category, error)
	GetMenus(ctx context.Context, categoryID *int64) ([]domain.Menu, error)
	GetMenu(ctx context.Context, menuID int64) (*domain.Menu, error)
}

// Logger is the logging interface the service depends on.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
