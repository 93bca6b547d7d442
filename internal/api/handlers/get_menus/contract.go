package get_menus

import (
	"context"

	"github.com/hyeonbit/Salon-BookingGateway/internal/domain"
)

// CatalogService reads the menu catalog.
type CatalogService interface {
	Menus(ctx context.Context, categoryID *int64) ([]domain.Menu, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
