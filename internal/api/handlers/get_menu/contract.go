package get_menu

import (
	"context"

	"github.com/hyeonbit/Salon-BookingGateway/internal/domain"
)

// CatalogService reads the menu catalog.
type CatalogService interface {
	Menu(ctx context.Context, menuID int64) (*domain.Menu, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
