package get_categories

import (
	"context"

	"github.com/hyeonbit/Salon-BookingGateway/internal/domain"
)

// CatalogService reads the menu catalog.
type CatalogService interface {
	Categories(ctx context.Context) ([]domain.Category, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
