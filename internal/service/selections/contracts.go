package selections

import (
	"context"

	"github.com/google/uuid"

	"github.com/hyeonbit/Salon-BookingGateway/internal/domain"
	getAvailability "github.com/hyeonbit/Salon-BookingGateway/internal/usecase/get_availability"
)

// SelectionStore is the slice of the selection store the service needs.
type SelectionStore interface {
	Create(sel *domain.Selection) error
	Get(id uuid.UUID) (*domain.Selection, error)
	Update(id uuid.UUID, fn func(sel *domain.Selection) error) (*domain.Selection, error)
	Delete(id uuid.UUID) error
}

// CatalogClient fetches menu snapshots for new selections.
type CatalogClient interface {
	GetMenu(ctx context.Context, menuID int64) (*domain.Menu, error)
}

// AvailabilityProvider computes a fresh annotated slot view. ChooseTime
// validates the requested time against it; the view is never cached.
type AvailabilityProvider interface {
	Execute(ctx context.Context, req *getAvailability.Request) (*getAvailability.Response, error)
}

// Logger is the logging interface the service depends on.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
