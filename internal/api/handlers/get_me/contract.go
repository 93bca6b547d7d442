package get_me

import (
	"context"

	"github.com/hyeonbit/Salon-BookingGateway/internal/domain"
)

// AccountsService reads the caller's profile.
type AccountsService interface {
	Me(ctx context.Context, token string) (*domain.User, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
