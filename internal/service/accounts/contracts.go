package accounts

import (
	"context"

	"github.com/hyeonbit/Salon-BookingGateway/internal/domain"
	"github.com/hyeonbit/Salon-BookingGateway/internal/integrations/salonapi"
)

// SalonAPIClient is the slice of the salon API the service needs.
type SalonAPIClient interface {
	SignUp(ctx context.Context, req salonapi.SignUpRequest) (*domain.User, error)
	Login(ctx context.Context, email, password string) (string, error)
	GetMe(ctx context.Context, token string) (*domain.User, error)
}

// Logger is the logging interface the service depends on.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
