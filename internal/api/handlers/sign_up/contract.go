package sign_up

import (
	"context"

	"github.com/hyeonbit/Salon-BookingGateway/internal/domain"
	"github.com/hyeonbit/Salon-BookingGateway/internal/integrations/salonapi"
)

// AccountsService registers accounts with the salon API.
type AccountsService interface {
	SignUp(ctx context.Context, req salonapi.SignUpRequest) (*domain.User, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
