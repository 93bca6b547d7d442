package get_me

import (
	"errors"
	"net/http"

	"github.com/hyeonbit/Salon-BookingGateway/internal/api/handlers"
	"github.com/hyeonbit/Salon-BookingGateway/internal/api/middleware"
	"github.com/hyeonbit/Salon-BookingGateway/internal/service/accounts"
)

const (
	msgUnauthorized        = "invalid or expired token"
	msgUpstreamUnavailable = "salon service is temporarily unavailable"
)

type Handler struct {
	service AccountsService
	logger  Logger
}

func NewHandler(service AccountsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/users/me
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	token, ok := middleware.RawToken(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	user, err := h.service.Me(r.Context(), token)
	if err != nil {
		switch {
		case errors.Is(err, accounts.ErrUnauthorized):
			h.logger.Warn("GET /users/me - Token rejected upstream")
			handlers.RespondUnauthorized(w, msgUnauthorized)
		case errors.Is(err, accounts.ErrUnavailable):
			h.logger.Error("GET /users/me - Salon API unavailable: %v", err)
			handlers.RespondBadGateway(w, msgUpstreamUnavailable)
		default:
			h.logger.Error("GET /users/me - Failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /users/me - Profile retrieved: user_id=%d", user.ID)
	handlers.RespondJSON(w, http.StatusOK, handlers.ToUserPayload(*user))
}
