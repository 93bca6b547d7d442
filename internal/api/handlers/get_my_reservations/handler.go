package get_my_reservations

import (
	"errors"
	"net/http"

	"github.com/hyeonbit/Salon-BookingGateway/internal/api/handlers"
	"github.com/hyeonbit/Salon-BookingGateway/internal/api/middleware"
	"github.com/hyeonbit/Salon-BookingGateway/internal/service/reservations"
)

const (
	msgUnauthorized        = "invalid or expired token"
	msgUpstreamUnavailable = "salon service is temporarily unavailable"
)

type Handler struct {
	service ReservationsService
	logger  Logger
}

func NewHandler(service ReservationsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/users/me/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	token, ok := middleware.RawToken(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	list, err := h.service.ForUser(r.Context(), token)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrUnauthorized):
			h.logger.Warn("GET /users/me/reservations - Token rejected upstream")
			handlers.RespondUnauthorized(w, msgUnauthorized)
		case errors.Is(err, reservations.ErrUnavailable):
			h.logger.Error("GET /users/me/reservations - Salon API unavailable: %v", err)
			handlers.RespondBadGateway(w, msgUpstreamUnavailable)
		default:
			h.logger.Error("GET /users/me/reservations - Failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /users/me/reservations - Reservations retrieved: count=%d", len(list))
	handlers.RespondJSON(w, http.StatusOK, handlers.ToReservationPayloads(list))
}
