package cancel_reservation

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/hyeonbit/Salon-BookingGateway/internal/api/handlers"
	"github.com/hyeonbit/Salon-BookingGateway/internal/api/middleware"
	"github.com/hyeonbit/Salon-BookingGateway/internal/service/reservations"
)

const (
	msgInvalidReservationID = "invalid reservation id"
	msgReservationNotFound  = "reservation not found"
	msgNotCancellable       = "reservation can no longer be cancelled"
	msgForbidden            = "reservation belongs to another user"
	msgUnauthorized         = "invalid or expired token"
	msgUpstreamUnavailable  = "salon service is temporarily unavailable"
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

// Handle PATCH /api/v1/reservations/{reservationId}/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	token, ok := middleware.RawToken(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	reservationID, err := strconv.ParseInt(mux.Vars(r)["reservationId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /reservations/{id}/cancel - Invalid reservation ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidReservationID)
		return
	}

	res, err := h.service.Cancel(r.Context(), token, reservationID)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrReservationNotFound):
			h.logger.Warn("PATCH /reservations/{id}/cancel - Not found: reservation_id=%d", reservationID)
			handlers.RespondNotFound(w, msgReservationNotFound)
		case errors.Is(err, reservations.ErrNotCancellable):
			h.logger.Warn("PATCH /reservations/{id}/cancel - Not cancellable: reservation_id=%d", reservationID)
			handlers.RespondConflict(w, "NOT_CANCELLABLE", msgNotCancellable)
		case errors.Is(err, reservations.ErrForbidden):
			h.logger.Warn("PATCH /reservations/{id}/cancel - Forbidden: reservation_id=%d", reservationID)
			handlers.RespondForbidden(w, msgForbidden)
		case errors.Is(err, reservations.ErrUnauthorized):
			h.logger.Warn("PATCH /reservations/{id}/cancel - Token rejected upstream")
			handlers.RespondUnauthorized(w, msgUnauthorized)
		case errors.Is(err, reservations.ErrUnavailable):
			h.logger.Error("PATCH /reservations/{id}/cancel - Salon API unavailable: %v", err)
			handlers.RespondBadGateway(w, msgUpstreamUnavailable)
		default:
			h.logger.Error("PATCH /reservations/{id}/cancel - Failed: reservation_id=%d, error=%v",
				reservationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /reservations/{id}/cancel - Reservation cancelled: reservation_id=%d", reservationID)
	handlers.RespondJSON(w, http.StatusOK, handlers.ToReservationPayload(*res))
}
