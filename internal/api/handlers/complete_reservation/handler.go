package complete_reservation

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
	msgNotCompletable       = "only confirmed reservations can be completed"
	msgUnauthorized         = "invalid or expired token"
	msgForbidden            = "admin access required"
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

// Handle PATCH /api/v1/admin/reservations/{reservationId}/complete
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	token, ok := middleware.RawToken(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	reservationID, err := strconv.ParseInt(mux.Vars(r)["reservationId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /admin/reservations/{id}/complete - Invalid reservation ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidReservationID)
		return
	}

	res, err := h.service.Complete(r.Context(), token, reservationID)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrReservationNotFound):
			h.logger.Warn("PATCH /admin/reservations/{id}/complete - Not found: reservation_id=%d", reservationID)
			handlers.RespondNotFound(w, msgReservationNotFound)
		case errors.Is(err, reservations.ErrNotCompletable):
			h.logger.Warn("PATCH /admin/reservations/{id}/complete - Not completable: reservation_id=%d", reservationID)
			handlers.RespondConflict(w, "NOT_COMPLETABLE", msgNotCompletable)
		case errors.Is(err, reservations.ErrUnauthorized):
			h.logger.Warn("PATCH /admin/reservations/{id}/complete - Token rejected upstream")
			handlers.RespondUnauthorized(w, msgUnauthorized)
		case errors.Is(err, reservations.ErrForbidden):
			h.logger.Warn("PATCH /admin/reservations/{id}/complete - Forbidden upstream")
			handlers.RespondForbidden(w, msgForbidden)
		case errors.Is(err, reservations.ErrUnavailable):
			h.logger.Error("PATCH /admin/reservations/{id}/complete - Salon API unavailable: %v", err)
			handlers.RespondBadGateway(w, msgUpstreamUnavailable)
		default:
			h.logger.Error("PATCH /admin/reservations/{id}/complete - Failed: reservation_id=%d, error=%v",
				reservationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /admin/reservations/{id}/complete - Reservation completed: reservation_id=%d", reservationID)
	handlers.RespondJSON(w, http.StatusOK, handlers.ToReservationPayload(*res))
}
