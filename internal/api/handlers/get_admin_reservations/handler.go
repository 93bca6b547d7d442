package get_admin_reservations

import (
	"errors"
	"net/http"
	"time"

	"github.com/hyeonbit/Salon-BookingGateway/internal/api/handlers"
	"github.com/hyeonbit/Salon-BookingGateway/internal/api/middleware"
	"github.com/hyeonbit/Salon-BookingGateway/internal/domain"
	"github.com/hyeonbit/Salon-BookingGateway/internal/service/reservations"
	"github.com/hyeonbit/Salon-BookingGateway/pkg/ptr"
)

const (
	msgInvalidDate         = "invalid date format, expected YYYY-MM-DD"
	msgInvalidStatus       = "invalid status, expected CONFIRMED, CANCELLED or COMPLETED"
	msgUnauthorized        = "invalid or expired token"
	msgForbidden           = "admin access required"
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

// Handle GET /api/v1/admin/reservations
// Query params: date (optional, YYYY-MM-DD), status (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	token, ok := middleware.RawToken(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	query := r.URL.Query()

	var date *string
	if raw := query.Get("date"); raw != "" {
		if _, err := time.Parse(domain.DateFormat, raw); err != nil {
			h.logger.Warn("GET /admin/reservations - Invalid date: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		date = ptr.Ptr(raw)
	}

	var status *domain.ReservationStatus
	if raw := query.Get("status"); raw != "" {
		parsed, ok := domain.ParseReservationStatus(raw)
		if !ok {
			h.logger.Warn("GET /admin/reservations - Invalid status: %s", raw)
			handlers.RespondBadRequest(w, msgInvalidStatus)
			return
		}
		status = ptr.Ptr(parsed)
	}

	list, err := h.service.AdminList(r.Context(), token, date, status)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrUnauthorized):
			h.logger.Warn("GET /admin/reservations - Token rejected upstream")
			handlers.RespondUnauthorized(w, msgUnauthorized)
		case errors.Is(err, reservations.ErrForbidden):
			h.logger.Warn("GET /admin/reservations - Forbidden upstream")
			handlers.RespondForbidden(w, msgForbidden)
		case errors.Is(err, reservations.ErrUnavailable):
			h.logger.Error("GET /admin/reservations - Salon API unavailable: %v", err)
			handlers.RespondBadGateway(w, msgUpstreamUnavailable)
		default:
			h.logger.Error("GET /admin/reservations - Failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /admin/reservations - Reservations retrieved: count=%d", len(list))
	handlers.RespondJSON(w, http.StatusOK, handlers.ToReservationPayloads(list))
}
