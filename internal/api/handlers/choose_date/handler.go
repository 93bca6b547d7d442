package choose_date

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/hyeonbit/Salon-BookingGateway/internal/api/handlers"
	"github.com/hyeonbit/Salon-BookingGateway/internal/api/middleware"
	"github.com/hyeonbit/Salon-BookingGateway/internal/service/selections"
)

const (
	msgInvalidBody        = "invalid request body"
	msgInvalidSelectionID = "invalid selection id"
	msgInvalidDate        = "invalid date format, expected YYYY-MM-DD"
	msgSelectionNotFound  = "selection not found"
	msgSubmitting         = "selection is being submitted"
)

type Handler struct {
	service SelectionsService
	logger  Logger
}

func NewHandler(service SelectionsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/selections/{selectionId}/date
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, "authentication required")
		return
	}

	selectionID, err := uuid.Parse(mux.Vars(r)["selectionId"])
	if err != nil {
		h.logger.Warn("POST /selections/{id}/date - Invalid selection ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSelectionID)
		return
	}

	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("POST /selections/{id}/date - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	date, err := req.ParseDate()
	if err != nil {
		h.logger.Warn("POST /selections/{id}/date - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	view, err := h.service.ChooseDate(r.Context(), userID, selectionID, date)
	if err != nil {
		switch {
		case errors.Is(err, selections.ErrSelectionNotFound):
			h.logger.Warn("POST /selections/{id}/date - Not found: selection_id=%s", selectionID)
			handlers.RespondNotFound(w, msgSelectionNotFound)
		case errors.Is(err, selections.ErrSubmissionInFlight):
			h.logger.Warn("POST /selections/{id}/date - Submission in flight: selection_id=%s", selectionID)
			handlers.RespondConflict(w, "SUBMISSION_IN_FLIGHT", msgSubmitting)
		case errors.Is(err, selections.ErrInvalidInput):
			h.logger.Warn("POST /selections/{id}/date - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)
		default:
			h.logger.Error("POST /selections/{id}/date - Failed: selection_id=%s, error=%v", selectionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /selections/{id}/date - Date chosen: selection_id=%s, date=%s", selectionID, view.Date)
	handlers.RespondJSON(w, http.StatusOK, handlers.ToSelectionPayload(view))
}
