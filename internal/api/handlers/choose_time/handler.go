package choose_time

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/hyeonbit/Salon-BookingGateway/internal/api/handlers"
	"github.com/hyeonbit/Salon-BookingGateway/internal/api/middleware"
	"github.com/hyeonbit/Salon-BookingGateway/internal/service/selections"
	"github.com/hyeonbit/Salon-BookingGateway/pkg/types"
)

const (
	msgInvalidBody         = "invalid request body"
	msgInvalidSelectionID  = "invalid selection id"
	msgInvalidTime         = "invalid time format, expected HH:MM"
	msgSelectionNotFound   = "selection not found"
	msgNoDateChosen        = "a date must be chosen before a time"
	msgTimeNotAvailable    = "requested time is not available"
	msgSelectionChanged    = "selection changed, refresh availability and retry"
	msgSubmitting          = "selection is being submitted"
	msgUpstreamUnavailable = "salon service is temporarily unavailable"
)

// Request carries the chosen start time.
type Request struct {
	StartTime string `json:"startTime"` // HH:MM
}

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

// Handle POST /api/v1/selections/{selectionId}/time
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, "authentication required")
		return
	}

	selectionID, err := uuid.Parse(mux.Vars(r)["selectionId"])
	if err != nil {
		h.logger.Warn("POST /selections/{id}/time - Invalid selection ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSelectionID)
		return
	}

	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("POST /selections/{id}/time - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	start, err := types.NewTimeStringFromString(req.StartTime)
	if err != nil {
		h.logger.Warn("POST /selections/{id}/time - Invalid time: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	view, err := h.service.ChooseTime(r.Context(), userID, selectionID, start)
	if err != nil {
		switch {
		case errors.Is(err, selections.ErrSelectionNotFound):
			h.logger.Warn("POST /selections/{id}/time - Not found: selection_id=%s", selectionID)
			handlers.RespondNotFound(w, msgSelectionNotFound)

		case errors.Is(err, selections.ErrInvalidState):
			h.logger.Warn("POST /selections/{id}/time - No date chosen: selection_id=%s", selectionID)
			handlers.RespondConflict(w, "INVALID_STATE", msgNoDateChosen)

		case errors.Is(err, selections.ErrTimeNotAvailable):
			h.logger.Warn("POST /selections/{id}/time - Time not available: selection_id=%s, time=%s",
				selectionID, start)
			handlers.RespondConflict(w, "TIME_NOT_AVAILABLE", msgTimeNotAvailable)

		case errors.Is(err, selections.ErrSelectionChanged):
			h.logger.Warn("POST /selections/{id}/time - Selection changed mid-flight: selection_id=%s", selectionID)
			handlers.RespondConflict(w, "SELECTION_CHANGED", msgSelectionChanged)

		case errors.Is(err, selections.ErrSubmissionInFlight):
			h.logger.Warn("POST /selections/{id}/time - Submission in flight: selection_id=%s", selectionID)
			handlers.RespondConflict(w, "SUBMISSION_IN_FLIGHT", msgSubmitting)

		case errors.Is(err, selections.ErrInvalidInput):
			h.logger.Warn("POST /selections/{id}/time - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidTime)

		case errors.Is(err, selections.ErrUnavailable):
			h.logger.Error("POST /selections/{id}/time - Salon API unavailable: %v", err)
			handlers.RespondBadGateway(w, msgUpstreamUnavailable)

		default:
			h.logger.Error("POST /selections/{id}/time - Failed: selection_id=%s, error=%v", selectionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /selections/{id}/time - Time chosen: selection_id=%s, start=%s, end=%s",
		selectionID, view.StartTime, view.EndTime)
	handlers.RespondJSON(w, http.StatusOK, handlers.ToSelectionPayload(view))
}
