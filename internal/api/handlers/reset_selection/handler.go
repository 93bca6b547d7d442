package reset_selection

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/hyeonbit/Salon-BookingGateway/internal/api/handlers"
	"github.com/hyeonbit/Salon-BookingGateway/internal/api/middleware"
	"github.com/hyeonbit/Salon-BookingGateway/internal/service/selections"
)

const (
	msgInvalidSelectionID = "invalid selection id"
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

// Handle DELETE /api/v1/selections/{selectionId}
// Returns the selection to its initial state; the menu stays chosen.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, "authentication required")
		return
	}

	selectionID, err := uuid.Parse(mux.Vars(r)["selectionId"])
	if err != nil {
		h.logger.Warn("DELETE /selections/{id} - Invalid selection ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSelectionID)
		return
	}

	view, err := h.service.Reset(r.Context(), userID, selectionID)
	if err != nil {
		switch {
		case errors.Is(err, selections.ErrSelectionNotFound):
			h.logger.Warn("DELETE /selections/{id} - Not found: selection_id=%s", selectionID)
			handlers.RespondNotFound(w, msgSelectionNotFound)
		case errors.Is(err, selections.ErrSubmissionInFlight):
			h.logger.Warn("DELETE /selections/{id} - Submission in flight: selection_id=%s", selectionID)
			handlers.RespondConflict(w, "SUBMISSION_IN_FLIGHT", msgSubmitting)
		default:
			h.logger.Error("DELETE /selections/{id} - Failed: selection_id=%s, error=%v", selectionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /selections/{id} - Selection reset: selection_id=%s", selectionID)
	handlers.RespondJSON(w, http.StatusOK, handlers.ToSelectionPayload(view))
}
