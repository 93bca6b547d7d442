package toggle_option

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
	msgInvalidOptionID    = "optionId must be positive"
	msgSelectionNotFound  = "selection not found"
	msgUnknownOption      = "option does not belong to the selected menu"
	msgSubmitting         = "selection is being submitted"
)

// Request toggles one option on the selection's menu.
type Request struct {
	OptionID int64 `json:"optionId"`
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

// Handle POST /api/v1/selections/{selectionId}/options
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, "authentication required")
		return
	}

	selectionID, err := uuid.Parse(mux.Vars(r)["selectionId"])
	if err != nil {
		h.logger.Warn("POST /selections/{id}/options - Invalid selection ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSelectionID)
		return
	}

	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("POST /selections/{id}/options - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	view, err := h.service.ToggleOption(r.Context(), userID, selectionID, req.OptionID)
	if err != nil {
		switch {
		case errors.Is(err, selections.ErrSelectionNotFound):
			h.logger.Warn("POST /selections/{id}/options - Not found: selection_id=%s", selectionID)
			handlers.RespondNotFound(w, msgSelectionNotFound)
		case errors.Is(err, selections.ErrUnknownOption):
			h.logger.Warn("POST /selections/{id}/options - Unknown option: selection_id=%s, option_id=%d",
				selectionID, req.OptionID)
			handlers.RespondBadRequest(w, msgUnknownOption)
		case errors.Is(err, selections.ErrSubmissionInFlight):
			h.logger.Warn("POST /selections/{id}/options - Submission in flight: selection_id=%s", selectionID)
			handlers.RespondConflict(w, "SUBMISSION_IN_FLIGHT", msgSubmitting)
		case errors.Is(err, selections.ErrInvalidInput):
			h.logger.Warn("POST /selections/{id}/options - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidOptionID)
		default:
			h.logger.Error("POST /selections/{id}/options - Failed: selection_id=%s, error=%v", selectionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /selections/{id}/options - Option toggled: selection_id=%s, option_id=%d, options=%d",
		selectionID, req.OptionID, len(view.ChosenOptionIDs))
	handlers.RespondJSON(w, http.StatusOK, handlers.ToSelectionPayload(view))
}
