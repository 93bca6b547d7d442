package get_selection

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

// Handle GET /api/v1/selections/{selectionId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, "authentication required")
		return
	}

	selectionID, err := uuid.Parse(mux.Vars(r)["selectionId"])
	if err != nil {
		h.logger.Warn("GET /selections/{id} - Invalid selection ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSelectionID)
		return
	}

	view, err := h.service.Get(r.Context(), userID, selectionID)
	if err != nil {
		if errors.Is(err, selections.ErrSelectionNotFound) {
			h.logger.Warn("GET /selections/{id} - Not found: selection_id=%s", selectionID)
			handlers.RespondNotFound(w, msgSelectionNotFound)
			return
		}
		h.logger.Error("GET /selections/{id} - Failed: selection_id=%s, error=%v", selectionID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, handlers.ToSelectionPayload(view))
}
