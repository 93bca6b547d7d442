package create_selection

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/hyeonbit/Salon-BookingGateway/internal/api/handlers"
	"github.com/hyeonbit/Salon-BookingGateway/internal/api/middleware"
	"github.com/hyeonbit/Salon-BookingGateway/internal/service/selections"
)

const (
	msgInvalidBody         = "invalid request body"
	msgMenuNotFound        = "menu not found"
	msgUpstreamUnavailable = "salon service is temporarily unavailable"
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

// Handle POST /api/v1/selections
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, "authentication required")
		return
	}

	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("POST /selections - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	if err := req.Validate(); err != nil {
		h.logger.Warn("POST /selections - Validation failed: %v", err)
		handlers.RespondBadRequest(w, err.Error())
		return
	}

	view, err := h.service.Create(r.Context(), userID, req.MenuID)
	if err != nil {
		switch {
		case errors.Is(err, selections.ErrMenuNotFound):
			h.logger.Warn("POST /selections - Menu not found: menu_id=%d", req.MenuID)
			handlers.RespondNotFound(w, msgMenuNotFound)
		case errors.Is(err, selections.ErrUnavailable):
			h.logger.Error("POST /selections - Salon API unavailable: %v", err)
			handlers.RespondBadGateway(w, msgUpstreamUnavailable)
		default:
			h.logger.Error("POST /selections - Failed: user_id=%d, menu_id=%d, error=%v",
				userID, req.MenuID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /selections - Selection created: user_id=%d, selection_id=%s", userID, view.ID)
	handlers.RespondJSON(w, http.StatusCreated, handlers.ToSelectionPayload(view))
}
