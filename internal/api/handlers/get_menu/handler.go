package get_menu

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/hyeonbit/Salon-BookingGateway/internal/api/handlers"
	"github.com/hyeonbit/Salon-BookingGateway/internal/service/catalog"
)

const (
	msgInvalidMenuID       = "invalid menu id"
	msgMenuNotFound        = "menu not found"
	msgUpstreamUnavailable = "salon service is temporarily unavailable"
)

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/menus/{menuId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	menuID, err := strconv.ParseInt(vars["menuId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /menus/{id} - Invalid menu ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidMenuID)
		return
	}

	menu, err := h.service.Menu(r.Context(), menuID)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrMenuNotFound):
			h.logger.Warn("GET /menus/{id} - Menu not found: menu_id=%d", menuID)
			handlers.RespondNotFound(w, msgMenuNotFound)
		case errors.Is(err, catalog.ErrUnavailable):
			h.logger.Error("GET /menus/{id} - Salon API unavailable: %v", err)
			handlers.RespondBadGateway(w, msgUpstreamUnavailable)
		default:
			h.logger.Error("GET /menus/{id} - Failed to get menu: menu_id=%d, error=%v", menuID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /menus/{id} - Menu retrieved: menu_id=%d", menuID)
	handlers.RespondJSON(w, http.StatusOK, handlers.ToMenuPayload(*menu))
}
