package get_menus

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/hyeonbit/Salon-BookingGateway/internal/api/handlers"
	"github.com/hyeonbit/Salon-BookingGateway/internal/service/catalog"
)

const (
	msgInvalidCategoryID   = "invalid category id"
	msgCategoryNotFound    = "category not found"
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

// Handle GET /api/v1/menus
// Query params: categoryId (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var categoryID *int64
	if raw := r.URL.Query().Get("categoryId"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			h.logger.Warn("GET /menus - Invalid category ID: %v", err)
			handlers.RespondBadRequest(w, msgInvalidCategoryID)
			return
		}
		categoryID = &id
	}

	menus, err := h.service.Menus(r.Context(), categoryID)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrCategoryNotFound):
			h.logger.Warn("GET /menus - Category not found")
			handlers.RespondNotFound(w, msgCategoryNotFound)
		case errors.Is(err, catalog.ErrUnavailable):
			h.logger.Error("GET /menus - Salon API unavailable: %v", err)
			handlers.RespondBadGateway(w, msgUpstreamUnavailable)
		default:
			h.logger.Error("GET /menus - Failed to list menus: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := make([]handlers.MenuPayload, len(menus))
	for i, m := range menus {
		response[i] = handlers.ToMenuPayload(m)
	}

	h.logger.Info("GET /menus - Menus retrieved: count=%d", len(menus))
	handlers.RespondJSON(w, http.StatusOK, response)
}
