package get_categories

import (
	"errors"
	"net/http"

	"github.com/hyeonbit/Salon-BookingGateway/internal/api/handlers"
	"github.com/hyeonbit/Salon-BookingGateway/internal/service/catalog"
)

const msgUpstreamUnavailable = "salon service is temporarily unavailable"

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

// Handle GET /api/v1/categories
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.Categories(r.Context())
	if err != nil {
		if errors.Is(err, catalog.ErrUnavailable) {
			h.logger.Error("GET /categories - Salon API unavailable: %v", err)
			handlers.RespondBadGateway(w, msgUpstreamUnavailable)
			return
		}
		h.logger.Error("GET /categories - Failed to list categories: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	response := make([]handlers.CategoryPayload, len(categories))
	for i, c := range categories {
		response[i] = handlers.ToCategoryPayload(c)
	}

	h.logger.Info("GET /categories - Categories retrieved: count=%d", len(categories))
	handlers.RespondJSON(w, http.StatusOK, response)
}
