package get_availability

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/hyeonbit/Salon-BookingGateway/internal/api/handlers"
	getAvailability "github.com/hyeonbit/Salon-BookingGateway/internal/usecase/get_availability"
)

const (
	msgMissingDate         = "date is required"
	msgInvalidDate         = "invalid date format, expected YYYY-MM-DD"
	msgDateInPast          = "date must not be in the past"
	msgMissingMenuID       = "menuId is required"
	msgInvalidMenuID       = "invalid menu id"
	msgInvalidOptionIDs    = "invalid optionIds, expected comma-separated ids"
	msgMenuNotFound        = "menu not found"
	msgOptionNotFound      = "option does not belong to this menu"
	msgUpstreamUnavailable = "salon service is temporarily unavailable"
)

type Handler struct {
	useCase GetAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/availability
// Query params: date (required, YYYY-MM-DD), menuId (required),
// optionIds (optional, comma-separated)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	dateStr := query.Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /availability - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	menuIDStr := query.Get("menuId")
	if menuIDStr == "" {
		h.logger.Warn("GET /availability - Missing menu ID")
		handlers.RespondBadRequest(w, msgMissingMenuID)
		return
	}

	menuID, err := strconv.ParseInt(menuIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /availability - Invalid menu ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidMenuID)
		return
	}

	date, err := ParseDate(dateStr)
	if err != nil {
		h.logger.Warn("GET /availability - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	optionIDs, err := ParseOptionIDs(query.Get("optionIds"))
	if err != nil {
		h.logger.Warn("GET /availability - Invalid option IDs: %v", err)
		handlers.RespondBadRequest(w, msgInvalidOptionIDs)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailability.Request{
		Date:      date,
		MenuID:    menuID,
		OptionIDs: optionIDs,
	})
	if err != nil {
		switch {
		case errors.Is(err, getAvailability.ErrMenuNotFound):
			h.logger.Warn("GET /availability - Menu not found: menu_id=%d", menuID)
			handlers.RespondNotFound(w, msgMenuNotFound)

		case errors.Is(err, getAvailability.ErrOptionNotFound):
			h.logger.Warn("GET /availability - Option not on menu: menu_id=%d", menuID)
			handlers.RespondBadRequest(w, msgOptionNotFound)

		case errors.Is(err, getAvailability.ErrInvalidDate):
			h.logger.Warn("GET /availability - Date in the past: date=%s", dateStr)
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, getAvailability.ErrInvalidInput):
			h.logger.Warn("GET /availability - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, getAvailability.ErrUnavailable):
			h.logger.Error("GET /availability - Salon API unavailable: %v", err)
			handlers.RespondBadGateway(w, msgUpstreamUnavailable)

		default:
			h.logger.Error("GET /availability - Failed to compute slots: menu_id=%d, date=%s, error=%v",
				menuID, dateStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /availability - Slots computed: menu_id=%d, date=%s, required_slots=%d, slots=%d",
		menuID, dateStr, result.RequiredSlots, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
