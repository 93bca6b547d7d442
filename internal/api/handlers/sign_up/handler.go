package sign_up

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/hyeonbit/Salon-BookingGateway/internal/api/handlers"
	"github.com/hyeonbit/Salon-BookingGateway/internal/service/accounts"
)

const (
	msgInvalidBody         = "invalid request body"
	msgUpstreamUnavailable = "salon service is temporarily unavailable"
)

type Handler struct {
	service AccountsService
	logger  Logger
}

func NewHandler(service AccountsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/auth/sign-up
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("POST /auth/sign-up - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	if err := req.Validate(); err != nil {
		h.logger.Warn("POST /auth/sign-up - Validation failed: %v", err)
		handlers.RespondBadRequest(w, err.Error())
		return
	}

	user, err := h.service.SignUp(r.Context(), req.ToServiceRequest())
	if err != nil {
		switch {
		case errors.Is(err, accounts.ErrSignUpRejected):
			h.logger.Warn("POST /auth/sign-up - Rejected upstream: %v", err)
			handlers.RespondBadRequest(w, err.Error())
		case errors.Is(err, accounts.ErrUnavailable):
			h.logger.Error("POST /auth/sign-up - Salon API unavailable: %v", err)
			handlers.RespondBadGateway(w, msgUpstreamUnavailable)
		default:
			h.logger.Error("POST /auth/sign-up - Failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /auth/sign-up - User created: user_id=%d", user.ID)
	handlers.RespondJSON(w, http.StatusCreated, handlers.ToUserPayload(*user))
}
