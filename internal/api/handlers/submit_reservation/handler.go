package submit_reservation

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/hyeonbit/Salon-BookingGateway/internal/api/handlers"
	"github.com/hyeonbit/Salon-BookingGateway/internal/api/middleware"
	submitReservation "github.com/hyeonbit/Salon-BookingGateway/internal/usecase/submit_reservation"
)

const (
	msgInvalidSelectionID  = "invalid selection id"
	msgSelectionNotFound   = "selection not found"
	msgNotReady            = "selection has no chosen time"
	msgAlreadySubmitting   = "submission already in progress"
	msgSlotConflict        = "time slot was taken, pick another time"
	msgRejected            = "reservation rejected by the salon service"
	msgUpstreamUnavailable = "salon service is temporarily unavailable, try submitting again"
)

type Handler struct {
	useCase SubmitReservationUseCase
	logger  Logger
}

func NewHandler(useCase SubmitReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/selections/{selectionId}/submit
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, "authentication required")
		return
	}
	token, ok := middleware.RawToken(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, "authentication required")
		return
	}

	selectionID, err := uuid.Parse(mux.Vars(r)["selectionId"])
	if err != nil {
		h.logger.Warn("POST /selections/{id}/submit - Invalid selection ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSelectionID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &submitReservation.Request{
		UserID:      userID,
		Token:       token,
		SelectionID: selectionID,
	})
	if err != nil {
		switch {
		case errors.Is(err, submitReservation.ErrSelectionNotFound):
			h.logger.Warn("POST /selections/{id}/submit - Not found: selection_id=%s", selectionID)
			handlers.RespondNotFound(w, msgSelectionNotFound)

		case errors.Is(err, submitReservation.ErrInvalidSelectionState):
			h.logger.Warn("POST /selections/{id}/submit - Not ready: selection_id=%s", selectionID)
			handlers.RespondConflict(w, "INVALID_STATE", msgNotReady)

		case errors.Is(err, submitReservation.ErrSubmissionInFlight):
			h.logger.Warn("POST /selections/{id}/submit - Already submitting: selection_id=%s", selectionID)
			handlers.RespondConflict(w, "SUBMISSION_IN_FLIGHT", msgAlreadySubmitting)

		case errors.Is(err, submitReservation.ErrSlotConflict):
			h.logger.Warn("POST /selections/{id}/submit - Slot conflict: selection_id=%s", selectionID)
			handlers.RespondConflict(w, "RESERVATION_CONFLICT", msgSlotConflict)

		case errors.Is(err, submitReservation.ErrValidation):
			h.logger.Error("POST /selections/{id}/submit - Rejected upstream: selection_id=%s, error=%v",
				selectionID, err)
			handlers.RespondBadRequest(w, msgRejected)

		case errors.Is(err, submitReservation.ErrUnavailable):
			h.logger.Error("POST /selections/{id}/submit - Salon API unavailable: selection_id=%s, error=%v",
				selectionID, err)
			handlers.RespondBadGateway(w, msgUpstreamUnavailable)

		default:
			h.logger.Error("POST /selections/{id}/submit - Failed: selection_id=%s, error=%v", selectionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /selections/{id}/submit - Reservation created: selection_id=%s, reservation_id=%d",
		selectionID, result.Reservation.ID)
	handlers.RespondJSON(w, http.StatusCreated, handlers.ToReservationPayload(result.Reservation))
}
