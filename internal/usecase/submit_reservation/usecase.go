package submit_reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/hyeonbit/Salon-BookingGateway/internal/domain"
	"github.com/hyeonbit/Salon-BookingGateway/internal/infra/storage/selections"
	"github.com/hyeonbit/Salon-BookingGateway/internal/integrations/salonapi"
)

// UseCase turns a TimeChosen selection into a create-reservation call against
// the salon API and classifies the outcome. Submissions are guarded so that
// at most one runs per selection at any time.
type UseCase struct {
	store        SelectionStore
	reservations ReservationsClient
	logger       Logger
}

// NewUseCase creates the submission usecase.
func NewUseCase(store SelectionStore, reservations ReservationsClient, logger Logger) *UseCase {
	return &UseCase{
		store:        store,
		reservations: reservations,
		logger:       logger,
	}
}

// Execute submits the selection.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("SubmitReservation: user=%d, selection=%s", req.UserID, req.SelectionID)

	// 1. Acquire the submission guard atomically: the selection must exist,
	// belong to the caller, be in TimeChosen, and have no submission running.
	snapshot, err := uc.store.Update(req.SelectionID, func(sel *domain.Selection) error {
		if sel.UserID != req.UserID {
			return selections.ErrSelectionNotFound
		}
		return sel.BeginSubmit()
	})
	if err != nil {
		return nil, uc.classifyGuard(req, err)
	}

	// 2. Build the upstream request from the guarded snapshot.
	payload := salonapi.CreateReservationRequest{
		ReservationDate: snapshot.Date.Format(domain.DateFormat),
		StartTime:       snapshot.StartTime.String(),
		MenuID:          snapshot.Menu.ID,
		OptionIDs:       append([]int64(nil), snapshot.ChosenOptionIDs...),
	}

	// 3. Single-shot submission. No automatic retry: a failed submit is
	// re-driven by the user, never silently repeated by the gateway.
	reservation, err := uc.reservations.CreateReservation(ctx, req.Token, payload)
	if err != nil {
		return nil, uc.classifySubmit(req, err)
	}

	// 4. Mark the flow complete and drop the selection: a new booking starts
	// from a fresh one.
	if _, err := uc.store.Update(req.SelectionID, func(sel *domain.Selection) error {
		sel.MarkSubmitted()
		return nil
	}); err != nil {
		uc.logger.Error("SubmitReservation: failed to mark selection %s submitted: %v", req.SelectionID, err)
	}
	if err := uc.store.Delete(req.SelectionID); err != nil {
		uc.logger.Error("SubmitReservation: failed to drop selection %s: %v", req.SelectionID, err)
	}

	uc.logger.Info("SubmitReservation: created reservation id=%d for user=%d (%s %s-%s)",
		reservation.ID, req.UserID, payload.ReservationDate, reservation.StartTime, reservation.EndTime)

	return &Response{Reservation: *reservation}, nil
}

// classifyGuard maps guard-acquisition failures.
func (uc *UseCase) classifyGuard(req *Request, err error) error {
	switch {
	case errors.Is(err, selections.ErrSelectionNotFound):
		uc.logger.Warn("SubmitReservation: selection %s not found for user=%d", req.SelectionID, req.UserID)
		return ErrSelectionNotFound
	case errors.Is(err, domain.ErrSubmissionInFlight):
		uc.logger.Warn("SubmitReservation: selection %s already submitting", req.SelectionID)
		return ErrSubmissionInFlight
	case errors.Is(err, domain.ErrInvalidSelectionState):
		uc.logger.Warn("SubmitReservation: selection %s has no chosen time", req.SelectionID)
		return ErrInvalidSelectionState
	default:
		uc.logger.Error("SubmitReservation: guard failed for selection %s: %v", req.SelectionID, err)
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}
}

// classifySubmit maps upstream submission failures and transitions the
// selection accordingly.
func (uc *UseCase) classifySubmit(req *Request, err error) error {
	switch {
	case errors.Is(err, salonapi.ErrConflict):
		// Lost the race: the chosen time is no longer trustworthy. Drop it,
		// return to DateChosen, and force a fresh availability fetch before
		// another time can be chosen.
		uc.revert(req.SelectionID)
		uc.logger.Warn("SubmitReservation: slot conflict for selection %s: %v", req.SelectionID, err)
		return fmt.Errorf("%w: %v", ErrSlotConflict, err)

	case errors.Is(err, salonapi.ErrValidation):
		uc.release(req.SelectionID)
		uc.logger.Error("SubmitReservation: upstream rejected selection %s: %v", req.SelectionID, err)
		return fmt.Errorf("%w: %v", ErrValidation, err)

	case errors.Is(err, salonapi.ErrUnavailable):
		uc.release(req.SelectionID)
		uc.logger.Error("SubmitReservation: salon API unavailable for selection %s: %v", req.SelectionID, err)
		return fmt.Errorf("%w: %v", ErrUnavailable, err)

	default:
		uc.release(req.SelectionID)
		uc.logger.Error("SubmitReservation: submission failed for selection %s: %v", req.SelectionID, err)
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}
}

// revert moves the selection back to DateChosen after a lost slot race.
func (uc *UseCase) revert(id uuid.UUID) {
	if _, err := uc.store.Update(id, func(sel *domain.Selection) error {
		sel.RevertToDateChosen()
		return nil
	}); err != nil {
		uc.logger.Error("SubmitReservation: failed to revert selection %s: %v", id, err)
	}
}

// release drops the submission guard, leaving the selection in TimeChosen so
// the user can explicitly re-submit.
func (uc *UseCase) release(id uuid.UUID) {
	if _, err := uc.store.Update(id, func(sel *domain.Selection) error {
		sel.EndSubmit()
		return nil
	}); err != nil {
		uc.logger.Error("SubmitReservation: failed to release selection %s: %v", id, err)
	}
}
