// Package selections drives the booking selection state machine:
// NoDate -> DateChosen -> TimeChosen (-> Submitted, owned by the submission
// usecase). All transitions run atomically inside the selection store.
package selections

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/hyeonbit/Salon-BookingGateway/internal/domain"
	storage "github.com/hyeonbit/Salon-BookingGateway/internal/infra/storage/selections"
	"github.com/hyeonbit/Salon-BookingGateway/internal/integrations/salonapi"
	getAvailability "github.com/hyeonbit/Salon-BookingGateway/internal/usecase/get_availability"
	"github.com/hyeonbit/Salon-BookingGateway/pkg/types"
)

// Service owns selection lifecycle and transition validation.
type Service struct {
	store        SelectionStore
	catalog      CatalogClient
	availability AvailabilityProvider
	slotMinutes  int
	logger       Logger
}

// NewService creates the selections service.
func NewService(
	store SelectionStore,
	catalog CatalogClient,
	availability AvailabilityProvider,
	slotMinutes int,
	logger Logger,
) *Service {
	return &Service{
		store:        store,
		catalog:      catalog,
		availability: availability,
		slotMinutes:  slotMinutes,
		logger:       logger,
	}
}

// Create starts a booking flow for a menu and returns the new selection.
func (s *Service) Create(ctx context.Context, userID, menuID int64) (*SelectionView, error) {
	s.logger.Info("CreateSelection: user=%d, menu=%d", userID, menuID)

	menu, err := s.catalog.GetMenu(ctx, menuID)
	if err != nil {
		switch {
		case errors.Is(err, salonapi.ErrNotFound):
			s.logger.Warn("CreateSelection: menu id=%d not found", menuID)
			return nil, ErrMenuNotFound
		case errors.Is(err, salonapi.ErrUnavailable):
			s.logger.Error("CreateSelection: salon API unavailable: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
		default:
			s.logger.Error("CreateSelection: failed to get menu id=%d: %v", menuID, err)
			return nil, fmt.Errorf("%w: failed to get menu: %v", ErrInternal, err)
		}
	}

	sel := domain.NewSelection(uuid.New(), userID, *menu, time.Now())
	if err := s.store.Create(sel); err != nil {
		s.logger.Error("CreateSelection: failed to store selection: %v", err)
		return nil, fmt.Errorf("%w: failed to store selection: %v", ErrInternal, err)
	}

	s.logger.Info("CreateSelection: created selection %s for user=%d", sel.ID, userID)
	return newSelectionView(sel, s.slotMinutes), nil
}

// Get returns the selection with its derived values.
func (s *Service) Get(ctx context.Context, userID int64, id uuid.UUID) (*SelectionView, error) {
	sel, err := s.store.Get(id)
	if err != nil {
		return nil, s.classifyStore("Get", id, err)
	}
	if sel.UserID != userID {
		return nil, ErrSelectionNotFound
	}
	return newSelectionView(sel, s.slotMinutes), nil
}

// ChooseDate moves the selection to DateChosen and clears any chosen time.
func (s *Service) ChooseDate(ctx context.Context, userID int64, id uuid.UUID, date time.Time) (*SelectionView, error) {
	s.logger.Info("ChooseDate: user=%d, selection=%s, date=%s", userID, id, date.Format(domain.DateFormat))

	if date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	sel, err := s.ownedUpdate(id, userID, func(sel *domain.Selection) error {
		return sel.ChooseDate(date)
	})
	if err != nil {
		return nil, err
	}
	return newSelectionView(sel, s.slotMinutes), nil
}

// ToggleOption adds or removes an option; the chosen time is cleared because
// a duration change invalidates slot eligibility.
func (s *Service) ToggleOption(ctx context.Context, userID int64, id uuid.UUID, optionID int64) (*SelectionView, error) {
	s.logger.Info("ToggleOption: user=%d, selection=%s, option=%d", userID, id, optionID)

	if optionID <= 0 {
		return nil, fmt.Errorf("%w: optionID must be positive", ErrInvalidInput)
	}

	sel, err := s.ownedUpdate(id, userID, func(sel *domain.Selection) error {
		return sel.ToggleOption(optionID)
	})
	if err != nil {
		return nil, err
	}
	return newSelectionView(sel, s.slotMinutes), nil
}

// ChooseTime validates the requested start time against a fresh availability
// view and, when still applicable, records it. The view is tagged with the
// (date, run-length) key that initiated the fetch; if the selection's key
// changed while fetching, the stale view is discarded (latest wins).
func (s *Service) ChooseTime(ctx context.Context, userID int64, id uuid.UUID, start types.TimeString) (*SelectionView, error) {
	s.logger.Info("ChooseTime: user=%d, selection=%s, time=%s", userID, id, start)

	if err := start.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	// 1. Snapshot the selection and derive the availability key.
	snapshot, err := s.store.Get(id)
	if err != nil {
		return nil, s.classifyStore("ChooseTime", id, err)
	}
	if snapshot.UserID != userID {
		return nil, ErrSelectionNotFound
	}
	if snapshot.Submitting() {
		return nil, ErrSubmissionInFlight
	}
	if snapshot.State != domain.StateDateChosen && snapshot.State != domain.StateTimeChosen {
		s.logger.Warn("ChooseTime: selection %s is in state %s, no date chosen", id, snapshot.State)
		return nil, ErrInvalidState
	}

	key, ok := snapshot.AvailabilityKey(s.slotMinutes)
	if !ok {
		return nil, ErrInvalidState
	}

	// 2. Fetch a fresh availability view for the key. Never cached: a stale
	// slot view must not back a time choice.
	view, err := s.availability.Execute(ctx, &getAvailability.Request{
		Date:      *snapshot.Date,
		MenuID:    snapshot.Menu.ID,
		OptionIDs: snapshot.ChosenOptionIDs,
	})
	if err != nil {
		return nil, s.classifyAvailability(id, err)
	}

	// 3. The requested time must be a startable slot.
	if _, startable := view.StartableSlot(start); !startable {
		s.logger.Warn("ChooseTime: time %s is not startable for selection %s (requiredSlots=%d)",
			start, id, view.RequiredSlots)
		return nil, ErrTimeNotAvailable
	}

	// 4. Apply under the store lock, discarding the view if the selection's
	// key moved on while we were fetching.
	sel, err := s.ownedUpdate(id, userID, func(sel *domain.Selection) error {
		current, ok := sel.AvailabilityKey(s.slotMinutes)
		if !ok || current != key {
			return ErrSelectionChanged
		}
		return sel.ChooseTime(start)
	})
	if err != nil {
		if errors.Is(err, ErrSelectionChanged) {
			s.logger.Warn("ChooseTime: selection %s changed during availability fetch, view discarded", id)
		}
		return nil, err
	}

	return newSelectionView(sel, s.slotMinutes), nil
}

// Reset returns the selection to NoDate, clearing date, time and options.
func (s *Service) Reset(ctx context.Context, userID int64, id uuid.UUID) (*SelectionView, error) {
	s.logger.Info("ResetSelection: user=%d, selection=%s", userID, id)

	sel, err := s.ownedUpdate(id, userID, func(sel *domain.Selection) error {
		return sel.Reset()
	})
	if err != nil {
		return nil, err
	}
	return newSelectionView(sel, s.slotMinutes), nil
}

// ownedUpdate runs a transition under the store lock after checking
// ownership, and maps domain/storage sentinels to service errors.
func (s *Service) ownedUpdate(id uuid.UUID, userID int64, fn func(sel *domain.Selection) error) (*domain.Selection, error) {
	sel, err := s.store.Update(id, func(sel *domain.Selection) error {
		if sel.UserID != userID {
			return storage.ErrSelectionNotFound
		}
		return fn(sel)
	})
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrSelectionNotFound):
			return nil, ErrSelectionNotFound
		case errors.Is(err, domain.ErrInvalidSelectionState):
			return nil, ErrInvalidState
		case errors.Is(err, domain.ErrUnknownOption):
			return nil, ErrUnknownOption
		case errors.Is(err, domain.ErrSubmissionInFlight):
			return nil, ErrSubmissionInFlight
		case errors.Is(err, ErrSelectionChanged):
			return nil, ErrSelectionChanged
		default:
			return nil, fmt.Errorf("%w: %v", ErrInternal, err)
		}
	}
	return sel, nil
}

func (s *Service) classifyStore(op string, id uuid.UUID, err error) error {
	if errors.Is(err, storage.ErrSelectionNotFound) {
		s.logger.Warn("%s: selection %s not found", op, id)
		return ErrSelectionNotFound
	}
	s.logger.Error("%s: store error for selection %s: %v", op, id, err)
	return fmt.Errorf("%w: %v", ErrInternal, err)
}

func (s *Service) classifyAvailability(id uuid.UUID, err error) error {
	switch {
	case errors.Is(err, getAvailability.ErrInvalidDate):
		// The chosen date slipped into the past between ChooseDate and now.
		s.logger.Warn("ChooseTime: selection %s has a date in the past", id)
		return ErrTimeNotAvailable
	case errors.Is(err, getAvailability.ErrUnavailable):
		s.logger.Error("ChooseTime: availability fetch failed for selection %s: %v", id, err)
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	default:
		s.logger.Error("ChooseTime: availability computation failed for selection %s: %v", id, err)
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}
}
