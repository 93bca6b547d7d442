package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/hyeonbit/Salon-BookingGateway/pkg/types"
)

var (
	// ErrInvalidSelectionState is returned when a state-machine transition is
	// attempted out of order (e.g. choosing a time with no date set). This is
	// a caller bug, not a user-facing condition.
	ErrInvalidSelectionState = errors.New("invalid selection state for this transition")

	// ErrUnknownOption is returned when an option id does not belong to the
	// selection's menu.
	ErrUnknownOption = errors.New("option does not belong to the selected menu")

	// ErrSubmissionInFlight is returned when a second submission is attempted
	// while one is already running. Submissions are not idempotent.
	ErrSubmissionInFlight = errors.New("a submission for this selection is already in flight")
)

// SelectionState is the booking flow state machine:
// NoDate -> DateChosen -> TimeChosen -> Submitted.
type SelectionState string

const (
	StateNoDate     SelectionState = "NO_DATE"
	StateDateChosen SelectionState = "DATE_CHOSEN"
	StateTimeChosen SelectionState = "TIME_CHOSEN"
	StateSubmitted  SelectionState = "SUBMITTED"
)

// AvailabilityKey identifies the (date, run-length) pair an availability
// computation was started for. A result is only applied to a selection while
// its key still matches the selection's current key; stale results are
// discarded (latest wins).
type AvailabilityKey struct {
	Date          string // YYYY-MM-DD
	RequiredSlots int
}

// Selection holds one user's in-progress booking choice: the menu snapshot,
// the toggled option set, and the chosen date and start time. Derived values
// (totals, run-length, end time) are always recomputed, never stored.
// A Selection has a single owner and is never shared across booking flows.
type Selection struct {
	ID              uuid.UUID
	UserID          int64
	Menu            Menu
	ChosenOptionIDs []int64
	Date            *time.Time
	StartTime       *types.TimeString
	State           SelectionState

	submitting bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewSelection starts a booking flow for one menu.
func NewSelection(id uuid.UUID, userID int64, menu Menu, now time.Time) *Selection {
	return &Selection{
		ID:        id,
		UserID:    userID,
		Menu:      menu,
		State:     StateNoDate,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// ChosenOptions resolves the toggled option ids against the menu snapshot.
func (s *Selection) ChosenOptions() []MenuOption {
	opts := make([]MenuOption, 0, len(s.ChosenOptionIDs))
	for _, id := range s.ChosenOptionIDs {
		if opt, ok := s.Menu.Option(id); ok {
			opts = append(opts, opt)
		}
	}
	return opts
}

// TotalPrice is the menu base price plus every chosen option.
func (s *Selection) TotalPrice() int64 {
	total := s.Menu.BasePrice
	for _, opt := range s.ChosenOptions() {
		total += opt.Price
	}
	return total
}

// TotalDurationMinutes is the base duration plus every chosen option.
func (s *Selection) TotalDurationMinutes() int {
	total := s.Menu.DurationMinutes
	for _, opt := range s.ChosenOptions() {
		total += opt.AdditionalMinutes
	}
	return total
}

// RequiredSlots is the number of consecutive slots the selection occupies.
func (s *Selection) RequiredSlots(slotMinutes int) int {
	return CalculateRequiredSlots(s.TotalDurationMinutes(), slotMinutes)
}

// EndTime derives the end of the booking from the chosen start time.
// The second return is false until a start time is chosen.
func (s *Selection) EndTime() (types.TimeString, bool) {
	if s.StartTime == nil {
		return "", false
	}
	end, err := CalculateEndTime(*s.StartTime, s.TotalDurationMinutes())
	if err != nil {
		return "", false
	}
	return end, true
}

// AvailabilityKey returns the key identifying the availability view the
// selection currently depends on. False until a date is chosen.
func (s *Selection) AvailabilityKey(slotMinutes int) (AvailabilityKey, bool) {
	if s.Date == nil {
		return AvailabilityKey{}, false
	}
	return AvailabilityKey{
		Date:          s.Date.Format(DateFormat),
		RequiredSlots: s.RequiredSlots(slotMinutes),
	}, true
}

// ChooseDate moves the selection to DateChosen. Any chosen start time is
// cleared: slot eligibility depends on the date.
func (s *Selection) ChooseDate(date time.Time) error {
	if s.State == StateSubmitted || s.submitting {
		return ErrInvalidSelectionState
	}
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	s.Date = &day
	s.StartTime = nil
	s.State = StateDateChosen
	return nil
}

// ToggleOption adds or removes an option. The chosen start time, if any, is
// cleared: a duration change invalidates slot eligibility.
func (s *Selection) ToggleOption(optionID int64) error {
	if s.State == StateSubmitted || s.submitting {
		return ErrInvalidSelectionState
	}
	if !s.Menu.HasOption(optionID) {
		return ErrUnknownOption
	}

	for i, id := range s.ChosenOptionIDs {
		if id == optionID {
			s.ChosenOptionIDs = append(s.ChosenOptionIDs[:i], s.ChosenOptionIDs[i+1:]...)
			s.clearTime()
			return nil
		}
	}
	s.ChosenOptionIDs = append(s.ChosenOptionIDs, optionID)
	s.clearTime()
	return nil
}

// ChooseTime records the validated start time and moves to TimeChosen.
// Valid only once a date is chosen. Validation that the time is a startable
// slot happens in the selections service against a fresh availability view;
// the entity only enforces ordering.
func (s *Selection) ChooseTime(t types.TimeString) error {
	if s.submitting {
		return ErrInvalidSelectionState
	}
	if s.State != StateDateChosen && s.State != StateTimeChosen {
		return ErrInvalidSelectionState
	}
	start := t
	s.StartTime = &start
	s.State = StateTimeChosen
	return nil
}

// Reset returns the selection to NoDate, clearing date, time and options.
// The menu snapshot is kept so the flow can restart on the same menu.
func (s *Selection) Reset() error {
	if s.submitting {
		return ErrSubmissionInFlight
	}
	s.Date = nil
	s.StartTime = nil
	s.ChosenOptionIDs = nil
	s.State = StateNoDate
	return nil
}

// BeginSubmit guards the submission: the selection must be in TimeChosen and
// must not already be submitting. At most one submission runs per selection.
func (s *Selection) BeginSubmit() error {
	if s.submitting {
		return ErrSubmissionInFlight
	}
	if s.State != StateTimeChosen {
		return ErrInvalidSelectionState
	}
	s.submitting = true
	return nil
}

// EndSubmit releases the submission guard without changing state. Used when
// the upstream call failed for a retryable reason: the user may re-submit.
func (s *Selection) EndSubmit() {
	s.submitting = false
}

// MarkSubmitted completes the flow after a successful submission.
func (s *Selection) MarkSubmitted() {
	s.submitting = false
	s.State = StateSubmitted
}

// RevertToDateChosen drops the chosen time and returns to DateChosen. Called
// when the submission lost a slot race: the chosen time is no longer
// trustworthy and a fresh availability view is required before re-choosing.
func (s *Selection) RevertToDateChosen() {
	s.submitting = false
	s.StartTime = nil
	s.State = StateDateChosen
}

// Submitting reports whether a submission is currently in flight.
func (s *Selection) Submitting() bool {
	return s.submitting
}

// Clone returns a deep copy. The store hands out clones so callers can read
// a consistent snapshot without holding the store lock.
func (s *Selection) Clone() *Selection {
	clone := *s
	if s.ChosenOptionIDs != nil {
		clone.ChosenOptionIDs = append([]int64(nil), s.ChosenOptionIDs...)
	}
	if s.Date != nil {
		date := *s.Date
		clone.Date = &date
	}
	if s.StartTime != nil {
		start := *s.StartTime
		clone.StartTime = &start
	}
	return &clone
}

func (s *Selection) clearTime() {
	if s.StartTime != nil || s.State == StateTimeChosen {
		s.StartTime = nil
		s.State = StateDateChosen
	}
}
