package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hyeonbit/Salon-BookingGateway/pkg/types"
)

func testMenu() Menu {
	return Menu{
		ID:              7,
		Name:            "Cut & Style",
		BasePrice:       30000,
		DurationMinutes: 60,
		Options: []MenuOption{
			{ID: 1, Name: "Shampoo", Price: 5000, AdditionalMinutes: 15},
			{ID: 2, Name: "Treatment", Price: 20000, AdditionalMinutes: 30},
		},
	}
}

func newTestSelection(t *testing.T) *Selection {
	t.Helper()
	return NewSelection(uuid.New(), 42, testMenu(), time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC))
}

func TestNewSelection(t *testing.T) {
	sel := newTestSelection(t)

	assert.Equal(t, StateNoDate, sel.State)
	assert.Nil(t, sel.Date)
	assert.Nil(t, sel.StartTime)
	assert.Empty(t, sel.ChosenOptionIDs)
	assert.False(t, sel.Submitting())
	assert.Equal(t, int64(30000), sel.TotalPrice())
	assert.Equal(t, 60, sel.TotalDurationMinutes())
}

func TestSelection_DerivedTotals(t *testing.T) {
	sel := newTestSelection(t)

	require.NoError(t, sel.ToggleOption(1))
	assert.Equal(t, int64(35000), sel.TotalPrice())
	assert.Equal(t, 75, sel.TotalDurationMinutes())
	assert.Equal(t, 3, sel.RequiredSlots(30))

	require.NoError(t, sel.ToggleOption(2))
	assert.Equal(t, int64(55000), sel.TotalPrice())
	assert.Equal(t, 105, sel.TotalDurationMinutes())
	assert.Equal(t, 4, sel.RequiredSlots(30))

	// Toggle off again
	require.NoError(t, sel.ToggleOption(1))
	assert.Equal(t, int64(50000), sel.TotalPrice())
	assert.Equal(t, []int64{2}, sel.ChosenOptionIDs)
}

func TestSelection_ToggleOption_Unknown(t *testing.T) {
	sel := newTestSelection(t)
	assert.ErrorIs(t, sel.ToggleOption(99), ErrUnknownOption)
}

func TestSelection_StateMachineHappyPath(t *testing.T) {
	sel := newTestSelection(t)

	require.NoError(t, sel.ChooseDate(time.Date(2026, 8, 15, 13, 45, 0, 0, time.UTC)))
	assert.Equal(t, StateDateChosen, sel.State)
	require.NotNil(t, sel.Date)
	assert.Equal(t, "2026-08-15", sel.Date.Format(DateFormat))
	// Time part truncated
	assert.Equal(t, 0, sel.Date.Hour())

	require.NoError(t, sel.ChooseTime("14:00"))
	assert.Equal(t, StateTimeChosen, sel.State)
	require.NotNil(t, sel.StartTime)

	end, ok := sel.EndTime()
	require.True(t, ok)
	assert.Equal(t, types.TimeString("15:00"), end)

	require.NoError(t, sel.BeginSubmit())
	sel.MarkSubmitted()
	assert.Equal(t, StateSubmitted, sel.State)
	assert.False(t, sel.Submitting())
}

func TestSelection_ChooseTimeRequiresDate(t *testing.T) {
	sel := newTestSelection(t)
	assert.ErrorIs(t, sel.ChooseTime("14:00"), ErrInvalidSelectionState)
}

func TestSelection_ChooseDateClearsTime(t *testing.T) {
	sel := newTestSelection(t)
	require.NoError(t, sel.ChooseDate(time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC)))
	require.NoError(t, sel.ChooseTime("14:00"))

	require.NoError(t, sel.ChooseDate(time.Date(2026, 8, 16, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, StateDateChosen, sel.State)
	assert.Nil(t, sel.StartTime)
}

func TestSelection_ToggleOptionClearsTime(t *testing.T) {
	sel := newTestSelection(t)
	require.NoError(t, sel.ChooseDate(time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC)))
	require.NoError(t, sel.ChooseTime("14:00"))

	require.NoError(t, sel.ToggleOption(1))
	assert.Equal(t, StateDateChosen, sel.State)
	assert.Nil(t, sel.StartTime)

	// Toggling before any time is chosen keeps DateChosen
	require.NoError(t, sel.ToggleOption(2))
	assert.Equal(t, StateDateChosen, sel.State)
}

func TestSelection_ToggleOptionInNoDateKeepsState(t *testing.T) {
	sel := newTestSelection(t)
	require.NoError(t, sel.ToggleOption(1))
	assert.Equal(t, StateNoDate, sel.State)
}

func TestSelection_Reset(t *testing.T) {
	sel := newTestSelection(t)
	require.NoError(t, sel.ChooseDate(time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC)))
	require.NoError(t, sel.ToggleOption(1))
	require.NoError(t, sel.ChooseTime("14:00"))

	require.NoError(t, sel.Reset())
	assert.Equal(t, StateNoDate, sel.State)
	assert.Nil(t, sel.Date)
	assert.Nil(t, sel.StartTime)
	assert.Empty(t, sel.ChosenOptionIDs)
	assert.Equal(t, int64(7), sel.Menu.ID, "menu snapshot survives reset")
}

func TestSelection_SubmissionGuard(t *testing.T) {
	sel := newTestSelection(t)
	require.NoError(t, sel.ChooseDate(time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC)))

	// Not ready: no time chosen
	assert.ErrorIs(t, sel.BeginSubmit(), ErrInvalidSelectionState)

	require.NoError(t, sel.ChooseTime("14:00"))
	require.NoError(t, sel.BeginSubmit())
	assert.True(t, sel.Submitting())

	// Second submission while one runs
	assert.ErrorIs(t, sel.BeginSubmit(), ErrSubmissionInFlight)

	// Mutations are locked while submitting
	assert.ErrorIs(t, sel.ChooseDate(time.Now()), ErrInvalidSelectionState)
	assert.ErrorIs(t, sel.ToggleOption(1), ErrInvalidSelectionState)
	assert.ErrorIs(t, sel.ChooseTime("15:00"), ErrInvalidSelectionState)
	assert.ErrorIs(t, sel.Reset(), ErrSubmissionInFlight)

	// Release on retryable failure: selection stays TimeChosen, resubmittable
	sel.EndSubmit()
	assert.False(t, sel.Submitting())
	assert.Equal(t, StateTimeChosen, sel.State)
	require.NoError(t, sel.BeginSubmit())
}

func TestSelection_RevertToDateChosen(t *testing.T) {
	sel := newTestSelection(t)
	require.NoError(t, sel.ChooseDate(time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC)))
	require.NoError(t, sel.ChooseTime("14:00"))
	require.NoError(t, sel.BeginSubmit())

	// Slot race lost: time dropped, date kept, guard released
	sel.RevertToDateChosen()
	assert.Equal(t, StateDateChosen, sel.State)
	assert.Nil(t, sel.StartTime)
	assert.NotNil(t, sel.Date)
	assert.False(t, sel.Submitting())
}

func TestSelection_AvailabilityKey(t *testing.T) {
	sel := newTestSelection(t)

	_, ok := sel.AvailabilityKey(30)
	assert.False(t, ok, "no key before a date is chosen")

	require.NoError(t, sel.ChooseDate(time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC)))
	key, ok := sel.AvailabilityKey(30)
	require.True(t, ok)
	assert.Equal(t, AvailabilityKey{Date: "2026-08-15", RequiredSlots: 2}, key)

	// Option toggles change the run-length and therefore the key
	require.NoError(t, sel.ToggleOption(1))
	key2, ok := sel.AvailabilityKey(30)
	require.True(t, ok)
	assert.Equal(t, 3, key2.RequiredSlots)
	assert.NotEqual(t, key, key2)
}

func TestSelection_Clone(t *testing.T) {
	sel := newTestSelection(t)
	require.NoError(t, sel.ChooseDate(time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC)))
	require.NoError(t, sel.ToggleOption(1))
	require.NoError(t, sel.ChooseTime("14:00"))

	clone := sel.Clone()
	require.NoError(t, clone.ToggleOption(2))
	newDate := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, clone.ChooseDate(newDate))

	assert.Equal(t, []int64{1}, sel.ChosenOptionIDs, "original option set untouched")
	assert.Equal(t, "2026-08-15", sel.Date.Format(DateFormat), "original date untouched")
	assert.NotNil(t, sel.StartTime, "original time untouched")
}
