package selections

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hyeonbit/Salon-BookingGateway/internal/domain"
	storage "github.com/hyeonbit/Salon-BookingGateway/internal/infra/storage/selections"
	"github.com/hyeonbit/Salon-BookingGateway/internal/integrations/salonapi"
	getAvailability "github.com/hyeonbit/Salon-BookingGateway/internal/usecase/get_availability"
	"github.com/hyeonbit/Salon-BookingGateway/pkg/types"
)

const (
	testUserID      = int64(42)
	testSlotMinutes = 30
)

type fakeCatalog struct {
	menu *domain.Menu
	err  error
}

func (f *fakeCatalog) GetMenu(ctx context.Context, menuID int64) (*domain.Menu, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.menu, nil
}

// fakeAvailability serves a precomputed slot view and can run a hook while
// the fetch is "in flight" to simulate concurrent selection changes.
type fakeAvailability struct {
	reserved []types.TimeString
	err      error
	inFlight func()
}

func (f *fakeAvailability) Execute(ctx context.Context, req *getAvailability.Request) (*getAvailability.Response, error) {
	if f.inFlight != nil {
		f.inFlight()
	}
	if f.err != nil {
		return nil, f.err
	}

	hours := domain.DefaultBusinessHours()
	menu := testServiceMenu()
	totalDuration := menu.DurationMinutes
	for _, id := range req.OptionIDs {
		if opt, ok := menu.Option(id); ok {
			totalDuration += opt.AdditionalMinutes
		}
	}
	requiredSlots := domain.CalculateRequiredSlots(totalDuration, hours.SlotMinutes)
	slots := domain.AvailableSlots(hours, f.reserved, requiredSlots)

	out := make([]getAvailability.Slot, len(slots))
	for i, s := range slots {
		out[i] = getAvailability.Slot{Index: s.Index, Time: s.Time, Reserved: s.Reserved, Startable: s.Startable}
	}
	return &getAvailability.Response{
		Date:          req.Date,
		MenuID:        req.MenuID,
		RequiredSlots: requiredSlots,
		Slots:         out,
	}, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testServiceMenu() *domain.Menu {
	return &domain.Menu{
		ID:              7,
		Name:            "Cut & Style",
		BasePrice:       30000,
		DurationMinutes: 60,
		Options: []domain.MenuOption{
			{ID: 1, Name: "Shampoo", Price: 5000, AdditionalMinutes: 15},
			{ID: 2, Name: "Treatment", Price: 20000, AdditionalMinutes: 30},
		},
	}
}

func newTestService(availability *fakeAvailability) (*Service, *storage.Store) {
	store := storage.NewStore(time.Hour)
	svc := NewService(store, &fakeCatalog{menu: testServiceMenu()}, availability, testSlotMinutes, nopLogger{})
	return svc, store
}

var testDate = time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

func TestService_CreateAndGet(t *testing.T) {
	svc, _ := newTestService(&fakeAvailability{})

	view, err := svc.Create(context.Background(), testUserID, 7)
	require.NoError(t, err)
	assert.Equal(t, domain.StateNoDate, view.State)
	assert.Equal(t, int64(30000), view.TotalPrice)
	assert.Equal(t, 2, view.RequiredSlots)

	got, err := svc.Get(context.Background(), testUserID, view.ID)
	require.NoError(t, err)
	assert.Equal(t, view.ID, got.ID)

	// Another user cannot see the selection
	_, err = svc.Get(context.Background(), testUserID+1, view.ID)
	assert.ErrorIs(t, err, ErrSelectionNotFound)
}

func TestService_CreateUnknownMenu(t *testing.T) {
	store := storage.NewStore(time.Hour)
	svc := NewService(store, &fakeCatalog{err: salonapi.ErrNotFound}, &fakeAvailability{}, testSlotMinutes, nopLogger{})

	_, err := svc.Create(context.Background(), testUserID, 404)
	assert.ErrorIs(t, err, ErrMenuNotFound)
}

func TestService_ChooseDateThenTime(t *testing.T) {
	svc, _ := newTestService(&fakeAvailability{})

	view, err := svc.Create(context.Background(), testUserID, 7)
	require.NoError(t, err)

	view, err = svc.ChooseDate(context.Background(), testUserID, view.ID, testDate)
	require.NoError(t, err)
	assert.Equal(t, domain.StateDateChosen, view.State)
	assert.Equal(t, "2026-09-01", view.Date)

	view, err = svc.ChooseTime(context.Background(), testUserID, view.ID, "14:00")
	require.NoError(t, err)
	assert.Equal(t, domain.StateTimeChosen, view.State)
	assert.Equal(t, "14:00", view.StartTime)
	assert.Equal(t, "15:00", view.EndTime)
}

func TestService_ChooseTimeWithoutDate(t *testing.T) {
	svc, _ := newTestService(&fakeAvailability{})

	view, err := svc.Create(context.Background(), testUserID, 7)
	require.NoError(t, err)

	_, err = svc.ChooseTime(context.Background(), testUserID, view.ID, "14:00")
	assert.ErrorIs(t, err, ErrInvalidState)
}

func TestService_ChooseTimeRejectsUnavailableSlot(t *testing.T) {
	// 14:00 reserved: with a 2-slot run both 13:30 and 14:00 are blocked.
	svc, _ := newTestService(&fakeAvailability{reserved: []types.TimeString{"14:00"}})

	view, err := svc.Create(context.Background(), testUserID, 7)
	require.NoError(t, err)
	_, err = svc.ChooseDate(context.Background(), testUserID, view.ID, testDate)
	require.NoError(t, err)

	_, err = svc.ChooseTime(context.Background(), testUserID, view.ID, "14:00")
	assert.ErrorIs(t, err, ErrTimeNotAvailable)
	_, err = svc.ChooseTime(context.Background(), testUserID, view.ID, "13:30")
	assert.ErrorIs(t, err, ErrTimeNotAvailable)

	got, err := svc.Get(context.Background(), testUserID, view.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StateDateChosen, got.State, "rejected time leaves the state unchanged")
}

func TestService_ChooseTimeOffGrid(t *testing.T) {
	svc, _ := newTestService(&fakeAvailability{})

	view, err := svc.Create(context.Background(), testUserID, 7)
	require.NoError(t, err)
	_, err = svc.ChooseDate(context.Background(), testUserID, view.ID, testDate)
	require.NoError(t, err)

	// 09:00 is before opening, 10:15 is not a slot boundary
	_, err = svc.ChooseTime(context.Background(), testUserID, view.ID, "09:00")
	assert.ErrorIs(t, err, ErrTimeNotAvailable)
	_, err = svc.ChooseTime(context.Background(), testUserID, view.ID, "10:15")
	assert.ErrorIs(t, err, ErrTimeNotAvailable)
}

func TestService_ChooseTimeLatestWins(t *testing.T) {
	svc, store := newTestService(&fakeAvailability{})

	view, err := svc.Create(context.Background(), testUserID, 7)
	require.NoError(t, err)
	_, err = svc.ChooseDate(context.Background(), testUserID, view.ID, testDate)
	require.NoError(t, err)

	// While the availability fetch is in flight, the user toggles an option,
	// changing the run-length and therefore the availability key.
	availability := &fakeAvailability{
		inFlight: func() {
			_, err := store.Update(view.ID, func(sel *domain.Selection) error {
				return sel.ToggleOption(2)
			})
			require.NoError(t, err)
		},
	}
	svc2 := NewService(store, &fakeCatalog{menu: testServiceMenu()}, availability, testSlotMinutes, nopLogger{})

	_, err = svc2.ChooseTime(context.Background(), testUserID, view.ID, "14:00")
	assert.ErrorIs(t, err, ErrSelectionChanged, "stale availability view must be discarded")

	got, err := svc.Get(context.Background(), testUserID, view.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StateDateChosen, got.State)
	assert.Empty(t, got.StartTime)
}

func TestService_ToggleOptionClearsChosenTime(t *testing.T) {
	svc, _ := newTestService(&fakeAvailability{})

	view, err := svc.Create(context.Background(), testUserID, 7)
	require.NoError(t, err)
	_, err = svc.ChooseDate(context.Background(), testUserID, view.ID, testDate)
	require.NoError(t, err)
	_, err = svc.ChooseTime(context.Background(), testUserID, view.ID, "14:00")
	require.NoError(t, err)

	view, err = svc.ToggleOption(context.Background(), testUserID, view.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, domain.StateDateChosen, view.State)
	assert.Empty(t, view.StartTime)
	assert.Equal(t, 3, view.RequiredSlots)
}

func TestService_ToggleUnknownOption(t *testing.T) {
	svc, _ := newTestService(&fakeAvailability{})

	view, err := svc.Create(context.Background(), testUserID, 7)
	require.NoError(t, err)

	_, err = svc.ToggleOption(context.Background(), testUserID, view.ID, 99)
	assert.ErrorIs(t, err, ErrUnknownOption)
}

func TestService_Reset(t *testing.T) {
	svc, _ := newTestService(&fakeAvailability{})

	view, err := svc.Create(context.Background(), testUserID, 7)
	require.NoError(t, err)
	_, err = svc.ChooseDate(context.Background(), testUserID, view.ID, testDate)
	require.NoError(t, err)
	_, err = svc.ToggleOption(context.Background(), testUserID, view.ID, 1)
	require.NoError(t, err)

	view, err = svc.Reset(context.Background(), testUserID, view.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StateNoDate, view.State)
	assert.Empty(t, view.Date)
	assert.Empty(t, view.ChosenOptionIDs)
	assert.Equal(t, int64(7), view.Menu.ID)
}

func TestService_ChooseTimeUpstreamDown(t *testing.T) {
	svc, store := newTestService(&fakeAvailability{})

	view, err := svc.Create(context.Background(), testUserID, 7)
	require.NoError(t, err)
	_, err = svc.ChooseDate(context.Background(), testUserID, view.ID, testDate)
	require.NoError(t, err)

	availability := &fakeAvailability{err: getAvailability.ErrUnavailable}
	svc2 := NewService(store, &fakeCatalog{menu: testServiceMenu()}, availability, testSlotMinutes, nopLogger{})

	_, err = svc2.ChooseTime(context.Background(), testUserID, view.ID, "14:00")
	assert.ErrorIs(t, err, ErrUnavailable)
}
