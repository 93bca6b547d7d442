package get_availability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hyeonbit/Salon-BookingGateway/internal/domain"
	"github.com/hyeonbit/Salon-BookingGateway/internal/integrations/salonapi"
	"github.com/hyeonbit/Salon-BookingGateway/pkg/types"
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

type fakeReservations struct {
	times []types.TimeString
	err   error
}

func (f *fakeReservations) GetReservedTimes(ctx context.Context, date time.Time) ([]types.TimeString, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.times, nil
}

type fixedTime struct{ now time.Time }

func (f *fixedTime) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testMenu() *domain.Menu {
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

func newTestUseCase(catalog *fakeCatalog, reservations *fakeReservations, now time.Time) *UseCase {
	uc := NewUseCase(catalog, reservations, domain.DefaultBusinessHours(), nopLogger{})
	uc.timeProvider = &fixedTime{now: now}
	return uc
}

var testNow = time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

func TestExecute_NoOptions(t *testing.T) {
	catalog := &fakeCatalog{menu: testMenu()}
	reservations := &fakeReservations{}
	uc := newTestUseCase(catalog, reservations, testNow)

	resp, err := uc.Execute(context.Background(), &Request{
		Date:   testNow.AddDate(0, 0, 1),
		MenuID: 7,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(30000), resp.TotalPrice)
	assert.Equal(t, 60, resp.TotalDurationMinutes)
	assert.Equal(t, 2, resp.RequiredSlots)
	require.Len(t, resp.Slots, 20)
	assert.True(t, resp.HasAvailability())

	// Empty day with a 2-slot run: every slot except the last is startable.
	for _, s := range resp.Slots[:19] {
		assert.True(t, s.Startable, "slot %s", s.Time)
	}
	assert.False(t, resp.Slots[19].Startable)
}

func TestExecute_OptionsExtendRunLength(t *testing.T) {
	catalog := &fakeCatalog{menu: testMenu()}
	uc := newTestUseCase(catalog, &fakeReservations{}, testNow)

	resp, err := uc.Execute(context.Background(), &Request{
		Date:      testNow.AddDate(0, 0, 1),
		MenuID:    7,
		OptionIDs: []int64{1, 2},
	})
	require.NoError(t, err)

	assert.Equal(t, int64(55000), resp.TotalPrice)
	assert.Equal(t, 105, resp.TotalDurationMinutes)
	assert.Equal(t, 4, resp.RequiredSlots)

	// Last start for 4 slots is 18:00.
	slot, startable := resp.StartableSlot("18:00")
	assert.True(t, startable)
	assert.Equal(t, 16, slot.Index)
	_, startable = resp.StartableSlot("18:30")
	assert.False(t, startable)
}

func TestExecute_ReservedTimesBlockWindows(t *testing.T) {
	catalog := &fakeCatalog{menu: testMenu()}
	reservations := &fakeReservations{times: []types.TimeString{"13:00"}}
	uc := newTestUseCase(catalog, reservations, testNow)

	resp, err := uc.Execute(context.Background(), &Request{
		Date:   testNow.AddDate(0, 0, 1),
		MenuID: 7,
	})
	require.NoError(t, err)
	require.Equal(t, 2, resp.RequiredSlots)

	_, startable := resp.StartableSlot("12:30")
	assert.False(t, startable, "window crosses the reservation")
	_, startable = resp.StartableSlot("13:00")
	assert.False(t, startable, "reserved slot is never startable")
	_, startable = resp.StartableSlot("13:30")
	assert.True(t, startable)
}

func TestExecute_ValidationFailures(t *testing.T) {
	catalog := &fakeCatalog{menu: testMenu()}
	uc := newTestUseCase(catalog, &fakeReservations{}, testNow)

	tests := []struct {
		name    string
		req     *Request
		wantErr error
	}{
		{
			name:    "zero menu id",
			req:     &Request{Date: testNow, MenuID: 0},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "zero date",
			req:     &Request{MenuID: 7},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "past date",
			req:     &Request{Date: testNow.AddDate(0, 0, -1), MenuID: 7},
			wantErr: ErrInvalidDate,
		},
		{
			name:    "unknown option",
			req:     &Request{Date: testNow.AddDate(0, 0, 1), MenuID: 7, OptionIDs: []int64{99}},
			wantErr: ErrOptionNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestExecute_TodayIsBookable(t *testing.T) {
	catalog := &fakeCatalog{menu: testMenu()}
	uc := newTestUseCase(catalog, &fakeReservations{}, testNow)

	_, err := uc.Execute(context.Background(), &Request{Date: testNow, MenuID: 7})
	assert.NoError(t, err)
}

func TestExecute_UpstreamErrors(t *testing.T) {
	t.Run("menu not found", func(t *testing.T) {
		catalog := &fakeCatalog{err: salonapi.ErrNotFound}
		uc := newTestUseCase(catalog, &fakeReservations{}, testNow)

		_, err := uc.Execute(context.Background(), &Request{Date: testNow.AddDate(0, 0, 1), MenuID: 404})
		assert.ErrorIs(t, err, ErrMenuNotFound)
	})

	t.Run("salon api down", func(t *testing.T) {
		catalog := &fakeCatalog{menu: testMenu()}
		reservations := &fakeReservations{err: salonapi.ErrUnavailable}
		uc := newTestUseCase(catalog, reservations, testNow)

		_, err := uc.Execute(context.Background(), &Request{Date: testNow.AddDate(0, 0, 1), MenuID: 7})
		assert.ErrorIs(t, err, ErrUnavailable)
	})
}

func TestResponse_Key(t *testing.T) {
	catalog := &fakeCatalog{menu: testMenu()}
	uc := newTestUseCase(catalog, &fakeReservations{}, testNow)

	date := time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC)
	resp, err := uc.Execute(context.Background(), &Request{Date: date, MenuID: 7, OptionIDs: []int64{1}})
	require.NoError(t, err)

	assert.Equal(t, domain.AvailabilityKey{Date: "2026-08-15", RequiredSlots: 3}, resp.Key())
}

func TestRequestKey_OrderInsensitive(t *testing.T) {
	date := time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC)
	a := requestKey(&Request{Date: date, MenuID: 7, OptionIDs: []int64{2, 1}})
	b := requestKey(&Request{Date: date, MenuID: 7, OptionIDs: []int64{1, 2}})
	assert.Equal(t, a, b)

	c := requestKey(&Request{Date: date, MenuID: 7, OptionIDs: []int64{1}})
	assert.NotEqual(t, a, c)
}
