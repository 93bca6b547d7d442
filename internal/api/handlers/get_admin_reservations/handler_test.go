package get_admin_reservations

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hyeonbit/Salon-BookingGateway/internal/api/middleware"
	"github.com/hyeonbit/Salon-BookingGateway/internal/domain"
	"github.com/hyeonbit/Salon-BookingGateway/pkg/authtoken"
)

type fakeReservationsService struct {
	list   []domain.Reservation
	err    error
	calls  int
	date   *string
	status *domain.ReservationStatus
}

func (f *fakeReservationsService) AdminList(ctx context.Context, token string, date *string, status *domain.ReservationStatus) ([]domain.Reservation, error) {
	f.calls++
	f.date = date
	f.status = status
	if f.err != nil {
		return nil, f.err
	}
	return f.list, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// serve runs the handler behind the auth middleware so the raw token lands in
// the request context the same way it does in production.
func serve(t *testing.T, svc *fakeReservationsService, target string) *httptest.ResponseRecorder {
	t.Helper()

	tokens := authtoken.NewService("test-secret", time.Hour)
	token, err := tokens.GenerateToken(1, authtoken.RoleAdmin)
	require.NoError(t, err)

	h := NewHandler(svc, nopLogger{})
	chain := middleware.Auth(tokens, nopLogger{})(http.HandlerFunc(h.Handle))

	req := httptest.NewRequest(http.MethodGet, target, nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	chain.ServeHTTP(rec, req)
	return rec
}

func TestHandle_NoFilters(t *testing.T) {
	svc := &fakeReservationsService{}
	rec := serve(t, svc, "/api/v1/admin/reservations")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, svc.calls)
	assert.Nil(t, svc.date)
	assert.Nil(t, svc.status)
}

func TestHandle_DateAndStatusFilters(t *testing.T) {
	svc := &fakeReservationsService{}
	rec := serve(t, svc, "/api/v1/admin/reservations?date=2026-09-01&status=COMPLETED")

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, svc.date)
	assert.Equal(t, "2026-09-01", *svc.date)
	require.NotNil(t, svc.status)
	assert.Equal(t, domain.StatusCompleted, *svc.status)
}

func TestHandle_StatusValidation(t *testing.T) {
	tests := []struct {
		name   string
		status string
		want   domain.ReservationStatus
	}{
		{name: "confirmed", status: "CONFIRMED", want: domain.StatusConfirmed},
		{name: "cancelled", status: "CANCELLED", want: domain.StatusCancelled},
		{name: "completed", status: "COMPLETED", want: domain.StatusCompleted},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeReservationsService{}
			rec := serve(t, svc, "/api/v1/admin/reservations?status="+tt.status)

			assert.Equal(t, http.StatusOK, rec.Code)
			require.NotNil(t, svc.status)
			assert.Equal(t, tt.want, *svc.status)
		})
	}
}

func TestHandle_InvalidStatus(t *testing.T) {
	svc := &fakeReservationsService{}
	rec := serve(t, svc, "/api/v1/admin/reservations?status=pending")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Zero(t, svc.calls)

	var body struct {
		IsSuccess bool `json:"isSuccess"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.False(t, body.IsSuccess)
}

func TestHandle_InvalidDate(t *testing.T) {
	svc := &fakeReservationsService{}
	rec := serve(t, svc, "/api/v1/admin/reservations?date=01-09-2026")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Zero(t, svc.calls)
}
