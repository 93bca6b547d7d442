package salonapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hyeonbit/Salon-BookingGateway/internal/domain"
	"github.com/hyeonbit/Salon-BookingGateway/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, 2*time.Second, nil, nopLogger{})
}

func writeSuccess(t *testing.T, w http.ResponseWriter, data interface{}) {
	t.Helper()
	raw, err := json.Marshal(data)
	require.NoError(t, err)
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"isSuccess": true,
		"data":      json.RawMessage(raw),
	})
}

func writeFailure(t *testing.T, w http.ResponseWriter, status int, code, message string) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"isSuccess": false,
		"error":     map[string]string{"errorCode": code, "errorMessage": message},
	})
}

func TestGetMenu(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/v1/menus/7", r.URL.Path)
		writeSuccess(t, w, map[string]interface{}{
			"id":              7,
			"categoryIds":     []int64{1},
			"name":            "Cut & Style",
			"basePrice":       30000,
			"durationMinutes": 60,
			"options": []map[string]interface{}{
				{"id": 1, "name": "Shampoo", "price": 5000, "additionalMinutes": 15},
			},
		})
	})

	menu, err := client.GetMenu(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, int64(7), menu.ID)
	assert.Equal(t, "Cut & Style", menu.Name)
	require.Len(t, menu.Options, 1)
	assert.Equal(t, 15, menu.Options[0].AdditionalMinutes)
}

func TestGetMenu_NotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeFailure(t, w, http.StatusNotFound, "MENU_NOT_FOUND", "menu not found")
	})

	_, err := client.GetMenu(context.Background(), 404)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetReservedTimes(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/reservations/times", r.URL.Path)
		assert.Equal(t, "2026-09-01", r.URL.Query().Get("date"))
		writeSuccess(t, w, map[string]interface{}{
			"date":  "2026-09-01",
			"times": []string{"10:00", "14:30", "not-a-time"},
		})
	})

	times, err := client.GetReservedTimes(context.Background(), time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	// Malformed entries are skipped, not fatal
	assert.Equal(t, []types.TimeString{"10:00", "14:30"}, times)
}

func TestCreateReservation(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/reservations", r.URL.Path)
		assert.Equal(t, "Bearer token-123", r.Header.Get("Authorization"))

		var req CreateReservationRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "2026-09-01", req.ReservationDate)
		assert.Equal(t, "14:00", req.StartTime)

		writeSuccess(t, w, map[string]interface{}{
			"id":              100,
			"userId":          42,
			"menuId":          7,
			"reservationDate": "2026-09-01",
			"startTime":       "14:00",
			"endTime":         "15:15",
			"durationMinutes": 75,
			"status":          "CONFIRMED",
			"menuName":        "Cut & Style",
			"totalPrice":      35000,
			"createdAt":       "2026-08-29T10:00:00Z",
		})
	})

	res, err := client.CreateReservation(context.Background(), "token-123", CreateReservationRequest{
		ReservationDate: "2026-09-01",
		StartTime:       "14:00",
		MenuID:          7,
		OptionIDs:       []int64{1},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(100), res.ID)
	assert.Equal(t, domain.StatusConfirmed, res.Status)
	assert.Equal(t, types.TimeString("15:15"), res.EndTime)
}

func TestCreateReservation_Conflict(t *testing.T) {
	t.Run("by error code", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			writeFailure(t, w, http.StatusBadRequest, "RESERVATION_CONFLICT", "slot already taken")
		})
		_, err := client.CreateReservation(context.Background(), "t", CreateReservationRequest{})
		assert.ErrorIs(t, err, ErrConflict)
	})

	t.Run("by status 409", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			writeFailure(t, w, http.StatusConflict, "", "slot already taken")
		})
		_, err := client.CreateReservation(context.Background(), "t", CreateReservationRequest{})
		assert.ErrorIs(t, err, ErrConflict)
	})
}

func TestLogin(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/auth/login", r.URL.Path)
		writeSuccess(t, w, map[string]string{"accessToken": "jwt-token"})
	})

	token, err := client.Login(context.Background(), "user@example.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, "jwt-token", token)
}

func TestLogin_Unauthorized(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeFailure(t, w, http.StatusUnauthorized, "INVALID_CREDENTIALS", "wrong password")
	})

	_, err := client.Login(context.Background(), "user@example.com", "wrong")
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestListReservations_QueryFilters(t *testing.T) {
	var gotQuery string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		writeSuccess(t, w, []interface{}{})
	})

	date := "2026-09-01"
	status := domain.StatusConfirmed
	list, err := client.ListReservations(context.Background(), "admin-token", &date, &status)
	require.NoError(t, err)
	assert.Empty(t, list)
	assert.Contains(t, gotQuery, "date=2026-09-01")
	assert.Contains(t, gotQuery, "status=CONFIRMED")

	_, err = client.ListReservations(context.Background(), "admin-token", nil, nil)
	require.NoError(t, err)
	assert.Empty(t, gotQuery)
}

func TestDo_ServerErrorsMapToUnavailable(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := client.GetCategories(context.Background())
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestDo_MalformedEnvelope(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not json"))
	})

	_, err := client.GetCategories(context.Background())
	assert.ErrorIs(t, err, ErrInvalidResponse)
}

func TestDo_ConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()
	client := NewClient(srv.URL, time.Second, nil, nopLogger{})

	_, err := client.GetCategories(context.Background())
	assert.ErrorIs(t, err, ErrUnavailable)
}
