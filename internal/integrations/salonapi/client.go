package salonapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/hyeonbit/Salon-BookingGateway/internal/domain"
	"github.com/hyeonbit/Salon-BookingGateway/pkg/types"
)

// Logger is the logging interface the client depends on.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client talks to the remote salon REST API. All persistent state (catalog,
// accounts, reservation records) lives behind it; the gateway only consumes
// typed responses.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient creates a salon API client. transport may be nil for the default;
// main wires an instrumented transport when metrics are enabled.
func NewClient(baseURL string, timeout time.Duration, transport http.RoundTripper, log Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: transport,
		},
		log: log,
	}
}

// GetCategories fetches the menu categories.
func (c *Client) GetCategories(ctx context.Context) ([]domain.Category, error) {
	var wire []wireCategory
	if err := c.do(ctx, http.MethodGet, "/api/v1/categories", "", nil, &wire); err != nil {
		return nil, err
	}
	categories := make([]domain.Category, len(wire))
	for i, cat := range wire {
		categories[i] = cat.toDomain()
	}
	return categories, nil
}

// GetMenus fetches the menu catalog, optionally filtered by category.
func (c *Client) GetMenus(ctx context.Context, categoryID *int64) ([]domain.Menu, error) {
	path := "/api/v1/menus"
	if categoryID != nil {
		path += "?categoryId=" + strconv.FormatInt(*categoryID, 10)
	}

	var wire []wireMenu
	if err := c.do(ctx, http.MethodGet, path, "", nil, &wire); err != nil {
		return nil, err
	}
	menus := make([]domain.Menu, len(wire))
	for i, m := range wire {
		menus[i] = m.toDomain()
	}
	return menus, nil
}

// GetMenu fetches one menu with its options.
func (c *Client) GetMenu(ctx context.Context, menuID int64) (*domain.Menu, error) {
	var wire wireMenu
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/v1/menus/%d", menuID), "", nil, &wire); err != nil {
		return nil, err
	}
	menu := wire.toDomain()
	return &menu, nil
}

// GetReservedTimes fetches the raw set of reserved slot start times for a
// date. The gateway computes startability from this set itself.
func (c *Client) GetReservedTimes(ctx context.Context, date time.Time) ([]types.TimeString, error) {
	path := "/api/v1/reservations/times?date=" + url.QueryEscape(date.Format(domain.DateFormat))

	var wire wireReservedTimes
	if err := c.do(ctx, http.MethodGet, path, "", nil, &wire); err != nil {
		return nil, err
	}

	times := make([]types.TimeString, 0, len(wire.Times))
	for _, raw := range wire.Times {
		t, err := types.NewTimeStringFromString(raw)
		if err != nil {
			// The server is the source of truth and may report entries the
			// gateway cannot place; skip them rather than failing the fetch.
			c.log.Warn("GetReservedTimes: skipping malformed reserved time %q for %s", raw, wire.Date)
			continue
		}
		times = append(times, t)
	}
	return times, nil
}

// CreateReservation submits a reservation on behalf of the user. A slot race
// lost to another booking surfaces as ErrConflict.
func (c *Client) CreateReservation(ctx context.Context, token string, req CreateReservationRequest) (*domain.Reservation, error) {
	var wire wireReservation
	if err := c.do(ctx, http.MethodPost, "/api/v1/reservations", token, req, &wire); err != nil {
		return nil, err
	}
	reservation, err := wire.toDomain()
	if err != nil {
		return nil, fmt.Errorf("%w: failed to convert reservation: %v", ErrInvalidResponse, err)
	}
	return &reservation, nil
}

// SignUp registers a new account.
func (c *Client) SignUp(ctx context.Context, req SignUpRequest) (*domain.User, error) {
	var wire wireUser
	if err := c.do(ctx, http.MethodPost, "/api/v1/auth/sign-up", "", req, &wire); err != nil {
		return nil, err
	}
	user := wire.toDomain()
	return &user, nil
}

// Login exchanges credentials for an access token.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	var wire loginResponse
	if err := c.do(ctx, http.MethodPost, "/api/v1/auth/login", "", loginRequest{Email: email, Password: password}, &wire); err != nil {
		return "", err
	}
	if wire.AccessToken == "" {
		return "", fmt.Errorf("%w: login response carried no access token", ErrInvalidResponse)
	}
	return wire.AccessToken, nil
}

// GetMe fetches the account behind the token.
func (c *Client) GetMe(ctx context.Context, token string) (*domain.User, error) {
	var wire wireUser
	if err := c.do(ctx, http.MethodGet, "/api/v1/users/me", token, nil, &wire); err != nil {
		return nil, err
	}
	user := wire.toDomain()
	return &user, nil
}

// GetMyReservations fetches the reservation history of the token's user.
func (c *Client) GetMyReservations(ctx context.Context, token string) ([]domain.Reservation, error) {
	var wire []wireReservation
	if err := c.do(ctx, http.MethodGet, "/api/v1/users/me/reservations", token, nil, &wire); err != nil {
		return nil, err
	}
	return convertReservations(wire)
}

// CancelReservation performs the cancel transition on a reservation record.
func (c *Client) CancelReservation(ctx context.Context, token string, reservationID int64) (*domain.Reservation, error) {
	var wire wireReservation
	path := fmt.Sprintf("/api/v1/reservations/%d/cancel", reservationID)
	if err := c.do(ctx, http.MethodPatch, path, token, nil, &wire); err != nil {
		return nil, err
	}
	reservation, err := wire.toDomain()
	if err != nil {
		return nil, fmt.Errorf("%w: failed to convert reservation: %v", ErrInvalidResponse, err)
	}
	return &reservation, nil
}

// ListReservations fetches reservations across all users (admin view), with
// optional date and status filters.
func (c *Client) ListReservations(ctx context.Context, token string, date *string, status *domain.ReservationStatus) ([]domain.Reservation, error) {
	path := "/api/v1/admin/reservations"
	query := url.Values{}
	if date != nil {
		query.Set("date", *date)
	}
	if status != nil {
		query.Set("status", string(*status))
	}
	if len(query) > 0 {
		path += "?" + query.Encode()
	}

	var wire []wireReservation
	if err := c.do(ctx, http.MethodGet, path, token, nil, &wire); err != nil {
		return nil, err
	}
	return convertReservations(wire)
}

// CompleteReservation performs the complete transition on a reservation record.
func (c *Client) CompleteReservation(ctx context.Context, token string, reservationID int64) (*domain.Reservation, error) {
	var wire wireReservation
	path := fmt.Sprintf("/api/v1/admin/reservations/%d/complete", reservationID)
	if err := c.do(ctx, http.MethodPatch, path, token, nil, &wire); err != nil {
		return nil, err
	}
	reservation, err := wire.toDomain()
	if err != nil {
		return nil, fmt.Errorf("%w: failed to convert reservation: %v", ErrInvalidResponse, err)
	}
	return &reservation, nil
}

func convertReservations(wire []wireReservation) ([]domain.Reservation, error) {
	reservations := make([]domain.Reservation, len(wire))
	for i, r := range wire {
		converted, err := r.toDomain()
		if err != nil {
			return nil, fmt.Errorf("%w: failed to convert reservation id=%d: %v", ErrInvalidResponse, r.ID, err)
		}
		reservations[i] = converted
	}
	return reservations, nil
}

// do executes one request against the salon API, unwraps the response
// envelope and decodes the data payload into out (out may be nil).
func (c *Client) do(ctx context.Context, method, path, token string, body, out interface{}) error {
	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%w: failed to encode request body: %v", ErrInternal, err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s %s: %v", ErrUnavailable, method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusInternalServerError {
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: %s %s: status %d: %s", ErrUnavailable, method, path, resp.StatusCode, string(raw))
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("%w: failed to decode envelope: %v", ErrInvalidResponse, err)
	}

	if !env.IsSuccess || env.Error != nil || resp.StatusCode >= http.StatusBadRequest {
		return c.classify(resp.StatusCode, env.Error)
	}

	if out != nil {
		if len(env.Data) == 0 {
			return fmt.Errorf("%w: response carried no data payload", ErrInvalidResponse)
		}
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("%w: failed to decode data: %v", ErrInvalidResponse, err)
		}
	}
	return nil
}

// classify maps an upstream failure to the client's sentinel errors, keeping
// the upstream message so handlers can surface it to the user.
func (c *Client) classify(statusCode int, wireErr *wireError) error {
	code, message := "", ""
	if wireErr != nil {
		code, message = wireErr.ErrorCode, wireErr.ErrorMessage
	}

	switch {
	case code == codeReservationConflict || statusCode == http.StatusConflict:
		return fmt.Errorf("%w: %s", ErrConflict, message)
	case statusCode == http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, message)
	case statusCode == http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrForbidden, message)
	case statusCode == http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, message)
	case statusCode == http.StatusBadRequest || statusCode == http.StatusUnprocessableEntity:
		return fmt.Errorf("%w: %s: %s", ErrValidation, code, message)
	default:
		return fmt.Errorf("%w: status %d, code %s: %s", ErrInvalidResponse, statusCode, code, message)
	}
}
