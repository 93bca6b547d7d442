package salonapi

import (
	"encoding/json"
	"time"

	"github.com/hyeonbit/Salon-BookingGateway/internal/domain"
	"github.com/hyeonbit/Salon-BookingGateway/pkg/types"
)

// envelope is the salon API's common response wrapper.
type envelope struct {
	IsSuccess bool            `json:"isSuccess"`
	Data      json.RawMessage `json:"data,omitempty"`
	Error     *wireError      `json:"error,omitempty"`
}

// wireError is the error payload inside the envelope.
type wireError struct {
	ErrorCode    string `json:"errorCode"`
	ErrorMessage string `json:"errorMessage"`
}

// Error codes the gateway interprets specially.
const (
	codeReservationConflict = "RESERVATION_CONFLICT"
)

type wireCategory struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func (c wireCategory) toDomain() domain.Category {
	return domain.Category{ID: c.ID, Name: c.Name}
}

type wireMenuOption struct {
	ID                int64  `json:"id"`
	Name              string `json:"name"`
	Description       string `json:"description,omitempty"`
	Price             int64  `json:"price"`
	AdditionalMinutes int    `json:"additionalMinutes"`
}

type wireMenu struct {
	ID              int64            `json:"id"`
	CategoryIDs     []int64          `json:"categoryIds"`
	Name            string           `json:"name"`
	Description     string           `json:"description,omitempty"`
	ImageURL        string           `json:"imageUrl,omitempty"`
	BasePrice       int64            `json:"basePrice"`
	PriceNote       string           `json:"priceNote,omitempty"`
	DurationMinutes int              `json:"durationMinutes"`
	Options         []wireMenuOption `json:"options,omitempty"`
}

func (m wireMenu) toDomain() domain.Menu {
	options := make([]domain.MenuOption, len(m.Options))
	for i, opt := range m.Options {
		options[i] = domain.MenuOption{
			ID:                opt.ID,
			Name:              opt.Name,
			Description:       opt.Description,
			Price:             opt.Price,
			AdditionalMinutes: opt.AdditionalMinutes,
		}
	}
	return domain.Menu{
		ID:              m.ID,
		CategoryIDs:     m.CategoryIDs,
		Name:            m.Name,
		Description:     m.Description,
		ImageURL:        m.ImageURL,
		BasePrice:       m.BasePrice,
		PriceNote:       m.PriceNote,
		DurationMinutes: m.DurationMinutes,
		Options:         options,
	}
}

// wireReservedTimes is the raw reserved-time set for one date. The gateway
// computes startability itself from this; the salon API does not precompute
// flags (see DESIGN.md for the contract decision).
type wireReservedTimes struct {
	Date  string   `json:"date"`
	Times []string `json:"times"`
}

type wireUser struct {
	ID       int64  `json:"id"`
	Email    string `json:"email"`
	Username string `json:"username"`
	Age      int    `json:"age"`
	Phone    string `json:"phone"`
	Role     string `json:"role"`
}

func (u wireUser) toDomain() domain.User {
	return domain.User{
		ID:       u.ID,
		Email:    u.Email,
		Username: u.Username,
		Age:      u.Age,
		Phone:    u.Phone,
		Role:     domain.UserRole(u.Role),
	}
}

type wireReservation struct {
	ID              int64   `json:"id"`
	UserID          int64   `json:"userId"`
	MenuID          int64   `json:"menuId"`
	OptionIDs       []int64 `json:"optionIds,omitempty"`
	Date            string  `json:"reservationDate"`
	StartTime       string  `json:"startTime"`
	EndTime         string  `json:"endTime"`
	DurationMinutes int     `json:"durationMinutes"`
	Status          string  `json:"status"`
	MenuName        string  `json:"menuName"`
	TotalPrice      int64   `json:"totalPrice"`
	CreatedAt       string  `json:"createdAt"`
}

func (r wireReservation) toDomain() (domain.Reservation, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return domain.Reservation{}, err
	}
	start, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return domain.Reservation{}, err
	}
	end, err := types.NewTimeStringFromString(r.EndTime)
	if err != nil {
		return domain.Reservation{}, err
	}
	createdAt, err := time.Parse(time.RFC3339, r.CreatedAt)
	if err != nil {
		return domain.Reservation{}, err
	}
	return domain.Reservation{
		ID:              r.ID,
		UserID:          r.UserID,
		MenuID:          r.MenuID,
		OptionIDs:       r.OptionIDs,
		Date:            date,
		StartTime:       start,
		EndTime:         end,
		DurationMinutes: r.DurationMinutes,
		Status:          domain.ReservationStatus(r.Status),
		MenuName:        r.MenuName,
		TotalPrice:      r.TotalPrice,
		CreatedAt:       createdAt,
	}, nil
}

// SignUpRequest is the payload for the sign-up pass-through.
type SignUpRequest struct {
	Username string `json:"username"`
	Age      int    `json:"age"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	AccessToken string `json:"accessToken"`
}

// CreateReservationRequest is the payload for reservation submission.
type CreateReservationRequest struct {
	ReservationDate string  `json:"reservationDate"`
	StartTime       string  `json:"startTime"`
	MenuID          int64   `json:"menuId"`
	OptionIDs       []int64 `json:"optionIds"`
}
