package handlers

import (
	"time"

	"github.com/hyeonbit/Salon-BookingGateway/internal/domain"
	"github.com/hyeonbit/Salon-BookingGateway/internal/service/selections"
)

// CategoryPayload is the HTTP shape of a menu category.
type CategoryPayload struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// MenuOptionPayload is the HTTP shape of a menu option.
type MenuOptionPayload struct {
	ID                int64  `json:"id"`
	Name              string `json:"name"`
	Description       string `json:"description,omitempty"`
	Price             int64  `json:"price"`
	AdditionalMinutes int    `json:"additionalMinutes"`
}

// MenuPayload is the HTTP shape of a menu with its options.
type MenuPayload struct {
	ID              int64               `json:"id"`
	CategoryIDs     []int64             `json:"categoryIds"`
	Name            string              `json:"name"`
	Description     string              `json:"description,omitempty"`
	ImageURL        string              `json:"imageUrl,omitempty"`
	BasePrice       int64               `json:"basePrice"`
	PriceNote       string              `json:"priceNote,omitempty"`
	DurationMinutes int                 `json:"durationMinutes"`
	Options         []MenuOptionPayload `json:"options"`
}

// SelectionPayload is the HTTP shape of an in-progress selection, including
// every derived value so clients never compute price or duration themselves.
type SelectionPayload struct {
	ID                   string      `json:"id"`
	State                string      `json:"state"`
	Menu                 MenuPayload `json:"menu"`
	ChosenOptionIDs      []int64     `json:"chosenOptionIds"`
	Date                 string      `json:"date,omitempty"`
	StartTime            string      `json:"startTime,omitempty"`
	EndTime              string      `json:"endTime,omitempty"`
	TotalPrice           int64       `json:"totalPrice"`
	TotalDurationMinutes int         `json:"totalDurationMinutes"`
	RequiredSlots        int         `json:"requiredSlots"`
}

// ReservationPayload is the HTTP shape of a reservation record.
type ReservationPayload struct {
	ID              int64   `json:"id"`
	UserID          int64   `json:"userId"`
	MenuID          int64   `json:"menuId"`
	OptionIDs       []int64 `json:"optionIds"`
	Date            string  `json:"reservationDate"`
	StartTime       string  `json:"startTime"`
	EndTime         string  `json:"endTime"`
	DurationMinutes int     `json:"durationMinutes"`
	Status          string  `json:"status"`
	MenuName        string  `json:"menuName"`
	TotalPrice      int64   `json:"totalPrice"`
	CreatedAt       string  `json:"createdAt"`
}

// UserPayload is the HTTP shape of an account profile.
type UserPayload struct {
	ID       int64  `json:"id"`
	Email    string `json:"email"`
	Username string `json:"username"`
	Age      int    `json:"age"`
	Phone    string `json:"phone"`
	Role     string `json:"role"`
}

// ToCategoryPayload converts a domain category.
func ToCategoryPayload(c domain.Category) CategoryPayload {
	return CategoryPayload{ID: c.ID, Name: c.Name}
}

// ToMenuPayload converts a domain menu.
func ToMenuPayload(m domain.Menu) MenuPayload {
	options := make([]MenuOptionPayload, len(m.Options))
	for i, opt := range m.Options {
		options[i] = MenuOptionPayload{
			ID:                opt.ID,
			Name:              opt.Name,
			Description:       opt.Description,
			Price:             opt.Price,
			AdditionalMinutes: opt.AdditionalMinutes,
		}
	}
	return MenuPayload{
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

// ToSelectionPayload converts a selection view.
func ToSelectionPayload(view *selections.SelectionView) SelectionPayload {
	return SelectionPayload{
		ID:                   view.ID.String(),
		State:                string(view.State),
		Menu:                 ToMenuPayload(view.Menu),
		ChosenOptionIDs:      view.ChosenOptionIDs,
		Date:                 view.Date,
		StartTime:            view.StartTime,
		EndTime:              view.EndTime,
		TotalPrice:           view.TotalPrice,
		TotalDurationMinutes: view.TotalDurationMinutes,
		RequiredSlots:        view.RequiredSlots,
	}
}

// ToReservationPayload converts a domain reservation.
func ToReservationPayload(r domain.Reservation) ReservationPayload {
	return ReservationPayload{
		ID:              r.ID,
		UserID:          r.UserID,
		MenuID:          r.MenuID,
		OptionIDs:       r.OptionIDs,
		Date:            r.Date.Format(domain.DateFormat),
		StartTime:       r.StartTime.String(),
		EndTime:         r.EndTime.String(),
		DurationMinutes: r.DurationMinutes,
		Status:          string(r.Status),
		MenuName:        r.MenuName,
		TotalPrice:      r.TotalPrice,
		CreatedAt:       r.CreatedAt.Format(time.RFC3339),
	}
}

// ToReservationPayloads converts a reservation list, never returning nil so
// the JSON encodes as an empty array.
func ToReservationPayloads(list []domain.Reservation) []ReservationPayload {
	out := make([]ReservationPayload, len(list))
	for i, r := range list {
		out[i] = ToReservationPayload(r)
	}
	return out
}

// ToUserPayload converts a domain user.
func ToUserPayload(u domain.User) UserPayload {
	return UserPayload{
		ID:       u.ID,
		Email:    u.Email,
		Username: u.Username,
		Age:      u.Age,
		Phone:    u.Phone,
		Role:     string(u.Role),
	}
}
