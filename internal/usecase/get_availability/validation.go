package get_availability

import (
	"fmt"
	"time"

	"github.com/hyeonbit/Salon-BookingGateway/internal/domain"
)

// validateRequest checks the request shape.
func validateRequest(req *Request) error {
	if req.MenuID <= 0 {
		return fmt.Errorf("%w: menuID must be positive", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	return nil
}

// validateDate rejects dates in the past. Today is bookable.
func validateDate(requestDate, now time.Time) error {
	dateOnly := time.Date(requestDate.Year(), requestDate.Month(), requestDate.Day(), 0, 0, 0, 0, requestDate.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if dateOnly.Before(nowOnly) {
		return ErrInvalidDate
	}
	return nil
}

// validateOptions checks every toggled option belongs to the menu.
func validateOptions(menu *domain.Menu, optionIDs []int64) error {
	for _, id := range optionIDs {
		if !menu.HasOption(id) {
			return fmt.Errorf("%w: option id=%d", ErrOptionNotFound, id)
		}
	}
	return nil
}
