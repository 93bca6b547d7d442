package choose_date

import (
	"errors"
	"time"

	"github.com/hyeonbit/Salon-BookingGateway/internal/domain"
)

// Request carries the chosen date.
type Request struct {
	Date string `json:"date"` // YYYY-MM-DD
}

// ParseDate validates and parses the date field.
func (r *Request) ParseDate() (time.Time, error) {
	if r.Date == "" {
		return time.Time{}, errors.New("date is required")
	}
	return time.Parse(domain.DateFormat, r.Date)
}
