package get_availability

import (
	"time"

	"github.com/hyeonbit/Salon-BookingGateway/internal/domain"
	"github.com/hyeonbit/Salon-BookingGateway/pkg/types"
)

// Request asks for the annotated slot list for one date, one menu and a set
// of toggled options (the options drive the required run-length).
type Request struct {
	Date      time.Time // date to compute slots for (time part ignored)
	MenuID    int64     // menu the booking is for
	OptionIDs []int64   // toggled option ids, may be empty
}

// Response is the full day's slot list with availability annotations plus the
// derived totals the computation was based on.
type Response struct {
	Date                 time.Time
	MenuID               int64
	TotalPrice           int64
	TotalDurationMinutes int
	RequiredSlots        int
	Slots                []Slot
}

// Slot mirrors domain.Slot for consumers of the usecase.
type Slot struct {
	Index     int
	Time      types.TimeString
	Reserved  bool
	Startable bool
}

// Key returns the (date, run-length) pair this availability view was computed
// for. Consumers applying the view to a selection must discard it when the
// selection's own key no longer matches (latest wins).
func (r *Response) Key() domain.AvailabilityKey {
	return domain.AvailabilityKey{
		Date:          r.Date.Format(domain.DateFormat),
		RequiredSlots: r.RequiredSlots,
	}
}

// StartableSlot looks up a slot by time and reports whether it can serve as
// the booking's start.
func (r *Response) StartableSlot(t types.TimeString) (Slot, bool) {
	for _, slot := range r.Slots {
		if slot.Time == t {
			return slot, slot.Startable
		}
	}
	return Slot{}, false
}

// HasAvailability reports whether any slot can start the booking. A response
// without availability is a normal empty-result state, not an error.
func (r *Response) HasAvailability() bool {
	for _, slot := range r.Slots {
		if slot.Startable {
			return true
		}
	}
	return false
}

func fromDomainSlots(slots []domain.Slot) []Slot {
	out := make([]Slot, len(slots))
	for i, s := range slots {
		out[i] = Slot{
			Index:     s.Index,
			Time:      s.Time,
			Reserved:  s.Reserved,
			Startable: s.Startable,
		}
	}
	return out
}
