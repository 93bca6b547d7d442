package domain

import (
	"fmt"

	"github.com/hyeonbit/Salon-BookingGateway/pkg/types"
)

// BusinessHours defines the fixed universe of bookable slot start times for
// any single day.
type BusinessHours struct {
	OpeningHour int // first bookable hour, 0-23
	ClosingHour int // hour the salon closes; at most 23 so end times stay "HH:MM" within the day
	SlotMinutes int // slot granularity, must divide 60 evenly
}

// DefaultBusinessHours returns the salon's standard hours (10:00-20:00, 30min).
func DefaultBusinessHours() BusinessHours {
	return BusinessHours{
		OpeningHour: DefaultOpeningHour,
		ClosingHour: DefaultClosingHour,
		SlotMinutes: DefaultSlotMinutes,
	}
}

// Validate checks the BusinessHours invariants.
func (h BusinessHours) Validate() error {
	if h.OpeningHour < 0 || h.ClosingHour > 23 || h.OpeningHour >= h.ClosingHour {
		return fmt.Errorf("business hours are invalid: open=%d close=%d", h.OpeningHour, h.ClosingHour)
	}
	if h.SlotMinutes <= 0 || 60%h.SlotMinutes != 0 {
		return fmt.Errorf("slot minutes must divide 60 evenly, got %d", h.SlotMinutes)
	}
	return nil
}

// SlotCount returns N, the number of slots in one business day.
func (h BusinessHours) SlotCount() int {
	return (h.ClosingHour - h.OpeningHour) * 60 / h.SlotMinutes
}

// IndexToTime converts a slot index (0..N-1) to its start time.
// Indexes outside the day are a programming error and panic via the
// constructor; callers iterate 0..SlotCount()-1.
func (h BusinessHours) IndexToTime(index int) types.TimeString {
	t, err := types.NewTimeStringFromMinutes(h.OpeningHour*60 + index*h.SlotMinutes)
	if err != nil {
		panic(fmt.Sprintf("slot index %d is outside the day: %v", index, err))
	}
	return t
}

// TimeToIndex converts a slot start time back to its index. The second return
// is false when the time does not land on a slot boundary within hours.
func (h BusinessHours) TimeToIndex(t types.TimeString) (int, bool) {
	minutes, err := t.Minutes()
	if err != nil {
		return 0, false
	}
	offset := minutes - h.OpeningHour*60
	if offset < 0 || offset%h.SlotMinutes != 0 {
		return 0, false
	}
	index := offset / h.SlotMinutes
	if index >= h.SlotCount() {
		return 0, false
	}
	return index, true
}

// Slot is one bookable unit of time on a given day. Slots are recomputed
// fresh on every query and never stored.
type Slot struct {
	Index     int              // position in the day, 0..N-1
	Time      types.TimeString // start time, "HH:MM"
	Reserved  bool             // an existing reservation occupies this unit
	Startable bool             // a booking of the current run-length may begin here
}

// GenerateSlots produces the full day's slot list in ascending time order,
// with every slot unreserved and startable. Display order equals computation
// order; consumers must preserve it.
func GenerateSlots(hours BusinessHours) []Slot {
	n := hours.SlotCount()
	slots := make([]Slot, n)
	for i := 0; i < n; i++ {
		slots[i] = Slot{
			Index:     i,
			Time:      hours.IndexToTime(i),
			Reserved:  false,
			Startable: true,
		}
	}
	return slots
}

// MarkReserved returns a copy of slots with Reserved set for every slot whose
// time appears in reservedTimes. Reserved times that match no slot (buffer or
// closed entries reported by the server) are silently ignored; the server is
// the source of truth.
func MarkReserved(slots []Slot, reservedTimes []types.TimeString) []Slot {
	reserved := make(map[types.TimeString]struct{}, len(reservedTimes))
	for _, t := range reservedTimes {
		reserved[t] = struct{}{}
	}

	out := make([]Slot, len(slots))
	copy(out, slots)
	for i := range out {
		if _, ok := reserved[out[i].Time]; ok {
			out[i].Reserved = true
		}
	}
	return out
}

// ComputeStartability returns a copy of slots with Startable recomputed for a
// booking spanning requiredSlots consecutive slots: slot i is startable when
// the whole window [i, i+requiredSlots) fits before closing and contains no
// reserved slot. A reserved slot is never startable, since it sits in its own
// window. requiredSlots <= 0 marks every unreserved slot startable.
func ComputeStartability(slots []Slot, requiredSlots int) []Slot {
	out := make([]Slot, len(slots))
	copy(out, slots)

	n := len(out)
	for i := range out {
		if requiredSlots <= 0 {
			out[i].Startable = !out[i].Reserved
			continue
		}

		if i+requiredSlots > n {
			out[i].Startable = false
			continue
		}

		startable := true
		for j := i; j < i+requiredSlots; j++ {
			if out[j].Reserved {
				startable = false
				break
			}
		}
		out[i].Startable = startable
	}
	return out
}

// AvailableSlots is the single entry point consumers should use: it generates
// the day, marks reservations and computes start eligibility for the given
// run-length. Pure and deterministic: identical inputs yield identical output.
func AvailableSlots(hours BusinessHours, reservedTimes []types.TimeString, requiredSlots int) []Slot {
	slots := GenerateSlots(hours)
	slots = MarkReserved(slots, reservedTimes)
	return ComputeStartability(slots, requiredSlots)
}

// CalculateRequiredSlots converts a service duration to the number of
// consecutive slots it occupies, rounding up.
func CalculateRequiredSlots(durationMinutes, slotMinutes int) int {
	if durationMinutes <= 0 || slotMinutes <= 0 {
		return 0
	}
	return (durationMinutes + slotMinutes - 1) / slotMinutes
}

// CalculateEndTime returns start shifted by the total service duration.
func CalculateEndTime(start types.TimeString, durationMinutes int) (types.TimeString, error) {
	return start.AddMinutes(durationMinutes)
}
