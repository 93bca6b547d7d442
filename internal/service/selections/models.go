package selections

import (
	"github.com/google/uuid"

	"github.com/hyeonbit/Salon-BookingGateway/internal/domain"
)

// SelectionView is the read model of an in-progress selection: the stored
// choice plus every derived value, recomputed at read time.
type SelectionView struct {
	ID              uuid.UUID
	UserID          int64
	State           domain.SelectionState
	Menu            domain.Menu
	ChosenOptionIDs []int64
	Date            string // YYYY-MM-DD, empty until chosen
	StartTime       string // HH:MM, empty until chosen
	EndTime         string // HH:MM, empty until a start time is chosen

	TotalPrice           int64
	TotalDurationMinutes int
	RequiredSlots        int
}

func newSelectionView(sel *domain.Selection, slotMinutes int) *SelectionView {
	view := &SelectionView{
		ID:                   sel.ID,
		UserID:               sel.UserID,
		State:                sel.State,
		Menu:                 sel.Menu,
		ChosenOptionIDs:      append([]int64(nil), sel.ChosenOptionIDs...),
		TotalPrice:           sel.TotalPrice(),
		TotalDurationMinutes: sel.TotalDurationMinutes(),
		RequiredSlots:        sel.RequiredSlots(slotMinutes),
	}
	if sel.Date != nil {
		view.Date = sel.Date.Format(domain.DateFormat)
	}
	if sel.StartTime != nil {
		view.StartTime = sel.StartTime.String()
	}
	if end, ok := sel.EndTime(); ok {
		view.EndTime = end.String()
	}
	return view
}
