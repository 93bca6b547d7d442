package submit_reservation

import (
	"github.com/google/uuid"

	"github.com/hyeonbit/Salon-BookingGateway/internal/domain"
)

// Request submits the user's completed selection.
type Request struct {
	UserID      int64     // authenticated owner of the selection
	Token       string    // access token forwarded to the salon API
	SelectionID uuid.UUID // selection in TimeChosen state
}

// Response carries the reservation record the salon API created. The record's
// identity and timestamps are server-owned; the gateway never computes them.
type Response struct {
	Reservation domain.Reservation
}
