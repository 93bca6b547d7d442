package domain

// Default business hours: the salon takes bookings from 10:00 until 20:00,
// in 30-minute slots. Overridable through configuration.
const (
	DefaultOpeningHour = 10
	DefaultClosingHour = 20
	DefaultSlotMinutes = 30
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
