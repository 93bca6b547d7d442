package types

import (
	"errors"
	"fmt"
	"time"
)

// timeLayout is the wire format for times of day ("HH:MM", 24h clock).
const timeLayout = "15:04"

var (
	// ErrInvalidTimeString is returned when a string is not a valid HH:MM time
	ErrInvalidTimeString = errors.New("invalid time string, expected HH:MM")

	// ErrTimeOutOfDay is returned when an arithmetic result leaves the 24h day
	ErrTimeOutOfDay = errors.New("time is outside of a single day")
)

// TimeString is a time of day within a single calendar day, formatted "HH:MM".
// It carries no date and no timezone; the business operates on one local calendar.
type TimeString string

// NewTimeString creates a TimeString from the wall-clock part of t.
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(timeLayout))
}

// NewTimeStringFromString validates and normalizes an HH:MM string.
func NewTimeStringFromString(s string) (TimeString, error) {
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}
	return TimeString(t.Format(timeLayout)), nil
}

// NewTimeStringFromMinutes creates a TimeString from minutes since midnight.
func NewTimeStringFromMinutes(minutes int) (TimeString, error) {
	if minutes < 0 || minutes >= 24*60 {
		return "", fmt.Errorf("%w: %d minutes", ErrTimeOutOfDay, minutes)
	}
	return TimeString(fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)), nil
}

// String returns the HH:MM representation.
func (t TimeString) String() string {
	return string(t)
}

// Minutes returns minutes since midnight. The receiver must be well-formed;
// values built through the constructors always are.
func (t TimeString) Minutes() (int, error) {
	parsed, err := time.Parse(timeLayout, string(t))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	return parsed.Hour()*60 + parsed.Minute(), nil
}

// AddMinutes returns the time shifted forward by m minutes.
// Crossing midnight is an error: slots never span days.
func (t TimeString) AddMinutes(m int) (TimeString, error) {
	minutes, err := t.Minutes()
	if err != nil {
		return "", err
	}
	total := minutes + m
	if total < 0 || total > 24*60 {
		return "", fmt.Errorf("%w: %s + %d minutes", ErrTimeOutOfDay, t, m)
	}
	if total == 24*60 {
		// A range may end exactly at midnight ("24:00" is not representable,
		// the day closes before it in practice).
		return "", fmt.Errorf("%w: %s + %d minutes", ErrTimeOutOfDay, t, m)
	}
	return NewTimeStringFromMinutes(total)
}

// IsBefore reports whether t is strictly earlier than other.
func (t TimeString) IsBefore(other TimeString) bool {
	return string(t) < string(other)
}

// IsAfter reports whether t is strictly later than other.
func (t TimeString) IsAfter(other TimeString) bool {
	return string(t) > string(other)
}

// Validate reports whether the value is a well-formed HH:MM string.
func (t TimeString) Validate() error {
	_, err := NewTimeStringFromString(string(t))
	return err
}
