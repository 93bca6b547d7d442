package get_availability

import (
	"strconv"
	"strings"
	"time"

	"github.com/hyeonbit/Salon-BookingGateway/internal/domain"
	getAvailability "github.com/hyeonbit/Salon-BookingGateway/internal/usecase/get_availability"
)

// Response is the HTTP shape of one day's availability.
type Response struct {
	Date                 string         `json:"date"`
	MenuID               int64          `json:"menuId"`
	TotalPrice           int64          `json:"totalPrice"`
	TotalDurationMinutes int            `json:"totalDurationMinutes"`
	RequiredSlots        int            `json:"requiredSlots"`
	Slots                []SlotResponse `json:"slots"`
}

// SlotResponse is the HTTP shape of one slot.
type SlotResponse struct {
	Index     int    `json:"index"`
	Time      string `json:"time"`
	Reserved  bool   `json:"reserved"`
	Startable bool   `json:"startable"`
}

// ParseDate parses the date query parameter.
func ParseDate(dateStr string) (time.Time, error) {
	return time.Parse(domain.DateFormat, dateStr)
}

// ParseOptionIDs parses the comma-separated optionIds query parameter.
// An empty string yields no options.
func ParseOptionIDs(optionIDsStr string) ([]int64, error) {
	if optionIDsStr == "" {
		return nil, nil
	}
	var optionIDs []int64
	for _, part := range strings.Split(optionIDsStr, ",") {
		id, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
		if err != nil {
			return nil, err
		}
		optionIDs = append(optionIDs, id)
	}
	return optionIDs, nil
}

// FromUseCaseResponse converts the usecase result into the HTTP response.
func FromUseCaseResponse(result *getAvailability.Response) *Response {
	slots := make([]SlotResponse, len(result.Slots))
	for i, s := range result.Slots {
		slots[i] = SlotResponse{
			Index:     s.Index,
			Time:      s.Time.String(),
			Reserved:  s.Reserved,
			Startable: s.Startable,
		}
	}
	return &Response{
		Date:                 result.Date.Format(domain.DateFormat),
		MenuID:               result.MenuID,
		TotalPrice:           result.TotalPrice,
		TotalDurationMinutes: result.TotalDurationMinutes,
		RequiredSlots:        result.RequiredSlots,
		Slots:                slots,
	}
}
