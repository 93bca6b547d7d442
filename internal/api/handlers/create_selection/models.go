package create_selection

import "errors"

// Request starts a booking flow for one menu.
type Request struct {
	MenuID int64 `json:"menuId"`
}

// Validate checks the required fields.
func (r *Request) Validate() error {
	if r.MenuID <= 0 {
		return errors.New("menuId must be positive")
	}
	return nil
}
