package login

import (
	"errors"
	"strings"
)

// Request is the login payload.
type Request struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate checks the required fields.
func (r *Request) Validate() error {
	if strings.TrimSpace(r.Email) == "" {
		return errors.New("email is required")
	}
	if r.Password == "" {
		return errors.New("password is required")
	}
	return nil
}

// Response carries the access token issued by the salon API.
type Response struct {
	AccessToken string `json:"accessToken"`
}
