package sign_up

import (
	"errors"
	"strings"

	"github.com/hyeonbit/Salon-BookingGateway/internal/integrations/salonapi"
)

// Request is the sign-up payload.
type Request struct {
	Username string `json:"username"`
	Age      int    `json:"age"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

// Validate checks the required fields before the payload goes upstream.
func (r *Request) Validate() error {
	if strings.TrimSpace(r.Username) == "" {
		return errors.New("username is required")
	}
	if strings.TrimSpace(r.Email) == "" {
		return errors.New("email is required")
	}
	if r.Password == "" {
		return errors.New("password is required")
	}
	if r.Age < 0 {
		return errors.New("age must not be negative")
	}
	return nil
}

// ToServiceRequest converts the HTTP payload to the upstream request.
func (r *Request) ToServiceRequest() salonapi.SignUpRequest {
	return salonapi.SignUpRequest{
		Username: r.Username,
		Age:      r.Age,
		Email:    r.Email,
		Phone:    r.Phone,
		Password: r.Password,
	}
}
