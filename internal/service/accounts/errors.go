package accounts

import "errors"

var (
	// ErrInvalidCredentials is returned when login is rejected upstream
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrSignUpRejected is returned when the salon API rejected the sign-up
	// payload (duplicate email, malformed fields)
	ErrSignUpRejected = errors.New("sign-up rejected")

	// ErrUnauthorized is returned when the access token is rejected upstream
	ErrUnauthorized = errors.New("unauthorized")

	// ErrUnavailable is returned when the salon API cannot be reached
	ErrUnavailable = errors.New("accounts: salon API unavailable")

	// ErrInternal is returned for internal service errors
	ErrInternal = errors.New("accounts: internal error")
)
