// Package accounts passes sign-up, login and profile reads through to the
// salon API. The gateway stores no account state; it only validates the
// tokens the salon API issues.
package accounts

import (
	"context"
	"errors"
	"fmt"

	"github.com/hyeonbit/Salon-BookingGateway/internal/domain"
	"github.com/hyeonbit/Salon-BookingGateway/internal/integrations/salonapi"
)

// Service proxies account operations.
type Service struct {
	client SalonAPIClient
	logger Logger
}

// NewService creates the accounts service.
func NewService(client SalonAPIClient, logger Logger) *Service {
	return &Service{client: client, logger: logger}
}

// SignUp registers a new account upstream.
func (s *Service) SignUp(ctx context.Context, req salonapi.SignUpRequest) (*domain.User, error) {
	s.logger.Info("SignUp: email=%s", req.Email)

	user, err := s.client.SignUp(ctx, req)
	if err != nil {
		if errors.Is(err, salonapi.ErrValidation) {
			s.logger.Warn("SignUp: rejected for email=%s: %v", req.Email, err)
			return nil, fmt.Errorf("%w: %v", ErrSignUpRejected, err)
		}
		s.logger.Error("SignUp: failed for email=%s: %v", req.Email, err)
		return nil, s.classify(err)
	}

	s.logger.Info("SignUp: created user id=%d", user.ID)
	return user, nil
}

// Login exchanges credentials for an access token issued by the salon API.
func (s *Service) Login(ctx context.Context, email, password string) (string, error) {
	s.logger.Info("Login: email=%s", email)

	token, err := s.client.Login(ctx, email, password)
	if err != nil {
		if errors.Is(err, salonapi.ErrUnauthorized) || errors.Is(err, salonapi.ErrValidation) {
			s.logger.Warn("Login: rejected for email=%s", email)
			return "", ErrInvalidCredentials
		}
		s.logger.Error("Login: failed for email=%s: %v", email, err)
		return "", s.classify(err)
	}
	return token, nil
}

// Me fetches the account behind the token.
func (s *Service) Me(ctx context.Context, token string) (*domain.User, error) {
	user, err := s.client.GetMe(ctx, token)
	if err != nil {
		if errors.Is(err, salonapi.ErrUnauthorized) {
			return nil, ErrUnauthorized
		}
		s.logger.Error("Me: failed: %v", err)
		return nil, s.classify(err)
	}
	return user, nil
}

func (s *Service) classify(err error) error {
	if errors.Is(err, salonapi.ErrUnavailable) {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return fmt.Errorf("%w: %v", ErrInternal, err)
}
