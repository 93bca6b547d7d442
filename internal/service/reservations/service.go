// Package reservations proxies reservation history and lifecycle operations
// to the salon API. Status transitions are enforced upstream; this layer
// translates upstream failures into gateway errors.
package reservations

import (
	"context"
	"errors"
	"fmt"

	"github.com/hyeonbit/Salon-BookingGateway/internal/domain"
	"github.com/hyeonbit/Salon-BookingGateway/internal/integrations/salonapi"
)

// Service proxies reservation operations.
type Service struct {
	client SalonAPIClient
	logger Logger
}

// NewService creates the reservations service.
func NewService(client SalonAPIClient, logger Logger) *Service {
	return &Service{client: client, logger: logger}
}

// ForUser returns the caller's reservation history, most recent first as
// ordered by the salon API.
func (s *Service) ForUser(ctx context.Context, token string) ([]domain.Reservation, error) {
	list, err := s.client.GetMyReservations(ctx, token)
	if err != nil {
		s.logger.Error("ForUser: failed: %v", err)
		return nil, s.classify(err)
	}
	return list, nil
}

// Cancel cancels one of the caller's reservations.
func (s *Service) Cancel(ctx context.Context, token string, reservationID int64) (*domain.Reservation, error) {
	s.logger.Info("Cancel: reservationID=%d", reservationID)

	res, err := s.client.CancelReservation(ctx, token, reservationID)
	if err != nil {
		if errors.Is(err, salonapi.ErrConflict) || errors.Is(err, salonapi.ErrValidation) {
			s.logger.Warn("Cancel: reservationID=%d not cancellable: %v", reservationID, err)
			return nil, fmt.Errorf("%w: %v", ErrNotCancellable, err)
		}
		s.logger.Error("Cancel: reservationID=%d failed: %v", reservationID, err)
		return nil, s.classify(err)
	}

	s.logger.Info("Cancel: reservationID=%d status=%s", reservationID, res.Status)
	return res, nil
}

// AdminList returns reservations across all users, optionally filtered by
// date and status. The caller must hold an admin token.
func (s *Service) AdminList(ctx context.Context, token string, date *string, status *domain.ReservationStatus) ([]domain.Reservation, error) {
	list, err := s.client.ListReservations(ctx, token, date, status)
	if err != nil {
		s.logger.Error("AdminList: failed: %v", err)
		return nil, s.classify(err)
	}
	return list, nil
}

// Complete marks a confirmed reservation as completed.
func (s *Service) Complete(ctx context.Context, token string, reservationID int64) (*domain.Reservation, error) {
	s.logger.Info("Complete: reservationID=%d", reservationID)

	res, err := s.client.CompleteReservation(ctx, token, reservationID)
	if err != nil {
		if errors.Is(err, salonapi.ErrConflict) || errors.Is(err, salonapi.ErrValidation) {
			s.logger.Warn("Complete: reservationID=%d not completable: %v", reservationID, err)
			return nil, fmt.Errorf("%w: %v", ErrNotCompletable, err)
		}
		s.logger.Error("Complete: reservationID=%d failed: %v", reservationID, err)
		return nil, s.classify(err)
	}

	s.logger.Info("Complete: reservationID=%d status=%s", reservationID, res.Status)
	return res, nil
}

func (s *Service) classify(err error) error {
	switch {
	case errors.Is(err, salonapi.ErrNotFound):
		return fmt.Errorf("%w: %v", ErrReservationNotFound, err)
	case errors.Is(err, salonapi.ErrUnauthorized):
		return ErrUnauthorized
	case errors.Is(err, salonapi.ErrForbidden):
		return ErrForbidden
	case errors.Is(err, salonapi.ErrUnavailable):
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	default:
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}
}
