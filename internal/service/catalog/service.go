// Package catalog reads the salon's menu catalog through the salon API.
// The catalog is immutable from the gateway's point of view.
package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/hyeonbit/Salon-BookingGateway/internal/domain"
	"github.com/hyeonbit/Salon-BookingGateway/internal/integrations/salonapi"
)

// Service proxies catalog reads.
type Service struct {
	client SalonAPIClient
	logger Logger
}

// NewService creates the catalog service.
func NewService(client SalonAPIClient, logger Logger) *Service {
	return &Service{client: client, logger: logger}
}

// Categories lists the menu categories.
func (s *Service) Categories(ctx context.Context) ([]domain.Category, error) {
	categories, err := s.client.GetCategories(ctx)
	if err != nil {
		s.logger.Error("Categories: failed to fetch: %v", err)
		return nil, s.classify(err)
	}
	return categories, nil
}

// Menus lists the catalog, optionally filtered by category.
func (s *Service) Menus(ctx context.Context, categoryID *int64) ([]domain.Menu, error) {
	menus, err := s.client.GetMenus(ctx, categoryID)
	if err != nil {
		if errors.Is(err, salonapi.ErrNotFound) {
			s.logger.Warn("Menus: category not found")
			return nil, ErrCategoryNotFound
		}
		s.logger.Error("Menus: failed to fetch: %v", err)
		return nil, s.classify(err)
	}
	return menus, nil
}

// Menu fetches one menu with its options.
func (s *Service) Menu(ctx context.Context, menuID int64) (*domain.Menu, error) {
	menu, err := s.client.GetMenu(ctx, menuID)
	if err != nil {
		if errors.Is(err, salonapi.ErrNotFound) {
			s.logger.Warn("Menu: menu id=%d not found", menuID)
			return nil, ErrMenuNotFound
		}
		s.logger.Error("Menu: failed to fetch id=%d: %v", menuID, err)
		return nil, s.classify(err)
	}
	return menu, nil
}

func (s *Service) classify(err error) error {
	if errors.Is(err, salonapi.ErrUnavailable) {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return fmt.Errorf("%w: %v", ErrInternal, err)
}
