package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/tablewise/pos-api/internal/domain/entity"
	"github.com/tablewise/pos-api/internal/domain/enum"
	"github.com/tablewise/pos-api/internal/domain/repository"
	"github.com/tablewise/pos-api/pkg/apperror"
)

// SettingsService handles per-restaurant configuration
type SettingsService struct {
	restaurantRepo repository.RestaurantRepository
}

// NewSettingsService creates a new settings service
func NewSettingsService(restaurantRepo repository.RestaurantRepository) *SettingsService {
	return &SettingsService{restaurantRepo: restaurantRepo}
}

// SettingsView is the settings payload returned to clients, including the
// immutable country the settings are validated against.
type SettingsView struct {
	Country  enum.Country              `json:"country"`
	Settings entity.RestaurantSettings `json:"settings"`
}

// GetSettings returns a restaurant's settings
func (s *SettingsService) GetSettings(ctx context.Context, restaurantID uuid.UUID) (*SettingsView, error) {
	restaurant, err := s.restaurantRepo.GetByID(ctx, restaurantID)
	if err != nil {
		return nil, err
	}
	if restaurant == nil {
		return nil, apperror.NewNotFoundError("Restaurant")
	}

	return &SettingsView{
		Country:  restaurant.Country,
		Settings: restaurant.Settings,
	}, nil
}

// UpdateSettings validates and stores new settings. Country consistency
// (tax regime, payment modes) is enforced here, at write time, so order
// processing can trust the stored configuration.
func (s *SettingsService) UpdateSettings(ctx context.Context, restaurantID uuid.UUID, settings entity.RestaurantSettings) (*SettingsView, error) {
	restaurant, err := s.restaurantRepo.GetByID(ctx, restaurantID)
	if err != nil {
		return nil, err
	}
	if restaurant == nil {
		return nil, apperror.NewNotFoundError("Restaurant")
	}

	if err := settings.ValidateForCountry(restaurant.Country); err != nil {
		return nil, apperror.NewBadRequestError(err.Error())
	}

	if err := s.restaurantRepo.UpdateSettings(ctx, restaurantID, settings); err != nil {
		return nil, err
	}

	return &SettingsView{
		Country:  restaurant.Country,
		Settings: settings,
	}, nil
}
