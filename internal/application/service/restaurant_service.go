package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/tablewise/pos-api/internal/domain/entity"
	"github.com/tablewise/pos-api/internal/domain/enum"
	"github.com/tablewise/pos-api/internal/domain/repository"
	"github.com/tablewise/pos-api/pkg/apperror"
	"golang.org/x/crypto/bcrypt"
)

// RestaurantService handles restaurant onboarding and management
type RestaurantService struct {
	restaurantRepo repository.RestaurantRepository
}

// NewRestaurantService creates a new restaurant service
func NewRestaurantService(restaurantRepo repository.RestaurantRepository) *RestaurantService {
	return &RestaurantService{restaurantRepo: restaurantRepo}
}

// OnboardInput represents the restaurant onboarding payload: the
// restaurant itself and its first admin user.
type OnboardInput struct {
	Name    string
	Country string
	TRN     string
	Address string
	Phone   string

	AdminName     string
	AdminEmail    string
	AdminPassword string
}

// OnboardResult identifies the created restaurant and admin
type OnboardResult struct {
	RestaurantID uuid.UUID `json:"restaurant_id"`
	AdminID      uuid.UUID `json:"admin_id"`
}

// Onboard creates a restaurant with country defaults (tax regime, payment
// modes) and its admin user in one transaction
func (s *RestaurantService) Onboard(ctx context.Context, input *OnboardInput) (*OnboardResult, error) {
	country, err := enum.ParseCountry(input.Country)
	if err != nil {
		return nil, apperror.NewValidationError([]apperror.FieldError{
			{Field: "country", Message: err.Error()},
		})
	}
	if input.Name == "" {
		return nil, apperror.NewValidationError([]apperror.FieldError{
			{Field: "name", Message: "restaurant name is required"},
		})
	}
	if input.AdminEmail == "" || input.AdminPassword == "" {
		return nil, apperror.NewValidationError([]apperror.FieldError{
			{Field: "admin", Message: "admin email and password are required"},
		})
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	restaurant := &entity.Restaurant{
		Name:     input.Name,
		Country:  country,
		TRN:      input.TRN,
		Address:  input.Address,
		Phone:    input.Phone,
		IsActive: true,
		Settings: entity.DefaultSettingsForCountry(country),
	}

	admin := &entity.User{
		Name:     input.AdminName,
		Email:    input.AdminEmail,
		Password: string(hashed),
		Role:     enum.RoleAdmin,
		IsActive: true,
	}

	if err := s.restaurantRepo.Onboard(ctx, restaurant, admin); err != nil {
		return nil, err
	}

	return &OnboardResult{
		RestaurantID: restaurant.ID,
		AdminID:      admin.ID,
	}, nil
}

// GetRestaurant retrieves a restaurant by ID
func (s *RestaurantService) GetRestaurant(ctx context.Context, id uuid.UUID) (*entity.Restaurant, error) {
	restaurant, err := s.restaurantRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if restaurant == nil {
		return nil, apperror.NewNotFoundError("Restaurant")
	}
	return restaurant, nil
}

// ListRestaurants lists all restaurants (super admin)
func (s *RestaurantService) ListRestaurants(ctx context.Context) ([]entity.Restaurant, error) {
	return s.restaurantRepo.List(ctx)
}
