package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/tablewise/pos-api/internal/domain/entity"
	"github.com/tablewise/pos-api/internal/domain/enum"
	"github.com/tablewise/pos-api/internal/domain/repository"
	"github.com/tablewise/pos-api/pkg/apperror"
	"github.com/tablewise/pos-api/pkg/utils"
	"golang.org/x/crypto/bcrypt"
)

// AuthService handles authentication and staff management
type AuthService struct {
	userRepo   repository.UserRepository
	jwtManager *utils.JWTManager
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo repository.UserRepository, jwtManager *utils.JWTManager) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		jwtManager: jwtManager,
	}
}

// LoginResult contains the tokens and user returned after login
type LoginResult struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	User         *entity.User `json:"user"`
}

// Login authenticates a user by email and password
func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, apperror.ErrInvalidCredentials
	}

	accessToken, err := s.jwtManager.GenerateAccessToken(user.ID, user.RestaurantID, user.Email, user.Role)
	if err != nil {
		return nil, err
	}

	refreshToken, err := s.jwtManager.GenerateRefreshToken(user.ID)
	if err != nil {
		return nil, err
	}

	return &LoginResult{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         user,
	}, nil
}

// Refresh exchanges a refresh token for a new access token
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*LoginResult, error) {
	userID, err := s.jwtManager.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, apperror.ErrInvalidToken
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil || !user.IsActive {
		return nil, apperror.ErrInvalidToken
	}

	accessToken, err := s.jwtManager.GenerateAccessToken(user.ID, user.RestaurantID, user.Email, user.Role)
	if err != nil {
		return nil, err
	}

	return &LoginResult{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         user,
	}, nil
}

// GetProfile returns the authenticated user
func (s *AuthService) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NewNotFoundError("User")
	}
	return user, nil
}

// CreateStaffInput represents input for creating a staff user
type CreateStaffInput struct {
	RestaurantID uuid.UUID
	Name         string
	Email        string
	Password     string
	Role         string
}

// CreateStaff creates a cashier or admin user within a restaurant
func (s *AuthService) CreateStaff(ctx context.Context, input *CreateStaffInput) (*entity.User, error) {
	role, err := enum.ParseRole(input.Role)
	if err != nil || role == enum.RoleSuperAdmin {
		return nil, apperror.NewBadRequestError("Role must be CASHIER or ADMIN")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		RestaurantID: &input.RestaurantID,
		Name:         input.Name,
		Email:        input.Email,
		Password:     string(hashed),
		Role:         role,
		IsActive:     true,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// ListStaff lists the users of a restaurant
func (s *AuthService) ListStaff(ctx context.Context, restaurantID uuid.UUID) ([]entity.User, error) {
	return s.userRepo.ListByRestaurant(ctx, restaurantID)
}
