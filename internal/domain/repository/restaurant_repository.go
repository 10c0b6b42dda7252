package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/tablewise/pos-api/internal/domain/entity"
)

// RestaurantRepository defines the interface for restaurant data operations
type RestaurantRepository interface {
	// Onboard creates a restaurant together with its first admin user in a
	// single transaction. Either both rows are committed or neither is.
	Onboard(ctx context.Context, restaurant *entity.Restaurant, admin *entity.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Restaurant, error)
	Update(ctx context.Context, restaurant *entity.Restaurant) error
	UpdateSettings(ctx context.Context, id uuid.UUID, settings entity.RestaurantSettings) error
	List(ctx context.Context) ([]entity.Restaurant, error)
}
