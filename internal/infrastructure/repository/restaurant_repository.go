package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/tablewise/pos-api/internal/domain/entity"
	domainRepo "github.com/tablewise/pos-api/internal/domain/repository"
	"gorm.io/gorm"
)

type restaurantRepository struct {
	db *gorm.DB
}

// NewRestaurantRepository creates a new restaurant repository
func NewRestaurantRepository(db *gorm.DB) domainRepo.RestaurantRepository {
	return &restaurantRepository{db: db}
}

func (r *restaurantRepository) Onboard(ctx context.Context, restaurant *entity.Restaurant, admin *entity.User) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(restaurant).Error; err != nil {
			return err
		}
		admin.RestaurantID = &restaurant.ID
		return tx.Create(admin).Error
	})
}

func (r *restaurantRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Restaurant, error) {
	var restaurant entity.Restaurant
	err := r.db.WithContext(ctx).First(&restaurant, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &restaurant, err
}

func (r *restaurantRepository) Update(ctx context.Context, restaurant *entity.Restaurant) error {
	return r.db.WithContext(ctx).Save(restaurant).Error
}

func (r *restaurantRepository) UpdateSettings(ctx context.Context, id uuid.UUID, settings entity.RestaurantSettings) error {
	return r.db.WithContext(ctx).Model(&entity.Restaurant{}).
		Where("id = ?", id).
		Update("settings", settings).Error
}

func (r *restaurantRepository) List(ctx context.Context) ([]entity.Restaurant, error) {
	var restaurants []entity.Restaurant
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&restaurants).Error
	return restaurants, err
}
