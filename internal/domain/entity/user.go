package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/tablewise/pos-api/internal/domain/enum"
	"gorm.io/gorm"
)

// User represents a staff member of a restaurant. Email is unique within a
// restaurant. SUPER_ADMIN users are platform operators and are not tied to
// a restaurant.
type User struct {
	ID           uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	RestaurantID *uuid.UUID     `gorm:"type:uuid;index;uniqueIndex:idx_users_restaurant_email" json:"restaurant_id,omitempty"`
	Name         string         `gorm:"size:255;not null" json:"name"`
	Email        string         `gorm:"size:255;not null;uniqueIndex:idx_users_restaurant_email" json:"email"`
	Password     string         `gorm:"size:255;not null" json:"-"`
	Role         enum.Role      `gorm:"size:20;not null" json:"role"`
	IsActive     bool           `gorm:"default:true" json:"is_active"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Restaurant *Restaurant `gorm:"foreignKey:RestaurantID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new user
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the User model
func (User) TableName() string {
	return "users"
}
