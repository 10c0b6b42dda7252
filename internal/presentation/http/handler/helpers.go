package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/tablewise/pos-api/internal/domain/enum"
)

// GetUserID extracts the user ID from the Gin context
func GetUserID(c *gin.Context) *uuid.UUID {
	userIDVal, exists := c.Get("user_id")
	if !exists {
		return nil
	}
	userID, ok := userIDVal.(uuid.UUID)
	if !ok {
		return nil
	}
	return &userID
}

// GetUserRole extracts the user role from the Gin context
func GetUserRole(c *gin.Context) enum.Role {
	roleVal, exists := c.Get("user_role")
	if !exists {
		return ""
	}
	role, ok := roleVal.(enum.Role)
	if !ok {
		return ""
	}
	return role
}

// GetRestaurantID extracts the restaurant ID from the Gin context. Returns
// uuid.Nil for super admins, who carry no restaurant.
func GetRestaurantID(c *gin.Context) uuid.UUID {
	restaurantIDVal, exists := c.Get("restaurant_id")
	if !exists {
		return uuid.Nil
	}
	restaurantID, ok := restaurantIDVal.(uuid.UUID)
	if !ok {
		return uuid.Nil
	}
	return restaurantID
}
