package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/tablewise/pos-api/internal/domain/enum"
	infraRepo "github.com/tablewise/pos-api/internal/infrastructure/repository"
	"github.com/tablewise/pos-api/internal/presentation/http/dto/response"
)

// RestaurantMiddleware propagates the authenticated user's restaurant into
// the request context so repositories can apply tenant scoping. Super
// admins carry no restaurant; they get the scope-skip flag instead.
func RestaurantMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		roleVal, _ := c.Get("user_role")
		if role, ok := roleVal.(enum.Role); ok && role == enum.RoleSuperAdmin {
			ctx := infraRepo.WithSkipRestaurantScope(c.Request.Context(), true)
			c.Request = c.Request.WithContext(ctx)
			c.Next()
			return
		}

		restaurantID := GetRestaurantID(c)
		if restaurantID == uuid.Nil {
			response.Forbidden(c, "Restaurant context required")
			c.Abort()
			return
		}

		ctx := infraRepo.WithRestaurant(c.Request.Context(), restaurantID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// GetRestaurantID retrieves the restaurant ID from gin context
func GetRestaurantID(c *gin.Context) uuid.UUID {
	restaurantID, exists := c.Get("restaurant_id")
	if !exists {
		return uuid.Nil
	}
	id, ok := restaurantID.(uuid.UUID)
	if !ok {
		return uuid.Nil
	}
	return id
}
