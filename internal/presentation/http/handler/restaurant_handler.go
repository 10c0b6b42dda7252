package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/tablewise/pos-api/internal/application/service"
	"github.com/tablewise/pos-api/internal/presentation/http/dto/request"
	"github.com/tablewise/pos-api/internal/presentation/http/dto/response"
)

// RestaurantHandler handles restaurant-related HTTP requests
type RestaurantHandler struct {
	restaurantService *service.RestaurantService
}

// NewRestaurantHandler creates a new restaurant handler
func NewRestaurantHandler(restaurantService *service.RestaurantService) *RestaurantHandler {
	return &RestaurantHandler{restaurantService: restaurantService}
}

// Onboard handles onboarding a new restaurant with its admin user
// @Summary Onboard Restaurant
// @Tags restaurants
// @Accept json
// @Produce json
// @Param request body request.OnboardRequest true "Onboarding data"
// @Success 201 {object} response.APIResponse
// @Router /restaurants [post]
func (h *RestaurantHandler) Onboard(c *gin.Context) {
	var req request.OnboardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	result, err := h.restaurantService.Onboard(c.Request.Context(), &service.OnboardInput{
		Name:          req.Name,
		Country:       req.Country,
		TRN:           req.TRN,
		Address:       req.Address,
		Phone:         req.Phone,
		AdminName:     req.AdminName,
		AdminEmail:    req.AdminEmail,
		AdminPassword: req.AdminPassword,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Restaurant onboarded successfully", result)
}

// Get handles getting the current restaurant
// @Summary Get Restaurant
// @Tags restaurants
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /restaurants/current [get]
func (h *RestaurantHandler) Get(c *gin.Context) {
	restaurantID := GetRestaurantID(c)
	if restaurantID == uuid.Nil {
		response.Forbidden(c, "Restaurant context required")
		return
	}

	restaurant, err := h.restaurantService.GetRestaurant(c.Request.Context(), restaurantID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Restaurant retrieved successfully", restaurant)
}

// List handles listing all restaurants (super admin)
// @Summary List Restaurants
// @Tags restaurants
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /admin/restaurants [get]
func (h *RestaurantHandler) List(c *gin.Context) {
	restaurants, err := h.restaurantService.ListRestaurants(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Restaurants retrieved successfully", restaurants)
}
