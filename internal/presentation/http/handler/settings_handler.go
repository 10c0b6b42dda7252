package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/tablewise/pos-api/internal/application/service"
	"github.com/tablewise/pos-api/internal/domain/entity"
	"github.com/tablewise/pos-api/internal/domain/enum"
	"github.com/tablewise/pos-api/internal/presentation/http/dto/request"
	"github.com/tablewise/pos-api/internal/presentation/http/dto/response"
)

// SettingsHandler handles settings-related HTTP requests
type SettingsHandler struct {
	settingsService *service.SettingsService
}

// NewSettingsHandler creates a new settings handler
func NewSettingsHandler(settingsService *service.SettingsService) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

// Get handles getting the current restaurant's settings
func (h *SettingsHandler) Get(c *gin.Context) {
	restaurantID := GetRestaurantID(c)
	if restaurantID == uuid.Nil {
		response.Forbidden(c, "Restaurant context required")
		return
	}

	settings, err := h.settingsService.GetSettings(c.Request.Context(), restaurantID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Settings retrieved successfully", settings)
}

// Update handles updating the current restaurant's settings
func (h *SettingsHandler) Update(c *gin.Context) {
	restaurantID := GetRestaurantID(c)
	if restaurantID == uuid.Nil {
		response.Forbidden(c, "Restaurant context required")
		return
	}

	var req request.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	taxType, err := enum.ParseTaxType(req.Tax.Type)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	taxPricing, err := enum.ParseTaxPricing(req.Tax.Pricing)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	modes := make([]enum.PaymentMode, 0, len(req.Payment.EnabledModes))
	for _, m := range req.Payment.EnabledModes {
		mode, err := enum.ParsePaymentMode(m)
		if err != nil {
			response.BadRequest(c, err.Error())
			return
		}
		modes = append(modes, mode)
	}

	settings := entity.RestaurantSettings{
		ShopName:  req.ShopName,
		TaxNumber: req.TaxNumber,
		Address:   req.Address,
		Phone:     req.Phone,
		Tax: entity.TaxConfig{
			Enabled: req.Tax.Enabled,
			Type:    taxType,
			Rate:    req.Tax.Rate,
			Pricing: taxPricing,
		},
		Payment: entity.PaymentConfig{
			EnabledModes: modes,
		},
	}

	updated, err := h.settingsService.UpdateSettings(c.Request.Context(), restaurantID, settings)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Settings updated successfully", updated)
}
