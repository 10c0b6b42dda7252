package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/tablewise/pos-api/internal/domain/entity"
	"github.com/tablewise/pos-api/internal/domain/enum"
	"github.com/tablewise/pos-api/pkg/apperror"
)

func TestUpdateSettings_AcceptsCountryConsistentConfig(t *testing.T) {
	restaurants := new(MockRestaurantRepository)
	restaurant := testRestaurant(enum.CountryIndia)
	restaurants.On("GetByID", mock.Anything, restaurant.ID).Return(restaurant, nil)
	restaurants.On("UpdateSettings", mock.Anything, restaurant.ID, mock.Anything).Return(nil)

	service := NewSettingsService(restaurants)

	settings := entity.RestaurantSettings{
		ShopName: "Chai Point",
		Tax: entity.TaxConfig{
			Enabled: true,
			Type:    enum.TaxTypeGST,
			Rate:    5,
			Pricing: enum.TaxPricingExclusive,
		},
		Payment: entity.PaymentConfig{
			EnabledModes: []enum.PaymentMode{enum.PaymentModeCash, enum.PaymentModeUPI},
		},
	}

	view, err := service.UpdateSettings(context.Background(), restaurant.ID, settings)

	require.NoError(t, err)
	assert.Equal(t, enum.CountryIndia, view.Country)
	assert.Equal(t, "Chai Point", view.Settings.ShopName)
	restaurants.AssertCalled(t, "UpdateSettings", mock.Anything, restaurant.ID, mock.Anything)
}

func TestUpdateSettings_RejectsWrongTaxRegimeForCountry(t *testing.T) {
	restaurants := new(MockRestaurantRepository)
	restaurant := testRestaurant(enum.CountryKSA)
	restaurants.On("GetByID", mock.Anything, restaurant.ID).Return(restaurant, nil)

	service := NewSettingsService(restaurants)

	// GST is an Indian regime; KSA restaurants use VAT.
	settings := entity.RestaurantSettings{
		Tax: entity.TaxConfig{
			Enabled: true,
			Type:    enum.TaxTypeGST,
			Rate:    5,
			Pricing: enum.TaxPricingExclusive,
		},
	}

	_, err := service.UpdateSettings(context.Background(), restaurant.ID, settings)

	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)
	restaurants.AssertNotCalled(t, "UpdateSettings", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateSettings_RejectsForeignPaymentMode(t *testing.T) {
	restaurants := new(MockRestaurantRepository)
	restaurant := testRestaurant(enum.CountryIndia)
	restaurants.On("GetByID", mock.Anything, restaurant.ID).Return(restaurant, nil)

	service := NewSettingsService(restaurants)

	// MADA is KSA-only.
	settings := entity.RestaurantSettings{
		Payment: entity.PaymentConfig{
			EnabledModes: []enum.PaymentMode{enum.PaymentModeMada},
		},
	}

	_, err := service.UpdateSettings(context.Background(), restaurant.ID, settings)

	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)
	restaurants.AssertNotCalled(t, "UpdateSettings", mock.Anything, mock.Anything, mock.Anything)
}

func TestDefaultSettingsForCountry(t *testing.T) {
	india := entity.DefaultSettingsForCountry(enum.CountryIndia)
	assert.Equal(t, enum.TaxTypeGST, india.Tax.Type)
	assert.Equal(t, float64(5), india.Tax.Rate)
	assert.Equal(t, enum.TaxPricingExclusive, india.Tax.Pricing)
	assert.Contains(t, india.Payment.EnabledModes, enum.PaymentModeUPI)
	assert.NotContains(t, india.Payment.EnabledModes, enum.PaymentModeMada)

	ksa := entity.DefaultSettingsForCountry(enum.CountryKSA)
	assert.Equal(t, enum.TaxTypeVAT, ksa.Tax.Type)
	assert.Equal(t, float64(15), ksa.Tax.Rate)
	assert.Equal(t, enum.TaxPricingInclusive, ksa.Tax.Pricing)
	assert.Contains(t, ksa.Payment.EnabledModes, enum.PaymentModeMada)
	assert.NotContains(t, ksa.Payment.EnabledModes, enum.PaymentModeUPI)
}
