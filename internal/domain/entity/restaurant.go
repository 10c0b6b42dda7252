package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/tablewise/pos-api/internal/domain/enum"
	"gorm.io/gorm"
)

// Restaurant represents a tenant in the multitenant system. All catalog,
// order and settings data is scoped by restaurant ID. Country is set at
// onboarding and never changes.
type Restaurant struct {
	ID        uuid.UUID          `gorm:"type:uuid;primary_key" json:"id"`
	Name      string             `gorm:"size:255;not null" json:"name"`
	Country   enum.Country       `gorm:"size:10;not null" json:"country"`
	TRN       string             `gorm:"size:50" json:"trn,omitempty"`
	Address   string             `gorm:"size:500" json:"address,omitempty"`
	Phone     string             `gorm:"size:50" json:"phone,omitempty"`
	IsActive  bool               `gorm:"default:true" json:"is_active"`
	Settings  RestaurantSettings `gorm:"type:jsonb;serializer:json" json:"settings"`
	CreatedAt time.Time          `json:"created_at"`
	UpdatedAt time.Time          `json:"updated_at"`
	DeletedAt gorm.DeletedAt     `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new restaurant
func (r *Restaurant) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Restaurant model
func (Restaurant) TableName() string {
	return "restaurants"
}

// TaxConfig holds a restaurant's tax regime configuration. The regime type
// and default rate are implied by country but can be overridden here.
type TaxConfig struct {
	Enabled bool            `json:"enabled"`
	Type    enum.TaxType    `json:"type"`
	Rate    float64         `json:"rate"`
	Pricing enum.TaxPricing `json:"pricing"`
}

// PaymentConfig holds the payment modes a restaurant accepts.
type PaymentConfig struct {
	EnabledModes []enum.PaymentMode `json:"enabled_modes"`
}

// Accepts reports whether the given mode is enabled for the restaurant.
func (pc PaymentConfig) Accepts(mode enum.PaymentMode) bool {
	for _, m := range pc.EnabledModes {
		if m == mode {
			return true
		}
	}
	return false
}

// RestaurantSettings holds all per-restaurant configuration, stored as a
// jsonb column.
type RestaurantSettings struct {
	// Receipt display
	ShopName  string `json:"shop_name,omitempty"`
	TaxNumber string `json:"tax_number,omitempty"`
	Address   string `json:"address,omitempty"`
	Phone     string `json:"phone,omitempty"`

	Tax     TaxConfig     `json:"tax"`
	Payment PaymentConfig `json:"payment"`
}

// Scan implements the sql.Scanner interface for RestaurantSettings
func (rs *RestaurantSettings) Scan(value interface{}) error {
	if value == nil {
		*rs = RestaurantSettings{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New("failed to scan RestaurantSettings: unsupported type")
	}

	return json.Unmarshal(bytes, rs)
}

// Value implements the driver.Valuer interface for RestaurantSettings
func (rs RestaurantSettings) Value() (driver.Value, error) {
	return json.Marshal(rs)
}

// ValidateForCountry checks that the tax regime and payment modes are
// consistent with the restaurant's country. Called on every settings write
// so order processing never has to re-derive country rules.
func (rs RestaurantSettings) ValidateForCountry(c enum.Country) error {
	if rs.Tax.Enabled {
		if rs.Tax.Type == enum.TaxTypeNone {
			return errors.New("tax is enabled but regime type is NONE")
		}
		if !rs.Tax.Type.ValidForCountry(c) {
			return fmt.Errorf("tax regime %s is not valid for country %s", rs.Tax.Type, c)
		}
		if rs.Tax.Rate < 0 {
			return errors.New("tax rate must not be negative")
		}
	}
	for _, m := range rs.Payment.EnabledModes {
		if !m.IsValid() {
			return fmt.Errorf("unknown payment mode %s", m)
		}
		if !m.ValidForCountry(c) {
			return fmt.Errorf("payment mode %s is not valid for country %s", m, c)
		}
	}
	return nil
}

// DefaultSettingsForCountry returns the settings a new restaurant starts
// with: GST 5%% exclusive pricing for India, VAT 15%% inclusive pricing for
// KSA, and the country's default payment modes.
func DefaultSettingsForCountry(c enum.Country) RestaurantSettings {
	settings := RestaurantSettings{
		Payment: PaymentConfig{EnabledModes: enum.DefaultPaymentModes(c)},
	}

	switch c {
	case enum.CountryIndia:
		settings.Tax = TaxConfig{
			Enabled: true,
			Type:    enum.TaxTypeGST,
			Rate:    5,
			Pricing: enum.TaxPricingExclusive,
		}
	case enum.CountryKSA:
		settings.Tax = TaxConfig{
			Enabled: true,
			Type:    enum.TaxTypeVAT,
			Rate:    15,
			Pricing: enum.TaxPricingInclusive,
		}
	}

	return settings
}
