package request

// OnboardRequest represents the restaurant onboarding payload
type OnboardRequest struct {
	Name    string `json:"name" binding:"required"`
	Country string `json:"country" binding:"required"`
	TRN     string `json:"trn"`
	Address string `json:"address"`
	Phone   string `json:"phone"`

	AdminName     string `json:"admin_name" binding:"required"`
	AdminEmail    string `json:"admin_email" binding:"required,email"`
	AdminPassword string `json:"admin_password" binding:"required,min=8"`
}

// UpdateSettingsRequest represents the settings update payload
type UpdateSettingsRequest struct {
	ShopName  string `json:"shop_name"`
	TaxNumber string `json:"tax_number"`
	Address   string `json:"address"`
	Phone     string `json:"phone"`

	Tax struct {
		Enabled bool    `json:"enabled"`
		Type    string  `json:"type"`
		Rate    float64 `json:"rate"`
		Pricing string  `json:"pricing"`
	} `json:"tax"`

	Payment struct {
		EnabledModes []string `json:"enabled_modes"`
	} `json:"payment"`
}
