package request

import "github.com/google/uuid"

// CreateProductRequest represents the product creation payload. Prices are
// decimals; they are converted to cents at the handler boundary.
type CreateProductRequest struct {
	Name         string     `json:"name" binding:"required"`
	CategoryID   *uuid.UUID `json:"category_id"`
	SellingPrice float64    `json:"selling_price" binding:"required"`
	CostPrice    float64    `json:"cost_price"`
	SKU          string     `json:"sku"`
	ImageURL     string     `json:"image_url"`
}

// UpdateProductRequest represents the product update payload. Nil fields
// are left unchanged.
type UpdateProductRequest struct {
	Name         *string    `json:"name"`
	CategoryID   *uuid.UUID `json:"category_id"`
	SellingPrice *float64   `json:"selling_price"`
	CostPrice    *float64   `json:"cost_price"`
	SKU          *string    `json:"sku"`
	ImageURL     *string    `json:"image_url"`
	IsActive     *bool      `json:"is_active"`
}

// CreateCategoryRequest represents the category creation payload
type CreateCategoryRequest struct {
	Name string `json:"name" binding:"required"`
}

// UpdateCategoryRequest represents the category update payload
type UpdateCategoryRequest struct {
	Name     *string `json:"name"`
	IsActive *bool   `json:"is_active"`
}
