package request

import "github.com/google/uuid"

// OrderItemRequest represents a line item in an order request
type OrderItemRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	Quantity  int       `json:"quantity" binding:"required"`
}

// CreateOrderRequest represents the create order payload. The idempotency
// key comes from the Idempotency-Key header, not the body.
type CreateOrderRequest struct {
	PaymentMode string             `json:"payment_mode" binding:"required"`
	Items       []OrderItemRequest `json:"items" binding:"required"`
}

// CancelRequestRequest represents the cancel request payload
type CancelRequestRequest struct {
	Reason string `json:"reason"`
}
