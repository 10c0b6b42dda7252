package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/tablewise/pos-api/internal/domain/enum"
	"gorm.io/gorm"
)

// Order represents a captured sale. Monetary fields are stored in cents.
// The tax fields are a snapshot of the restaurant's tax configuration at
// order-creation time; later settings changes never alter stored orders.
type Order struct {
	ID             uuid.UUID        `gorm:"type:uuid;primary_key" json:"id"`
	RestaurantID   uuid.UUID        `gorm:"type:uuid;not null;index;uniqueIndex:idx_orders_restaurant_idem;uniqueIndex:idx_orders_restaurant_invoice" json:"restaurant_id"`
	IdempotencyKey string           `gorm:"size:255;not null;uniqueIndex:idx_orders_restaurant_idem" json:"idempotency_key"`
	InvoiceNo      string           `gorm:"size:100;not null;uniqueIndex:idx_orders_restaurant_invoice" json:"invoice_no"`
	InvoiceSeq     int64            `gorm:"not null" json:"invoice_seq"`
	Status         enum.OrderStatus `gorm:"default:0" json:"status"`
	PaymentMode    enum.PaymentMode `gorm:"size:20;not null" json:"payment_mode"`
	SubTotal       int64            `gorm:"not null" json:"-"` // Stored in cents, excluded from JSON
	GrandTotal     int64            `gorm:"not null" json:"-"` // Stored in cents, excluded from JSON

	// Tax snapshot
	TaxEnabled   bool         `gorm:"default:false" json:"tax_enabled"`
	TaxType      enum.TaxType `gorm:"default:0" json:"tax_type"`
	TaxRate      float64      `gorm:"default:0" json:"tax_rate"`
	TaxInclusive bool         `gorm:"default:false" json:"tax_inclusive"`
	TaxAmount    int64        `gorm:"default:0" json:"-"` // Stored in cents, excluded from JSON

	// Audit
	CreatedBy         uuid.UUID  `gorm:"type:uuid;not null" json:"created_by"`
	CancelRequested   bool       `gorm:"default:false" json:"cancel_requested"`
	CancelRequestedBy *uuid.UUID `gorm:"type:uuid" json:"cancel_requested_by,omitempty"`
	CancelRequestedAt *time.Time `json:"cancel_requested_at,omitempty"`
	CancelledBy       *uuid.UUID `gorm:"type:uuid" json:"cancelled_by,omitempty"`
	CancelledAt       *time.Time `json:"cancelled_at,omitempty"`
	CancelReason      string     `gorm:"size:500" json:"cancel_reason,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Items []OrderItem `gorm:"foreignKey:OrderID" json:"items,omitempty"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (o Order) MarshalJSON() ([]byte, error) {
	type Alias Order
	return json.Marshal(&struct {
		Alias
		SubTotal   float64 `json:"sub_total"`
		TaxAmount  float64 `json:"tax_amount"`
		GrandTotal float64 `json:"grand_total"`
	}{
		Alias:      Alias(o),
		SubTotal:   float64(o.SubTotal) / 100,
		TaxAmount:  float64(o.TaxAmount) / 100,
		GrandTotal: float64(o.GrandTotal) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new order
func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Order model
func (Order) TableName() string {
	return "orders"
}

// TotalItems returns the total quantity across all line items
func (o *Order) TotalItems() int {
	total := 0
	for _, item := range o.Items {
		total += item.Quantity
	}
	return total
}

// TotalProfit returns the summed line profit in cents
func (o *Order) TotalProfit() int64 {
	var total int64
	for _, item := range o.Items {
		total += item.Profit
	}
	return total
}

// OrderItem represents a line item in an order. Name and prices are
// snapshots of the product at order time.
type OrderItem struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	OrderID      uuid.UUID `gorm:"type:uuid;not null;index" json:"order_id"`
	ProductID    uuid.UUID `gorm:"type:uuid;not null;index" json:"product_id"`
	Name         string    `gorm:"size:255;not null" json:"name"`
	Quantity     int       `gorm:"not null" json:"quantity"`
	SellingPrice int64     `gorm:"not null" json:"-"` // Stored in cents, excluded from JSON
	CostPrice    int64     `gorm:"default:0" json:"-"` // Stored in cents, excluded from JSON
	Total        int64     `gorm:"not null" json:"-"` // Stored in cents, excluded from JSON
	Profit       int64     `gorm:"default:0" json:"-"` // Stored in cents, excluded from JSON
	CreatedAt    time.Time `json:"created_at"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (oi OrderItem) MarshalJSON() ([]byte, error) {
	type Alias OrderItem
	return json.Marshal(&struct {
		Alias
		SellingPrice float64 `json:"selling_price"`
		CostPrice    float64 `json:"cost_price"`
		Total        float64 `json:"total"`
		Profit       float64 `json:"profit"`
	}{
		Alias:        Alias(oi),
		SellingPrice: float64(oi.SellingPrice) / 100,
		CostPrice:    float64(oi.CostPrice) / 100,
		Total:        float64(oi.Total) / 100,
		Profit:       float64(oi.Profit) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new order item
func (oi *OrderItem) BeforeCreate(tx *gorm.DB) error {
	if oi.ID == uuid.Nil {
		oi.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the OrderItem model
func (OrderItem) TableName() string {
	return "order_items"
}
