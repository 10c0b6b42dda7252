package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/tablewise/pos-api/internal/domain/entity"
	"github.com/tablewise/pos-api/internal/domain/enum"
	"github.com/tablewise/pos-api/pkg/pagination"
)

// OrderFilterParams contains filtering parameters for order queries
type OrderFilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string
	Status     *enum.OrderStatus
	StartDate  *time.Time
	EndDate    *time.Time
	SortBy     string
	SortOrder  string
}

// OrderRepository defines the interface for order data operations.
//
// All lifecycle mutations are conditional updates: the WHERE clause
// carries the expected source state, and callers learn about a lost race
// from a zero rows-affected count. Read-then-write without those guards
// is not safe with multiple server processes.
type OrderRepository interface {
	// Create persists an order with its items. A duplicate
	// (restaurant_id, idempotency_key) pair surfaces as
	// gorm.ErrDuplicatedKey.
	Create(ctx context.Context, order *entity.Order) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)
	GetByInvoiceNo(ctx context.Context, invoiceNo string) (*entity.Order, error)
	GetByIdempotencyKey(ctx context.Context, key string) (*entity.Order, error)
	List(ctx context.Context, params *OrderFilterParams) ([]entity.Order, int64, error)
	// FindByDateRange returns orders created in [start, end) with items
	// preloaded, newest first.
	FindByDateRange(ctx context.Context, start, end time.Time) ([]entity.Order, error)

	// RequestCancel flags a PAID order with no pending request. Returns
	// the number of rows updated (0 means the guard failed).
	RequestCancel(ctx context.Context, id, requestedBy uuid.UUID, reason string, at time.Time) (int64, error)
	// ApproveCancel moves a PAID order with a pending request to
	// CANCELLED and clears the pending flag.
	ApproveCancel(ctx context.Context, id, approvedBy uuid.UUID, at time.Time) (int64, error)
	// RejectCancel clears a pending request, leaving the order PAID.
	RejectCancel(ctx context.Context, id uuid.UUID) (int64, error)
}
