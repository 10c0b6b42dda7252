package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/tablewise/pos-api/internal/domain/entity"
	"github.com/tablewise/pos-api/internal/domain/enum"
	domainRepo "github.com/tablewise/pos-api/internal/domain/repository"
	"gorm.io/gorm"
)

type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository creates a new order repository
func NewOrderRepository(db *gorm.DB) domainRepo.OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	// Items are inserted through the association in the same transaction
	// as the order row; a unique violation rolls back everything.
	return r.db.WithContext(ctx).Create(order).Error
}

func (r *orderRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var order entity.Order
	err := r.db.WithContext(ctx).
		Scopes(RestaurantScope(ctx)).
		Preload("Items").
		First(&order, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &order, err
}

func (r *orderRepository) GetByInvoiceNo(ctx context.Context, invoiceNo string) (*entity.Order, error) {
	var order entity.Order
	err := r.db.WithContext(ctx).
		Scopes(RestaurantScope(ctx)).
		Preload("Items").
		First(&order, "invoice_no = ?", invoiceNo).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &order, err
}

func (r *orderRepository) GetByIdempotencyKey(ctx context.Context, key string) (*entity.Order, error) {
	var order entity.Order
	err := r.db.WithContext(ctx).
		Scopes(RestaurantScope(ctx)).
		Preload("Items").
		First(&order, "idempotency_key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &order, err
}

func (r *orderRepository) List(ctx context.Context, params *domainRepo.OrderFilterParams) ([]entity.Order, int64, error) {
	var orders []entity.Order
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Order{}).Scopes(RestaurantScope(ctx))

	if params.Search != "" {
		query = query.Where("invoice_no ILIKE ?", "%"+params.Search+"%")
	}

	if params.Status != nil {
		query = query.Where("status = ?", *params.Status)
	}

	if params.StartDate != nil {
		query = query.Where("created_at >= ?", *params.StartDate)
	}

	if params.EndDate != nil {
		query = query.Where("created_at < ?", *params.EndDate)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	sortBy := "created_at"
	sortOrder := "DESC"
	if params.SortBy != "" {
		sortBy = params.SortBy
	}
	if params.SortOrder == "ASC" || params.SortOrder == "asc" {
		sortOrder = "ASC"
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Preload("Items").
		Order(sortBy + " " + sortOrder).
		Find(&orders).Error

	return orders, total, err
}

func (r *orderRepository) FindByDateRange(ctx context.Context, start, end time.Time) ([]entity.Order, error) {
	var orders []entity.Order
	err := r.db.WithContext(ctx).
		Scopes(RestaurantScope(ctx)).
		Where("created_at >= ? AND created_at < ?", start, end).
		Preload("Items").
		Order("created_at DESC").
		Find(&orders).Error
	return orders, err
}

func (r *orderRepository) RequestCancel(ctx context.Context, id, requestedBy uuid.UUID, reason string, at time.Time) (int64, error) {
	result := r.db.WithContext(ctx).Model(&entity.Order{}).
		Scopes(RestaurantScope(ctx)).
		Where("id = ? AND status = ? AND cancel_requested = ?", id, enum.OrderStatusPaid, false).
		Updates(map[string]interface{}{
			"cancel_requested":    true,
			"cancel_requested_by": requestedBy,
			"cancel_requested_at": at,
			"cancel_reason":       reason,
		})
	return result.RowsAffected, result.Error
}

func (r *orderRepository) ApproveCancel(ctx context.Context, id, approvedBy uuid.UUID, at time.Time) (int64, error) {
	result := r.db.WithContext(ctx).Model(&entity.Order{}).
		Scopes(RestaurantScope(ctx)).
		Where("id = ? AND status = ? AND cancel_requested = ?", id, enum.OrderStatusPaid, true).
		Updates(map[string]interface{}{
			"status":           enum.OrderStatusCancelled,
			"cancel_requested": false,
			"cancelled_by":     approvedBy,
			"cancelled_at":     at,
		})
	return result.RowsAffected, result.Error
}

func (r *orderRepository) RejectCancel(ctx context.Context, id uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).Model(&entity.Order{}).
		Scopes(RestaurantScope(ctx)).
		Where("id = ? AND status = ? AND cancel_requested = ?", id, enum.OrderStatusPaid, true).
		Updates(map[string]interface{}{
			"cancel_requested":    false,
			"cancel_requested_by": nil,
			"cancel_requested_at": nil,
			"cancel_reason":       "",
		})
	return result.RowsAffected, result.Error
}
