package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/tablewise/pos-api/internal/domain/entity"
	"github.com/tablewise/pos-api/internal/domain/enum"
	"github.com/tablewise/pos-api/internal/domain/repository"
	infraRepo "github.com/tablewise/pos-api/internal/infrastructure/repository"
	"github.com/tablewise/pos-api/pkg/apperror"
	"github.com/tablewise/pos-api/pkg/pagination"
	"gorm.io/gorm"
)

// invoicePrefix tags every invoice number; the numeric part is the
// zero-padded per-restaurant sequence.
const invoicePrefix = "INV-"

// FormatInvoiceNo renders a sequence number as a printable invoice number
func FormatInvoiceNo(seq int64) string {
	return fmt.Sprintf("%s%06d", invoicePrefix, seq)
}

// OrderService handles order capture and lifecycle operations
type OrderService struct {
	orderRepo      repository.OrderRepository
	productRepo    repository.ProductRepository
	restaurantRepo repository.RestaurantRepository
	sequenceRepo   repository.SequenceRepository
}

// NewOrderService creates a new order service
func NewOrderService(
	orderRepo repository.OrderRepository,
	productRepo repository.ProductRepository,
	restaurantRepo repository.RestaurantRepository,
	sequenceRepo repository.SequenceRepository,
) *OrderService {
	return &OrderService{
		orderRepo:      orderRepo,
		productRepo:    productRepo,
		restaurantRepo: restaurantRepo,
		sequenceRepo:   sequenceRepo,
	}
}

// OrderItemInput represents an item in an order request
type OrderItemInput struct {
	ProductID uuid.UUID
	Quantity  int
}

// CreateOrderInput represents the create order input
type CreateOrderInput struct {
	IdempotencyKey string
	PaymentMode    string
	Items          []OrderItemInput
	CreatedBy      uuid.UUID
}

func (in *CreateOrderInput) validate() error {
	var fieldErrors []apperror.FieldError

	if in.IdempotencyKey == "" {
		fieldErrors = append(fieldErrors, apperror.FieldError{
			Field: "idempotency_key", Message: "idempotency key is required",
		})
	}
	if len(in.Items) == 0 {
		fieldErrors = append(fieldErrors, apperror.FieldError{
			Field: "items", Message: "at least one item is required",
		})
	}
	// Quantities are checked before any product lookup happens.
	for i, item := range in.Items {
		if item.Quantity < 1 {
			fieldErrors = append(fieldErrors, apperror.FieldError{
				Field:   fmt.Sprintf("items[%d].quantity", i),
				Message: "quantity must be a positive integer",
			})
		}
	}
	if _, err := enum.ParsePaymentMode(in.PaymentMode); err != nil {
		fieldErrors = append(fieldErrors, apperror.FieldError{
			Field: "payment_mode", Message: err.Error(),
		})
	}

	if len(fieldErrors) > 0 {
		return apperror.NewValidationError(fieldErrors)
	}
	return nil
}

// CreateOrder creates an order, or returns the previously created order
// for the same (restaurant, idempotency key). The returned bool reports
// whether a new order was persisted by this call.
//
// The sequence of store operations is: lookup by key, price items,
// resolve tax, mint invoice number, insert. A concurrent duplicate that
// wins the insert race is detected via the unique constraint and its
// order is returned instead of an error, so client retries after an
// ambiguous response are safe.
func (s *OrderService) CreateOrder(ctx context.Context, input *CreateOrderInput) (*entity.Order, bool, error) {
	restaurantID, ok := infraRepo.GetRestaurantID(ctx)
	if !ok {
		return nil, false, apperror.NewBadRequestError("Restaurant context required")
	}

	if err := input.validate(); err != nil {
		return nil, false, err
	}
	paymentMode := enum.PaymentMode(input.PaymentMode)

	// Fast path: this key was already processed.
	if existing, err := s.orderRepo.GetByIdempotencyKey(ctx, input.IdempotencyKey); err != nil {
		return nil, false, err
	} else if existing != nil {
		return existing, false, nil
	}

	restaurant, err := s.restaurantRepo.GetByID(ctx, restaurantID)
	if err != nil {
		return nil, false, err
	}
	if restaurant == nil {
		return nil, false, apperror.NewNotFoundError("Restaurant")
	}

	if !paymentMode.ValidForCountry(restaurant.Country) {
		return nil, false, apperror.NewBadRequestError(
			fmt.Sprintf("Payment mode %s is not available in %s", paymentMode, restaurant.Country))
	}
	if len(restaurant.Settings.Payment.EnabledModes) > 0 && !restaurant.Settings.Payment.Accepts(paymentMode) {
		return nil, false, apperror.NewBadRequestError(
			fmt.Sprintf("Payment mode %s is not enabled for this restaurant", paymentMode))
	}

	items, rawSubtotal, err := s.priceItems(ctx, input.Items)
	if err != nil {
		return nil, false, err
	}

	tax := ResolveTax(restaurant.Settings.Tax, rawSubtotal)

	// If the insert below fails the minted number is skipped; the counter
	// is never decremented.
	seq, err := s.sequenceRepo.Next(ctx, restaurantID)
	if err != nil {
		return nil, false, err
	}

	order := &entity.Order{
		RestaurantID:   restaurantID,
		IdempotencyKey: input.IdempotencyKey,
		InvoiceNo:      FormatInvoiceNo(seq),
		InvoiceSeq:     seq,
		Status:         enum.OrderStatusPaid,
		PaymentMode:    paymentMode,
		SubTotal:       tax.SubTotal,
		GrandTotal:     tax.GrandTotal,
		TaxEnabled:     tax.Enabled,
		TaxType:        tax.Type,
		TaxRate:        tax.Rate,
		TaxInclusive:   tax.Inclusive,
		TaxAmount:      tax.TaxAmount,
		CreatedBy:      input.CreatedBy,
		Items:          items,
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// A concurrent request with the same key won the race;
			// return its order as if this call had succeeded.
			winner, fetchErr := s.orderRepo.GetByIdempotencyKey(ctx, input.IdempotencyKey)
			if fetchErr != nil {
				return nil, false, fetchErr
			}
			if winner != nil {
				return winner, false, nil
			}
			// The conflict was on something other than the idempotency
			// key (e.g. invoice number); surface it.
			return nil, false, apperror.NewConflictError("Order conflicts with an existing record")
		}
		return nil, false, err
	}

	return order, true, nil
}

// priceItems expands (product, quantity) pairs into priced line item
// snapshots, preserving input order. Any unknown product aborts the whole
// operation.
func (s *OrderService) priceItems(ctx context.Context, inputs []OrderItemInput) ([]entity.OrderItem, int64, error) {
	productIDs := make([]uuid.UUID, len(inputs))
	for i, item := range inputs {
		productIDs[i] = item.ProductID
	}

	products, err := s.productRepo.GetByIDs(ctx, productIDs)
	if err != nil {
		return nil, 0, err
	}

	productMap := make(map[uuid.UUID]*entity.Product, len(products))
	for i := range products {
		productMap[products[i].ID] = &products[i]
	}

	var rawSubtotal int64
	items := make([]entity.OrderItem, 0, len(inputs))

	for _, input := range inputs {
		product, exists := productMap[input.ProductID]
		if !exists {
			return nil, 0, apperror.NewNotFoundError(fmt.Sprintf("Product %s", input.ProductID))
		}

		qty := int64(input.Quantity)
		lineTotal := product.SellingPrice * qty
		lineProfit := (product.SellingPrice - product.CostPrice) * qty
		rawSubtotal += lineTotal

		items = append(items, entity.OrderItem{
			ProductID:    product.ID,
			Name:         product.Name,
			Quantity:     input.Quantity,
			SellingPrice: product.SellingPrice,
			CostPrice:    product.CostPrice,
			Total:        lineTotal,
			Profit:       lineProfit,
		})
	}

	return items, rawSubtotal, nil
}

// GetOrder retrieves an order by ID
func (s *OrderService) GetOrder(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Order")
	}
	return order, nil
}

// GetOrderByInvoice retrieves an order by invoice number
func (s *OrderService) GetOrderByInvoice(ctx context.Context, invoiceNo string) (*entity.Order, error) {
	order, err := s.orderRepo.GetByInvoiceNo(ctx, invoiceNo)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Order")
	}
	return order, nil
}

// ListOrders lists orders with filtering
func (s *OrderService) ListOrders(ctx context.Context, params *repository.OrderFilterParams) (*pagination.PaginatedResult[entity.Order], error) {
	orders, total, err := s.orderRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(orders, pag), nil
}

// RequestCancel flags an order for cancellation, pending admin approval.
// Only cashiers may request; a second request while one is pending is a
// no-op returning the current order.
func (s *OrderService) RequestCancel(ctx context.Context, orderID, requesterID uuid.UUID, role enum.Role, reason string) (*entity.Order, error) {
	order, err := s.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	// Duplicate request: already pending, nothing to do.
	if order.Status == enum.OrderStatusPaid && order.CancelRequested {
		if role != enum.RoleCashier {
			return nil, apperror.NewForbiddenError("Your role is not allowed to perform this action")
		}
		return order, nil
	}

	if err := authorizeTransition(order, ActionRequestCancel, role); err != nil {
		return nil, err
	}

	rows, err := s.orderRepo.RequestCancel(ctx, orderID, requesterID, reason, time.Now())
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		// Lost a race since the read above; treat as already handled.
		return nil, apperror.NewStateConflictError("Order state changed, please refresh")
	}

	return s.GetOrder(ctx, orderID)
}

// ApproveCancel moves an order with a pending cancel request to
// CANCELLED. Admin or higher only.
func (s *OrderService) ApproveCancel(ctx context.Context, orderID, approverID uuid.UUID, role enum.Role) (*entity.Order, error) {
	order, err := s.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if err := authorizeTransition(order, ActionApproveCancel, role); err != nil {
		return nil, err
	}

	rows, err := s.orderRepo.ApproveCancel(ctx, orderID, approverID, time.Now())
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		return nil, apperror.NewStateConflictError("Order state changed, please refresh")
	}

	return s.GetOrder(ctx, orderID)
}

// RejectCancel clears a pending cancel request, leaving the order PAID.
// Admin or higher only.
func (s *OrderService) RejectCancel(ctx context.Context, orderID, approverID uuid.UUID, role enum.Role) (*entity.Order, error) {
	order, err := s.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if err := authorizeTransition(order, ActionRejectCancel, role); err != nil {
		return nil, err
	}

	rows, err := s.orderRepo.RejectCancel(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		return nil, apperror.NewStateConflictError("Order state changed, please refresh")
	}

	return s.GetOrder(ctx, orderID)
}
