package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/tablewise/pos-api/internal/domain/repository"
	infraRepo "github.com/tablewise/pos-api/internal/infrastructure/repository"
	"github.com/tablewise/pos-api/pkg/apperror"
	"github.com/tablewise/pos-api/pkg/invoice"
)

// InvoiceService renders printable invoices from stored order snapshots
type InvoiceService struct {
	orderRepo      repository.OrderRepository
	restaurantRepo repository.RestaurantRepository
	renderer       *invoice.Renderer
}

// NewInvoiceService creates a new invoice service
func NewInvoiceService(orderRepo repository.OrderRepository, restaurantRepo repository.RestaurantRepository) *InvoiceService {
	return &InvoiceService{
		orderRepo:      orderRepo,
		restaurantRepo: restaurantRepo,
		renderer:       invoice.NewRenderer(),
	}
}

// RenderInvoice returns the printable HTML invoice for an order
func (s *InvoiceService) RenderInvoice(ctx context.Context, orderID uuid.UUID) ([]byte, error) {
	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Order")
	}

	restaurantID, ok := infraRepo.GetRestaurantID(ctx)
	if !ok {
		restaurantID = order.RestaurantID
	}
	restaurant, err := s.restaurantRepo.GetByID(ctx, restaurantID)
	if err != nil {
		return nil, err
	}
	if restaurant == nil {
		return nil, apperror.NewNotFoundError("Restaurant")
	}

	return s.renderer.Render(order, restaurant)
}
