package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/tablewise/pos-api/internal/domain/entity"
	"github.com/tablewise/pos-api/internal/domain/enum"
	"github.com/tablewise/pos-api/internal/domain/repository"
	infraRepo "github.com/tablewise/pos-api/internal/infrastructure/repository"
	"gorm.io/gorm"
)

// MockProductRepository is a mock implementation of ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) Create(ctx context.Context, product *entity.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Product), args.Error(1)
}

func (m *MockProductRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.Product, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Product), args.Error(1)
}

func (m *MockProductRepository) Update(ctx context.Context, product *entity.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockProductRepository) List(ctx context.Context, params *repository.ProductFilterParams) ([]entity.Product, int64, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]entity.Product), args.Get(1).(int64), args.Error(2)
}

// MockRestaurantRepository is a mock implementation of RestaurantRepository
type MockRestaurantRepository struct {
	mock.Mock
}

func (m *MockRestaurantRepository) Onboard(ctx context.Context, restaurant *entity.Restaurant, admin *entity.User) error {
	args := m.Called(ctx, restaurant, admin)
	return args.Error(0)
}

func (m *MockRestaurantRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Restaurant, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Restaurant), args.Error(1)
}

func (m *MockRestaurantRepository) Update(ctx context.Context, restaurant *entity.Restaurant) error {
	args := m.Called(ctx, restaurant)
	return args.Error(0)
}

func (m *MockRestaurantRepository) UpdateSettings(ctx context.Context, id uuid.UUID, settings entity.RestaurantSettings) error {
	args := m.Called(ctx, id, settings)
	return args.Error(0)
}

func (m *MockRestaurantRepository) List(ctx context.Context) ([]entity.Restaurant, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Restaurant), args.Error(1)
}

// fakeOrderStore is an in-memory OrderRepository with the same guard
// semantics as the real one: unique (restaurant, idempotency key) pairs
// and conditional lifecycle updates reporting rows affected. Safe for
// concurrent use.
type fakeOrderStore struct {
	mu     sync.Mutex
	orders map[uuid.UUID]*entity.Order
}

func newFakeOrderStore() *fakeOrderStore {
	return &fakeOrderStore{orders: make(map[uuid.UUID]*entity.Order)}
}

func (s *fakeOrderStore) Create(ctx context.Context, order *entity.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.orders {
		if existing.RestaurantID == order.RestaurantID && existing.IdempotencyKey == order.IdempotencyKey {
			return gorm.ErrDuplicatedKey
		}
		if existing.RestaurantID == order.RestaurantID && existing.InvoiceNo == order.InvoiceNo {
			return gorm.ErrDuplicatedKey
		}
	}

	if order.ID == uuid.Nil {
		order.ID = uuid.New()
	}
	order.CreatedAt = time.Now()
	stored := *order
	s.orders[order.ID] = &stored
	return nil
}

func (s *fakeOrderStore) GetByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	order, ok := s.orders[id]
	if !ok {
		return nil, nil
	}
	copied := *order
	return &copied, nil
}

func (s *fakeOrderStore) GetByInvoiceNo(ctx context.Context, invoiceNo string) (*entity.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	restaurantID, _ := infraRepo.GetRestaurantID(ctx)
	for _, order := range s.orders {
		if order.RestaurantID == restaurantID && order.InvoiceNo == invoiceNo {
			copied := *order
			return &copied, nil
		}
	}
	return nil, nil
}

func (s *fakeOrderStore) GetByIdempotencyKey(ctx context.Context, key string) (*entity.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	restaurantID, _ := infraRepo.GetRestaurantID(ctx)
	for _, order := range s.orders {
		if order.RestaurantID == restaurantID && order.IdempotencyKey == key {
			copied := *order
			return &copied, nil
		}
	}
	return nil, nil
}

func (s *fakeOrderStore) List(ctx context.Context, params *repository.OrderFilterParams) ([]entity.Order, int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	restaurantID, _ := infraRepo.GetRestaurantID(ctx)
	var result []entity.Order
	for _, order := range s.orders {
		if order.RestaurantID == restaurantID {
			result = append(result, *order)
		}
	}
	return result, int64(len(result)), nil
}

func (s *fakeOrderStore) FindByDateRange(ctx context.Context, start, end time.Time) ([]entity.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	restaurantID, _ := infraRepo.GetRestaurantID(ctx)
	var result []entity.Order
	for _, order := range s.orders {
		if order.RestaurantID != restaurantID {
			continue
		}
		if order.CreatedAt.Before(start) || !order.CreatedAt.Before(end) {
			continue
		}
		result = append(result, *order)
	}
	return result, nil
}

func (s *fakeOrderStore) RequestCancel(ctx context.Context, id, requestedBy uuid.UUID, reason string, at time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	order, ok := s.orders[id]
	if !ok || order.Status != enum.OrderStatusPaid || order.CancelRequested {
		return 0, nil
	}
	order.CancelRequested = true
	order.CancelRequestedBy = &requestedBy
	order.CancelRequestedAt = &at
	order.CancelReason = reason
	return 1, nil
}

func (s *fakeOrderStore) ApproveCancel(ctx context.Context, id, approvedBy uuid.UUID, at time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	order, ok := s.orders[id]
	if !ok || order.Status != enum.OrderStatusPaid || !order.CancelRequested {
		return 0, nil
	}
	order.Status = enum.OrderStatusCancelled
	order.CancelRequested = false
	order.CancelledBy = &approvedBy
	order.CancelledAt = &at
	return 1, nil
}

func (s *fakeOrderStore) RejectCancel(ctx context.Context, id uuid.UUID) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	order, ok := s.orders[id]
	if !ok || order.Status != enum.OrderStatusPaid || !order.CancelRequested {
		return 0, nil
	}
	order.CancelRequested = false
	order.CancelRequestedBy = nil
	order.CancelRequestedAt = nil
	order.CancelReason = ""
	return 1, nil
}

func (s *fakeOrderStore) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.orders)
}

// fakeSequenceRepo mints monotonically increasing per-restaurant counters
type fakeSequenceRepo struct {
	mu       sync.Mutex
	counters map[uuid.UUID]int64
}

func newFakeSequenceRepo() *fakeSequenceRepo {
	return &fakeSequenceRepo{counters: make(map[uuid.UUID]int64)}
}

func (s *fakeSequenceRepo) Next(ctx context.Context, restaurantID uuid.UUID) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.counters[restaurantID]++
	return s.counters[restaurantID], nil
}

func (s *fakeSequenceRepo) current(restaurantID uuid.UUID) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.counters[restaurantID]
}

var _ repository.OrderRepository = (*fakeOrderStore)(nil)
var _ repository.SequenceRepository = (*fakeSequenceRepo)(nil)
var _ repository.ProductRepository = (*MockProductRepository)(nil)
var _ repository.RestaurantRepository = (*MockRestaurantRepository)(nil)

// testProduct builds a product with prices in cents
func testProduct(restaurantID uuid.UUID, name string, sellingPrice, costPrice int64) entity.Product {
	return entity.Product{
		ID:           uuid.New(),
		RestaurantID: restaurantID,
		Name:         name,
		SellingPrice: sellingPrice,
		CostPrice:    costPrice,
		IsActive:     true,
	}
}

// testRestaurant builds an active restaurant with country defaults
func testRestaurant(country enum.Country) *entity.Restaurant {
	return &entity.Restaurant{
		ID:       uuid.New(),
		Name:     fmt.Sprintf("Test %s", country),
		Country:  country,
		IsActive: true,
		Settings: entity.DefaultSettingsForCountry(country),
	}
}
