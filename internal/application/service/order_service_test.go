package service

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/tablewise/pos-api/internal/domain/entity"
	"github.com/tablewise/pos-api/internal/domain/enum"
	infraRepo "github.com/tablewise/pos-api/internal/infrastructure/repository"
	"github.com/tablewise/pos-api/pkg/apperror"
)

type orderServiceFixture struct {
	service     *OrderService
	orderStore  *fakeOrderStore
	sequences   *fakeSequenceRepo
	products    *MockProductRepository
	restaurants *MockRestaurantRepository
	restaurant  *entity.Restaurant
	ctx         context.Context
}

func newOrderServiceFixture(t *testing.T, country enum.Country) *orderServiceFixture {
	t.Helper()

	orderStore := newFakeOrderStore()
	sequences := newFakeSequenceRepo()
	products := new(MockProductRepository)
	restaurants := new(MockRestaurantRepository)
	restaurant := testRestaurant(country)

	restaurants.On("GetByID", mock.Anything, restaurant.ID).Return(restaurant, nil)

	return &orderServiceFixture{
		service:     NewOrderService(orderStore, products, restaurants, sequences),
		orderStore:  orderStore,
		sequences:   sequences,
		products:    products,
		restaurants: restaurants,
		restaurant:  restaurant,
		ctx:         infraRepo.WithRestaurant(context.Background(), restaurant.ID),
	}
}

func (f *orderServiceFixture) stubProducts(products ...entity.Product) {
	f.products.On("GetByIDs", mock.Anything, mock.Anything).Return(products, nil)
}

func TestCreateOrder_ComputesTotalsAndMintsInvoice(t *testing.T) {
	f := newOrderServiceFixture(t, enum.CountryIndia)
	coffee := testProduct(f.restaurant.ID, "Coffee", 250, 100)
	cake := testProduct(f.restaurant.ID, "Cake", 500, 200)
	f.stubProducts(coffee, cake)

	order, created, err := f.service.CreateOrder(f.ctx, &CreateOrderInput{
		IdempotencyKey: "key-1",
		PaymentMode:    "CASH",
		Items: []OrderItemInput{
			{ProductID: coffee.ID, Quantity: 2},
			{ProductID: cake.ID, Quantity: 1},
		},
		CreatedBy: uuid.New(),
	})

	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, enum.OrderStatusPaid, order.Status)
	assert.Equal(t, "INV-000001", order.InvoiceNo)
	assert.Equal(t, int64(1), order.InvoiceSeq)

	// India defaults: GST 5% exclusive on 10.00
	assert.Equal(t, int64(1000), order.SubTotal)
	assert.Equal(t, int64(50), order.TaxAmount)
	assert.Equal(t, int64(1050), order.GrandTotal)
	assert.False(t, order.TaxInclusive)
	assert.Equal(t, enum.TaxTypeGST, order.TaxType)

	require.Len(t, order.Items, 2)
	assert.Equal(t, "Coffee", order.Items[0].Name)
	assert.Equal(t, int64(500), order.Items[0].Total)
	assert.Equal(t, int64(300), order.Items[0].Profit)
	assert.Equal(t, "Cake", order.Items[1].Name)
	assert.Equal(t, int64(300), order.Items[1].Profit)
}

func TestCreateOrder_InclusiveTaxKeepsGrandTotal(t *testing.T) {
	f := newOrderServiceFixture(t, enum.CountryKSA)
	shawarma := testProduct(f.restaurant.ID, "Shawarma", 11500, 4000)
	f.stubProducts(shawarma)

	order, created, err := f.service.CreateOrder(f.ctx, &CreateOrderInput{
		IdempotencyKey: "key-1",
		PaymentMode:    "MADA",
		Items:          []OrderItemInput{{ProductID: shawarma.ID, Quantity: 1}},
		CreatedBy:      uuid.New(),
	})

	require.NoError(t, err)
	assert.True(t, created)

	// KSA defaults: VAT 15% inclusive; 115.00 stays the grand total
	assert.Equal(t, int64(11500), order.GrandTotal)
	assert.Equal(t, int64(1500), order.TaxAmount)
	assert.Equal(t, int64(10000), order.SubTotal)
	assert.True(t, order.TaxInclusive)
	assert.Equal(t, enum.TaxTypeVAT, order.TaxType)
}

func TestCreateOrder_SameKeyReturnsExistingOrder(t *testing.T) {
	f := newOrderServiceFixture(t, enum.CountryIndia)
	coffee := testProduct(f.restaurant.ID, "Coffee", 250, 100)
	f.stubProducts(coffee)

	input := &CreateOrderInput{
		IdempotencyKey: "retry-me",
		PaymentMode:    "CASH",
		Items:          []OrderItemInput{{ProductID: coffee.ID, Quantity: 1}},
		CreatedBy:      uuid.New(),
	}

	first, created, err := f.service.CreateOrder(f.ctx, input)
	require.NoError(t, err)
	assert.True(t, created)

	second, created, err := f.service.CreateOrder(f.ctx, input)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, first.InvoiceNo, second.InvoiceNo)

	assert.Equal(t, 1, f.orderStore.count())
}

func TestCreateOrder_ConcurrentSameKeyPersistsOnce(t *testing.T) {
	f := newOrderServiceFixture(t, enum.CountryIndia)
	coffee := testProduct(f.restaurant.ID, "Coffee", 250, 100)
	f.stubProducts(coffee)

	const workers = 16
	var wg sync.WaitGroup
	ids := make([]uuid.UUID, workers)
	createdFlags := make([]bool, workers)
	errs := make([]error, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			order, created, err := f.service.CreateOrder(f.ctx, &CreateOrderInput{
				IdempotencyKey: "same-key",
				PaymentMode:    "CASH",
				Items:          []OrderItemInput{{ProductID: coffee.ID, Quantity: 1}},
				CreatedBy:      uuid.New(),
			})
			errs[i] = err
			if err == nil {
				ids[i] = order.ID
				createdFlags[i] = created
			}
		}(i)
	}
	wg.Wait()

	createdCount := 0
	for i := 0; i < workers; i++ {
		require.NoError(t, errs[i])
		assert.Equal(t, ids[0], ids[i])
		if createdFlags[i] {
			createdCount++
		}
	}
	assert.Equal(t, 1, createdCount)
	assert.Equal(t, 1, f.orderStore.count())
}

func TestCreateOrder_DistinctKeysGetMonotonicInvoices(t *testing.T) {
	f := newOrderServiceFixture(t, enum.CountryIndia)
	coffee := testProduct(f.restaurant.ID, "Coffee", 250, 100)
	f.stubProducts(coffee)

	seen := make(map[string]bool)
	for i := 1; i <= 5; i++ {
		order, created, err := f.service.CreateOrder(f.ctx, &CreateOrderInput{
			IdempotencyKey: fmt.Sprintf("key-%d", i),
			PaymentMode:    "CASH",
			Items:          []OrderItemInput{{ProductID: coffee.ID, Quantity: 1}},
			CreatedBy:      uuid.New(),
		})
		require.NoError(t, err)
		assert.True(t, created)
		assert.Equal(t, int64(i), order.InvoiceSeq)
		assert.False(t, seen[order.InvoiceNo])
		seen[order.InvoiceNo] = true
	}
}

func TestCreateOrder_UnknownProductPersistsNothing(t *testing.T) {
	f := newOrderServiceFixture(t, enum.CountryIndia)
	coffee := testProduct(f.restaurant.ID, "Coffee", 250, 100)
	// Only coffee exists; the second product lookup comes back empty.
	f.stubProducts(coffee)

	_, _, err := f.service.CreateOrder(f.ctx, &CreateOrderInput{
		IdempotencyKey: "key-1",
		PaymentMode:    "CASH",
		Items: []OrderItemInput{
			{ProductID: coffee.ID, Quantity: 1},
			{ProductID: uuid.New(), Quantity: 1},
		},
		CreatedBy: uuid.New(),
	})

	require.Error(t, err)
	appErr := apperror.GetAppError(err)
	assert.Equal(t, 404, appErr.Code)

	assert.Equal(t, 0, f.orderStore.count())
	// Pricing failed before a sequence number was minted.
	assert.Equal(t, int64(0), f.sequences.current(f.restaurant.ID))
}

func TestCreateOrder_RejectsBadQuantityBeforeLookup(t *testing.T) {
	f := newOrderServiceFixture(t, enum.CountryIndia)

	_, _, err := f.service.CreateOrder(f.ctx, &CreateOrderInput{
		IdempotencyKey: "key-1",
		PaymentMode:    "CASH",
		Items:          []OrderItemInput{{ProductID: uuid.New(), Quantity: 0}},
		CreatedBy:      uuid.New(),
	})

	require.Error(t, err)
	appErr := apperror.GetAppError(err)
	assert.Equal(t, 422, appErr.Code)
	f.products.AssertNotCalled(t, "GetByIDs", mock.Anything, mock.Anything)
}

func TestCreateOrder_RejectsMissingIdempotencyKey(t *testing.T) {
	f := newOrderServiceFixture(t, enum.CountryIndia)

	_, _, err := f.service.CreateOrder(f.ctx, &CreateOrderInput{
		PaymentMode: "CASH",
		Items:       []OrderItemInput{{ProductID: uuid.New(), Quantity: 1}},
		CreatedBy:   uuid.New(),
	})

	require.Error(t, err)
	assert.Equal(t, 422, apperror.GetAppError(err).Code)
}

func TestCreateOrder_RejectsPaymentModeForCountry(t *testing.T) {
	f := newOrderServiceFixture(t, enum.CountryKSA)

	// UPI is India-only.
	_, _, err := f.service.CreateOrder(f.ctx, &CreateOrderInput{
		IdempotencyKey: "key-1",
		PaymentMode:    "UPI",
		Items:          []OrderItemInput{{ProductID: uuid.New(), Quantity: 1}},
		CreatedBy:      uuid.New(),
	})

	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)
	assert.Equal(t, 0, f.orderStore.count())
}

func createPaidOrder(t *testing.T, f *orderServiceFixture, key string) *entity.Order {
	t.Helper()
	coffee := testProduct(f.restaurant.ID, "Coffee", 250, 100)
	f.stubProducts(coffee)

	order, _, err := f.service.CreateOrder(f.ctx, &CreateOrderInput{
		IdempotencyKey: key,
		PaymentMode:    "CASH",
		Items:          []OrderItemInput{{ProductID: coffee.ID, Quantity: 1}},
		CreatedBy:      uuid.New(),
	})
	require.NoError(t, err)
	return order
}

func TestRequestCancel_CashierFlagsOrder(t *testing.T) {
	f := newOrderServiceFixture(t, enum.CountryIndia)
	order := createPaidOrder(t, f, "key-1")
	cashier := uuid.New()

	updated, err := f.service.RequestCancel(f.ctx, order.ID, cashier, enum.RoleCashier, "wrong table")

	require.NoError(t, err)
	assert.Equal(t, enum.OrderStatusPaid, updated.Status)
	assert.True(t, updated.CancelRequested)
	assert.Equal(t, cashier, *updated.CancelRequestedBy)
	assert.Equal(t, "wrong table", updated.CancelReason)
}

func TestRequestCancel_AdminForbidden(t *testing.T) {
	f := newOrderServiceFixture(t, enum.CountryIndia)
	order := createPaidOrder(t, f, "key-1")

	_, err := f.service.RequestCancel(f.ctx, order.ID, uuid.New(), enum.RoleAdmin, "nope")

	require.Error(t, err)
	assert.Equal(t, 403, apperror.GetAppError(err).Code)
}

func TestRequestCancel_DuplicateRequestIsNoOp(t *testing.T) {
	f := newOrderServiceFixture(t, enum.CountryIndia)
	order := createPaidOrder(t, f, "key-1")
	cashier := uuid.New()

	first, err := f.service.RequestCancel(f.ctx, order.ID, cashier, enum.RoleCashier, "wrong table")
	require.NoError(t, err)

	second, err := f.service.RequestCancel(f.ctx, order.ID, uuid.New(), enum.RoleCashier, "again")
	require.NoError(t, err)

	// First request wins; the retry changes nothing.
	assert.Equal(t, first.CancelRequestedBy, second.CancelRequestedBy)
	assert.Equal(t, "wrong table", second.CancelReason)
	assert.True(t, second.CancelRequested)
}

func TestApproveCancel_MovesOrderToCancelled(t *testing.T) {
	f := newOrderServiceFixture(t, enum.CountryIndia)
	order := createPaidOrder(t, f, "key-1")
	admin := uuid.New()

	_, err := f.service.RequestCancel(f.ctx, order.ID, uuid.New(), enum.RoleCashier, "wrong table")
	require.NoError(t, err)

	cancelled, err := f.service.ApproveCancel(f.ctx, order.ID, admin, enum.RoleAdmin)

	require.NoError(t, err)
	assert.Equal(t, enum.OrderStatusCancelled, cancelled.Status)
	assert.False(t, cancelled.CancelRequested)
	assert.Equal(t, admin, *cancelled.CancelledBy)
	assert.NotNil(t, cancelled.CancelledAt)
	// The invoice number is retained on cancelled orders.
	assert.Equal(t, order.InvoiceNo, cancelled.InvoiceNo)
}

func TestApproveCancel_CashierForbidden(t *testing.T) {
	f := newOrderServiceFixture(t, enum.CountryIndia)
	order := createPaidOrder(t, f, "key-1")

	_, err := f.service.RequestCancel(f.ctx, order.ID, uuid.New(), enum.RoleCashier, "wrong table")
	require.NoError(t, err)

	_, err = f.service.ApproveCancel(f.ctx, order.ID, uuid.New(), enum.RoleCashier)

	require.Error(t, err)
	assert.Equal(t, 403, apperror.GetAppError(err).Code)
}

func TestApproveCancel_WithoutPendingRequestConflicts(t *testing.T) {
	f := newOrderServiceFixture(t, enum.CountryIndia)
	order := createPaidOrder(t, f, "key-1")

	_, err := f.service.ApproveCancel(f.ctx, order.ID, uuid.New(), enum.RoleAdmin)

	require.Error(t, err)
	assert.Equal(t, 409, apperror.GetAppError(err).Code)
}

func TestRejectCancel_ClearsRequestAndKeepsPaid(t *testing.T) {
	f := newOrderServiceFixture(t, enum.CountryIndia)
	order := createPaidOrder(t, f, "key-1")

	_, err := f.service.RequestCancel(f.ctx, order.ID, uuid.New(), enum.RoleCashier, "wrong table")
	require.NoError(t, err)

	kept, err := f.service.RejectCancel(f.ctx, order.ID, uuid.New(), enum.RoleAdmin)

	require.NoError(t, err)
	assert.Equal(t, enum.OrderStatusPaid, kept.Status)
	assert.False(t, kept.CancelRequested)
	assert.Nil(t, kept.CancelRequestedBy)

	// The cycle can start over.
	again, err := f.service.RequestCancel(f.ctx, order.ID, uuid.New(), enum.RoleCashier, "second thoughts")
	require.NoError(t, err)
	assert.True(t, again.CancelRequested)
}

func TestRequestCancel_CancelledOrderConflicts(t *testing.T) {
	f := newOrderServiceFixture(t, enum.CountryIndia)
	order := createPaidOrder(t, f, "key-1")

	_, err := f.service.RequestCancel(f.ctx, order.ID, uuid.New(), enum.RoleCashier, "wrong table")
	require.NoError(t, err)
	_, err = f.service.ApproveCancel(f.ctx, order.ID, uuid.New(), enum.RoleAdmin)
	require.NoError(t, err)

	_, err = f.service.RequestCancel(f.ctx, order.ID, uuid.New(), enum.RoleCashier, "too late")

	require.Error(t, err)
	assert.Equal(t, 409, apperror.GetAppError(err).Code)
}

func TestCreateOrder_RequiresRestaurantContext(t *testing.T) {
	f := newOrderServiceFixture(t, enum.CountryIndia)

	_, _, err := f.service.CreateOrder(context.Background(), &CreateOrderInput{
		IdempotencyKey: "key-1",
		PaymentMode:    "CASH",
		Items:          []OrderItemInput{{ProductID: uuid.New(), Quantity: 1}},
	})

	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)
}
