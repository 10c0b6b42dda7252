package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tablewise/pos-api/internal/domain/entity"
	"github.com/tablewise/pos-api/internal/domain/enum"
)

func TestSummarizeOrders_MultiLineOrderCountsOnce(t *testing.T) {
	orders := []entity.Order{
		{
			Status:     enum.OrderStatusPaid,
			GrandTotal: 10500,
			Items: []entity.OrderItem{
				{Quantity: 2, Profit: 600},
				{Quantity: 1, Profit: 300},
				{Quantity: 3, Profit: 150},
			},
		},
	}

	summary := SummarizeOrders(orders)

	assert.Equal(t, int64(1), summary.TotalOrders)
	assert.InDelta(t, 105.0, summary.TotalSales, 0.001)
	assert.InDelta(t, 10.5, summary.TotalProfit, 0.001)
	assert.Equal(t, int64(6), summary.TotalItemsSold)
}

func TestSummarizeOrders_ExcludesCancelledOrders(t *testing.T) {
	orders := []entity.Order{
		{
			Status:     enum.OrderStatusPaid,
			GrandTotal: 5000,
			Items:      []entity.OrderItem{{Quantity: 1, Profit: 1000}},
		},
		{
			Status:     enum.OrderStatusCancelled,
			GrandTotal: 99900,
			Items:      []entity.OrderItem{{Quantity: 9, Profit: 9000}},
		},
		{
			Status:     enum.OrderStatusRefunded,
			GrandTotal: 2000,
			Items:      []entity.OrderItem{{Quantity: 1, Profit: 500}},
		},
	}

	summary := SummarizeOrders(orders)

	assert.Equal(t, int64(1), summary.TotalOrders)
	assert.InDelta(t, 50.0, summary.TotalSales, 0.001)
	assert.InDelta(t, 10.0, summary.TotalProfit, 0.001)
	assert.Equal(t, int64(1), summary.TotalItemsSold)
}

func TestSummarizeOrders_Empty(t *testing.T) {
	summary := SummarizeOrders(nil)

	assert.Equal(t, int64(0), summary.TotalOrders)
	assert.Zero(t, summary.TotalSales)
	assert.Zero(t, summary.TotalProfit)
	assert.Equal(t, int64(0), summary.TotalItemsSold)
}

func TestSummarizeOrders_SalesFromGrandTotalNotLines(t *testing.T) {
	// Grand total already includes exclusive tax; line totals do not. The
	// sales figure must come from the order-level grand total.
	orders := []entity.Order{
		{
			Status:     enum.OrderStatusPaid,
			SubTotal:   10000,
			TaxAmount:  500,
			GrandTotal: 10500,
			Items: []entity.OrderItem{
				{Quantity: 1, Total: 4000, Profit: 1000},
				{Quantity: 2, Total: 6000, Profit: 2000},
			},
		},
	}

	summary := SummarizeOrders(orders)

	assert.InDelta(t, 105.0, summary.TotalSales, 0.001)
	assert.InDelta(t, 30.0, summary.TotalProfit, 0.001)
}
