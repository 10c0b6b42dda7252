package service

import (
	"context"
	"time"

	"github.com/tablewise/pos-api/internal/domain/entity"
	"github.com/tablewise/pos-api/internal/domain/enum"
	"github.com/tablewise/pos-api/internal/domain/repository"
)

// DashboardService derives sales and profit summaries from stored orders
type DashboardService struct {
	orderRepo     repository.OrderRepository
	analyticsRepo repository.AnalyticsRepository
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(orderRepo repository.OrderRepository, analyticsRepo repository.AnalyticsRepository) *DashboardService {
	return &DashboardService{
		orderRepo:     orderRepo,
		analyticsRepo: analyticsRepo,
	}
}

// DashboardSummary represents aggregate figures for a time window.
// Monetary values are decimals (not cents) since this is display data.
type DashboardSummary struct {
	TotalOrders    int64   `json:"total_orders"`
	TotalSales     float64 `json:"total_sales"`
	TotalProfit    float64 `json:"total_profit"`
	TotalItemsSold int64   `json:"total_items_sold"`
}

// SummarizeOrders folds a set of orders into a DashboardSummary. Each
// order contributes exactly once to the order count and sales figure no
// matter how many line items it has; profit and item counts come from the
// lines. Cancelled and refunded orders are excluded.
func SummarizeOrders(orders []entity.Order) DashboardSummary {
	var summary DashboardSummary

	for _, order := range orders {
		if order.Status != enum.OrderStatusPaid {
			continue
		}

		summary.TotalOrders++
		summary.TotalSales += float64(order.GrandTotal) / 100

		for _, item := range order.Items {
			summary.TotalProfit += float64(item.Profit) / 100
			summary.TotalItemsSold += int64(item.Quantity)
		}
	}

	return summary
}

// GetTodayDashboard returns today's sales/profit/item figures
func (s *DashboardService) GetTodayDashboard(ctx context.Context) (*DashboardSummary, error) {
	now := time.Now()
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	end := start.Add(24 * time.Hour)

	return s.GetRangeSummary(ctx, start, end)
}

// GetRangeSummary returns sales/profit/item figures for [start, end)
func (s *DashboardService) GetRangeSummary(ctx context.Context, start, end time.Time) (*DashboardSummary, error) {
	orders, err := s.orderRepo.FindByDateRange(ctx, start, end)
	if err != nil {
		return nil, err
	}

	summary := SummarizeOrders(orders)
	return &summary, nil
}

// GetSalesSummary returns order count, gross sales and the payment-mode
// breakdown for [start, end)
func (s *DashboardService) GetSalesSummary(ctx context.Context, start, end time.Time) (*repository.SalesSummaryResult, error) {
	return s.analyticsRepo.GetSalesSummary(ctx, start, end)
}
