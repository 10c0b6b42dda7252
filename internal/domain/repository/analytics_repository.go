package repository

import (
	"context"
	"time"

	"github.com/tablewise/pos-api/internal/domain/enum"
)

// SalesSummaryResult represents aggregate sales for a time window
type SalesSummaryResult struct {
	OrderCount    int64                        `json:"order_count"`
	TotalSales    float64                      `json:"total_sales"`
	ByPaymentMode map[enum.PaymentMode]float64 `json:"by_payment_mode"`
}

// AnalyticsRepository defines interface for analytics/aggregation queries
type AnalyticsRepository interface {
	// GetSalesSummary returns order count, gross sales and a breakdown by
	// payment mode for PAID orders created in [start, end).
	GetSalesSummary(ctx context.Context, start, end time.Time) (*SalesSummaryResult, error)
}
