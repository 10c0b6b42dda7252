package repository

import (
	"context"
	"time"

	"github.com/tablewise/pos-api/internal/domain/enum"
	domainRepo "github.com/tablewise/pos-api/internal/domain/repository"
	"gorm.io/gorm"
)

type analyticsRepository struct {
	db *gorm.DB
}

// NewAnalyticsRepository creates a new analytics repository
func NewAnalyticsRepository(db *gorm.DB) domainRepo.AnalyticsRepository {
	return &analyticsRepository{db: db}
}

func (r *analyticsRepository) GetSalesSummary(ctx context.Context, start, end time.Time) (*domainRepo.SalesSummaryResult, error) {
	restaurantID, ok := GetRestaurantID(ctx)
	if !ok {
		return &domainRepo.SalesSummaryResult{ByPaymentMode: map[enum.PaymentMode]float64{}}, nil
	}

	var result struct {
		OrderCount int64
		TotalSales float64
		CashSales  float64
		CardSales  float64
		UpiSales   float64
		MadaSales  float64
	}

	err := r.db.WithContext(ctx).Raw(`
		SELECT
			COUNT(*) AS order_count,
			COALESCE(SUM(grand_total), 0) / 100.0 AS total_sales,
			COALESCE(SUM(grand_total) FILTER (WHERE payment_mode = 'CASH'), 0) / 100.0 AS cash_sales,
			COALESCE(SUM(grand_total) FILTER (WHERE payment_mode = 'CARD'), 0) / 100.0 AS card_sales,
			COALESCE(SUM(grand_total) FILTER (WHERE payment_mode = 'UPI'), 0) / 100.0 AS upi_sales,
			COALESCE(SUM(grand_total) FILTER (WHERE payment_mode = 'MADA'), 0) / 100.0 AS mada_sales
		FROM orders
		WHERE restaurant_id = ?
		AND status = ?
		AND deleted_at IS NULL
		AND created_at >= ? AND created_at < ?
	`, restaurantID, enum.OrderStatusPaid, start, end).Scan(&result).Error
	if err != nil {
		return nil, err
	}

	byMode := map[enum.PaymentMode]float64{
		enum.PaymentModeCash: result.CashSales,
		enum.PaymentModeCard: result.CardSales,
		enum.PaymentModeUPI:  result.UpiSales,
		enum.PaymentModeMada: result.MadaSales,
	}

	return &domainRepo.SalesSummaryResult{
		OrderCount:    result.OrderCount,
		TotalSales:    result.TotalSales,
		ByPaymentMode: byMode,
	}, nil
}
