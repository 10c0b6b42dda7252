package service

import (
	"math"

	"github.com/tablewise/pos-api/internal/domain/entity"
	"github.com/tablewise/pos-api/internal/domain/enum"
)

// TaxResult is the outcome of resolving a restaurant's tax configuration
// against a raw items subtotal. All amounts are in cents. The snapshot
// fields are persisted on the order and never recomputed.
type TaxResult struct {
	SubTotal   int64
	TaxAmount  int64
	GrandTotal int64

	Enabled   bool
	Type      enum.TaxType
	Rate      float64
	Inclusive bool
}

// ResolveTax computes the tax amount for an order.
//
// Exclusive pricing adds tax on top of the raw subtotal. Inclusive
// pricing means the listed prices already contain tax, so the tax share
// is extracted out of the raw subtotal and the grand total stays equal to
// the sum of line totals.
func ResolveTax(cfg entity.TaxConfig, rawSubtotal int64) TaxResult {
	if !cfg.Enabled || cfg.Type == enum.TaxTypeNone {
		return TaxResult{
			SubTotal:   rawSubtotal,
			TaxAmount:  0,
			GrandTotal: rawSubtotal,
			Enabled:    false,
			Type:       enum.TaxTypeNone,
		}
	}

	result := TaxResult{
		Enabled: true,
		Type:    cfg.Type,
		Rate:    cfg.Rate,
	}

	if cfg.Pricing == enum.TaxPricingInclusive {
		// rate/(100+rate) of the raw subtotal is tax; safe for rate = 0.
		tax := int64(math.Round(float64(rawSubtotal) * cfg.Rate / (100 + cfg.Rate)))
		result.Inclusive = true
		result.TaxAmount = tax
		result.SubTotal = rawSubtotal - tax
		result.GrandTotal = rawSubtotal
		return result
	}

	tax := int64(math.Round(float64(rawSubtotal) * cfg.Rate / 100))
	result.TaxAmount = tax
	result.SubTotal = rawSubtotal
	result.GrandTotal = rawSubtotal + tax
	return result
}
