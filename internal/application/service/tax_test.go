package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tablewise/pos-api/internal/domain/entity"
	"github.com/tablewise/pos-api/internal/domain/enum"
)

func TestResolveTax_InclusiveExtractsTaxFromSubtotal(t *testing.T) {
	cfg := entity.TaxConfig{
		Enabled: true,
		Type:    enum.TaxTypeVAT,
		Rate:    15,
		Pricing: enum.TaxPricingInclusive,
	}

	// 115.00 at 15% inclusive: tax share is 15.00
	result := ResolveTax(cfg, 11500)

	assert.Equal(t, int64(1500), result.TaxAmount)
	assert.Equal(t, int64(10000), result.SubTotal)
	assert.Equal(t, int64(11500), result.GrandTotal)
	assert.True(t, result.Inclusive)
	assert.Equal(t, enum.TaxTypeVAT, result.Type)
}

func TestResolveTax_ExclusiveAddsTaxOnTop(t *testing.T) {
	cfg := entity.TaxConfig{
		Enabled: true,
		Type:    enum.TaxTypeGST,
		Rate:    5,
		Pricing: enum.TaxPricingExclusive,
	}

	// 100.00 at 5% exclusive: 5.00 tax, 105.00 total
	result := ResolveTax(cfg, 10000)

	assert.Equal(t, int64(500), result.TaxAmount)
	assert.Equal(t, int64(10000), result.SubTotal)
	assert.Equal(t, int64(10500), result.GrandTotal)
	assert.False(t, result.Inclusive)
	assert.Equal(t, enum.TaxTypeGST, result.Type)
}

func TestResolveTax_Disabled(t *testing.T) {
	cfg := entity.TaxConfig{
		Enabled: false,
		Type:    enum.TaxTypeVAT,
		Rate:    15,
		Pricing: enum.TaxPricingInclusive,
	}

	result := ResolveTax(cfg, 11500)

	assert.False(t, result.Enabled)
	assert.Equal(t, int64(0), result.TaxAmount)
	assert.Equal(t, int64(11500), result.SubTotal)
	assert.Equal(t, int64(11500), result.GrandTotal)
	assert.Equal(t, enum.TaxTypeNone, result.Type)
}

func TestResolveTax_ZeroRate(t *testing.T) {
	for _, pricing := range []enum.TaxPricing{enum.TaxPricingExclusive, enum.TaxPricingInclusive} {
		cfg := entity.TaxConfig{
			Enabled: true,
			Type:    enum.TaxTypeGST,
			Rate:    0,
			Pricing: pricing,
		}

		result := ResolveTax(cfg, 10000)

		assert.Equal(t, int64(0), result.TaxAmount)
		assert.Equal(t, int64(10000), result.SubTotal)
		assert.Equal(t, int64(10000), result.GrandTotal)
	}
}

func TestResolveTax_RoundingInclusive(t *testing.T) {
	cfg := entity.TaxConfig{
		Enabled: true,
		Type:    enum.TaxTypeVAT,
		Rate:    15,
		Pricing: enum.TaxPricingInclusive,
	}

	// 99.99 inclusive at 15%: raw tax share 1304.217..., rounds to 1304.
	result := ResolveTax(cfg, 9999)

	assert.Equal(t, int64(1304), result.TaxAmount)
	assert.Equal(t, int64(8695), result.SubTotal)
	assert.Equal(t, int64(9999), result.GrandTotal)
	// Invariant: subtotal + tax reconstructs the grand total exactly.
	assert.Equal(t, result.GrandTotal, result.SubTotal+result.TaxAmount)
}

func TestResolveTax_RoundingExclusive(t *testing.T) {
	cfg := entity.TaxConfig{
		Enabled: true,
		Type:    enum.TaxTypeGST,
		Rate:    5,
		Pricing: enum.TaxPricingExclusive,
	}

	// 3.33 at 5%: 16.65 cents of tax, rounds to 17.
	result := ResolveTax(cfg, 333)

	assert.Equal(t, int64(17), result.TaxAmount)
	assert.Equal(t, int64(350), result.GrandTotal)
	assert.Equal(t, result.GrandTotal, result.SubTotal+result.TaxAmount)
}

func TestFormatInvoiceNo(t *testing.T) {
	assert.Equal(t, "INV-000001", FormatInvoiceNo(1))
	assert.Equal(t, "INV-000042", FormatInvoiceNo(42))
	assert.Equal(t, "INV-1000000", FormatInvoiceNo(1000000))
}
