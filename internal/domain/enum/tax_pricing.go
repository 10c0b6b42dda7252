package enum

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// TaxPricing represents whether listed prices already include tax
type TaxPricing int

const (
	TaxPricingExclusive TaxPricing = 0
	TaxPricingInclusive TaxPricing = 1
)

func (p TaxPricing) String() string {
	names := [...]string{"EXCLUSIVE", "INCLUSIVE"}
	if int(p) < 0 || int(p) >= len(names) {
		return "EXCLUSIVE"
	}
	return names[p]
}

// ParseTaxPricing parses a pricing mode name, rejecting unknown values.
func ParseTaxPricing(s string) (TaxPricing, error) {
	switch s {
	case "EXCLUSIVE", "":
		return TaxPricingExclusive, nil
	case "INCLUSIVE":
		return TaxPricingInclusive, nil
	}
	return TaxPricingExclusive, fmt.Errorf("unknown tax pricing %q", s)
}

func (p TaxPricing) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.String())
}

func (p *TaxPricing) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*p = TaxPricing(i)
		return nil
	}
	switch str {
	case "EXCLUSIVE":
		*p = TaxPricingExclusive
	case "INCLUSIVE":
		*p = TaxPricingInclusive
	}
	return nil
}

func (p TaxPricing) Value() (driver.Value, error) {
	return int64(p), nil
}

func (p *TaxPricing) Scan(value interface{}) error {
	if value == nil {
		*p = TaxPricingExclusive
		return nil
	}
	switch v := value.(type) {
	case int64:
		*p = TaxPricing(v)
	case int:
		*p = TaxPricing(v)
	}
	return nil
}
