package enum

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// TaxType represents the tax regime applied by a restaurant
type TaxType int

const (
	TaxTypeNone TaxType = 0
	TaxTypeGST  TaxType = 1
	TaxTypeVAT  TaxType = 2
)

func (t TaxType) String() string {
	names := [...]string{"NONE", "GST", "VAT"}
	if int(t) < 0 || int(t) >= len(names) {
		return "NONE"
	}
	return names[t]
}

// ValidForCountry reports whether the regime is consistent with the
// restaurant's country. NONE is always allowed (tax opt-out).
func (t TaxType) ValidForCountry(c Country) bool {
	switch t {
	case TaxTypeGST:
		return c == CountryIndia
	case TaxTypeVAT:
		return c == CountryKSA
	default:
		return true
	}
}

// ParseTaxType parses a tax regime name, rejecting unknown values.
func ParseTaxType(s string) (TaxType, error) {
	switch s {
	case "NONE", "":
		return TaxTypeNone, nil
	case "GST":
		return TaxTypeGST, nil
	case "VAT":
		return TaxTypeVAT, nil
	}
	return TaxTypeNone, fmt.Errorf("unknown tax type %q", s)
}

func (t TaxType) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *TaxType) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*t = TaxType(i)
		return nil
	}
	switch str {
	case "NONE":
		*t = TaxTypeNone
	case "GST":
		*t = TaxTypeGST
	case "VAT":
		*t = TaxTypeVAT
	}
	return nil
}

func (t TaxType) Value() (driver.Value, error) {
	return int64(t), nil
}

func (t *TaxType) Scan(value interface{}) error {
	if value == nil {
		*t = TaxTypeNone
		return nil
	}
	switch v := value.(type) {
	case int64:
		*t = TaxType(v)
	case int:
		*t = TaxType(v)
	}
	return nil
}
