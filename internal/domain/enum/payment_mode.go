package enum

import (
	"database/sql/driver"
	"fmt"
)

// PaymentMode represents how an order was paid. UPI and MADA are
// country-specific: UPI is India-only, MADA is KSA-only.
type PaymentMode string

const (
	PaymentModeCash PaymentMode = "CASH"
	PaymentModeCard PaymentMode = "CARD"
	PaymentModeUPI  PaymentMode = "UPI"
	PaymentModeMada PaymentMode = "MADA"
)

func (m PaymentMode) IsValid() bool {
	switch m {
	case PaymentModeCash, PaymentModeCard, PaymentModeUPI, PaymentModeMada:
		return true
	}
	return false
}

// ValidForCountry reports whether the mode may be used in the given country.
func (m PaymentMode) ValidForCountry(c Country) bool {
	switch m {
	case PaymentModeUPI:
		return c == CountryIndia
	case PaymentModeMada:
		return c == CountryKSA
	default:
		return m.IsValid()
	}
}

// DefaultPaymentModes returns the payment modes enabled for new
// restaurants in the given country.
func DefaultPaymentModes(c Country) []PaymentMode {
	switch c {
	case CountryIndia:
		return []PaymentMode{PaymentModeCash, PaymentModeCard, PaymentModeUPI}
	case CountryKSA:
		return []PaymentMode{PaymentModeCash, PaymentModeCard, PaymentModeMada}
	}
	return []PaymentMode{PaymentModeCash, PaymentModeCard}
}

// ParsePaymentMode parses a payment mode string, rejecting unknown values.
func ParsePaymentMode(s string) (PaymentMode, error) {
	m := PaymentMode(s)
	if !m.IsValid() {
		return "", fmt.Errorf("unknown payment mode %q", s)
	}
	return m, nil
}

func (m PaymentMode) String() string {
	return string(m)
}

func (m PaymentMode) Value() (driver.Value, error) {
	return string(m), nil
}

func (m *PaymentMode) Scan(value interface{}) error {
	switch v := value.(type) {
	case string:
		*m = PaymentMode(v)
	case []byte:
		*m = PaymentMode(v)
	}
	return nil
}
