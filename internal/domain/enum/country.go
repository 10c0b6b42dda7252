package enum

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// Country represents the country a restaurant operates in. It is fixed at
// onboarding and drives the default tax regime and allowed payment modes.
type Country string

const (
	CountryIndia Country = "INDIA"
	CountryKSA   Country = "KSA"
)

// Countries lists all supported countries.
var Countries = []Country{CountryIndia, CountryKSA}

func (c Country) IsValid() bool {
	return c == CountryIndia || c == CountryKSA
}

func (c Country) String() string {
	return string(c)
}

// ParseCountry parses a country string, rejecting unknown values.
func ParseCountry(s string) (Country, error) {
	c := Country(s)
	if !c.IsValid() {
		return "", fmt.Errorf("unsupported country %q", s)
	}
	return c, nil
}

func (c Country) Value() (driver.Value, error) {
	return string(c), nil
}

func (c *Country) Scan(value interface{}) error {
	switch v := value.(type) {
	case string:
		*c = Country(v)
	case []byte:
		*c = Country(v)
	}
	return nil
}

func (c *Country) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	*c = Country(str)
	return nil
}
