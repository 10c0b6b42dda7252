package enum

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// OrderStatus represents the lifecycle status of an order
type OrderStatus int

const (
	OrderStatusPaid      OrderStatus = 0
	OrderStatusCancelled OrderStatus = 1
	OrderStatusRefunded  OrderStatus = 2
)

func (s OrderStatus) String() string {
	names := [...]string{"PAID", "CANCELLED", "REFUNDED"}
	if int(s) < 0 || int(s) >= len(names) {
		return "PAID"
	}
	return names[s]
}

// ParseOrderStatus parses a status name, rejecting unknown values.
func ParseOrderStatus(s string) (OrderStatus, error) {
	switch s {
	case "PAID":
		return OrderStatusPaid, nil
	case "CANCELLED":
		return OrderStatusCancelled, nil
	case "REFUNDED":
		return OrderStatusRefunded, nil
	}
	return OrderStatusPaid, fmt.Errorf("unknown order status %q", s)
}

// IsTerminal reports whether no further transitions are allowed
func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusCancelled || s == OrderStatusRefunded
}

func (s OrderStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *OrderStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		// Try unmarshaling as int
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*s = OrderStatus(i)
		return nil
	}
	switch str {
	case "PAID":
		*s = OrderStatusPaid
	case "CANCELLED":
		*s = OrderStatusCancelled
	case "REFUNDED":
		*s = OrderStatusRefunded
	}
	return nil
}

func (s OrderStatus) Value() (driver.Value, error) {
	return int64(s), nil
}

func (s *OrderStatus) Scan(value interface{}) error {
	if value == nil {
		*s = OrderStatusPaid
		return nil
	}
	switch v := value.(type) {
	case int64:
		*s = OrderStatus(v)
	case int:
		*s = OrderStatus(v)
	}
	return nil
}
