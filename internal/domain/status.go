package domain

import "strings"

// OrderStatus is the lifecycle stage of an order.
type OrderStatus string

const (
	StatusNew      OrderStatus = "NEW"
	StatusPaid     OrderStatus = "PAID"
	StatusShipped  OrderStatus = "SHIPPED"
	StatusReceived OrderStatus = "RECEIVED"
)

// ValidStatuses enumerates all statuses in lifecycle order.
var ValidStatuses = []OrderStatus{
	StatusNew,
	StatusPaid,
	StatusShipped,
	StatusReceived,
}

// ParseOrderStatus accepts any letter case.
func ParseOrderStatus(s string) (OrderStatus, error) {
	st := OrderStatus(strings.ToUpper(strings.TrimSpace(s)))
	if !st.Valid() {
		return "", invalidf("unknown order status %q (valid: NEW, PAID, SHIPPED, RECEIVED)", s)
	}
	return st, nil
}

func (s OrderStatus) Valid() bool {
	for _, v := range ValidStatuses {
		if s == v {
			return true
		}
	}
	return false
}

func (s OrderStatus) String() string { return string(s) }
