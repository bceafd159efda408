package domain

import "time"

// Report is the result of running every sales query over one order batch.
type Report struct {
	Source               string          `json:"source"`
	GeneratedAt          time.Time       `json:"generated_at"`
	Currency             string          `json:"currency,omitempty"`
	Orders               int             `json:"orders"`
	DistinctOrders       int             `json:"distinct_orders"`
	Statuses             []StatusSummary `json:"statuses"`
	TotalRevenue         string          `json:"total_revenue"`
	RevenueByStatus      []StatusRevenue `json:"revenue_by_status,omitempty"`
	RevenueByStatusError string          `json:"revenue_by_status_error,omitempty"`
	Products             []ProductRow    `json:"products"`
}

// StatusSummary counts the distinct orders in one status.
type StatusSummary struct {
	Status   OrderStatus `json:"status"`
	Count    int         `json:"count"`
	OrderIDs []string    `json:"order_ids,omitempty"`
}

type StatusRevenue struct {
	Status  OrderStatus `json:"status"`
	Revenue string      `json:"revenue"`
}

// ProductRow is one distinct product snapshot sold.
type ProductRow struct {
	SKU       string `json:"sku"`
	UnitPrice string `json:"unit_price"`
	Currency  string `json:"currency"`
}

// OrderSummary is a flattened view of a single order for display.
type OrderSummary struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	Status    string    `json:"status"`
	Version   int64     `json:"version"`
	Lines     []LineRow `json:"lines"`
	Total     string    `json:"total,omitempty"`
	Empty     bool      `json:"empty,omitempty"`
}

type LineRow struct {
	ID        string `json:"id"`
	SKU       string `json:"sku"`
	UnitPrice string `json:"unit_price"`
	Currency  string `json:"currency"`
	Discount  string `json:"discount,omitempty"`
	Quantity  int    `json:"quantity"`
	Total     string `json:"total"`
}

// Count returns the count for status, or zero when the report omits it.
func (r Report) Count(status OrderStatus) int {
	for _, s := range r.Statuses {
		if s.Status == status {
			return s.Count
		}
	}
	return 0
}
