// Package sales answers aggregate questions about collections of orders.
//
// Every query first reduces its input to structurally distinct orders: two
// orders are duplicates only when id, status, version and the key and
// quantity of every line match, in order. Line ids are not compared: a
// re-submitted order carries freshly allocated line ids. This is stricter
// than domain.Order.Equal, which compares order ids alone, so different
// revisions under one id are kept apart.
package sales

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/abdidvp/orderlens/internal/domain"
)

// Distinct drops structural duplicates, keeping the first occurrence.
func Distinct(orders []domain.Order) []domain.Order {
	seen := make(map[string]bool, len(orders))
	out := make([]domain.Order, 0, len(orders))
	for _, o := range orders {
		fp := orderFingerprint(o)
		if seen[fp] {
			continue
		}
		seen[fp] = true
		out = append(out, o)
	}
	return out
}

// CountOrdersByStatus counts distinct orders in status.
func CountOrdersByStatus(orders []domain.Order, status domain.OrderStatus) int {
	n := 0
	for _, o := range Distinct(orders) {
		if o.Status() == status {
			n++
		}
	}
	return n
}

// CalculateTotalRevenue sums the gross totals of distinct orders. Orders
// without lines are skipped.
func CalculateTotalRevenue(orders []domain.Order) (decimal.Decimal, error) {
	sum := decimal.Zero
	for _, o := range Distinct(orders) {
		if o.IsEmpty() {
			continue
		}
		total, err := o.TotalBeforeDiscount()
		if err != nil {
			return decimal.Zero, err
		}
		sum = sum.Add(total.Amount())
	}
	return sum, nil
}

// DistinctProductsSold lists every product snapshot found on the lines of
// distinct orders, in first-seen order.
func DistinctProductsSold(orders []domain.Order) []domain.ProductSnapshot {
	seenLines := make(map[string]bool)
	seenProducts := make(map[string]bool)
	var out []domain.ProductSnapshot
	for _, o := range Distinct(orders) {
		for _, l := range o.Lines() {
			lf := lineFingerprint(l)
			if seenLines[lf] {
				continue
			}
			seenLines[lf] = true

			p := l.Key().Product()
			pk := p.String()
			if seenProducts[pk] {
				continue
			}
			seenProducts[pk] = true
			out = append(out, p)
		}
	}
	return out
}

// GroupOrderIDsByStatus partitions distinct orders by status. Statuses with
// no orders have no entry.
func GroupOrderIDsByStatus(orders []domain.Order) map[domain.OrderStatus][]domain.OrderID {
	groups := make(map[domain.OrderStatus][]domain.OrderID)
	for _, o := range Distinct(orders) {
		groups[o.Status()] = append(groups[o.Status()], o.ID())
	}
	return groups
}

// CalculateRevenueByStatus sums gross totals per status. Unlike
// CalculateTotalRevenue it does not skip empty orders: one distinct order
// without lines fails the whole call with domain.ErrEmptyOrder.
func CalculateRevenueByStatus(orders []domain.Order) (map[domain.OrderStatus]decimal.Decimal, error) {
	revenue := make(map[domain.OrderStatus]decimal.Decimal)
	for _, o := range Distinct(orders) {
		total, err := o.TotalBeforeDiscount()
		if err != nil {
			return nil, err
		}
		revenue[o.Status()] = revenue[o.Status()].Add(total.Amount())
	}
	return revenue, nil
}

func orderFingerprint(o domain.Order) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s|%s|%d", o.ID(), o.Status(), o.Version())
	for _, l := range o.Lines() {
		b.WriteString("|")
		b.WriteString(lineFingerprint(l))
	}
	return b.String()
}

func lineFingerprint(l domain.OrderLine) string {
	return fmt.Sprintf("%s:%d", l.Key(), l.Quantity())
}
