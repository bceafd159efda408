package domain

import (
	"fmt"
	"time"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Order is the aggregate root of a sale. It is immutable: Add and SetQuantity
// return a successor value and leave the receiver untouched, so an Order can
// be shared between goroutines without locking.
//
// Version is carried for an external persistence layer doing optimistic
// concurrency checks; the aggregate never changes it.
type Order struct {
	id      OrderID
	status  OrderStatus
	version int64
	lines   *orderedmap.OrderedMap[LineID, OrderLine]
	primary map[string]LineID
	lineIDs IDSource
}

// Option configures an Order at construction.
type Option func(*Order)

// WithLineIDSource sets the source Add draws new line identifiers from.
func WithLineIDSource(src IDSource) Option {
	return func(o *Order) {
		if src != nil {
			o.lineIDs = src
		}
	}
}

// New creates an order without lines.
func New(id OrderID, status OrderStatus, opts ...Option) (Order, error) {
	return Restore(id, status, 0, nil, opts...)
}

// Restore rebuilds an order from previously recorded state. Lines keep the
// given order; two lines with the same id or the same key are rejected.
func Restore(id OrderID, status OrderStatus, version int64, lines []OrderLine, opts ...Option) (Order, error) {
	if id.IsZero() {
		return Order{}, invalidf("order id is required")
	}
	if !status.Valid() {
		return Order{}, invalidf("unknown order status %q", status)
	}

	m := orderedmap.New[LineID, OrderLine]()
	primary := make(map[string]LineID, len(lines))
	for _, l := range lines {
		if l.id.IsZero() {
			return Order{}, invalidf("order %s: line without id", id)
		}
		if _, exists := m.Get(l.id); exists {
			return Order{}, fmt.Errorf("%w: line id %s", ErrDuplicateLine, l.id)
		}
		k := l.key.String()
		if _, exists := primary[k]; exists {
			return Order{}, fmt.Errorf("%w: key %s", ErrDuplicateLine, k)
		}
		m.Set(l.id, l)
		primary[k] = l.id
	}

	o := Order{id: id, status: status, version: version, lines: m, primary: primary}
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.validate(); err != nil {
		return Order{}, err
	}
	return o, nil
}

func (o Order) ID() OrderID         { return o.id }
func (o Order) Status() OrderStatus { return o.status }
func (o Order) Version() int64      { return o.version }
func (o Order) IsEmpty() bool       { return o.LineCount() == 0 }

func (o Order) LineCount() int {
	if o.lines == nil {
		return 0
	}
	return o.lines.Len()
}

// Lines returns a copy of the lines in insertion order.
func (o Order) Lines() []OrderLine {
	out := make([]OrderLine, 0, o.LineCount())
	if o.lines == nil {
		return out
	}
	for pair := o.lines.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, pair.Value)
	}
	return out
}

// Line finds the line registered for the product and discount.
func (o Order) Line(product ProductSnapshot, discount DiscountID) (OrderLine, error) {
	key, err := NewLineKey(product, discount)
	if err != nil {
		return OrderLine{}, err
	}
	lineID, ok := o.primary[key.String()]
	if !ok {
		return OrderLine{}, fmt.Errorf("%w: %s", ErrLineNotFound, key)
	}
	line, _ := o.lines.Get(lineID)
	return line, nil
}

// CreationInstant is the timestamp embedded in the order id.
func (o Order) CreationInstant() time.Time { return o.id.CreationInstant() }

// Equal reports whether both values are revisions of the same aggregate.
// Line contents, status and version are ignored; compare Version to detect
// state changes.
func (o Order) Equal(other Order) bool { return o.id == other.id }

// Add puts quantity units of product on the order. A line with the same
// product snapshot and discount absorbs the quantity; otherwise a new line
// is appended.
func (o Order) Add(product ProductSnapshot, quantity int, discount DiscountID) (Order, error) {
	if quantity <= 0 {
		return Order{}, invalidf("quantity must be positive, got %d", quantity)
	}
	key, err := NewLineKey(product, discount)
	if err != nil {
		return Order{}, err
	}

	lines, primary := o.cloneLines()
	if lineID, ok := primary[key.String()]; ok {
		line, _ := lines.Get(lineID)
		merged, err := line.IncreaseBy(quantity)
		if err != nil {
			return Order{}, err
		}
		lines.Set(lineID, merged)
		return o.derive(lines, primary)
	}

	lineID, err := NewLineID(o.lineIDSource())
	if err != nil {
		return Order{}, fmt.Errorf("allocating line id: %w", err)
	}
	if _, exists := lines.Get(lineID); exists {
		return Order{}, fmt.Errorf("%w: line id %s", ErrDuplicateLine, lineID)
	}
	line, err := NewOrderLine(lineID, key, quantity)
	if err != nil {
		return Order{}, err
	}
	lines.Set(lineID, line)
	primary[key.String()] = lineID
	return o.derive(lines, primary)
}

// SetQuantity replaces the quantity of an existing line. A quantity of zero
// or less removes the line. The successor is validated like any other order,
// so the last line of a shipped order cannot be removed.
func (o Order) SetQuantity(product ProductSnapshot, quantity int, discount DiscountID) (Order, error) {
	key, err := NewLineKey(product, discount)
	if err != nil {
		return Order{}, err
	}
	k := key.String()
	lineID, ok := o.primary[k]
	if !ok {
		return Order{}, fmt.Errorf("%w: %s", ErrLineNotFound, key)
	}

	lines, primary := o.cloneLines()
	if quantity <= 0 {
		lines.Delete(lineID)
		delete(primary, k)
		return o.derive(lines, primary)
	}

	line, _ := lines.Get(lineID)
	updated, err := line.WithQuantity(quantity)
	if err != nil {
		return Order{}, err
	}
	lines.Set(lineID, updated)
	return o.derive(lines, primary)
}

// TotalBeforeDiscount sums the line totals in line order. Orders without
// lines have no total and return ErrEmptyOrder.
func (o Order) TotalBeforeDiscount() (Money, error) {
	if o.IsEmpty() {
		return Money{}, fmt.Errorf("order %s: %w", o.id, ErrEmptyOrder)
	}
	var total Money
	for pair := o.lines.Oldest(); pair != nil; pair = pair.Next() {
		lineTotal, err := pair.Value.TotalBeforeDiscount()
		if err != nil {
			return Money{}, err
		}
		if total.IsZero() {
			total = lineTotal
			continue
		}
		if total, err = total.Add(lineTotal); err != nil {
			return Money{}, fmt.Errorf("order %s: %w", o.id, err)
		}
	}
	return total, nil
}

func (o Order) validate() error {
	if o.id.IsZero() {
		return invalidf("order id is required")
	}
	if o.status == StatusShipped && o.IsEmpty() {
		return fmt.Errorf("order %s: %w", o.id, ErrShippedWithoutLines)
	}
	return nil
}

func (o Order) derive(lines *orderedmap.OrderedMap[LineID, OrderLine], primary map[string]LineID) (Order, error) {
	next := Order{
		id:      o.id,
		status:  o.status,
		version: o.version,
		lines:   lines,
		primary: primary,
		lineIDs: o.lineIDs,
	}
	if err := next.validate(); err != nil {
		return Order{}, err
	}
	return next, nil
}

func (o Order) cloneLines() (*orderedmap.OrderedMap[LineID, OrderLine], map[string]LineID) {
	lines := orderedmap.New[LineID, OrderLine]()
	primary := make(map[string]LineID, len(o.primary)+1)
	if o.lines != nil {
		for pair := o.lines.Oldest(); pair != nil; pair = pair.Next() {
			lines.Set(pair.Key, pair.Value)
		}
	}
	for k, v := range o.primary {
		primary[k] = v
	}
	return lines, primary
}

func (o Order) lineIDSource() IDSource {
	if o.lineIDs == nil {
		return DefaultIDSource
	}
	return o.lineIDs
}
