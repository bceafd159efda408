package domain

import "math"

// LineKey decides whether two additions refer to the same order line:
// lines merge when their product snapshot and discount are equal.
type LineKey struct {
	product  ProductSnapshot
	discount DiscountID
}

// NewLineKey builds a key; pass NoDiscount for an undiscounted line.
func NewLineKey(product ProductSnapshot, discount DiscountID) (LineKey, error) {
	if product.IsZero() {
		return LineKey{}, invalidf("product snapshot is required")
	}
	return LineKey{product: product, discount: discount}, nil
}

func (k LineKey) Product() ProductSnapshot { return k.product }
func (k LineKey) Discount() DiscountID     { return k.discount }
func (k LineKey) HasDiscount() bool        { return !k.discount.IsZero() }

func (k LineKey) Equal(other LineKey) bool {
	return k.product.Equal(other.product) && k.discount == other.discount
}

// String is the canonical form used to index lines by key.
func (k LineKey) String() string {
	if k.HasDiscount() {
		return k.product.String() + "#" + k.discount.String()
	}
	return k.product.String()
}

// OrderLine is a quantity of one LineKey within an order. Quantity is always
// positive; a line that would drop to zero is removed instead.
type OrderLine struct {
	id       LineID
	key      LineKey
	quantity int
}

func NewOrderLine(id LineID, key LineKey, quantity int) (OrderLine, error) {
	if id.IsZero() {
		return OrderLine{}, invalidf("line id is required")
	}
	if key.product.IsZero() {
		return OrderLine{}, invalidf("line key is required")
	}
	if quantity <= 0 {
		return OrderLine{}, invalidf("quantity must be positive, got %d", quantity)
	}
	return OrderLine{id: id, key: key, quantity: quantity}, nil
}

func (l OrderLine) ID() LineID    { return l.id }
func (l OrderLine) Key() LineKey  { return l.key }
func (l OrderLine) Quantity() int { return l.quantity }

// IncreaseBy returns a copy with quantity raised by delta.
func (l OrderLine) IncreaseBy(delta int) (OrderLine, error) {
	if delta <= 0 {
		return OrderLine{}, invalidf("delta must be positive, got %d", delta)
	}
	if l.quantity > math.MaxInt-delta {
		return OrderLine{}, invalidf("quantity %d plus %d overflows", l.quantity, delta)
	}
	return NewOrderLine(l.id, l.key, l.quantity+delta)
}

// WithQuantity returns a copy holding exactly quantity.
func (l OrderLine) WithQuantity(quantity int) (OrderLine, error) {
	return NewOrderLine(l.id, l.key, quantity)
}

// TotalBeforeDiscount is unit price times quantity; discounts are not priced.
func (l OrderLine) TotalBeforeDiscount() (Money, error) {
	return l.key.product.unitPrice.Multiply(l.quantity)
}

func (l OrderLine) Equal(other OrderLine) bool {
	return l.id == other.id && l.quantity == other.quantity && l.key.Equal(other.key)
}
