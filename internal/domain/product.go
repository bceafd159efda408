package domain

// ProductSnapshot captures product data at the moment a line was added.
// Later catalog changes never reach lines that already hold a snapshot.
type ProductSnapshot struct {
	sku       Sku
	unitPrice Money
}

func NewProductSnapshot(sku Sku, unitPrice Money) (ProductSnapshot, error) {
	if sku.IsZero() {
		return ProductSnapshot{}, invalidf("sku is required")
	}
	if unitPrice.IsZero() {
		return ProductSnapshot{}, invalidf("unit price is required")
	}
	if unitPrice.IsNegative() {
		return ProductSnapshot{}, invalidf("unit price cannot be negative: %s", unitPrice)
	}
	return ProductSnapshot{sku: sku, unitPrice: unitPrice}, nil
}

func (p ProductSnapshot) Sku() Sku         { return p.sku }
func (p ProductSnapshot) UnitPrice() Money { return p.unitPrice }
func (p ProductSnapshot) IsZero() bool     { return p.sku.IsZero() }

func (p ProductSnapshot) Equal(other ProductSnapshot) bool {
	return p.sku == other.sku && p.unitPrice.Equal(other.unitPrice)
}

// String is canonical: equal snapshots render identically.
func (p ProductSnapshot) String() string {
	return p.sku.value + "@" + p.unitPrice.String()
}
