package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
)

// OrderID identifies an Order aggregate. It wraps a ULID, so identifiers sort
// by creation time and carry their own creation instant.
type OrderID struct {
	value ulid.ULID
}

// NewOrderID draws a fresh identifier from src.
func NewOrderID(src IDSource) (OrderID, error) {
	id, err := src.Next()
	if err != nil {
		return OrderID{}, err
	}
	return OrderIDFrom(id)
}

// OrderIDFrom wraps an existing ULID; the zero ULID is rejected.
func OrderIDFrom(id ulid.ULID) (OrderID, error) {
	if id == (ulid.ULID{}) {
		return OrderID{}, invalidf("order id is required")
	}
	return OrderID{value: id}, nil
}

// ParseOrderID parses the 26-character ULID text form.
func ParseOrderID(text string) (OrderID, error) {
	id, err := ulid.ParseStrict(text)
	if err != nil {
		return OrderID{}, invalidf("order id %q: %v", text, err)
	}
	return OrderIDFrom(id)
}

func (id OrderID) ULID() ulid.ULID { return id.value }
func (id OrderID) IsZero() bool    { return id.value == (ulid.ULID{}) }
func (id OrderID) String() string  { return id.value.String() }

// CreationInstant decodes the millisecond timestamp embedded in the id.
func (id OrderID) CreationInstant() time.Time { return instantOf(id.value) }

// Compare orders identifiers by creation time, then by their random part.
func (id OrderID) Compare(other OrderID) int { return id.value.Compare(other.value) }

// LineID identifies a single OrderLine within its order.
type LineID struct {
	value ulid.ULID
}

func NewLineID(src IDSource) (LineID, error) {
	id, err := src.Next()
	if err != nil {
		return LineID{}, err
	}
	return LineIDFrom(id)
}

func LineIDFrom(id ulid.ULID) (LineID, error) {
	if id == (ulid.ULID{}) {
		return LineID{}, invalidf("line id is required")
	}
	return LineID{value: id}, nil
}

func ParseLineID(text string) (LineID, error) {
	id, err := ulid.ParseStrict(text)
	if err != nil {
		return LineID{}, invalidf("line id %q: %v", text, err)
	}
	return LineIDFrom(id)
}

func (id LineID) ULID() ulid.ULID            { return id.value }
func (id LineID) IsZero() bool               { return id.value == (ulid.ULID{}) }
func (id LineID) String() string             { return id.value.String() }
func (id LineID) CreationInstant() time.Time { return instantOf(id.value) }
func (id LineID) Compare(other LineID) int   { return id.value.Compare(other.value) }

func instantOf(id ulid.ULID) time.Time {
	return ulid.Time(id.Time()).UTC()
}

// DiscountID references a discount applied to a line. The zero value,
// NoDiscount, means the line carries no discount.
type DiscountID struct {
	value uuid.UUID
}

// NoDiscount marks a line without a discount.
var NoDiscount = DiscountID{}

func NewDiscountID(id uuid.UUID) (DiscountID, error) {
	if id == uuid.Nil {
		return DiscountID{}, invalidf("discount id must not be the nil UUID")
	}
	return DiscountID{value: id}, nil
}

// ParseDiscountID parses a UUID string; an empty string yields NoDiscount.
func ParseDiscountID(text string) (DiscountID, error) {
	if text == "" {
		return NoDiscount, nil
	}
	id, err := uuid.Parse(text)
	if err != nil {
		return DiscountID{}, invalidf("discount id %q: %v", text, err)
	}
	return NewDiscountID(id)
}

func (d DiscountID) UUID() uuid.UUID { return d.value }
func (d DiscountID) IsZero() bool    { return d.value == uuid.Nil }

func (d DiscountID) String() string {
	if d.IsZero() {
		return ""
	}
	return d.value.String()
}
