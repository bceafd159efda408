package domain_test

import (
	"math"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abdidvp/orderlens/internal/domain"
)

func TestNewSku_Normalizes(t *testing.T) {
	s, err := domain.NewSku("  p-1 ")
	require.NoError(t, err)
	assert.Equal(t, "P-1", s.String())
}

func TestNewSku_RejectsMalformed(t *testing.T) {
	for _, raw := range []string{"", "A", "-AB", "AB CD", "P/1"} {
		_, err := domain.NewSku(raw)
		assert.ErrorIs(t, err, domain.ErrInvalidArgument, "sku %q", raw)
	}
}

func TestNewProductSnapshot_Validation(t *testing.T) {
	sku, err := domain.NewSku("P-1")
	require.NoError(t, err)

	_, err = domain.NewProductSnapshot(domain.Sku{}, money(t, "1"))
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)

	_, err = domain.NewProductSnapshot(sku, domain.Money{})
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)

	_, err = domain.NewProductSnapshot(sku, money(t, "-0.01"))
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)

	free, err := domain.NewProductSnapshot(sku, money(t, "0"))
	require.NoError(t, err)
	assert.Equal(t, "P-1@0.00 USD", free.String())
}

func TestProductSnapshot_Equal(t *testing.T) {
	assert.True(t, product(t, "P-2", "900").Equal(product(t, "p-2", "900.00")))
	assert.False(t, product(t, "P-2", "900").Equal(product(t, "P-2", "901")))
	assert.False(t, product(t, "P-2", "900").Equal(product(t, "P-3", "900")))
}

func TestNewOrderLine_RequiresPositiveQuantity(t *testing.T) {
	key, err := domain.NewLineKey(product(t, "P-1", "10"), domain.NoDiscount)
	require.NoError(t, err)
	lineID, err := domain.NewLineID(counterIDs())
	require.NoError(t, err)

	_, err = domain.NewOrderLine(lineID, key, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)

	_, err = domain.NewOrderLine(domain.LineID{}, key, 1)
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)

	line, err := domain.NewOrderLine(lineID, key, 2)
	require.NoError(t, err)

	_, err = line.IncreaseBy(0)
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
	_, err = line.WithQuantity(-3)
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)

	bigger, err := line.IncreaseBy(3)
	require.NoError(t, err)
	assert.Equal(t, 5, bigger.Quantity())
	assert.Equal(t, 2, line.Quantity())
	assert.Equal(t, line.ID(), bigger.ID())
}

func TestOrderLine_IncreaseByRejectsOverflow(t *testing.T) {
	key, err := domain.NewLineKey(product(t, "P-1", "10"), domain.NoDiscount)
	require.NoError(t, err)
	lineID, err := domain.NewLineID(counterIDs())
	require.NoError(t, err)
	line, err := domain.NewOrderLine(lineID, key, math.MaxInt)
	require.NoError(t, err)

	_, err = line.IncreaseBy(1)
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
	assert.Contains(t, err.Error(), "overflows")
	assert.NotContains(t, err.Error(), "must be positive")
}

func TestOrderLine_TotalBeforeDiscount(t *testing.T) {
	key, err := domain.NewLineKey(product(t, "P-3", "7.50"), domain.NoDiscount)
	require.NoError(t, err)
	lineID, err := domain.NewLineID(counterIDs())
	require.NoError(t, err)
	line, err := domain.NewOrderLine(lineID, key, 2)
	require.NoError(t, err)

	total, err := line.TotalBeforeDiscount()
	require.NoError(t, err)
	assert.Equal(t, "15.00 USD", total.String())
}

func TestLineKey_DiscountDistinguishes(t *testing.T) {
	p := product(t, "P-1", "10")
	discount, err := domain.NewDiscountID(uuid.New())
	require.NoError(t, err)

	plain, err := domain.NewLineKey(p, domain.NoDiscount)
	require.NoError(t, err)
	discounted, err := domain.NewLineKey(p, discount)
	require.NoError(t, err)

	assert.False(t, plain.HasDiscount())
	assert.True(t, discounted.HasDiscount())
	assert.False(t, plain.Equal(discounted))
	assert.NotEqual(t, plain.String(), discounted.String())

	_, err = domain.NewLineKey(domain.ProductSnapshot{}, domain.NoDiscount)
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestOrderID_CreationInstant(t *testing.T) {
	at := time.Date(2026, 1, 2, 3, 4, 5, 6_789_000, time.UTC)
	id, err := domain.OrderIDFrom(ulid.MustNew(ulid.Timestamp(at), nil))
	require.NoError(t, err)
	assert.Equal(t, at.Truncate(time.Millisecond), id.CreationInstant())
}

func TestOrderID_ParseAndCompare(t *testing.T) {
	a := orderID(t, 1)
	b := orderID(t, 2)
	assert.Equal(t, -1, a.Compare(b))
	assert.Equal(t, 1, b.Compare(a))

	parsed, err := domain.ParseOrderID(a.String())
	require.NoError(t, err)
	assert.Equal(t, a, parsed)

	_, err = domain.ParseOrderID("not-a-ulid")
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)

	_, err = domain.OrderIDFrom(ulid.ULID{})
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestNewOrderID_FromSource(t *testing.T) {
	src := counterIDs()
	first, err := domain.NewOrderID(src)
	require.NoError(t, err)
	second, err := domain.NewOrderID(src)
	require.NoError(t, err)
	assert.Equal(t, -1, first.Compare(second))
}

func TestParseDiscountID(t *testing.T) {
	none, err := domain.ParseDiscountID("")
	require.NoError(t, err)
	assert.Equal(t, domain.NoDiscount, none)
	assert.Empty(t, none.String())

	_, err = domain.ParseDiscountID(uuid.Nil.String())
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)

	_, err = domain.ParseDiscountID("nope")
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)

	raw := "6f1c2a8e-3b4d-4c5e-9f60-718293a4b5c6"
	d, err := domain.ParseDiscountID(raw)
	require.NoError(t, err)
	assert.Equal(t, raw, d.String())
}

func TestParseOrderStatus(t *testing.T) {
	st, err := domain.ParseOrderStatus(" shipped ")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusShipped, st)

	_, err = domain.ParseOrderStatus("LOST")
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}
