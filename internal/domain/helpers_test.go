package domain_test

import (
	"testing"

	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/require"

	"github.com/abdidvp/orderlens/internal/domain"
)

func usd(t *testing.T) domain.Currency {
	t.Helper()
	c, err := domain.NewCurrency("USD", 2)
	require.NoError(t, err)
	return c
}

func money(t *testing.T, amount string) domain.Money {
	t.Helper()
	m, err := domain.ParseMoney(amount, usd(t))
	require.NoError(t, err)
	return m
}

func product(t *testing.T, sku, price string) domain.ProductSnapshot {
	t.Helper()
	s, err := domain.NewSku(sku)
	require.NoError(t, err)
	p, err := domain.NewProductSnapshot(s, money(t, price))
	require.NoError(t, err)
	return p
}

// counterIDs yields ULIDs with timestamps 1, 2, 3... so tests are reproducible.
func counterIDs() domain.IDSource {
	var n uint64
	return domain.IDSourceFunc(func() (ulid.ULID, error) {
		n++
		return ulid.New(n, nil)
	})
}

func orderID(t *testing.T, ms uint64) domain.OrderID {
	t.Helper()
	id, err := domain.OrderIDFrom(ulid.MustNew(ms, nil))
	require.NoError(t, err)
	return id
}

func newOrder(t *testing.T, status domain.OrderStatus) domain.Order {
	t.Helper()
	o, err := domain.New(orderID(t, 1_700_000_000_000), status, domain.WithLineIDSource(counterIDs()))
	require.NoError(t, err)
	return o
}
