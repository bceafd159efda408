package domain_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abdidvp/orderlens/internal/domain"
)

func TestNewMoney_RoundsHalfUpToCurrencyScale(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"10.005", "10.01"},
		{"10.004", "10.00"},
		{"-10.005", "-10.01"},
		{"7.5", "7.50"},
		{"0", "0.00"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			m := money(t, tt.in)
			assert.Equal(t, tt.want, m.Text())
			assert.True(t, m.Amount().Equal(decimal.RequireFromString(tt.want)))
		})
	}
}

func TestNewMoney_ZeroDigitCurrency(t *testing.T) {
	jpy, err := domain.NewCurrency("JPY", 0)
	require.NoError(t, err)

	m, err := domain.ParseMoney("1200.5", jpy)
	require.NoError(t, err)
	assert.Equal(t, "1201", m.Text())
	assert.Equal(t, "1201 JPY", m.String())
}

func TestNewMoney_RequiresCurrency(t *testing.T) {
	_, err := domain.NewMoney(decimal.NewFromInt(1), domain.Currency{})
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestParseMoney_RejectsGarbage(t *testing.T) {
	_, err := domain.ParseMoney("ten", usd(t))
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestMoney_Add(t *testing.T) {
	sum, err := money(t, "10.00").Add(money(t, "0.01"))
	require.NoError(t, err)
	assert.Equal(t, "10.01 USD", sum.String())
}

func TestMoney_AddRejectsCurrencyMismatch(t *testing.T) {
	eur, err := domain.NewCurrency("EUR", 2)
	require.NoError(t, err)
	tenEUR, err := domain.ParseMoney("10", eur)
	require.NoError(t, err)

	_, err = money(t, "10.00").Add(tenEUR)
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
	assert.Contains(t, err.Error(), "currency mismatch")
}

func TestMoney_Multiply(t *testing.T) {
	m, err := money(t, "7.50").Multiply(2)
	require.NoError(t, err)
	assert.Equal(t, "15.00", m.Text())

	zero, err := money(t, "7.50").Multiply(0)
	require.NoError(t, err)
	assert.True(t, zero.Amount().IsZero())

	_, err = money(t, "7.50").Multiply(-1)
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestMoney_Equal(t *testing.T) {
	assert.True(t, money(t, "900").Equal(money(t, "900.00")))
	assert.False(t, money(t, "900").Equal(money(t, "900.01")))
	assert.True(t, domain.ZeroMoney(usd(t)).Equal(money(t, "0")))
}

func TestNewCurrency_Validation(t *testing.T) {
	_, err := domain.NewCurrency("usd", 2)
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)

	_, err = domain.NewCurrency("USD", -1)
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)

	c, err := domain.NewCurrency("BHD", 3)
	require.NoError(t, err)
	assert.Equal(t, int32(3), c.Digits())
	assert.Equal(t, "BHD", c.Code())
}
