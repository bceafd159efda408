package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Money is an amount in a single currency. The amount is always held at the
// currency's fraction-digit scale, rounded half away from zero.
type Money struct {
	amount   decimal.Decimal
	currency Currency
}

// NewMoney rounds amount to cur's scale.
func NewMoney(amount decimal.Decimal, cur Currency) (Money, error) {
	if cur.IsZero() {
		return Money{}, invalidf("money requires a currency")
	}
	return Money{amount: amount.Round(cur.digits), currency: cur}, nil
}

// ParseMoney parses a decimal string such as "10.005" into Money.
func ParseMoney(text string, cur Currency) (Money, error) {
	d, err := decimal.NewFromString(text)
	if err != nil {
		return Money{}, invalidf("amount %q is not a decimal", text)
	}
	return NewMoney(d, cur)
}

// ZeroMoney returns a zero amount in cur.
func ZeroMoney(cur Currency) Money {
	return Money{amount: decimal.Zero.Round(cur.digits), currency: cur}
}

func (m Money) Amount() decimal.Decimal { return m.amount }
func (m Money) Currency() Currency      { return m.currency }
func (m Money) IsZero() bool            { return m.currency.IsZero() }
func (m Money) IsNegative() bool        { return m.amount.IsNegative() }

// Add sums two amounts of the same currency.
func (m Money) Add(other Money) (Money, error) {
	if err := m.requireSameCurrency(other); err != nil {
		return Money{}, err
	}
	return NewMoney(m.amount.Add(other.amount), m.currency)
}

// Multiply scales the amount by a non-negative factor.
func (m Money) Multiply(factor int) (Money, error) {
	if factor < 0 {
		return Money{}, invalidf("factor must be >= 0, got %d", factor)
	}
	return NewMoney(m.amount.Mul(decimal.NewFromInt(int64(factor))), m.currency)
}

// Equal compares amount and currency.
func (m Money) Equal(other Money) bool {
	return m.currency == other.currency && m.amount.Equal(other.amount)
}

// Text renders the amount at the currency scale without the code.
func (m Money) Text() string {
	return m.amount.StringFixed(m.currency.digits)
}

func (m Money) String() string {
	return fmt.Sprintf("%s %s", m.Text(), m.currency.code)
}

func (m Money) requireSameCurrency(other Money) error {
	if m.currency != other.currency {
		return invalidf("currency mismatch: %s and %s", m.currency.code, other.currency.code)
	}
	return nil
}
