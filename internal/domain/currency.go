package domain

// Currency pairs an ISO 4217 code with the number of fraction digits money
// amounts in that currency are stored at. The zero value means "no currency".
type Currency struct {
	code   string
	digits int32
}

// NewCurrency validates code and digits. Digit metadata normally comes from a
// CurrencyRegistry rather than being typed by hand.
func NewCurrency(code string, digits int) (Currency, error) {
	if !isISOCode(code) {
		return Currency{}, invalidf("currency code %q must be three uppercase letters", code)
	}
	if digits < 0 || digits > 18 {
		return Currency{}, invalidf("currency %s: fraction digits %d out of range", code, digits)
	}
	return Currency{code: code, digits: int32(digits)}, nil
}

func (c Currency) Code() string   { return c.code }
func (c Currency) Digits() int32  { return c.digits }
func (c Currency) IsZero() bool   { return c.code == "" }
func (c Currency) String() string { return c.code }

// IsISOCode reports whether s looks like an ISO 4217 alphabetic code.
func IsISOCode(s string) bool { return isISOCode(s) }

func isISOCode(s string) bool {
	if len(s) != 3 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < 'A' || s[i] > 'Z' {
			return false
		}
	}
	return true
}
