package domain

import (
	"regexp"
	"strings"
)

var skuPattern = regexp.MustCompile(`^[A-Z0-9][A-Z0-9_-]{1,63}$`)

// Sku is a normalized stock keeping unit code.
type Sku struct {
	value string
}

// NewSku trims and uppercases raw before validating it.
func NewSku(raw string) (Sku, error) {
	v := strings.ToUpper(strings.TrimSpace(raw))
	if !skuPattern.MatchString(v) {
		return Sku{}, invalidf("invalid SKU format %q", raw)
	}
	return Sku{value: v}, nil
}

func (s Sku) IsZero() bool   { return s.value == "" }
func (s Sku) String() string { return s.value }
