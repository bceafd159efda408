// Package currency resolves currency metadata from CLDR data shipped with
// golang.org/x/text.
package currency

import (
	"fmt"
	"strings"
	"sync"

	"golang.org/x/text/currency"

	"github.com/abdidvp/orderlens/internal/domain"
)

// Registry implements domain.CurrencyRegistry. Lookups are cached.
type Registry struct {
	mu    sync.RWMutex
	cache map[string]domain.Currency
}

// New creates an empty Registry.
func New() *Registry {
	return &Registry{cache: make(map[string]domain.Currency)}
}

// Lookup returns the currency for an ISO 4217 code with its standard number
// of fraction digits (USD 2, JPY 0, BHD 3).
func (r *Registry) Lookup(code string) (domain.Currency, error) {
	code = strings.ToUpper(strings.TrimSpace(code))

	r.mu.RLock()
	cur, ok := r.cache[code]
	r.mu.RUnlock()
	if ok {
		return cur, nil
	}

	if !domain.IsISOCode(code) {
		return domain.Currency{}, fmt.Errorf("%w: unknown currency %q", domain.ErrInvalidArgument, code)
	}
	unit, err := currency.ParseISO(code)
	if err != nil {
		return domain.Currency{}, fmt.Errorf("%w: unknown currency %q", domain.ErrInvalidArgument, code)
	}
	scale, _ := currency.Standard.Rounding(unit)
	cur, err = domain.NewCurrency(unit.String(), scale)
	if err != nil {
		return domain.Currency{}, err
	}

	r.mu.Lock()
	r.cache[code] = cur
	r.mu.Unlock()
	return cur, nil
}
