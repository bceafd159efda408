package domain

import "fmt"

// Log modes accepted in .orderlens.yaml.
const (
	LogDevelopment = "development"
	LogProduction  = "production"
	LogOff         = "off"
)

// ValidLogModes enumerates all recognized log modes.
var ValidLogModes = []string{LogDevelopment, LogProduction, LogOff}

// DefaultCurrencyCode is used when neither the batch nor the config names one.
const DefaultCurrencyCode = "USD"

// ProjectConfig holds configuration loaded from .orderlens.yaml.
type ProjectConfig struct {
	Currency string        `yaml:"currency" json:"currency,omitempty"`
	Statuses []OrderStatus `yaml:"statuses" json:"statuses,omitempty"`
	Log      string        `yaml:"log"      json:"log,omitempty"`
}

// DefaultConfig reports every status in USD with logging off.
func DefaultConfig() ProjectConfig {
	return ProjectConfig{Currency: DefaultCurrencyCode, Log: LogOff}
}

// ReportStatuses returns the statuses a report shows, in lifecycle order.
func (c ProjectConfig) ReportStatuses() []OrderStatus {
	if len(c.Statuses) == 0 {
		return ValidStatuses
	}
	var out []OrderStatus
	for _, s := range ValidStatuses {
		if c.IncludesStatus(s) {
			out = append(out, s)
		}
	}
	return out
}

// IncludesStatus reports whether s is shown; an empty list shows everything.
func (c ProjectConfig) IncludesStatus(s OrderStatus) bool {
	if len(c.Statuses) == 0 {
		return true
	}
	for _, v := range c.Statuses {
		if v == s {
			return true
		}
	}
	return false
}

// Validate checks the config for invalid values and returns a descriptive error.
func (c ProjectConfig) Validate() error {
	if c.Currency != "" && !isISOCode(c.Currency) {
		return fmt.Errorf("currency %q must be an ISO 4217 code such as USD", c.Currency)
	}

	seen := make(map[OrderStatus]bool, len(c.Statuses))
	for _, s := range c.Statuses {
		if !s.Valid() {
			return fmt.Errorf("unknown status %q in statuses (valid: NEW, PAID, SHIPPED, RECEIVED)", s)
		}
		if seen[s] {
			return fmt.Errorf("status %q listed twice in statuses", s)
		}
		seen[s] = true
	}

	if c.Log != "" {
		valid := false
		for _, m := range ValidLogModes {
			if c.Log == m {
				valid = true
				break
			}
		}
		if !valid {
			return fmt.Errorf("unknown log mode %q (valid: development, production, off)", c.Log)
		}
	}

	return nil
}
