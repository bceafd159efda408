package domain

import "github.com/oklog/ulid/v2"

// IDSource hands out unique, time-ordered identifiers whose creation instant
// can be decoded later.
type IDSource interface {
	Next() (ulid.ULID, error)
}

// IDSourceFunc adapts a function to IDSource.
type IDSourceFunc func() (ulid.ULID, error)

func (f IDSourceFunc) Next() (ulid.ULID, error) { return f() }

// DefaultIDSource is the process-wide monotonic ULID generator.
var DefaultIDSource IDSource = IDSourceFunc(func() (ulid.ULID, error) {
	return ulid.Make(), nil
})

// CurrencyRegistry resolves ISO 4217 codes to currency metadata.
type CurrencyRegistry interface {
	Lookup(code string) (Currency, error)
}

// ConfigLoader loads .orderlens.yaml from a directory.
type ConfigLoader interface {
	Load(dir string) (ProjectConfig, error)
}

// BatchLoader reads a batch file and replays it into orders.
type BatchLoader interface {
	Load(path string, cfg ProjectConfig) ([]Order, error)
}
