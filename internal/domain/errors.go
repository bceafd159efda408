package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the domain. Callers match them with errors.Is;
// the refined invariant errors also match ErrInvariantViolation.
var (
	ErrInvalidArgument    = errors.New("invalid argument")
	ErrInvariantViolation = errors.New("invariant violation")
	ErrLineNotFound       = errors.New("line not found")

	ErrShippedWithoutLines = fmt.Errorf("%w: shipped order must have at least one line", ErrInvariantViolation)
	ErrEmptyOrder          = fmt.Errorf("%w: order has no lines", ErrInvariantViolation)
	ErrDuplicateLine       = fmt.Errorf("%w: duplicate order line", ErrInvariantViolation)
)

func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}
