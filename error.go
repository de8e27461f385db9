package devidx

import "errors"

var (
	// ErrInvalidOrder is returned by New when the order cannot support the
	// split protocol; the midpoint arithmetic needs at least order 3 to
	// leave a non-empty node on both sides of a split.
	ErrInvalidOrder = errors.New("order must be at least 3")
)
