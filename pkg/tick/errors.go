package tick

import "errors"

var (
	// ErrOverflow is reported when rescaling or checked arithmetic on an
	// integral representation would exceed its range. Floating
	// representations never report this; they produce ±Inf instead.
	ErrOverflow = errors.New("tick: integer overflow")

	// ErrLossyConversion is reported when an implicit conversion could
	// drop fractional ticks. Use one of the explicit truncating casts
	// (Trunc, Floor, Ceil, Round) to state the rounding rule instead.
	ErrLossyConversion = errors.New("tick: lossy conversion")
)
