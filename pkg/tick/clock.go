package tick

import "time"

// Clock is the constraint for clock tags. A clock tag is an identity: two
// distinct tags are never convertible into one another, and the compiler
// enforces that because the tag is a type parameter on Time. Providers
// describe themselves with a name and a monotonicity promise.
type Clock interface {
	ClockName() string
	// Monotonic reports whether successive reads of this clock never
	// decrease within a process. Wall clocks may jump on system time
	// adjustment and must return false.
	Monotonic() bool
}

// Wall is the system wall clock tag: epoch-relative (Unix epoch), suitable
// for calendar-adjacent work, not guaranteed monotonic.
type Wall struct{}

func (Wall) ClockName() string { return "wall" }
func (Wall) Monotonic() bool   { return false }

// Steady is the monotonic clock tag: unrelated to wall time, never jumps
// backward, suitable only for measuring elapsed intervals. Its epoch is
// process start, so Steady readings are meaningless across processes.
type Steady struct{}

func (Steady) ClockName() string { return "steady" }
func (Steady) Monotonic() bool   { return true }

// steadyEpoch anchors the Steady clock. time.Since against a fixed start
// uses the runtime's monotonic reading, so SteadyNow never observes a
// wall-clock jump.
var steadyEpoch = time.Now()

// WallNow reads the system wall clock: nanoseconds since the Unix epoch.
// Safe for concurrent use; does not block or allocate.
func WallNow() Time[Wall, int64, Nano] {
	return Time[Wall, int64, Nano]{Duration[int64, Nano]{time.Now().UnixNano()}}
}

// SteadyNow reads the monotonic clock: nanoseconds since process start.
// Safe for concurrent use; does not block or allocate.
func SteadyNow() Time[Steady, int64, Nano] {
	return Time[Steady, int64, Nano]{Duration[int64, Nano]{time.Since(steadyEpoch).Nanoseconds()}}
}

// Source is the capability expected from an external clock provider: a raw
// tick count in the period the provider is declared with. The period and
// representation are fixed by the provider's type, so a source cannot hand
// over a number whose unit is undeclared.
type Source[R Rep, P Period] interface {
	Ticks() R
}

// NowFrom reads an external source as a time point of clock C. The caller
// binds C to the tag matching the source's epoch and jump behavior.
func NowFrom[C Clock, R Rep, P Period](src Source[R, P]) Time[C, R, P] {
	return Time[C, R, P]{Duration[R, P]{src.Ticks()}}
}
