package tick

import "github.com/daviddao/tick/pkg/ratio"

// Duration is a tick count of representation R tagged with period P.
// The meaning of a value is count * P seconds, but no such multiplication
// ever happens implicitly; periods are compared symbolically.
//
// The count field is unexported: the only way to build a nonzero Duration
// is New (or the named unit constructors), which forces every call site to
// state its unit. Durations are immutable values, safe to copy and share.
type Duration[R Rep, P Period] struct {
	count R
}

// New builds a Duration from an explicit tick count. Both type arguments
// must be named; there is deliberately no way in from a bare number.
func New[R Rep, P Period](count R) Duration[R, P] {
	return Duration[R, P]{count}
}

// Named unit constructors for the canonical periods with the default
// int64 representation. These are the construction boundary for external
// code: the unit is in the name.

func Nanoseconds(n int64) Duration[int64, Nano]   { return Duration[int64, Nano]{n} }
func Microseconds(n int64) Duration[int64, Micro] { return Duration[int64, Micro]{n} }
func Milliseconds(n int64) Duration[int64, Milli] { return Duration[int64, Milli]{n} }
func Seconds(n int64) Duration[int64, Sec]        { return Duration[int64, Sec]{n} }
func Minutes(n int64) Duration[int64, Minute]     { return Duration[int64, Minute]{n} }
func Hours(n int64) Duration[int64, Hour]         { return Duration[int64, Hour]{n} }
func Days(n int64) Duration[int64, Day]           { return Duration[int64, Day]{n} }

// Count returns the raw tick count. Intended for logging, metrics, and
// legacy interop, not for further arithmetic — arithmetic on bare counts
// is exactly the bug class this package exists to prevent.
func (d Duration[R, P]) Count() R { return d.count }

// Period returns the tick ratio of P.
func (d Duration[R, P]) Period() ratio.Ratio { return periodOf[P]() }

// IsZero reports whether the tick count is zero.
func (d Duration[R, P]) IsZero() bool { return d.count == 0 }

// Add returns d+o. Same-type only; integral overflow wraps like the
// underlying representation. Use AddChecked when the operands may be near
// the representation's range.
func (d Duration[R, P]) Add(o Duration[R, P]) Duration[R, P] {
	return Duration[R, P]{d.count + o.count}
}

// Sub returns d-o.
func (d Duration[R, P]) Sub(o Duration[R, P]) Duration[R, P] {
	return Duration[R, P]{d.count - o.count}
}

// Neg returns -d.
func (d Duration[R, P]) Neg() Duration[R, P] {
	return Duration[R, P]{-d.count}
}

// AddChecked returns d+o, reporting ErrOverflow when an integral
// representation would wrap. Floating representations never report
// overflow; they follow IEEE semantics.
func (d Duration[R, P]) AddChecked(o Duration[R, P]) (Duration[R, P], error) {
	sum := d.count + o.count
	if !isFloat[R]() {
		if (o.count > 0 && sum < d.count) || (o.count < 0 && sum > d.count) {
			return Duration[R, P]{}, ErrOverflow
		}
	}
	return Duration[R, P]{sum}, nil
}

// SubChecked returns d-o with the same overflow contract as AddChecked.
func (d Duration[R, P]) SubChecked(o Duration[R, P]) (Duration[R, P], error) {
	diff := d.count - o.count
	if !isFloat[R]() {
		if (o.count < 0 && diff < d.count) || (o.count > 0 && diff > d.count) {
			return Duration[R, P]{}, ErrOverflow
		}
	}
	return Duration[R, P]{diff}, nil
}

// Cmp compares two same-type durations: -1 if d < o, 0 if equal, +1 if
// d > o. For cross-period comparison use the free function Compare.
func (d Duration[R, P]) Cmp(o Duration[R, P]) int {
	switch {
	case d.count < o.count:
		return -1
	case d.count > o.count:
		return 1
	default:
		return 0
	}
}

// Less reports d < o.
func (d Duration[R, P]) Less(o Duration[R, P]) bool { return d.count < o.count }

// Equal reports d == o.
func (d Duration[R, P]) Equal(o Duration[R, P]) bool { return d.count == o.count }

// Max returns the longest representable Duration of the given type: the
// representation's maximum tick count, interpreted in P.
func Max[R Rep, P Period]() Duration[R, P] { return Duration[R, P]{maxRep[R]()} }

// Min returns the most negative representable Duration of the given type.
func Min[R Rep, P Period]() Duration[R, P] { return Duration[R, P]{minRep[R]()} }
