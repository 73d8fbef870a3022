package tick

import "fmt"

// Time is an instant: a Duration since the epoch of clock C. The clock tag
// is a type parameter shared by every binary operation below, so mixing
// time points of different clocks is rejected by the compiler — the
// expression does not type-check, and no runtime guard exists or is needed.
type Time[C Clock, R Rep, P Period] struct {
	since Duration[R, P]
}

// Since builds a Time from a Duration measured from C's epoch. Outside of
// tests this is normally only called by clock providers; derived time
// points come from Add/Sub on an existing one.
func Since[C Clock, R Rep, P Period](d Duration[R, P]) Time[C, R, P] {
	return Time[C, R, P]{d}
}

// SinceEpoch returns the underlying Duration. This is the only sanctioned
// way to turn a single Time into a Duration; elapsed intervals should come
// from Diff on two time points instead.
func (t Time[C, R, P]) SinceEpoch() Duration[R, P] { return t.since }

// Add returns the instant d later than t.
func (t Time[C, R, P]) Add(d Duration[R, P]) Time[C, R, P] {
	return Time[C, R, P]{t.since.Add(d)}
}

// Sub returns the instant d earlier than t.
func (t Time[C, R, P]) Sub(d Duration[R, P]) Time[C, R, P] {
	return Time[C, R, P]{t.since.Sub(d)}
}

// AddChecked is Add with ErrOverflow reporting for integral R.
func (t Time[C, R, P]) AddChecked(d Duration[R, P]) (Time[C, R, P], error) {
	s, err := t.since.AddChecked(d)
	if err != nil {
		return Time[C, R, P]{}, fmt.Errorf("advance time point: %w", err)
	}
	return Time[C, R, P]{s}, nil
}

// Diff returns the Duration from o to t (t - o). Both operands carry the
// same clock tag by construction.
func (t Time[C, R, P]) Diff(o Time[C, R, P]) Duration[R, P] {
	return t.since.Sub(o.since)
}

// DiffChecked is Diff with ErrOverflow reporting for integral R.
func (t Time[C, R, P]) DiffChecked(o Time[C, R, P]) (Duration[R, P], error) {
	return t.since.SubChecked(o.since)
}

// Before reports whether t precedes o.
func (t Time[C, R, P]) Before(o Time[C, R, P]) bool { return t.since.Less(o.since) }

// After reports whether t follows o.
func (t Time[C, R, P]) After(o Time[C, R, P]) bool { return o.since.Less(t.since) }

// Equal reports whether t and o are the same instant.
func (t Time[C, R, P]) Equal(o Time[C, R, P]) bool { return t.since.Equal(o.since) }

// ConvertTime re-expresses a time point in another duration type under
// Convert's lossless rules. The clock tag is preserved; there is no
// operation that changes it.
func ConvertTime[RTo Rep, PTo Period, C Clock, R Rep, P Period](t Time[C, R, P]) (Time[C, RTo, PTo], error) {
	d, err := Convert[RTo, PTo](t.since)
	if err != nil {
		return Time[C, RTo, PTo]{}, err
	}
	return Time[C, RTo, PTo]{d}, nil
}

// TruncTime, FloorTime, CeilTime and RoundTime apply the explicit
// truncating casts to a time point's epoch offset, mirroring the Duration
// casts policy for policy.

func TruncTime[RTo Rep, PTo Period, C Clock, R Rep, P Period](t Time[C, R, P]) (Time[C, RTo, PTo], error) {
	return castTime[RTo, PTo](t, PolicyTrunc)
}

func FloorTime[RTo Rep, PTo Period, C Clock, R Rep, P Period](t Time[C, R, P]) (Time[C, RTo, PTo], error) {
	return castTime[RTo, PTo](t, PolicyFloor)
}

func CeilTime[RTo Rep, PTo Period, C Clock, R Rep, P Period](t Time[C, R, P]) (Time[C, RTo, PTo], error) {
	return castTime[RTo, PTo](t, PolicyCeil)
}

func RoundTime[RTo Rep, PTo Period, C Clock, R Rep, P Period](t Time[C, R, P]) (Time[C, RTo, PTo], error) {
	return castTime[RTo, PTo](t, PolicyRound)
}

func castTime[RTo Rep, PTo Period, C Clock, R Rep, P Period](t Time[C, R, P], p Policy) (Time[C, RTo, PTo], error) {
	d, err := cast[RTo, PTo](t.since, p)
	if err != nil {
		return Time[C, RTo, PTo]{}, err
	}
	return Time[C, RTo, PTo]{d}, nil
}
