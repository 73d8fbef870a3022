package tick

import "math"

// Rep is the constraint for tick-count representations: signed integers or
// floating point. Unsigned representations are excluded so that durations
// and epoch offsets can always be negated.
type Rep interface {
	~int | ~int32 | ~int64 | ~float32 | ~float64
}

// isFloat reports whether R is a floating-point representation.
// R(1)/R(2) is 0 for every integral type and 0.5 for every float.
func isFloat[R Rep]() bool {
	return R(1)/R(2) != 0
}

// fitsRep reports whether the int64 value v round-trips through R
// unchanged. Only meaningful for integral R.
func fitsRep[R Rep](v int64) bool {
	return int64(R(v)) == v
}

// maxRep returns the largest representable tick count of R, probed by
// round-tripping the widest candidate.
func maxRep[R Rep]() R {
	if isFloat[R]() {
		v := math.MaxFloat64
		if float64(R(v)) == v {
			return R(v)
		}
		v = math.MaxFloat32
		return R(v)
	}
	v := int64(math.MaxInt64)
	if fitsRep[R](v) {
		return R(v)
	}
	v = int64(math.MaxInt32)
	return R(v)
}

// minRep returns the smallest (most negative) representable tick count of R.
func minRep[R Rep]() R {
	if isFloat[R]() {
		v := -math.MaxFloat64
		if float64(R(v)) == v {
			return R(v)
		}
		v = -math.MaxFloat32
		return R(v)
	}
	v := int64(math.MinInt64)
	if fitsRep[R](v) {
		return R(v)
	}
	v = int64(math.MinInt32)
	return R(v)
}

// checkedMul64 multiplies two int64s, reporting overflow via ok=false.
func checkedMul64(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	if a == math.MinInt64 || b == math.MinInt64 {
		if a == 1 {
			return b, true
		}
		if b == 1 {
			return a, true
		}
		return 0, false
	}
	r := a * b
	if r/b != a {
		return 0, false
	}
	return r, true
}

// gcd64 is Euclid's algorithm on magnitudes; signs are stripped at the end
// so math.MinInt64 inputs never hit an overflowing negation.
func gcd64(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	if a < 0 {
		a = -a
	}
	return a
}

// The four truncation policies as pure integer divisions. The divisor is
// always > 0 (period denominators are normalized positive), which every
// function below relies on.

// divTrunc rounds the quotient toward zero.
func divTrunc(p, d int64) int64 { return p / d }

// divFloor rounds the quotient toward negative infinity.
func divFloor(p, d int64) int64 {
	q := p / d
	if p%d != 0 && p < 0 {
		q--
	}
	return q
}

// divCeil rounds the quotient toward positive infinity.
func divCeil(p, d int64) int64 {
	q := p / d
	if p%d != 0 && p > 0 {
		q++
	}
	return q
}

// divRoundHalfEven rounds the quotient to nearest, ties to even.
// Comparing r against d-r avoids the overflow of computing 2*r.
func divRoundHalfEven(p, d int64) int64 {
	q := divFloor(p, d)
	r := p - q*d // in [0, d)
	switch {
	case r < d-r:
		return q
	case r > d-r:
		return q + 1
	default:
		if q%2 == 0 {
			return q
		}
		return q + 1
	}
}
