// Package ratio implements exact rational numbers used as tick-period tags.
//
// A Ratio expresses how many seconds one tick of a duration represents:
// milliseconds are 1/1000, minutes are 60/1. Ratios are always stored in
// lowest terms with a positive denominator, so two ratios describe the same
// period exactly when they compare equal with ==.
//
// Period tags are built once, at package initialization, and never mutated.
// All operations are pure value computations. The only failure modes are a
// zero denominator (ErrZeroDenominator) and int64 overflow of the
// intermediate products in Mul/Div (ErrOverflow).
package ratio

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrZeroDenominator is reported when a ratio is constructed or
	// inverted with a zero denominator.
	ErrZeroDenominator = errors.New("ratio: zero denominator")

	// ErrOverflow is reported when an intermediate product in Mul or Div
	// does not fit in int64.
	ErrOverflow = errors.New("ratio: overflow")
)

// Ratio is a rational number in lowest terms. The zero value is 0/1.
// Construct ratios with New or MustNew; the fields are unexported so a
// Ratio outside this package is always reduced and has Den > 0.
type Ratio struct {
	num int64
	den int64
}

// New returns num/den reduced to lowest terms, with the sign normalized
// onto the numerator. Fails with ErrZeroDenominator when den == 0.
func New(num, den int64) (Ratio, error) {
	if den == 0 {
		return Ratio{}, ErrZeroDenominator
	}
	if num == 0 {
		return Ratio{0, 1}, nil
	}
	if den < 0 {
		if num == math.MinInt64 || den == math.MinInt64 {
			return Ratio{}, ErrOverflow
		}
		num, den = -num, -den
	}
	g := gcd(num, den)
	return Ratio{num / g, den / g}, nil
}

// MustNew is New for ratios known to be well formed, such as the package's
// own period tags. It panics on error.
func MustNew(num, den int64) Ratio {
	r, err := New(num, den)
	if err != nil {
		panic(fmt.Sprintf("ratio: MustNew(%d, %d): %v", num, den, err))
	}
	return r
}

// Num returns the numerator. Negative ratios carry the sign here.
func (r Ratio) Num() int64 {
	if r.den == 0 {
		return 0 // zero value normalizes to 0/1
	}
	return r.num
}

// Den returns the denominator, always > 0.
func (r Ratio) Den() int64 {
	if r.den == 0 {
		return 1
	}
	return r.den
}

// String renders the ratio as "num/den".
func (r Ratio) String() string {
	return fmt.Sprintf("%d/%d", r.Num(), r.Den())
}

// Float returns the ratio as a float64. Intended for floating-point
// representation math, where exactness is not required.
func (r Ratio) Float() float64 {
	return float64(r.Num()) / float64(r.Den())
}

// Mul returns a*b reduced to lowest terms. The cross factors are reduced
// before multiplying, so overflow is only reported when the final products
// genuinely exceed int64.
func Mul(a, b Ratio) (Ratio, error) {
	an, ad := a.Num(), a.Den()
	bn, bd := b.Num(), b.Den()

	// Cross-reduce first: gcd(an,bd) and gcd(bn,ad) divide out, which keeps
	// products like (1/1000)*(1000/1) exactly representable.
	if an != 0 && bd != 0 {
		g := gcd(an, bd)
		an, bd = an/g, bd/g
	}
	if bn != 0 && ad != 0 {
		g := gcd(bn, ad)
		bn, ad = bn/g, ad/g
	}

	num, ok := checkedMul(an, bn)
	if !ok {
		return Ratio{}, ErrOverflow
	}
	den, ok := checkedMul(ad, bd)
	if !ok {
		return Ratio{}, ErrOverflow
	}
	return New(num, den)
}

// Invert returns 1/r. Fails with ErrZeroDenominator when r is zero.
func Invert(r Ratio) (Ratio, error) {
	return New(r.Den(), r.Num())
}

// Div returns a/b, the factor that re-expresses ticks of period a as ticks
// of period b: count_b = count_a * Div(a, b).
func Div(a, b Ratio) (Ratio, error) {
	inv, err := Invert(b)
	if err != nil {
		return Ratio{}, err
	}
	return Mul(a, inv)
}

// Common returns the coarsest period that divides both a and b evenly:
// gcd of the numerators over lcm of the denominators. Any value expressed
// in ticks of a or b has an exact integer tick count in ticks of Common(a, b).
func Common(a, b Ratio) (Ratio, error) {
	num := gcd(a.Num(), b.Num())
	if num == 0 {
		num = 1
	}
	g := gcd(a.Den(), b.Den())
	den, ok := checkedMul(a.Den()/g, b.Den())
	if !ok {
		return Ratio{}, ErrOverflow
	}
	return New(num, den)
}

// gcd returns the greatest common divisor of |a| and |b| by Euclid's
// algorithm. gcd(a, 0) = |a|. Signs are carried through the loop and
// stripped at the end, which keeps math.MinInt64 inputs from overflowing
// on an up-front negation.
func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	if a < 0 {
		a = -a
	}
	return a
}

// checkedMul multiplies two int64s, reporting overflow via ok=false.
func checkedMul(a, b int64) (int64, bool) {
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
