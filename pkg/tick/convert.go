package tick

import (
	"fmt"
	"math"
	"math/big"

	"github.com/daviddao/tick/pkg/ratio"
)

// Policy selects how fractional ticks are resolved by an explicit cast,
// or refuses them entirely.
type Policy int

const (
	// PolicyExact refuses any conversion whose scale factor is not an
	// exact integer. This is the rule Convert applies implicitly.
	PolicyExact Policy = iota
	// PolicyTrunc rounds toward zero, like integer division.
	PolicyTrunc
	// PolicyFloor rounds toward negative infinity.
	PolicyFloor
	// PolicyCeil rounds toward positive infinity.
	PolicyCeil
	// PolicyRound rounds to nearest, ties to even, avoiding the
	// systematic bias of always rounding half up.
	PolicyRound
)

// String returns the policy's name as used on CLI flags.
func (p Policy) String() string {
	switch p {
	case PolicyExact:
		return "exact"
	case PolicyTrunc:
		return "trunc"
	case PolicyFloor:
		return "floor"
	case PolicyCeil:
		return "ceil"
	case PolicyRound:
		return "round"
	default:
		return fmt.Sprintf("Policy(%d)", int(p))
	}
}

// ParsePolicy maps a policy name to its Policy value.
func ParsePolicy(s string) (Policy, error) {
	switch s {
	case "exact":
		return PolicyExact, nil
	case "trunc":
		return PolicyTrunc, nil
	case "floor":
		return PolicyFloor, nil
	case "ceil":
		return PolicyCeil, nil
	case "round":
		return PolicyRound, nil
	default:
		return 0, fmt.Errorf("unknown truncation policy %q", s)
	}
}

// Convert re-expresses d in representation RTo and period PTo, succeeding
// only when the conversion cannot lose information:
//
//   - the target representation is floating point (fractional ticks are
//     representable, absorbing any source), or
//   - both representations are integral and the scale factor from P to PTo
//     is an exact integer, i.e. the target period is the same or finer.
//
// Whether a conversion is accepted depends only on the four type arguments,
// never on the value; rejections surface as ErrLossyConversion. The one
// value-dependent failure is ErrOverflow, when the exactly-scaled count
// does not fit RTo.
func Convert[RTo Rep, PTo Period, R Rep, P Period](d Duration[R, P]) (Duration[RTo, PTo], error) {
	var zero Duration[RTo, PTo]
	f, err := ratio.Div(periodOf[P](), periodOf[PTo]())
	if err != nil {
		return zero, fmt.Errorf("combine periods: %w", err)
	}
	if isFloat[RTo]() {
		return Duration[RTo, PTo]{RTo(float64(d.count) * f.Float())}, nil
	}
	if isFloat[R]() {
		return zero, fmt.Errorf("floating to integral representation: %w", ErrLossyConversion)
	}
	if f.Den() != 1 {
		return zero, fmt.Errorf("period %s to coarser %s: %w",
			periodOf[P](), periodOf[PTo](), ErrLossyConversion)
	}
	v, ok := checkedMul64(int64(d.count), f.Num())
	if !ok || !fitsRep[RTo](v) {
		return zero, ErrOverflow
	}
	return Duration[RTo, PTo]{RTo(v)}, nil
}

// The explicit truncating casts. Each applies exactly one policy to the
// real-valued conversion result; none is ever invoked implicitly.

// Trunc casts d to the target type rounding fractional ticks toward zero.
func Trunc[RTo Rep, PTo Period, R Rep, P Period](d Duration[R, P]) (Duration[RTo, PTo], error) {
	return cast[RTo, PTo](d, PolicyTrunc)
}

// Floor casts d to the target type rounding toward negative infinity.
func Floor[RTo Rep, PTo Period, R Rep, P Period](d Duration[R, P]) (Duration[RTo, PTo], error) {
	return cast[RTo, PTo](d, PolicyFloor)
}

// Ceil casts d to the target type rounding toward positive infinity.
func Ceil[RTo Rep, PTo Period, R Rep, P Period](d Duration[R, P]) (Duration[RTo, PTo], error) {
	return cast[RTo, PTo](d, PolicyCeil)
}

// Round casts d to the target type rounding to nearest, ties to even.
func Round[RTo Rep, PTo Period, R Rep, P Period](d Duration[R, P]) (Duration[RTo, PTo], error) {
	return cast[RTo, PTo](d, PolicyRound)
}

func cast[RTo Rep, PTo Period, R Rep, P Period](d Duration[R, P], p Policy) (Duration[RTo, PTo], error) {
	var zero Duration[RTo, PTo]
	f, err := ratio.Div(periodOf[P](), periodOf[PTo]())
	if err != nil {
		return zero, fmt.Errorf("combine periods: %w", err)
	}

	if isFloat[R]() || isFloat[RTo]() {
		x := applyFloat(float64(d.count)*f.Float(), p)
		if isFloat[RTo]() {
			return Duration[RTo, PTo]{RTo(x)}, nil
		}
		// Integral target from a floating intermediate: out-of-range and
		// NaN inputs are reportable, not wrappable.
		if math.IsNaN(x) || x < -9.223372036854775808e18 || x >= 9.223372036854775808e18 {
			return zero, ErrOverflow
		}
		v := int64(x)
		if !fitsRep[RTo](v) {
			return zero, ErrOverflow
		}
		return Duration[RTo, PTo]{RTo(v)}, nil
	}

	v, err := rescaleInt(int64(d.count), f, p)
	if err != nil {
		return zero, err
	}
	if !fitsRep[RTo](v) {
		return zero, ErrOverflow
	}
	return Duration[RTo, PTo]{RTo(v)}, nil
}

// applyFloat applies a truncation policy to a real-valued tick count.
func applyFloat(x float64, p Policy) float64 {
	switch p {
	case PolicyTrunc:
		return math.Trunc(x)
	case PolicyFloor:
		return math.Floor(x)
	case PolicyCeil:
		return math.Ceil(x)
	case PolicyRound:
		return math.RoundToEven(x)
	default: // PolicyExact: keep the fractional value
		return x
	}
}

// AddAs adds two durations of possibly different periods and
// representations, expressing the result in the named target type. Both
// operands must convert to the target losslessly, so for integral targets
// PTo must be no coarser than the finer operand period — pick it with
// CommonRatio when it is not obvious. This is the explicit rendering of
// the common-type rule: the result type is a function of the operand and
// target types alone.
func AddAs[RTo Rep, PTo Period, RA Rep, PA Period, RB Rep, PB Period](
	a Duration[RA, PA], b Duration[RB, PB],
) (Duration[RTo, PTo], error) {
	var zero Duration[RTo, PTo]
	ca, err := Convert[RTo, PTo](a)
	if err != nil {
		return zero, fmt.Errorf("left operand: %w", err)
	}
	cb, err := Convert[RTo, PTo](b)
	if err != nil {
		return zero, fmt.Errorf("right operand: %w", err)
	}
	return ca.AddChecked(cb)
}

// SubAs subtracts b from a under the same rules as AddAs.
func SubAs[RTo Rep, PTo Period, RA Rep, PA Period, RB Rep, PB Period](
	a Duration[RA, PA], b Duration[RB, PB],
) (Duration[RTo, PTo], error) {
	var zero Duration[RTo, PTo]
	ca, err := Convert[RTo, PTo](a)
	if err != nil {
		return zero, fmt.Errorf("left operand: %w", err)
	}
	cb, err := Convert[RTo, PTo](b)
	if err != nil {
		return zero, fmt.Errorf("right operand: %w", err)
	}
	return ca.SubChecked(cb)
}

// Compare orders two durations of arbitrary periods and representations:
// -1, 0, or +1. Integral comparisons are exact; the fast path stays in
// 64-bit cross-multiplication and falls back to big.Int (allocating) only
// when the intermediates overflow. If either representation is floating,
// the comparison is done in float64; a NaN operand compares as 0.
func Compare[RA Rep, PA Period, RB Rep, PB Period](a Duration[RA, PA], b Duration[RB, PB]) int {
	pa, pb := periodOf[PA](), periodOf[PB]()
	if isFloat[RA]() || isFloat[RB]() {
		x := float64(a.count) * pa.Float()
		y := float64(b.count) * pb.Float()
		switch {
		case x < y:
			return -1
		case x > y:
			return 1
		default:
			return 0
		}
	}

	// a*pa <=> b*pb  ⟺  a*pa.Num*pb.Den <=> b*pb.Num*pa.Den.
	la, ok1 := checkedMul64(int64(a.count), pa.Num())
	lb, ok2 := checkedMul64(int64(b.count), pb.Num())
	if ok1 && ok2 {
		la, ok1 = checkedMul64(la, pb.Den())
		lb, ok2 = checkedMul64(lb, pa.Den())
		if ok1 && ok2 {
			switch {
			case la < lb:
				return -1
			case la > lb:
				return 1
			default:
				return 0
			}
		}
	}

	x := new(big.Int).Mul(big.NewInt(int64(a.count)), big.NewInt(pa.Num()))
	x.Mul(x, big.NewInt(pb.Den()))
	y := new(big.Int).Mul(big.NewInt(int64(b.count)), big.NewInt(pb.Num()))
	y.Mul(y, big.NewInt(pa.Den()))
	return x.Cmp(y)
}

// CommonRatio returns the coarsest period in which both a and b have exact
// integer tick counts: the right target period for AddAs/SubAs over mixed
// operands.
func CommonRatio(a, b ratio.Ratio) (ratio.Ratio, error) {
	return ratio.Common(a, b)
}

// Rescale converts a raw int64 tick count between two periods given as
// runtime values. It exists for boundary layers — CLIs, config readers,
// wire decoders — that learn their units at runtime and therefore cannot
// name period types; everything else should use Convert or the casts so
// the compiler tracks the unit. The caller still names both units
// explicitly: there is no path through this package that guesses one.
func Rescale(count int64, from, to ratio.Ratio, p Policy) (int64, error) {
	f, err := ratio.Div(from, to)
	if err != nil {
		return 0, fmt.Errorf("combine periods: %w", err)
	}
	return rescaleInt(count, f, p)
}

// rescaleInt is the shared integral conversion kernel: count * f under
// policy p. Reducing count against the denominator first keeps
// intermediate products in range whenever the exact result fits.
func rescaleInt(count int64, f ratio.Ratio, p Policy) (int64, error) {
	num, den := f.Num(), f.Den()
	if p == PolicyExact && den != 1 {
		return 0, fmt.Errorf("scale factor %s is fractional: %w", f, ErrLossyConversion)
	}
	if g := gcd64(count, den); g > 1 {
		count, den = count/g, den/g
	}
	prod, ok := checkedMul64(count, num)
	if !ok {
		return 0, ErrOverflow
	}
	if den == 1 {
		return prod, nil
	}
	switch p {
	case PolicyTrunc:
		return divTrunc(prod, den), nil
	case PolicyFloor:
		return divFloor(prod, den), nil
	case PolicyCeil:
		return divCeil(prod, den), nil
	case PolicyRound:
		return divRoundHalfEven(prod, den), nil
	default:
		return 0, fmt.Errorf("scale factor %d/%d is fractional: %w", num, den, ErrLossyConversion)
	}
}
