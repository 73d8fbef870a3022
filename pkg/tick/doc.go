// Package tick implements strongly-typed durations and time points.
//
// The design follows the classic typed-chrono model:
//
//   - A Duration[R, P] is a raw tick count of representation R tagged with a
//     period P, where P is a type whose ratio (see pkg/ratio) says how many
//     seconds one tick is worth. The tag lives at the type level, so adding
//     milliseconds to seconds without saying how is a compile error, and
//     same-type arithmetic compiles down to plain arithmetic on R.
//
//   - A Time[C, R, P] is a Duration since the epoch of clock C, where C is
//     again a type tag. Every binary operation on time points shares its C
//     parameter, so subtracting a steady-clock reading from a wall-clock
//     reading does not compile. There is no runtime clock check because
//     none is needed.
//
// Conversions come in two flavors. Convert is the implicit, lossless kind:
// it succeeds only when the period change multiplies the tick count by an
// exact integer, or when the target representation is floating point and can
// carry fractional ticks. Everything else must go through one of the four
// explicit truncating casts — Trunc (toward zero), Floor, Ceil, Round
// (half to even) — so every point where precision is dropped names its
// rounding rule at the call site.
//
// Go generics cannot synthesize a common result type for mixed-period
// arithmetic the way a template metaprogram can, so AddAs and SubAs have the
// caller name the result type and verify before computing that both operands
// convert to it losslessly. The check depends only on the operand and result
// types, never on the values.
//
// Integral overflow during period rescaling is reported as ErrOverflow.
// Floating-point representations instead follow IEEE semantics: out-of-range
// results become infinities and are never reported as errors. This asymmetry
// is deliberate; do not "fix" it by clamping or by erroring on Inf.
package tick
