package tick

import (
	"errors"
	"math"
	"testing"
)

func TestNamedConstructorsCarryTheirUnit(t *testing.T) {
	d := Milliseconds(3400)
	if d.Count() != 3400 {
		t.Fatalf("Count: got %d, want 3400", d.Count())
	}
	if r := d.Period(); r.Num() != 1 || r.Den() != 1000 {
		t.Fatalf("Period: got %s, want 1/1000", r)
	}
}

func TestSameTypeArithmetic(t *testing.T) {
	a := Seconds(90)
	b := Seconds(30)

	if got := a.Add(b); got.Count() != 120 {
		t.Fatalf("Add: got %d, want 120", got.Count())
	}
	if got := a.Sub(b); got.Count() != 60 {
		t.Fatalf("Sub: got %d, want 60", got.Count())
	}
	if got := b.Neg(); got.Count() != -30 {
		t.Fatalf("Neg: got %d, want -30", got.Count())
	}
	if !b.Less(a) {
		t.Fatal("expected 30s < 90s")
	}
	if a.Equal(b) {
		t.Fatal("90s and 30s should not be equal")
	}
	if got := a.Cmp(b); got != 1 {
		t.Fatalf("Cmp: got %d, want 1", got)
	}
	if got := b.Cmp(a); got != -1 {
		t.Fatalf("Cmp: got %d, want -1", got)
	}
	if got := a.Cmp(a); got != 0 {
		t.Fatalf("Cmp: got %d, want 0", got)
	}
}

func TestAddCheckedOverflow(t *testing.T) {
	max := Max[int64, Sec]()
	if _, err := max.AddChecked(Seconds(1)); !errors.Is(err, ErrOverflow) {
		t.Fatalf("max+1: got %v, want ErrOverflow", err)
	}
	if _, err := max.AddChecked(Seconds(0)); err != nil {
		t.Fatalf("max+0: unexpected error %v", err)
	}

	min := Min[int64, Sec]()
	if _, err := min.SubChecked(Seconds(1)); !errors.Is(err, ErrOverflow) {
		t.Fatalf("min-1: got %v, want ErrOverflow", err)
	}
	if _, err := min.AddChecked(Seconds(1)); err != nil {
		t.Fatalf("min+1: unexpected error %v", err)
	}
}

func TestAddCheckedFloatFollowsIEEE(t *testing.T) {
	max := Max[float64, Sec]()
	got, err := max.AddChecked(max)
	if err != nil {
		t.Fatalf("float overflow must not be reported: %v", err)
	}
	if !math.IsInf(float64(got.Count()), 1) {
		t.Fatalf("float overflow: got %v, want +Inf", got.Count())
	}
}

func TestMinMaxMatchRepresentation(t *testing.T) {
	if got := Max[int64, Nano]().Count(); got != math.MaxInt64 {
		t.Fatalf("Max[int64]: got %d", got)
	}
	if got := Min[int64, Nano]().Count(); got != math.MinInt64 {
		t.Fatalf("Min[int64]: got %d", got)
	}
	if got := Max[int32, Sec]().Count(); got != math.MaxInt32 {
		t.Fatalf("Max[int32]: got %d", got)
	}
	if got := Min[int32, Sec]().Count(); got != math.MinInt32 {
		t.Fatalf("Min[int32]: got %d", got)
	}
	if got := Max[float64, Sec]().Count(); got != math.MaxFloat64 {
		t.Fatalf("Max[float64]: got %v", got)
	}
	if got := Max[float32, Sec]().Count(); got != math.MaxFloat32 {
		t.Fatalf("Max[float32]: got %v", got)
	}
}

func TestIsZero(t *testing.T) {
	if !Seconds(0).IsZero() {
		t.Fatal("Seconds(0) should be zero")
	}
	if Seconds(-1).IsZero() {
		t.Fatal("Seconds(-1) should not be zero")
	}
}

func TestCustomRepTypes(t *testing.T) {
	// Named types with an allowed underlying representation work as reps.
	type frames int64
	d := New[frames, Sec](24)
	if d.Count() != 24 {
		t.Fatalf("custom rep: got %d, want 24", d.Count())
	}
}
