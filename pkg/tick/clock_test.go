package tick

import (
	"sync"
	"testing"

	"github.com/daviddao/tick/pkg/ratio"
)

func TestSteadyNowNeverDecreases(t *testing.T) {
	prev := SteadyNow()
	for i := 0; i < 1000; i++ {
		cur := SteadyNow()
		if cur.Before(prev) {
			t.Fatalf("steady clock went backward: %d after %d",
				cur.SinceEpoch().Count(), prev.SinceEpoch().Count())
		}
		prev = cur
	}
}

func TestSteadyNowConcurrent(t *testing.T) {
	// Concurrent readers need no coordination; each goroutine must still
	// observe its own non-decreasing sequence.
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			prev := SteadyNow()
			for j := 0; j < 1000; j++ {
				cur := SteadyNow()
				if cur.Before(prev) {
					t.Error("steady clock went backward under concurrency")
					return
				}
				prev = cur
			}
		}()
	}
	wg.Wait()
}

func TestWallNowIsEpochRelative(t *testing.T) {
	tp := WallNow()
	// Any plausible run date is well after 2000-01-01 (946684800s) and the
	// count is nanoseconds, so it is enormous. A jump-prone wall clock
	// still cannot legitimately be before the year 2000 here.
	if tp.SinceEpoch().Count() < 946_684_800_000_000_000 {
		t.Fatalf("wall now %d ns is before year 2000", tp.SinceEpoch().Count())
	}
}

func TestClockTags(t *testing.T) {
	var wall Wall
	var steady Steady
	if wall.Monotonic() {
		t.Fatal("wall clock must not claim monotonicity")
	}
	if !steady.Monotonic() {
		t.Fatal("steady clock must be monotonic")
	}
	if wall.ClockName() == steady.ClockName() {
		t.Fatal("clock names must be distinct")
	}
}

// mediaPeriod is 1/90000s, the MPEG transport tick: an external provider
// can define periods this package has never heard of.
type mediaPeriod struct{}

func (mediaPeriod) TickRatio() ratio.Ratio { return ratio.MustNew(1, 90000) }

// mediaTag is the provider's clock identity.
type mediaTag struct{}

func (mediaTag) ClockName() string { return "pcr" }
func (mediaTag) Monotonic() bool   { return true }

// fixedSource is an external provider stub serving a fixed tick count.
type fixedSource struct {
	ticks int64
}

func (s fixedSource) Ticks() int64 { return s.ticks }

func TestNowFromExternalSource(t *testing.T) {
	var src Source[int64, mediaPeriod] = fixedSource{ticks: 90000 * 5}
	tp := NowFrom[mediaTag, int64, mediaPeriod](src)

	if got := tp.SinceEpoch().Count(); got != 450000 {
		t.Fatalf("ticks: got %d, want 450000", got)
	}
	// Five seconds of 90kHz ticks convert losslessly to a float second count.
	s, err := Convert[float64, Sec, int64, mediaPeriod](tp.SinceEpoch())
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	if s.Count() != 5 {
		t.Fatalf("seconds: got %v, want 5", s.Count())
	}
}
