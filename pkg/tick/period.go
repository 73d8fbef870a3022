package tick

import "github.com/daviddao/tick/pkg/ratio"

// Period is the constraint for tick-period tags. A period type carries no
// data; its ratio says how many seconds one tick represents. External
// packages can define their own periods (a 90kHz media clock, a 1/60s
// frame) by returning the matching ratio.
type Period interface {
	TickRatio() ratio.Ratio
}

// Canonical period ratios, reduced once at package initialization.
var (
	nanoRatio   = ratio.MustNew(1, 1_000_000_000)
	microRatio  = ratio.MustNew(1, 1_000_000)
	milliRatio  = ratio.MustNew(1, 1_000)
	secRatio    = ratio.MustNew(1, 1)
	minuteRatio = ratio.MustNew(60, 1)
	hourRatio   = ratio.MustNew(3600, 1)
	dayRatio    = ratio.MustNew(86400, 1)
)

// The canonical period tags, nanoseconds through days.
type (
	Nano   struct{}
	Micro  struct{}
	Milli  struct{}
	Sec    struct{}
	Minute struct{}
	Hour   struct{}
	Day    struct{}
)

func (Nano) TickRatio() ratio.Ratio   { return nanoRatio }
func (Micro) TickRatio() ratio.Ratio  { return microRatio }
func (Milli) TickRatio() ratio.Ratio  { return milliRatio }
func (Sec) TickRatio() ratio.Ratio    { return secRatio }
func (Minute) TickRatio() ratio.Ratio { return minuteRatio }
func (Hour) TickRatio() ratio.Ratio   { return hourRatio }
func (Day) TickRatio() ratio.Ratio    { return dayRatio }

// periodOf returns the ratio of a period tag without needing a value.
func periodOf[P Period]() ratio.Ratio {
	var p P
	return p.TickRatio()
}
