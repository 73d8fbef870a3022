package main

import "github.com/daviddao/tick/pkg/tick"

// wallPoint rebuilds a typed wall-clock time point from a stored
// nanosecond count. The store's *_ns columns are nanoseconds by schema
// contract; this is the one place that contract is turned back into a
// typed value.
func wallPoint(ns int64) tick.Time[tick.Wall, int64, tick.Nano] {
	return tick.Since[tick.Wall](tick.Nanoseconds(ns))
}

// displaySeconds renders a nanosecond duration as float seconds for
// human output. The float target makes the conversion lossless by the
// library's rules; JSON output sticks to exact integer nanoseconds.
func displaySeconds(d tick.Duration[int64, tick.Nano]) float64 {
	s, err := tick.Convert[float64, tick.Sec](d)
	if err != nil {
		// Unreachable: a float target never rejects.
		return 0
	}
	return s.Count()
}
