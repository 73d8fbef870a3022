package main

import (
	"fmt"

	"github.com/daviddao/tick/pkg/ratio"
	"github.com/daviddao/tick/pkg/tick"
)

// unitRatios maps CLI unit names to tick periods. The CLI learns units at
// runtime, so it works at pkg/tick's runtime boundary (ratio values and
// Rescale) instead of the type-tagged API — both share the same kernel.
var unitRatios = map[string]ratio.Ratio{
	"ns":  tick.Nano{}.TickRatio(),
	"us":  tick.Micro{}.TickRatio(),
	"ms":  tick.Milli{}.TickRatio(),
	"s":   tick.Sec{}.TickRatio(),
	"min": tick.Minute{}.TickRatio(),
	"h":   tick.Hour{}.TickRatio(),
	"d":   tick.Day{}.TickRatio(),
}

// parseUnit resolves a unit name; the error lists the accepted names.
func parseUnit(s string) (ratio.Ratio, error) {
	r, ok := unitRatios[s]
	if !ok {
		return ratio.Ratio{}, fmt.Errorf("unknown unit %q (use ns us ms s min h d)", s)
	}
	return r, nil
}
