package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/daviddao/tick/pkg/ntpclock"
	"github.com/daviddao/tick/pkg/tick"
)

func (a *app) cmdNow(args []string) int {
	flags := flag.NewFlagSet("now", flag.ContinueOnError)
	clock := flags.String("clock", "wall", "clock to read: wall|steady|ntp")
	jsonOut := flags.Bool("json", false, "JSON output")
	if err := flags.Parse(args); err != nil {
		return 1
	}

	var ticks int64
	var monotonic bool
	switch *clock {
	case "wall":
		ticks = tick.WallNow().SinceEpoch().Count()
		monotonic = tick.Wall{}.Monotonic()
	case "steady":
		ticks = tick.SteadyNow().SinceEpoch().Count()
		monotonic = tick.Steady{}.Monotonic()
	case "ntp":
		c := a.ntp()
		if err := c.Sync(); err != nil {
			fmt.Fprintf(os.Stderr, "tickctl: now: %v\n", err)
			return 1
		}
		tp, err := c.Now()
		if err != nil {
			fmt.Fprintf(os.Stderr, "tickctl: now: %v\n", err)
			return 1
		}
		ticks = tp.SinceEpoch().Count()
		monotonic = ntpclock.NTP{}.Monotonic()
	default:
		fmt.Fprintf(os.Stderr, "tickctl: now: unknown clock %q (use wall, steady, or ntp)\n", *clock)
		return 1
	}

	if *jsonOut {
		printJSON(map[string]interface{}{
			"clock":     *clock,
			"ticks":     ticks,
			"unit":      "ns",
			"monotonic": monotonic,
		})
	} else {
		fmt.Printf("%s: %d ns\n", *clock, ticks)
	}
	return 0
}
