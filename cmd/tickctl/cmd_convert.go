package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/daviddao/tick/pkg/tick"
)

func (a *app) cmdConvert(args []string) int {
	flags := flag.NewFlagSet("convert", flag.ContinueOnError)
	policy := flags.String("policy", "exact", "truncation policy: exact|trunc|floor|ceil|round")
	jsonOut := flags.Bool("json", false, "JSON output")
	if err := flags.Parse(args); err != nil {
		return 1
	}
	rest := flags.Args()
	if len(rest) != 3 {
		fmt.Fprintln(os.Stderr, "usage: tickctl convert [--policy P] <count> <from> <to>")
		return 1
	}

	count, err := strconv.ParseInt(rest[0], 10, 64)
	if err != nil {
		fmt.Fprintf(os.Stderr, "tickctl: convert: bad count %q\n", rest[0])
		return 1
	}
	from, err := parseUnit(rest[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "tickctl: convert: %v\n", err)
		return 1
	}
	to, err := parseUnit(rest[2])
	if err != nil {
		fmt.Fprintf(os.Stderr, "tickctl: convert: %v\n", err)
		return 1
	}
	p, err := tick.ParsePolicy(*policy)
	if err != nil {
		fmt.Fprintf(os.Stderr, "tickctl: convert: %v\n", err)
		return 1
	}

	got, err := tick.Rescale(count, from, to, p)
	switch {
	case errors.Is(err, tick.ErrLossyConversion):
		fmt.Fprintf(os.Stderr,
			"tickctl: convert: %d %s to %s drops fractional ticks; pick a rounding rule with --policy trunc|floor|ceil|round\n",
			count, rest[1], rest[2])
		return 2
	case err != nil:
		fmt.Fprintf(os.Stderr, "tickctl: convert: %v\n", err)
		return 1
	}

	if *jsonOut {
		printJSON(map[string]interface{}{
			"count":  got,
			"unit":   rest[2],
			"policy": p.String(),
		})
	} else {
		fmt.Printf("%d %s\n", got, rest[2])
	}
	return 0
}
