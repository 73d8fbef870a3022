package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/daviddao/tick/pkg/store"
	"github.com/daviddao/tick/pkg/tick"
)

func (a *app) cmdLap(args []string) int {
	flags := flag.NewFlagSet("lap", flag.ContinueOnError)
	jsonOut := flags.Bool("json", false, "JSON output")
	if err := flags.Parse(args); err != nil {
		return 1
	}
	if flags.NArg() < 1 || flags.NArg() > 2 {
		fmt.Fprintln(os.Stderr, "usage: tickctl lap <name> [label]")
		return 1
	}
	name := flags.Arg(0)
	label := flags.Arg(1)

	db, err := a.openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "tickctl: lap: %v\n", err)
		return 1
	}

	sess, err := db.RunningSession(name)
	if errors.Is(err, store.ErrNotFound) {
		fmt.Fprintf(os.Stderr, "tickctl: lap: no running session %q\n", name)
		return 1
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "tickctl: lap: %v\n", err)
		return 1
	}

	// The split is measured from the previous lap, or from the session
	// start for the first one. Both marks are wall-clock time points, so
	// the subtraction stays inside one clock's type.
	prevNS := sess.StartedNS
	if last, err := db.LastLap(sess.ID); err == nil {
		prevNS = last.AtNS
	}

	now := tick.WallNow()
	elapsed := now.Diff(wallPoint(prevNS))

	lap, err := db.AddLap(name, elapsed.Count(), label, now.SinceEpoch().Count())
	if err != nil {
		fmt.Fprintf(os.Stderr, "tickctl: lap: %v\n", err)
		return 1
	}

	if *jsonOut {
		printJSON(lap)
	} else {
		fmt.Printf("lap %d: %.3fs", lap.Seq, displaySeconds(elapsed))
		if label != "" {
			fmt.Printf("  %s", label)
		}
		fmt.Println()
	}
	return 0
}
