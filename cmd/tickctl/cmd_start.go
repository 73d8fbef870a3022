package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/daviddao/tick/pkg/store"
	"github.com/daviddao/tick/pkg/tick"
)

func (a *app) cmdStart(args []string) int {
	flags := flag.NewFlagSet("start", flag.ContinueOnError)
	jsonOut := flags.Bool("json", false, "JSON output")
	if err := flags.Parse(args); err != nil {
		return 1
	}
	if flags.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: tickctl start <name>")
		return 1
	}
	name := flags.Arg(0)

	db, err := a.openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "tickctl: start: %v\n", err)
		return 1
	}

	// Sessions outlive the process, so they anchor on the wall clock; a
	// system time step will skew a session spanning it. Steady-clock
	// intervals are only meaningful within one process.
	now := tick.WallNow()
	sess, err := db.StartSession(name, now.SinceEpoch().Count())
	if errors.Is(err, store.ErrSessionRunning) {
		fmt.Fprintf(os.Stderr, "tickctl: start: session %q is already running\n", name)
		return 1
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "tickctl: start: %v\n", err)
		return 1
	}

	a.log.Info().Str("session", name).Str("id", sess.ID).Msg("session started")
	if *jsonOut {
		printJSON(sess)
	} else {
		fmt.Printf("started %q\n", name)
	}
	return 0
}
