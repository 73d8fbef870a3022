package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/daviddao/tick/pkg/store"
	"github.com/daviddao/tick/pkg/tick"
)

func (a *app) cmdStop(args []string) int {
	flags := flag.NewFlagSet("stop", flag.ContinueOnError)
	jsonOut := flags.Bool("json", false, "JSON output")
	if err := flags.Parse(args); err != nil {
		return 1
	}
	if flags.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: tickctl stop <name>")
		return 1
	}
	name := flags.Arg(0)

	db, err := a.openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "tickctl: stop: %v\n", err)
		return 1
	}

	now := tick.WallNow()
	sess, err := db.StopSession(name, now.SinceEpoch().Count())
	switch {
	case errors.Is(err, store.ErrSessionStopped):
		fmt.Fprintf(os.Stderr, "tickctl: stop: session %q is not running\n", name)
		return 1
	case errors.Is(err, store.ErrNotFound):
		fmt.Fprintf(os.Stderr, "tickctl: stop: unknown session %q\n", name)
		return 1
	case err != nil:
		fmt.Fprintf(os.Stderr, "tickctl: stop: %v\n", err)
		return 1
	}

	total := wallPoint(sess.StoppedNS).Diff(wallPoint(sess.StartedNS))
	a.log.Info().Str("session", name).Int64("total_ns", total.Count()).Msg("session stopped")

	if *jsonOut {
		printJSON(map[string]interface{}{
			"session":  sess,
			"total_ns": total.Count(),
		})
	} else {
		fmt.Printf("stopped %q after %.3fs\n", name, displaySeconds(total))
	}
	return 0
}
