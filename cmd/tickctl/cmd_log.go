package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/daviddao/tick/pkg/model"
	"github.com/daviddao/tick/pkg/tick"
)

func (a *app) cmdLog(args []string) int {
	flags := flag.NewFlagSet("log", flag.ContinueOnError)
	jsonOut := flags.Bool("json", false, "JSON output")
	if err := flags.Parse(args); err != nil {
		return 1
	}
	name := ""
	if flags.NArg() > 0 {
		name = flags.Arg(0)
	}

	db, err := a.openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "tickctl: log: %v\n", err)
		return 1
	}

	sessions, err := db.ListSessions(name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "tickctl: log: %v\n", err)
		return 1
	}

	if *jsonOut {
		type sessionLog struct {
			model.Session
			Laps []model.Lap `json:"laps"`
		}
		out := make([]sessionLog, 0, len(sessions))
		for _, sess := range sessions {
			laps, err := db.ListLaps(sess.ID)
			if err != nil {
				fmt.Fprintf(os.Stderr, "tickctl: log: %v\n", err)
				return 1
			}
			out = append(out, sessionLog{Session: sess, Laps: laps})
		}
		printJSON(out)
		return 0
	}

	nowNS := tick.WallNow().SinceEpoch().Count()
	for _, sess := range sessions {
		state := "stopped"
		if sess.Running() {
			state = "running"
		}
		total := tick.Nanoseconds(sess.ElapsedNS(nowNS))
		fmt.Printf("%s  %-16s %-8s total=%.3fs  started=%s\n",
			sess.ID[:8], sess.Name, state, displaySeconds(total),
			time.Unix(0, sess.StartedNS).Format("2006-01-02 15:04:05"))

		laps, err := db.ListLaps(sess.ID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "tickctl: log: %v\n", err)
			return 1
		}
		for _, lap := range laps {
			fmt.Printf("    lap %-3d %.3fs", lap.Seq, displaySeconds(tick.Nanoseconds(lap.ElapsedNS)))
			if lap.Label != "" {
				fmt.Printf("  %s", lap.Label)
			}
			fmt.Println()
		}
	}
	return 0
}
