package main

import (
	"flag"
	"fmt"
	"os"
)

func (a *app) cmdSync(args []string) int {
	flags := flag.NewFlagSet("sync", flag.ContinueOnError)
	jsonOut := flags.Bool("json", false, "JSON output")
	if err := flags.Parse(args); err != nil {
		return 1
	}

	c := a.ntp()
	if err := c.Sync(); err != nil {
		fmt.Fprintf(os.Stderr, "tickctl: sync: %v\n", err)
		return 1
	}
	offset, err := c.Offset()
	if err != nil {
		fmt.Fprintf(os.Stderr, "tickctl: sync: %v\n", err)
		return 1
	}

	if *jsonOut {
		printJSON(map[string]interface{}{
			"server":    a.cfg.NTPServer,
			"offset_ns": offset.Nanoseconds(),
		})
	} else {
		fmt.Printf("%s: system clock is %v off network time\n", a.cfg.NTPServer, offset)
	}
	return 0
}
