// Command tickctl is the typed-time toolbox: unit-safe duration
// conversion, clock readings, and a persistent stopwatch, built on
// pkg/tick's lossless-by-default conversion rules.
package main

import (
	"fmt"
	"os"
)

const version = "1.0.0"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "--help", "-h", "help":
		printUsage()
		return
	case "--version", "-v", "version":
		fmt.Println("tickctl", version)
		return
	}

	a, err := newApp()
	if err != nil {
		fatal("%v", err)
	}
	defer a.Close()

	switch os.Args[1] {
	// Pure conversions and clock reads
	case "convert":
		os.Exit(a.cmdConvert(os.Args[2:]))
	case "now":
		os.Exit(a.cmdNow(os.Args[2:]))
	case "sync":
		os.Exit(a.cmdSync(os.Args[2:]))

	// Stopwatch sessions
	case "start":
		os.Exit(a.cmdStart(os.Args[2:]))
	case "lap":
		os.Exit(a.cmdLap(os.Args[2:]))
	case "stop":
		os.Exit(a.cmdStop(os.Args[2:]))
	case "log":
		os.Exit(a.cmdLog(os.Args[2:]))

	default:
		fmt.Fprintf(os.Stderr, "tickctl: unknown command %q\n", os.Args[1])
		fmt.Fprintln(os.Stderr, "Run 'tickctl --help' for usage.")
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Print(`tickctl — unit-safe time arithmetic and stopwatch

Durations carry their unit; conversions that would silently drop
precision are refused unless a truncation policy names the rounding rule.

Usage:
  tickctl <command> [flags]

Conversions and clocks:
  convert [--policy P] <count> <from> <to>
                            Convert a tick count between units.
                            P: exact (default) | trunc | floor | ceil | round
  now [--clock C]           Current instant as ns ticks. C: wall | steady | ntp
  sync                      Query NTP, report offset against the system clock

Stopwatch (persisted, wall clock):
  start <name>              Start a named session
  lap <name> [label]        Record a split on a running session
  stop <name>               Stop a running session, print its total
  log [name]                Show sessions and their laps

Units: ns us ms s min h d

Environment:
  TICKCTL_DB    SQLite database path (default: .tickctl/tickctl.db)
  TICKCTL_NTP   NTP server for sync/now --clock ntp (default: pool.ntp.org)
  TICKCTL_LOG   Log level: debug|info|warn|error (default: warn)

All commands support --json for machine-readable output.

Exit codes:
  0  success
  1  error
  2  lossy conversion refused (pass --policy)
`)
}

func fatal(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "tickctl: "+format+"\n", args...)
	os.Exit(1)
}
