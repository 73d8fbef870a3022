// Package model defines the domain types persisted by tickctl's stopwatch
// store.
//
// Everything time-valued is stored as an int64 nanosecond tick count on the
// wall clock, extracted at the pkg/tick boundary via Count(). The unit is
// fixed by the schema, not rediscovered at read time: a row's *_ns column
// is nanoseconds by contract, and readers rebuild typed values by naming
// that unit (tick.Nanoseconds) rather than guessing.
package model

// Session is one named stopwatch. StoppedNS is zero while the session is
// running; laps may only be added to a running session.
type Session struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	StartedNS int64  `json:"started_unix_ns"`
	StoppedNS int64  `json:"stopped_unix_ns,omitempty"`
}

// Running reports whether the session has not been stopped yet.
func (s Session) Running() bool { return s.StoppedNS == 0 }

// ElapsedNS returns the session's total span in nanoseconds: up to the
// stop mark for finished sessions, up to nowNS for running ones. The
// caller supplies nowNS so the model stays clock-free.
func (s Session) ElapsedNS(nowNS int64) int64 {
	if s.Running() {
		return nowNS - s.StartedNS
	}
	return s.StoppedNS - s.StartedNS
}

// Lap is one recorded split within a session. Seq starts at 1 and is
// assigned by the store in insertion order; ElapsedNS is the time since
// the previous lap (or since start, for the first).
type Lap struct {
	ID        string `json:"id"`
	SessionID string `json:"session_id"`
	Seq       int64  `json:"seq"`
	ElapsedNS int64  `json:"elapsed_ns"`
	Label     string `json:"label,omitempty"`
	AtNS      int64  `json:"at_unix_ns"`
}
