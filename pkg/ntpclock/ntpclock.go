// Package ntpclock provides an NTP-disciplined wall clock as an external
// provider for pkg/tick.
//
// The provider queries an NTP server for the offset between the local
// system clock and network time, caches it, and serves ticks as the local
// reading corrected by the cached offset. Sync is the only networked
// operation; reads never block on the network. The clock carries its own
// tag (NTP), so time points derived from it can never be mixed with plain
// wall or steady readings — callers that want that mixing must convert at
// the raw-count boundary and own the decision.
package ntpclock

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/beevik/ntp"
	"github.com/rs/zerolog"

	"github.com/daviddao/tick/pkg/tick"
)

// ErrNotSynced is reported when the clock is read before the first
// successful Sync.
var ErrNotSynced = errors.New("ntpclock: not synchronized")

// NTP is the clock tag for NTP-corrected time points. Like the system wall
// clock it is epoch-relative and may step when a sync lands, so it makes
// no monotonicity promise.
type NTP struct{}

func (NTP) ClockName() string { return "ntp" }
func (NTP) Monotonic() bool   { return false }

// querier matches ntp.QueryWithOptions; swapped out in tests.
type querier func(server string, opts ntp.QueryOptions) (*ntp.Response, error)

// Clock is a tick.Source in nanoseconds.
var _ tick.Source[int64, tick.Nano] = (*Clock)(nil)

// Clock queries an NTP server and serves offset-corrected wall time.
// Safe for concurrent use: Sync takes the write side of the lock, readers
// take the read side.
type Clock struct {
	server  string
	timeout time.Duration
	query   querier
	log     zerolog.Logger

	mu     sync.RWMutex
	offset time.Duration
	synced bool
}

// New builds a Clock for the given server ("pool.ntp.org" style). No
// network traffic happens until Sync.
func New(server string, log zerolog.Logger) *Clock {
	return &Clock{
		server:  server,
		timeout: 5 * time.Second,
		query:   ntp.QueryWithOptions,
		log:     log,
	}
}

// Sync queries the server and replaces the cached offset. Callers decide
// the cadence; the clock itself never refreshes in the background.
func (c *Clock) Sync() error {
	resp, err := c.query(c.server, ntp.QueryOptions{Timeout: c.timeout})
	if err != nil {
		return fmt.Errorf("query %s: %w", c.server, err)
	}
	if err := resp.Validate(); err != nil {
		return fmt.Errorf("validate response from %s: %w", c.server, err)
	}

	c.mu.Lock()
	c.offset = resp.ClockOffset
	c.synced = true
	c.mu.Unlock()

	c.log.Debug().
		Str("server", c.server).
		Dur("offset", resp.ClockOffset).
		Dur("rtt", resp.RTT).
		Uint8("stratum", resp.Stratum).
		Msg("ntp sync")
	return nil
}

// Offset returns the cached clock offset, or ErrNotSynced before the
// first successful Sync.
func (c *Clock) Offset() (time.Duration, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if !c.synced {
		return 0, ErrNotSynced
	}
	return c.offset, nil
}

// Ticks implements tick.Source: nanoseconds since the Unix epoch,
// corrected by the cached offset. Before the first Sync the correction is
// zero; callers that must not run uncorrected should use Now instead.
func (c *Clock) Ticks() int64 {
	c.mu.RLock()
	off := c.offset
	c.mu.RUnlock()
	return time.Now().Add(off).UnixNano()
}

// Now returns the current NTP-corrected instant, or ErrNotSynced before
// the first successful Sync.
func (c *Clock) Now() (tick.Time[NTP, int64, tick.Nano], error) {
	c.mu.RLock()
	synced := c.synced
	c.mu.RUnlock()
	if !synced {
		return tick.Time[NTP, int64, tick.Nano]{}, ErrNotSynced
	}
	return tick.NowFrom[NTP, int64, tick.Nano](c), nil
}
