package ntpclock

import (
	"errors"
	"testing"
	"time"

	"github.com/beevik/ntp"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClock(offset time.Duration, queryErr error) *Clock {
	c := New("ntp.test.invalid", zerolog.Nop())
	c.query = func(server string, opts ntp.QueryOptions) (*ntp.Response, error) {
		if queryErr != nil {
			return nil, queryErr
		}
		return &ntp.Response{ClockOffset: offset, Stratum: 2}, nil
	}
	return c
}

func TestOffsetBeforeSync(t *testing.T) {
	c := newTestClock(0, nil)
	_, err := c.Offset()
	assert.ErrorIs(t, err, ErrNotSynced)

	_, err = c.Now()
	assert.ErrorIs(t, err, ErrNotSynced)
}

func TestSyncCachesOffset(t *testing.T) {
	c := newTestClock(250*time.Millisecond, nil)
	require.NoError(t, c.Sync())

	off, err := c.Offset()
	require.NoError(t, err)
	assert.Equal(t, 250*time.Millisecond, off)
}

func TestSyncFailureKeepsState(t *testing.T) {
	c := newTestClock(100*time.Millisecond, nil)
	require.NoError(t, c.Sync())

	c.query = func(string, ntp.QueryOptions) (*ntp.Response, error) {
		return nil, errors.New("timeout")
	}
	require.Error(t, c.Sync())

	// A failed refresh must not wipe the last good offset.
	off, err := c.Offset()
	require.NoError(t, err)
	assert.Equal(t, 100*time.Millisecond, off)
}

func TestTicksAppliesOffset(t *testing.T) {
	offset := 2 * time.Second
	c := newTestClock(offset, nil)
	require.NoError(t, c.Sync())

	before := time.Now().Add(offset).UnixNano()
	got := c.Ticks()
	after := time.Now().Add(offset).UnixNano()
	assert.GreaterOrEqual(t, got, before)
	assert.LessOrEqual(t, got, after)
}

func TestNowReturnsNTPTaggedTime(t *testing.T) {
	c := newTestClock(0, nil)
	require.NoError(t, c.Sync())

	tp, err := c.Now()
	require.NoError(t, err)
	// Nanoseconds since the Unix epoch: far past the year 2000.
	assert.Greater(t, tp.SinceEpoch().Count(), int64(946_684_800_000_000_000))
}
