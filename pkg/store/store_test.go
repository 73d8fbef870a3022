package store

import (
	"fmt"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	s, err := New(dbPath)
	require.NoError(t, err, "New(%q)", dbPath)
	t.Cleanup(func() { s.Close() })
	return s
}

// --- Session tests ---

func TestStartSession(t *testing.T) {
	s := newTestStore(t)

	sess, err := s.StartSession("build", 1000)
	require.NoError(t, err)
	assert.NotEmpty(t, sess.ID)
	assert.Equal(t, "build", sess.Name)
	assert.EqualValues(t, 1000, sess.StartedNS)
	assert.True(t, sess.Running())
}

func TestStartSession_DuplicateRunning(t *testing.T) {
	s := newTestStore(t)

	_, err := s.StartSession("build", 1000)
	require.NoError(t, err)

	_, err = s.StartSession("build", 2000)
	assert.ErrorIs(t, err, ErrSessionRunning)

	// A different name is independent.
	_, err = s.StartSession("deploy", 2000)
	assert.NoError(t, err)
}

func TestStartSession_AfterStop(t *testing.T) {
	s := newTestStore(t)

	_, err := s.StartSession("build", 1000)
	require.NoError(t, err)
	_, err = s.StopSession("build", 5000)
	require.NoError(t, err)

	// The name is free again once the previous run stopped.
	sess, err := s.StartSession("build", 6000)
	require.NoError(t, err)
	assert.EqualValues(t, 6000, sess.StartedNS)
}

func TestRunningSession_NotFound(t *testing.T) {
	s := newTestStore(t)
	_, err := s.RunningSession("ghost")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStopSession(t *testing.T) {
	s := newTestStore(t)

	started, err := s.StartSession("build", 1000)
	require.NoError(t, err)

	stopped, err := s.StopSession("build", 4000)
	require.NoError(t, err)
	assert.Equal(t, started.ID, stopped.ID)
	assert.EqualValues(t, 4000, stopped.StoppedNS)
	assert.False(t, stopped.Running())

	got, err := s.GetSession(started.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 4000, got.StoppedNS)
}

func TestStopSession_AlreadyStopped(t *testing.T) {
	s := newTestStore(t)

	_, err := s.StartSession("build", 1000)
	require.NoError(t, err)
	_, err = s.StopSession("build", 2000)
	require.NoError(t, err)

	_, err = s.StopSession("build", 3000)
	assert.ErrorIs(t, err, ErrSessionStopped)
}

func TestStopSession_UnknownName(t *testing.T) {
	s := newTestStore(t)
	_, err := s.StopSession("ghost", 1000)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListSessions(t *testing.T) {
	s := newTestStore(t)

	for i := 0; i < 3; i++ {
		_, err := s.StartSession("build", int64(1000*(i+1)))
		require.NoError(t, err)
		_, err = s.StopSession("build", int64(1000*(i+1)+500))
		require.NoError(t, err)
	}
	_, err := s.StartSession("deploy", 9000)
	require.NoError(t, err)

	builds, err := s.ListSessions("build")
	require.NoError(t, err)
	require.Len(t, builds, 3)
	// Newest first.
	assert.EqualValues(t, 3000, builds[0].StartedNS)
	assert.EqualValues(t, 1000, builds[2].StartedNS)

	all, err := s.ListSessions("")
	require.NoError(t, err)
	assert.Len(t, all, 4)
}

// --- Lap tests ---

func TestAddLap_AssignsSequence(t *testing.T) {
	s := newTestStore(t)

	sess, err := s.StartSession("build", 1000)
	require.NoError(t, err)

	for i := 1; i <= 3; i++ {
		lap, err := s.AddLap("build", int64(100*i), fmt.Sprintf("step-%d", i), int64(1000+100*i))
		require.NoError(t, err)
		assert.EqualValues(t, i, lap.Seq)
		assert.Equal(t, sess.ID, lap.SessionID)
	}

	laps, err := s.ListLaps(sess.ID)
	require.NoError(t, err)
	require.Len(t, laps, 3)
	assert.Equal(t, "step-1", laps[0].Label)
	assert.EqualValues(t, 300, laps[2].ElapsedNS)
}

func TestAddLap_NoRunningSession(t *testing.T) {
	s := newTestStore(t)
	_, err := s.AddLap("ghost", 100, "", 200)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLastLap(t *testing.T) {
	s := newTestStore(t)

	sess, err := s.StartSession("build", 1000)
	require.NoError(t, err)

	_, err = s.LastLap(sess.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = s.AddLap("build", 111, "first", 1111)
	require.NoError(t, err)
	_, err = s.AddLap("build", 222, "second", 1333)
	require.NoError(t, err)

	last, err := s.LastLap(sess.ID)
	require.NoError(t, err)
	assert.Equal(t, "second", last.Label)
	assert.EqualValues(t, 2, last.Seq)
}

func TestAddLap_ConcurrentSequences(t *testing.T) {
	s := newTestStore(t)

	sess, err := s.StartSession("build", 1000)
	require.NoError(t, err)

	const n = 8
	var wg sync.WaitGroup
	errs := make([]error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = s.AddLap("build", int64(i), "", int64(i))
		}(i)
	}
	wg.Wait()
	for i, err := range errs {
		require.NoError(t, err, "lap %d", i)
	}

	laps, err := s.ListLaps(sess.ID)
	require.NoError(t, err)
	require.Len(t, laps, n)
	// Sequences must be dense and unique.
	for i, lap := range laps {
		assert.EqualValues(t, i+1, lap.Seq)
	}
}
