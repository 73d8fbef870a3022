// Package store persists stopwatch sessions and laps for tickctl.
//
// SQLite in WAL mode lets concurrent tickctl invocations (a `lap` firing
// while a `log` is reading) share one database file without coordination
// beyond the busy timeout. Every time-valued column is an int64 nanosecond
// tick count; the unit is part of the schema contract, and readers rebuild
// typed values with tick.Nanoseconds rather than guessing a unit.
package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/daviddao/tick/pkg/model"

	_ "modernc.org/sqlite"
)

var (
	// ErrNotFound is reported when a session or lap does not exist.
	ErrNotFound = errors.New("store: not found")

	// ErrSessionStopped is reported when a lap or stop targets a session
	// that has already been stopped.
	ErrSessionStopped = errors.New("store: session already stopped")

	// ErrSessionRunning is reported when a session is started while a
	// running session of the same name exists.
	ErrSessionRunning = errors.New("store: session already running")
)

// Store manages all SQLite operations with WAL mode for concurrent access.
type Store struct {
	db *sql.DB
}

// New opens (or creates) the SQLite database and initializes the schema.
func New(path string) (*Store, error) {
	dsn := path + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(60000)&_pragma=synchronous(NORMAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(30 * time.Minute)

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error { return s.db.Close() }

// retryOnContention wraps retryOp from retry.go with the default config.
// All store write operations should use this to handle transient SQLite
// errors (BUSY, LOCKED, IOERR_SHORT_READ) under concurrent access.
func retryOnContention(fn func() error) error {
	return retryOp(defaultRetryConfig, fn)
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS sessions (
		id              TEXT PRIMARY KEY,
		name            TEXT NOT NULL,
		started_unix_ns INTEGER NOT NULL,
		stopped_unix_ns INTEGER NOT NULL DEFAULT 0
	);
	CREATE INDEX IF NOT EXISTS idx_sessions_name ON sessions(name, started_unix_ns);

	CREATE TABLE IF NOT EXISTS laps (
		id          TEXT PRIMARY KEY,
		session_id  TEXT NOT NULL REFERENCES sessions(id),
		seq         INTEGER NOT NULL,
		elapsed_ns  INTEGER NOT NULL,
		label       TEXT,
		at_unix_ns  INTEGER NOT NULL,
		UNIQUE (session_id, seq)
	);
	CREATE INDEX IF NOT EXISTS idx_laps_session ON laps(session_id, seq);
	`
	_, err := s.db.Exec(schema)
	return err
}

// ---------------------------------------------------------------------------
// Sessions
// ---------------------------------------------------------------------------

// StartSession creates a running session. At most one running session may
// exist per name; a second start reports ErrSessionRunning.
func (s *Store) StartSession(name string, startedNS int64) (*model.Session, error) {
	if _, err := s.RunningSession(name); err == nil {
		return nil, fmt.Errorf("session %q: %w", name, ErrSessionRunning)
	}
	sess := &model.Session{
		ID:        uuid.NewString(),
		Name:      name,
		StartedNS: startedNS,
	}
	err := retryOnContention(func() error {
		_, err := s.db.Exec(
			`INSERT INTO sessions (id, name, started_unix_ns, stopped_unix_ns)
			 VALUES (?, ?, ?, 0)`,
			sess.ID, sess.Name, sess.StartedNS,
		)
		return err
	})
	if err != nil {
		return nil, err
	}
	return sess, nil
}

// RunningSession returns the running session with the given name, or
// ErrNotFound.
func (s *Store) RunningSession(name string) (*model.Session, error) {
	row := s.db.QueryRow(
		`SELECT id, name, started_unix_ns, stopped_unix_ns
		 FROM sessions WHERE name = ? AND stopped_unix_ns = 0
		 ORDER BY started_unix_ns DESC LIMIT 1`, name,
	)
	return scanSession(row)
}

// GetSession retrieves a session by ID.
func (s *Store) GetSession(id string) (*model.Session, error) {
	row := s.db.QueryRow(
		`SELECT id, name, started_unix_ns, stopped_unix_ns FROM sessions WHERE id = ?`, id,
	)
	return scanSession(row)
}

// StopSession marks the running session with the given name as stopped.
// Stopping a name whose sessions are all finished reports
// ErrSessionStopped; an unknown name reports ErrNotFound.
func (s *Store) StopSession(name string, stoppedNS int64) (*model.Session, error) {
	sess, err := s.RunningSession(name)
	if errors.Is(err, ErrNotFound) {
		if all, listErr := s.ListSessions(name); listErr == nil && len(all) > 0 {
			return nil, fmt.Errorf("session %q: %w", name, ErrSessionStopped)
		}
		return nil, err
	}
	if err != nil {
		return nil, err
	}
	err = retryOnContention(func() error {
		_, err := s.db.Exec(
			`UPDATE sessions SET stopped_unix_ns = ? WHERE id = ?`,
			stoppedNS, sess.ID,
		)
		return err
	})
	if err != nil {
		return nil, err
	}
	sess.StoppedNS = stoppedNS
	return sess, nil
}

// ListSessions returns all sessions for a name, newest first. An empty
// name lists every session.
func (s *Store) ListSessions(name string) ([]model.Session, error) {
	query := `SELECT id, name, started_unix_ns, stopped_unix_ns FROM sessions`
	args := []any{}
	if name != "" {
		query += ` WHERE name = ?`
		args = append(args, name)
	}
	query += ` ORDER BY started_unix_ns DESC`

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sessions []model.Session
	for rows.Next() {
		var sess model.Session
		if err := rows.Scan(&sess.ID, &sess.Name, &sess.StartedNS, &sess.StoppedNS); err != nil {
			return nil, err
		}
		sessions = append(sessions, sess)
	}
	return sessions, rows.Err()
}

func scanSession(row *sql.Row) (*model.Session, error) {
	var sess model.Session
	if err := row.Scan(&sess.ID, &sess.Name, &sess.StartedNS, &sess.StoppedNS); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &sess, nil
}

// ---------------------------------------------------------------------------
// Laps
// ---------------------------------------------------------------------------

// AddLap appends a lap to the running session with the given name,
// assigning the next sequence number. elapsedNS is the interval since the
// previous lap (or the start), measured by the caller.
func (s *Store) AddLap(name string, elapsedNS int64, label string, atNS int64) (*model.Lap, error) {
	sess, err := s.RunningSession(name)
	if err != nil {
		return nil, err
	}
	lap := &model.Lap{
		ID:        uuid.NewString(),
		SessionID: sess.ID,
		ElapsedNS: elapsedNS,
		Label:     label,
		AtNS:      atNS,
	}
	err = retryOnContention(func() error {
		// Sequence assignment and insert in one statement keeps two
		// concurrent `lap` invocations from claiming the same seq.
		return s.db.QueryRow(
			`INSERT INTO laps (id, session_id, seq, elapsed_ns, label, at_unix_ns)
			 VALUES (?, ?,
			         (SELECT COALESCE(MAX(seq), 0) + 1 FROM laps WHERE session_id = ?),
			         ?, ?, ?)
			 RETURNING seq`,
			lap.ID, lap.SessionID, lap.SessionID, lap.ElapsedNS, lap.Label, lap.AtNS,
		).Scan(&lap.Seq)
	})
	if err != nil {
		return nil, err
	}
	return lap, nil
}

// ListLaps returns a session's laps in sequence order.
func (s *Store) ListLaps(sessionID string) ([]model.Lap, error) {
	rows, err := s.db.Query(
		`SELECT id, session_id, seq, elapsed_ns, COALESCE(label,''), at_unix_ns
		 FROM laps WHERE session_id = ? ORDER BY seq ASC`, sessionID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var laps []model.Lap
	for rows.Next() {
		var l model.Lap
		if err := rows.Scan(&l.ID, &l.SessionID, &l.Seq, &l.ElapsedNS, &l.Label, &l.AtNS); err != nil {
			return nil, err
		}
		laps = append(laps, l)
	}
	return laps, rows.Err()
}

// LastLap returns the most recent lap of a session, or ErrNotFound when
// the session has no laps yet.
func (s *Store) LastLap(sessionID string) (*model.Lap, error) {
	var l model.Lap
	err := s.db.QueryRow(
		`SELECT id, session_id, seq, elapsed_ns, COALESCE(label,''), at_unix_ns
		 FROM laps WHERE session_id = ? ORDER BY seq DESC LIMIT 1`, sessionID,
	).Scan(&l.ID, &l.SessionID, &l.Seq, &l.ElapsedNS, &l.Label, &l.AtNS)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &l, nil
}
