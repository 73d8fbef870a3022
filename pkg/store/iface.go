// iface.go defines the StoreInterface for dependency injection and testing.
//
// The concrete *Store type satisfies this interface. Code that depends on
// the store (e.g., the cmd layer) can accept StoreInterface instead of
// *Store, enabling mock injection in tests.
package store

import "github.com/daviddao/tick/pkg/model"

// StoreInterface defines the full set of store operations.
// The concrete *Store type implements this interface.
type StoreInterface interface {
	// Close closes the database connection.
	Close() error

	// --- Sessions ---

	// StartSession creates a running session; ErrSessionRunning if one
	// with the same name is already running.
	StartSession(name string, startedNS int64) (*model.Session, error)

	// RunningSession returns the running session for a name.
	RunningSession(name string) (*model.Session, error)

	// GetSession retrieves a session by ID.
	GetSession(id string) (*model.Session, error)

	// StopSession marks the running session for a name as stopped.
	StopSession(name string, stoppedNS int64) (*model.Session, error)

	// ListSessions returns sessions for a name (all names if empty),
	// newest first.
	ListSessions(name string) ([]model.Session, error)

	// --- Laps ---

	// AddLap appends a lap to the running session for a name.
	AddLap(name string, elapsedNS int64, label string, atNS int64) (*model.Lap, error)

	// ListLaps returns a session's laps in sequence order.
	ListLaps(sessionID string) ([]model.Lap, error)

	// LastLap returns the most recent lap of a session.
	LastLap(sessionID string) (*model.Lap, error)
}

var _ StoreInterface = (*Store)(nil)
