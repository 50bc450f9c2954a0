package storage

import (
	"fmt"

	"github.com/julianstephens/daybook/internal/models"
)

// CalendarStore is the system of record behind the in-memory schedule. It
// is an optional collaborator: a nil store means local-only mode, and the
// engine's consistency logic never depends on its presence.
type CalendarStore interface {
	// Lifecycle
	Init() error
	Open() error
	Close() error

	// Events
	Create(event *models.Event) (string, error)
	Update(id string, event *models.Event) error
	Delete(id string) error
	Query(fromDate, toDate string) ([]*models.Event, error)

	// FindDuplicate looks for a same-day event with a fuzzy title match
	// (substring either direction, case-insensitive) and the same start
	// time. Returns nil when nothing matches.
	FindDuplicate(event *models.Event) (*models.Event, error)
}

// RemoteError wraps any calendar store failure. Operations that hit one
// abort without touching local state, and are never retried automatically.
type RemoteError struct {
	Op  string
	Err error
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("calendar store %s failed: %v", e.Op, e.Err)
}

func (e *RemoteError) Unwrap() error {
	return e.Err
}
