package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/julianstephens/daybook/internal/models"
)

const schema = `
CREATE TABLE IF NOT EXISTS events (
	id         TEXT PRIMARY KEY,
	title      TEXT NOT NULL,
	category   TEXT NOT NULL,
	location   TEXT NOT NULL DEFAULT '',
	date       TEXT NOT NULL,
	start_time TEXT NOT NULL,
	end_time   TEXT NOT NULL,
	notes      TEXT NOT NULL DEFAULT ''
);
CREATE INDEX IF NOT EXISTS idx_events_date ON events(date);
`

// SQLiteStore is the sqlite-backed calendar store. All failures come back
// as *RemoteError so the executor can distinguish remote faults from local
// validation problems.
type SQLiteStore struct {
	path string
	db   *sql.DB
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{path: path}
}

func (s *SQLiteStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return &RemoteError{Op: "init", Err: err}
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return &RemoteError{Op: "init", Err: err}
	}
	s.db = db

	if _, err := db.Exec(schema); err != nil {
		return &RemoteError{Op: "init", Err: err}
	}
	return nil
}

func (s *SQLiteStore) Open() error {
	if s.db != nil {
		return nil
	}
	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return &RemoteError{Op: "open", Err: fmt.Errorf("store not initialized, run 'daybook init' first")}
	}
	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return &RemoteError{Op: "open", Err: err}
	}
	s.db = db
	return nil
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *SQLiteStore) Create(event *models.Event) (string, error) {
	id := uuid.New().String()
	_, err := s.db.Exec(`
		INSERT INTO events (id, title, category, location, date, start_time, end_time, notes)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		id, event.Title, string(event.Category), event.Location, event.Date, event.Start, event.End, event.Notes,
	)
	if err != nil {
		return "", &RemoteError{Op: "create", Err: err}
	}
	return id, nil
}

func (s *SQLiteStore) Update(id string, event *models.Event) error {
	res, err := s.db.Exec(`
		UPDATE events SET title = ?, category = ?, location = ?, date = ?, start_time = ?, end_time = ?, notes = ?
		WHERE id = ?`,
		event.Title, string(event.Category), event.Location, event.Date, event.Start, event.End, event.Notes, id,
	)
	if err != nil {
		return &RemoteError{Op: "update", Err: err}
	}
	n, err := res.RowsAffected()
	if err != nil {
		return &RemoteError{Op: "update", Err: err}
	}
	if n == 0 {
		return &RemoteError{Op: "update", Err: fmt.Errorf("no event with id %s", id)}
	}
	return nil
}

func (s *SQLiteStore) Delete(id string) error {
	res, err := s.db.Exec("DELETE FROM events WHERE id = ?", id)
	if err != nil {
		return &RemoteError{Op: "delete", Err: err}
	}
	n, err := res.RowsAffected()
	if err != nil {
		return &RemoteError{Op: "delete", Err: err}
	}
	if n == 0 {
		return &RemoteError{Op: "delete", Err: fmt.Errorf("no event with id %s", id)}
	}
	return nil
}

// Query returns events with fromDate <= date <= toDate, ordered by date and
// start time. Empty bounds are unbounded.
func (s *SQLiteStore) Query(fromDate, toDate string) ([]*models.Event, error) {
	q := "SELECT id, title, category, location, date, start_time, end_time, notes FROM events"
	var conds []string
	var args []any
	if fromDate != "" {
		conds = append(conds, "date >= ?")
		args = append(args, fromDate)
	}
	if toDate != "" {
		conds = append(conds, "date <= ?")
		args = append(args, toDate)
	}
	if len(conds) > 0 {
		q += " WHERE " + strings.Join(conds, " AND ")
	}
	q += " ORDER BY date, start_time"

	rows, err := s.db.Query(q, args...)
	if err != nil {
		return nil, &RemoteError{Op: "query", Err: err}
	}
	defer rows.Close()

	var events []*models.Event
	for rows.Next() {
		var e models.Event
		var category string
		if err := rows.Scan(&e.ExternalID, &e.Title, &category, &e.Location, &e.Date, &e.Start, &e.End, &e.Notes); err != nil {
			return nil, &RemoteError{Op: "query", Err: err}
		}
		e.Category = models.Category(category)
		events = append(events, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, &RemoteError{Op: "query", Err: err}
	}
	return events, nil
}

func (s *SQLiteStore) FindDuplicate(event *models.Event) (*models.Event, error) {
	sameDay, err := s.Query(event.Date, event.Date)
	if err != nil {
		return nil, err
	}
	for _, existing := range sameDay {
		if existing.Start != event.Start {
			continue
		}
		a := strings.ToLower(existing.Title)
		b := strings.ToLower(event.Title)
		if strings.Contains(a, b) || strings.Contains(b, a) {
			return existing, nil
		}
	}
	return nil, nil
}

func (s *SQLiteStore) Path() string {
	return s.path
}
