package storage

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/julianstephens/daybook/internal/models"
)

// MemoryStore is an in-process calendar store. It backs tests and throwaway
// sessions where persistence is unwanted but store semantics still matter.
type MemoryStore struct {
	events map[string]models.Event

	// FailOn, when non-empty, makes the named operation ("create",
	// "update", "delete", "query") fail with a RemoteError. Tests use it to
	// exercise remote-failure paths.
	FailOn string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{events: make(map[string]models.Event)}
}

func (m *MemoryStore) Init() error  { return nil }
func (m *MemoryStore) Open() error  { return nil }
func (m *MemoryStore) Close() error { return nil }

func (m *MemoryStore) fail(op string) error {
	if m.FailOn == op {
		return &RemoteError{Op: op, Err: fmt.Errorf("simulated %s failure", op)}
	}
	return nil
}

func (m *MemoryStore) Create(event *models.Event) (string, error) {
	if err := m.fail("create"); err != nil {
		return "", err
	}
	id := uuid.New().String()
	stored := *event
	stored.ExternalID = id
	m.events[id] = stored
	return id, nil
}

func (m *MemoryStore) Update(id string, event *models.Event) error {
	if err := m.fail("update"); err != nil {
		return err
	}
	if _, ok := m.events[id]; !ok {
		return &RemoteError{Op: "update", Err: fmt.Errorf("no event with id %s", id)}
	}
	stored := *event
	stored.ExternalID = id
	m.events[id] = stored
	return nil
}

func (m *MemoryStore) Delete(id string) error {
	if err := m.fail("delete"); err != nil {
		return err
	}
	if _, ok := m.events[id]; !ok {
		return &RemoteError{Op: "delete", Err: fmt.Errorf("no event with id %s", id)}
	}
	delete(m.events, id)
	return nil
}

func (m *MemoryStore) Query(fromDate, toDate string) ([]*models.Event, error) {
	if err := m.fail("query"); err != nil {
		return nil, err
	}
	var events []*models.Event
	for _, e := range m.events {
		if fromDate != "" && e.Date < fromDate {
			continue
		}
		if toDate != "" && e.Date > toDate {
			continue
		}
		copied := e
		events = append(events, &copied)
	}
	return events, nil
}

func (m *MemoryStore) FindDuplicate(event *models.Event) (*models.Event, error) {
	sameDay, err := m.Query(event.Date, event.Date)
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

// Len reports the number of stored events.
func (m *MemoryStore) Len() int {
	return len(m.events)
}

// Get returns the stored event for an id, if present.
func (m *MemoryStore) Get(id string) (models.Event, bool) {
	e, ok := m.events[id]
	return e, ok
}
