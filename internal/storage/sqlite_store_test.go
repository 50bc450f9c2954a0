package storage

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/julianstephens/daybook/internal/models"
)

func testStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store := NewSQLiteStore(filepath.Join(t.TempDir(), "daybook.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func event(title, date, start, end string) *models.Event {
	return &models.Event{Title: title, Category: models.CategoryOther, Date: date, Start: start, End: end}
}

func TestSQLiteStore_CreateAndQuery(t *testing.T) {
	store := testStore(t)

	id, err := store.Create(event("Standup", "2026-09-01", "09:00", "09:15"))
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if id == "" {
		t.Fatal("Create returned an empty id")
	}

	events, err := store.Query("", "")
	if err != nil {
		t.Fatalf("Query failed: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("got %d events, want 1", len(events))
	}
	if events[0].ExternalID != id || events[0].Title != "Standup" {
		t.Errorf("stored event = %+v", events[0])
	}
}

func TestSQLiteStore_QueryDateBoundsAndOrder(t *testing.T) {
	store := testStore(t)
	for _, e := range []*models.Event{
		event("C", "2026-09-03", "09:00", "10:00"),
		event("A2", "2026-09-01", "14:00", "15:00"),
		event("A1", "2026-09-01", "09:00", "10:00"),
		event("B", "2026-09-02", "09:00", "10:00"),
	} {
		if _, err := store.Create(e); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
	}

	events, err := store.Query("2026-09-01", "2026-09-02")
	if err != nil {
		t.Fatalf("Query failed: %v", err)
	}
	if len(events) != 3 {
		t.Fatalf("got %d events, want 3", len(events))
	}
	want := []string{"A1", "A2", "B"}
	for i, title := range want {
		if events[i].Title != title {
			t.Errorf("events[%d] = %q, want %q", i, events[i].Title, title)
		}
	}
}

func TestSQLiteStore_UpdateAndDelete(t *testing.T) {
	store := testStore(t)
	id, err := store.Create(event("Lab", "2026-09-01", "14:00", "16:00"))
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	updated := event("Lab", "2026-09-01", "15:00", "17:00")
	if err := store.Update(id, updated); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	events, _ := store.Query("", "")
	if events[0].Start != "15:00" {
		t.Errorf("update not persisted: %+v", events[0])
	}

	if err := store.Delete(id); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	events, _ = store.Query("", "")
	if len(events) != 0 {
		t.Errorf("event not deleted")
	}
}

func TestSQLiteStore_MissingIDsAreRemoteErrors(t *testing.T) {
	store := testStore(t)

	err := store.Update("no-such-id", event("X", "2026-09-01", "09:00", "10:00"))
	var remoteErr *RemoteError
	if !errors.As(err, &remoteErr) {
		t.Errorf("Update on missing id = %v, want *RemoteError", err)
	}
	if !errors.As(store.Delete("no-such-id"), &remoteErr) {
		t.Errorf("Delete on missing id should be a *RemoteError")
	}
}

func TestSQLiteStore_OpenWithoutInitFails(t *testing.T) {
	store := NewSQLiteStore(filepath.Join(t.TempDir(), "missing.db"))
	if err := store.Open(); err == nil {
		t.Error("Open on a missing store should fail")
	}
}

func TestSQLiteStore_FindDuplicate(t *testing.T) {
	store := testStore(t)
	if _, err := store.Create(event("Team Standup", "2026-09-01", "09:00", "09:15")); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	// Same day, same start, title contained in the existing one.
	dup, err := store.FindDuplicate(event("Standup", "2026-09-01", "09:00", "09:30"))
	if err != nil {
		t.Fatalf("FindDuplicate failed: %v", err)
	}
	if dup == nil || dup.Title != "Team Standup" {
		t.Errorf("fuzzy duplicate missed: %v", dup)
	}

	// Different start is not a duplicate.
	if dup, _ := store.FindDuplicate(event("Standup", "2026-09-01", "10:00", "10:30")); dup != nil {
		t.Errorf("different start matched: %v", dup)
	}

	// Unrelated title is not a duplicate.
	if dup, _ := store.FindDuplicate(event("Yoga", "2026-09-01", "09:00", "10:00")); dup != nil {
		t.Errorf("unrelated title matched: %v", dup)
	}
}

func TestMemoryStore_FailOnSimulatesRemoteFaults(t *testing.T) {
	store := NewMemoryStore()
	store.FailOn = "create"

	_, err := store.Create(event("X", "2026-09-01", "09:00", "10:00"))
	var remoteErr *RemoteError
	if !errors.As(err, &remoteErr) || remoteErr.Op != "create" {
		t.Errorf("simulated failure = %v", err)
	}

	store.FailOn = ""
	id, err := store.Create(event("X", "2026-09-01", "09:00", "10:00"))
	if err != nil || id == "" {
		t.Fatalf("Create failed after clearing FailOn: %v", err)
	}
	if store.Len() != 1 {
		t.Errorf("store has %d events", store.Len())
	}
}
