package slots

import (
	"testing"

	"github.com/julianstephens/daybook/internal/models"
)

func event(title, date, start, end string) *models.Event {
	return &models.Event{Title: title, Date: date, Start: start, End: end}
}

func TestFindFreeSlots_EmptyDayIsOneFullWindow(t *testing.T) {
	f := MustDefault()
	free := f.FindFreeSlots(nil, "2026-09-01", 60)
	if len(free) != 1 {
		t.Fatalf("got %d slots, want 1", len(free))
	}
	if free[0].Start != "08:00" || free[0].End != "20:00" {
		t.Errorf("slot = %s-%s, want 08:00-20:00", free[0].Start, free[0].End)
	}
}

func TestFindFreeSlots_GapsAroundTwoEvents(t *testing.T) {
	f := MustDefault()
	events := []*models.Event{
		event("B", "2026-09-01", "14:00", "15:00"),
		event("A", "2026-09-01", "09:00", "10:00"),
	}

	free := f.FindFreeSlots(events, "2026-09-01", 30)
	want := []Slot{
		{Start: "08:00", End: "09:00"},
		{Start: "10:00", End: "14:00"},
		{Start: "15:00", End: "20:00"},
	}
	if len(free) != len(want) {
		t.Fatalf("got %d slots %v, want %d", len(free), free, len(want))
	}
	for i := range want {
		if free[i] != want[i] {
			t.Errorf("slot %d = %v, want %v", i, free[i], want[i])
		}
	}
}

func TestFindFreeSlots_MinimumDurationBoundary(t *testing.T) {
	f := MustDefault()
	events := []*models.Event{
		event("A", "2026-09-01", "08:00", "10:00"),
		event("B", "2026-09-01", "11:00", "20:00"),
	}

	// The gap is exactly 60 minutes.
	if free := f.FindFreeSlots(events, "2026-09-01", 60); len(free) != 1 {
		t.Errorf("60-minute gap should satisfy a 60-minute minimum, got %v", free)
	}
	if free := f.FindFreeSlots(events, "2026-09-01", 61); len(free) != 0 {
		t.Errorf("60-minute gap should not satisfy a 61-minute minimum, got %v", free)
	}
}

func TestFindFreeSlots_OverlappingEventsDoNotRewindCursor(t *testing.T) {
	f := MustDefault()
	events := []*models.Event{
		event("Long", "2026-09-01", "09:00", "13:00"),
		event("Contained", "2026-09-01", "10:00", "11:00"),
	}

	free := f.FindFreeSlots(events, "2026-09-01", 30)
	want := []Slot{
		{Start: "08:00", End: "09:00"},
		{Start: "13:00", End: "20:00"},
	}
	if len(free) != len(want) {
		t.Fatalf("got %v, want %v", free, want)
	}
	for i := range want {
		if free[i] != want[i] {
			t.Errorf("slot %d = %v, want %v", i, free[i], want[i])
		}
	}
}

func TestFindFreeSlots_IgnoresOtherDatesAndBadTimes(t *testing.T) {
	f := MustDefault()
	events := []*models.Event{
		event("Other Day", "2026-09-02", "08:00", "20:00"),
		event("Broken", "2026-09-01", "9am", "10:00"),
	}

	free := f.FindFreeSlots(events, "2026-09-01", 60)
	if len(free) != 1 || free[0].Start != "08:00" || free[0].End != "20:00" {
		t.Errorf("other dates and unparsable events should be skipped, got %v", free)
	}
}

func TestFindFreeSlots_FullyBookedDay(t *testing.T) {
	f := MustDefault()
	events := []*models.Event{event("Marathon", "2026-09-01", "08:00", "20:00")}
	if free := f.FindFreeSlots(events, "2026-09-01", 1); len(free) != 0 {
		t.Errorf("fully booked day returned slots: %v", free)
	}
}

func TestNewFinder_RejectsMalformedWindow(t *testing.T) {
	if _, err := NewFinder("8am", "20:00"); err == nil {
		t.Error("malformed day start should be rejected")
	}
}

func TestFindFreeSlots_CustomWindow(t *testing.T) {
	f, err := NewFinder("06:00", "22:00")
	if err != nil {
		t.Fatalf("NewFinder failed: %v", err)
	}
	free := f.FindFreeSlots(nil, "2026-09-01", 60)
	if len(free) != 1 || free[0].Start != "06:00" || free[0].End != "22:00" {
		t.Errorf("custom window slot = %v", free)
	}
}
