package models

import (
	"fmt"
	"strings"
)

// Schedule is the session's ordered, mutable collection of events. Order is
// insertion order, not time order. Conflicts and change requests hold
// pointers into this slice, so in-place mutation is visible everywhere.
type Schedule struct {
	events []*Event
}

func NewSchedule(events ...*Event) *Schedule {
	return &Schedule{events: events}
}

func (s *Schedule) Events() []*Event {
	return s.events
}

func (s *Schedule) Len() int {
	return len(s.events)
}

func (s *Schedule) Add(e *Event) {
	s.events = append(s.events, e)
}

// Remove drops the event from the collection by identity. Removing an event
// that is not present is a no-op.
func (s *Schedule) Remove(e *Event) {
	for i, ev := range s.events {
		if ev == e {
			s.events = append(s.events[:i], s.events[i+1:]...)
			return
		}
	}
}

// Without returns the events excluding the given one, for conflict checks
// that must not compare an event against itself.
func (s *Schedule) Without(e *Event) []*Event {
	rest := make([]*Event, 0, len(s.events))
	for _, ev := range s.events {
		if ev != e {
			rest = append(rest, ev)
		}
	}
	return rest
}

// FindExactDuplicate returns an existing event matching the candidate on
// title (case-insensitively), date, and start time.
func (s *Schedule) FindExactDuplicate(candidate *Event) *Event {
	for _, ev := range s.events {
		if strings.EqualFold(ev.Title, candidate.Title) &&
			ev.Date == candidate.Date &&
			ev.Start == candidate.Start {
			return ev
		}
	}
	return nil
}

// Listing renders at most max events, one per line, to help a user
// disambiguate after a failed target lookup.
func (s *Schedule) Listing(max int) string {
	if len(s.events) == 0 {
		return "no events in current schedule"
	}
	var lines []string
	for i, ev := range s.events {
		if i >= max {
			break
		}
		lines = append(lines, fmt.Sprintf("  - %s (%s %s)", ev.Title, ev.Date, ev.Start))
	}
	return strings.Join(lines, "\n")
}
