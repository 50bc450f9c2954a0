package models

import (
	"fmt"
	"strings"
	"time"
)

type Category string

const (
	CategoryLecture  Category = "lecture"
	CategoryLab      Category = "lab"
	CategoryExam     Category = "exam"
	CategoryMeeting  Category = "meeting"
	CategoryPractice Category = "practice"
	CategoryOther    Category = "other"
)

// ParseCategory maps a free-form category label onto one of the known
// categories. Unknown or empty labels become CategoryOther.
func ParseCategory(s string) Category {
	switch Category(strings.ToLower(strings.TrimSpace(s))) {
	case CategoryLecture, CategoryLab, CategoryExam, CategoryMeeting, CategoryPractice, CategoryOther:
		return Category(strings.ToLower(strings.TrimSpace(s)))
	default:
		return CategoryOther
	}
}

// Event is a single scheduled item. Dates are YYYY-MM-DD and times are
// HH:MM strings; events never span midnight.
type Event struct {
	Title      string   `json:"title" yaml:"title"`
	Category   Category `json:"category" yaml:"category"`
	Location   string   `json:"location,omitempty" yaml:"location,omitempty"`
	Date       string   `json:"date" yaml:"date"`
	Start      string   `json:"start" yaml:"start"`
	End        string   `json:"end" yaml:"end"`
	ExternalID string   `json:"external_id,omitempty" yaml:"external_id,omitempty"` // calendar store binding, empty for local-only events
	Notes      string   `json:"notes,omitempty" yaml:"notes,omitempty"`
}

func (e *Event) Validate() error {
	if strings.TrimSpace(e.Title) == "" {
		return fmt.Errorf("event title is required")
	}
	if _, err := time.Parse("2006-01-02", e.Date); err != nil {
		return fmt.Errorf("invalid date %q: %w", e.Date, err)
	}
	start, err := ParseClock(e.Start)
	if err != nil {
		return fmt.Errorf("invalid start time: %w", err)
	}
	end, err := ParseClock(e.End)
	if err != nil {
		return fmt.Errorf("invalid end time: %w", err)
	}
	if start >= end {
		return fmt.Errorf("start %s must be before end %s", e.Start, e.End)
	}
	return nil
}

// DurationMin returns the event length in minutes.
func (e *Event) DurationMin() (int, error) {
	start, err := ParseClock(e.Start)
	if err != nil {
		return 0, err
	}
	end, err := ParseClock(e.End)
	if err != nil {
		return 0, err
	}
	return end - start, nil
}

func (e *Event) String() string {
	s := fmt.Sprintf("%s (%s) on %s %s-%s", e.Title, e.Category, e.Date, e.Start, e.End)
	if e.Location != "" {
		s += " at " + e.Location
	}
	return s
}

// ParseClock parses an HH:MM string into minutes from midnight.
func ParseClock(s string) (int, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, fmt.Errorf("malformed time %q: %w", s, err)
	}
	return t.Hour()*60 + t.Minute(), nil
}

// FormatClock renders minutes from midnight as HH:MM.
func FormatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
