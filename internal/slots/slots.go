// Package slots finds open intervals within a bounded day window.
package slots

import (
	"sort"

	"github.com/julianstephens/daybook/internal/models"
)

const (
	// DefaultDayStart and DefaultDayEnd bound the searchable day window.
	DefaultDayStart = "08:00"
	DefaultDayEnd   = "20:00"
)

// Slot is a contiguous free span, HH:MM inclusive-exclusive.
type Slot struct {
	Start string
	End   string
}

// Finder computes free slots against a fixed day window.
type Finder struct {
	dayStart int
	dayEnd   int
}

func NewFinder(dayStart, dayEnd string) (*Finder, error) {
	start, err := models.ParseClock(dayStart)
	if err != nil {
		return nil, err
	}
	end, err := models.ParseClock(dayEnd)
	if err != nil {
		return nil, err
	}
	return &Finder{dayStart: start, dayEnd: end}, nil
}

// MustDefault returns a finder over the standard 08:00-20:00 window.
func MustDefault() *Finder {
	f, err := NewFinder(DefaultDayStart, DefaultDayEnd)
	if err != nil {
		panic(err)
	}
	return f
}

// FindFreeSlots returns the chronological free spans of at least
// minDurationMin minutes on the given date. Events with unparsable times
// are skipped. An empty day yields the whole window as a single slot when
// it meets the minimum duration.
func (f *Finder) FindFreeSlots(events []*models.Event, date string, minDurationMin int) []Slot {
	type interval struct {
		start, end int
	}

	var day []interval
	for _, e := range events {
		if e.Date != date {
			continue
		}
		start, err := models.ParseClock(e.Start)
		if err != nil {
			continue
		}
		end, err := models.ParseClock(e.End)
		if err != nil {
			continue
		}
		day = append(day, interval{start: start, end: end})
	}
	sort.Slice(day, func(i, j int) bool { return day[i].start < day[j].start })

	var free []Slot
	cursor := f.dayStart

	for _, iv := range day {
		if iv.start-cursor >= minDurationMin {
			free = append(free, Slot{Start: models.FormatClock(cursor), End: models.FormatClock(iv.start)})
		}
		// Overlapping events must not move the cursor backwards.
		if iv.end > cursor {
			cursor = iv.end
		}
	}

	if f.dayEnd-cursor >= minDurationMin {
		free = append(free, Slot{Start: models.FormatClock(cursor), End: models.FormatClock(f.dayEnd)})
	}

	return free
}
