// Package conflict classifies pairwise scheduling conflicts between events
// that share a date.
package conflict

import (
	"fmt"
	"sort"
	"strings"

	"github.com/julianstephens/daybook/internal/models"
)

// TimeIssue records an event whose times could not be parsed during a scan.
// The affected pairs are skipped; the event stays in the schedule.
type TimeIssue struct {
	Event *models.Event
	Err   error
}

type Detector struct{}

func NewDetector() *Detector {
	return &Detector{}
}

// Detect scans a full schedule and returns at most one conflict per
// unordered event pair. Events are sorted by (date, start) first purely for
// deterministic output order; correctness does not depend on it.
func (d *Detector) Detect(events []*models.Event) ([]models.Conflict, []TimeIssue) {
	sorted := make([]*models.Event, len(events))
	copy(sorted, events)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Date != sorted[j].Date {
			return sorted[i].Date < sorted[j].Date
		}
		return sorted[i].Start < sorted[j].Start
	})

	var conflicts []models.Conflict
	var issues []TimeIssue
	flagged := make(map[*models.Event]bool)

	for i := 0; i < len(sorted); i++ {
		for j := i + 1; j < len(sorted); j++ {
			a, b := sorted[i], sorted[j]
			if a.Date != b.Date {
				continue
			}
			c, err := classifyPair(a, b)
			if err != nil {
				for _, ev := range []*models.Event{a, b} {
					if _, bad := eventWindow(ev); bad != nil && !flagged[ev] {
						flagged[ev] = true
						issues = append(issues, TimeIssue{Event: ev, Err: bad})
					}
				}
				continue
			}
			if c != nil {
				conflicts = append(conflicts, *c)
			}
		}
	}
	return conflicts, issues
}

// DetectAgainst checks one candidate event against a reference collection,
// used before committing an add or reschedule.
func (d *Detector) DetectAgainst(candidate *models.Event, events []*models.Event) ([]models.Conflict, []TimeIssue) {
	var conflicts []models.Conflict
	var issues []TimeIssue
	flagged := make(map[*models.Event]bool)

	for _, existing := range events {
		if existing.Date != candidate.Date {
			continue
		}
		c, err := classifyPair(candidate, existing)
		if err != nil {
			for _, ev := range []*models.Event{candidate, existing} {
				if _, bad := eventWindow(ev); bad != nil && !flagged[ev] {
					flagged[ev] = true
					issues = append(issues, TimeIssue{Event: ev, Err: bad})
				}
			}
			continue
		}
		if c != nil {
			conflicts = append(conflicts, *c)
		}
	}
	return conflicts, issues
}

type window struct {
	start, end int
}

func eventWindow(e *models.Event) (window, error) {
	start, err := models.ParseClock(e.Start)
	if err != nil {
		return window{}, err
	}
	end, err := models.ParseClock(e.End)
	if err != nil {
		return window{}, err
	}
	return window{start: start, end: end}, nil
}

// classifyPair applies the conflict rules in strict priority order: double
// booking, then time overlap, then back-to-back. The first match wins, so a
// pair never yields more than one conflict.
func classifyPair(a, b *models.Event) (*models.Conflict, error) {
	wa, err := eventWindow(a)
	if err != nil {
		return nil, err
	}
	wb, err := eventWindow(b)
	if err != nil {
		return nil, err
	}

	if wa.start == wb.start && wa.end == wb.end {
		return &models.Conflict{
			Kind:     models.ConflictDoubleBooking,
			A:        a,
			B:        b,
			Severity: models.SeverityHigh,
			Message: fmt.Sprintf("double booking: %q and %q are at exactly the same time (%s-%s)",
				a.Title, b.Title, a.Start, a.End),
		}, nil
	}

	if wa.start < wb.end && wb.start < wa.end {
		return &models.Conflict{
			Kind:     models.ConflictTimeOverlap,
			A:        a,
			B:        b,
			Severity: models.SeverityHigh,
			Message: fmt.Sprintf("time overlap: %q (%s-%s) overlaps with %q (%s-%s)",
				a.Title, a.Start, a.End, b.Title, b.Start, b.End),
		}, nil
	}

	// Back-to-back only matters when there is no travel time between two
	// different, known locations. Exact boundary, no grace window. The pair
	// is unordered, so check adjacency in both directions.
	first, second := a, b
	if wb.end == wa.start {
		first, second = b, a
		wa, wb = wb, wa
	}
	if wa.end == wb.start && first.Location != "" && second.Location != "" &&
		!strings.EqualFold(first.Location, second.Location) {
		return &models.Conflict{
			Kind:     models.ConflictBackToBack,
			A:        a,
			B:        b,
			Severity: models.SeverityMedium,
			Message: fmt.Sprintf("back-to-back: %q at %s ends at %s when %q at %s starts (no travel time)",
				first.Title, first.Location, first.End, second.Title, second.Location),
		}, nil
	}

	return nil, nil
}
