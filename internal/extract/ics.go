package extract

import (
	"fmt"
	"os"

	ical "github.com/arran4/golang-ical"

	"github.com/julianstephens/daybook/internal/log"
	"github.com/julianstephens/daybook/internal/models"
)

// ICSExtractor reads VEVENTs from an iCalendar file. All-day events and
// events spanning midnight have no place in the minute-precision day model
// and are skipped with a log line.
type ICSExtractor struct{}

func NewICSExtractor() *ICSExtractor {
	return &ICSExtractor{}
}

func (x *ICSExtractor) Extract(path string) ([]*models.Event, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	cal, err := ical.ParseCalendar(f)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	var events []*models.Event
	for _, ve := range cal.Events() {
		event, err := fromVEvent(ve)
		if err != nil {
			log.Error("skipping unusable vevent", err, "file", path)
			continue
		}
		events = append(events, event)
	}

	log.Info("ics extract completed", "file", path, "event_count", len(events))
	return events, nil
}

func fromVEvent(ve *ical.VEvent) (*models.Event, error) {
	start, err := ve.GetStartAt()
	if err != nil {
		return nil, fmt.Errorf("missing or malformed DTSTART: %w", err)
	}
	end, err := ve.GetEndAt()
	if err != nil {
		return nil, fmt.Errorf("missing or malformed DTEND: %w", err)
	}

	if start.Format("2006-01-02") != end.Format("2006-01-02") {
		return nil, fmt.Errorf("event spans multiple days (%s to %s)", start, end)
	}

	title := "Untitled Event"
	if p := ve.GetProperty(ical.ComponentPropertySummary); p != nil && p.Value != "" {
		title = p.Value
	}

	event := &models.Event{
		Title:    title,
		Category: inferCategory(title),
		Date:     start.Format("2006-01-02"),
		Start:    start.Format("15:04"),
		End:      end.Format("15:04"),
	}
	if p := ve.GetProperty(ical.ComponentPropertyLocation); p != nil {
		event.Location = p.Value
	}
	if p := ve.GetProperty(ical.ComponentPropertyDescription); p != nil {
		event.Notes = p.Value
	}

	if err := event.Validate(); err != nil {
		return nil, err
	}
	return event, nil
}
