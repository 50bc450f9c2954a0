package extract

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/julianstephens/daybook/internal/log"
	"github.com/julianstephens/daybook/internal/models"
)

// JSONExtractor reads a JSON array of events. Field aliases from older
// schedule exports are accepted: "course" for title, "type" for category,
// "from"/"to" for the times, "description" for notes.
type JSONExtractor struct{}

func NewJSONExtractor() *JSONExtractor {
	return &JSONExtractor{}
}

type jsonEvent struct {
	Title    string `json:"title"`
	Course   string `json:"course"`
	Category string `json:"category"`
	Type     string `json:"type"`
	Location string `json:"location"`
	Date     string `json:"date"`
	Start    string `json:"start"`
	From     string `json:"from"`
	End      string `json:"end"`
	To       string `json:"to"`
	Notes    string `json:"notes"`
	Desc     string `json:"description"`
}

func (x *JSONExtractor) Extract(path string) ([]*models.Event, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var raw []jsonEvent
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	var events []*models.Event
	for i, r := range raw {
		event := &models.Event{
			Title:    firstOf(r.Title, r.Course, "Untitled Event"),
			Category: models.ParseCategory(firstOf(r.Category, r.Type)),
			Location: r.Location,
			Date:     r.Date,
			Start:    firstOf(r.Start, r.From),
			End:      firstOf(r.End, r.To),
			Notes:    firstOf(r.Notes, r.Desc),
		}
		if err := event.Validate(); err != nil {
			log.Error("skipping invalid event in document", err, "file", path, "index", i)
			continue
		}
		events = append(events, event)
	}

	log.Info("json extract completed", "file", path, "event_count", len(events))
	return events, nil
}

func firstOf(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
