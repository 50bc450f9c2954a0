package models

import "fmt"

type ChangeKind string

const (
	ChangeAdd        ChangeKind = "add"
	ChangeCancel     ChangeKind = "cancel"
	ChangeReschedule ChangeKind = "reschedule"
	ChangeModify     ChangeKind = "modify"
)

// ChangeFields carries the proposed new values for a change. Only the
// fields relevant to the change kind are set: NewEvent for add, date and
// time fields for reschedule, title/location for modify. Empty strings mean
// "leave unchanged".
type ChangeFields struct {
	NewEvent *Event `yaml:"new_event,omitempty"`

	Date  string `yaml:"date,omitempty"`
	Start string `yaml:"start,omitempty"`
	End   string `yaml:"end,omitempty"`

	Title    string `yaml:"title,omitempty"`
	Location string `yaml:"location,omitempty"`
}

// ChangeRequest is a structured proposal to change one event. Target is a
// borrowed reference into the session schedule; it is nil for add requests.
type ChangeRequest struct {
	Kind              ChangeKind
	Target            *Event
	Fields            ChangeFields
	RawText           string
	NeedsConfirmation bool
}

// NewChangeRequest builds a request with confirmation required, the default
// for anything a human did not already approve.
func NewChangeRequest(kind ChangeKind, target *Event, fields ChangeFields, rawText string) *ChangeRequest {
	return &ChangeRequest{
		Kind:              kind,
		Target:            target,
		Fields:            fields,
		RawText:           rawText,
		NeedsConfirmation: true,
	}
}

// Validate checks the request is executable: add needs a complete new
// event, every other kind needs a resolved target.
func (r *ChangeRequest) Validate() error {
	switch r.Kind {
	case ChangeAdd:
		if r.Fields.NewEvent == nil {
			return fmt.Errorf("add request has no event details")
		}
		return r.Fields.NewEvent.Validate()
	case ChangeCancel, ChangeReschedule, ChangeModify:
		if r.Target == nil {
			return fmt.Errorf("%s request has no resolved target event", r.Kind)
		}
		return nil
	default:
		return fmt.Errorf("unknown change kind %q", r.Kind)
	}
}
