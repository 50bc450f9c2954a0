package models

type ConflictKind string

const (
	ConflictDoubleBooking ConflictKind = "double_booking"
	ConflictTimeOverlap   ConflictKind = "time_overlap"
	ConflictBackToBack    ConflictKind = "back_to_back"
)

type Severity string

const (
	SeverityHigh   Severity = "high"
	SeverityMedium Severity = "medium"
)

// Conflict describes why two events cannot both hold as scheduled. A and B
// are borrowed references into the session schedule, never copies.
type Conflict struct {
	Kind     ConflictKind
	A        *Event
	B        *Event
	Severity Severity
	Message  string
}

func (c Conflict) String() string {
	return string(c.Kind) + ": " + c.Message
}
