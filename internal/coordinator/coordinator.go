// Package coordinator orchestrates multi-event operations: draining a
// queue of pending changes, bulk reschedules onto a target date, and
// time-preference negotiation across candidate dates.
package coordinator

import (
	"fmt"
	"sort"

	"github.com/julianstephens/daybook/internal/executor"
	"github.com/julianstephens/daybook/internal/log"
	"github.com/julianstephens/daybook/internal/models"
	"github.com/julianstephens/daybook/internal/slots"
)

// defaultDurationMin stands in for an event whose times cannot be parsed
// when ordering a batch.
const defaultDurationMin = 60

// Detail records the outcome of one item in a batch pass.
type Detail struct {
	Label  string
	Slot   string
	Result models.ExecutionResult
}

// Summary aggregates a batch pass. Executed/Failed always sum to the number
// of items attempted.
type Summary struct {
	Executed  int
	Failed    int
	Conflicts []models.Conflict
	Details   []Detail
}

// Coordinator drives the change executor over multiple events. It holds
// the FIFO queue of pending change requests for the session.
type Coordinator struct {
	executor *executor.Executor
	finder   *slots.Finder
	pending  []*models.ChangeRequest
}

func New(exec *executor.Executor, finder *slots.Finder) *Coordinator {
	return &Coordinator{executor: exec, finder: finder}
}

// Enqueue appends a change request to the pending queue.
func (c *Coordinator) Enqueue(req *models.ChangeRequest) {
	c.pending = append(c.pending, req)
}

func (c *Coordinator) PendingCount() int {
	return len(c.pending)
}

// Coordinate executes all pending changes in submission order. The queue
// is cleared after the pass regardless of outcome; callers must requeue
// unexecuted items explicitly, nothing retries on its own.
func (c *Coordinator) Coordinate(autoConfirm bool) Summary {
	var summary Summary
	for _, req := range c.pending {
		result := c.executor.Execute(req, autoConfirm)
		if result.Applied {
			summary.Executed++
		} else {
			summary.Failed++
		}
		summary.Conflicts = append(summary.Conflicts, result.Conflicts...)
		summary.Details = append(summary.Details, Detail{Label: req.RawText, Result: result})
	}
	c.pending = nil
	return summary
}

// BatchReschedule moves the given events onto targetDate, longest first so
// large blocks claim slots before the free time fragments. Each placement
// mutates the schedule, so later events see earlier placements. Events
// with no fitting slot are recorded as failed and left untouched.
func (c *Coordinator) BatchReschedule(events []*models.Event, targetDate string, autoConfirm bool) Summary {
	ordered := make([]*models.Event, len(events))
	copy(ordered, events)
	sort.SliceStable(ordered, func(i, j int) bool {
		return eventDuration(ordered[i]) > eventDuration(ordered[j])
	})

	var summary Summary
	for _, event := range ordered {
		duration := eventDuration(event)
		free := c.finder.FindFreeSlots(c.executor.Schedule().Events(), targetDate, duration)
		if len(free) == 0 {
			summary.Failed++
			summary.Details = append(summary.Details, Detail{
				Label:  event.Title,
				Result: models.ExecutionResult{Message: fmt.Sprintf("no available slot of %d min on %s", duration, targetDate)},
			})
			continue
		}

		start, err := models.ParseClock(free[0].Start)
		if err != nil {
			summary.Failed++
			summary.Details = append(summary.Details, Detail{
				Label:  event.Title,
				Result: models.ExecutionResult{Message: fmt.Sprintf("bad slot start %q: %v", free[0].Start, err)},
			})
			continue
		}
		slotStart := free[0].Start
		slotEnd := models.FormatClock(start + duration)

		req := models.NewChangeRequest(models.ChangeReschedule, event, models.ChangeFields{
			Date:  targetDate,
			Start: slotStart,
			End:   slotEnd,
		}, fmt.Sprintf("batch reschedule %s to %s", event.Title, targetDate))

		result := c.executor.Execute(req, autoConfirm)
		if result.Applied {
			summary.Executed++
		} else {
			summary.Failed++
		}
		summary.Conflicts = append(summary.Conflicts, result.Conflicts...)
		summary.Details = append(summary.Details, Detail{
			Label:  event.Title,
			Slot:   slotStart + "-" + slotEnd,
			Result: result,
		})
	}
	return summary
}

func eventDuration(e *models.Event) int {
	d, err := e.DurationMin()
	if err != nil {
		log.Error("assuming default duration for event with malformed time", err, "event", e.Title)
		return defaultDurationMin
	}
	return d
}

// Option is one negotiated (date, slot) candidate.
type Option struct {
	Date  string
	Start string
	End   string
	Score int
}

// Negotiation is the outcome of a time negotiation: the highest-scoring
// candidate plus up to two runners-up.
type Negotiation struct {
	Best         Option
	Alternatives []Option
}

// NegotiateTime scores the best available slot on each candidate date with
// a fixed start-hour preference curve and returns the winner. ok is false
// when no candidate date has a qualifying slot.
func (c *Coordinator) NegotiateTime(candidateDates []string, durationMin int) (Negotiation, bool) {
	var options []Option
	for _, date := range candidateDates {
		free := c.finder.FindFreeSlots(c.executor.Schedule().Events(), date, durationMin)
		best := Option{Score: -1}
		for _, slot := range free {
			start, err := models.ParseClock(slot.Start)
			if err != nil {
				continue
			}
			if score := scoreStartHour(start / 60); score > best.Score {
				best = Option{
					Date:  date,
					Start: slot.Start,
					End:   models.FormatClock(start + durationMin),
					Score: score,
				}
			}
		}
		if best.Score >= 0 {
			options = append(options, best)
		}
	}

	if len(options) == 0 {
		return Negotiation{}, false
	}

	sort.SliceStable(options, func(i, j int) bool { return options[i].Score > options[j].Score })

	n := Negotiation{Best: options[0]}
	if len(options) > 1 {
		limit := len(options)
		if limit > 3 {
			limit = 3
		}
		n.Alternatives = options[1:limit]
	}
	return n, true
}

// scoreStartHour prefers mid-morning, then mid-afternoon, then the rest of
// the working day; early mornings and evenings rank last.
func scoreStartHour(hour int) int {
	switch {
	case hour >= 9 && hour <= 11:
		return 100
	case hour >= 14 && hour <= 16:
		return 80
	case hour >= 12 && hour <= 17:
		return 60
	case hour == 8:
		return 40
	default:
		return 20
	}
}
