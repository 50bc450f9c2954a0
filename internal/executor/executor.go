// Package executor applies validated change requests to the session
// schedule, running duplicate and conflict sub-flows before anything
// mutates.
package executor

import (
	"fmt"

	"github.com/julianstephens/daybook/internal/conflict"
	"github.com/julianstephens/daybook/internal/log"
	"github.com/julianstephens/daybook/internal/models"
	"github.com/julianstephens/daybook/internal/prompt"
	"github.com/julianstephens/daybook/internal/storage"
)

// maxListing bounds the disambiguation listing shown when a target event
// cannot be resolved.
const maxListing = 10

// Executor owns the session schedule and is the only component that
// mutates it, one change at a time. Collaborators are injected at
// construction and never swapped afterwards; store may be nil for
// local-only mode.
type Executor struct {
	schedule *models.Schedule
	detector *conflict.Detector
	store    storage.CalendarStore
	prompter prompt.Prompter
}

func New(schedule *models.Schedule, detector *conflict.Detector, store storage.CalendarStore, prompter prompt.Prompter) *Executor {
	return &Executor{
		schedule: schedule,
		detector: detector,
		store:    store,
		prompter: prompter,
	}
}

func (x *Executor) Schedule() *models.Schedule {
	return x.schedule
}

// Execute runs one change request to completion. autoConfirm skips the
// conflict confirmation and takes the default duplicate resolution; the
// declined and failed paths always leave the schedule untouched.
func (x *Executor) Execute(req *models.ChangeRequest, autoConfirm bool) models.ExecutionResult {
	if req == nil {
		return failed("no change request provided")
	}

	if err := req.Validate(); err != nil {
		if req.Kind != models.ChangeAdd && req.Target == nil {
			return failed(fmt.Sprintf("event not found in your schedule\nknown events:\n%s", x.schedule.Listing(maxListing)))
		}
		return failed(fmt.Sprintf("invalid %s request: %v", req.Kind, err))
	}

	switch req.Kind {
	case models.ChangeAdd:
		return x.executeAdd(req, autoConfirm)
	case models.ChangeCancel:
		return x.executeCancel(req)
	case models.ChangeReschedule:
		return x.executeReschedule(req, autoConfirm)
	case models.ChangeModify:
		return x.executeModify(req)
	default:
		return failed(fmt.Sprintf("unknown change kind %q", req.Kind))
	}
}

func (x *Executor) executeAdd(req *models.ChangeRequest, autoConfirm bool) models.ExecutionResult {
	newEvent := req.Fields.NewEvent

	if existing := x.schedule.FindExactDuplicate(newEvent); existing != nil {
		return models.ExecutionResult{
			SkippedAsDuplicate: true,
			Message:            fmt.Sprintf("duplicate: %q already exists on %s at %s", existing.Title, existing.Date, existing.Start),
		}
	}

	conflicts, issues := x.detector.DetectAgainst(newEvent, x.schedule.Events())
	logIssues(issues)

	if len(conflicts) > 0 {
		proceed, res := x.confirmConflicts(req, newEvent, conflicts, autoConfirm)
		if !proceed {
			return res
		}
	}

	if x.store != nil {
		if res, done := x.resolveRemoteDuplicate(newEvent, autoConfirm); done {
			return res
		}
		id, err := x.store.Create(newEvent)
		if err != nil {
			return failedConflicts(fmt.Sprintf("failed to add event: %v", err), conflicts)
		}
		newEvent.ExternalID = id
	}

	x.schedule.Add(newEvent)
	return models.ExecutionResult{
		Applied:   true,
		Conflicts: conflicts,
		Message:   fmt.Sprintf("added: %s on %s %s-%s", newEvent.Title, newEvent.Date, newEvent.Start, newEvent.End),
	}
}

// resolveRemoteDuplicate consults the calendar store for a fuzzy same-day
// duplicate and routes the outcome through the presentation layer. done is
// true when the add should not proceed to a plain create.
func (x *Executor) resolveRemoteDuplicate(newEvent *models.Event, autoConfirm bool) (models.ExecutionResult, bool) {
	existing, err := x.store.FindDuplicate(newEvent)
	if err != nil {
		return failed(fmt.Sprintf("failed to check for duplicates: %v", err)), true
	}
	if existing == nil {
		return models.ExecutionResult{}, false
	}

	resolution := prompt.KeepExisting
	if !autoConfirm {
		resolution, err = x.prompter.ResolveDuplicate(existing, newEvent)
		if err != nil {
			log.Error("duplicate resolution prompt failed, keeping existing", err)
			resolution = prompt.KeepExisting
		}
	}

	switch resolution {
	case prompt.Replace:
		if err := x.store.Update(existing.ExternalID, newEvent); err != nil {
			return failed(fmt.Sprintf("failed to replace event: %v", err)), true
		}
		newEvent.ExternalID = existing.ExternalID
		x.replaceLocal(existing.ExternalID, newEvent)
		return models.ExecutionResult{
			Applied: true,
			Message: fmt.Sprintf("replaced existing event with: %s", newEvent),
		}, true
	case prompt.KeepBoth:
		return models.ExecutionResult{}, false
	case prompt.CancelAdd:
		return failed("add cancelled"), true
	default: // keep existing
		return models.ExecutionResult{
			SkippedAsDuplicate: true,
			Message:            fmt.Sprintf("kept existing event: %s", existing),
		}, true
	}
}

// replaceLocal points the schedule's copy of a store-bound event at the new
// details, or inserts the event if the store copy was never loaded locally.
func (x *Executor) replaceLocal(externalID string, newEvent *models.Event) {
	for _, e := range x.schedule.Events() {
		if e.ExternalID == externalID {
			*e = *newEvent
			return
		}
	}
	x.schedule.Add(newEvent)
}

func (x *Executor) executeCancel(req *models.ChangeRequest) models.ExecutionResult {
	target := req.Target

	if x.store != nil && target.ExternalID != "" {
		if err := x.store.Delete(target.ExternalID); err != nil {
			return failed(fmt.Sprintf("failed to cancel event: %v", err))
		}
	}

	x.schedule.Remove(target)
	return models.ExecutionResult{
		Applied: true,
		Message: fmt.Sprintf("cancelled: %s", target.Title),
	}
}

func (x *Executor) executeReschedule(req *models.ChangeRequest, autoConfirm bool) models.ExecutionResult {
	target := req.Target

	updated, err := rescheduledEvent(target, req.Fields)
	if err != nil {
		return failed(fmt.Sprintf("invalid reschedule request: %v", err))
	}

	conflicts, issues := x.detector.DetectAgainst(updated, x.schedule.Without(target))
	logIssues(issues)

	if len(conflicts) > 0 {
		proceed, res := x.confirmConflicts(req, updated, conflicts, autoConfirm)
		if !proceed {
			return res
		}
	}

	if x.store != nil && target.ExternalID != "" {
		if err := x.store.Update(target.ExternalID, updated); err != nil {
			return failedConflicts(fmt.Sprintf("failed to reschedule event: %v", err), conflicts)
		}
	}

	target.Date = updated.Date
	target.Start = updated.Start
	target.End = updated.End
	return models.ExecutionResult{
		Applied:   true,
		Conflicts: conflicts,
		Message:   fmt.Sprintf("rescheduled: %s to %s %s-%s", target.Title, target.Date, target.Start, target.End),
	}
}

// rescheduledEvent builds the hypothetical updated event. Reschedules are
// duration-preserving: a new start without an explicit new end keeps the
// original length; a new end alone keeps the original start.
func rescheduledEvent(target *models.Event, fields models.ChangeFields) (*models.Event, error) {
	updated := *target

	if fields.Date != "" {
		updated.Date = fields.Date
	}

	switch {
	case fields.Start != "" && fields.End != "":
		updated.Start = fields.Start
		updated.End = fields.End
	case fields.Start != "":
		duration, err := target.DurationMin()
		if err != nil {
			return nil, err
		}
		start, err := models.ParseClock(fields.Start)
		if err != nil {
			return nil, err
		}
		updated.Start = fields.Start
		updated.End = models.FormatClock(start + duration)
	case fields.End != "":
		updated.End = fields.End
	}

	if err := updated.Validate(); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (x *Executor) executeModify(req *models.ChangeRequest) models.ExecutionResult {
	target := req.Target

	// Only non-time fields change, so the time window is untouched and no
	// conflict re-check is needed.
	updated := *target
	if req.Fields.Title != "" {
		updated.Title = req.Fields.Title
	}
	if req.Fields.Location != "" {
		updated.Location = req.Fields.Location
	}

	if x.store != nil && target.ExternalID != "" {
		if err := x.store.Update(target.ExternalID, &updated); err != nil {
			return failed(fmt.Sprintf("failed to modify event: %v", err))
		}
	}

	target.Title = updated.Title
	target.Location = updated.Location
	return models.ExecutionResult{
		Applied: true,
		Message: fmt.Sprintf("modified: %s", target.Title),
	}
}

// confirmConflicts runs the conflict confirmation sub-flow. proceed is
// false when the operation must abort; res then carries the conflicts and
// the decline message.
func (x *Executor) confirmConflicts(req *models.ChangeRequest, candidate *models.Event, conflicts []models.Conflict, autoConfirm bool) (bool, models.ExecutionResult) {
	if autoConfirm || !req.NeedsConfirmation {
		return true, models.ExecutionResult{}
	}
	proceed, err := x.prompter.ConfirmConflicts(candidate, conflicts)
	if err != nil {
		log.Error("conflict confirmation prompt failed, declining", err)
		proceed = false
	}
	if !proceed {
		return false, failedConflicts("operation cancelled due to conflicts", conflicts)
	}
	return true, models.ExecutionResult{}
}

func logIssues(issues []conflict.TimeIssue) {
	for _, issue := range issues {
		log.Error("skipping conflict check for event with malformed time", issue.Err, "event", issue.Event.Title)
	}
}

func failed(msg string) models.ExecutionResult {
	return models.ExecutionResult{Message: msg}
}

func failedConflicts(msg string, conflicts []models.Conflict) models.ExecutionResult {
	return models.ExecutionResult{Message: msg, Conflicts: conflicts}
}
