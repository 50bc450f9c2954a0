// Package prompt abstracts the blocking confirmation points of the engine.
// Core packages call these interfaces and branch on the returned values;
// they never format or read terminal text directly.
package prompt

import "github.com/julianstephens/daybook/internal/models"

type DuplicateResolution string

const (
	KeepExisting DuplicateResolution = "keep_existing"
	Replace      DuplicateResolution = "replace"
	KeepBoth     DuplicateResolution = "keep_both"
	CancelAdd    DuplicateResolution = "cancel"
)

// Prompter is the presentation-layer collaborator. Every call blocks the
// in-flight operation until an answer comes back.
type Prompter interface {
	// ConfirmConflicts asks whether to apply a change despite the detected
	// conflicts. False aborts the operation and leaves the schedule alone.
	ConfirmConflicts(candidate *models.Event, conflicts []models.Conflict) (bool, error)

	// ResolveDuplicate asks what to do about a similar event already in
	// the calendar store.
	ResolveDuplicate(existing, incoming *models.Event) (DuplicateResolution, error)

	// SelectEvent asks the user to pick one of several candidate events.
	// ok is false when the user cancels.
	SelectEvent(title string, candidates []*models.Event) (choice *models.Event, ok bool, err error)
}
