package prompt

import "github.com/julianstephens/daybook/internal/models"

// AutoPrompter answers every prompt without a human. The defaults are the
// documented non-interactive policy: decline conflicted changes, keep
// existing events on duplicates, pick the first candidate on selection.
// Flipping ProceedOnConflict gives the --yes behavior.
type AutoPrompter struct {
	ProceedOnConflict bool
	OnDuplicate       DuplicateResolution
}

func NewAutoPrompter() *AutoPrompter {
	return &AutoPrompter{OnDuplicate: KeepExisting}
}

func (p *AutoPrompter) ConfirmConflicts(candidate *models.Event, conflicts []models.Conflict) (bool, error) {
	return p.ProceedOnConflict, nil
}

func (p *AutoPrompter) ResolveDuplicate(existing, incoming *models.Event) (DuplicateResolution, error) {
	if p.OnDuplicate == "" {
		return KeepExisting, nil
	}
	return p.OnDuplicate, nil
}

func (p *AutoPrompter) SelectEvent(title string, candidates []*models.Event) (*models.Event, bool, error) {
	if len(candidates) == 0 {
		return nil, false, nil
	}
	return candidates[0], true, nil
}
