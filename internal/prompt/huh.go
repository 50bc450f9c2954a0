package prompt

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/daybook/internal/models"
)

// HuhPrompter renders interactive confirm/select forms on the terminal.
type HuhPrompter struct{}

func NewHuhPrompter() *HuhPrompter {
	return &HuhPrompter{}
}

func (p *HuhPrompter) ConfirmConflicts(candidate *models.Event, conflicts []models.Conflict) (bool, error) {
	var lines []string
	for _, c := range conflicts {
		lines = append(lines, "- "+c.Message)
	}

	proceed := false
	form := huh.NewForm(huh.NewGroup(
		huh.NewConfirm().
			Title(fmt.Sprintf("%d conflict(s) detected for %q", len(conflicts), candidate.Title)).
			Description(strings.Join(lines, "\n")).
			Affirmative("Proceed anyway").
			Negative("Abort").
			Value(&proceed),
	))
	if err := form.Run(); err != nil {
		return false, err
	}
	return proceed, nil
}

func (p *HuhPrompter) ResolveDuplicate(existing, incoming *models.Event) (DuplicateResolution, error) {
	choice := KeepExisting
	form := huh.NewForm(huh.NewGroup(
		huh.NewSelect[DuplicateResolution]().
			Title(fmt.Sprintf("A similar event already exists: %s", existing)).
			Description(fmt.Sprintf("You are adding: %s", incoming)).
			Options(
				huh.NewOption("Keep the existing event", KeepExisting),
				huh.NewOption("Replace it with the new details", Replace),
				huh.NewOption("Keep both", KeepBoth),
				huh.NewOption("Cancel", CancelAdd),
			).
			Value(&choice),
	))
	if err := form.Run(); err != nil {
		return KeepExisting, err
	}
	return choice, nil
}

func (p *HuhPrompter) SelectEvent(title string, candidates []*models.Event) (*models.Event, bool, error) {
	options := make([]huh.Option[int], 0, len(candidates)+1)
	for i, e := range candidates {
		options = append(options, huh.NewOption(e.String(), i))
	}
	options = append(options, huh.NewOption("Cancel", -1))

	choice := 0
	form := huh.NewForm(huh.NewGroup(
		huh.NewSelect[int]().
			Title(title).
			Options(options...).
			Value(&choice),
	))
	if err := form.Run(); err != nil {
		return nil, false, err
	}
	if choice < 0 {
		return nil, false, nil
	}
	return candidates[choice], true, nil
}
