package cli

import (
	"fmt"

	"github.com/julianstephens/daybook/internal/models"
)

type ShiftCmd struct {
	From string `arg:"" help:"Date to move events from (YYYY-MM-DD or 'today')."`
	To   string `arg:"" help:"Date to move them to (YYYY-MM-DD or 'tomorrow')."`
	Name string `help:"Only move events whose title contains this text."`
	Yes  bool   `short:"y" help:"Apply even if conflicts are detected."`
}

func (cmd *ShiftCmd) Run(ctx *Context) error {
	session, err := ctx.OpenSession()
	if err != nil {
		return err
	}

	from, err := resolveDate(cmd.From)
	if err != nil {
		return err
	}
	to, err := resolveDate(cmd.To)
	if err != nil {
		return err
	}
	if from == to {
		return fmt.Errorf("source and target date are both %s", from)
	}

	var moving []*models.Event
	for _, e := range session.Schedule.Events() {
		if e.Date != from {
			continue
		}
		if cmd.Name != "" && !containsFold(e.Title, cmd.Name) {
			continue
		}
		moving = append(moving, e)
	}
	if len(moving) == 0 {
		fmt.Printf("Nothing to move from %s\n", from)
		return nil
	}

	summary := session.Coordinator.BatchReschedule(moving, to, cmd.Yes)
	printSummary(summary)
	return nil
}
