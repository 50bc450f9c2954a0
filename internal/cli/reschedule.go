package cli

import (
	"fmt"

	"github.com/julianstephens/daybook/internal/models"
)

type RescheduleCmd struct {
	Name  string `arg:"" help:"Event to move (title or part of it)."`
	On    string `help:"Current date of the event, to narrow the search (YYYY-MM-DD)."`
	Date  string `help:"New date (YYYY-MM-DD)."`
	Start string `help:"New start time (HH:MM). Keeps the event's length unless --end is also given."`
	End   string `help:"New end time (HH:MM)."`
	Yes   bool   `short:"y" help:"Apply even if conflicts are detected."`
}

func (cmd *RescheduleCmd) Run(ctx *Context) error {
	if cmd.Date == "" && cmd.Start == "" && cmd.End == "" {
		return fmt.Errorf("nothing to change: pass at least one of --date, --start, --end")
	}

	session, err := ctx.OpenSession()
	if err != nil {
		return err
	}

	target, err := ctx.ResolveTarget(session, cmd.Name, cmd.On)
	if err != nil {
		return err
	}

	req := models.NewChangeRequest(models.ChangeReschedule, target, models.ChangeFields{
		Date:  cmd.Date,
		Start: cmd.Start,
		End:   cmd.End,
	}, "reschedule "+cmd.Name)
	printResult(session.Executor.Execute(req, cmd.Yes))
	return nil
}
