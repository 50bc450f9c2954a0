package cli

import (
	"github.com/julianstephens/daybook/internal/models"
)

type CancelCmd struct {
	Name string `arg:"" help:"Event to cancel (title or part of it)."`
	Date string `help:"Narrow the search to one date (YYYY-MM-DD)."`
}

func (cmd *CancelCmd) Run(ctx *Context) error {
	session, err := ctx.OpenSession()
	if err != nil {
		return err
	}

	target, err := ctx.ResolveTarget(session, cmd.Name, cmd.Date)
	if err != nil {
		return err
	}

	req := models.NewChangeRequest(models.ChangeCancel, target, models.ChangeFields{}, "cancel "+cmd.Name)
	printResult(session.Executor.Execute(req, false))
	return nil
}
