package cli

import (
	"fmt"

	"github.com/julianstephens/daybook/internal/models"
)

type ModifyCmd struct {
	Name     string `arg:"" help:"Event to modify (title or part of it)."`
	On       string `help:"Date of the event, to narrow the search (YYYY-MM-DD)."`
	Title    string `help:"New title."`
	Location string `help:"New location."`
}

func (cmd *ModifyCmd) Run(ctx *Context) error {
	if cmd.Title == "" && cmd.Location == "" {
		return fmt.Errorf("nothing to change: pass --title and/or --location")
	}

	session, err := ctx.OpenSession()
	if err != nil {
		return err
	}

	target, err := ctx.ResolveTarget(session, cmd.Name, cmd.On)
	if err != nil {
		return err
	}

	req := models.NewChangeRequest(models.ChangeModify, target, models.ChangeFields{
		Title:    cmd.Title,
		Location: cmd.Location,
	}, "modify "+cmd.Name)
	printResult(session.Executor.Execute(req, false))
	return nil
}
