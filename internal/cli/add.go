package cli

import (
	"github.com/julianstephens/daybook/internal/models"
)

type AddCmd struct {
	Title    string `arg:"" help:"Event title."`
	Date     string `required:"" help:"Date (YYYY-MM-DD)."`
	Start    string `required:"" help:"Start time (HH:MM)."`
	End      string `required:"" help:"End time (HH:MM)."`
	Category string `help:"Event category (lecture, lab, exam, meeting, practice, other)." default:"other"`
	Location string `help:"Event location."`
	Notes    string `help:"Free-form notes."`
	Yes      bool   `short:"y" help:"Apply even if conflicts are detected."`
}

func (cmd *AddCmd) Run(ctx *Context) error {
	session, err := ctx.OpenSession()
	if err != nil {
		return err
	}

	event := &models.Event{
		Title:    cmd.Title,
		Category: models.ParseCategory(cmd.Category),
		Location: cmd.Location,
		Date:     cmd.Date,
		Start:    cmd.Start,
		End:      cmd.End,
		Notes:    cmd.Notes,
	}

	req := models.NewChangeRequest(models.ChangeAdd, nil, models.ChangeFields{NewEvent: event}, "add "+cmd.Title)
	printResult(session.Executor.Execute(req, cmd.Yes))
	return nil
}
