package cli

import (
	"fmt"

	"github.com/julianstephens/daybook/internal/extract"
	"github.com/julianstephens/daybook/internal/models"
)

type ImportCmd struct {
	File string `arg:"" type:"existingfile" help:"Schedule document to import (.ics or .json)."`
	Yes  bool   `short:"y" help:"Apply even if conflicts are detected."`
}

func (cmd *ImportCmd) Run(ctx *Context) error {
	extractor, err := extract.ForFile(cmd.File)
	if err != nil {
		return err
	}

	events, err := extractor.Extract(cmd.File)
	if err != nil {
		return err
	}
	if len(events) == 0 {
		fmt.Println("No importable events found")
		return nil
	}

	session, err := ctx.OpenSession()
	if err != nil {
		return err
	}

	for _, event := range events {
		req := models.NewChangeRequest(models.ChangeAdd, nil, models.ChangeFields{NewEvent: event}, "import "+event.Title)
		session.Coordinator.Enqueue(req)
	}

	fmt.Printf("Importing %d event(s) from %s...\n\n", len(events), cmd.File)
	printSummary(session.Coordinator.Coordinate(cmd.Yes))
	return nil
}
