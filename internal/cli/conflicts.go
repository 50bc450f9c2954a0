package cli

import (
	"fmt"
)

type ConflictsCmd struct {
	Hints bool `help:"Suggest free slots that would resolve each conflict." default:"true" negatable:""`
}

func (cmd *ConflictsCmd) Run(ctx *Context) error {
	session, err := ctx.OpenSession()
	if err != nil {
		return err
	}

	conflicts, issues := session.Detector.Detect(session.Schedule.Events())
	for _, issue := range issues {
		fmt.Println(warnStyle.Render("⚠") + fmt.Sprintf(" %q has a malformed time and was not checked: %v", issue.Event.Title, issue.Err))
	}

	if len(conflicts) == 0 {
		fmt.Println(okStyle.Render("✓") + " no conflicts found")
		return nil
	}

	fmt.Printf("%d conflict(s) found:\n\n", len(conflicts))
	for _, c := range conflicts {
		fmt.Println(renderConflict(c))
		if !cmd.Hints {
			continue
		}

		// Suggest where the second event of the pair could move to.
		duration, err := c.B.DurationMin()
		if err != nil {
			continue
		}
		free := session.Finder.FindFreeSlots(session.Schedule.Without(c.B), c.B.Date, duration)
		if len(free) == 0 {
			fmt.Println(dimStyle.Render(fmt.Sprintf("  no free slot on %s could hold %q", c.B.Date, c.B.Title)))
			continue
		}
		limit := len(free)
		if limit > 3 {
			limit = 3
		}
		for _, slot := range free[:limit] {
			fmt.Println(dimStyle.Render(fmt.Sprintf("  hint: %q could move to %s-%s", c.B.Title, slot.Start, slot.End)))
		}
	}
	return nil
}
