package cli

import (
	"fmt"
)

type FreeCmd struct {
	Date     string `arg:"" help:"Date to search (YYYY-MM-DD or 'today')."`
	Duration int    `help:"Minimum slot length in minutes." default:"0"`
}

func (cmd *FreeCmd) Run(ctx *Context) error {
	session, err := ctx.OpenSession()
	if err != nil {
		return err
	}

	date, err := resolveDate(cmd.Date)
	if err != nil {
		return err
	}

	duration := cmd.Duration
	if duration <= 0 {
		duration = ctx.Config.DefaultDurationMin
	}

	free := session.Finder.FindFreeSlots(session.Schedule.Events(), date, duration)
	if len(free) == 0 {
		fmt.Printf("No free slots of %d min on %s\n", duration, date)
		return nil
	}

	fmt.Printf("Free slots on %s (at least %d min):\n", date, duration)
	for _, slot := range free {
		fmt.Printf("  %s-%s\n", slot.Start, slot.End)
	}
	return nil
}
