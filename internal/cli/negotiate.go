package cli

import (
	"fmt"
)

type NegotiateCmd struct {
	Dates    []string `arg:"" help:"Candidate dates (YYYY-MM-DD), best first wins ties."`
	Duration int      `help:"Required slot length in minutes." default:"0"`
}

func (cmd *NegotiateCmd) Run(ctx *Context) error {
	session, err := ctx.OpenSession()
	if err != nil {
		return err
	}

	dates := make([]string, 0, len(cmd.Dates))
	for _, d := range cmd.Dates {
		resolved, err := resolveDate(d)
		if err != nil {
			return err
		}
		dates = append(dates, resolved)
	}

	duration := cmd.Duration
	if duration <= 0 {
		duration = ctx.Config.DefaultDurationMin
	}

	negotiation, ok := session.Coordinator.NegotiateTime(dates, duration)
	if !ok {
		fmt.Printf("No date has a free slot of %d min\n", duration)
		return nil
	}

	best := negotiation.Best
	fmt.Println(okStyle.Render("best:") + fmt.Sprintf(" %s %s-%s", best.Date, best.Start, best.End))
	for _, alt := range negotiation.Alternatives {
		fmt.Println(dimStyle.Render(fmt.Sprintf("  alternative: %s %s-%s", alt.Date, alt.Start, alt.End)))
	}
	return nil
}
