package cli

import (
	"fmt"
	"time"
)

type ShowCmd struct {
	Date string `arg:"" optional:"" help:"Date to show (YYYY-MM-DD or 'today'). Omit for the full schedule."`
}

func (cmd *ShowCmd) Run(ctx *Context) error {
	session, err := ctx.OpenSession()
	if err != nil {
		return err
	}

	date := ""
	if cmd.Date != "" {
		date, err = resolveDate(cmd.Date)
		if err != nil {
			return err
		}
	}

	events := session.Schedule.Events()
	var shown int
	lastDate := ""
	for _, e := range sortedByTime(events) {
		if date != "" && e.Date != date {
			continue
		}
		if e.Date != lastDate {
			if lastDate != "" {
				fmt.Println()
			}
			fmt.Println(headerStyle.Render(e.Date))
			lastDate = e.Date
		}
		line := fmt.Sprintf("  %s-%s  %-30s  %s", e.Start, e.End, e.Title, dimStyle.Render(string(e.Category)))
		if e.Location != "" {
			line += "  @ " + e.Location
		}
		fmt.Println(line)
		shown++
	}

	if shown == 0 {
		if date != "" {
			fmt.Printf("No events on %s\n", date)
		} else {
			fmt.Println("Schedule is empty")
		}
	}
	return nil
}

// resolveDate accepts YYYY-MM-DD plus the 'today'/'tomorrow' shorthands.
func resolveDate(s string) (string, error) {
	switch s {
	case "today":
		return time.Now().Format("2006-01-02"), nil
	case "tomorrow":
		return time.Now().AddDate(0, 0, 1).Format("2006-01-02"), nil
	}
	if _, err := time.Parse("2006-01-02", s); err != nil {
		return "", fmt.Errorf("invalid date %q, use YYYY-MM-DD, 'today' or 'tomorrow'", s)
	}
	return s, nil
}
