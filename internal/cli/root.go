package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/julianstephens/daybook/internal/config"
	"github.com/julianstephens/daybook/internal/conflict"
	"github.com/julianstephens/daybook/internal/coordinator"
	"github.com/julianstephens/daybook/internal/executor"
	"github.com/julianstephens/daybook/internal/models"
	"github.com/julianstephens/daybook/internal/prompt"
	"github.com/julianstephens/daybook/internal/slots"
	"github.com/julianstephens/daybook/internal/storage"
)

// Context carries everything a command needs. Store is nil in local-only
// mode; Interactive false routes every confirmation through the
// non-interactive default policy.
type Context struct {
	Config      *config.Config
	Store       storage.CalendarStore
	Interactive bool
}

// Session wires the engine for one command invocation: the schedule seeded
// from the store, the detector, the executor, and the coordinator.
type Session struct {
	Schedule    *models.Schedule
	Detector    *conflict.Detector
	Finder      *slots.Finder
	Executor    *executor.Executor
	Coordinator *coordinator.Coordinator
}

// OpenSession loads the schedule from the calendar store (all events when
// no store is bound, the schedule starts empty) and constructs the engine
// around it.
func (ctx *Context) OpenSession() (*Session, error) {
	finder, err := slots.NewFinder(ctx.Config.DayStart, ctx.Config.DayEnd)
	if err != nil {
		return nil, fmt.Errorf("invalid day window in config: %w", err)
	}

	schedule := models.NewSchedule()
	if ctx.Store != nil {
		if err := ctx.Store.Open(); err != nil {
			return nil, err
		}
		events, err := ctx.Store.Query("", "")
		if err != nil {
			return nil, err
		}
		for _, e := range events {
			schedule.Add(e)
		}
	}

	detector := conflict.NewDetector()
	exec := executor.New(schedule, detector, ctx.Store, ctx.prompter())
	return &Session{
		Schedule:    schedule,
		Detector:    detector,
		Finder:      finder,
		Executor:    exec,
		Coordinator: coordinator.New(exec, finder),
	}, nil
}

func (ctx *Context) prompter() prompt.Prompter {
	if ctx.Interactive {
		return prompt.NewHuhPrompter()
	}
	return prompt.NewAutoPrompter()
}

// ResolveTarget finds the event a user named. A single match wins
// directly; several go through the presentation layer's select, capped at
// ten candidates.
func (ctx *Context) ResolveTarget(s *Session, name, date string) (*models.Event, error) {
	needle := strings.ToLower(name)
	var candidates []*models.Event
	for _, e := range s.Schedule.Events() {
		title := strings.ToLower(e.Title)
		if !strings.Contains(title, needle) && !strings.Contains(needle, title) {
			continue
		}
		if date != "" && e.Date != date {
			continue
		}
		candidates = append(candidates, e)
	}

	switch len(candidates) {
	case 0:
		return nil, nil
	case 1:
		return candidates[0], nil
	}

	if len(candidates) > 10 {
		candidates = candidates[:10]
	}
	choice, ok, err := ctx.prompter().SelectEvent(fmt.Sprintf("Found %d events matching %q", len(candidates), name), candidates)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("selection cancelled")
	}
	return choice, nil
}

// printResult renders an execution result, conflicts included.
func printResult(result models.ExecutionResult) {
	switch {
	case result.Applied:
		fmt.Println(okStyle.Render("✓") + " " + result.Message)
	case result.SkippedAsDuplicate:
		fmt.Println(warnStyle.Render("⊘") + " " + result.Message)
	default:
		fmt.Println(errStyle.Render("✗") + " " + result.Message)
	}
	for _, c := range result.Conflicts {
		fmt.Println("  " + renderConflict(c))
	}
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

// sortedByTime returns the events ordered by (date, start) for display.
func sortedByTime(events []*models.Event) []*models.Event {
	out := make([]*models.Event, len(events))
	copy(out, events)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		return out[i].Start < out[j].Start
	})
	return out
}
