package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/daybook/internal/cli"
	"github.com/julianstephens/daybook/internal/config"
	"github.com/julianstephens/daybook/internal/log"
	"github.com/julianstephens/daybook/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Config file path." type:"path"`
	Store   string `help:"Calendar store path, overrides the config." type:"path"`
	NoStore bool   `help:"Run local-only, without a calendar store."`
	Plain   bool   `help:"Answer prompts with safe defaults instead of asking."`
	Verbose bool   `short:"v" help:"Enable debug logging."`

	Init       cli.InitCmd       `cmd:"" help:"Initialize the calendar store."`
	Add        cli.AddCmd        `cmd:"" help:"Add an event."`
	Cancel     cli.CancelCmd     `cmd:"" help:"Cancel an event."`
	Reschedule cli.RescheduleCmd `cmd:"" help:"Move an event to a new date or time."`
	Modify     cli.ModifyCmd     `cmd:"" help:"Change an event's title or location."`
	Show       cli.ShowCmd       `cmd:"" help:"Show the schedule."`
	Conflicts  cli.ConflictsCmd  `cmd:"" help:"Scan the schedule for conflicts."`
	Free       cli.FreeCmd       `cmd:"" help:"List free slots on a date."`
	Shift      cli.ShiftCmd      `cmd:"" help:"Move a day's events onto another date, longest first."`
	Negotiate  cli.NegotiateCmd  `cmd:"" help:"Pick the best time slot across candidate dates."`
	Queue      cli.QueueCmd      `cmd:"" help:"Execute a file of queued changes in order."`
	Import     cli.ImportCmd     `cmd:"" help:"Import events from an .ics or .json document."`
	Doctor     cli.DoctorCmd     `cmd:"" help:"Run health diagnostics."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("daybook"),
		kong.Description("Schedule consistency engine: conflict-aware event planning"),
		kong.UsageOnError(),
		kong.Vars{"version": "v0.1.0"},
	)

	if CLI.Verbose {
		log.SetLevel(log.LevelDebug)
	}

	cfgPath := CLI.Config
	if cfgPath == "" {
		var err error
		cfgPath, err = config.DefaultPath()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: cannot locate config directory: %v\n", err)
			os.Exit(1)
		}
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	var store storage.CalendarStore
	if !CLI.NoStore {
		storePath := CLI.Store
		if storePath == "" {
			storePath = cfg.StorePath
		}
		if storePath == "" {
			storePath = filepath.Join(filepath.Dir(cfgPath), "daybook.db")
		}
		store = storage.NewSQLiteStore(storePath)
	}

	appCtx := &cli.Context{
		Config:      cfg,
		Store:       store,
		Interactive: !CLI.Plain,
	}

	err = ctx.Run(appCtx)
	if store != nil {
		store.Close()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
