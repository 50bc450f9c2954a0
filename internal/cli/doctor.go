package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mitchellh/go-ps"

	"github.com/julianstephens/daybook/internal/models"
)

type DoctorCmd struct{}

func (cmd *DoctorCmd) Run(ctx *Context) error {
	fmt.Println("Running diagnostics...")
	fmt.Println()

	hasError := false
	var session *Session

	// Check 1: store reachable
	session, err := ctx.OpenSession()
	if err != nil {
		fmt.Printf("❌ Calendar store reachable: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else if ctx.Store == nil {
		fmt.Printf("⊘ Calendar store reachable: SKIPPED (local-only mode)\n")
	} else {
		fmt.Printf("✓ Calendar store reachable: OK\n")
	}

	if session != nil {
		// Check 2: stored events valid
		if err := checkEventsValid(session); err != nil {
			fmt.Printf("❌ Event validation: FAIL\n")
			fmt.Printf("   Error: %v\n", err)
			hasError = true
		} else {
			fmt.Printf("✓ Event validation: OK\n")
		}

		// Check 3: duplicate store bindings
		if err := checkDuplicateBindings(session); err != nil {
			fmt.Printf("❌ Store bindings: FAIL\n")
			fmt.Printf("   Error: %v\n", err)
			hasError = true
		} else {
			fmt.Printf("✓ Store bindings: OK\n")
		}

		// Check 4: schedule conflicts (warning only)
		conflicts, _ := session.Detector.Detect(session.Schedule.Events())
		if len(conflicts) > 0 {
			fmt.Printf("⚠ Schedule conflicts: %d found (run 'daybook conflicts' for details)\n", len(conflicts))
		} else {
			fmt.Printf("✓ Schedule conflicts: none\n")
		}
	}

	// Check 5: clock/timezone sanity
	if err := checkClock(); err != nil {
		fmt.Printf("❌ Clock/timezone: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Clock/timezone: OK\n")
	}

	// Check 6: concurrent processes (warning only)
	if n, err := countSiblingProcesses(); err != nil {
		fmt.Printf("⚠ Process check: could not list processes: %v\n", err)
	} else if n > 0 {
		fmt.Printf("⚠ Process check: %d other daybook process(es) running, store writes may race\n", n)
	} else {
		fmt.Printf("✓ Process check: OK\n")
	}

	fmt.Println()
	if hasError {
		fmt.Println("Diagnostics completed with errors.")
		return fmt.Errorf("one or more health checks failed")
	}
	fmt.Println("All diagnostics passed!")
	return nil
}

func checkEventsValid(session *Session) error {
	for _, e := range session.Schedule.Events() {
		if err := e.Validate(); err != nil {
			return fmt.Errorf("stored event %q is invalid: %w", e.Title, err)
		}
	}
	return nil
}

func checkDuplicateBindings(session *Session) error {
	seen := make(map[string]*models.Event)
	for _, e := range session.Schedule.Events() {
		if e.ExternalID == "" {
			continue
		}
		if other, ok := seen[e.ExternalID]; ok {
			return fmt.Errorf("events %q and %q share store id %s", other.Title, e.Title, e.ExternalID)
		}
		seen[e.ExternalID] = e
	}
	return nil
}

func checkClock() error {
	now := time.Now()
	if now.Year() < 2020 || now.Year() > 2100 {
		return fmt.Errorf("system time appears incorrect: %s", now.Format(time.RFC3339))
	}
	return nil
}

// countSiblingProcesses counts other running daybook processes. Two writers
// against the same sqlite store invite lock contention.
func countSiblingProcesses() (int, error) {
	procs, err := ps.Processes()
	if err != nil {
		return 0, err
	}
	self := os.Getpid()
	count := 0
	for _, p := range procs {
		if p.Pid() == self {
			continue
		}
		if strings.Contains(strings.ToLower(p.Executable()), "daybook") {
			count++
		}
	}
	return count, nil
}
