package cli

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/julianstephens/daybook/internal/coordinator"
	"github.com/julianstephens/daybook/internal/intent"
	"github.com/julianstephens/daybook/internal/models"
)

// queuedChange is one entry in a change file. Target is a free-text event
// reference resolved against the schedule at execution time.
type queuedChange struct {
	Kind       models.ChangeKind   `yaml:"kind"`
	Target     string              `yaml:"target,omitempty"`
	TargetDate string              `yaml:"target_date,omitempty"`
	Fields     models.ChangeFields `yaml:"fields"`
}

type QueueCmd struct {
	File string `arg:"" type:"existingfile" help:"YAML file of queued changes."`
	Yes  bool   `short:"y" help:"Apply even if conflicts are detected."`
}

func (cmd *QueueCmd) Run(ctx *Context) error {
	data, err := os.ReadFile(cmd.File)
	if err != nil {
		return fmt.Errorf("read %s: %w", cmd.File, err)
	}

	var queued []queuedChange
	if err := yaml.Unmarshal(data, &queued); err != nil {
		return fmt.Errorf("parse %s: %w", cmd.File, err)
	}
	if len(queued) == 0 {
		fmt.Println("No changes queued")
		return nil
	}

	session, err := ctx.OpenSession()
	if err != nil {
		return err
	}

	for i, qc := range queued {
		var target *models.Event
		if qc.Kind != models.ChangeAdd {
			target = intent.FindTarget(session.Schedule, qc.Target, qc.TargetDate)
		}
		label := fmt.Sprintf("%s #%d", qc.Kind, i+1)
		if qc.Target != "" {
			label = fmt.Sprintf("%s %q", qc.Kind, qc.Target)
		} else if qc.Fields.NewEvent != nil {
			label = fmt.Sprintf("%s %q", qc.Kind, qc.Fields.NewEvent.Title)
		}
		session.Coordinator.Enqueue(models.NewChangeRequest(qc.Kind, target, qc.Fields, label))
	}

	fmt.Printf("Executing %d queued change(s)...\n\n", session.Coordinator.PendingCount())
	printSummary(session.Coordinator.Coordinate(cmd.Yes))
	return nil
}

// printSummary renders a batch outcome, one line per item.
func printSummary(summary coordinator.Summary) {
	for _, d := range summary.Details {
		label := d.Label
		if d.Slot != "" {
			label += " → " + d.Slot
		}
		fmt.Println(headerStyle.Render(label))
		printResult(d.Result)
	}
	fmt.Println()
	fmt.Printf("%d executed, %d failed", summary.Executed, summary.Failed)
	if len(summary.Conflicts) > 0 {
		fmt.Printf(", %d conflict(s) noted", len(summary.Conflicts))
	}
	fmt.Println()
}
