package coordinator

import (
	"testing"

	"github.com/julianstephens/daybook/internal/conflict"
	"github.com/julianstephens/daybook/internal/executor"
	"github.com/julianstephens/daybook/internal/models"
	"github.com/julianstephens/daybook/internal/prompt"
	"github.com/julianstephens/daybook/internal/slots"
)

func event(title, date, start, end string) *models.Event {
	return &models.Event{Title: title, Category: models.CategoryOther, Date: date, Start: start, End: end}
}

func coordinatorOver(events ...*models.Event) (*Coordinator, *models.Schedule) {
	schedule := models.NewSchedule(events...)
	exec := executor.New(schedule, conflict.NewDetector(), nil, prompt.NewAutoPrompter())
	return New(exec, slots.MustDefault()), schedule
}

func addRequest(e *models.Event) *models.ChangeRequest {
	return models.NewChangeRequest(models.ChangeAdd, nil, models.ChangeFields{NewEvent: e}, "add "+e.Title)
}

func TestCoordinate_DrainsQueueInOrder(t *testing.T) {
	c, schedule := coordinatorOver()

	c.Enqueue(addRequest(event("First", "2026-09-01", "09:00", "10:00")))
	c.Enqueue(addRequest(event("Second", "2026-09-01", "10:00", "11:00")))
	if c.PendingCount() != 2 {
		t.Fatalf("pending = %d, want 2", c.PendingCount())
	}

	summary := c.Coordinate(false)
	if summary.Executed != 2 || summary.Failed != 0 {
		t.Errorf("executed=%d failed=%d, want 2/0", summary.Executed, summary.Failed)
	}
	if schedule.Len() != 2 {
		t.Errorf("schedule has %d events, want 2", schedule.Len())
	}
	if schedule.Events()[0].Title != "First" {
		t.Errorf("execution order not preserved")
	}
	if c.PendingCount() != 0 {
		t.Errorf("queue not cleared after the pass")
	}
}

func TestCoordinate_ClearsQueueEvenOnFailures(t *testing.T) {
	c, _ := coordinatorOver(event("Blocker", "2026-09-01", "09:00", "10:00"))

	// Conflicts with the blocker; the auto policy declines it.
	c.Enqueue(addRequest(event("Clash", "2026-09-01", "09:30", "10:30")))
	summary := c.Coordinate(false)
	if summary.Executed != 0 || summary.Failed != 1 {
		t.Errorf("executed=%d failed=%d, want 0/1", summary.Executed, summary.Failed)
	}
	if len(summary.Conflicts) != 1 {
		t.Errorf("summary should carry the conflict, got %v", summary.Conflicts)
	}
	if c.PendingCount() != 0 {
		t.Errorf("failed items must not stay queued")
	}
}

func TestCoordinate_CountsAlwaysSumToAttempted(t *testing.T) {
	c, _ := coordinatorOver()
	c.Enqueue(addRequest(event("OK", "2026-09-01", "09:00", "10:00")))
	c.Enqueue(models.NewChangeRequest(models.ChangeCancel, nil, models.ChangeFields{}, "cancel ghost"))
	c.Enqueue(addRequest(event("Also OK", "2026-09-01", "11:00", "12:00")))

	summary := c.Coordinate(false)
	if summary.Executed+summary.Failed != 3 {
		t.Errorf("executed+failed = %d, want 3", summary.Executed+summary.Failed)
	}
	if len(summary.Details) != 3 {
		t.Errorf("got %d details, want 3", len(summary.Details))
	}
}

func TestBatchReschedule_LongestFirstIntoTightDay(t *testing.T) {
	long := event("Deep Work", "2026-09-01", "09:00", "11:00")   // 120 min
	short := event("Check-in", "2026-09-01", "13:00", "14:00")   // 60 min
	blockA := event("Blocked", "2026-09-02", "08:00", "17:00")   // leaves 17:00-20:00
	blockB := event("Dinner", "2026-09-02", "18:30", "20:00")    // splits it: 17:00-18:30 free

	c, _ := coordinatorOver(long, short, blockA, blockB)

	// Only a 90-minute hole is open on the target date: the 120-minute
	// event cannot fit, the 60-minute one can.
	summary := c.BatchReschedule([]*models.Event{short, long}, "2026-09-02", true)
	if summary.Executed != 1 || summary.Failed != 1 {
		t.Fatalf("executed=%d failed=%d, want 1/1", summary.Executed, summary.Failed)
	}

	// The long event was tried first (duration-descending) and left alone.
	if long.Date != "2026-09-01" {
		t.Errorf("unplaceable event was moved")
	}
	if short.Date != "2026-09-02" || short.Start != "17:00" || short.End != "18:00" {
		t.Errorf("short event at %s %s-%s, want 2026-09-02 17:00-18:00", short.Date, short.Start, short.End)
	}
}

func TestBatchReschedule_PlacementsSeeEarlierPlacements(t *testing.T) {
	a := event("Two Hours", "2026-09-01", "09:00", "11:00")
	b := event("One Hour", "2026-09-01", "13:00", "14:00")
	c, _ := coordinatorOver(a, b)

	summary := c.BatchReschedule([]*models.Event{b, a}, "2026-09-02", true)
	if summary.Executed != 2 {
		t.Fatalf("executed=%d, want 2: %+v", summary.Executed, summary.Details)
	}
	// Longest first: the two-hour event claims the start of the window and
	// the one-hour event lands right after it.
	if a.Start != "08:00" || a.End != "10:00" {
		t.Errorf("long event at %s-%s, want 08:00-10:00", a.Start, a.End)
	}
	if b.Start != "10:00" || b.End != "11:00" {
		t.Errorf("short event at %s-%s, want 10:00-11:00", b.Start, b.End)
	}
}

func TestNegotiateTime_PrefersMidMorning(t *testing.T) {
	// 2026-09-01 is fully booked until 14:00; 2026-09-02 is free.
	busy := event("All Morning", "2026-09-01", "08:00", "14:00")
	c, _ := coordinatorOver(busy)

	n, ok := c.NegotiateTime([]string{"2026-09-01", "2026-09-02"}, 60)
	if !ok {
		t.Fatal("negotiation found no option")
	}
	// Only slot starts are scored. The free day's single slot starts at
	// 08:00 (score 40); the busy day's slot starts at 14:00 (score 80).
	if n.Best.Date != "2026-09-01" || n.Best.Start != "14:00" {
		t.Errorf("best = %s %s, want 2026-09-01 14:00", n.Best.Date, n.Best.Start)
	}
	if len(n.Alternatives) != 1 || n.Alternatives[0].Date != "2026-09-02" {
		t.Errorf("alternatives = %+v", n.Alternatives)
	}
}

func TestNegotiateTime_NoQualifyingSlot(t *testing.T) {
	busy := event("Marathon", "2026-09-01", "08:00", "20:00")
	c, _ := coordinatorOver(busy)

	if _, ok := c.NegotiateTime([]string{"2026-09-01"}, 60); ok {
		t.Error("fully booked day should yield no negotiation")
	}
}

func TestNegotiateTime_AlternativesCappedAtTwo(t *testing.T) {
	c, _ := coordinatorOver()
	dates := []string{"2026-09-01", "2026-09-02", "2026-09-03", "2026-09-04"}

	n, ok := c.NegotiateTime(dates, 30)
	if !ok {
		t.Fatal("negotiation found no option")
	}
	if len(n.Alternatives) != 2 {
		t.Errorf("got %d alternatives, want 2", len(n.Alternatives))
	}
}

func TestScoreStartHour_PreferenceCurve(t *testing.T) {
	cases := map[int]int{
		8:  40,
		9:  100,
		11: 100,
		12: 60,
		14: 80,
		16: 80,
		17: 60,
		7:  20,
		19: 20,
	}
	for hour, want := range cases {
		if got := scoreStartHour(hour); got != want {
			t.Errorf("scoreStartHour(%d) = %d, want %d", hour, got, want)
		}
	}
}
