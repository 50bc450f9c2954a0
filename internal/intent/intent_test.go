package intent

import (
	"testing"

	"github.com/julianstephens/daybook/internal/models"
)

func schedule() *models.Schedule {
	return models.NewSchedule(
		&models.Event{Title: "Algorithms Lecture", Date: "2026-09-01", Start: "10:00", End: "11:00"},
		&models.Event{Title: "Chemistry Lab", Date: "2026-09-01", Start: "14:00", End: "16:00"},
		&models.Event{Title: "Algorithms Lecture", Date: "2026-09-02", Start: "10:00", End: "11:00"},
	)
}

func TestFindTarget_SubstringMatch(t *testing.T) {
	s := schedule()
	got := FindTarget(s, "chemistry", "")
	if got == nil || got.Title != "Chemistry Lab" {
		t.Errorf("FindTarget(chemistry) = %v", got)
	}
}

func TestFindTarget_ReverseSubstringMatch(t *testing.T) {
	s := schedule()
	// The query contains the full title plus extra words.
	got := FindTarget(s, "the chemistry lab session tomorrow", "")
	if got == nil || got.Title != "Chemistry Lab" {
		t.Errorf("reverse substring lookup failed, got %v", got)
	}
}

func TestFindTarget_WordOverlapFallback(t *testing.T) {
	s := schedule()
	got := FindTarget(s, "lab of chemistry", "")
	if got == nil || got.Title != "Chemistry Lab" {
		t.Errorf("word-overlap lookup failed, got %v", got)
	}
}

func TestFindTarget_DateNarrowsTheSearch(t *testing.T) {
	s := schedule()
	got := FindTarget(s, "algorithms", "2026-09-02")
	if got == nil || got.Date != "2026-09-02" {
		t.Errorf("date filter ignored, got %v", got)
	}
}

func TestFindTarget_NoMatch(t *testing.T) {
	s := schedule()
	if got := FindTarget(s, "yoga", ""); got != nil {
		t.Errorf("unrelated query matched %v", got)
	}
	if got := FindTarget(s, "", ""); got != nil {
		t.Errorf("empty query matched %v", got)
	}
	if got := FindTarget(s, "chemistry", "2026-09-09"); got != nil {
		t.Errorf("wrong date matched %v", got)
	}
}

func TestNeedsClarificationError(t *testing.T) {
	err := &NeedsClarificationError{Question: "which day?"}
	if err.Error() != "needs clarification: which day?" {
		t.Errorf("Error() = %q", err.Error())
	}
}
