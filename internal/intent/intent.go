// Package intent defines the contract for turning a free-text instruction
// into a structured change request. The engine itself never parses natural
// language; resolvers are external collaborators.
package intent

import (
	"strings"

	"github.com/julianstephens/daybook/internal/models"
)

// Resolver maps an instruction plus the current schedule onto a change
// request. Implementations return *NeedsClarificationError when the text is
// too ambiguous to act on.
type Resolver interface {
	Resolve(text string, schedule *models.Schedule) (*models.ChangeRequest, error)
}

// NeedsClarificationError is a resolver outcome, not a failure: the request
// was understood to be a change, but details are missing.
type NeedsClarificationError struct {
	Question string
}

func (e *NeedsClarificationError) Error() string {
	return "needs clarification: " + e.Question
}

// FindTarget resolves an event reference against the schedule. It tries, in
// order: substring match of the name in an event title, the reverse
// substring match, then best word-overlap score. A non-empty date narrows
// every stage. Returns nil when nothing matches.
func FindTarget(schedule *models.Schedule, name, date string) *models.Event {
	if name == "" {
		return nil
	}
	needle := strings.ToLower(name)

	for _, e := range schedule.Events() {
		if strings.Contains(strings.ToLower(e.Title), needle) && dateMatches(e, date) {
			return e
		}
	}
	for _, e := range schedule.Events() {
		if strings.Contains(needle, strings.ToLower(e.Title)) && dateMatches(e, date) {
			return e
		}
	}

	searchWords := fieldsSet(needle)
	var best *models.Event
	bestScore := 0
	for _, e := range schedule.Events() {
		if !dateMatches(e, date) {
			continue
		}
		score := 0
		for w := range fieldsSet(strings.ToLower(e.Title)) {
			if searchWords[w] {
				score++
			}
		}
		if score > bestScore {
			bestScore = score
			best = e
		}
	}
	return best
}

func dateMatches(e *models.Event, date string) bool {
	return date == "" || e.Date == date
}

func fieldsSet(s string) map[string]bool {
	set := make(map[string]bool)
	for _, w := range strings.Fields(s) {
		set[w] = true
	}
	return set
}
