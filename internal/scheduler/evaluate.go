package scheduler

import (
	"time"

	"github.com/pathakanu/studyPlanner/internal/model"
)

// DefaultWindow is how far ahead of its time a reminder becomes due.
const DefaultWindow = 5 * time.Minute

// State is where a reminder stands relative to now.
type State int

const (
	// Future reminders are more than one window away.
	Future State = iota
	// DueSoon reminders are inside the window and have not fired yet.
	DueSoon
	// Fired reminders have emitted their notification.
	Fired
	// Past reminders reached their time without firing and never will.
	Past
)

func (s State) String() string {
	switch s {
	case Future:
		return "future"
	case DueSoon:
		return "due-soon"
	case Fired:
		return "fired"
	case Past:
		return "past"
	default:
		return "unknown"
	}
}

// Notification announces that a reminder is about to be due.
type Notification struct {
	Reminder model.Reminder
	At       time.Time
	// Lead is the time left until the reminder when it fired.
	Lead time.Duration
}

// FiredSet records, per reminder id, the instant for which a notification
// was emitted. A reminder whose date or time is later edited no longer
// matches its entry and can fire again.
type FiredSet map[string]time.Time

func (f FiredSet) has(id string, at time.Time) bool {
	prev, ok := f[id]
	return ok && prev.Equal(at)
}

// StateOf classifies r at now. Reminders with unreadable dates count as Past.
func StateOf(r model.Reminder, fired FiredSet, now time.Time, window time.Duration) State {
	at, err := r.At(now.Location())
	if err != nil {
		return Past
	}
	if fired.has(r.ID, at) {
		return Fired
	}
	delta := at.Sub(now)
	switch {
	case delta <= 0:
		return Past
	case delta <= window:
		return DueSoon
	default:
		return Future
	}
}

// Evaluate runs one tick. Every DueSoon reminder yields exactly one
// notification and is recorded as fired. The returned set is new; entries for
// reminders that no longer exist are dropped, and fired is left untouched.
func Evaluate(reminders []model.Reminder, fired FiredSet, now time.Time, window time.Duration) ([]Notification, FiredSet) {
	next := make(FiredSet, len(fired))
	var out []Notification
	for _, r := range reminders {
		at, err := r.At(now.Location())
		if err != nil {
			continue
		}
		switch StateOf(r, fired, now, window) {
		case Fired:
			next[r.ID] = at
		case DueSoon:
			out = append(out, Notification{Reminder: r, At: at, Lead: at.Sub(now)})
			next[r.ID] = at
		}
	}
	return out, next
}
