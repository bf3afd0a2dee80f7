package projector

import (
	"time"

	"github.com/pathakanu/studyPlanner/internal/model"
)

// Urgency classifies how soon a reminder is due.
type Urgency string

const (
	Urgent   Urgency = "urgent"
	Upcoming Urgency = "upcoming"
	Normal   Urgency = "normal"
)

const (
	urgentWithin   = 24 * time.Hour
	upcomingWithin = 7 * 24 * time.Hour
)

// ClassifyUrgency compares the reminder's instant, read in now's location,
// against now. Reminders in the past or with unreadable dates are Normal.
func ClassifyUrgency(r model.Reminder, now time.Time) Urgency {
	at, err := r.At(now.Location())
	if err != nil {
		return Normal
	}
	return urgencyOf(at.Sub(now))
}

func urgencyOf(delta time.Duration) Urgency {
	switch {
	case delta > 0 && delta < urgentWithin:
		return Urgent
	case delta > 0 && delta < upcomingWithin:
		return Upcoming
	default:
		return Normal
	}
}

// ReminderView is a reminder with its resolved instant and urgency.
type ReminderView struct {
	model.Reminder
	At      time.Time `json:"at"`
	Urgency Urgency   `json:"urgency"`
}

// ClassifyReminders sorts reminders and tags each with its urgency.
func ClassifyReminders(reminders []model.Reminder, now time.Time) []ReminderView {
	sorted := SortReminders(reminders, now.Location())
	out := make([]ReminderView, 0, len(sorted))
	for _, r := range sorted {
		at, _ := r.At(now.Location())
		out = append(out, ReminderView{Reminder: r, At: at, Urgency: ClassifyUrgency(r, now)})
	}
	return out
}
