package model

import "time"

// EntryKind identifies the source of a timeline entry.
type EntryKind string

const (
	KindGoal     EntryKind = "goal"
	KindTask     EntryKind = "task"
	KindReminder EntryKind = "reminder"
)

// TimelineEntry is a display snapshot of a goal, completed task, or upcoming
// reminder. It holds copies of the fields it needs and never points back at
// the entity it was built from.
type TimelineEntry struct {
	Kind        EntryKind `json:"type"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Date        string    `json:"date"`
	At          time.Time `json:"at"`

	// Goals and tasks.
	Priority Priority `json:"priority,omitempty"`
	// Goals only.
	Progress int `json:"progress"`
	// Reminders only.
	Time         string       `json:"time,omitempty"`
	ReminderType ReminderType `json:"reminderType,omitempty"`
}
