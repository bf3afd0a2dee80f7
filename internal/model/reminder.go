package model

import (
	"fmt"
	"strings"
	"time"
)

// ReminderType categorises a reminder.
type ReminderType string

const (
	ReminderStudy    ReminderType = "study"
	ReminderExam     ReminderType = "exam"
	ReminderDeadline ReminderType = "deadline"
	ReminderOther    ReminderType = "other"
)

// ParseReminderType resolves a form value to a ReminderType. An empty value
// yields ReminderOther.
func ParseReminderType(s string) (ReminderType, error) {
	switch ReminderType(strings.ToLower(strings.TrimSpace(s))) {
	case ReminderStudy:
		return ReminderStudy, nil
	case ReminderExam:
		return ReminderExam, nil
	case ReminderDeadline:
		return ReminderDeadline, nil
	case ReminderOther, "":
		return ReminderOther, nil
	default:
		return "", fmt.Errorf("unknown reminder type %q", s)
	}
}

// Reminder is a scheduled point-in-time notification.
type Reminder struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Date        string       `json:"date"`
	Time        string       `json:"time"`
	Type        ReminderType `json:"type"`
	CreatedAt   time.Time    `json:"createdAt"`
}

// At combines Date and Time into an instant in loc.
func (r Reminder) At(loc *time.Location) (time.Time, error) {
	return ParseDateTime(r.Date, r.Time, loc)
}
