package store

import (
	"strconv"
	"strings"
	"time"

	"github.com/pathakanu/studyPlanner/internal/model"
)

// GoalFields are the raw form values for a goal.
type GoalFields struct {
	Title       string
	Description string
	Deadline    string
	Priority    string
	Progress    string
}

// GoalPatch carries the fields to change on a goal; nil members keep the
// current value.
type GoalPatch struct {
	Title       *string
	Description *string
	Deadline    *string
	Priority    *string
	Progress    *string
}

// TaskFields are the raw form values for a task. Empty GoalID and DueDate
// mean "none".
type TaskFields struct {
	Title       string
	Description string
	GoalID      string
	DueDate     string
	Priority    string
}

// TaskPatch carries the fields to change on a task. A non-nil empty GoalID
// or DueDate clears the value.
type TaskPatch struct {
	Title       *string
	Description *string
	GoalID      *string
	DueDate     *string
	Priority    *string
}

// ReminderFields are the raw form values for a reminder.
type ReminderFields struct {
	Title       string
	Description string
	Date        string
	Time        string
	Type        string
}

// ReminderPatch carries the fields to change on a reminder.
type ReminderPatch struct {
	Title       *string
	Description *string
	Date        *string
	Time        *string
	Type        *string
}

func required(field, value string) (string, error) {
	v := strings.TrimSpace(value)
	if v == "" {
		return "", invalid(field, "is required")
	}
	return v, nil
}

func requiredDate(field, value string, loc *time.Location) (string, error) {
	v, err := required(field, value)
	if err != nil {
		return "", err
	}
	return checkDate(field, v, loc)
}

func checkDate(field, value string, loc *time.Location) (string, error) {
	if _, err := model.ParseDate(value, loc); err != nil {
		return "", invalid(field, "must be a date in YYYY-MM-DD form")
	}
	return value, nil
}

func requiredClock(field, value string) (string, error) {
	v, err := required(field, value)
	if err != nil {
		return "", err
	}
	if _, err := model.ParseClock(v); err != nil {
		return "", invalid(field, "must be a time in HH:MM form")
	}
	return v, nil
}

func parsePriority(value string) (model.Priority, error) {
	p, err := model.ParsePriority(value)
	if err != nil {
		return "", invalid("priority", "must be low, medium or high")
	}
	return p, nil
}

func parseReminderType(value string) (model.ReminderType, error) {
	rt, err := model.ParseReminderType(value)
	if err != nil {
		return "", invalid("type", "must be study, exam, deadline or other")
	}
	return rt, nil
}

// parseProgress coerces the progress slider value. Empty means 0.
func parseProgress(value string) (int, error) {
	v := strings.TrimSpace(value)
	if v == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, invalid("progress", "must be a whole number")
	}
	if n < 0 || n > 100 {
		return 0, invalid("progress", "must be between 0 and 100")
	}
	return n, nil
}

func optional(value string) *string {
	v := strings.TrimSpace(value)
	if v == "" {
		return nil
	}
	return &v
}
