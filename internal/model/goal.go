package model

import (
	"fmt"
	"strings"
	"time"
)

// Priority ranks goals and tasks.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// ParsePriority resolves a form value to a Priority. An empty value yields
// PriorityMedium, the default of the priority picker.
func ParsePriority(s string) (Priority, error) {
	switch Priority(strings.ToLower(strings.TrimSpace(s))) {
	case PriorityLow:
		return PriorityLow, nil
	case PriorityMedium, "":
		return PriorityMedium, nil
	case PriorityHigh:
		return PriorityHigh, nil
	default:
		return "", fmt.Errorf("unknown priority %q", s)
	}
}

// Goal is a long-term study objective with a deadline and a progress
// percentage between 0 and 100.
type Goal struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Deadline    string    `json:"deadline"`
	Priority    Priority  `json:"priority"`
	Progress    int       `json:"progress"`
	CreatedAt   time.Time `json:"createdAt"`
}

// GoalOption is an entry of the goal picker shown on task forms.
type GoalOption struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}
