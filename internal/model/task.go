package model

import "time"

// Task is an actionable to-do item, optionally linked to a Goal. GoalID is a
// soft reference; nothing prevents it from outliving the goal except the
// cascade on goal deletion.
type Task struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	GoalID      *string   `json:"goalId"`
	DueDate     *string   `json:"dueDate"`
	Priority    Priority  `json:"priority"`
	Completed   bool      `json:"completed"`
	CreatedAt   time.Time `json:"createdAt"`
}

// BelongsTo reports whether the task references goalID.
func (t Task) BelongsTo(goalID string) bool {
	return t.GoalID != nil && *t.GoalID == goalID
}

// Clone returns a copy that shares no pointers with t.
func (t Task) Clone() Task {
	c := t
	if t.GoalID != nil {
		id := *t.GoalID
		c.GoalID = &id
	}
	if t.DueDate != nil {
		d := *t.DueDate
		c.DueDate = &d
	}
	return c
}
