// Package projector derives display views from store snapshots. Every
// function here is pure: inputs are never modified and results share no
// memory with them.
package projector

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/pathakanu/studyPlanner/internal/model"
)

// Filter selects tasks by completion.
type Filter string

const (
	FilterAll       Filter = "all"
	FilterPending   Filter = "pending"
	FilterCompleted Filter = "completed"
)

// ParseFilter resolves a filter name; empty means all.
func ParseFilter(s string) (Filter, error) {
	switch Filter(strings.ToLower(strings.TrimSpace(s))) {
	case FilterAll, "":
		return FilterAll, nil
	case FilterPending:
		return FilterPending, nil
	case FilterCompleted:
		return FilterCompleted, nil
	default:
		return "", fmt.Errorf("unknown filter %q (want all, pending or completed)", s)
	}
}

// FilterTasks keeps the tasks matching f in their original order. Any
// filter other than pending or completed returns every task.
func FilterTasks(tasks []model.Task, f Filter) []model.Task {
	out := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		switch f {
		case FilterPending:
			if t.Completed {
				continue
			}
		case FilterCompleted:
			if !t.Completed {
				continue
			}
		}
		out = append(out, t.Clone())
	}
	return out
}

// TaskView pairs a task with the title of the goal it references, if that
// goal still exists.
type TaskView struct {
	model.Task
	GoalTitle string `json:"goalTitle,omitempty"`
}

// AnnotateTasks resolves each task's goal title.
func AnnotateTasks(tasks []model.Task, goals []model.Goal) []TaskView {
	titles := make(map[string]string, len(goals))
	for _, g := range goals {
		titles[g.ID] = g.Title
	}
	out := make([]TaskView, 0, len(tasks))
	for _, t := range tasks {
		v := TaskView{Task: t.Clone()}
		if t.GoalID != nil {
			v.GoalTitle = titles[*t.GoalID]
		}
		out = append(out, v)
	}
	return out
}

// SortReminders orders reminders by their date and time in loc. Equal
// instants keep their input order; reminders whose date or time cannot be
// parsed go last.
func SortReminders(reminders []model.Reminder, loc *time.Location) []model.Reminder {
	type keyed struct {
		r  model.Reminder
		at time.Time
		ok bool
	}
	ks := make([]keyed, len(reminders))
	for i, r := range reminders {
		at, err := r.At(loc)
		ks[i] = keyed{r: r, at: at, ok: err == nil}
	}
	sort.SliceStable(ks, func(i, j int) bool {
		return before(ks[i].at, ks[i].ok, ks[j].at, ks[j].ok)
	})
	out := make([]model.Reminder, len(ks))
	for i, k := range ks {
		out[i] = k.r
	}
	return out
}

// before orders valid keys chronologically and puts invalid keys last.
func before(a time.Time, aok bool, b time.Time, bok bool) bool {
	switch {
	case aok && bok:
		return a.Before(b)
	case aok:
		return true
	default:
		return false
	}
}
