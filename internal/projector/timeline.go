package projector

import (
	"sort"
	"time"

	"github.com/pathakanu/studyPlanner/internal/model"
)

// BuildTimeline merges every goal (keyed by deadline), every completed task
// (keyed by due date, or creation time when it has none) and every reminder
// still ahead of now (keyed by its instant) into one ascending sequence.
// Equal keys keep goals before tasks before reminders, and input order
// within each kind. Entries with unreadable dates go last.
func BuildTimeline(goals []model.Goal, tasks []model.Task, reminders []model.Reminder, now time.Time) []model.TimelineEntry {
	loc := now.Location()
	type keyed struct {
		e  model.TimelineEntry
		ok bool
	}
	items := make([]keyed, 0, len(goals)+len(tasks)+len(reminders))

	for _, g := range goals {
		at, err := model.ParseDate(g.Deadline, loc)
		items = append(items, keyed{ok: err == nil, e: model.TimelineEntry{
			Kind:        model.KindGoal,
			Title:       g.Title,
			Description: g.Description,
			Date:        g.Deadline,
			At:          at,
			Priority:    g.Priority,
			Progress:    g.Progress,
		}})
	}

	for _, t := range tasks {
		if !t.Completed {
			continue
		}
		e := model.TimelineEntry{
			Kind:        model.KindTask,
			Title:       t.Title,
			Description: t.Description,
			Priority:    t.Priority,
		}
		ok := true
		if t.DueDate != nil {
			var err error
			e.Date = *t.DueDate
			e.At, err = model.ParseDate(*t.DueDate, loc)
			ok = err == nil
		} else {
			e.At = t.CreatedAt.In(loc)
			e.Date = e.At.Format(model.DateLayout)
		}
		items = append(items, keyed{e: e, ok: ok})
	}

	for _, r := range reminders {
		at, err := r.At(loc)
		if err != nil || !at.After(now) {
			continue
		}
		items = append(items, keyed{ok: true, e: model.TimelineEntry{
			Kind:         model.KindReminder,
			Title:        r.Title,
			Description:  r.Description,
			Date:         r.Date,
			At:           at,
			Time:         r.Time,
			ReminderType: r.Type,
		}})
	}

	sort.SliceStable(items, func(i, j int) bool {
		return before(items[i].e.At, items[i].ok, items[j].e.At, items[j].ok)
	})

	out := make([]model.TimelineEntry, len(items))
	for i, it := range items {
		out[i] = it.e
	}
	return out
}
