// Package printers renders planner views for the terminal.
package printers

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"github.com/pathakanu/studyPlanner/internal/model"
	"github.com/pathakanu/studyPlanner/internal/projector"
	"github.com/pathakanu/studyPlanner/internal/scheduler"
	"github.com/pathakanu/studyPlanner/internal/store"
)

type PrettyPrint struct {
	Out    io.Writer
	ShowID bool

	accent *color.Color
	faint  *color.Color
}

// New returns a printer writing to out, or to color.Output when out is nil.
// The accent colour follows the theme.
func New(out io.Writer, theme store.Theme) *PrettyPrint {
	if out == nil {
		out = color.Output
	}
	accent := color.New(color.FgBlue, color.Bold)
	if theme == store.ThemeDark {
		accent = color.New(color.FgHiCyan, color.Bold)
	}
	return &PrettyPrint{
		Out:    out,
		ShowID: true,
		accent: accent,
		faint:  color.New(color.Faint, color.Italic),
	}
}

// JSON writes v as indented JSON.
func (pp *PrettyPrint) JSON(v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(pp.Out, string(b))
	return err
}

func (pp *PrettyPrint) Title(title string, count int) {
	_, _ = pp.accent.Fprint(pp.Out, title)
	_, _ = pp.faint.Fprintf(pp.Out, " - %d\n", count)
}

func (pp *PrettyPrint) none() {
	_, _ = pp.faint.Fprint(pp.Out, " none\n\n")
}

func (pp *PrettyPrint) table(header ...interface{}) *uitable.Table {
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.MaxColWidth = 60
	bold := color.New(color.Bold)
	row := make([]interface{}, 0, len(header)+1)
	if pp.ShowID {
		row = append(row, bold.Sprint("ID"))
	}
	for _, h := range header {
		row = append(row, bold.Sprint(h))
	}
	tbl.AddRow(row...)
	return tbl
}

func (pp *PrettyPrint) row(tbl *uitable.Table, id string, cells ...interface{}) {
	if pp.ShowID {
		cells = append([]interface{}{pp.faint.Sprint(id)}, cells...)
	}
	tbl.AddRow(cells...)
}

func (pp *PrettyPrint) flush(tbl *uitable.Table) {
	_, _ = fmt.Fprintln(pp.Out, tbl)
	_, _ = fmt.Fprintln(pp.Out)
}

func (pp *PrettyPrint) Goals(goals []model.Goal) {
	pp.Title("Goals", len(goals))
	if len(goals) == 0 {
		pp.none()
		return
	}
	tbl := pp.table("Title", "Deadline", "Priority", "Progress")
	for _, g := range goals {
		pp.row(tbl, g.ID, g.Title, g.Deadline, priority(g.Priority), ProgressBar(g.Progress))
	}
	pp.flush(tbl)
}

func (pp *PrettyPrint) Tasks(tasks []projector.TaskView) {
	pp.Title("Tasks", len(tasks))
	if len(tasks) == 0 {
		pp.none()
		return
	}
	tbl := pp.table("", "Title", "Goal", "Due", "Priority")
	for _, t := range tasks {
		mark := "[ ]"
		title := t.Title
		if t.Completed {
			mark = color.GreenString("[x]")
			title = color.New(color.CrossedOut).Sprint(t.Title)
		}
		due := ""
		if t.DueDate != nil {
			due = *t.DueDate
		}
		pp.row(tbl, t.ID, mark, title, t.GoalTitle, due, priority(t.Priority))
	}
	pp.flush(tbl)
}

func (pp *PrettyPrint) Reminders(reminders []projector.ReminderView) {
	pp.Title("Reminders", len(reminders))
	if len(reminders) == 0 {
		pp.none()
		return
	}
	tbl := pp.table("Title", "Date", "Time", "Type", "Urgency")
	for _, r := range reminders {
		pp.row(tbl, r.ID, r.Title, r.Date, r.Time, string(r.Type), urgency(r.Urgency))
	}
	pp.flush(tbl)
}

func (pp *PrettyPrint) Timeline(entries []model.TimelineEntry) {
	pp.Title("Timeline", len(entries))
	if len(entries) == 0 {
		pp.none()
		return
	}
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.MaxColWidth = 60
	for _, e := range entries {
		when := e.Date
		detail := ""
		switch e.Kind {
		case model.KindGoal:
			detail = fmt.Sprintf("%s %s", priority(e.Priority), ProgressBar(e.Progress))
		case model.KindTask:
			detail = color.GreenString("completed")
		case model.KindReminder:
			when = e.Date + " " + e.Time
			detail = string(e.ReminderType)
		}
		tbl.AddRow(when, pp.accent.Sprint(string(e.Kind)), e.Title, detail)
	}
	pp.flush(tbl)
}

// Notification prints a due reminder as it fires.
func (pp *PrettyPrint) Notification(n scheduler.Notification) {
	bell := color.New(color.FgHiYellow, color.Bold)
	_, _ = bell.Fprintf(pp.Out, "Reminder: %s", n.Reminder.Title)
	_, _ = pp.faint.Fprintf(pp.Out, " (%s, due %s)\n", n.Reminder.Type, n.At.Format("Mon 15:04"))
	if d := strings.TrimSpace(n.Reminder.Description); d != "" {
		_, _ = fmt.Fprintf(pp.Out, "  %s\n", d)
	}
}

// ProgressBar draws a ten-cell bar for a percentage.
func ProgressBar(progress int) string {
	if progress < 0 {
		progress = 0
	}
	if progress > 100 {
		progress = 100
	}
	filled := progress / 10
	return fmt.Sprintf("[%s%s] %3d%%", strings.Repeat("#", filled), strings.Repeat("-", 10-filled), progress)
}

func priority(p model.Priority) string {
	switch p {
	case model.PriorityHigh:
		return color.RedString(string(p))
	case model.PriorityMedium:
		return color.YellowString(string(p))
	default:
		return color.GreenString(string(p))
	}
}

func urgency(u projector.Urgency) string {
	switch u {
	case projector.Urgent:
		return color.New(color.FgRed, color.Bold).Sprint(string(u))
	case projector.Upcoming:
		return color.YellowString(string(u))
	default:
		return string(u)
	}
}

// Done confirms a completed change.
func (pp *PrettyPrint) Done(msg string) {
	_, _ = color.New(color.FgGreen).Fprint(pp.Out, "✓ ")
	_, _ = fmt.Fprintln(pp.Out, msg)
}
