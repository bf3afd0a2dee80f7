package printers

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"

	"github.com/pathakanu/studyPlanner/internal/model"
	"github.com/pathakanu/studyPlanner/internal/projector"
	"github.com/pathakanu/studyPlanner/internal/scheduler"
	"github.com/pathakanu/studyPlanner/internal/store"
)

func newTestPrinter(t *testing.T) (*PrettyPrint, *bytes.Buffer) {
	t.Helper()
	color.NoColor = true
	var buf bytes.Buffer
	return New(&buf, store.ThemeLight), &buf
}

func TestProgressBar(t *testing.T) {
	cases := []struct {
		in   int
		want string
	}{
		{0, "[----------]   0%"},
		{25, "[##--------]  25%"},
		{100, "[##########] 100%"},
		{150, "[##########] 100%"},
		{-5, "[----------]   0%"},
	}
	for _, tc := range cases {
		if got := ProgressBar(tc.in); got != tc.want {
			t.Errorf("ProgressBar(%d) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestGoals(t *testing.T) {
	pp, buf := newTestPrinter(t)
	pp.Goals([]model.Goal{{ID: "g1", Title: "Exam Prep", Deadline: "2026-05-20", Priority: model.PriorityHigh, Progress: 40}})

	out := buf.String()
	for _, want := range []string{"Goals - 1", "g1", "Exam Prep", "2026-05-20", "high", "[####------]  40%"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestEmptyCollections(t *testing.T) {
	pp, buf := newTestPrinter(t)
	pp.Tasks(nil)
	pp.Reminders(nil)
	pp.Timeline(nil)

	if got := strings.Count(buf.String(), "none"); got != 3 {
		t.Fatalf("expected three empty markers, got %d:\n%s", got, buf.String())
	}
}

func TestTasksShowCompletionAndGoal(t *testing.T) {
	pp, buf := newTestPrinter(t)
	due := "2026-05-07"
	pp.Tasks([]projector.TaskView{
		{Task: model.Task{ID: "t1", Title: "flashcards", Completed: true, DueDate: &due, Priority: model.PriorityLow}, GoalTitle: "Exam Prep"},
		{Task: model.Task{ID: "t2", Title: "reading", Priority: model.PriorityMedium}},
	})

	out := buf.String()
	for _, want := range []string{"[x]", "[ ]", "flashcards", "Exam Prep", "2026-05-07", "reading"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRemindersAndTimeline(t *testing.T) {
	pp, buf := newTestPrinter(t)
	pp.ShowID = false
	pp.Reminders([]projector.ReminderView{{
		Reminder: model.Reminder{ID: "r1", Title: "Calculus", Date: "2026-05-04", Time: "19:00", Type: model.ReminderExam},
		Urgency:  projector.Urgent,
	}})
	pp.Timeline([]model.TimelineEntry{{Kind: model.KindReminder, Title: "Calculus", Date: "2026-05-04", Time: "19:00", ReminderType: model.ReminderExam}})

	out := buf.String()
	if strings.Contains(out, "r1") {
		t.Errorf("ids should be hidden:\n%s", out)
	}
	for _, want := range []string{"urgent", "2026-05-04 19:00", "reminder", "exam"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestNotification(t *testing.T) {
	pp, buf := newTestPrinter(t)
	at := time.Date(2026, 5, 4, 19, 0, 0, 0, time.UTC)
	pp.Notification(scheduler.Notification{
		Reminder: model.Reminder{Title: "Study Session", Description: "chapter 5", Type: model.ReminderStudy},
		At:       at,
	})

	want := "Reminder: Study Session (study, due Mon 19:00)\n  chapter 5\n"
	if buf.String() != want {
		t.Fatalf("got %q, want %q", buf.String(), want)
	}
}

func TestJSON(t *testing.T) {
	pp, buf := newTestPrinter(t)
	if err := pp.JSON(map[string]int{"n": 1}); err != nil {
		t.Fatalf("JSON: %v", err)
	}
	if buf.String() != "{\n  \"n\": 1\n}\n" {
		t.Fatalf("got %q", buf.String())
	}
}
