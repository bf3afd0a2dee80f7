package store

import (
	"errors"
	"time"

	"github.com/pathakanu/studyPlanner/internal/model"
)

// ErrNotEmpty is returned by SeedSample when the store already holds data.
var ErrNotEmpty = errors.New("store already has data")

// SeedSample fills an empty store with demonstration goals, tasks and a
// reminder, dated relative to the current time.
func (s *Store) SeedSample() error {
	s.mu.Lock()
	empty := len(s.goals) == 0 && len(s.tasks) == 0 && len(s.reminders) == 0
	s.mu.Unlock()
	if !empty {
		return ErrNotEmpty
	}

	now := s.clock.Now()
	day := func(n int) string { return now.AddDate(0, 0, n).Format(model.DateLayout) }

	js, err := s.CreateGoal(GoalFields{
		Title:       "Complete JavaScript Course",
		Description: "Finish the complete JavaScript fundamentals course and build 3 projects",
		Deadline:    day(30),
		Priority:    "high",
		Progress:    "25",
	})
	if err != nil && !IsPersistence(err) {
		return err
	}
	math, err := s.CreateGoal(GoalFields{
		Title:       "Prepare for Math Exam",
		Description: "Study calculus and algebra for the upcoming final exam",
		Deadline:    day(14),
		Priority:    "medium",
		Progress:    "60",
	})
	if err != nil && !IsPersistence(err) {
		return err
	}

	if _, err := s.CreateTask(TaskFields{
		Title:       "Complete JavaScript Arrays Chapter",
		Description: "Read chapter 5 and complete all exercises",
		GoalID:      js.ID,
		DueDate:     day(3),
		Priority:    "high",
	}); err != nil && !IsPersistence(err) {
		return err
	}
	calc, err := s.CreateTask(TaskFields{
		Title:       "Practice Calculus Problems",
		Description: "Solve 20 integration problems from textbook",
		GoalID:      math.ID,
		DueDate:     day(2),
		Priority:    "medium",
	})
	if err != nil && !IsPersistence(err) {
		return err
	}
	if _, err := s.ToggleTaskCompletion(calc.ID); err != nil && !IsPersistence(err) {
		return err
	}

	_, err = s.CreateReminder(ReminderFields{
		Title:       "Study Session",
		Description: "Daily JavaScript practice session",
		Date:        now.Add(24 * time.Hour).Format(model.DateLayout),
		Time:        "19:00",
		Type:        "study",
	})
	if err != nil && !IsPersistence(err) {
		return err
	}
	return nil
}
