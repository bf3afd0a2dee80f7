package store

import (
	"github.com/pathakanu/studyPlanner/internal/model"
	"github.com/pathakanu/studyPlanner/internal/persistence"
)

// CreateTask validates f and appends a new, not yet completed task. A
// non-empty goal id must name an existing goal.
func (s *Store) CreateTask(f TaskFields) (model.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, err := s.applyTaskPatch(model.Task{}, TaskPatch{
		Title:       &f.Title,
		Description: &f.Description,
		GoalID:      &f.GoalID,
		DueDate:     &f.DueDate,
		Priority:    &f.Priority,
	})
	if err != nil {
		return model.Task{}, err
	}

	t.ID, err = s.newID(func(id string) bool { return s.taskIndex(id) >= 0 })
	if err != nil {
		return model.Task{}, err
	}
	t.CreatedAt = s.clock.Now()

	s.tasks = append(s.tasks, t)
	return t.Clone(), s.saveAll(persistence.KeyTasks)
}

// UpdateTask merges p into the task with the given id. Completion is only
// changed through ToggleTaskCompletion.
func (s *Store) UpdateTask(id string, p TaskPatch) (model.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.taskIndex(id)
	if i < 0 {
		return model.Task{}, ErrNotFound
	}
	t, err := s.applyTaskPatch(s.tasks[i].Clone(), p)
	if err != nil {
		return model.Task{}, err
	}

	s.tasks[i] = t
	return t.Clone(), s.saveAll(persistence.KeyTasks)
}

// ToggleTaskCompletion flips the completed flag of a task.
func (s *Store) ToggleTaskCompletion(id string) (model.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.taskIndex(id)
	if i < 0 {
		return model.Task{}, ErrNotFound
	}
	s.tasks[i].Completed = !s.tasks[i].Completed
	return s.tasks[i].Clone(), s.saveAll(persistence.KeyTasks)
}

// DeleteTask removes a task.
func (s *Store) DeleteTask(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.taskIndex(id)
	if i < 0 {
		return ErrNotFound
	}
	s.tasks = append(s.tasks[:i:i], s.tasks[i+1:]...)
	return s.saveAll(persistence.KeyTasks)
}

// Task returns a copy of the task with the given id.
func (s *Store) Task(id string) (model.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.taskIndex(id)
	if i < 0 {
		return model.Task{}, ErrNotFound
	}
	return s.tasks[i].Clone(), nil
}

func (s *Store) taskIndex(id string) int {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) applyTaskPatch(t model.Task, p TaskPatch) (model.Task, error) {
	var err error
	if p.Title != nil {
		if t.Title, err = required("title", *p.Title); err != nil {
			return t, err
		}
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.GoalID != nil {
		goalID := optional(*p.GoalID)
		if goalID != nil && s.goalIndex(*goalID) < 0 {
			return t, invalid("goalId", "references an unknown goal")
		}
		t.GoalID = goalID
	}
	if p.DueDate != nil {
		due := optional(*p.DueDate)
		if due != nil {
			if _, err = checkDate("dueDate", *due, s.location()); err != nil {
				return t, err
			}
		}
		t.DueDate = due
	}
	if p.Priority != nil {
		if t.Priority, err = parsePriority(*p.Priority); err != nil {
			return t, err
		}
	}
	return t, nil
}
