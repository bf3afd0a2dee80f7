package store

import (
	"github.com/pathakanu/studyPlanner/internal/model"
	"github.com/pathakanu/studyPlanner/internal/persistence"
)

// CreateGoal validates f, stamps a fresh id and creation time, appends the
// goal and saves the goal collection.
func (s *Store) CreateGoal(f GoalFields) (model.Goal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	g, err := s.applyGoalPatch(model.Goal{}, GoalPatch{
		Title:       &f.Title,
		Description: &f.Description,
		Deadline:    &f.Deadline,
		Priority:    &f.Priority,
		Progress:    &f.Progress,
	})
	if err != nil {
		return model.Goal{}, err
	}

	g.ID, err = s.newID(func(id string) bool { return s.goalIndex(id) >= 0 })
	if err != nil {
		return model.Goal{}, err
	}
	g.CreatedAt = s.clock.Now()

	s.goals = append(s.goals, g)
	return g, s.saveAll(persistence.KeyGoals)
}

// UpdateGoal merges p into the goal with the given id. The id and creation
// time never change.
func (s *Store) UpdateGoal(id string, p GoalPatch) (model.Goal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.goalIndex(id)
	if i < 0 {
		return model.Goal{}, ErrNotFound
	}
	g, err := s.applyGoalPatch(s.goals[i], p)
	if err != nil {
		return model.Goal{}, err
	}

	s.goals[i] = g
	return g, s.saveAll(persistence.KeyGoals)
}

// DeleteGoal removes the goal and every task that references it.
func (s *Store) DeleteGoal(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.goalIndex(id) < 0 {
		return ErrNotFound
	}
	s.goals, s.tasks = deleteGoalCascade(s.goals, s.tasks, id)
	return s.saveAll(persistence.KeyGoals, persistence.KeyTasks)
}

// deleteGoalCascade computes the goal and task collections that remain after
// removing goal id. Both results are fresh slices so the caller can swap them
// in together.
func deleteGoalCascade(goals []model.Goal, tasks []model.Task, id string) ([]model.Goal, []model.Task) {
	keptGoals := make([]model.Goal, 0, len(goals))
	for _, g := range goals {
		if g.ID != id {
			keptGoals = append(keptGoals, g)
		}
	}
	keptTasks := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		if !t.BelongsTo(id) {
			keptTasks = append(keptTasks, t)
		}
	}
	return keptGoals, keptTasks
}

// Goal returns a copy of the goal with the given id.
func (s *Store) Goal(id string) (model.Goal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.goalIndex(id)
	if i < 0 {
		return model.Goal{}, ErrNotFound
	}
	return s.goals[i], nil
}

// GoalOptions lists the goals a task can be linked to.
func (s *Store) GoalOptions() []model.GoalOption {
	s.mu.Lock()
	defer s.mu.Unlock()

	opts := make([]model.GoalOption, 0, len(s.goals))
	for _, g := range s.goals {
		opts = append(opts, model.GoalOption{ID: g.ID, Title: g.Title})
	}
	return opts
}

func (s *Store) goalIndex(id string) int {
	for i := range s.goals {
		if s.goals[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) applyGoalPatch(g model.Goal, p GoalPatch) (model.Goal, error) {
	var err error
	if p.Title != nil {
		if g.Title, err = required("title", *p.Title); err != nil {
			return g, err
		}
	}
	if p.Description != nil {
		g.Description = *p.Description
	}
	if p.Deadline != nil {
		if g.Deadline, err = requiredDate("deadline", *p.Deadline, s.location()); err != nil {
			return g, err
		}
	}
	if p.Priority != nil {
		if g.Priority, err = parsePriority(*p.Priority); err != nil {
			return g, err
		}
	}
	if p.Progress != nil {
		if g.Progress, err = parseProgress(*p.Progress); err != nil {
			return g, err
		}
	}
	return g, nil
}
