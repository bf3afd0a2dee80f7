// Package store owns the planner's goals, tasks and reminders.
//
// All mutations run under a single lock, validate their input before
// touching anything, and write the affected collections through to the
// persistence gateway before returning. Readers only ever receive copies.
package store

import (
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/pathakanu/studyPlanner/internal/clock"
	"github.com/pathakanu/studyPlanner/internal/ids"
	"github.com/pathakanu/studyPlanner/internal/model"
	"github.com/pathakanu/studyPlanner/internal/persistence"
)

// Store is the single owner of the three collections.
type Store struct {
	mu     sync.Mutex
	gw     persistence.Gateway
	clock  clock.Clock
	ids    ids.Generator
	logger *log.Logger

	goals     []model.Goal
	tasks     []model.Task
	reminders []model.Reminder
	theme     Theme
}

// Snapshot is a consistent copy of all three collections.
type Snapshot struct {
	Goals     []model.Goal
	Tasks     []model.Task
	Reminders []model.Reminder
}

// New creates an empty store. Call Load to populate it from gw.
func New(gw persistence.Gateway, clk clock.Clock, gen ids.Generator, logger *log.Logger) *Store {
	return &Store{
		gw:     gw,
		clock:  clk,
		ids:    gen,
		logger: logger,

		goals:     []model.Goal{},
		tasks:     []model.Task{},
		reminders: []model.Reminder{},
		theme:     ThemeLight,
	}
}

// Load replaces the in-memory collections with what the gateway holds.
// Missing keys load as empty collections. On error the previous contents
// are kept.
func (s *Store) Load() error {
	var (
		goals     []model.Goal
		tasks     []model.Task
		reminders []model.Reminder
		theme     string
	)
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.gw.Load(persistence.KeyGoals, &goals); err != nil {
		return fmt.Errorf("store: %w", err)
	}
	if _, err := s.gw.Load(persistence.KeyTasks, &tasks); err != nil {
		return fmt.Errorf("store: %w", err)
	}
	if _, err := s.gw.Load(persistence.KeyReminders, &reminders); err != nil {
		return fmt.Errorf("store: %w", err)
	}
	if _, err := s.gw.Load(persistence.KeyTheme, &theme); err != nil {
		return fmt.Errorf("store: %w", err)
	}

	if goals == nil {
		goals = []model.Goal{}
	}
	if tasks == nil {
		tasks = []model.Task{}
	}
	if reminders == nil {
		reminders = []model.Reminder{}
	}

	s.goals = goals
	s.tasks = tasks
	s.reminders = reminders
	s.theme = ThemeLight
	if t, err := ParseTheme(theme); err == nil && theme != "" {
		s.theme = t
	}
	return nil
}

// Goals returns a copy of the goal collection in insertion order.
func (s *Store) Goals() []model.Goal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneGoals(s.goals)
}

// Tasks returns a copy of the task collection in insertion order.
func (s *Store) Tasks() []model.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneTasks(s.tasks)
}

// Reminders returns a copy of the reminder collection in insertion order.
func (s *Store) Reminders() []model.Reminder {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneReminders(s.reminders)
}

// Snapshot copies all collections under one lock.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot{
		Goals:     cloneGoals(s.goals),
		Tasks:     cloneTasks(s.tasks),
		Reminders: cloneReminders(s.reminders),
	}
}

func (s *Store) location() *time.Location {
	return s.clock.Now().Location()
}

func (s *Store) newID(taken func(string) bool) (string, error) {
	id, err := s.ids.NewID()
	if err != nil {
		return "", err
	}
	if taken(id) {
		return "", fmt.Errorf("generated id %q is already in use", id)
	}
	return id, nil
}

// save writes one collection. Failures are logged and returned as a
// *PersistenceError; the caller keeps its in-memory change either way.
// Must be called with s.mu held.
func (s *Store) save(key string, v any) error {
	if err := s.gw.Save(key, v); err != nil {
		s.logger.Printf("store: warning: save %s failed, memory and storage diverge until the next save: %v", key, err)
		return &PersistenceError{Key: key, Err: err}
	}
	return nil
}

func (s *Store) saveAll(keys ...string) error {
	var errs []error
	for _, key := range keys {
		var err error
		switch key {
		case persistence.KeyGoals:
			err = s.save(key, s.goals)
		case persistence.KeyTasks:
			err = s.save(key, s.tasks)
		case persistence.KeyReminders:
			err = s.save(key, s.reminders)
		case persistence.KeyTheme:
			err = s.save(key, string(s.theme))
		}
		if err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func cloneGoals(in []model.Goal) []model.Goal {
	if in == nil {
		return nil
	}
	out := make([]model.Goal, len(in))
	copy(out, in)
	return out
}

func cloneTasks(in []model.Task) []model.Task {
	if in == nil {
		return nil
	}
	out := make([]model.Task, len(in))
	for i, t := range in {
		out[i] = t.Clone()
	}
	return out
}

func cloneReminders(in []model.Reminder) []model.Reminder {
	if in == nil {
		return nil
	}
	out := make([]model.Reminder, len(in))
	copy(out, in)
	return out
}
