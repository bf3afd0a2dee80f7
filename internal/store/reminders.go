package store

import (
	"github.com/pathakanu/studyPlanner/internal/model"
	"github.com/pathakanu/studyPlanner/internal/persistence"
)

// CreateReminder validates f and appends a new reminder.
func (s *Store) CreateReminder(f ReminderFields) (model.Reminder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, err := s.applyReminderPatch(model.Reminder{}, ReminderPatch{
		Title:       &f.Title,
		Description: &f.Description,
		Date:        &f.Date,
		Time:        &f.Time,
		Type:        &f.Type,
	})
	if err != nil {
		return model.Reminder{}, err
	}

	r.ID, err = s.newID(func(id string) bool { return s.reminderIndex(id) >= 0 })
	if err != nil {
		return model.Reminder{}, err
	}
	r.CreatedAt = s.clock.Now()

	s.reminders = append(s.reminders, r)
	return r, s.saveAll(persistence.KeyReminders)
}

// UpdateReminder merges p into the reminder with the given id.
func (s *Store) UpdateReminder(id string, p ReminderPatch) (model.Reminder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.reminderIndex(id)
	if i < 0 {
		return model.Reminder{}, ErrNotFound
	}
	r, err := s.applyReminderPatch(s.reminders[i], p)
	if err != nil {
		return model.Reminder{}, err
	}

	s.reminders[i] = r
	return r, s.saveAll(persistence.KeyReminders)
}

// DeleteReminder removes a reminder.
func (s *Store) DeleteReminder(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.reminderIndex(id)
	if i < 0 {
		return ErrNotFound
	}
	s.reminders = append(s.reminders[:i:i], s.reminders[i+1:]...)
	return s.saveAll(persistence.KeyReminders)
}

// Reminder returns a copy of the reminder with the given id.
func (s *Store) Reminder(id string) (model.Reminder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.reminderIndex(id)
	if i < 0 {
		return model.Reminder{}, ErrNotFound
	}
	return s.reminders[i], nil
}

func (s *Store) reminderIndex(id string) int {
	for i := range s.reminders {
		if s.reminders[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) applyReminderPatch(r model.Reminder, p ReminderPatch) (model.Reminder, error) {
	var err error
	if p.Title != nil {
		if r.Title, err = required("title", *p.Title); err != nil {
			return r, err
		}
	}
	if p.Description != nil {
		r.Description = *p.Description
	}
	if p.Date != nil {
		if r.Date, err = requiredDate("date", *p.Date, s.location()); err != nil {
			return r, err
		}
	}
	if p.Time != nil {
		if r.Time, err = requiredClock("time", *p.Time); err != nil {
			return r, err
		}
	}
	if p.Type != nil {
		if r.Type, err = parseReminderType(*p.Type); err != nil {
			return r, err
		}
	}
	return r, nil
}
