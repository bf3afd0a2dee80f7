// Package planner is the front-end facing surface of the study planner. It
// exposes the store's operations, the derived views and the reminder
// scheduler, and forwards due reminders to WhatsApp when configured.
package planner

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/pathakanu/studyPlanner/internal/clock"
	"github.com/pathakanu/studyPlanner/internal/config"
	"github.com/pathakanu/studyPlanner/internal/model"
	"github.com/pathakanu/studyPlanner/internal/projector"
	"github.com/pathakanu/studyPlanner/internal/scheduler"
	"github.com/pathakanu/studyPlanner/internal/store"
)

// Messenger sends a text message to a phone number.
type Messenger interface {
	SendWhatsAppMessage(to, body string) error
}

// Summarizer condenses a reminder into a single line.
type Summarizer interface {
	SummarizeReminder(ctx context.Context, title, description string) (string, error)
}

// Planner coordinates the store, the projections and the scheduler.
// Create, update, delete and toggle operations come straight from the
// embedded store.
type Planner struct {
	*store.Store

	cfg        *config.Config
	clock      clock.Clock
	scheduler  *scheduler.Scheduler
	messenger  Messenger
	summarizer Summarizer
	logger     *log.Logger
}

// New creates a fully configured Planner. messenger and summarizer may be
// nil; due reminders are only sent when the config names a recipient.
func New(cfg *config.Config, st *store.Store, clk clock.Clock, messenger Messenger, summarizer Summarizer, logger *log.Logger) *Planner {
	p := &Planner{
		Store:      st,
		cfg:        cfg,
		clock:      clk,
		scheduler:  scheduler.New(storageSource{st: st, logger: logger}, clk, cfg.CheckInterval, cfg.DueWindow, logger),
		messenger:  messenger,
		summarizer: summarizer,
		logger:     logger,
	}
	if messenger != nil && cfg.NotifyWhatsAppTo != "" {
		p.scheduler.Subscribe(p.dispatch)
	}
	return p
}

// storageSource re-reads the store before every check so reminders written
// by another process reach the scheduler.
type storageSource struct {
	st     *store.Store
	logger *log.Logger
}

func (s storageSource) Reminders() []model.Reminder {
	if err := s.st.Load(); err != nil {
		s.logger.Printf("scheduler: reload failed, keeping last snapshot: %v", err)
	}
	return s.st.Reminders()
}

// FilteredTasks returns the tasks matching filter, each with its goal title.
func (p *Planner) FilteredTasks(filter projector.Filter) []projector.TaskView {
	snap := p.Snapshot()
	return projector.AnnotateTasks(projector.FilterTasks(snap.Tasks, filter), snap.Goals)
}

// SortedReminders returns all reminders in chronological order with their
// urgency relative to now.
func (p *Planner) SortedReminders() []projector.ReminderView {
	return projector.ClassifyReminders(p.Reminders(), p.clock.Now())
}

// Timeline returns goals, completed tasks and upcoming reminders in one
// chronological sequence.
func (p *Planner) Timeline() []model.TimelineEntry {
	snap := p.Snapshot()
	return projector.BuildTimeline(snap.Goals, snap.Tasks, snap.Reminders, p.clock.Now())
}

// ReminderState reports where r stands for the running scheduler.
func (p *Planner) ReminderState(r model.Reminder) scheduler.State {
	return p.scheduler.StateOf(r)
}

// OnReminderDue registers cb for every due notification and returns a
// function that removes it.
func (p *Planner) OnReminderDue(cb func(scheduler.Notification)) (unsubscribe func()) {
	return p.scheduler.Subscribe(cb)
}

// CheckReminders runs a single scheduler evaluation.
func (p *Planner) CheckReminders() []scheduler.Notification {
	return p.scheduler.Tick()
}

// StartScheduler checks reminders now and then on every configured interval.
func (p *Planner) StartScheduler() error {
	return p.scheduler.Start()
}

// StopScheduler stops the scheduler gracefully.
func (p *Planner) StopScheduler() {
	p.scheduler.Stop()
}

func (p *Planner) dispatch(n scheduler.Notification) {
	body := p.notificationText(n)
	if err := p.messenger.SendWhatsAppMessage(p.cfg.NotifyWhatsAppTo, body); err != nil {
		p.logger.Printf("notify: send reminder %s: %v", n.Reminder.ID, err)
	}
}

// notificationText builds the outbound message for n.
func (p *Planner) notificationText(n scheduler.Notification) string {
	r := n.Reminder
	summary := r.Title
	if p.summarizer != nil && strings.TrimSpace(r.Description) != "" {
		s, err := p.summarizer.SummarizeReminder(context.Background(), r.Title, r.Description)
		switch {
		case err != nil:
			p.logger.Printf("notify: summarise reminder %s: %v", r.ID, err)
		case s != "":
			summary = s
		}
	}
	return fmt.Sprintf("Reminder (%s): %s at %s %s", r.Type, summary, r.Date, r.Time)
}

