// Package scheduler watches reminders and announces each one once, shortly
// before it is due.
package scheduler

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/pathakanu/studyPlanner/internal/clock"
	"github.com/pathakanu/studyPlanner/internal/model"
	"github.com/robfig/cron/v3"
)

// DefaultInterval is how often reminders are checked.
const DefaultInterval = time.Minute

// Source supplies a snapshot of the current reminders.
type Source interface {
	Reminders() []model.Reminder
}

// Handler receives due notifications.
type Handler func(Notification)

// Scheduler evaluates reminders on a fixed interval. The fired record lives
// only in memory and starts empty on every run.
type Scheduler struct {
	source   Source
	clock    clock.Clock
	interval time.Duration
	window   time.Duration
	logger   *log.Logger

	// lifecycle serialises Start and Stop.
	lifecycle sync.Mutex

	mu       sync.Mutex
	fired    FiredSet
	handlers map[int]Handler
	nextID   int
	cron     *cron.Cron
}

// New creates a stopped scheduler. Zero interval or window fall back to the
// defaults.
func New(source Source, clk clock.Clock, interval, window time.Duration, logger *log.Logger) *Scheduler {
	if interval <= 0 {
		interval = DefaultInterval
	}
	if window <= 0 {
		window = DefaultWindow
	}
	return &Scheduler{
		source:   source,
		clock:    clk,
		interval: interval,
		window:   window,
		logger:   logger,
		fired:    FiredSet{},
		handlers: make(map[int]Handler),
	}
}

// Subscribe registers h for every future notification and returns a function
// that removes it.
func (s *Scheduler) Subscribe(h Handler) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextID
	s.nextID++
	s.handlers[id] = h
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.handlers, id)
	}
}

// Tick evaluates all reminders once, delivers the resulting notifications
// to every subscriber, and returns them.
func (s *Scheduler) Tick() []Notification {
	reminders := s.source.Reminders()

	s.mu.Lock()
	notes, next := Evaluate(reminders, s.fired, s.clock.Now(), s.window)
	s.fired = next
	handlers := make([]Handler, 0, len(s.handlers))
	for _, h := range s.handlers {
		handlers = append(handlers, h)
	}
	s.mu.Unlock()

	for _, n := range notes {
		s.logger.Printf("scheduler: reminder %s %q due at %s", n.Reminder.ID, n.Reminder.Title, n.At.Format(time.RFC3339))
		for _, h := range handlers {
			h(n)
		}
	}
	return notes
}

// Start checks reminders immediately and then on every interval. Calling
// Start on a running scheduler does nothing.
func (s *Scheduler) Start() error {
	s.lifecycle.Lock()
	defer s.lifecycle.Unlock()
	if s.Running() {
		return nil
	}

	c := cron.New(
		cron.WithLocation(s.clock.Now().Location()),
		cron.WithChain(
			cron.Recover(cron.PrintfLogger(s.logger)),
			cron.SkipIfStillRunning(cron.PrintfLogger(s.logger)),
		),
	)
	if _, err := c.AddFunc(fmt.Sprintf("@every %s", s.interval), func() { s.Tick() }); err != nil {
		return fmt.Errorf("scheduler: %w", err)
	}

	s.Tick()
	c.Start()

	s.mu.Lock()
	s.cron = c
	s.mu.Unlock()
	return nil
}

// Stop halts the periodic check and waits for a running check to finish.
// It is safe to call more than once.
func (s *Scheduler) Stop() {
	s.lifecycle.Lock()
	defer s.lifecycle.Unlock()

	s.mu.Lock()
	c := s.cron
	s.cron = nil
	s.mu.Unlock()
	if c == nil {
		return
	}
	ctx := c.Stop()
	<-ctx.Done()
}

// Running reports whether the periodic check is active.
func (s *Scheduler) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cron != nil
}

// StateOf reports the current state of r under this scheduler's fired record.
func (s *Scheduler) StateOf(r model.Reminder) State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return StateOf(r, s.fired, s.clock.Now(), s.window)
}
