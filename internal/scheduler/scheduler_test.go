package scheduler

import (
	"io"
	"log"
	"sync"
	"testing"
	"time"

	"github.com/pathakanu/studyPlanner/internal/clock"
	"github.com/pathakanu/studyPlanner/internal/model"
)

var start = time.Date(2026, 5, 4, 9, 0, 0, 0, time.UTC)

type staticSource struct {
	mu        sync.Mutex
	reminders []model.Reminder
}

func (s *staticSource) Reminders() []model.Reminder {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Reminder, len(s.reminders))
	copy(out, s.reminders)
	return out
}

func (s *staticSource) set(rs ...model.Reminder) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reminders = rs
}

func reminderAt(id string, at time.Time) model.Reminder {
	return model.Reminder{ID: id, Title: "r" + id, Date: at.Format(model.DateLayout), Time: at.Format(model.TimeLayout)}
}

func newTestScheduler(t *testing.T, rs ...model.Reminder) (*Scheduler, *staticSource, *clock.Fake) {
	t.Helper()
	src := &staticSource{reminders: rs}
	clk := clock.NewFake(start)
	return New(src, clk, time.Minute, DefaultWindow, log.New(io.Discard, "", 0)), src, clk
}

// ============================================================
// Evaluate
// ============================================================

func TestStateOf(t *testing.T) {
	tests := []struct {
		name   string
		offset time.Duration
		fired  bool
		want   State
	}{
		{"far ahead", 10 * time.Minute, false, Future},
		{"just outside window", 5*time.Minute + time.Second, false, Future},
		{"window edge", 5 * time.Minute, false, DueSoon},
		{"inside window", 3 * time.Minute, false, DueSoon},
		{"inside window fired", 3 * time.Minute, true, Fired},
		{"exactly now", 0, false, Past},
		{"passed", -time.Minute, false, Past},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			at := start.Add(tt.offset).Truncate(time.Minute)
			now := at.Add(-tt.offset)
			r := reminderAt("1", at)
			fired := FiredSet{}
			if tt.fired {
				fired["1"] = at
			}
			if got := StateOf(r, fired, now, DefaultWindow); got != tt.want {
				t.Fatalf("StateOf = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEvaluateFiresOnce(t *testing.T) {
	r := reminderAt("1", start.Add(3*time.Minute))

	notes, fired := Evaluate([]model.Reminder{r}, FiredSet{}, start, DefaultWindow)
	if len(notes) != 1 || notes[0].Reminder.ID != "1" {
		t.Fatalf("expected one notification, got %+v", notes)
	}
	if notes[0].Lead != 3*time.Minute {
		t.Fatalf("Lead = %v, want 3m", notes[0].Lead)
	}

	notes, _ = Evaluate([]model.Reminder{r}, fired, start.Add(time.Minute), DefaultWindow)
	if len(notes) != 0 {
		t.Fatalf("expected no repeat, got %+v", notes)
	}
}

func TestEvaluateDoesNotMutateInput(t *testing.T) {
	r := reminderAt("1", start.Add(2*time.Minute))
	fired := FiredSet{}
	Evaluate([]model.Reminder{r}, fired, start, DefaultWindow)
	if len(fired) != 0 {
		t.Fatalf("input fired set was modified: %v", fired)
	}
}

func TestEvaluateNoBackfill(t *testing.T) {
	r := reminderAt("1", start.Add(-time.Minute))
	notes, fired := Evaluate([]model.Reminder{r}, FiredSet{}, start, DefaultWindow)
	if len(notes) != 0 || len(fired) != 0 {
		t.Fatalf("missed reminder must not fire: %+v %v", notes, fired)
	}
}

func TestEvaluateDropsDeletedReminders(t *testing.T) {
	fired := FiredSet{"gone": start.Add(time.Minute)}
	_, next := Evaluate(nil, fired, start, DefaultWindow)
	if len(next) != 0 {
		t.Fatalf("expected pruned set, got %v", next)
	}
}

func TestEvaluateRearmsEditedReminder(t *testing.T) {
	r := reminderAt("1", start.Add(2*time.Minute))
	_, fired := Evaluate([]model.Reminder{r}, FiredSet{}, start, DefaultWindow)

	moved := reminderAt("1", start.Add(4*time.Minute))
	notes, _ := Evaluate([]model.Reminder{moved}, fired, start.Add(time.Minute), DefaultWindow)
	if len(notes) != 1 {
		t.Fatalf("rescheduled reminder should fire again, got %+v", notes)
	}
}

func TestEvaluateSkipsUnreadable(t *testing.T) {
	r := model.Reminder{ID: "x", Date: "soon", Time: "later"}
	notes, fired := Evaluate([]model.Reminder{r}, FiredSet{}, start, DefaultWindow)
	if len(notes) != 0 || len(fired) != 0 {
		t.Fatalf("unreadable reminder must be ignored: %+v %v", notes, fired)
	}
}

// ============================================================
// Scheduler
// ============================================================

func TestTickScenario(t *testing.T) {
	s, _, clk := newTestScheduler(t, reminderAt("1", start.Add(3*time.Minute)))

	var got []Notification
	s.Subscribe(func(n Notification) { got = append(got, n) })

	if n := s.Tick(); len(n) != 1 {
		t.Fatalf("first tick: expected 1 notification, got %d", len(n))
	}
	clk.Advance(time.Minute)
	if n := s.Tick(); len(n) != 0 {
		t.Fatalf("second tick: expected 0 notifications, got %d", len(n))
	}
	if len(got) != 1 {
		t.Fatalf("subscriber saw %d notifications, want 1", len(got))
	}
}

func TestTickFiresWhenEnteringWindow(t *testing.T) {
	s, _, clk := newTestScheduler(t, reminderAt("1", start.Add(7*time.Minute)))

	if n := s.Tick(); len(n) != 0 {
		t.Fatalf("reminder 7m away must not fire, got %d", len(n))
	}
	if st := s.StateOf(reminderAt("1", start.Add(7*time.Minute))); st != Future {
		t.Fatalf("state = %v, want future", st)
	}
	clk.Advance(2 * time.Minute)
	if n := s.Tick(); len(n) != 1 {
		t.Fatalf("reminder 5m away should fire, got %d", len(n))
	}
	clk.Advance(5 * time.Minute)
	if n := s.Tick(); len(n) != 0 {
		t.Fatalf("fired reminder must stay quiet, got %d", len(n))
	}
}

func TestTickSeesNewReminders(t *testing.T) {
	s, src, clk := newTestScheduler(t)
	if n := s.Tick(); len(n) != 0 {
		t.Fatalf("expected nothing, got %d", len(n))
	}
	clk.Advance(time.Minute)
	src.set(reminderAt("new", clk.Now().Add(4*time.Minute)))
	if n := s.Tick(); len(n) != 1 || n[0].Reminder.ID != "new" {
		t.Fatalf("expected the new reminder to fire, got %+v", n)
	}
}

func TestUnsubscribe(t *testing.T) {
	s, _, _ := newTestScheduler(t, reminderAt("1", start.Add(time.Minute)))
	calls := 0
	unsubscribe := s.Subscribe(func(Notification) { calls++ })
	unsubscribe()
	s.Tick()
	if calls != 0 {
		t.Fatalf("unsubscribed handler called %d times", calls)
	}
}

func TestStartStop(t *testing.T) {
	src := &staticSource{reminders: []model.Reminder{reminderAt("1", start.Add(2*time.Minute))}}
	s := New(src, clock.NewFake(start), time.Hour, 0, log.New(io.Discard, "", 0))

	var mu sync.Mutex
	calls := 0
	s.Subscribe(func(Notification) {
		mu.Lock()
		calls++
		mu.Unlock()
	})

	if err := s.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if err := s.Start(); err != nil {
		t.Fatalf("second Start: %v", err)
	}
	if !s.Running() {
		t.Fatal("expected running scheduler")
	}

	mu.Lock()
	if calls != 1 {
		t.Fatalf("Start should check reminders once immediately, got %d", calls)
	}
	mu.Unlock()

	s.Stop()
	s.Stop()
	if s.Running() {
		t.Fatal("expected stopped scheduler")
	}
}

type countingSource struct {
	mu    sync.Mutex
	calls int
}

func (c *countingSource) Reminders() []model.Reminder {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls++
	return nil
}

func (c *countingSource) count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.calls
}

func TestConcurrentStartStopLeavesNothingRunning(t *testing.T) {
	src := &countingSource{}
	s := New(src, clock.NewFake(start), time.Second, 0, log.New(io.Discard, "", 0))

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := 0; j < 10; j++ {
				_ = s.Start()
			}
		}()
		go func() {
			defer wg.Done()
			for j := 0; j < 10; j++ {
				s.Stop()
			}
		}()
	}
	wg.Wait()
	s.Stop()

	if s.Running() {
		t.Fatal("expected stopped scheduler")
	}
	before := src.count()
	time.Sleep(1500 * time.Millisecond)
	if after := src.count(); after != before {
		t.Fatalf("a stopped scheduler kept checking: %d calls after Stop", after-before)
	}
}

func TestStateString(t *testing.T) {
	for st, want := range map[State]string{Future: "future", DueSoon: "due-soon", Fired: "fired", Past: "past", State(42): "unknown"} {
		if got := st.String(); got != want {
			t.Errorf("State(%d).String() = %q, want %q", st, got, want)
		}
	}
}
