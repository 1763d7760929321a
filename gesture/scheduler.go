package gesture

import (
	"sort"
	"sync"
	"time"
)

// Task is a callback scheduled on a Scheduler.
type Task struct {
	seq      uint64
	due      time.Time
	fn       func()
	canceled bool
	fired    bool
}

// Scheduler runs delayed callbacks cooperatively. Nothing fires until the
// owner calls Advance, so callbacks always run on the owner's goroutine.
type Scheduler struct {
	mu    sync.Mutex
	now   time.Time
	seq   uint64
	tasks []*Task
}

func NewScheduler(now time.Time) *Scheduler {
	return &Scheduler{now: now}
}

func (s *Scheduler) Now() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.now
}

// After schedules fn to run once the clock reaches now+d.
func (s *Scheduler) After(d time.Duration, fn func()) *Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	t := &Task{seq: s.seq, due: s.now.Add(d), fn: fn}
	s.tasks = append(s.tasks, t)
	return t
}

// Cancel stops t from firing. It reports whether the task was still pending.
func (s *Scheduler) Cancel(t *Task) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if t == nil || t.canceled || t.fired {
		return false
	}
	t.canceled = true
	return true
}

// Pending is the number of tasks that have neither fired nor been canceled.
func (s *Scheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, t := range s.tasks {
		if !t.canceled && !t.fired {
			n++
		}
	}
	return n
}

// Advance moves the clock to now and runs every due task in due order.
// A task canceled by an earlier callback in the same pass does not run.
// It returns the number of callbacks run.
func (s *Scheduler) Advance(now time.Time) int {
	s.mu.Lock()
	if now.After(s.now) {
		s.now = now
	}
	var due []*Task
	kept := s.tasks[:0]
	for _, t := range s.tasks {
		switch {
		case t.canceled || t.fired:
		case !t.due.After(s.now):
			due = append(due, t)
		default:
			kept = append(kept, t)
		}
	}
	s.tasks = kept
	s.mu.Unlock()

	sort.SliceStable(due, func(i, j int) bool {
		if due[i].due.Equal(due[j].due) {
			return due[i].seq < due[j].seq
		}
		return due[i].due.Before(due[j].due)
	})

	ran := 0
	for _, t := range due {
		s.mu.Lock()
		skip := t.canceled
		t.fired = !skip
		s.mu.Unlock()
		if skip {
			continue
		}
		t.fn()
		ran++
	}
	return ran
}
