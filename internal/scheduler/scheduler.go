package scheduler

import (
	"sync"
	"time"

	"go.uber.org/zap"
)

// Scheduler runs one-shot delayed tasks keyed by owner. A task that was
// canceled or replaced never runs.
type Scheduler struct {
	mu      sync.Mutex
	tasks   map[string]*task
	nextID  uint64
	stopped bool
	logger  *zap.Logger
}

type task struct {
	id    uint64
	timer *time.Timer
}

// New creates a scheduler
func New(logger *zap.Logger) *Scheduler {
	return &Scheduler{
		tasks:  make(map[string]*task),
		logger: logger,
	}
}

// Schedule runs fn once after delay. A pending task with the same key is
// canceled first. Returns false if the scheduler was stopped.
func (s *Scheduler) Schedule(key string, delay time.Duration, fn func()) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopped {
		return false
	}

	if prev, ok := s.tasks[key]; ok {
		prev.timer.Stop()
		s.logger.Debug("Replaced pending task", zap.String("key", key))
	}

	s.nextID++
	t := &task{id: s.nextID}
	t.timer = time.AfterFunc(delay, func() {
		if !s.claim(key, t.id) {
			return
		}
		fn()
	})
	s.tasks[key] = t
	return true
}

// claim removes the task if it is still the current one for key. A timer
// that fired concurrently with Cancel or a replacement loses here.
func (s *Scheduler) claim(key string, id uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.tasks[key]
	if !ok || t.id != id || s.stopped {
		return false
	}
	delete(s.tasks, key)
	return true
}

// Cancel stops the pending task for key. Reports whether one was pending.
func (s *Scheduler) Cancel(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.tasks[key]
	if !ok {
		return false
	}
	t.timer.Stop()
	delete(s.tasks, key)
	return true
}

// Pending reports whether a task is waiting under key
func (s *Scheduler) Pending(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.tasks[key]
	return ok
}

// Stop cancels every pending task and rejects new ones
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for key, t := range s.tasks {
		t.timer.Stop()
		delete(s.tasks, key)
	}
	s.stopped = true
	s.logger.Info("Scheduler stopped")
}
