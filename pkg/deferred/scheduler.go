// Package deferred runs keyed one-shot actions at a point in time.
//
// Each key owns at most one pending action. Scheduling a key again replaces
// the previous action, Cancel drops it. A timer that already fired for a
// replaced generation is a no-op, so callers never see a superseded action run.
package deferred

import (
	"context"
	"sync"
	"time"
)

// Action получает контекст планировщика, он отменяется при Stop.
type Action = func(ctx context.Context)

type entry struct {
	timer      *time.Timer
	generation uint64
}

type Scheduler struct {
	mu         sync.Mutex
	baseCtx    context.Context
	cancel     context.CancelFunc
	entries    map[string]*entry
	generation uint64
	stopped    bool
	running    sync.WaitGroup
	now        func() time.Time
}

// New создает планировщик. ctx передается во все сработавшие действия
// и отменяется при Stop.
func New(ctx context.Context) *Scheduler {
	baseCtx, cancel := context.WithCancel(ctx)
	return &Scheduler{
		baseCtx: baseCtx,
		cancel:  cancel,
		entries: make(map[string]*entry),
		now:     time.Now,
	}
}

// Schedule arms action for key at the given moment. A moment in the past
// fires immediately on a separate goroutine. Returns false after Stop.
func (s *Scheduler) Schedule(key string, at time.Time, action Action) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopped {
		return false
	}

	if prev, ok := s.entries[key]; ok {
		prev.timer.Stop()
	}

	s.generation++
	gen := s.generation
	e := &entry{generation: gen}
	e.timer = time.AfterFunc(at.Sub(s.now()), func() {
		s.fire(key, gen, action)
	})
	s.entries[key] = e
	return true
}

// Cancel drops the pending action for key. Reports whether one was pending.
func (s *Scheduler) Cancel(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[key]
	if !ok {
		return false
	}
	e.timer.Stop()
	delete(s.entries, key)
	return true
}

// Pending reports whether key has an armed action.
func (s *Scheduler) Pending(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.entries[key]
	return ok
}

func (s *Scheduler) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.entries)
}

// Stop cancels every pending action, cancels the context of running ones
// and waits for them to return.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	s.stopped = true
	for key, e := range s.entries {
		e.timer.Stop()
		delete(s.entries, key)
	}
	s.mu.Unlock()

	s.cancel()
	s.running.Wait()
}

func (s *Scheduler) fire(key string, gen uint64, action Action) {
	s.mu.Lock()
	e, ok := s.entries[key]
	if !ok || e.generation != gen || s.stopped {
		s.mu.Unlock()
		return
	}
	delete(s.entries, key)
	s.running.Add(1)
	s.mu.Unlock()

	defer s.running.Done()
	action(s.baseCtx)
}
