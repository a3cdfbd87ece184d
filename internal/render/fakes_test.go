package render

import (
	"context"
	"fmt"
	"sync"
	"time"
)

type fakeHandle struct {
	id  string
	cfg Configuration
}

func (h *fakeHandle) ID() string                   { return h.id }
func (h *fakeHandle) Configuration() Configuration { return h.cfg }

// fakeSurface records every call and fails configurations listed in fail
type fakeSurface struct {
	mu        sync.Mutex
	fail      map[int]error
	panicOn   map[int]bool
	autoReady bool
	seq       int
	live      map[string]bool
	maxLive   int
	created   []Configuration
	destroyed []string
	events    []Events
}

func newFakeSurface() *fakeSurface {
	return &fakeSurface{
		fail:    make(map[int]error),
		panicOn: make(map[int]bool),
		live:    make(map[string]bool),
	}
}

func (s *fakeSurface) Create(ctx context.Context, cfg Configuration, events Events) (Handle, error) {
	s.mu.Lock()
	s.created = append(s.created, cfg)
	s.events = append(s.events, events)
	if s.panicOn[cfg.Index] {
		s.mu.Unlock()
		panic("driver exploded")
	}
	if err := s.fail[cfg.Index]; err != nil {
		s.mu.Unlock()
		return nil, err
	}
	s.seq++
	h := &fakeHandle{id: fmt.Sprintf("surface-%d", s.seq), cfg: cfg}
	s.live[h.id] = true
	if len(s.live) > s.maxLive {
		s.maxLive = len(s.live)
	}
	autoReady := s.autoReady
	s.mu.Unlock()

	if autoReady {
		events.Ready()
	}
	return h, nil
}

func (s *fakeSurface) Destroy(h Handle) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.live, h.ID())
	s.destroyed = append(s.destroyed, h.ID())
}

func (s *fakeSurface) lastEvents() Events {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.events[len(s.events)-1]
}

func (s *fakeSurface) liveCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.live)
}

// fakeClock collects scheduled functions until fire is called
type fakeClock struct {
	mu     sync.Mutex
	timers []*fakeTimer
}

type fakeTimer struct {
	clock   *fakeClock
	d       time.Duration
	fn      func()
	stopped bool
	fired   bool
}

func (t *fakeTimer) Stop() bool {
	t.clock.mu.Lock()
	defer t.clock.mu.Unlock()
	wasActive := !t.stopped && !t.fired
	t.stopped = true
	return wasActive
}

func (c *fakeClock) AfterFunc(d time.Duration, fn func()) Timer {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := &fakeTimer{clock: c, d: d, fn: fn}
	c.timers = append(c.timers, t)
	return t
}

func (c *fakeClock) fire() {
	c.mu.Lock()
	var due []func()
	for _, t := range c.timers {
		if !t.stopped && !t.fired {
			t.fired = true
			due = append(due, t.fn)
		}
	}
	c.mu.Unlock()
	for _, fn := range due {
		fn()
	}
}

func (c *fakeClock) pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, t := range c.timers {
		if !t.stopped && !t.fired {
			n++
		}
	}
	return n
}
