package fwchart

import "sync"

// A scheduler defers full recomputes so the triggering interaction
// returns immediately. It holds a single pending-work slot: a new
// request overwrites any not-yet-started one, so bursts of zoom or
// resize requests coalesce to the latest (last-request-wins). At most
// one recompute runs at a time.
type scheduler struct {
	mu      sync.Mutex
	pending func()

	kick chan struct{}
	done chan struct{}
	stop sync.Once
	wg   sync.WaitGroup
}

func newScheduler() *scheduler {
	s := &scheduler{
		kick: make(chan struct{}, 1),
		done: make(chan struct{}),
	}
	s.wg.Add(1)
	go s.loop()
	return s
}

// submit stores fn as the latest pending work and wakes the worker.
func (s *scheduler) submit(fn func()) {
	s.mu.Lock()
	s.pending = fn
	s.mu.Unlock()

	select {
	case s.kick <- struct{}{}:
	default: // a wakeup is already queued
	}
}

func (s *scheduler) loop() {
	defer s.wg.Done()
	for {
		select {
		case <-s.done:
			return
		case <-s.kick:
			s.mu.Lock()
			fn := s.pending
			s.pending = nil
			s.mu.Unlock()
			if fn != nil {
				fn()
			}
		}
	}
}

// close stops the worker. Pending work that has not started is
// dropped; a running recompute finishes first. Closing more than
// once is a no-op.
func (s *scheduler) close() {
	s.stop.Do(func() { close(s.done) })
	s.wg.Wait()
}
