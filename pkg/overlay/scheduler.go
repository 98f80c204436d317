package overlay

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-drift/barskin/pkg/errors"
)

// Clock supplies frame timestamps.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// FrameStats summarizes the frames a Scheduler has run.
type FrameStats struct {
	// Frames counts calls to Tick that had work to do.
	Frames int
	// Paints counts frames that painted.
	Paints int
	// LastPaint is the time the most recent paint started.
	LastPaint time.Time
	// LastPaintDuration is how long the most recent paint took.
	LastPaintDuration time.Duration
}

// Scheduler runs UI-thread work in frames. Callbacks queued with Dispatch
// run at the start of the next frame; display requests made with
// MarkNeedsDisplay are coalesced into at most one paint per frame.
type Scheduler struct {
	paint func()
	clock Clock

	dispatchMu    sync.Mutex
	dispatchQueue []func()

	needsDisplay atomic.Bool
	wake         chan struct{}

	statsMu sync.Mutex
	stats   FrameStats
}

// NewScheduler creates a scheduler that calls paint when a frame needs
// display.
func NewScheduler(paint func()) *Scheduler {
	return &Scheduler{
		paint: paint,
		clock: systemClock{},
		wake:  make(chan struct{}, 1),
	}
}

// SetClock replaces the clock used for frame timestamps.
func (s *Scheduler) SetClock(c Clock) {
	if c == nil {
		c = systemClock{}
	}
	s.clock = c
}

// Dispatch schedules fn to run on the UI thread during the next frame.
// It is safe to call from any goroutine.
func (s *Scheduler) Dispatch(fn func()) {
	if fn == nil {
		return
	}
	s.dispatchMu.Lock()
	s.dispatchQueue = append(s.dispatchQueue, fn)
	s.dispatchMu.Unlock()
	s.notify()
}

// MarkNeedsDisplay requests a paint in the next frame.
func (s *Scheduler) MarkNeedsDisplay() {
	s.needsDisplay.Store(true)
	s.notify()
}

// NeedsFrame reports whether a call to Tick has work to do.
func (s *Scheduler) NeedsFrame() bool {
	if s.needsDisplay.Load() {
		return true
	}
	s.dispatchMu.Lock()
	defer s.dispatchMu.Unlock()
	return len(s.dispatchQueue) > 0
}

// Tick runs one frame on the calling goroutine, which must be the UI
// thread: it runs the queued callbacks, then paints once if any display
// request is pending. It reports whether it painted.
//
// Callbacks dispatched while the queue is drained run in the next frame.
func (s *Scheduler) Tick() bool {
	callbacks := s.drainDispatchQueue()
	for _, fn := range callbacks {
		s.run(fn)
	}

	painted := false
	if s.needsDisplay.Swap(false) && s.paint != nil {
		start := s.clock.Now()
		func() {
			defer errors.Recover("overlay.paint")
			s.paint()
		}()
		painted = true
		s.statsMu.Lock()
		s.stats.Paints++
		s.stats.LastPaint = start
		s.stats.LastPaintDuration = s.clock.Now().Sub(start)
		s.statsMu.Unlock()
	}

	if len(callbacks) > 0 || painted {
		s.statsMu.Lock()
		s.stats.Frames++
		s.statsMu.Unlock()
	}
	return painted
}

// Run ticks whenever work is requested until ctx is done. interval bounds
// how often frames run; zero means a frame per wakeup.
func (s *Scheduler) Run(ctx context.Context, interval time.Duration) error {
	var throttle <-chan time.Time
	if interval > 0 {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		throttle = ticker.C
	}
	for {
		if s.NeedsFrame() {
			s.Tick()
			continue
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-s.wake:
		}
		if throttle != nil {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-throttle:
			}
		}
	}
}

// Stats returns a copy of the frame statistics.
func (s *Scheduler) Stats() FrameStats {
	s.statsMu.Lock()
	defer s.statsMu.Unlock()
	return s.stats
}

func (s *Scheduler) run(fn func()) {
	defer errors.Recover("overlay.dispatch")
	fn()
}

func (s *Scheduler) drainDispatchQueue() []func() {
	s.dispatchMu.Lock()
	callbacks := s.dispatchQueue
	s.dispatchQueue = nil
	s.dispatchMu.Unlock()
	return callbacks
}

func (s *Scheduler) notify() {
	select {
	case s.wake <- struct{}{}:
	default:
	}
}
