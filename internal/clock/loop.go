package clock

import (
	"context"
	"errors"
	"sync"
	"time"
)

// ErrAlreadyRunning is returned by Start when the loop is active.
var ErrAlreadyRunning = errors.New("clock: loop already running")

// Tick rate bounds accepted by FrameInterval.
const (
	DefaultFPS = 60
	MaxFPS     = 1000
)

// FrameInterval returns the tick interval for fps frames per second.
// Non-positive rates use DefaultFPS and rates above MaxFPS are capped.
func FrameInterval(fps int) time.Duration {
	switch {
	case fps <= 0:
		fps = DefaultFPS
	case fps > MaxFPS:
		fps = MaxFPS
	}
	return time.Second / time.Duration(fps)
}

// TickFunc receives the smoothed delta. Returning false stops the loop.
type TickFunc func(delta time.Duration) bool

// Loop runs a TickFunc on a single goroutine at a fixed interval.
// The tick callback must not call Stop; it returns false instead.
type Loop struct {
	interval time.Duration
	smoother *Smoother
	tick     TickFunc
	now      func() time.Time

	mu      sync.Mutex
	running bool
	cancel  context.CancelFunc
	done    chan struct{}
}

// NewLoop creates a stopped loop.
func NewLoop(interval time.Duration, smoother *Smoother, tick TickFunc) *Loop {
	return &Loop{
		interval: interval,
		smoother: smoother,
		tick:     tick,
		now:      time.Now,
	}
}

// Start launches the loop goroutine. Cancelling ctx has the same effect as Stop.
func (l *Loop) Start(ctx context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.running {
		return ErrAlreadyRunning
	}

	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	l.running = true
	l.cancel = cancel
	l.done = done
	l.smoother.Reset()

	go l.run(ctx, cancel, done)
	return nil
}

// Stop halts the loop and waits for its goroutine to exit. Safe to call
// repeatedly or on a loop that was never started.
func (l *Loop) Stop() {
	l.mu.Lock()
	cancel, done := l.cancel, l.done
	l.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
}

// Done returns a channel closed when the current run exits.
func (l *Loop) Done() <-chan struct{} {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.done == nil {
		closed := make(chan struct{})
		close(closed)
		return closed
	}
	return l.done
}

// Running reports whether the loop goroutine is active.
func (l *Loop) Running() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.running
}

func (l *Loop) run(ctx context.Context, cancel context.CancelFunc, done chan struct{}) {
	ticker := time.NewTicker(l.interval)
	defer func() {
		ticker.Stop()
		cancel()
		l.mu.Lock()
		l.running = false
		l.mu.Unlock()
		close(done)
	}()

	last := l.now()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			now := l.now()
			raw := now.Sub(last)
			last = now
			if !l.tick(l.smoother.Next(raw)) {
				return
			}
		}
	}
}
