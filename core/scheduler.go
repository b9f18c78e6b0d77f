package core

import (
	"context"
	"log"
	"time"
)

// Scheduler is the cancelable repeating task that drives the approval
// sweeper. It lives in the composition root, not in the core logic: the core
// stays testable with an injected clock, and the scheduler just ticks.
type Scheduler struct {
	app      *App
	interval time.Duration
	cancel   context.CancelFunc
	done     chan struct{}
}

// NewScheduler builds a stopped scheduler. A non-positive interval defaults
// to one second.
func NewScheduler(app *App, interval time.Duration) *Scheduler {
	if interval <= 0 {
		interval = time.Second
	}
	return &Scheduler{app: app, interval: interval}
}

// Start launches the tick loop. Safe to call once.
func (s *Scheduler) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.done = make(chan struct{})

	go func() {
		defer close(s.done)
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				result := s.app.SweepNow(ctx)
				if result.Changed {
					for userID, delta := range result.RewardDelta {
						log.Printf("[sweeper] credited %d coins to %s", delta, userID)
					}
				}
			}
		}
	}()
}

// Stop cancels the loop and waits for it to exit.
func (s *Scheduler) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	s.cancel = nil
}
