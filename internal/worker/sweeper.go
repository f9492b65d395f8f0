// Package worker contains the background tasks that maintain the offer
// collection independently of user actions.
package worker

import (
	"context"
	"log"
	"time"

	"github.com/idomichaeli/Sublet-sub000/internal/notify"
	"github.com/idomichaeli/Sublet-sub000/internal/offer"
)

// DefaultSweepInterval is how often the sweeper scans for stale offers.
const DefaultSweepInterval = time.Hour

// Sweeper periodically transitions stale pending offers to expired and fans
// out change notifications. It runs one sweep on Start, so offers that
// expired while the process was not running are corrected promptly instead of
// waiting up to a full interval.
type Sweeper struct {
	store    *offer.Store
	registry *notify.Registry
	interval time.Duration

	cancel context.CancelFunc
	done   chan struct{}
}

// NewSweeper creates a Sweeper over store and registry. A non-positive
// interval falls back to DefaultSweepInterval.
func NewSweeper(store *offer.Store, registry *notify.Registry, interval time.Duration) *Sweeper {
	if interval <= 0 {
		interval = DefaultSweepInterval
	}
	return &Sweeper{
		store:    store,
		registry: registry,
		interval: interval,
	}
}

// Start runs a one-shot sweep, then begins the periodic loop. It returns
// immediately; the loop runs until the context is cancelled or Stop is called.
func (s *Sweeper) Start(ctx context.Context) {
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	s.Sweep(ctx)

	go func() {
		defer close(s.done)
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				s.Sweep(ctx)
			case <-ctx.Done():
				return
			}
		}
	}()
}

// Stop terminates the periodic loop and waits for it to finish. Safe to call
// only after Start.
func (s *Sweeper) Stop() {
	s.cancel()
	<-s.done
}

// Sweep expires stale pending offers once. Idempotent — a second run on an
// already-swept collection is a no-op and triggers no notifications.
func (s *Sweeper) Sweep(ctx context.Context) {
	n, err := s.store.ExpireStale(ctx)
	if err != nil {
		log.Printf("worker: expiry sweep: %v", err)
	}
	if n == 0 {
		return
	}
	log.Printf("worker: expired %d stale offer(s)", n)
	s.registry.NotifyAll()
}
