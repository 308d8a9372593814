package api

import (
	"context"
	"sync"
	"time"
)

// The service allows 29 requests per rolling minute; spacing dispatches by
// the quotient keeps any request pattern inside the quota.
const (
	requestBudget = 29
	budgetWindow  = time.Minute

	// DefaultInterval is the minimum gap between two dispatches.
	DefaultInterval = budgetWindow / requestBudget
)

// pacer serializes request dispatch so consecutive dispatches are never
// closer together than interval. The suspension is cooperative (context
// aware); concurrent callers queue on the mutex and drain strictly FIFO
// relative to their lock acquisition.
type pacer struct {
	mu       sync.Mutex
	interval time.Duration
	last     time.Time

	// Swapped out by tests.
	now   func() time.Time
	sleep func(ctx context.Context, d time.Duration) error
}

func newPacer(interval time.Duration) *pacer {
	return &pacer{
		interval: interval,
		now:      time.Now,
		sleep:    sleepContext,
	}
}

// wait blocks until a dispatch is allowed, then records the dispatch
// timestamp. The timestamp is written after the delay decision, immediately
// before the caller hands off to the transport.
func (p *pacer) wait(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.last.IsZero() {
		if remaining := p.interval - p.now().Sub(p.last); remaining > 0 {
			if err := p.sleep(ctx, remaining); err != nil {
				return err
			}
		}
	}
	p.last = p.now()
	return nil
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
