// Package ratelimit implements per-identity sliding-window admission control.
package ratelimit

import (
	"sync"
	"time"
)

// Limiter counts requests per client identity over a sliding window. The
// window moves continuously with each call, so bursts straddling a fixed
// boundary cannot exceed the quota.
type Limiter struct {
	mu        sync.Mutex
	windows   map[string][]time.Time
	now       func() time.Time
	maxWindow time.Duration
	sweepAt   time.Time
}

// NewLimiter creates an empty limiter.
func NewLimiter() *Limiter {
	return &Limiter{
		windows: make(map[string][]time.Time),
		now:     time.Now,
	}
}

// Admit prunes timestamps older than window for identity and reports whether
// another request fits under max. Rejected attempts are not recorded. Limits
// are parameterized per call site, so different routes can share one limiter
// with their own quotas.
func (l *Limiter) Admit(identity string, max int, window time.Duration) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if window > l.maxWindow {
		l.maxWindow = window
	}
	if !now.Before(l.sweepAt) {
		l.sweep(now)
		l.sweepAt = now.Add(l.maxWindow)
	}
	cutoff := now.Add(-window)

	kept := l.windows[identity][:0]
	for _, ts := range l.windows[identity] {
		if ts.After(cutoff) {
			kept = append(kept, ts)
		}
	}

	if len(kept) >= max {
		l.windows[identity] = kept
		return false
	}

	l.windows[identity] = append(kept, now)
	return true
}

// sweep drops identities whose recorded requests have all aged past the
// largest window any route uses, so idle clients do not accumulate in the
// map for the process lifetime. Timestamps that old would be pruned on the
// identity's next call anyway, so removal never changes an admission result.
func (l *Limiter) sweep(now time.Time) {
	cutoff := now.Add(-l.maxWindow)
	for identity, stamps := range l.windows {
		if len(stamps) == 0 || !stamps[len(stamps)-1].After(cutoff) {
			delete(l.windows, identity)
		}
	}
}
