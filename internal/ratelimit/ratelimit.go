package ratelimit

import (
	"sync"
	"time"
)

// Limiter admits at most Max events per key within a sliding Window. It is
// the only piece of shared mutable state in the request path, so access is
// serialized with a mutex; the count is a soft abuse control, not a
// correctness guarantee.
type Limiter struct {
	window time.Duration
	max    int
	now    func() time.Time

	mu      sync.Mutex
	entries map[string][]time.Time
}

// Option configures a Limiter.
type Option func(*Limiter)

// WithClock overrides the time source. Used by tests.
func WithClock(now func() time.Time) Option {
	return func(l *Limiter) {
		l.now = now
	}
}

func NewLimiter(window time.Duration, max int, opts ...Option) *Limiter {
	l := &Limiter{
		window:  window,
		max:     max,
		now:     time.Now,
		entries: make(map[string][]time.Time),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Allow records an attempt for key and reports whether it is admitted.
// Attempts older than the window are discarded before counting, so the 6th
// submission within the window is rejected and a submission after the window
// elapses is admitted again.
func (l *Limiter) Allow(key string) bool {
	now := l.now()
	cutoff := now.Add(-l.window)

	l.mu.Lock()
	defer l.mu.Unlock()

	recent := l.entries[key][:0]
	for _, t := range l.entries[key] {
		if t.After(cutoff) {
			recent = append(recent, t)
		}
	}

	if len(recent) >= l.max {
		l.entries[key] = recent
		return false
	}

	l.entries[key] = append(recent, now)
	return true
}

// Prune drops keys whose attempts have all aged out of the window. The cron
// digest job calls this so idle addresses do not accumulate forever.
func (l *Limiter) Prune() {
	cutoff := l.now().Add(-l.window)

	l.mu.Lock()
	defer l.mu.Unlock()

	for key, attempts := range l.entries {
		live := false
		for _, t := range attempts {
			if t.After(cutoff) {
				live = true
				break
			}
		}
		if !live {
			delete(l.entries, key)
		}
	}
}
