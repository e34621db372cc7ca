package ratelimit

import (
	"context"
	"sync"
	"time"
)

// Decision is the outcome of counting one request against a client's window
type Decision struct {
	Allowed   bool
	Limit     int
	Remaining int
	ResetAt   time.Time
}

// Limiter counts requests per key in fixed windows
type Limiter interface {
	Allow(ctx context.Context, key string) (Decision, error)
}

type window struct {
	count   int
	resetAt time.Time
}

// MemoryLimiter is a fixed-window limiter held in process memory.
// Each key gets limit requests per window; the window starts at the key's
// first request and the count resets once it has elapsed.
type MemoryLimiter struct {
	mu      sync.Mutex
	windows map[string]*window
	limit   int
	period  time.Duration
	now     func() time.Time
}

func NewMemoryLimiter(limit int, period time.Duration) *MemoryLimiter {
	return &MemoryLimiter{
		windows: make(map[string]*window),
		limit:   limit,
		period:  period,
		now:     time.Now,
	}
}

func (l *MemoryLimiter) Allow(_ context.Context, key string) (Decision, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	w, ok := l.windows[key]
	if !ok || now.After(w.resetAt) {
		w = &window{count: 1, resetAt: now.Add(l.period)}
		l.windows[key] = w
		return l.decision(w, true), nil
	}

	if w.count < l.limit {
		w.count++
		return l.decision(w, true), nil
	}

	return l.decision(w, false), nil
}

func (l *MemoryLimiter) decision(w *window, allowed bool) Decision {
	remaining := l.limit - w.count
	if remaining < 0 {
		remaining = 0
	}
	return Decision{
		Allowed:   allowed,
		Limit:     l.limit,
		Remaining: remaining,
		ResetAt:   w.resetAt,
	}
}

// Sweep drops windows that have expired and returns how many were removed
func (l *MemoryLimiter) Sweep() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	removed := 0
	for key, w := range l.windows {
		if now.After(w.resetAt) {
			delete(l.windows, key)
			removed++
		}
	}
	return removed
}

// Len returns the number of tracked clients
func (l *MemoryLimiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.windows)
}
