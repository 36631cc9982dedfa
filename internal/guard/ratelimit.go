// Package guard holds the request-throttling guards placed in front of the
// auth and admin surfaces. State is per-process and best-effort: limits are
// not shared across instances.
package guard

import (
	"math"
	"sync"
	"time"
)

// Decision is the outcome of a rate-limit check.
type Decision struct {
	Allowed    bool
	Remaining  int
	RetryAfter time.Duration // time until the window resets, when blocked
}

type window struct {
	count   int
	resetAt time.Time
}

// RateLimiter is a fixed-window counter keyed by client identifier. Each
// key gets at most limit requests per window; the read-check-increment runs
// under one mutex so concurrent bursts from the same client cannot
// undercount. An injected component rather than package-level state, so a
// multi-instance deployment can swap in a shared store.
type RateLimiter struct {
	mu      sync.Mutex
	windows map[string]*window
	limit   int
	window  time.Duration

	stopCh   chan struct{}
	stopOnce sync.Once
}

// NewRateLimiter creates a rate limiter allowing limit requests per span
// and starts a background sweep that drops expired windows to bound memory.
func NewRateLimiter(limit int, span time.Duration) *RateLimiter {
	rl := &RateLimiter{
		windows: make(map[string]*window),
		limit:   limit,
		window:  span,
		stopCh:  make(chan struct{}),
	}

	go rl.sweepLoop()

	return rl
}

// Stop terminates the background sweep goroutine.
func (rl *RateLimiter) Stop() {
	rl.stopOnce.Do(func() { close(rl.stopCh) })
}

// Check records a request for key and reports whether it is within limits.
// When blocked, RetryAfter holds the remaining time in the current window;
// it shrinks toward zero on subsequent checks, never grows.
func (rl *RateLimiter) Check(key string) Decision {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	w, ok := rl.windows[key]
	if !ok || !now.Before(w.resetAt) {
		rl.windows[key] = &window{count: 1, resetAt: now.Add(rl.window)}
		return Decision{Allowed: true, Remaining: rl.limit - 1}
	}

	if w.count >= rl.limit {
		return Decision{Allowed: false, RetryAfter: w.resetAt.Sub(now)}
	}

	w.count++
	return Decision{Allowed: true, Remaining: rl.limit - w.count}
}

// Entries returns the number of tracked windows. For tests and metrics.
func (rl *RateLimiter) Entries() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	return len(rl.windows)
}

func (rl *RateLimiter) sweepLoop() {
	ticker := time.NewTicker(rl.window)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.sweep()
		case <-rl.stopCh:
			return
		}
	}
}

func (rl *RateLimiter) sweep() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	for key, w := range rl.windows {
		if !now.Before(w.resetAt) {
			delete(rl.windows, key)
		}
	}
}

// RetryAfterSeconds converts a retry-after duration to whole seconds,
// rounding up so clients never retry early.
func RetryAfterSeconds(d time.Duration) int {
	sec := int(math.Ceil(d.Seconds()))
	if sec < 1 {
		sec = 1
	}
	return sec
}
