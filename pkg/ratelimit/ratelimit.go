// Package ratelimit implements the per-domain issuance budget that enforces
// crawl etiquette across the scan grid. A denial is a normal outcome, not an
// error: the scheduler reacts by requeueing, never by failing the job.
package ratelimit

import (
	"sync"
	"time"
)

const (
	// DefaultMaxPerWindow is the default issuance ceiling per domain per window.
	DefaultMaxPerWindow = 5
	// DefaultWindow is the default budget window.
	DefaultWindow = time.Hour
	// DefaultMinInterval is the default minimum delay between two requests to
	// the same domain.
	DefaultMinInterval = time.Second
)

// Options configure a DomainRateLimiter. Zero values fall back to defaults.
type Options struct {
	// MaxPerWindow is how many issuances a single domain gets per window.
	MaxPerWindow int
	// Window is the budget window. Counts reset wholesale when it elapses
	// rather than per-entry; callers must tolerate the coarse boundary (a
	// burst of up to MaxPerWindow right after a reset is possible).
	Window time.Duration
	// MinInterval is the minimum delay between consecutive issuances to the
	// same domain, enforced independently of the window budget.
	MinInterval time.Duration
}

// DomainRateLimiter tracks per-domain issuance counts inside a coarse reset
// window. All state is owned by the instance and guarded by its own mutex so
// concurrent workers never double-count an issuance.
type DomainRateLimiter struct {
	opts Options

	mu          sync.Mutex
	windowStart time.Time
	counts      map[string]int
	lastIssue   map[string]time.Time

	// now is swapped out in tests to step through window boundaries.
	now func() time.Time
}

// New constructs a DomainRateLimiter with the provided options.
func New(opts Options) *DomainRateLimiter {
	if opts.MaxPerWindow <= 0 {
		opts.MaxPerWindow = DefaultMaxPerWindow
	}
	if opts.Window <= 0 {
		opts.Window = DefaultWindow
	}
	if opts.MinInterval < 0 {
		// zero disables the inter-request delay; only negatives are invalid
		opts.MinInterval = 0
	}

	l := &DomainRateLimiter{
		opts:      opts,
		counts:    make(map[string]int),
		lastIssue: make(map[string]time.Time),
		now:       time.Now,
	}
	l.windowStart = l.now()

	return l
}

// maybeReset clears all window counts when the window has elapsed. Must be
// called with mu held. The inter-request timestamps survive the reset so the
// minimum interval still holds across the boundary.
func (l *DomainRateLimiter) maybeReset(now time.Time) {
	if now.Sub(l.windowStart) < l.opts.Window {
		return
	}

	l.windowStart = now
	l.counts = make(map[string]int)
}

// CanIssue reports whether a request to domain may be issued right now. It
// does not reserve the slot; callers that proceed must call RecordIssue.
func (l *DomainRateLimiter) CanIssue(domain string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	l.maybeReset(now)

	if l.counts[domain] >= l.opts.MaxPerWindow {
		return false
	}
	if last, ok := l.lastIssue[domain]; ok && now.Sub(last) < l.opts.MinInterval {
		return false
	}

	return true
}

// TryIssue atomically checks the budget and records an issuance when
// allowed. Concurrent callers can never overspend a domain's window this way.
func (l *DomainRateLimiter) TryIssue(domain string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	l.maybeReset(now)

	if l.counts[domain] >= l.opts.MaxPerWindow {
		return false
	}
	if last, ok := l.lastIssue[domain]; ok && now.Sub(last) < l.opts.MinInterval {
		return false
	}

	l.counts[domain]++
	l.lastIssue[domain] = now

	return true
}

// RecordIssue records that a request to domain was issued.
func (l *DomainRateLimiter) RecordIssue(domain string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	l.maybeReset(now)

	l.counts[domain]++
	l.lastIssue[domain] = now
}

// Reset clears all window budgets immediately. Exposed for operators; the
// limiter also resets itself lazily when the window elapses.
func (l *DomainRateLimiter) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.windowStart = l.now()
	l.counts = make(map[string]int)
}

// WindowCount returns the current window's issuance count for domain.
func (l *DomainRateLimiter) WindowCount(domain string) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.maybeReset(l.now())

	return l.counts[domain]
}
