package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// newTestLimiter returns a limiter with a controllable clock.
func newTestLimiter(opts Options) (*DomainRateLimiter, *time.Time) {
	l := New(opts)
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return now }
	l.windowStart = now

	return l, &now
}

func TestCanIssueUnderCeiling(t *testing.T) {
	l, now := newTestLimiter(Options{MaxPerWindow: 5, Window: time.Hour, MinInterval: time.Second})

	for i := 0; i < 5; i++ {
		require.True(t, l.CanIssue("example.com"), "issue %d should be allowed", i)
		l.RecordIssue("example.com")
		*now = now.Add(2 * time.Second)
	}

	// sixth request inside the same window is deferred, not failed
	require.False(t, l.CanIssue("example.com"))
	require.Equal(t, 5, l.WindowCount("example.com"))
}

func TestMinIntervalEnforced(t *testing.T) {
	l, now := newTestLimiter(Options{MaxPerWindow: 5, Window: time.Hour, MinInterval: time.Second})

	require.True(t, l.CanIssue("example.com"))
	l.RecordIssue("example.com")

	// immediately after, even with budget left, the interval blocks
	require.False(t, l.CanIssue("example.com"))

	*now = now.Add(time.Second)
	require.True(t, l.CanIssue("example.com"))
}

func TestDomainsAreIndependent(t *testing.T) {
	l, _ := newTestLimiter(Options{MaxPerWindow: 1, Window: time.Hour, MinInterval: 0})

	l.RecordIssue("a.com")
	require.False(t, l.CanIssue("a.com"))
	require.True(t, l.CanIssue("b.com"))
}

func TestWindowResetRestoresBudget(t *testing.T) {
	l, now := newTestLimiter(Options{MaxPerWindow: 2, Window: time.Hour, MinInterval: 0})

	l.RecordIssue("example.com")
	l.RecordIssue("example.com")
	require.False(t, l.CanIssue("example.com"))

	// crossing the window boundary clears the whole budget at once
	*now = now.Add(time.Hour)
	require.True(t, l.CanIssue("example.com"))
	require.Equal(t, 0, l.WindowCount("example.com"))
}

func TestMinIntervalSurvivesReset(t *testing.T) {
	l, now := newTestLimiter(Options{MaxPerWindow: 2, Window: time.Hour, MinInterval: 10 * time.Second})

	*now = now.Add(time.Hour - time.Second)
	l.RecordIssue("example.com")

	// the window resets two seconds later, but the last issuance was 2s ago
	*now = now.Add(2 * time.Second)
	require.False(t, l.CanIssue("example.com"))

	*now = now.Add(10 * time.Second)
	require.True(t, l.CanIssue("example.com"))
}

func TestExplicitReset(t *testing.T) {
	l, _ := newTestLimiter(Options{MaxPerWindow: 1, Window: time.Hour, MinInterval: 0})

	l.RecordIssue("example.com")
	require.False(t, l.CanIssue("example.com"))

	l.Reset()
	require.True(t, l.CanIssue("example.com"))
}

func TestDefaults(t *testing.T) {
	l := New(Options{})
	require.Equal(t, DefaultMaxPerWindow, l.opts.MaxPerWindow)
	require.Equal(t, DefaultWindow, l.opts.Window)
}
