package ratelimit

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestTryIssueSpendsAtomically(t *testing.T) {
	l, _ := newTestLimiter(Options{MaxPerWindow: 3, Window: time.Hour, MinInterval: 0})

	granted := 0
	for i := 0; i < 5; i++ {
		if l.TryIssue("example.com") {
			granted++
		}
	}
	require.Equal(t, 3, granted)
	require.Equal(t, 3, l.WindowCount("example.com"))
}

func TestTryIssueNeverOverspendsConcurrently(t *testing.T) {
	l := New(Options{MaxPerWindow: 5, Window: time.Hour, MinInterval: 0})

	var wg sync.WaitGroup
	var mu sync.Mutex
	granted := 0
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if l.TryIssue("example.com") {
				mu.Lock()
				granted++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	require.Equal(t, 5, granted)
	require.Equal(t, 5, l.WindowCount("example.com"))
}

func TestTryIssueHonorsMinInterval(t *testing.T) {
	l, now := newTestLimiter(Options{MaxPerWindow: 5, Window: time.Hour, MinInterval: time.Second})

	require.True(t, l.TryIssue("example.com"))
	require.False(t, l.TryIssue("example.com"))

	*now = now.Add(time.Second)
	require.True(t, l.TryIssue("example.com"))
}
