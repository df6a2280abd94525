package proxypool

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"gridscan/pkg/logger"
	"gridscan/pkg/serrors"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	m.Run()
}

func newTestPool(addrs ...string) (*Pool, *time.Time) {
	proxies := make([]Proxy, 0, len(addrs))
	for _, a := range addrs {
		proxies = append(proxies, Proxy{Address: a})
	}
	p := New(proxies)
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	p.now = func() time.Time { return now }

	return p, &now
}

func TestGetEmptyPool(t *testing.T) {
	p, _ := newTestPool()
	_, err := p.Get()
	require.ErrorIs(t, err, serrors.ErrProxyUnavailable)
}

func TestGetRotatesLeastRecentlyUsed(t *testing.T) {
	p, now := newTestPool("http://p1:3128", "http://p2:3128", "http://p3:3128")

	seen := make(map[string]bool)
	for i := 0; i < 3; i++ {
		px, err := p.Get()
		require.NoError(t, err)
		require.False(t, seen[px.Address], "proxy %s handed out twice before full rotation", px.Address)
		seen[px.Address] = true
		*now = now.Add(time.Second)
	}
}

func TestUnhealthyExcluded(t *testing.T) {
	p, now := newTestPool("http://p1:3128", "http://p2:3128")

	p.MarkUnhealthy("http://p1:3128")
	require.Equal(t, 1, p.HealthyCount())

	for i := 0; i < 4; i++ {
		px, err := p.Get()
		require.NoError(t, err)
		require.Equal(t, "http://p2:3128", px.Address)
		*now = now.Add(time.Second)
	}
}

func TestAllUnhealthyIsUnavailable(t *testing.T) {
	p, _ := newTestPool("http://p1:3128")
	p.MarkUnhealthy("http://p1:3128")

	_, err := p.Get()
	require.ErrorIs(t, err, serrors.ErrProxyUnavailable)
}

func TestMarkHealthyRestores(t *testing.T) {
	p, _ := newTestPool("http://p1:3128")
	p.MarkUnhealthy("http://p1:3128")
	p.MarkUnhealthy("http://p1:3128")

	p.MarkHealthy("http://p1:3128")
	px, err := p.Get()
	require.NoError(t, err)
	require.Equal(t, "http://p1:3128", px.Address)
	require.Equal(t, 0, px.FailureCount)
}

func TestHealReadmitsAfterCooldown(t *testing.T) {
	p, now := newTestPool("http://p1:3128")
	p.MarkUnhealthy("http://p1:3128")

	// before the cooldown elapses, healing leaves it out of rotation
	p.heal(context.Background(), 5*time.Minute)
	require.Equal(t, 0, p.HealthyCount())

	*now = now.Add(5 * time.Minute)
	p.heal(context.Background(), 5*time.Minute)
	require.Equal(t, 1, p.HealthyCount())
}

func TestFailureCountSticksUntilSuccess(t *testing.T) {
	p, now := newTestPool("http://p1:3128")
	p.MarkUnhealthy("http://p1:3128")
	p.MarkUnhealthy("http://p1:3128")

	// healing restores rotation but keeps the failure history
	*now = now.Add(time.Hour)
	p.heal(context.Background(), time.Minute)
	snap := p.Snapshot()
	require.True(t, snap[0].Healthy)
	require.Equal(t, 2, snap[0].FailureCount)
}
