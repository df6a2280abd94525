// Package proxypool maintains the set of egress proxies scan traffic is
// routed through. The pool hands out the least-recently-used healthy proxy,
// excludes proxies marked unhealthy by workers, and re-admits them after a
// cooldown via the healing loop.
package proxypool

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"gridscan/pkg/logger"
	"gridscan/pkg/serrors"
)

// Proxy describes one egress proxy and its health state. The pool owns all
// mutation; callers receive value snapshots and refer back by Address.
type Proxy struct {
	// Address is the proxy URL, e.g. "http://10.0.0.1:3128".
	Address string `json:"address"`
	// Username and Password are optional credentials.
	Username string `json:"username,omitempty"`
	Password string `json:"password,omitempty"`

	// Healthy marks whether the proxy is currently in rotation.
	Healthy bool `json:"healthy"`
	// LastUsed is when the proxy was last handed out.
	LastUsed time.Time `json:"lastUsed"`
	// FailureCount counts consecutive failures since the last success.
	FailureCount int `json:"failureCount"`
	// unhealthySince is set when the proxy leaves rotation, for healing.
	unhealthySince time.Time
}

// Pool is the shared proxy registry. All internal mutation is serialized by
// its own mutex so concurrent workers never race on health bookkeeping.
type Pool struct {
	mu      sync.Mutex
	proxies []*Proxy

	now func() time.Time
}

// New constructs a pool from the given proxies. All start healthy.
func New(proxies []Proxy) *Pool {
	p := &Pool{now: time.Now}
	for i := range proxies {
		px := proxies[i]
		px.Healthy = true
		p.proxies = append(p.proxies, &px)
	}

	return p
}

// Get returns the least-recently-used healthy proxy and stamps its LastUsed.
// An empty or fully-unhealthy pool returns ErrProxyUnavailable; the caller
// must treat that as a capacity signal distinct from a scan failure.
func (p *Pool) Get() (Proxy, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	var pick *Proxy
	for _, px := range p.proxies {
		if !px.Healthy {
			continue
		}
		if pick == nil || px.LastUsed.Before(pick.LastUsed) {
			pick = px
		}
	}
	if pick == nil {
		return Proxy{}, serrors.With(serrors.ErrProxyUnavailable, "no healthy proxies in pool")
	}

	pick.LastUsed = p.now()

	return *pick, nil
}

// MarkUnhealthy removes the proxy with the given address from rotation and
// bumps its failure count. Unknown addresses are ignored.
func (p *Pool) MarkUnhealthy(address string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	for _, px := range p.proxies {
		if px.Address != address {
			continue
		}
		px.FailureCount++
		if px.Healthy {
			px.Healthy = false
			px.unhealthySince = p.now()
		}

		return
	}
}

// MarkHealthy restores the proxy with the given address to rotation and
// clears its failure count. Unknown addresses are ignored.
func (p *Pool) MarkHealthy(address string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	for _, px := range p.proxies {
		if px.Address != address {
			continue
		}
		px.Healthy = true
		px.FailureCount = 0
		px.unhealthySince = time.Time{}

		return
	}
}

// HealthyCount returns how many proxies are currently in rotation.
func (p *Pool) HealthyCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	n := 0
	for _, px := range p.proxies {
		if px.Healthy {
			n++
		}
	}

	return n
}

// Snapshot returns a copy of the pool's current state for inspection.
func (p *Pool) Snapshot() []Proxy {
	p.mu.Lock()
	defer p.mu.Unlock()

	out := make([]Proxy, 0, len(p.proxies))
	for _, px := range p.proxies {
		out = append(out, *px)
	}

	return out
}

// heal re-admits proxies that have been out of rotation at least cooldown.
func (p *Pool) heal(ctx context.Context, cooldown time.Duration) {
	p.mu.Lock()
	defer p.mu.Unlock()

	now := p.now()
	for _, px := range p.proxies {
		if px.Healthy || now.Sub(px.unhealthySince) < cooldown {
			continue
		}
		px.Healthy = true
		px.unhealthySince = time.Time{}
		logger.Info(ctx, "proxy re-admitted after cooldown",
			zap.String("proxy", px.Address),
			zap.Int("failureCount", px.FailureCount))
	}
}

// Heal runs the periodic healing check until ctx is canceled. It is the
// pool-side half of the external health restoration described by the grid's
// resource model; serve starts it as a background goroutine.
func (p *Pool) Heal(ctx context.Context, interval, cooldown time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.heal(ctx, cooldown)
		}
	}
}
