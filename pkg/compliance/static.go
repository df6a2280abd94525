package compliance

import (
	"context"
	"strings"
)

// StaticGate is a Gate backed by a fixed denylist, loaded from configuration
// at startup. Matching is by exact domain, case-insensitive.
type StaticGate struct {
	denied map[string][]string
}

// NewStaticGate builds a StaticGate from denylist entries of the form
// "domain=reason". Entries without a reason get a generic one.
func NewStaticGate(entries []string) *StaticGate {
	g := &StaticGate{denied: make(map[string][]string)}
	for _, e := range entries {
		name, reason, found := strings.Cut(e, "=")
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" {
			continue
		}
		if !found || strings.TrimSpace(reason) == "" {
			reason = "domain is on the scan denylist"
		}
		g.denied[name] = append(g.denied[name], strings.TrimSpace(reason))
	}

	return g
}

// Check implements Gate.
func (g *StaticGate) Check(_ context.Context, domain string) (Decision, error) {
	if reasons, ok := g.denied[strings.ToLower(domain)]; ok {
		return Decision{Allowed: false, Reasons: reasons}, nil
	}

	return Decision{Allowed: true}, nil
}
