// Package engine defines the abstraction for accessibility scan engines and
// the rule taxonomy that maps each engine's native rule identifiers onto the
// shared catalog used for consensus.
package engine

import (
	"context"

	"gridscan/pkg/domain"
	"gridscan/pkg/proxypool"
)

// Engine runs one accessibility scanner against a URL. Implementations route
// all outbound traffic through the provided proxy and must respect ctx
// cancellation; the executor enforces a per-engine timeout through it.
//
//go:generate mockgen -package mockengine -source=interface.go -destination=mock/mockengine.go *
type Engine interface {
	// Name identifies the engine in results and metrics.
	Name() domain.EngineName
	// Scan runs the engine against URL. A non-nil error means the engine
	// produced no usable result for this attempt.
	Scan(ctx context.Context, URL string, proxy proxypool.Proxy) (domain.EngineResult, error)
}

// Rule is one entry of the shared rule catalog.
type Rule struct {
	// StandardRuleID is the canonical identifier violations are grouped by.
	StandardRuleID string
	// WCAGCriterion is the success criterion the rule maps to, e.g. "1.1.1".
	WCAGCriterion string
}

// RuleTaxonomy resolves an engine-native rule identifier to the shared
// catalog. A miss is expected for rules the catalog does not know yet;
// callers fall back to a catch-all bucket rather than dropping the finding.
type RuleTaxonomy interface {
	Lookup(engine domain.EngineName, engineRuleID string) (Rule, bool)
}
