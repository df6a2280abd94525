package consensus

import (
	"gridscan/pkg/domain"
	"gridscan/pkg/engine"
)

// unknownCriterion marks findings whose rule is not in the shared catalog.
const unknownCriterion = "unknown"

// NormalizeSeverity maps an engine's raw severity word onto the shared
// vocabulary. Anything unrecognized lands in minor rather than being dropped.
func NormalizeSeverity(raw string) domain.Severity {
	switch raw {
	case "error", "fail":
		return domain.SeverityCritical
	case "warn", "warning":
		return domain.SeveritySerious
	case "notice":
		return domain.SeverityModerate
	default:
		return domain.SeverityMinor
	}
}

// normalizeRule resolves an engine-native rule ID against the taxonomy.
// Unmapped IDs pass through as their own canonical ID with an unknown
// criterion, so uncataloged findings still group when engines agree on the
// raw ID.
func normalizeRule(tax engine.RuleTaxonomy, name domain.EngineName, engineRuleID string) engine.Rule {
	if r, ok := tax.Lookup(name, engineRuleID); ok {
		return r
	}

	return engine.Rule{StandardRuleID: engineRuleID, WCAGCriterion: unknownCriterion}
}
