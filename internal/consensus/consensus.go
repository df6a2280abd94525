// Package consensus merges the findings of independent accessibility engines
// into a single cross-validated result. Build is a pure function over its
// inputs and can be re-run at any time for auditing.
package consensus

import (
	"sort"
	"time"

	"gridscan/pkg/domain"
	"gridscan/pkg/engine"
)

// Builder merges per-engine scan results. It holds no per-scan state; a
// single Builder serves all jobs concurrently.
type Builder struct {
	taxonomy engine.RuleTaxonomy

	now func() time.Time
}

// New constructs a Builder over the given rule taxonomy.
func New(taxonomy engine.RuleTaxonomy) *Builder {
	return &Builder{taxonomy: taxonomy, now: time.Now}
}

// group is the in-progress merge state for one canonical rule.
type group struct {
	violation domain.ConsensusViolation
	// elements dedupes selectors across engines before the final sort.
	elements map[string]struct{}
	// confidenceSum accumulates contributing engines' confidence for the
	// running average.
	confidenceSum float64
	// seen tracks which engines already contributed, so a duplicate finding
	// from the same engine unions elements without inflating agreement.
	seen map[domain.EngineName]struct{}
}

// Build merges results into a ConsensusResult for url. Failed engine results
// contribute nothing beyond the allEnginesSuccessful flag; the output is
// deterministic for a given input ordering.
func (b *Builder) Build(url string, results []domain.EngineResult) domain.ConsensusResult {
	start := b.now()

	allSuccessful := len(results) > 0
	groups := make(map[string]*group)
	// order preserves first-sighting insertion order for deterministic output
	var order []string

	for _, res := range results {
		if res.Status != domain.EngineStatusSuccess {
			allSuccessful = false

			continue
		}

		for _, v := range res.Violations {
			rule := normalizeRule(b.taxonomy, res.Engine, v.RuleID)

			g, ok := groups[rule.StandardRuleID]
			if !ok {
				g = &group{
					violation: domain.ConsensusViolation{
						ID:          "cv-" + rule.StandardRuleID,
						RuleID:      rule.StandardRuleID,
						Description: v.Description,
						// severity is seeded from the first sighting and
						// never overwritten by later engines
						Severity:     NormalizeSeverity(v.Severity),
						WCAGCriteria: rule.WCAGCriterion,
					},
					elements: make(map[string]struct{}),
					seen:     make(map[domain.EngineName]struct{}),
				}
				groups[rule.StandardRuleID] = g
				order = append(order, rule.StandardRuleID)
			}

			for _, sel := range v.Selectors {
				g.elements[sel] = struct{}{}
			}

			if _, dup := g.seen[res.Engine]; dup {
				continue
			}
			g.seen[res.Engine] = struct{}{}
			g.violation.Engines = append(g.violation.Engines, res.Engine)
			g.violation.EngineCount++
			g.confidenceSum += res.Confidence
			g.violation.Confidence = g.confidenceSum / float64(g.violation.EngineCount)
		}
	}

	out := domain.ConsensusResult{
		URL:      url,
		ScanDate: start,
		Engines:  results,
	}

	for _, ruleID := range order {
		g := groups[ruleID]

		// strength is recomputed here from the final engine count so the
		// result cannot depend on merge order
		g.violation.Consensus = domain.StrengthForEngineCount(g.violation.EngineCount)

		g.violation.AffectedElements = make([]string, 0, len(g.elements))
		for sel := range g.elements {
			g.violation.AffectedElements = append(g.violation.AffectedElements, sel)
		}
		sort.Strings(g.violation.AffectedElements)

		out.ConsensusViolations = append(out.ConsensusViolations, g.violation)
	}

	out.Statistics = b.statistics(out.ConsensusViolations, allSuccessful, start)

	return out
}

// statistics aggregates headline counts. Weak findings roll into the minor
// bucket regardless of severity to suppress single-engine false positives.
func (b *Builder) statistics(violations []domain.ConsensusViolation, allSuccessful bool, start time.Time) domain.Statistics {
	stats := domain.Statistics{
		TotalViolations:      len(violations),
		AllEnginesSuccessful: allSuccessful,
	}

	for _, v := range violations {
		if v.Consensus == domain.ConsensusWeak {
			stats.MinorCount++

			continue
		}

		switch v.Severity {
		case domain.SeverityCritical:
			stats.CriticalCount++
		case domain.SeveritySerious:
			stats.SeriousCount++
		case domain.SeverityModerate:
			stats.ModerateCount++
		case domain.SeverityMinor:
			stats.MinorCount++
		}
	}

	stats.BuildTimeMs = b.now().Sub(start).Milliseconds()

	return stats
}
