package consensus

import (
	"testing"

	"github.com/stretchr/testify/require"

	"gridscan/pkg/domain"
	"gridscan/pkg/engine"
)

func TestNormalizeSeverity(t *testing.T) {
	for raw, want := range map[string]domain.Severity{
		"error":   domain.SeverityCritical,
		"fail":    domain.SeverityCritical,
		"warn":    domain.SeveritySerious,
		"warning": domain.SeveritySerious,
		"notice":  domain.SeverityModerate,
		"info":    domain.SeverityMinor,
		"":        domain.SeverityMinor,
		"ERROR":   domain.SeverityMinor,
	} {
		require.Equal(t, want, NormalizeSeverity(raw), "raw severity %q", raw)
	}
}

func TestNormalizeRuleFallsThrough(t *testing.T) {
	tax := engine.NewTableTaxonomy(map[domain.EngineName]map[string]engine.Rule{
		domain.EngineAxe: {"image-alt": {StandardRuleID: "img-alt-missing", WCAGCriterion: "1.1.1"}},
	})

	r := normalizeRule(tax, domain.EngineAxe, "image-alt")
	require.Equal(t, "img-alt-missing", r.StandardRuleID)
	require.Equal(t, "1.1.1", r.WCAGCriterion)

	// unmapped ids keep their raw id so matching raw reports still group
	r = normalizeRule(tax, domain.EngineAxe, "experimental-rule")
	require.Equal(t, "experimental-rule", r.StandardRuleID)
	require.Equal(t, "unknown", r.WCAGCriterion)
}
