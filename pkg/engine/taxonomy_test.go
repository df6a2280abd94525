package engine_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"gridscan/pkg/domain"
	"gridscan/pkg/engine"
)

func TestDefaultTaxonomyMapsCommonRules(t *testing.T) {
	tax := engine.DefaultTaxonomy()

	// the same finding has a different native ID per engine but one canonical ID
	for _, tc := range []struct {
		engine domain.EngineName
		ruleID string
	}{
		{domain.EngineAxe, "image-alt"},
		{domain.EnginePa11y, "WCAG2AA.Principle1.Guideline1_1.1_1_1.H37"},
		{domain.EngineWave, "alt_missing"},
		{domain.EngineLighthouse, "image-alt"},
	} {
		r, ok := tax.Lookup(tc.engine, tc.ruleID)
		require.True(t, ok, "%s/%s should be mapped", tc.engine, tc.ruleID)
		require.Equal(t, "img-alt-missing", r.StandardRuleID)
		require.Equal(t, "1.1.1", r.WCAGCriterion)
	}
}

func TestDefaultTaxonomyMissesUnknownRule(t *testing.T) {
	tax := engine.DefaultTaxonomy()

	_, ok := tax.Lookup(domain.EngineAxe, "some-experimental-rule")
	require.False(t, ok)

	_, ok = tax.Lookup(domain.EngineName("unknown-engine"), "image-alt")
	require.False(t, ok)
}

func TestTableTaxonomyLookup(t *testing.T) {
	tax := engine.NewTableTaxonomy(map[domain.EngineName]map[string]engine.Rule{
		domain.EngineAxe: {"r1": {StandardRuleID: "std-1", WCAGCriterion: "1.2.3"}},
	})

	r, ok := tax.Lookup(domain.EngineAxe, "r1")
	require.True(t, ok)
	require.Equal(t, "std-1", r.StandardRuleID)

	_, ok = tax.Lookup(domain.EngineAxe, "r2")
	require.False(t, ok)
}
