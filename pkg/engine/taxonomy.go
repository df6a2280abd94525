package engine

import (
	"gridscan/pkg/domain"
)

// TableTaxonomy is a RuleTaxonomy backed by an in-memory table keyed by
// engine name and native rule ID.
type TableTaxonomy struct {
	rules map[domain.EngineName]map[string]Rule
}

// NewTableTaxonomy builds a TableTaxonomy from the given table. The table is
// used as-is; callers must not mutate it afterwards.
func NewTableTaxonomy(rules map[domain.EngineName]map[string]Rule) *TableTaxonomy {
	return &TableTaxonomy{rules: rules}
}

// Lookup implements RuleTaxonomy.
func (t *TableTaxonomy) Lookup(engine domain.EngineName, engineRuleID string) (Rule, bool) {
	r, ok := t.rules[engine][engineRuleID]

	return r, ok
}

// DefaultTaxonomy returns the built-in rule catalog covering the common
// findings of the four supported engines. It is deliberately small; unmapped
// rules land in the catch-all bucket during consensus.
func DefaultTaxonomy() *TableTaxonomy {
	return NewTableTaxonomy(map[domain.EngineName]map[string]Rule{
		domain.EngineAxe: {
			"image-alt":       {StandardRuleID: "img-alt-missing", WCAGCriterion: "1.1.1"},
			"color-contrast":  {StandardRuleID: "contrast-insufficient", WCAGCriterion: "1.4.3"},
			"label":           {StandardRuleID: "form-label-missing", WCAGCriterion: "3.3.2"},
			"link-name":       {StandardRuleID: "link-name-missing", WCAGCriterion: "2.4.4"},
			"html-has-lang":   {StandardRuleID: "page-lang-missing", WCAGCriterion: "3.1.1"},
			"document-title":  {StandardRuleID: "page-title-missing", WCAGCriterion: "2.4.2"},
			"heading-order":   {StandardRuleID: "heading-order-invalid", WCAGCriterion: "1.3.1"},
			"button-name":     {StandardRuleID: "button-name-missing", WCAGCriterion: "4.1.2"},
			"aria-valid-attr": {StandardRuleID: "aria-attr-invalid", WCAGCriterion: "4.1.2"},
		},
		domain.EnginePa11y: {
			"WCAG2AA.Principle1.Guideline1_1.1_1_1.H37":          {StandardRuleID: "img-alt-missing", WCAGCriterion: "1.1.1"},
			"WCAG2AA.Principle1.Guideline1_4.1_4_3.G18.Fail":     {StandardRuleID: "contrast-insufficient", WCAGCriterion: "1.4.3"},
			"WCAG2AA.Principle3.Guideline3_3.3_3_2.G131":         {StandardRuleID: "form-label-missing", WCAGCriterion: "3.3.2"},
			"WCAG2AA.Principle2.Guideline2_4.2_4_4.H77":          {StandardRuleID: "link-name-missing", WCAGCriterion: "2.4.4"},
			"WCAG2AA.Principle3.Guideline3_1.3_1_1.H57.2":        {StandardRuleID: "page-lang-missing", WCAGCriterion: "3.1.1"},
			"WCAG2AA.Principle2.Guideline2_4.2_4_2.H25.1.NoTitleEl": {StandardRuleID: "page-title-missing", WCAGCriterion: "2.4.2"},
			"WCAG2AA.Principle1.Guideline1_3.1_3_1.H42":          {StandardRuleID: "heading-order-invalid", WCAGCriterion: "1.3.1"},
		},
		domain.EngineWave: {
			"alt_missing":      {StandardRuleID: "img-alt-missing", WCAGCriterion: "1.1.1"},
			"contrast":         {StandardRuleID: "contrast-insufficient", WCAGCriterion: "1.4.3"},
			"label_missing":    {StandardRuleID: "form-label-missing", WCAGCriterion: "3.3.2"},
			"link_empty":       {StandardRuleID: "link-name-missing", WCAGCriterion: "2.4.4"},
			"language_missing": {StandardRuleID: "page-lang-missing", WCAGCriterion: "3.1.1"},
			"title_invalid":    {StandardRuleID: "page-title-missing", WCAGCriterion: "2.4.2"},
			"heading_skipped":  {StandardRuleID: "heading-order-invalid", WCAGCriterion: "1.3.1"},
			"button_empty":     {StandardRuleID: "button-name-missing", WCAGCriterion: "4.1.2"},
		},
		domain.EngineLighthouse: {
			"image-alt":      {StandardRuleID: "img-alt-missing", WCAGCriterion: "1.1.1"},
			"color-contrast": {StandardRuleID: "contrast-insufficient", WCAGCriterion: "1.4.3"},
			"label":          {StandardRuleID: "form-label-missing", WCAGCriterion: "3.3.2"},
			"link-name":      {StandardRuleID: "link-name-missing", WCAGCriterion: "2.4.4"},
			"html-has-lang":  {StandardRuleID: "page-lang-missing", WCAGCriterion: "3.1.1"},
			"document-title": {StandardRuleID: "page-title-missing", WCAGCriterion: "2.4.2"},
			"heading-order":  {StandardRuleID: "heading-order-invalid", WCAGCriterion: "1.3.1"},
			"button-name":    {StandardRuleID: "button-name-missing", WCAGCriterion: "4.1.2"},
		},
	})
}
