package domain

import "time"

// EngineName identifies one of the independent scanning engines.
type EngineName string

const (
	EngineAxe        EngineName = "axe"
	EnginePa11y      EngineName = "pa11y"
	EngineWave       EngineName = "wave"
	EngineLighthouse EngineName = "lighthouse"
)

// EngineStatus is the per-engine outcome of a scan attempt.
type EngineStatus string

const (
	EngineStatusSuccess EngineStatus = "success"
	EngineStatusFailed  EngineStatus = "failed"
)

// Severity is the normalized severity vocabulary shared across engines.
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeveritySerious  Severity = "serious"
	SeverityModerate Severity = "moderate"
	SeverityMinor    Severity = "minor"
)

// ConsensusStrength is a discrete tier indicating how many distinct engines
// independently flagged the same normalized issue.
type ConsensusStrength string

const (
	ConsensusWeak     ConsensusStrength = "weak"
	ConsensusModerate ConsensusStrength = "moderate"
	ConsensusStrong   ConsensusStrength = "strong"
)

// StrengthForEngineCount maps an engine count to a consensus strength. This
// is the single source of truth for the classification; strength is always
// recomputed from the count, never hand-set.
func StrengthForEngineCount(n int) ConsensusStrength {
	switch {
	case n >= 3:
		return ConsensusStrong
	case n >= 2:
		return ConsensusModerate
	default:
		return ConsensusWeak
	}
}

// Violation is a single raw finding as reported by one engine, before
// normalization. Severity here is the engine's own vocabulary.
type Violation struct {
	// RuleID is the engine-specific rule identifier.
	RuleID string `json:"ruleId"`
	// Description is the engine's human-readable summary.
	Description string `json:"description"`
	// Severity is the engine's raw severity word (e.g. "error", "warning").
	Severity string `json:"severity"`
	// Selectors lists the affected DOM elements as selector strings.
	Selectors []string `json:"selectors,omitempty"`
}

// EngineResult is the outcome of one engine scanning one page. Produced once
// per engine per job and read-only afterward.
type EngineResult struct {
	// Engine identifies which engine produced this result.
	Engine EngineName `json:"engine"`
	// Status is success or failed; failed results carry Error and no violations.
	Status EngineStatus `json:"status"`
	// Violations are the engine's raw findings.
	Violations []Violation `json:"violations,omitempty"`
	// ExecutionTimeMs is how long the engine call took.
	ExecutionTimeMs int64 `json:"executionTimeMs"`
	// Confidence is the engine's self-reported confidence in [0,1].
	Confidence float64 `json:"confidence"`
	// Error holds the failure message for failed results.
	Error string `json:"error,omitempty"`
}

// ConsensusViolation is one normalized finding merged across engines.
// Invariant: EngineCount == len(Engines), and Consensus is always the value
// of StrengthForEngineCount(EngineCount).
type ConsensusViolation struct {
	ID          string `json:"id"`
	RuleID      string `json:"ruleId"`
	Description string `json:"description"`
	// Severity is the normalized severity seeded from the first sighting.
	Severity Severity `json:"severity"`
	// Engines lists the engines that independently reported this rule.
	Engines     []EngineName `json:"engines"`
	EngineCount int          `json:"engineCount"`
	// Consensus is derived from EngineCount in a final pass.
	Consensus ConsensusStrength `json:"consensus"`
	// Confidence is the running average of contributing engines' confidence.
	Confidence float64 `json:"confidence"`
	// AffectedElements is the sorted union of selectors across engines.
	AffectedElements []string `json:"affectedElements,omitempty"`
	// WCAGCriteria is the mapped WCAG criterion, or "unknown" for unmapped rules.
	WCAGCriteria string `json:"wcagCriteria"`
}

// Statistics summarizes a consensus result. Headline severity counts only
// include findings with at least two-engine agreement; weak findings roll
// into the minor bucket regardless of their reported severity.
type Statistics struct {
	TotalViolations      int   `json:"totalViolations"`
	CriticalCount        int   `json:"criticalCount"`
	SeriousCount         int   `json:"seriousCount"`
	ModerateCount        int   `json:"moderateCount"`
	MinorCount           int   `json:"minorCount"`
	AllEnginesSuccessful bool  `json:"allEnginesSuccessful"`
	BuildTimeMs          int64 `json:"buildTimeMs"`
}

// ConsensusResult is the terminal output of a scan job. Write-once.
type ConsensusResult struct {
	URL                 string               `json:"url"`
	ScanDate            time.Time            `json:"scanDate"`
	Engines             []EngineResult       `json:"engines"`
	ConsensusViolations []ConsensusViolation `json:"consensusViolations"`
	Statistics          Statistics           `json:"statistics"`
}
