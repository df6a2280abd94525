package domain

import "time"

// Priority orders scan targets within the grid queue. Higher priorities
// dispatch first among eligible jobs, but never bypass per-domain etiquette.
type Priority string

const (
	PriorityLow      Priority = "low"
	PriorityMedium   Priority = "medium"
	PriorityHigh     Priority = "high"
	PriorityCritical Priority = "critical"
)

// Rank returns the numeric ordering of a priority; unknown values sort with
// the lowest tier so a malformed target cannot jump the queue.
func (p Priority) Rank() int {
	switch p {
	case PriorityCritical:
		return 3
	case PriorityHigh:
		return 2
	case PriorityMedium:
		return 1
	case PriorityLow:
		return 0
	default:
		return 0
	}
}

// ScanFrequency expresses how often a target wants to be rescanned. The
// scheduler does not act on it directly; it is carried for the calling layer.
type ScanFrequency string

const (
	FrequencyDaily   ScanFrequency = "daily"
	FrequencyWeekly  ScanFrequency = "weekly"
	FrequencyMonthly ScanFrequency = "monthly"
)

// ScanTarget is the immutable description of what to scan and how urgently.
// It is created by the caller and read-only inside the scheduler.
type ScanTarget struct {
	// Domain is the registrable domain used for rate limiting and the
	// compliance pre-check.
	Domain string `json:"domain"`
	// URL is the concrete page handed to the scan engines.
	URL string `json:"url"`
	// Priority orders this target against others in the queue.
	Priority Priority `json:"priority"`
	// Industry is an optional vertical tag carried through to reporting.
	Industry string `json:"industry,omitempty"`
	// LastScanned is when this target was last scanned, if known.
	LastScanned time.Time `json:"lastScanned,omitempty"`
	// ScanFrequency is the caller's desired rescan cadence.
	ScanFrequency ScanFrequency `json:"scanFrequency,omitempty"`
}
