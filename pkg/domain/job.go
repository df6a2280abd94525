package domain

import (
	"time"

	"github.com/google/uuid"
)

// JobID uniquely identifies a scan job.
// It wraps uuid.UUID to provide type safety at the domain layer.
type JobID uuid.UUID

// NewJobID returns a fresh random job identifier.
func NewJobID() JobID { return JobID(uuid.New()) }

// ParseJobID parses the canonical string form of a job identifier.
func ParseJobID(s string) (JobID, error) {
	id, err := uuid.Parse(s)

	return JobID(id), err //nolint: wrapcheck
}

func (id JobID) String() string { return uuid.UUID(id).String() }

// JobStatus represents the lifecycle state of a scan job. Completed and
// failed are terminal; a job never leaves a terminal state.
type JobStatus string

const (
	// JobStatusPending indicates the job is queued and waiting for dispatch.
	JobStatusPending JobStatus = "PENDING"
	// JobStatusRunning indicates the job passed all pre-dispatch checks and a
	// worker is executing it.
	JobStatusRunning JobStatus = "RUNNING"
	// JobStatusCompleted indicates a consensus result is available.
	JobStatusCompleted JobStatus = "COMPLETED"
	// JobStatusFailed indicates the job ended with an error; see Error.
	JobStatusFailed JobStatus = "FAILED"
)

// Terminal reports whether the status is final.
func (s JobStatus) Terminal() bool {
	return s == JobStatusCompleted || s == JobStatusFailed
}

// FailureKind classifies why a job failed, so callers can tell "we refused
// to scan" from "we tried and could not" from "infrastructure was short".
type FailureKind string

const (
	// FailureComplianceDenied means the compliance gate refused the domain.
	// Terminal and never retried.
	FailureComplianceDenied FailureKind = "COMPLIANCE_DENIED"
	// FailureScanFailed means every retry of the scan itself failed.
	FailureScanFailed FailureKind = "SCAN_FAILED"
	// FailureProxyUnavailable means the proxy pool stayed empty past the
	// proxy retry budget.
	FailureProxyUnavailable FailureKind = "PROXY_UNAVAILABLE"
	// FailureTimeout means the per-job deadline expired, regardless of any
	// remaining retry budget.
	FailureTimeout FailureKind = "TIMEOUT"
	// FailureInternal covers unexpected scheduler-side errors.
	FailureInternal FailureKind = "INTERNAL"
)

// JobError is the structured error recorded on a failed job. It carries
// enough context to diagnose the failure without re-running the scan.
type JobError struct {
	Kind    FailureKind `json:"kind"`
	Message string      `json:"message"`
	// Reasons holds the compliance gate's structured denial reasons.
	Reasons []string `json:"reasons,omitempty"`
	// Engines lists the engines involved in the last failed attempt.
	Engines []string `json:"engines,omitempty"`
	// Proxy is the egress proxy assigned to the last failed attempt.
	Proxy string `json:"proxy,omitempty"`
}

// ScanJob tracks one scheduling attempt-group for a target. It is owned
// exclusively by the scheduler: created on enqueue and mutated only through
// the scheduler's state transitions.
type ScanJob struct {
	// ID is the unique identifier of the job.
	ID JobID `json:"id"`
	// Target is the immutable input this job was created for.
	Target ScanTarget `json:"target"`

	// AssignedNode records which proxy address served the running attempt.
	AssignedNode string `json:"assignedNode,omitempty"`
	// Status is the current lifecycle state.
	Status JobStatus `json:"status"`

	// RetryCount counts scan-failure retries. It never exceeds the
	// configured maximum and is never incremented by rate-limit deferrals.
	RetryCount int `json:"retryCount"`
	// ProxyAttempts counts proxy-unavailability requeues. Tracked separately
	// from RetryCount so a flaky proxy pool cannot starve scan retries.
	ProxyAttempts int `json:"proxyAttempts"`

	// Results holds the consensus output once the job completes.
	Results *ConsensusResult `json:"results,omitempty"`
	// Error holds the structured failure once the job fails.
	Error *JobError `json:"error,omitempty"`

	// EnqueuedAt is when the job entered the queue.
	EnqueuedAt time.Time `json:"enqueuedAt"`
	// StartTime is when the job last transitioned to running.
	StartTime time.Time `json:"startTime,omitempty"`
	// EndTime is when the job reached a terminal state.
	EndTime time.Time `json:"endTime,omitempty"`
	// Deadline caps the job's total lifetime including all retries.
	Deadline time.Time `json:"deadline"`
}
