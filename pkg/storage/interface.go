// Package storage defines the persistence interfaces for consensus results.
// Results are write-once: a job stores its result exactly once on completion
// and readers only ever fetch by job ID.
//
//go:generate mockgen -package mockstorage -source=interface.go -destination=mock/mockstorage.go *
package storage

import (
	"context"
	"time"

	"gridscan/pkg/domain"
)

// ResultStore persists and retrieves consensus results keyed by job ID.
type ResultStore interface {
	// PutResult stores the consensus result for jobID. Storing the same job ID
	// twice is a no-op; the first write wins.
	PutResult(ctx context.Context, jobID domain.JobID, result domain.ConsensusResult) error
	// GetResult returns the stored result for jobID, or (nil, nil) when no
	// result has been stored for it.
	GetResult(ctx context.Context, jobID domain.JobID) (*domain.ConsensusResult, error)
	// DeleteResultsBefore removes results stored before cutoff and returns how
	// many were deleted. Used by the retention janitor.
	DeleteResultsBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

// Storage describes a storage handle with lifecycle management.
type Storage interface {
	ResultStore

	// Close releases any resources held by the storage implementation. After
	// Close, the instance should not be used.
	Close() error
}
