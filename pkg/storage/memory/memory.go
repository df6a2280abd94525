// Package memory provides an in-memory storage.Storage implementation, used
// when the grid runs without a database (development, tests, single-node
// deployments that only need in-flight state).
package memory

import (
	"context"
	"sync"
	"time"

	"gridscan/pkg/domain"
	"gridscan/pkg/storage"
)

type entry struct {
	result   domain.ConsensusResult
	storedAt time.Time
}

// Store is a mutex-guarded map of job ID to result. Safe for concurrent use.
type Store struct {
	mu      sync.RWMutex
	results map[domain.JobID]entry

	now func() time.Time
}

// New constructs an empty Store.
func New() *Store {
	return &Store{
		results: make(map[domain.JobID]entry),
		now:     time.Now,
	}
}

// PutResult implements storage.ResultStore. The first write for a job wins.
func (s *Store) PutResult(_ context.Context, jobID domain.JobID, result domain.ConsensusResult) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.results[jobID]; ok {
		return nil
	}
	s.results[jobID] = entry{result: result, storedAt: s.now()}

	return nil
}

// GetResult implements storage.ResultStore.
func (s *Store) GetResult(_ context.Context, jobID domain.JobID) (*domain.ConsensusResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.results[jobID]
	if !ok {
		return nil, nil //nolint: nilnil
	}
	result := e.result

	return &result, nil
}

// DeleteResultsBefore implements storage.ResultStore.
func (s *Store) DeleteResultsBefore(_ context.Context, cutoff time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var deleted int64
	for id, e := range s.results {
		if e.storedAt.Before(cutoff) {
			delete(s.results, id)
			deleted++
		}
	}

	return deleted, nil
}

// Close implements storage.Storage.
func (s *Store) Close() error { return nil }

// Ensure Store conforms to the storage.Storage interface at compile time.
var _ storage.Storage = (*Store)(nil)
