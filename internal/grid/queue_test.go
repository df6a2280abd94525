package grid

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"gridscan/pkg/domain"
)

func queuedJob(id byte, priority domain.Priority) *domain.ScanJob {
	return &domain.ScanJob{
		ID:     domain.JobID{id},
		Target: domain.ScanTarget{Domain: "example.com", URL: "https://example.com", Priority: priority},
		Status: domain.JobStatusPending,
	}
}

func TestPopOrdersByPriorityThenFIFO(t *testing.T) {
	q := newJobQueue()
	now := time.Now()

	low := queuedJob(1, domain.PriorityLow)
	critical := queuedJob(2, domain.PriorityCritical)
	high1 := queuedJob(3, domain.PriorityHigh)
	high2 := queuedJob(4, domain.PriorityHigh)

	q.push(low)
	q.push(high1)
	q.push(critical)
	q.push(high2)

	require.Equal(t, critical, q.pop(now))
	require.Equal(t, high1, q.pop(now))
	require.Equal(t, high2, q.pop(now))
	require.Equal(t, low, q.pop(now))
	require.Nil(t, q.pop(now))
}

func TestParkedJobWaitsForWakeTime(t *testing.T) {
	q := newJobQueue()
	now := time.Now()

	job := queuedJob(1, domain.PriorityHigh)
	q.pushAfter(job, now.Add(time.Second))

	require.Nil(t, q.pop(now))
	require.Nil(t, q.pop(now.Add(999*time.Millisecond)))
	require.Equal(t, job, q.pop(now.Add(time.Second)))
}

func TestPromotedJobJoinsTailOfItsTier(t *testing.T) {
	q := newJobQueue()
	now := time.Now()

	parked := queuedJob(1, domain.PriorityHigh)
	q.pushAfter(parked, now.Add(time.Millisecond))

	steady := queuedJob(2, domain.PriorityHigh)
	q.push(steady)

	// both are ready now, but the job that stayed ready dispatches first
	later := now.Add(time.Second)
	require.Equal(t, steady, q.pop(later))
	require.Equal(t, parked, q.pop(later))
}

func TestHigherPriorityPromotionStillWins(t *testing.T) {
	q := newJobQueue()
	now := time.Now()

	critical := queuedJob(1, domain.PriorityCritical)
	q.pushAfter(critical, now.Add(time.Millisecond))
	q.push(queuedJob(2, domain.PriorityLow))

	later := now.Add(time.Second)
	require.Equal(t, critical, q.pop(later))
}

func TestNextWake(t *testing.T) {
	q := newJobQueue()
	now := time.Now()

	_, ok := q.nextWake(now)
	require.False(t, ok)

	q.pushAfter(queuedJob(1, domain.PriorityLow), now.Add(3*time.Second))
	q.pushAfter(queuedJob(2, domain.PriorityLow), now.Add(time.Second))

	wait, ok := q.nextWake(now)
	require.True(t, ok)
	require.Equal(t, time.Second, wait)

	// past-due parked items report a zero wait, never negative
	wait, ok = q.nextWake(now.Add(2 * time.Second))
	require.True(t, ok)
	require.Equal(t, time.Duration(0), wait)
}

func TestSizeCountsReadyAndParked(t *testing.T) {
	q := newJobQueue()
	now := time.Now()

	require.Equal(t, 0, q.size())
	q.push(queuedJob(1, domain.PriorityLow))
	q.pushAfter(queuedJob(2, domain.PriorityLow), now.Add(time.Second))
	require.Equal(t, 2, q.size())

	q.pop(now)
	require.Equal(t, 1, q.size())
}
