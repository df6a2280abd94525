package grid

import (
	"container/heap"
	"time"

	"gridscan/pkg/domain"
)

// queueItem wraps a job with its queue bookkeeping. seq is assigned when the
// item enters (or re-enters) the ready heap, giving FIFO order within a
// priority tier.
type queueItem struct {
	job *domain.ScanJob
	seq uint64
	// notBefore parks the item until the given time. Zero for ready items.
	notBefore time.Time
}

// readyHeap orders dispatchable items by priority rank descending, then by
// sequence ascending.
type readyHeap []*queueItem

func (h readyHeap) Len() int { return len(h) }
func (h readyHeap) Less(i, j int) bool {
	ri, rj := h[i].job.Target.Priority.Rank(), h[j].job.Target.Priority.Rank()
	if ri != rj {
		return ri > rj
	}

	return h[i].seq < h[j].seq
}
func (h readyHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }
func (h *readyHeap) Push(x any)        { *h = append(*h, x.(*queueItem)) }
func (h *readyHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]

	return item
}

// parkedHeap orders deferred items by their wake time.
type parkedHeap []*queueItem

func (h parkedHeap) Len() int           { return len(h) }
func (h parkedHeap) Less(i, j int) bool { return h[i].notBefore.Before(h[j].notBefore) }
func (h parkedHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }
func (h *parkedHeap) Push(x any)        { *h = append(*h, x.(*queueItem)) }
func (h *parkedHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]

	return item
}

// jobQueue is the scheduler's pending-job structure: a ready heap holding
// dispatchable jobs and a parked heap holding jobs deferred by backoff or
// rate limiting. Not safe for concurrent use; the scheduler serializes access.
type jobQueue struct {
	ready   readyHeap
	parked  parkedHeap
	nextSeq uint64
}

func newJobQueue() *jobQueue {
	return &jobQueue{}
}

// push enqueues a job as immediately dispatchable.
func (q *jobQueue) push(job *domain.ScanJob) {
	q.nextSeq++
	heap.Push(&q.ready, &queueItem{job: job, seq: q.nextSeq})
}

// pushAfter parks a job until notBefore. On promotion it re-enters its
// priority tier at the tail, behind jobs that stayed ready the whole time.
func (q *jobQueue) pushAfter(job *domain.ScanJob, notBefore time.Time) {
	heap.Push(&q.parked, &queueItem{job: job, notBefore: notBefore})
}

// promote moves every parked item whose wake time has passed onto the ready
// heap.
func (q *jobQueue) promote(now time.Time) {
	for len(q.parked) > 0 && !q.parked[0].notBefore.After(now) {
		item := heap.Pop(&q.parked).(*queueItem)
		q.push(item.job)
	}
}

// pop returns the highest-priority dispatchable job, or nil when none is
// ready at now.
func (q *jobQueue) pop(now time.Time) *domain.ScanJob {
	q.promote(now)
	if len(q.ready) == 0 {
		return nil
	}

	return heap.Pop(&q.ready).(*queueItem).job
}

// nextWake returns how long until the earliest parked item becomes ready.
// The second return is false when nothing is parked.
func (q *jobQueue) nextWake(now time.Time) (time.Duration, bool) {
	if len(q.parked) == 0 {
		return 0, false
	}
	d := q.parked[0].notBefore.Sub(now)
	if d < 0 {
		d = 0
	}

	return d, true
}

// size returns the total number of queued jobs, parked included.
func (q *jobQueue) size() int {
	return len(q.ready) + len(q.parked)
}
