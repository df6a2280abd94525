// Package grid implements the distributed scan scheduler: a priority queue
// of scan jobs dispatched to a bounded worker pool, with per-domain rate
// limiting, a compliance pre-check, proxy assignment and dual retry budgets.
package grid

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"gridscan/internal/consensus"
	"gridscan/pkg/compliance"
	"gridscan/pkg/domain"
	"gridscan/pkg/logger"
	"gridscan/pkg/metrics"
	"gridscan/pkg/proxypool"
	"gridscan/pkg/ratelimit"
	"gridscan/pkg/serrors"
	"gridscan/pkg/storage"
)

const (
	// DefaultMaxConcurrentScans bounds the worker pool size.
	DefaultMaxConcurrentScans = 5
	// DefaultMaxRetries caps scan-failure retries per job.
	DefaultMaxRetries = 3
	// DefaultProxyRetryBudget caps proxy-unavailability requeues per job.
	DefaultProxyRetryBudget = 2
	// DefaultBackoffBase is the base delay for exponential retry backoff.
	DefaultBackoffBase = time.Second
	// DefaultBackoffMax caps the retry backoff delay.
	DefaultBackoffMax = 5 * time.Minute
	// DefaultRateLimitRequeueDelay parks a rate-limited job before re-dispatch.
	DefaultRateLimitRequeueDelay = time.Second
	// DefaultJobDeadline caps a job's total lifetime including retries.
	DefaultJobDeadline = 10 * time.Minute
	// DefaultRetention is how long terminal jobs are kept for status reads.
	DefaultRetention = 24 * time.Hour
)

// Options configure a Scheduler. Zero values fall back to defaults, except
// JanitorInterval which disables retention pruning when zero.
type Options struct {
	MaxConcurrentScans    int
	MaxRetries            int
	ProxyRetryBudget      int
	BackoffBase           time.Duration
	BackoffMax            time.Duration
	RateLimitRequeueDelay time.Duration
	JobDeadline           time.Duration
	Retention             time.Duration
	JanitorInterval       time.Duration
}

func (o Options) withDefaults() Options {
	if o.MaxConcurrentScans <= 0 {
		o.MaxConcurrentScans = DefaultMaxConcurrentScans
	}
	if o.MaxRetries <= 0 {
		o.MaxRetries = DefaultMaxRetries
	}
	if o.ProxyRetryBudget <= 0 {
		o.ProxyRetryBudget = DefaultProxyRetryBudget
	}
	if o.BackoffBase <= 0 {
		o.BackoffBase = DefaultBackoffBase
	}
	if o.BackoffMax <= 0 {
		o.BackoffMax = DefaultBackoffMax
	}
	if o.RateLimitRequeueDelay <= 0 {
		o.RateLimitRequeueDelay = DefaultRateLimitRequeueDelay
	}
	if o.JobDeadline <= 0 {
		o.JobDeadline = DefaultJobDeadline
	}
	if o.Retention <= 0 {
		o.Retention = DefaultRetention
	}

	return o
}

// Scheduler owns the job queue and all job state. Queue mutation and job
// bookkeeping are serialized by one mutex; only scan execution itself runs in
// parallel across workers.
type Scheduler struct {
	opts Options

	gate     compliance.Gate
	limiter  *ratelimit.DomainRateLimiter
	proxies  *proxypool.Pool
	executor Executor
	builder  *consensus.Builder
	store    storage.ResultStore

	mu    sync.Mutex
	jobs  map[domain.JobID]*domain.ScanJob
	queue *jobQueue

	// wake signals the dispatch loop that the queue changed.
	wake chan struct{}

	now func() time.Time
}

// New constructs a Scheduler with all collaborators injected.
func New(opts Options,
	gate compliance.Gate,
	limiter *ratelimit.DomainRateLimiter,
	proxies *proxypool.Pool,
	executor Executor,
	builder *consensus.Builder,
	store storage.ResultStore) *Scheduler {
	return &Scheduler{
		opts:     opts.withDefaults(),
		gate:     gate,
		limiter:  limiter,
		proxies:  proxies,
		executor: executor,
		builder:  builder,
		store:    store,
		jobs:     make(map[domain.JobID]*domain.ScanJob),
		queue:    newJobQueue(),
		wake:     make(chan struct{}, 1),
		now:      time.Now,
	}
}

// SubmitBatch enqueues one job per target and returns their IDs immediately.
// Targets missing a domain or URL reject the whole batch.
func (s *Scheduler) SubmitBatch(ctx context.Context, targets []domain.ScanTarget) ([]domain.JobID, error) {
	if len(targets) == 0 {
		return nil, serrors.With(serrors.ErrBadRequest, "empty batch")
	}
	for i, t := range targets {
		if t.Domain == "" || t.URL == "" {
			return nil, serrors.With(serrors.ErrBadRequest, "target %d is missing a domain or url", i)
		}
	}

	now := s.now()
	ids := make([]domain.JobID, 0, len(targets))

	s.mu.Lock()
	for _, t := range targets {
		job := &domain.ScanJob{
			ID:         domain.NewJobID(),
			Target:     t,
			Status:     domain.JobStatusPending,
			EnqueuedAt: now,
			Deadline:   now.Add(s.opts.JobDeadline),
		}
		s.jobs[job.ID] = job
		s.queue.push(job)
		ids = append(ids, job.ID)
		metrics.JobsEnqueued.Inc()
	}
	depth := s.queue.size()
	s.mu.Unlock()

	s.signal()
	logger.Info(ctx, "batch enqueued", zap.Int("jobs", len(ids)), zap.Int("queueDepth", depth))

	return ids, nil
}

// JobStatus returns a snapshot of the job with the given ID.
func (s *Scheduler) JobStatus(_ context.Context, id domain.JobID) (*domain.ScanJob, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	job, ok := s.jobs[id]
	if !ok {
		return nil, serrors.With(serrors.ErrNotFound, "job %s not found", id)
	}
	snapshot := *job

	return &snapshot, nil
}

// Result returns the consensus result for a completed job. Jobs pruned from
// memory by retention fall back to the result store.
func (s *Scheduler) Result(ctx context.Context, id domain.JobID) (*domain.ConsensusResult, error) {
	s.mu.Lock()
	job, ok := s.jobs[id]
	if ok {
		defer s.mu.Unlock()
		switch {
		case job.Status == domain.JobStatusCompleted && job.Results != nil:
			result := *job.Results

			return &result, nil
		case job.Status.Terminal():
			return nil, serrors.With(serrors.ErrConflict, "job %s failed, no result available", id)
		default:
			return nil, serrors.With(serrors.ErrConflict, "job %s is still %s", id, job.Status)
		}
	}
	s.mu.Unlock()

	result, err := s.store.GetResult(ctx, id)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrInternal, err, "could not load result for job %s", id)
	}
	if result == nil {
		return nil, serrors.With(serrors.ErrNotFound, "job %s not found", id)
	}

	return result, nil
}

// Run drives the dispatch loop until ctx is canceled, then waits for running
// workers to drain. Jobs still queued at shutdown stay pending.
func (s *Scheduler) Run(ctx context.Context) {
	slots := make(chan struct{}, s.opts.MaxConcurrentScans)

	var wg sync.WaitGroup
	if s.opts.JanitorInterval > 0 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.janitor(ctx)
		}()
	}

	for {
		select {
		case <-ctx.Done():
			wg.Wait()

			return
		case slots <- struct{}{}:
		}

		job := s.nextReady(ctx)
		if job == nil {
			<-slots
			wg.Wait()

			return
		}

		wg.Add(1)
		go func(job *domain.ScanJob) {
			defer wg.Done()
			defer func() { <-slots }()
			s.dispatch(ctx, job)
		}(job)
	}
}

// nextReady blocks until a dispatchable job is available or ctx is canceled.
func (s *Scheduler) nextReady(ctx context.Context) *domain.ScanJob {
	for {
		s.mu.Lock()
		job := s.queue.pop(s.now())
		var wait time.Duration
		var parked bool
		if job == nil {
			wait, parked = s.queue.nextWake(s.now())
		}
		s.mu.Unlock()

		if job != nil {
			return job
		}

		if !parked {
			select {
			case <-ctx.Done():
				return nil
			case <-s.wake:
			}

			continue
		}

		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()

			return nil
		case <-s.wake:
			timer.Stop()
		case <-timer.C:
		}
	}
}

// dispatch runs the pre-dispatch checks in order (deadline, compliance gate,
// rate limiter, proxy pool) and then executes the scan. Every exit path
// leaves the job either requeued or terminal.
func (s *Scheduler) dispatch(ctx context.Context, job *domain.ScanJob) {
	ctx = logger.WithFields(ctx,
		zap.String("jobID", job.ID.String()),
		zap.String("domain", job.Target.Domain))

	if s.now().After(job.Deadline) {
		s.failJob(ctx, job, domain.JobError{
			Kind:    domain.FailureTimeout,
			Message: "job deadline expired",
		})

		return
	}

	// the gate runs before every dispatch; site policy can change between
	// attempts so denials are never cached
	decision, err := s.gate.Check(ctx, job.Target.Domain)
	if err != nil {
		s.retryOrFail(ctx, job, "", fmt.Sprintf("compliance check failed: %v", err), nil)

		return
	}
	if !decision.Allowed {
		s.failJob(ctx, job, domain.JobError{
			Kind:    domain.FailureComplianceDenied,
			Message: "domain denied by compliance gate",
			Reasons: decision.Reasons,
		})

		return
	}

	if !s.limiter.CanIssue(job.Target.Domain) {
		// a deferral is not an error and costs no retry budget
		metrics.RateLimitDeferrals.Inc()
		logger.Debug(ctx, "domain budget spent, deferring job")
		s.requeueAfter(job, s.opts.RateLimitRequeueDelay)

		return
	}

	proxy, err := s.proxies.Get()
	if err != nil {
		metrics.ProxyUnavailable.Inc()
		s.mu.Lock()
		job.ProxyAttempts++
		attempts := job.ProxyAttempts
		s.mu.Unlock()

		if attempts > s.opts.ProxyRetryBudget {
			s.failJob(ctx, job, domain.JobError{
				Kind:    domain.FailureProxyUnavailable,
				Message: "no healthy proxy available within the proxy retry budget",
			})

			return
		}
		logger.Info(ctx, "no healthy proxy, requeueing", zap.Int("proxyAttempts", attempts))
		s.requeueAfter(job, s.backoff(attempts))

		return
	}

	// TryIssue is the authoritative, atomic spend; the CanIssue pre-check
	// above can race with a concurrent worker for the same domain
	if !s.limiter.TryIssue(job.Target.Domain) {
		metrics.RateLimitDeferrals.Inc()
		s.requeueAfter(job, s.opts.RateLimitRequeueDelay)

		return
	}

	s.mu.Lock()
	job.Status = domain.JobStatusRunning
	job.StartTime = s.now()
	job.AssignedNode = proxy.Address
	s.mu.Unlock()

	runCtx, cancel := context.WithDeadline(ctx, job.Deadline)
	defer cancel()

	results, err := s.executor.Execute(runCtx, job.Target.URL, proxy)
	if err != nil {
		if s.now().After(job.Deadline) {
			// deadline expiry is terminal regardless of remaining retries
			s.failJob(ctx, job, domain.JobError{
				Kind:    domain.FailureTimeout,
				Message: "job deadline expired during scan",
				Proxy:   proxy.Address,
				Engines: engineNames(results),
			})

			return
		}
		if ctx.Err() != nil {
			// shutdown in flight: the job goes back untouched for the next run
			s.requeueAfter(job, 0)

			return
		}

		s.proxies.MarkUnhealthy(proxy.Address)
		s.retryOrFail(ctx, job, proxy.Address, err.Error(), engineNames(results))

		return
	}

	result := s.builder.Build(job.Target.URL, results)
	if err := s.store.PutResult(ctx, job.ID, result); err != nil {
		// the copy on the job still serves reads until retention prunes it
		logger.Error(ctx, "could not persist consensus result", zap.Error(err))
	}
	s.proxies.MarkHealthy(proxy.Address)
	s.completeJob(ctx, job, result)
}

// retryOrFail spends one scan-failure retry or fails the job when the budget
// is exhausted.
func (s *Scheduler) retryOrFail(ctx context.Context, job *domain.ScanJob, proxy, msg string, engines []string) {
	s.mu.Lock()
	if job.RetryCount >= s.opts.MaxRetries {
		s.mu.Unlock()
		s.failJob(ctx, job, domain.JobError{
			Kind:    domain.FailureScanFailed,
			Message: msg,
			Proxy:   proxy,
			Engines: engines,
		})

		return
	}
	job.RetryCount++
	retries := job.RetryCount
	s.mu.Unlock()

	logger.Info(ctx, "scan attempt failed, requeueing",
		zap.Int("retryCount", retries),
		zap.String("error", msg))
	s.requeueAfter(job, s.backoff(retries))
}

// requeueAfter parks the job for delay (or requeues it immediately) and
// wakes the dispatch loop.
func (s *Scheduler) requeueAfter(job *domain.ScanJob, delay time.Duration) {
	s.mu.Lock()
	job.Status = domain.JobStatusPending
	job.AssignedNode = ""
	if delay <= 0 {
		s.queue.push(job)
	} else {
		s.queue.pushAfter(job, s.now().Add(delay))
	}
	s.mu.Unlock()

	s.signal()
}

func (s *Scheduler) completeJob(ctx context.Context, job *domain.ScanJob, result domain.ConsensusResult) {
	s.mu.Lock()
	job.Status = domain.JobStatusCompleted
	job.Results = &result
	job.EndTime = s.now()
	elapsed := job.EndTime.Sub(job.EnqueuedAt)
	s.mu.Unlock()

	metrics.JobsCompleted.Inc()
	metrics.JobDuration.Observe(elapsed.Seconds())
	logger.Info(ctx, "job completed",
		zap.Duration("elapsed", elapsed),
		zap.Int("violations", result.Statistics.TotalViolations))
}

func (s *Scheduler) failJob(ctx context.Context, job *domain.ScanJob, jobErr domain.JobError) {
	s.mu.Lock()
	job.Status = domain.JobStatusFailed
	job.Error = &jobErr
	job.EndTime = s.now()
	elapsed := job.EndTime.Sub(job.EnqueuedAt)
	s.mu.Unlock()

	metrics.JobsFailed.WithLabelValues(string(jobErr.Kind)).Inc()
	metrics.JobDuration.Observe(elapsed.Seconds())
	logger.Warn(ctx, "job failed",
		zap.String("kind", string(jobErr.Kind)),
		zap.String("error", jobErr.Message))
}

// janitor prunes terminal jobs and stored results past the retention window.
func (s *Scheduler) janitor(ctx context.Context) {
	ticker := time.NewTicker(s.opts.JanitorInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cutoff := s.now().Add(-s.opts.Retention)

			s.mu.Lock()
			for id, job := range s.jobs {
				if job.Status.Terminal() && !job.EndTime.IsZero() && job.EndTime.Before(cutoff) {
					delete(s.jobs, id)
				}
			}
			s.mu.Unlock()

			deleted, err := s.store.DeleteResultsBefore(ctx, cutoff)
			if err != nil {
				logger.Error(ctx, "could not prune stored results", zap.Error(err))
			} else if deleted > 0 {
				logger.Info(ctx, "pruned expired results", zap.Int64("deleted", deleted))
			}
		}
	}
}

// backoff returns the delay before attempt n, growing exponentially from the
// base and capped at the maximum.
func (s *Scheduler) backoff(attempt int) time.Duration {
	if attempt <= 0 {
		return s.opts.BackoffBase
	}
	d := s.opts.BackoffBase << uint(attempt-1) //nolint: gosec
	if d <= 0 || d > s.opts.BackoffMax {
		d = s.opts.BackoffMax
	}

	return d
}

// signal wakes the dispatch loop without blocking.
func (s *Scheduler) signal() {
	select {
	case s.wake <- struct{}{}:
	default:
	}
}

func engineNames(results []domain.EngineResult) []string {
	if len(results) == 0 {
		return nil
	}
	names := make([]string, 0, len(results))
	for _, r := range results {
		names = append(names, string(r.Engine))
	}

	return names
}
