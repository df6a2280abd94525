package grid

import (
	"context"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"gridscan/pkg/domain"
	"gridscan/pkg/engine"
	"gridscan/pkg/logger"
	"gridscan/pkg/metrics"
	"gridscan/pkg/proxypool"
	"gridscan/pkg/serrors"
)

var tracer = otel.Tracer("gridscan/internal/grid") //nolint: gochecknoglobals

// Executor runs all configured engines against a URL for one job attempt.
type Executor interface {
	// Execute returns one EngineResult per configured engine. A non-nil error
	// means no engine succeeded and the attempt counts as a scan failure.
	Execute(ctx context.Context, URL string, proxy proxypool.Proxy) ([]domain.EngineResult, error)
}

// EngineExecutor fans one scan out to every configured engine concurrently.
// Partial failure is tolerated; only a total failure is reported as an error.
type EngineExecutor struct {
	engines []engine.Engine
	timeout time.Duration
}

// NewEngineExecutor constructs an executor over the given engines with the
// provided per-engine timeout.
func NewEngineExecutor(engines []engine.Engine, timeout time.Duration) *EngineExecutor {
	return &EngineExecutor{engines: engines, timeout: timeout}
}

// Execute implements Executor. Each engine gets its own timeout derived from
// ctx; a slow engine fails alone without sinking the whole attempt.
func (e *EngineExecutor) Execute(ctx context.Context, URL string, proxy proxypool.Proxy) ([]domain.EngineResult, error) {
	ctx, span := tracer.Start(ctx, "grid.Execute")
	span.SetAttributes(attribute.String("scan.url", URL), attribute.Int("scan.engines", len(e.engines)))
	defer span.End()

	results := make([]domain.EngineResult, len(e.engines))

	var wg sync.WaitGroup
	for i, eng := range e.engines {
		wg.Add(1)
		go func(i int, eng engine.Engine) {
			defer wg.Done()

			engCtx, cancel := context.WithTimeout(ctx, e.timeout)
			defer cancel()

			start := time.Now()
			res, err := eng.Scan(engCtx, URL, proxy)
			elapsed := time.Since(start)

			if err != nil {
				logger.Warn(ctx, "engine scan failed",
					zap.String("engine", string(eng.Name())),
					zap.String("url", URL),
					zap.Error(err))
				res = domain.EngineResult{
					Engine:          eng.Name(),
					Status:          domain.EngineStatusFailed,
					ExecutionTimeMs: elapsed.Milliseconds(),
					Error:           err.Error(),
				}
			}
			metrics.EngineScanDuration.
				WithLabelValues(string(eng.Name()), string(res.Status)).
				Observe(elapsed.Seconds())

			results[i] = res
		}(i, eng)
	}
	wg.Wait()

	succeeded := 0
	for _, res := range results {
		if res.Status == domain.EngineStatusSuccess {
			succeeded++
		}
	}
	if succeeded == 0 {
		return results, serrors.With(serrors.ErrScanFailed, "all %d engines failed", len(e.engines))
	}

	return results, nil
}

// Ensure EngineExecutor conforms to the Executor interface at compile time.
var _ Executor = (*EngineExecutor)(nil)
