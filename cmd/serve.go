package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"gridscan/internal/api"
	"gridscan/internal/api/handler/v1handler"
	"gridscan/internal/config"
	"gridscan/internal/consensus"
	"gridscan/internal/grid"
	"gridscan/pkg/compliance"
	"gridscan/pkg/domain"
	"gridscan/pkg/engine"
	"gridscan/pkg/engine/remote"
	"gridscan/pkg/logger"
	"gridscan/pkg/proxypool"
	"gridscan/pkg/ratelimit"
	"gridscan/pkg/storage"
	"gridscan/pkg/storage/memory"
)

func setupServer(ctx context.Context, cfg *config.Config, deps api.Deps) func(ctx context.Context) {
	server, err := api.NewServer(deps, api.NewOptions(cfg))
	if err != nil {
		logger.Fatal(ctx, "could not create webserver", zap.Error(err))
	}

	go func() {
		logger.Info(ctx, "starting webserver...", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				logger.Error(ctx, "could not start webserver", zap.Error(err))
			}
		}
	}()

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping webserver...")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error(ctx, "could not stop webserver", zap.Error(err))
		}
	}
}

// getResultStore returns the configured result store: PostgreSQL when the
// database is enabled, an in-memory store otherwise.
func getResultStore(ctx context.Context, cfg *config.Config) (storage.ResultStore, func()) {
	if cfg.Database.Enabled {
		return getPostgres(ctx, cfg)
	}
	logger.Info(ctx, "database disabled, using in-memory result store")

	return memory.New(), func() {}
}

// poolProxies maps configured proxy addresses to pool entries. An empty list
// yields one direct-egress slot so the grid still runs without proxies.
func poolProxies(addresses []string) []proxypool.Proxy {
	if len(addresses) == 0 {
		return []proxypool.Proxy{{}}
	}

	proxies := make([]proxypool.Proxy, 0, len(addresses))
	for _, addr := range addresses {
		proxies = append(proxies, proxypool.Proxy{Address: addr})
	}

	return proxies
}

func serveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts the API server and the scan grid",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer cancel()

			store, closeStore := getResultStore(ctx, cfg)
			defer closeStore()

			pool := proxypool.New(poolProxies(cfg.Proxy.Addresses))
			go pool.Heal(ctx, cfg.Proxy.HealInterval, cfg.Proxy.HealCooldown)

			engines := []engine.Engine{
				remote.New(domain.EngineAxe, cfg.Engines.AxeURL),
				remote.New(domain.EnginePa11y, cfg.Engines.Pa11yURL),
				remote.New(domain.EngineWave, cfg.Engines.WaveURL),
				remote.New(domain.EngineLighthouse, cfg.Engines.LighthouseURL),
			}

			scheduler := grid.New(grid.Options{
				MaxConcurrentScans:    cfg.Grid.MaxConcurrentScans,
				MaxRetries:            cfg.Grid.MaxRetries,
				ProxyRetryBudget:      cfg.Grid.ProxyRetryBudget,
				BackoffBase:           cfg.Grid.BackoffBase,
				BackoffMax:            cfg.Grid.BackoffMax,
				RateLimitRequeueDelay: cfg.Grid.RateLimitRequeueDelay,
				JobDeadline:           cfg.Grid.JobDeadline,
				Retention:             cfg.Grid.Retention,
				JanitorInterval:       cfg.Grid.JanitorInterval,
			},
				compliance.NewStaticGate(cfg.Compliance.Denylist),
				ratelimit.New(ratelimit.Options{
					MaxPerWindow: cfg.RateLimit.MaxScansPerDomain,
					Window:       cfg.RateLimit.Window,
					MinInterval:  cfg.RateLimit.MinInterval,
				}),
				pool,
				grid.NewEngineExecutor(engines, cfg.Grid.EngineTimeout),
				consensus.New(engine.DefaultTaxonomy()),
				store,
			)

			gridDone := make(chan struct{})
			go func() {
				defer close(gridDone)
				logger.Info(ctx, "starting scan grid...",
					zap.Int("maxConcurrentScans", cfg.Grid.MaxConcurrentScans))
				scheduler.Run(ctx)
			}()

			stopWebserver := setupServer(ctx, cfg, api.Deps{
				Deps: v1handler.Deps{Grid: scheduler},
			})

			// wait for interrupt
			<-ctx.Done()
			shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
			defer cancelShutdown()

			stopWebserver(shutdownCtx)

			logger.Info(shutdownCtx, "waiting for running scans to drain...")
			select {
			case <-gridDone:
			case <-shutdownCtx.Done():
				logger.Warn(shutdownCtx, "shutdown timeout elapsed before the grid drained")
			}
		},
	}

	return cmd
}
