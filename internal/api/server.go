// Package api configures and exposes the HTTP server, routes,
// metrics, docs and related middleware for the scan grid service.
package api

import (
	_ "embed"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/swaggest/swgui/v5emb"
	"go.opentelemetry.io/otel/attribute"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"

	"gridscan/internal/api/handler/v1handler"
	"gridscan/internal/config"
	"gridscan/pkg/controller"
)

// v1Spec contains the embedded OpenAPI specification for version 1 of the API.
//
//go:embed specs/v1.yaml
var v1Spec []byte

// Options holds configuration for the HTTP server and its dependencies.
// It is typically created from a config.Config via NewOptions.
// All durations are used to configure server timeouts, and zero values
// should be considered as using the defaults provided by net/http where applicable.
type Options struct {
	// JWTSecret is the HMAC secret validating v1 bearer tokens.
	JWTSecret string

	// Addr is the TCP address the server listens on, e.g. ":8080".
	Addr string
	// ReadTimeout is the maximum duration for reading the entire request, including the body.
	ReadTimeout time.Duration
	// ReadHeaderTimeout is the amount of time allowed to read request headers.
	ReadHeaderTimeout time.Duration
	// WriteTimeout is the maximum duration before timing out writes of the response.
	WriteTimeout time.Duration
	// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled.
	IdleTimeout time.Duration
	// RequestTimeout is the global timeout applied via http.TimeoutHandler for handling requests.
	RequestTimeout time.Duration
	// MaxHeaderBytes controls the maximum number of bytes the server
	// will read parsing the request header's keys and values, including the request line.
	MaxHeaderBytes int
	// MetricsPath is the HTTP path at which Prometheus metrics are served.
	MetricsPath string
}

// NewOptions constructs an Options value from the provided application configuration.
// It maps HTTP server-related settings from config.Config to the Options used by the API server.
func NewOptions(cfg *config.Config) Options {
	return Options{
		JWTSecret: cfg.JWT.Secret,

		Addr:              cfg.HTTP.Addr,
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
		RequestTimeout:    cfg.HTTP.RequestTimeout,
		MaxHeaderBytes:    cfg.HTTP.MaxHeaderBytes,
		MetricsPath:       cfg.HTTP.MetricsPath,
	}
}

type Deps struct {
	v1handler.Deps
}

// NewServer wires up and returns a configured *http.Server using the provided Options.
// It sets up:
// - Prometheus metrics endpoint (MetricsPath)
// - OpenTelemetry metrics exporter (Prometheus)
// - Embedded OpenAPI v1 spec and Swagger UI
// - Authenticated v1 API routes with request metrics
// - pprof endpoints for profiling
// It also wraps the mux with recovery, CORS and logging middlewares and applies a request timeout.
func NewServer(deps Deps, opts Options) (*http.Server, error) {
	mux := http.NewServeMux()

	// prometheus metrics server
	mux.Handle(opts.MetricsPath, promhttp.Handler())

	// otel
	exp, err := otelprom.New(otelprom.WithRegisterer(prometheus.DefaultRegisterer))
	if err != nil {
		return nil, fmt.Errorf("could not create otel exporter: %w", err)
	}
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(exp))

	// v1 specs file
	mux.HandleFunc("/specs/v1.yaml", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		_, _ = w.Write(v1Spec)
	})
	// v1 api swagger playground
	mux.Handle("/v1/docs/", v5emb.New(
		"Grid Scan Service",
		"/specs/v1.yaml",
		"/v1/docs/",
	))
	// v1 api
	v1Routes := http.Handler(v1handler.New(deps.Deps).Routes())
	v1Routes = v1handler.BearerAuth(opts.JWTSecret)(v1Routes)
	v1Routes, err = withRequestMetrics(mp, v1Routes)
	if err != nil {
		return nil, fmt.Errorf("could not create request metrics: %w", err)
	}
	mux.Handle("/v1/", http.StripPrefix("/v1", v1Routes))

	// pprof
	mux.Handle("/debug/pprof/", controller.PprofMux())

	// panic recovery
	handler := controller.WithRecover(mux)

	// cors
	handler = controller.WithCORS(handler)

	// logger
	handler = controller.WithLogger(handler)

	return &http.Server{
		Addr:              opts.Addr,
		Handler:           http.TimeoutHandler(handler, opts.RequestTimeout, `{"error":"request timed out"}`),
		ReadTimeout:       opts.ReadTimeout,
		ReadHeaderTimeout: opts.ReadHeaderTimeout,
		WriteTimeout:      opts.WriteTimeout,
		IdleTimeout:       opts.IdleTimeout,
		MaxHeaderBytes:    opts.MaxHeaderBytes,
	}, nil
}

// withRequestMetrics records per-request count and latency through the otel
// metric API, exported via the Prometheus reader configured in NewServer.
func withRequestMetrics(mp metric.MeterProvider, next http.Handler) (http.Handler, error) {
	meter := mp.Meter("gridscan/internal/api")

	requests, err := meter.Int64Counter("http.server.request.count",
		metric.WithDescription("Number of handled HTTP requests."))
	if err != nil {
		return nil, fmt.Errorf("could not create request counter: %w", err)
	}
	latency, err := meter.Float64Histogram("http.server.request.duration",
		metric.WithDescription("HTTP request handling duration."),
		metric.WithUnit("s"))
	if err != nil {
		return nil, fmt.Errorf("could not create request histogram: %w", err)
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)

		set := metric.WithAttributeSet(requestAttributes(r))
		requests.Add(r.Context(), 1, set)
		latency.Record(r.Context(), time.Since(start).Seconds(), set)
	}), nil
}

func requestAttributes(r *http.Request) attribute.Set {
	return attribute.NewSet(
		attribute.String("http.request.method", r.Method),
		attribute.String("url.path", r.URL.Path),
	)
}
