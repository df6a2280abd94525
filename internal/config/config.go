package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config represents the application configuration structure.
// It contains settings for the environment, HTTP server, database connection,
// the scan grid, and graceful shutdown behavior.
type Config struct {
	// Environment specifies the current running environment (development, production, etc.)
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`

	// HTTP contains all HTTP server related configurations
	HTTP struct {
		// Addr is the address and port the HTTP server will listen on
		Addr string `env:"HTTP_ADDR" env-default:":8080" yaml:"addr"`
		// ReadTimeout is the maximum duration for reading the entire request, including the body
		ReadTimeout time.Duration `env:"HTTP_READ_TIMEOUT" env-default:"1m" yaml:"readTimeout"`
		// ReadHeaderTimeout is the amount of time allowed to read request headers
		ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" env-default:"10s" yaml:"readHeaderTimeout"`
		// WriteTimeout is the maximum duration before timing out writes of the response
		WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" env-default:"2m" yaml:"writeTimeout"`
		// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled
		IdleTimeout time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"2m" yaml:"idleTimeout"`
		// RequestTimeout is the maximum time allowed for processing a single request
		RequestTimeout time.Duration `env:"HTTP_REQUEST_TIMEOUT" env-default:"10s" yaml:"requestTimeout"`
		// MaxHeaderBytes controls the maximum number of bytes the server will read parsing the request header
		MaxHeaderBytes int `env:"HTTP_MAX_HEADER_BYTES" env-default:"0" yaml:"maxHeaderBytes"`
		// MetricsPath defines the URL path where metrics are exposed
		MetricsPath string `env:"HTTP_METRICS_PATH" env-default:"/metrics" yaml:"metricsPath"`
	} `yaml:"http"`

	// Database contains all database connection related configurations
	Database struct {
		// Enabled toggles result persistence; when false an in-memory store is used
		Enabled bool `env:"DATABASE_ENABLED" env-default:"false" yaml:"enabled"`
		// Username for database authentication
		Username string `env:"DATABASE_USERNAME" env-default:"myuser" yaml:"username"`
		// Password for database authentication
		Password string `env:"DATABASE_PASSWORD" env-default:"mypassword" yaml:"password"`
		// Host is the database server hostname or IP address
		Host string `env:"DATABASE_HOST" env-default:"localhost" yaml:"host"`
		// Port is the database server port number
		Port int `env:"DATABASE_PORT" env-default:"5432" yaml:"port"`
		// SslMode defines the SSL mode for the database connection
		SslMode string `env:"DATABASE_SSL_MODE" env-default:"disable" yaml:"sslMode"`
		// DatabaseName is the name of the database to connect to
		DatabaseName string `env:"DATABASE_NAME" env-default:"gridscan" yaml:"name"`
		// MaxOpenConnections limits the number of open connections to the database
		MaxOpenConnections int `env:"DATABASE_MAX_OPEN_CONNECTIONS" env-default:"10" yaml:"maxOpenConnections"`
		// MaxIdleConnections limits the number of connections in the idle connection pool
		MaxIdleConnections int `env:"DATABASE_MAX_IDLE_CONNECTIONS" env-default:"8" yaml:"maxIdleConnections"`
		// ConnMaxLifetime is the maximum amount of time a connection may be reused
		ConnMaxLifetime time.Duration `env:"DATABASE_CONNECTION_MAX_LIFETIME" env-default:"3m" yaml:"connMaxLifetime"`
		// ConnMaxIdleTime is the maximum amount of time a connection may be idle
		ConnMaxIdleTime time.Duration `env:"DATABASE_CONNECTION_MAX_IDLE_TIME" env-default:"3m" yaml:"connMaxIdleTime"`
	} `yaml:"database"`

	// Grid contains the scheduler and executor configurations
	Grid struct {
		// MaxConcurrentScans bounds how many jobs run at once
		MaxConcurrentScans int `env:"GRID_MAX_CONCURRENT_SCANS" env-default:"5" yaml:"maxConcurrentScans"`
		// MaxRetries caps scan-failure retries per job
		MaxRetries int `env:"GRID_MAX_RETRIES" env-default:"3" yaml:"maxRetries"`
		// ProxyRetryBudget caps proxy-unavailability requeues per job
		ProxyRetryBudget int `env:"GRID_PROXY_RETRY_BUDGET" env-default:"2" yaml:"proxyRetryBudget"`
		// BackoffBase is the base delay for exponential retry backoff
		BackoffBase time.Duration `env:"GRID_BACKOFF_BASE" env-default:"1s" yaml:"backoffBase"`
		// BackoffMax caps the retry backoff delay
		BackoffMax time.Duration `env:"GRID_BACKOFF_MAX" env-default:"5m" yaml:"backoffMax"`
		// RateLimitRequeueDelay is how long a rate-limited job is parked before re-dispatch
		RateLimitRequeueDelay time.Duration `env:"GRID_RATE_LIMIT_REQUEUE_DELAY" env-default:"1s" yaml:"rateLimitRequeueDelay"` //nolint: lll
		// JobDeadline caps a job's total lifetime including retries
		JobDeadline time.Duration `env:"GRID_JOB_DEADLINE" env-default:"10m" yaml:"jobDeadline"`
		// EngineTimeout caps a single engine scan call
		EngineTimeout time.Duration `env:"GRID_ENGINE_TIMEOUT" env-default:"60s" yaml:"engineTimeout"`
		// Retention is how long terminal jobs and stored results are kept
		Retention time.Duration `env:"GRID_RETENTION" env-default:"24h" yaml:"retention"`
		// JanitorInterval is how often expired jobs and results are pruned
		JanitorInterval time.Duration `env:"GRID_JANITOR_INTERVAL" env-default:"10m" yaml:"janitorInterval"`
	} `yaml:"grid"`

	// RateLimit contains the per-domain crawl etiquette configurations
	RateLimit struct {
		// MaxScansPerDomain is the issuance ceiling per domain per window
		MaxScansPerDomain int `env:"RATE_LIMIT_MAX_SCANS_PER_DOMAIN" env-default:"5" yaml:"maxScansPerDomain"`
		// Window is the budget window
		Window time.Duration `env:"RATE_LIMIT_WINDOW" env-default:"1h" yaml:"window"`
		// MinInterval is the minimum delay between requests to the same domain
		MinInterval time.Duration `env:"RATE_LIMIT_MIN_INTERVAL" env-default:"1s" yaml:"minInterval"`
	} `yaml:"rateLimit"`

	// Proxy contains the egress proxy pool configurations
	Proxy struct {
		// Addresses lists the egress proxy URLs available to the pool
		Addresses []string `env:"PROXY_ADDRESSES" yaml:"addresses"`
		// HealInterval is how often unhealthy proxies are re-checked
		HealInterval time.Duration `env:"PROXY_HEAL_INTERVAL" env-default:"30s" yaml:"healInterval"`
		// HealCooldown is how long a proxy stays out of rotation before re-admission
		HealCooldown time.Duration `env:"PROXY_HEAL_COOLDOWN" env-default:"5m" yaml:"healCooldown"`
	} `yaml:"proxy"`

	// Engines contains the engine-runner endpoint configurations
	Engines struct {
		// AxeURL is the axe engine-runner base URL
		AxeURL string `env:"ENGINES_AXE_URL" env-default:"http://localhost:7001" yaml:"axeUrl"`
		// Pa11yURL is the pa11y engine-runner base URL
		Pa11yURL string `env:"ENGINES_PA11Y_URL" env-default:"http://localhost:7002" yaml:"pa11yUrl"`
		// WaveURL is the wave engine-runner base URL
		WaveURL string `env:"ENGINES_WAVE_URL" env-default:"http://localhost:7003" yaml:"waveUrl"`
		// LighthouseURL is the lighthouse engine-runner base URL
		LighthouseURL string `env:"ENGINES_LIGHTHOUSE_URL" env-default:"http://localhost:7004" yaml:"lighthouseUrl"`
	} `yaml:"engines"`

	// Compliance contains the scan denylist configurations
	Compliance struct {
		// Denylist holds entries of the form "domain=reason"
		Denylist []string `env:"COMPLIANCE_DENYLIST" yaml:"denylist"`
	} `yaml:"compliance"`

	// JWT contains the API authentication configurations
	JWT struct {
		// Secret is the HS256 signing secret for API tokens
		Secret string `env:"JWT_SECRET" env-default:"change-me" yaml:"secret"`
	} `yaml:"jwt"`

	// GracefulShutdownTimeout is the maximum duration to wait for ongoing requests to complete during shutdown
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_TIMEOUT" env-default:"10s" yaml:"gracefulShutdownTimeout"` //nolint: lll
}

// Load receives the path for yaml config file and returns a filled Config struct.
func Load(configPath string) (*Config, error) {
	var cfg Config
	err := cleanenv.ReadConfig(configPath, &cfg)
	if err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	return &cfg, nil
}
