package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"
)

// Config represents the application configuration structure.
// It contains settings for the environment, ops HTTP server, database
// connection, provider clients, lifecycle timing and graceful shutdown behavior.
type Config struct {
	// Environment specifies the current running environment (development, production, etc.)
	Environment string `env:"ENVIRONMENT" env-default:"development" validate:"oneof=development production" yaml:"environment"` //nolint: lll

	// HTTP contains the ops HTTP server configuration
	HTTP struct {
		// Addr is the address and port the HTTP server will listen on
		Addr string `env:"HTTP_ADDR" env-default:":8080" validate:"required" yaml:"addr"`
		// ReadHeaderTimeout is the amount of time allowed to read request headers
		ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" env-default:"10s" yaml:"readHeaderTimeout"`
		// WriteTimeout is the maximum duration before timing out writes of the response.
		// Profiling endpoints need it to be longer than the profile duration.
		WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" env-default:"2m" yaml:"writeTimeout"`
		// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled
		IdleTimeout time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"2m" yaml:"idleTimeout"`
		// MetricsPath defines the URL path where metrics are exposed
		MetricsPath string `env:"HTTP_METRICS_PATH" env-default:"/metrics" validate:"startswith=/" yaml:"metricsPath"`
		// EnablePprof exposes /debug/pprof/ on the ops server
		EnablePprof bool `env:"HTTP_ENABLE_PPROF" env-default:"false" yaml:"enablePprof"`
	} `yaml:"http"`

	// Database contains all database connection related configurations
	Database struct {
		// Username for database authentication
		Username string `env:"DATABASE_USERNAME" env-default:"myuser" yaml:"username"`
		// Password for database authentication
		Password string `env:"DATABASE_PASSWORD" env-default:"mypassword" yaml:"password"`
		// Host is the database server hostname or IP address
		Host string `env:"DATABASE_HOST" env-default:"localhost" validate:"required" yaml:"host"`
		// Port is the database server port number
		Port int `env:"DATABASE_PORT" env-default:"5432" validate:"min=1,max=65535" yaml:"port"`
		// SslMode defines the SSL mode for the database connection
		SslMode string `env:"DATABASE_SSL_MODE" env-default:"disable" yaml:"sslMode"`
		// DatabaseName is the name of the database to connect to
		DatabaseName string `env:"DATABASE_NAME" env-default:"launcher" validate:"required" yaml:"name"`
		// MaxOpenConnections limits the number of open connections to the database
		MaxOpenConnections int `env:"DATABASE_MAX_OPEN_CONNECTIONS" env-default:"10" yaml:"maxOpenConnections"`
		// MaxIdleConnections limits the number of connections in the idle connection pool
		MaxIdleConnections int `env:"DATABASE_MAX_IDLE_CONNECTIONS" env-default:"8" yaml:"maxIdleConnections"`
		// ConnMaxLifetime is the maximum amount of time a connection may be reused
		ConnMaxLifetime time.Duration `env:"DATABASE_CONNECTION_MAX_LIFETIME" env-default:"3m" yaml:"connMaxLifetime"`
		// ConnMaxIdleTime is the maximum amount of time a connection may be idle
		ConnMaxIdleTime time.Duration `env:"DATABASE_CONNECTION_MAX_IDLE_TIME" env-default:"3m" yaml:"connMaxIdleTime"`
	} `yaml:"database"`

	AWS struct {
		// Region of the Route53 and CloudFront clients
		Region string `env:"AWS_REGION" env-default:"us-east-1" validate:"required" yaml:"region"`
		// CertificateRegion must be us-east-1 for CloudFront to accept the certificate
		CertificateRegion string `env:"AWS_CERTIFICATE_REGION" env-default:"us-east-1" validate:"eq=us-east-1" yaml:"certificateRegion"` //nolint: lll
		// Route53RateLimit is the number of Route53 requests per second shared by all workers
		Route53RateLimit float64 `env:"AWS_ROUTE53_RATE_LIMIT" env-default:"5" validate:"gt=0" yaml:"route53RateLimit"`
		// RecordTTL is the TTL in seconds of validation and literal address records
		RecordTTL int64 `env:"AWS_RECORD_TTL" env-default:"300" validate:"min=1" yaml:"recordTTL"`
	} `yaml:"aws"`

	Resolver struct {
		// Nameservers are the public DNS servers (host:port) used to verify delegation
		Nameservers []string `env:"RESOLVER_NAMESERVERS" env-default:"1.1.1.1:53,8.8.8.8:53" validate:"min=1,dive,hostname_port" yaml:"nameservers"` //nolint: lll
		// Timeout bounds each query to a public nameserver
		Timeout time.Duration `env:"RESOLVER_TIMEOUT" env-default:"5s" yaml:"timeout"`
	} `yaml:"resolver"`

	Distribution struct {
		// OriginDomain is the bucket endpoint hostname serving every site
		OriginDomain string `env:"DISTRIBUTION_ORIGIN_DOMAIN" validate:"required,hostname_rfc1123" yaml:"originDomain"`
		// PathPrefix is the bucket prefix holding the per-domain site directories
		PathPrefix string `env:"DISTRIBUTION_PATH_PREFIX" env-default:"sites" yaml:"pathPrefix"`
		// PriceClass limits the edge locations serving the site
		PriceClass string `env:"DISTRIBUTION_PRICE_CLASS" env-default:"PriceClass_100" validate:"oneof=PriceClass_100 PriceClass_200 PriceClass_All" yaml:"priceClass"` //nolint: lll
		// CachePolicyID is the cache policy of the default cache behavior
		CachePolicyID string `env:"DISTRIBUTION_CACHE_POLICY_ID" env-default:"658327ea-f89d-4fab-a63d-7e88639e58f6" yaml:"cachePolicyId"` //nolint: lll
		// DefaultRootObject is served for requests to "/"
		DefaultRootObject string `env:"DISTRIBUTION_DEFAULT_ROOT_OBJECT" env-default:"index.html" yaml:"defaultRootObject"`
	} `yaml:"distribution"`

	Lifecycle struct {
		// CertificatePollInterval is the delay between certificate status checks
		CertificatePollInterval time.Duration `env:"LIFECYCLE_CERTIFICATE_POLL_INTERVAL" env-default:"10s" validate:"gt=0" yaml:"certificatePollInterval"` //nolint: lll
		// ValidationRecordTimeout bounds the wait for the validation records to be available
		ValidationRecordTimeout time.Duration `env:"LIFECYCLE_VALIDATION_RECORD_TIMEOUT" env-default:"5m" validate:"gt=0" yaml:"validationRecordTimeout"` //nolint: lll
		// CertificateTimeout bounds the wait for the certificate to be issued
		CertificateTimeout time.Duration `env:"LIFECYCLE_CERTIFICATE_TIMEOUT" env-default:"45m" validate:"gt=0" yaml:"certificateTimeout"` //nolint: lll
		// DistributionPollInterval is the delay between distribution status checks
		DistributionPollInterval time.Duration `env:"LIFECYCLE_DISTRIBUTION_POLL_INTERVAL" env-default:"30s" validate:"gt=0" yaml:"distributionPollInterval"` //nolint: lll
		// DistributionTimeout bounds the wait for a disabled distribution to deploy
		DistributionTimeout time.Duration `env:"LIFECYCLE_DISTRIBUTION_TIMEOUT" env-default:"40m" validate:"gt=0" yaml:"distributionTimeout"` //nolint: lll
		// RollbackOnFailure deletes the resources created by a failed launch
		RollbackOnFailure bool `env:"LIFECYCLE_ROLLBACK_ON_FAILURE" env-default:"false" yaml:"rollbackOnFailure"`
		// RevertTimeout bounds the write that releases a domain after a failed operation
		RevertTimeout time.Duration `env:"LIFECYCLE_REVERT_TIMEOUT" env-default:"30s" validate:"gt=0" yaml:"revertTimeout"`
	} `yaml:"lifecycle"`

	Worker struct {
		// MaxWorkers is the number of lifecycle jobs processed concurrently
		MaxWorkers int `env:"WORKER_MAX_WORKERS" env-default:"10" validate:"min=1" yaml:"maxWorkers"`
		// JobTimeout bounds a single launch or unlaunch job
		JobTimeout time.Duration `env:"WORKER_JOB_TIMEOUT" env-default:"2h" validate:"gt=0" yaml:"jobTimeout"`
	} `yaml:"worker"`

	// GracefulShutdownTimeout is the maximum duration to wait for ongoing requests to complete during shutdown
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_TIMEOUT" env-default:"10s" yaml:"gracefulShutdownTimeout"` //nolint: lll
}

// Load receives the path for yaml config file and returns a filled and
// validated Config struct.
func Load(configPath string) (*Config, error) {
	var cfg Config
	err := cleanenv.ReadConfig(configPath, &cfg)
	if err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks the loaded values against the validate struct tags.
func (c *Config) Validate() error {
	if err := validator.New(validator.WithRequiredStructEnabled()).Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	return nil
}
