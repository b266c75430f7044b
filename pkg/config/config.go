package config

import (
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds all configuration for the vendor portal backend.
// Configuration can come from YAML file (config.yaml) or environment variables.
// Environment variables always override YAML values for fields that support both.
// Secrets (the database password) must only come from environment variables.
type Config struct {
	// Server configuration
	BindAddr string `yaml:"bind_addr" env:"BIND_ADDR" env-default:"0.0.0.0"`
	Port     string `yaml:"port" env:"PORT" env-default:"5000"`
	Env      string `yaml:"env" env:"ENVIRONMENT" env-default:"development"`
	Version  string `yaml:"-"` // Set at load time, not from config

	// FrontendURL is an additional allowed CORS origin (the deployed SPA).
	FrontendURL string `yaml:"frontend_url" env:"FRONTEND_URL" env-default:""`

	// ShutdownGraceSeconds is how long in-flight requests may drain on
	// SIGTERM/SIGINT before the process force-exits with status 1.
	ShutdownGraceSeconds int `yaml:"shutdown_grace_seconds" env:"SHUTDOWN_GRACE_SECONDS" env-default:"10"`

	// Database configuration (SQL Server)
	Database DatabaseConfig `yaml:"database"`

	// Rate limiting configuration
	RateLimit RateLimitConfig `yaml:"rate_limit"`
}

// DatabaseConfig holds SQL Server connection configuration.
type DatabaseConfig struct {
	Server   string `yaml:"server" env:"DB_SERVER" env-default:"localhost"`
	Port     int    `yaml:"port" env:"DB_PORT" env-default:"1433"`
	User     string `yaml:"user" env:"DB_USER" env-default:""`
	Password string `yaml:"-" env:"DB_PASSWORD"` // Secret - not in YAML
	Database string `yaml:"database" env:"DB_DATABASE" env-default:"VOS_DB"`

	Encrypt                bool `yaml:"encrypt" env:"DB_ENCRYPT" env-default:"false"`
	TrustServerCertificate bool `yaml:"trust_server_certificate" env:"DB_TRUST_SERVER_CERTIFICATE" env-default:"false"`

	// Pool sizing. The pool is the only backpressure mechanism in the
	// system; queries queue at the pool when it is exhausted.
	MaxOpenConns       int `yaml:"max_open_conns" env:"DB_MAX_OPEN_CONNS" env-default:"10"`
	MaxIdleConns       int `yaml:"max_idle_conns" env:"DB_MAX_IDLE_CONNS" env-default:"2"`
	ConnMaxIdleSeconds int `yaml:"conn_max_idle_seconds" env:"DB_CONN_MAX_IDLE_SECONDS" env-default:"30"`
}

// RateLimitConfig holds the per-IP request ceilings applied before routing.
type RateLimitConfig struct {
	// WindowMinutes is the measurement window for both ceilings.
	WindowMinutes int `yaml:"window_minutes" env:"RATE_LIMIT_WINDOW_MINUTES" env-default:"15"`
	// MaxRequests is the blanket per-IP ceiling per window.
	MaxRequests int `yaml:"max_requests" env:"RATE_LIMIT_MAX_REQUESTS" env-default:"100"`
	// MaxAuthRequests is the stricter per-IP ceiling for login endpoints.
	MaxAuthRequests int `yaml:"max_auth_requests" env:"RATE_LIMIT_MAX_AUTH_REQUESTS" env-default:"5"`
}

// Window returns the measurement window as a duration.
func (r RateLimitConfig) Window() time.Duration {
	return time.Duration(r.WindowMinutes) * time.Minute
}

// Load reads configuration from config.yaml with environment variable
// overrides. When config.yaml does not exist, configuration comes from the
// environment alone. The version parameter is injected at build time.
func Load(version string) (*Config, error) {
	cfg := &Config{
		Version: version,
	}

	if _, err := os.Stat("config.yaml"); err == nil {
		if err := cleanenv.ReadConfig("config.yaml", cfg); err != nil {
			return nil, fmt.Errorf("failed to read config.yaml: %w", err)
		}
	} else {
		if err := cleanenv.ReadEnv(cfg); err != nil {
			return nil, fmt.Errorf("failed to read environment: %w", err)
		}
	}

	if err := cfg.Database.Validate(); err != nil {
		return nil, fmt.Errorf("invalid database configuration: %w", err)
	}

	return cfg, nil
}

// IsDevelopment reports whether the server runs in development mode.
// Development mode renders full error diagnostics to clients.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development" || c.Env == "local"
}

// Validate checks that required database fields are present.
func (c *DatabaseConfig) Validate() error {
	if c.Server == "" {
		return fmt.Errorf("server is required")
	}
	if c.Database == "" {
		return fmt.Errorf("database is required")
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Port)
	}
	return nil
}

// ConnectionString returns a sqlserver:// connection URL for the
// microsoft/go-mssqldb driver.
func (c *DatabaseConfig) ConnectionString() string {
	query := url.Values{}
	query.Add("database", c.Database)

	if c.Encrypt {
		query.Add("encrypt", "true")
	} else {
		query.Add("encrypt", "false")
	}
	if c.TrustServerCertificate {
		query.Add("TrustServerCertificate", "true")
	}

	u := &url.URL{
		Scheme:   "sqlserver",
		Host:     fmt.Sprintf("%s:%d", c.Server, c.Port),
		RawQuery: query.Encode(),
	}
	if c.User != "" {
		u.User = url.UserPassword(c.User, c.Password)
	}
	return u.String()
}
