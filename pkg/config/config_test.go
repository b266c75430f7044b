package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("test-version")
	require.NoError(t, err)

	assert.Equal(t, "test-version", cfg.Version)
	assert.Equal(t, "5000", cfg.Port)
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, 10, cfg.ShutdownGraceSeconds)

	assert.Equal(t, "localhost", cfg.Database.Server)
	assert.Equal(t, 1433, cfg.Database.Port)
	assert.Equal(t, "VOS_DB", cfg.Database.Database)
	assert.Equal(t, 10, cfg.Database.MaxOpenConns)

	assert.Equal(t, 15, cfg.RateLimit.WindowMinutes)
	assert.Equal(t, 100, cfg.RateLimit.MaxRequests)
	assert.Equal(t, 5, cfg.RateLimit.MaxAuthRequests)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("DB_SERVER", "db.internal")
	t.Setenv("DB_USER", "portal")
	t.Setenv("DB_PASSWORD", "s3cret")
	t.Setenv("RATE_LIMIT_MAX_REQUESTS", "250")

	cfg, err := Load("dev")
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "production", cfg.Env)
	assert.False(t, cfg.IsDevelopment())
	assert.Equal(t, "db.internal", cfg.Database.Server)
	assert.Equal(t, "s3cret", cfg.Database.Password)
	assert.Equal(t, 250, cfg.RateLimit.MaxRequests)
}

func TestLoad_InvalidDatabasePort(t *testing.T) {
	t.Setenv("DB_PORT", "99999")

	_, err := Load("dev")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid port")
}

func TestIsDevelopment(t *testing.T) {
	tests := []struct {
		env  string
		want bool
	}{
		{"development", true},
		{"local", true},
		{"production", false},
		{"staging", false},
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			cfg := &Config{Env: tt.env}
			assert.Equal(t, tt.want, cfg.IsDevelopment())
		})
	}
}

func TestConnectionString(t *testing.T) {
	cfg := &DatabaseConfig{
		Server:   "localhost",
		Port:     1433,
		User:     "sa",
		Password: "p@ss/word",
		Database: "VOS_DB",
		Encrypt:  false,
	}

	got := cfg.ConnectionString()
	assert.Contains(t, got, "sqlserver://sa:")
	assert.Contains(t, got, "@localhost:1433")
	assert.Contains(t, got, "database=VOS_DB")
	assert.Contains(t, got, "encrypt=false")
	assert.NotContains(t, got, "p@ss/word") // must be URL-escaped
}

func TestConnectionString_TrustServerCertificate(t *testing.T) {
	cfg := &DatabaseConfig{
		Server:                 "db.internal",
		Port:                   1433,
		Database:               "VOS_DB",
		Encrypt:                true,
		TrustServerCertificate: true,
	}

	got := cfg.ConnectionString()
	assert.Contains(t, got, "encrypt=true")
	assert.Contains(t, got, "TrustServerCertificate=true")
}
