// Package database owns the process-wide SQL Server connection pool.
// The pool is created lazily on first use, reused across requests, and
// closed explicitly on shutdown. All operations log failures to the
// structured diagnostic stream before returning them; nothing is swallowed.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	_ "github.com/microsoft/go-mssqldb" // SQL Server driver
	"go.uber.org/zap"

	"github.com/vendorops/vos-engine/pkg/config"
	"github.com/vendorops/vos-engine/pkg/logging"
	"github.com/vendorops/vos-engine/pkg/sqlutil"
)

// Manager owns a lazily-created pooled connection to SQL Server.
// At most one live pool exists per Manager; re-entrant Connect calls return
// the existing pool. Construct one Manager per process and inject it into
// repositories rather than importing ambient state.
type Manager struct {
	cfg    *config.DatabaseConfig
	logger *zap.Logger

	mu sync.Mutex
	db *sql.DB
}

// NewManager creates a connection manager. No connection is attempted until
// the first Connect or Query call.
func NewManager(cfg *config.DatabaseConfig, logger *zap.Logger) *Manager {
	return &Manager{
		cfg:    cfg,
		logger: logger,
	}
}

// Connect returns the live pool, creating it on first call. The pool is
// verified with a ping before being handed out; an unreachable store or
// rejected credentials surface as an error, logged and returned.
func (m *Manager) Connect(ctx context.Context) (*sql.DB, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.db != nil {
		return m.db, nil
	}

	db, err := sql.Open("sqlserver", m.cfg.ConnectionString())
	if err != nil {
		m.logger.Error("Database connection failed",
			zap.String("error", logging.SanitizeError(err)))
		return nil, fmt.Errorf("open connection: %w", err)
	}

	db.SetMaxOpenConns(m.cfg.MaxOpenConns)
	db.SetMaxIdleConns(m.cfg.MaxIdleConns)
	db.SetConnMaxIdleTime(time.Duration(m.cfg.ConnMaxIdleSeconds) * time.Second)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		m.logger.Error("Database connection failed",
			zap.String("server", m.cfg.Server),
			zap.String("database", m.cfg.Database),
			zap.String("error", logging.SanitizeError(err)))
		return nil, fmt.Errorf("ping: %w", err)
	}

	m.logger.Info("Connected to SQL Server",
		zap.String("server", m.cfg.Server),
		zap.String("database", m.cfg.Database))
	m.db = db
	return m.db, nil
}

// Close closes the pool and resets the manager to uninitialized. Calling
// Close when no pool exists is a no-op.
func (m *Manager) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.db == nil {
		return nil
	}

	err := m.db.Close()
	m.db = nil
	if err != nil {
		m.logger.Error("Error disconnecting from database",
			zap.String("error", logging.SanitizeError(err)))
		return fmt.Errorf("close pool: %w", err)
	}

	m.logger.Info("Disconnected from SQL Server")
	return nil
}

// Query acquires the pool, binds params by name and executes the statement.
// Parameter names are validated against the statement's @name placeholders
// before any connection is made, and string values are screened for
// injection patterns (observability only; typed binding is the guarantee).
// The caller owns the returned rows and must close them.
func (m *Manager) Query(ctx context.Context, statement string, params map[string]any) (*sql.Rows, error) {
	if err := sqlutil.ValidateParameters(statement, params); err != nil {
		m.logger.Error("Query parameter validation failed", zap.Error(err))
		return nil, fmt.Errorf("validate parameters: %w", err)
	}

	for _, hit := range sqlutil.CheckAllParameters(params) {
		// Values are never logged here; they may be credentials.
		m.logger.Warn("SQL injection pattern in parameter value",
			zap.String("param", hit.ParamName),
			zap.String("fingerprint", hit.Fingerprint))
	}

	db, err := m.Connect(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx, statement, sqlutil.Bind(params)...)
	if err != nil {
		m.logger.Error("Query execution failed",
			zap.String("statement", logging.SanitizeQuery(statement)),
			zap.String("error", logging.SanitizeError(err)))
		return nil, fmt.Errorf("execute query: %w", err)
	}

	return rows, nil
}

// TestConnection wraps Connect plus a trivial probe query, returning a
// boolean rather than an error so health-check callers get a simple signal.
func (m *Manager) TestConnection(ctx context.Context) bool {
	db, err := m.Connect(ctx)
	if err != nil {
		return false
	}

	var probe int
	if err := db.QueryRowContext(ctx, "SELECT 1").Scan(&probe); err != nil {
		m.logger.Error("Database connection test failed",
			zap.String("error", logging.SanitizeError(err)))
		return false
	}

	return probe == 1
}
