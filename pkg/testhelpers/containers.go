// Package testhelpers provides a shared SQL Server container for
// integration tests. The container starts once per test run and is reused.
package testhelpers

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"testing"
	"time"

	_ "github.com/microsoft/go-mssqldb" // SQL Server driver
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"

	"github.com/vendorops/vos-engine/pkg/config"
	"github.com/vendorops/vos-engine/pkg/database"
)

// MSSQLTestImage is the SQL Server image used for integration tests.
const MSSQLTestImage = "mcr.microsoft.com/mssql/server:2022-latest"

const testSAPassword = "Vos!Test_Passw0rd"

// TestDB holds a shared SQL Server container and a connection manager
// pointed at it.
type TestDB struct {
	Container testcontainers.Container
	Manager   *database.Manager
	Config    config.DatabaseConfig
}

var (
	sharedTestDB     *TestDB
	sharedTestDBOnce sync.Once
	sharedTestDBErr  error
)

// GetTestDB returns a shared SQL Server container for integration tests.
// The container is created once and reused across all tests in the run.
func GetTestDB(t *testing.T) *TestDB {
	t.Helper()

	if testing.Short() {
		t.Skip("Skipping integration test in short mode (requires Docker)")
	}

	sharedTestDBOnce.Do(func() {
		sharedTestDB, sharedTestDBErr = setupTestDB()
	})

	if sharedTestDBErr != nil {
		t.Fatalf("Failed to setup test database: %v", sharedTestDBErr)
	}

	return sharedTestDB
}

func setupTestDB() (*TestDB, error) {
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        MSSQLTestImage,
		ExposedPorts: []string{"1433/tcp"},
		Env: map[string]string{
			"ACCEPT_EULA":       "Y",
			"MSSQL_SA_PASSWORD": testSAPassword,
		},
		WaitingFor: wait.ForLog("SQL Server is now ready for client connections").
			WithStartupTimeout(120 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to start test container: %w", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get container host: %w", err)
	}

	port, err := container.MappedPort(ctx, "1433")
	if err != nil {
		return nil, fmt.Errorf("failed to get container port: %w", err)
	}

	cfg := config.DatabaseConfig{
		Server:                 host,
		Port:                   port.Int(),
		User:                   "sa",
		Password:               testSAPassword,
		Database:               "master",
		TrustServerCertificate: true,
		MaxOpenConns:           5,
		MaxIdleConns:           2,
		ConnMaxIdleSeconds:     30,
	}

	// The log line can precede actual readiness; verify with a probe.
	if err := waitForServer(ctx, cfg.ConnectionString()); err != nil {
		return nil, err
	}

	return &TestDB{
		Container: container,
		Manager:   database.NewManager(&cfg, zap.NewNop()),
		Config:    cfg,
	}, nil
}

func waitForServer(ctx context.Context, connStr string) error {
	db, err := sql.Open("sqlserver", connStr)
	if err != nil {
		return fmt.Errorf("failed to open sql connection: %w", err)
	}
	defer db.Close()

	var lastErr error
	for i := 0; i < 20; i++ {
		if lastErr = db.PingContext(ctx); lastErr == nil {
			return nil
		}
		time.Sleep(time.Second)
	}
	return fmt.Errorf("server never became ready: %w", lastErr)
}

// ExecBatch runs each statement in order against the test server, failing
// the test on the first error. Used to seed schema and fixture rows.
func (tdb *TestDB) ExecBatch(t *testing.T, statements []string) {
	t.Helper()
	ctx := context.Background()

	db, err := tdb.Manager.Connect(ctx)
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}

	for _, stmt := range statements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			t.Fatalf("Failed to execute statement %q: %v", stmt, err)
		}
	}
}
