package database

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/vendorops/vos-engine/pkg/config"
)

func testConfig() *config.DatabaseConfig {
	// Port 1 is never listening; dials fail immediately.
	return &config.DatabaseConfig{
		Server:       "127.0.0.1",
		Port:         1,
		Database:     "VOS_DB",
		MaxOpenConns: 2,
		MaxIdleConns: 1,
	}
}

func TestManager_CloseWithoutPoolIsNoop(t *testing.T) {
	m := NewManager(testConfig(), zap.NewNop())
	assert.NoError(t, m.Close())
	assert.NoError(t, m.Close())
}

func TestManager_ConnectUnreachableStore(t *testing.T) {
	m := NewManager(testConfig(), zap.NewNop())

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, err := m.Connect(ctx)
	require.Error(t, err)

	// A failed connect must leave the manager uninitialized.
	assert.NoError(t, m.Close())
}

func TestManager_QueryValidatesParametersBeforeConnecting(t *testing.T) {
	m := NewManager(testConfig(), zap.NewNop())

	// Mismatched parameters fail fast with no dial: no context timeout is
	// needed because validation happens before Connect.
	_, err := m.Query(context.Background(),
		"SELECT * FROM Vendor WHERE ID = @vendorId",
		map[string]any{"wrongName": 7})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validate parameters")

	_, err = m.Query(context.Background(),
		"SELECT * FROM Vendor WHERE ID = @vendorId",
		map[string]any{"vendorId": []int{1}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validate parameters")
}

func TestManager_TestConnectionUnreachableStoreReturnsFalse(t *testing.T) {
	m := NewManager(testConfig(), zap.NewNop())

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	assert.False(t, m.TestConnection(ctx))
}
