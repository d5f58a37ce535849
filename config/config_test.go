package config

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetConfigForTest(t *testing.T) {
	t.Helper()
	config = nil
	once = sync.Once{}
	t.Cleanup(func() {
		config = nil
		once = sync.Once{}
	})
}

// Test that LoadConfig returns a non-nil config and respects APPENV=test
func TestLoadConfigAndConnectMySQL_TestEnv(t *testing.T) {
	resetConfigForTest(t)
	t.Setenv("APPENV", "test")

	cfg := LoadConfig()
	require.NotNil(t, cfg)
	assert.Same(t, cfg, LoadConfig())

	db, err := ConnectMySQL()
	require.NoError(t, err)
	require.NotNil(t, db)
}

func TestFromEnvDefaults(t *testing.T) {
	for _, k := range []string{"APPNAME", "APPPORT", "BASEURL", "STORAGE_BACKEND", "SIMULATOR_INTERVAL",
		"SIMULATOR_POLICY", "GENERATOR_PROVIDER", "NATS_SUBJECT", "GENERATE_RATE_LIMIT", "GENERATE_RATE_WINDOW",
		"REDIS_KEY_PREFIX", "LOG_LEVEL", "LOG_FORMAT"} {
		t.Setenv(k, "")
	}

	cfg := FromEnv()
	assert.Equal(t, "tripwire", cfg.AppName)
	assert.Equal(t, uint16(8080), cfg.AppPort)
	assert.Equal(t, "http://localhost:8080", cfg.BaseURL)
	assert.Equal(t, BackendMemory, cfg.StorageBackend)
	assert.Equal(t, 15*time.Second, cfg.SimulatorInterval)
	assert.Equal(t, "active_only", cfg.SimulatorPolicy)
	assert.Equal(t, "mock", cfg.GeneratorProvider)
	assert.Equal(t, "tripwire.alerts", cfg.NATSSubject)
	assert.Equal(t, 10, cfg.GenerateRateLimit)
	assert.Equal(t, time.Minute, cfg.GenerateRateWindow)
	assert.Equal(t, "tripwire:", cfg.RedisKeyPrefix)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("APPPORT", "9090")
	t.Setenv("BASEURL", "https://trap.example.com")
	t.Setenv("STORAGE_BACKEND", "Badger")
	t.Setenv("SIMULATOR_ENABLED", "true")
	t.Setenv("SIMULATOR_INTERVAL", "5")
	t.Setenv("GENERATOR_TIMEOUT", "2s")
	t.Setenv("SEED_DEMO_DATA", "not-a-bool")

	cfg := FromEnv()
	assert.Equal(t, uint16(9090), cfg.AppPort)
	assert.Equal(t, "https://trap.example.com", cfg.BaseURL)
	assert.Equal(t, BackendBadger, cfg.StorageBackend)
	assert.True(t, cfg.SimulatorEnabled)
	assert.Equal(t, 5*time.Second, cfg.SimulatorInterval)
	assert.Equal(t, 2*time.Second, cfg.GeneratorTimeout)
	assert.False(t, cfg.SeedDemoData)
}

func TestConnectStorageBackends(t *testing.T) {
	resetConfigForTest(t)
	t.Setenv("APPENV", "test")

	st, err := ConnectStorage(&Config{StorageBackend: BackendMemory})
	require.NoError(t, err)
	assert.NotNil(t, st.Adapter)
	assert.Nil(t, st.DB)

	st, err = ConnectStorage(&Config{StorageBackend: BackendSQL})
	require.NoError(t, err)
	assert.NotNil(t, st.DB)
	assert.NoError(t, st.Adapter.Close())

	st, err = ConnectStorage(&Config{StorageBackend: BackendBadger})
	require.NoError(t, err)
	assert.NoError(t, st.Adapter.Close())

	_, err = ConnectStorage(&Config{StorageBackend: "etcd"})
	assert.Error(t, err)
}

func TestConnectStorageRedisUnavailable(t *testing.T) {
	resetConfigForTest(t)
	ResetRedisClientForTest()
	t.Cleanup(ResetRedisClientForTest)
	t.Setenv("APPENV", "test")

	_, err := ConnectStorage(&Config{StorageBackend: BackendRedis})
	assert.Error(t, err)
}
