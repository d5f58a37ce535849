package config

import (
	"testing"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
)

func TestConnectRedis_TestEnvSkips(t *testing.T) {
	resetConfigForTest(t)
	ResetRedisClientForTest()
	t.Cleanup(ResetRedisClientForTest)
	t.Setenv("APPENV", "test")
	t.Setenv("REDIS_ADDR", "localhost:6379")

	rdb, err := ConnectRedis()
	assert.NoError(t, err)
	assert.Nil(t, rdb)
}

func TestConnectRedis_NotConfigured(t *testing.T) {
	resetConfigForTest(t)
	ResetRedisClientForTest()
	t.Cleanup(ResetRedisClientForTest)
	t.Setenv("APPENV", "development")
	t.Setenv("REDIS_ADDR", "")
	t.Setenv("STORAGE_BACKEND", "memory")

	rdb, err := ConnectRedis()
	assert.NoError(t, err)
	assert.Nil(t, rdb)
}

func TestConnectRedis_InvalidAddress(t *testing.T) {
	resetConfigForTest(t)
	ResetRedisClientForTest()
	t.Cleanup(ResetRedisClientForTest)
	t.Setenv("APPENV", "development")
	t.Setenv("REDIS_ADDR", "127.0.0.1:1")

	rdb, err := ConnectRedis()
	assert.Error(t, err)
	assert.Nil(t, rdb)
}

func TestGetRedisClient_NotInitialized(t *testing.T) {
	SetRedisClientForTest(nil)

	client := GetRedisClient()
	assert.Nil(t, client)
}

func TestSetRedisClientForTest(t *testing.T) {
	db, _ := redismock.NewClientMock()
	SetRedisClientForTest(db)
	t.Cleanup(func() { SetRedisClientForTest(nil) })

	assert.Same(t, db, GetRedisClient())
}

func TestConnectOptionalRedis_NoAddress(t *testing.T) {
	resetConfigForTest(t)
	ResetRedisClientForTest()
	t.Cleanup(ResetRedisClientForTest)
	t.Setenv("APPENV", "development")
	t.Setenv("REDIS_ADDR", "")
	t.Setenv("STORAGE_BACKEND", "memory")

	assert.Nil(t, ConnectOptionalRedis(LoadConfig()))
	assert.Nil(t, GetRedisClient())
}

func TestConnectOptionalRedis_UnreachableWithMemoryBackend(t *testing.T) {
	resetConfigForTest(t)
	ResetRedisClientForTest()
	t.Cleanup(ResetRedisClientForTest)
	t.Setenv("APPENV", "development")
	t.Setenv("REDIS_ADDR", "127.0.0.1:1")
	t.Setenv("STORAGE_BACKEND", "memory")

	cfg := LoadConfig()
	assert.Nil(t, ConnectOptionalRedis(cfg))

	// Storage still opens and the ping failure stays visible to later callers.
	storage, err := ConnectStorage(cfg)
	assert.NoError(t, err)
	assert.NotNil(t, storage.Adapter)
	_, err = ConnectRedis()
	assert.ErrorContains(t, err, "redis ping failed")
}
