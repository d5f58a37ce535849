package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ariebrainware/tripwire/config"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
)

func newRateLimitedRouter(cfg RateLimitConfig) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RateLimiter(cfg))
	r.POST("/api/generate", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "success"})
	})
	return r
}

func doGenerate(r *gin.Engine, remoteAddr string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/generate", nil)
	req.RemoteAddr = remoteAddr
	r.ServeHTTP(w, req)
	return w
}

func TestRateLimiter_LocalFallback(t *testing.T) {
	config.SetRedisClientForTest(nil)
	t.Cleanup(func() { config.SetRedisClientForTest(nil) })

	r := newRateLimitedRouter(RateLimitConfig{Limit: 3, Window: time.Hour})

	for i := 0; i < 3; i++ {
		w := doGenerate(r, "192.168.1.1:1234")
		assert.Equal(t, http.StatusOK, w.Code, "request %d", i+1)
	}
	w := doGenerate(r, "192.168.1.1:1234")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Contains(t, w.Body.String(), "rate limit exceeded")

	// Other callers have their own bucket.
	w = doGenerate(r, "192.168.1.2:1234")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRateLimiter_DefaultConfig(t *testing.T) {
	config.SetRedisClientForTest(nil)
	t.Cleanup(func() { config.SetRedisClientForTest(nil) })

	r := newRateLimitedRouter(RateLimitConfig{})
	w := doGenerate(r, "192.168.1.1:1234")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRateLimiter_RedisAllows(t *testing.T) {
	db, mock := redismock.NewClientMock()
	config.SetRedisClientForTest(db)
	t.Cleanup(func() { config.SetRedisClientForTest(nil) })

	key := "ratelimit:/api/generate:10.0.0.1"
	mock.ExpectIncr(key).SetVal(1)
	mock.ExpectExpire(key, time.Minute).SetVal(true)

	r := newRateLimitedRouter(RateLimitConfig{Limit: 2, Window: time.Minute})
	w := doGenerate(r, "10.0.0.1:5555")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRateLimiter_RedisBlocks(t *testing.T) {
	db, mock := redismock.NewClientMock()
	config.SetRedisClientForTest(db)
	t.Cleanup(func() { config.SetRedisClientForTest(nil) })

	key := "ratelimit:/api/generate:10.0.0.1"
	mock.ExpectIncr(key).SetVal(3)
	mock.ExpectExpire(key, time.Minute).SetVal(true)

	r := newRateLimitedRouter(RateLimitConfig{Limit: 2, Window: time.Minute})
	w := doGenerate(r, "10.0.0.1:5555")

	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCheckRateLimit_RedisError(t *testing.T) {
	db, mock := redismock.NewClientMock()
	config.SetRedisClientForTest(db)
	t.Cleanup(func() { config.SetRedisClientForTest(nil) })

	mock.ExpectIncr("k").SetErr(errors.New("connection refused"))

	_, err := checkRateLimit(context.Background(), "k", 2, time.Minute)
	assert.Error(t, err)
}

func TestResetRateLimit(t *testing.T) {
	config.SetRedisClientForTest(nil)
	assert.Error(t, ResetRateLimit(context.Background(), "192.168.1.1", "/api/generate"))

	db, mock := redismock.NewClientMock()
	config.SetRedisClientForTest(db)
	t.Cleanup(func() { config.SetRedisClientForTest(nil) })

	mock.ExpectDel("ratelimit:/api/generate:192.168.1.1").SetVal(1)
	assert.NoError(t, ResetRateLimit(context.Background(), "192.168.1.1", "/api/generate"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLocalLimiterRefills(t *testing.T) {
	l := newLocalLimiter(1, 10*time.Millisecond)
	assert.True(t, l.allow("a"))
	assert.False(t, l.allow("a"))
	time.Sleep(25 * time.Millisecond)
	assert.True(t, l.allow("a"))
}

func TestLocalLimiterEvictsIdleKeys(t *testing.T) {
	l := newLocalLimiter(1, 10*time.Millisecond)
	assert.True(t, l.allow("10.0.0.1"))
	assert.True(t, l.allow("10.0.0.2"))
	assert.Equal(t, 2, l.limiters.ItemCount())

	time.Sleep(30 * time.Millisecond)
	l.limiters.DeleteExpired()
	assert.Equal(t, 0, l.limiters.ItemCount())

	// An evicted caller starts over with a full bucket.
	assert.True(t, l.allow("10.0.0.1"))
	assert.Equal(t, 1, l.limiters.ItemCount())
}
