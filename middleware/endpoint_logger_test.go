package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ariebrainware/tripwire/util"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func captureSecurityLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	original := util.GetSecurityLoggerForTest()
	util.SetSecurityLoggerForTest(zerolog.New(&buf))
	t.Cleanup(func() { util.SetSecurityLoggerForTest(original) })
	return &buf
}

func TestEndpointCallLogger_BasicRequest(t *testing.T) {
	buf := captureSecurityLog(t)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(EndpointCallLogger())
	r.GET("/api/tokens", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "success"})
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/tokens?foo=bar", nil)
	req.RemoteAddr = "192.168.1.100:1234"
	req.Header.Set("User-Agent", "TestAgent/1.0")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	out := buf.String()
	assert.Contains(t, out, `"event":"ENDPOINT_CALL"`)
	assert.Contains(t, out, "GET /api/tokens -> 200")
	assert.Contains(t, out, `"ip":"192.168.1.100"`)
	assert.Contains(t, out, `"user_agent":"TestAgent/1.0"`)
}

func TestEndpointCallLogger_ErrorStatus(t *testing.T) {
	buf := captureSecurityLog(t)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(EndpointCallLogger())
	r.GET("/api/tokens/:id", func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/tokens/missing", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, buf.String(), "GET /api/tokens/missing -> 404")
}
