package middleware

import (
	"net/http"
	"time"

	"github.com/ariebrainware/tripwire/generator"
	"github.com/ariebrainware/tripwire/metrics"
	"github.com/ariebrainware/tripwire/store"
	"github.com/ariebrainware/tripwire/trap"
	"github.com/gin-gonic/gin"
)

const servicesKey = "services"

// Services are the shared dependencies handlers pull from the request context.
type Services struct {
	Store     *store.Store
	Detector  *trap.Detector
	Generator generator.Generator
	BaseURL   string
}

// ServicesMiddleware injects the shared services into each request.
func ServicesMiddleware(s *Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(servicesKey, s)
		c.Next()
	}
}

// GetServices returns the services injected by ServicesMiddleware.
func GetServices(c *gin.Context) (*Services, bool) {
	v, ok := c.Get(servicesKey)
	if !ok {
		return nil, false
	}
	s, ok := v.(*Services)
	return s, ok && s != nil
}

// CORSMiddleware configures CORS headers for incoming requests.
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS, DELETE, PATCH")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "X-Requested-With, Content-Type, Authorization")
		c.Writer.Header().Set("Access-Control-Max-Age", "86400")
		c.Writer.Header().Set("Content-Type", "application/json")

		// For preflight requests, respond with 204 and abort further processing.
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// RequestMetrics records request latency per matched route.
func RequestMetrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		metrics.HTTPRequestDuration.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
	}
}
