package endpoint

import (
	"time"

	"github.com/ariebrainware/tripwire/middleware"
	"github.com/gin-gonic/gin"
)

// RouterConfig carries the knobs the HTTP surface needs beyond the services.
type RouterConfig struct {
	AppName            string
	GenerateRateLimit  int
	GenerateRateWindow time.Duration
	// Extra registers infra routes such as /metrics and /swagger.
	Extra func(r *gin.Engine)
}

// SetupRouter registers the trap surface and the operator API under /api.
func SetupRouter(svc *middleware.Services, cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestMetrics(), middleware.ServicesMiddleware(svc))

	r.GET("/", Welcome(cfg.AppName))
	r.GET("/healthz", Healthz)

	r.GET("/trap", Trap)
	r.GET("/pixel/:file", Pixel)

	api := r.Group("/api", middleware.CORSMiddleware(), middleware.EndpointCallLogger())
	{
		// Preflight requests are answered by CORSMiddleware.
		api.OPTIONS("/*path", func(*gin.Context) {})

		api.GET("/tokens", ListTokens)
		api.POST("/tokens", CreateToken)
		api.GET("/tokens/:id", GetToken)
		api.PATCH("/tokens/:id/status", UpdateTokenStatus)
		api.DELETE("/tokens/:id", DeleteToken)
		api.GET("/tokens/:id/alerts", ListTokenAlerts)

		api.GET("/alerts", ListAlerts)
		api.GET("/alerts/:id", GetAlert)
		api.PATCH("/alerts/:id", UpdateAlert)

		api.POST("/generate", middleware.RateLimiter(middleware.RateLimitConfig{
			Limit:  cfg.GenerateRateLimit,
			Window: cfg.GenerateRateWindow,
		}), GenerateURLs)

		api.GET("/stats", GetStats)
	}

	if cfg.Extra != nil {
		cfg.Extra(r)
	}
	return r
}
