package api

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/lysyi3m/syndication/app/metrics"
)

// NewServer creates a new HTTP server with all routes configured. The
// /metrics endpoint is only registered when gatherer is non-nil.
func NewServer(handler *Handler, gatherer prometheus.Gatherer) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	r.Use(gin.LoggerWithConfig(gin.LoggerConfig{
		Formatter: func(param gin.LogFormatterParams) string {
			return fmt.Sprintf("%s - [%s] \"%s %s %s %d %s \"%s\" %s\"\n",
				param.ClientIP,
				param.TimeStamp.Format(time.RFC3339),
				param.Method,
				param.Path,
				param.Request.Proto,
				param.StatusCode,
				param.Latency,
				param.Request.UserAgent(),
				param.ErrorMessage,
			)
		},
		SkipPaths: []string{"/health", "/metrics"},
	}))

	r.Use(gin.Recovery())

	r.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Accept")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	setupRoutes(r, handler, gatherer)

	return r
}

func setupRoutes(r *gin.Engine, handler *Handler, gatherer prometheus.Gatherer) {
	r.POST("/convert/:format", handler.Convert)
	r.POST("/inspect", handler.Inspect)

	r.GET("/health", handler.GetHealth)

	if gatherer != nil {
		r.GET("/metrics", gin.WrapH(metrics.Handler(gatherer)))
		slog.Info("Metrics endpoint enabled", "path", "/metrics")
	}

	r.GET("/", func(c *gin.Context) {
		endpoints := map[string]string{
			"convert": "POST /convert/<atom|rss>",
			"inspect": "POST /inspect",
			"health":  "/health",
		}
		if gatherer != nil {
			endpoints["metrics"] = "/metrics"
		}

		c.JSON(http.StatusOK, gin.H{
			"service":     "syndication",
			"version":     handler.version,
			"description": "Atom and RSS document conversion",
			"endpoints":   endpoints,
		})
	})

	r.GET("/favicon.ico", func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
}
