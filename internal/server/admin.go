package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"

	"github.com/danmuck/ghostwire/internal/auth"
	"github.com/danmuck/ghostwire/internal/observability"
)

const version = "0.1.0"

// AdminRouter serves health, stats and Prometheus metrics for r. When v is
// non-nil every route but /health requires a bearer token it accepts.
func AdminRouter(r *Responder, v auth.Validator) *gin.Engine {
	observability.RegisterMetrics()
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(observability.AdminLogger(log.Logger))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"uptime":  r.Stats().Uptime,
			"service": "ghostwire",
			"version": version,
		})
	})

	guarded := router.Group("/")
	if v != nil {
		guarded.Use(requireToken(v))
	}
	guarded.GET("/sessions", func(c *gin.Context) {
		c.JSON(http.StatusOK, r.Stats())
	})
	guarded.GET("/metrics", gin.WrapH(promhttp.Handler()))
	return router
}

func requireToken(v auth.Validator) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := auth.BearerToken(c.GetHeader("Authorization"))
		if !ok || v.Validate(token) != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": auth.ErrUnauthorized.Error()})
			return
		}
		c.Next()
	}
}
