package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"

	"github.com/awa-app/awa-backend/internal/adapters/handler/http/middleware"
	"github.com/awa-app/awa-backend/internal/core/services"
)

type RouterDependencies struct {
	AuthHandler    *AuthHandler
	StreakHandler  *StreakHandler
	PrayerHandler  *PrayerHandler
	LikeHandler    *LikeHandler
	ContentHandler *ContentHandler
	UserHandler    *UserHandler
	Identity       *services.IdentityResolver
	DB             *sqlx.DB
	Redis          *redis.Client
	StartTime      time.Time

	RateLimitPerMinute int
}

func NewRouter(deps RouterDependencies) *gin.Engine {
	router := gin.Default()

	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS, PUT, DELETE")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, X-Device-ID")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	})

	if deps.Redis != nil {
		limit := deps.RateLimitPerMinute
		if limit <= 0 {
			limit = 100
		}
		router.Use(middleware.RateLimiterMiddleware(deps.Redis, limit, 1*time.Minute))
	}

	router.GET("/health", func(c *gin.Context) {
		dbStatus := "connected"
		if err := deps.DB.Ping(); err != nil {
			dbStatus = "unreachable"
		}

		// Running without Redis is a supported degraded mode, not an outage.
		redisStatus := "disabled"
		if deps.Redis != nil {
			redisStatus = "connected"
			if deps.Redis.Ping(c.Request.Context()).Err() != nil {
				redisStatus = "unreachable"
			}
		}

		statusCode := 200
		if dbStatus == "unreachable" || redisStatus == "unreachable" {
			statusCode = 503
		}

		c.JSON(statusCode, gin.H{
			"status":   "ok",
			"database": dbStatus,
			"redis":    redisStatus,
			"uptime":   time.Since(deps.StartTime).String(),
		})
	})

	apiV1 := router.Group("/api/v1")

	deps.ContentHandler.RegisterRoutes(apiV1)

	// Everything below gets an identity: authenticated when a valid token is
	// present, anonymous otherwise.
	identified := apiV1.Group("")
	identified.Use(middleware.IdentityMiddleware(deps.Identity))
	{
		deps.AuthHandler.RegisterRoutes(identified)
		deps.StreakHandler.RegisterRoutes(identified)
		deps.PrayerHandler.RegisterRoutes(identified)
		deps.LikeHandler.RegisterRoutes(identified)
		deps.UserHandler.RegisterRoutes(identified)
	}

	return router
}
