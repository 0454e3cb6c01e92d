package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/awa-app/awa-backend/internal/adapters/handler/http/middleware"
	"github.com/awa-app/awa-backend/internal/core/services"
)

type StreakHandler struct {
	svc *services.StreakService
}

func NewStreakHandler(svc *services.StreakService) *StreakHandler {
	return &StreakHandler{
		svc: svc,
	}
}

func (h *StreakHandler) RegisterRoutes(router *gin.RouterGroup) {
	streak := router.Group("/streak")
	{
		streak.POST("/sessions", h.RecordSession)
		streak.GET("", h.Get)
		streak.GET("/week", h.Week)
		streak.GET("/stats", h.Stats)
	}
}

// RecordSession marks today as prayed for the caller. Hitting it twice on the
// same day returns the same record, so clients can blindly retry.
func (h *StreakHandler) RecordSession(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "identity context missing"})
		return
	}

	record, err := h.svc.RecordSession(c.Request.Context(), identity)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, record)
}

func (h *StreakHandler) Get(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "identity context missing"})
		return
	}

	record, err := h.svc.GetStreak(c.Request.Context(), identity)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, record)
}

func (h *StreakHandler) Week(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "identity context missing"})
		return
	}

	days, err := h.svc.GetWeeklyProgress(c.Request.Context(), identity)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"days":      days,
		"timestamp": time.Now().UTC(),
	})
}

func (h *StreakHandler) Stats(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "identity context missing"})
		return
	}

	stats, err := h.svc.GetStats(c.Request.Context(), identity)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}
