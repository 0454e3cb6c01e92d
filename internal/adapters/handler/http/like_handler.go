package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/awa-app/awa-backend/internal/adapters/handler/http/middleware"
	"github.com/awa-app/awa-backend/internal/core/services"
)

type LikeHandler struct {
	svc *services.LikeService
}

func NewLikeHandler(svc *services.LikeService) *LikeHandler {
	return &LikeHandler{
		svc: svc,
	}
}

func (h *LikeHandler) RegisterRoutes(router *gin.RouterGroup) {
	likes := router.Group("/prayers/:id/like")
	{
		likes.POST("", h.Add)
		likes.DELETE("", h.Remove)
		likes.GET("", h.Status)
	}
}

func (h *LikeHandler) Add(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "identity context missing"})
		return
	}

	like, err := h.svc.Add(c.Request.Context(), c.Param("id"), identity)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, like)
}

func (h *LikeHandler) Remove(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "identity context missing"})
		return
	}

	if err := h.svc.Remove(c.Request.Context(), c.Param("id"), identity); err != nil {
		handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *LikeHandler) Status(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "identity context missing"})
		return
	}

	status, err := h.svc.Status(c.Request.Context(), c.Param("id"), identity)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, status)
}
