package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/awa-app/awa-backend/internal/adapters/handler/http/middleware"
	"github.com/awa-app/awa-backend/internal/core/services"
)

type PrayerHandler struct {
	svc *services.PrayerService
}

func NewPrayerHandler(svc *services.PrayerService) *PrayerHandler {
	return &PrayerHandler{
		svc: svc,
	}
}

type createPrayerRequest struct {
	DeceasedName string `json:"deceased_name" binding:"required"`
	Message      string `json:"message"`
	Category     string `json:"category"`
}

type updatePrayerRequest struct {
	DeceasedName string `json:"deceased_name"`
	Message      string `json:"message"`
	Category     string `json:"category"`
	Pinned       *bool  `json:"pinned"`
	Version      int    `json:"version"`
}

func (h *PrayerHandler) RegisterRoutes(router *gin.RouterGroup) {
	prayers := router.Group("/prayers")
	{
		prayers.POST("", h.Create)
		prayers.GET("", h.List)
		prayers.GET("/:id", h.Get)
		prayers.PUT("/:id", h.Update)
		prayers.DELETE("/:id", h.Delete)
	}
}

func (h *PrayerHandler) Create(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "identity context missing"})
		return
	}

	var req createPrayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	prayer, err := h.svc.Create(c.Request.Context(), services.CreatePrayerInput{
		Identity:     identity,
		DeceasedName: req.DeceasedName,
		Message:      req.Message,
		Category:     req.Category,
	})
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, prayer)
}

func (h *PrayerHandler) List(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "identity context missing"})
		return
	}

	list, err := h.svc.ListByOwner(c.Request.Context(), identity)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, list)
}

func (h *PrayerHandler) Get(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "identity context missing"})
		return
	}

	prayer, err := h.svc.GetByID(c.Request.Context(), c.Param("id"), identity)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, prayer)
}

func (h *PrayerHandler) Update(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "identity context missing"})
		return
	}

	var req updatePrayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	prayer, err := h.svc.Update(c.Request.Context(), services.UpdatePrayerInput{
		ID:           c.Param("id"),
		Identity:     identity,
		DeceasedName: req.DeceasedName,
		Message:      req.Message,
		Category:     req.Category,
		Pinned:       req.Pinned,
		Version:      req.Version,
	})
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, prayer)
}

func (h *PrayerHandler) Delete(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "identity context missing"})
		return
	}

	if err := h.svc.Delete(c.Request.Context(), c.Param("id"), identity); err != nil {
		handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
