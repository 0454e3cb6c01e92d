package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/awa-app/awa-backend/internal/adapters/handler/http/middleware"
	"github.com/awa-app/awa-backend/internal/core/domain"
	"github.com/awa-app/awa-backend/internal/core/services"
)

// UserHandler serves the profile and settings screens. All routes sit behind
// RequireAccount, anonymous identities have no profile.
type UserHandler struct {
	svc *services.UserService
}

func NewUserHandler(svc *services.UserService) *UserHandler {
	return &UserHandler{
		svc: svc,
	}
}

type updateSettingsRequest struct {
	FirstName string `json:"first_name"`
	Language  string `json:"language"`
}

type updatePreferencesRequest struct {
	ReminderTime         string `json:"reminder_time"`
	ReminderFrequency    string `json:"reminder_frequency"`
	NotificationsEnabled bool   `json:"notifications_enabled"`
}

func (h *UserHandler) RegisterRoutes(router *gin.RouterGroup) {
	me := router.Group("/me")
	me.Use(middleware.RequireAccount())
	{
		me.GET("", h.Profile)
		me.PUT("/settings", h.UpdateSettings)
		me.PUT("/preferences", h.UpdatePreferences)
		me.POST("/onboarding/complete", h.CompleteOnboarding)
	}
}

func (h *UserHandler) Profile(c *gin.Context) {
	identity, _ := middleware.GetIdentity(c)

	user, err := h.svc.GetProfile(c.Request.Context(), identity.ID)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) UpdateSettings(c *gin.Context) {
	identity, _ := middleware.GetIdentity(c)

	var req updateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.svc.UpdateSettings(c.Request.Context(), identity.ID, domain.GeneralSettings{
		FirstName: req.FirstName,
		Language:  req.Language,
	})
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) UpdatePreferences(c *gin.Context) {
	identity, _ := middleware.GetIdentity(c)

	var req updatePreferencesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.svc.UpdatePreferences(c.Request.Context(), identity.ID, domain.ReminderPreferences{
		ReminderTime:         req.ReminderTime,
		ReminderFrequency:    req.ReminderFrequency,
		NotificationsEnabled: req.NotificationsEnabled,
	})
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) CompleteOnboarding(c *gin.Context) {
	identity, _ := middleware.GetIdentity(c)

	if err := h.svc.CompleteOnboarding(c.Request.Context(), identity.ID); err != nil {
		handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
