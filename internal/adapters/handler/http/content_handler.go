package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/awa-app/awa-backend/internal/core/services"
)

// ContentHandler serves the prayer formulas and verses shown during a prayer
// session. Content is identical for every caller, no identity required.
type ContentHandler struct {
	svc *services.ContentService
}

func NewContentHandler(svc *services.ContentService) *ContentHandler {
	return &ContentHandler{
		svc: svc,
	}
}

func (h *ContentHandler) RegisterRoutes(router *gin.RouterGroup) {
	content := router.Group("/content")
	{
		content.GET("/formulas", h.Formulas)
		content.GET("/verses", h.Verses)
	}
}

func (h *ContentHandler) Formulas(c *gin.Context) {
	formulas, err := h.svc.GetFormulas(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, formulas)
}

func (h *ContentHandler) Verses(c *gin.Context) {
	verses, err := h.svc.GetVerses(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, verses)
}
