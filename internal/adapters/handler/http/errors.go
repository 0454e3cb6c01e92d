package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/awa-app/awa-backend/internal/core/domain"
)

// handleError maps domain errors onto HTTP responses. Transient storage
// failures come back 503 with a retryable hint so clients know the write may
// be re-triggered safely.
func handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrPrayerNameEmpty),
		errors.Is(err, domain.ErrPrayerNameTooLong),
		errors.Is(err, domain.ErrPrayerMessageTooLong),
		errors.Is(err, domain.ErrPrayerInvalidOwner):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

	case errors.Is(err, domain.ErrPrayerNotFound),
		errors.Is(err, domain.ErrLikeNotFound),
		errors.Is(err, domain.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})

	case errors.Is(err, domain.ErrPrayerConflict):
		c.JSON(http.StatusConflict, gin.H{
			"error":   "version conflict",
			"message": "Data has been modified elsewhere. Please refresh.",
		})

	case errors.Is(err, domain.ErrAlreadyLiked):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})

	case errors.Is(err, domain.ErrUnauthorized):
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})

	// Permission denial from storage means the identity is not authorized for
	// its own data: an authentication problem, never retried automatically.
	case errors.Is(err, domain.ErrStoragePermission):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authorized for this data"})

	case errors.Is(err, domain.ErrStorageTransient),
		errors.Is(err, domain.ErrIdentityUnavailable):
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error":     "service temporarily unavailable",
			"retryable": true,
		})

	default:
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
