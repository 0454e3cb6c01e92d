package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/awa-app/awa-backend/internal/core/domain"
	"github.com/awa-app/awa-backend/internal/core/services"
)

const (
	authorizationHeader = "Authorization"
	authorizationType   = "Bearer"
	deviceIDHeader      = "X-Device-ID"
	ContextIdentityKey  = "identity"
)

// IdentityMiddleware resolves the caller's identity on every request. A valid
// Bearer token wins; otherwise the device from X-Device-ID gets a persistent
// anonymous identity. A malformed Authorization header is treated as no
// session, the resolver handles the fallback.
func IdentityMiddleware(resolver *services.IdentityResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		var token string
		if authHeader := c.GetHeader(authorizationHeader); authHeader != "" {
			fields := strings.Fields(authHeader)
			if len(fields) == 2 && fields[0] == authorizationType {
				token = fields[1]
			}
		}

		identity, err := resolver.Resolve(c.Request.Context(), token, c.GetHeader(deviceIDHeader))
		if err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "identity temporarily unavailable"})
			c.Abort()
			return
		}

		c.Set(ContextIdentityKey, identity)

		c.Next()
	}
}

// RequireAccount blocks anonymous identities from routes that only make sense
// for a registered account (profile, settings).
func RequireAccount() gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := GetIdentity(c)
		if !ok || identity.Anonymous {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "account required"})
			c.Abort()
			return
		}
		c.Next()
	}
}

func GetIdentity(c *gin.Context) (domain.Identity, bool) {
	v, exists := c.Get(ContextIdentityKey)
	if !exists {
		return domain.Identity{}, false
	}
	identity, ok := v.(domain.Identity)
	return identity, ok
}
