package middlewares

import (
	"net/http"

	"county-portal-api/internal/auth"

	"github.com/gin-gonic/gin"
)

const identityKey = "identity"

func AuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		accessToken, err := c.Cookie(auth.AccessCookie)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Missing access token"})
			c.Abort()
			return
		}

		id, err := auth.ParseToken(secret, accessToken)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			c.Abort()
			return
		}

		setIdentity(c, id)
		c.Next()
	}
}

// OptionalAuth attaches the identity when a valid token is present and never rejects.
func OptionalAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if accessToken, err := c.Cookie(auth.AccessCookie); err == nil {
			if id, err := auth.ParseToken(secret, accessToken); err == nil {
				setIdentity(c, id)
			}
		}
		c.Next()
	}
}

// RequireRole must run after AuthMiddleware.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := CurrentIdentity(c)
		if id == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Missing access token"})
			c.Abort()
			return
		}
		for _, r := range roles {
			if id.Role == r {
				c.Next()
				return
			}
		}
		c.JSON(http.StatusForbidden, gin.H{"error": "insufficient role"})
		c.Abort()
	}
}

// CurrentIdentity returns nil for anonymous requests.
func CurrentIdentity(c *gin.Context) *auth.Identity {
	v, ok := c.Get(identityKey)
	if !ok {
		return nil
	}
	id, _ := v.(*auth.Identity)
	return id
}

func setIdentity(c *gin.Context, id *auth.Identity) {
	c.Set(identityKey, id)
	c.Set("userID", float64(id.ID))
}
