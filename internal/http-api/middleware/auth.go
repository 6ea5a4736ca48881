package middleware

import (
	"net/http"

	"mangashelf/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

// AccessTokenCookie is the only place the session middleware looks for
// credentials; there is no bearer-header fallback.
const AccessTokenCookie = "accessToken"

const principalKey = "principal"

// Auth is the session middleware: it verifies the access-token cookie and
// attaches the principal to the request context. denyRoles is a denylist:
// an authenticated principal whose role appears in it gets 403 instead of
// reaching the handler, and any role not listed passes.
func Auth(tokens service.TokenService, denyRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(AccessTokenCookie)
		if err != nil || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"status":  "fail",
				"message": "Unauthenticated",
			})
			return
		}

		claims, err := tokens.VerifyAccessToken(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"status":  "fail",
				"message": "Unauthenticated",
			})
			return
		}

		for _, role := range denyRoles {
			if claims.Role == role {
				c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
					"status":  "fail",
					"message": "You are not allowed to access this resource",
				})
				return
			}
		}

		c.Set(principalKey, service.Principal{UserID: claims.UserID, Role: claims.Role})
		c.Next()
	}
}

// Identify is the optional variant for public routes that personalize their
// response when a valid session exists. It never aborts.
func Identify(tokens service.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(AccessTokenCookie)
		if err == nil && token != "" {
			if claims, err := tokens.VerifyAccessToken(token); err == nil {
				c.Set(principalKey, service.Principal{UserID: claims.UserID, Role: claims.Role})
			}
		}
		c.Next()
	}
}

// PrincipalFrom returns the authenticated principal set by Auth or Identify.
func PrincipalFrom(c *gin.Context) (service.Principal, bool) {
	value, exists := c.Get(principalKey)
	if !exists {
		return service.Principal{}, false
	}
	principal, ok := value.(service.Principal)
	return principal, ok
}
