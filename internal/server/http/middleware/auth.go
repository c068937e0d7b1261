package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// AdminCookieName is the session cookie guarding administrative routes.
// The name is part of the storefront's API contract.
const AdminCookieName = "admin_token"

// SessionValidator checks admin session tokens.
type SessionValidator interface {
	ValidateSession(token string) error
}

// AdminRequired rejects requests that do not carry a live admin session cookie.
func AdminRequired(sessions SessionValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(AdminCookieName)
		if err != nil || sessions.ValidateSession(token) != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		c.Next()
	}
}

// SetAdminCookie writes the admin session cookie to the response.
func SetAdminCookie(c *gin.Context, token string) {
	c.SetCookie(AdminCookieName, token, 0, "/", "", false, true)
}

// ClearAdminCookie expires the admin session cookie.
func ClearAdminCookie(c *gin.Context) {
	c.SetCookie(AdminCookieName, "", -1, "/", "", false, true)
}
