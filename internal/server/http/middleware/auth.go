package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	// UserIDContextKey is a gin context key for authenticated user identifier.
	UserIDContextKey  = "userID"
	sessionCookieName = "invoicehub_session"
)

// SessionParser resolves a session token to the user it was issued for.
type SessionParser interface {
	ParseSession(token string) (string, error)
}

// SessionGate resolves the request session and applies the access rules to
// every request before any handler runs.
func SessionGate(sessions SessionParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := ""
		if token := extractToken(c); token != "" {
			if id, err := sessions.ParseSession(token); err == nil {
				userID = id
			}
		}

		switch Decide(c.Request.URL.Path, userID != "") {
		case DecisionRedirectLogin:
			c.Redirect(http.StatusSeeOther, LoginPath)
			c.Abort()
			return
		case DecisionRedirectDashboard:
			c.Redirect(http.StatusSeeOther, DashboardPath)
			c.Abort()
			return
		}

		if userID != "" {
			c.Set(UserIDContextKey, userID)
		}
		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	if cookie, err := c.Cookie(sessionCookieName); err == nil && cookie != "" {
		return cookie
	}

	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(strings.ToLower(authHeader), "bearer ") {
		return strings.TrimSpace(authHeader[7:])
	}
	return ""
}

// SetSessionCookie writes the session token cookie to the response.
func SetSessionCookie(c *gin.Context, token string) {
	c.SetCookie(sessionCookieName, token, 0, "/", "", false, true)
}

// ClearSessionCookie expires the session cookie.
func ClearSessionCookie(c *gin.Context) {
	c.SetCookie(sessionCookieName, "", -1, "/", "", false, true)
}
