package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/invoicehub/invoicehub/internal/server/http/middleware"
)

// User-facing messages of the auth endpoints.
const (
	MsgInvalidCredentials = "Invalid credentials."
	MsgSomethingWentWrong = "Something went wrong."
)

// CurrentUserID extracts authenticated user identifier from context.
func CurrentUserID(c *gin.Context) string {
	val, ok := c.Get(middleware.UserIDContextKey)
	if !ok {
		return ""
	}
	id, _ := val.(string)
	return id
}
