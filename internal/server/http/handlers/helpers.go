package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/spicemart/spicemart/internal/server/http/middleware"
)

// CurrentUserID extracts the authenticated user identifier from context.
func CurrentUserID(c *gin.Context) string {
	val, ok := c.Get(middleware.UserIDContextKey)
	if !ok {
		return ""
	}
	id, _ := val.(string)
	return id
}

func errorMessage(c *gin.Context, status int, err error) {
	c.JSON(status, gin.H{"error": err.Error()})
}
