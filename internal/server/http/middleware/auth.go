package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/spicemart/spicemart/internal/domain/model"
	pkgAuth "github.com/spicemart/spicemart/internal/pkg/auth"
)

const (
	// UserIDContextKey is a gin context key for the authenticated user
	// identifier.
	UserIDContextKey = "userID"
	authCookieName   = "spicemart_token"
)

// TokenParser resolves a raw token into a user identifier.
type TokenParser interface {
	ParseToken(token string) (string, error)
}

// UserProvider loads users for role checks.
type UserProvider interface {
	UserByID(ctx context.Context, id string) (*model.User, error)
}

// AuthRequired ensures the request carries a valid token before reaching the
// handler.
func AuthRequired(parser TokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		userID, err := parser.ParseToken(token)
		if err != nil {
			if err == pkgAuth.ErrInvalidToken {
				c.AbortWithStatus(http.StatusUnauthorized)
				return
			}
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}

		c.Set(UserIDContextKey, userID)
		c.Next()
	}
}

// AdminRequired rejects authenticated users that lack the admin role. It must
// run after AuthRequired.
func AdminRequired(users UserProvider) gin.HandlerFunc {
	return func(c *gin.Context) {
		val, ok := c.Get(UserIDContextKey)
		if !ok {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}
		userID, _ := val.(string)

		usr, err := users.UserByID(c.Request.Context(), userID)
		if err != nil {
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}
		if !usr.Role.Admin() {
			c.AbortWithStatus(http.StatusForbidden)
			return
		}
		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(strings.ToLower(authHeader), "bearer ") {
		return strings.TrimSpace(authHeader[7:])
	}

	if cookie, err := c.Cookie(authCookieName); err == nil {
		return cookie
	}
	return ""
}

// SetAuthCookie writes the auth token cookie to the response.
func SetAuthCookie(c *gin.Context, token string) {
	c.SetCookie(authCookieName, token, 0, "/", "", false, true)
	c.Header("Authorization", "Bearer "+token)
}
