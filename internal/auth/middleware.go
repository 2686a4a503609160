package auth

import (
	"log/slog"
	"net/http"
	"strings"

	httperr "github.com/coursehive-lab/coursehive/internal/core/errors"
	"github.com/gin-gonic/gin"
)

const userIDKey = "user_id"

// Middleware rejects requests without a valid bearer token and stores the
// user id on the gin context.
func Middleware(v *Verifier) gin.HandlerFunc {
	if v == nil {
		panic("auth: verifier must not be nil")
	}

	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		tokenString, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || strings.TrimSpace(tokenString) == "" {
			httperr.Abort(c, http.StatusUnauthorized, httperr.HttpUnauthenticatedError, "Authentication credentials were not provided")
			return
		}

		userID, err := v.Verify(strings.TrimSpace(tokenString))
		if err != nil {
			slog.Warn("[Auth] Rejected token", "error", err, "path", c.FullPath())
			httperr.Abort(c, http.StatusUnauthorized, httperr.HttpUnauthenticatedError, "Invalid or expired token")
			return
		}

		c.Set(userIDKey, userID)
		c.Next()
	}
}

// UserID returns the authenticated user id set by Middleware.
func UserID(c *gin.Context) (string, bool) {
	userID := c.GetString(userIDKey)
	return userID, userID != ""
}

// SetUserID stores userID on the context. Used by tests that skip token parsing.
func SetUserID(c *gin.Context, userID string) {
	c.Set(userIDKey, userID)
}
