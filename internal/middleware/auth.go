package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/mnakagawa/todolist-api/internal/constants"
	apierrors "github.com/mnakagawa/todolist-api/internal/errors"
	"github.com/mnakagawa/todolist-api/internal/token"
)

const bearerPrefix = "Bearer "

// RequireAuth verifies the bearer token in the Authorization header and
// stores the subject user ID in the context. Requests with a missing,
// malformed, expired, or incorrectly signed token are rejected before any
// handler runs.
func RequireAuth(tokens *token.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, bearerPrefix) {
			apierrors.Unauthorized(c, "missing or malformed bearer token")
			c.Abort()
			return
		}

		userID, err := tokens.Verify(strings.TrimPrefix(header, bearerPrefix))
		if err != nil {
			apierrors.Unauthorized(c, "invalid or expired token")
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyUserID, userID)
		c.Next()
	}
}

// GetUserID retrieves the current user ID from context
func GetUserID(c *gin.Context) (uint64, bool) {
	userID, exists := c.Get(constants.ContextKeyUserID)
	if !exists {
		return 0, false
	}

	id, ok := userID.(uint64)
	if !ok {
		return 0, false
	}
	return id, true
}
