package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
)

// userIDKey is the key under which the authenticated actor's id is stored.
const userIDKey = contextKey("userID")

// approvalLevelKey is the key under which the actor's approval level is stored.
const approvalLevelKey = contextKey("approvalLevel")

// GetUserIDFromContext retrieves the authenticated actor id from the Gin context.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	userID, ok := c.Request.Context().Value(userIDKey).(string)
	if !ok || userID == "" {
		return "", false
	}
	return userID, true
}

// GetApprovalLevelFromContext retrieves the actor's approval level (1 or 2)
// from the request context. Zero means no approval capability.
func GetApprovalLevelFromContext(ctx context.Context) int {
	level, ok := ctx.Value(approvalLevelKey).(int)
	if !ok {
		return 0
	}
	return level
}
