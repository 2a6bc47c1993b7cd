package middleware

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/costureira_pro/internal/core/ports/services"
	"github.com/gin-gonic/gin"
)

// EnsureProfile provisions the account of the authenticated user on its first
// request. Must run after AuthMiddleware.
func EnsureProfile(profileSvc portssvc.ProfileSvcFacade) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		userID, ok := GetUserIDFromContext(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		if _, err := profileSvc.EnsureProfile(ctx, userID, UserEmailFromCtx(ctx)); err != nil {
			GetLoggerFromCtx(ctx).Error("Failed to provision profile", slog.String("error", err.Error()))
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to load account"})
			return
		}
		c.Next()
	}
}
