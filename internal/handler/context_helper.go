package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/noah-isme/enterprise-data-api/internal/middleware"
)

// principalFields describes the authenticated caller for audit logging.
func principalFields(c *gin.Context) []zap.Field {
	claims, ok := middleware.Claims(c)
	if !ok {
		return nil
	}
	return []zap.Field{zap.String("user_id", claims.UserID), zap.String("role", string(claims.Role))}
}
