package middleware

import (
	"net/http"
	"strings"

	"yalasafari/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// JWTAuthAdminMiddleware guards admin routes. A request needs a bearer
// token that both validates as a JWT and still has a live session entry
// in Redis, so revoked tokens fail even before their JWT expiry.
func JWTAuthAdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "Missing or invalid Authorization header",
			})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		adminID, err := utils.ExtractIDFromToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "Invalid or expired token",
			})
			return
		}

		session, err := utils.GetAdminSession(utils.GetAuthCacheClient(), utils.HashToken(tokenString))
		if err != nil {
			if err != redis.Nil {
				zap.L().Error("adminAuth: session lookup failed", zap.Error(err))
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "Session expired or revoked",
			})
			return
		}

		c.Set("adminID", adminID)
		c.Set("adminEmail", session.Email)
		c.Next()
	}
}
