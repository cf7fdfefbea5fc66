// internal/middleware/auth.go
package middleware

import (
	"crypto/subtle"
	"log/slog"
	"net/http"
	"strings"

	"contaflow-bot/internal/auth"

	"github.com/gin-gonic/gin"
)

const UserIDKey = "user_id"

const telegramSecretHeader = "X-Telegram-Bot-Api-Secret-Token"

type AuthMiddleware struct {
	tokenService *auth.TokenService
}

func NewAuthMiddleware(ts *auth.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenService: ts}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			return
		}

		tokenStr, ok := strings.CutPrefix(authHeader, "Bearer ")
		if !ok || tokenStr == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid Authorization header format"})
			return
		}

		userID, err := m.tokenService.ParseToken(tokenStr)
		if err != nil {
			slog.Debug("Token rejected", "error", err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		c.Set(UserIDKey, userID)
		c.Next()
	}
}

// UserID достаёт id пользователя, положенный RequireAuth.
func UserID(c *gin.Context) (string, bool) {
	v, ok := c.Get(UserIDKey)
	if !ok {
		return "", false
	}
	userID, ok := v.(string)
	return userID, ok && userID != ""
}

// RequireTelegramSecret сверяет секрет вебхука; пустой секрет отключает проверку.
func RequireTelegramSecret(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if secret == "" {
			c.Next()
			return
		}
		got := c.GetHeader(telegramSecretHeader)
		if subtle.ConstantTimeCompare([]byte(got), []byte(secret)) != 1 {
			slog.Warn("Webhook call with bad secret token", "ip", c.ClientIP())
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		c.Next()
	}
}
