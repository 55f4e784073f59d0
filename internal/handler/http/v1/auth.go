package v1

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/emergency_callout_system/internal/service"
	"github.com/sirupsen/logrus"
)

const responderIDKey = "responderID"

// SessionAuthMiddleware - middleware аутентификации по сессионному токену.
// Токен разрешается в личность добровольца через внешний сервис сессий;
// само издание сессий этому сервису не принадлежит.
func SessionAuthMiddleware(sessions service.SessionStore, log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader("X-Session-Token")
		if token == "" {
			// Проверяем также заголовок Authorization: Bearer
			authHeader := c.GetHeader("Authorization")
			if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
				token = strings.TrimPrefix(authHeader, "Bearer ")
			}
		}

		if token == "" {
			log.Warn("Session token missing from request")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}

		session, err := sessions.Resolve(c.Request.Context(), token)
		if err != nil {
			log.WithError(err).Error("Failed to resolve session token")
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
			return
		}
		if session == nil {
			log.Warn("Invalid or expired session token")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired session"})
			return
		}

		c.Set(responderIDKey, session.ResponderID)
		c.Next()
	}
}
