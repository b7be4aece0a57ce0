package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

// ActivityRecorder refreshes a user's last_active timestamp. Failures
// are logged, never surfaced: activity tracking must not break requests.
type ActivityRecorder interface {
	TouchLastActive(ctx context.Context, userID int) error
}

type AuthMiddleware struct {
	secret   []byte
	activity ActivityRecorder
	log      *zap.Logger
}

func NewAuthMiddleware(accessSecret string, activity ActivityRecorder, log *zap.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		secret:   []byte(accessSecret),
		activity: activity,
		log:      log,
	}
}

// RequireAuth validates the bearer token and puts the authenticated
// user id into the gin context under "user_id". The identity provider
// issues the token; this core trusts its user_id claim as-is.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}
		raw := strings.TrimPrefix(header, "Bearer ")

		token, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return m.secret, nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}
		rawID, ok := claims["user_id"].(float64)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}
		userID := int(rawID)

		c.Set("user_id", userID)

		if m.activity != nil {
			if err := m.activity.TouchLastActive(c.Request.Context(), userID); err != nil {
				m.log.Debug("failed to touch last_active", zap.Int("user_id", userID), zap.Error(err))
			}
		}

		c.Next()
	}
}
