package middleware

import (
	"errors"
	"strings"

	apperrors "github.com/born2vin/hoskote-backend/errors"
	"github.com/born2vin/hoskote-backend/internal/auth"
	"github.com/born2vin/hoskote-backend/internal/store"
	"github.com/born2vin/hoskote-backend/logger"
	"github.com/gin-gonic/gin"
)

// AuthMiddleware validates the Bearer token and loads the authenticated user
// into the request context. Deactivated accounts are rejected even with a
// valid token.
func AuthMiddleware(issuer *auth.TokenIssuer, users store.UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		log := logger.GetLogger()

		token := extractBearerToken(c)
		if token == "" {
			_ = c.Error(apperrors.Unauthorized("missing_token", "Authorization required"))
			c.Abort()
			return
		}

		userID, err := issuer.Validate(token)
		if err != nil {
			log.Debugw("Token validation failed", "path", c.Request.URL.Path, "error", err)
			_ = c.Error(err)
			c.Abort()
			return
		}

		user, err := users.GetUserByID(c.Request.Context(), userID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				_ = c.Error(apperrors.Unauthorized("unknown_user", "Account not found or deactivated"))
			} else {
				_ = c.Error(apperrors.NewDatabaseError(err))
			}
			c.Abort()
			return
		}

		c.Set(UserIDKey, user.ID)
		c.Set(UsernameKey, user.Username)

		c.Next()
	}
}

func extractBearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	return ""
}

// GetUserID returns the authenticated user's ID from the gin context.
func GetUserID(c *gin.Context) string {
	return c.GetString(UserIDKey)
}
