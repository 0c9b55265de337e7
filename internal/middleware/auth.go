package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/SscSPs/bank_portal/internal/apperrors"
	portssvc "github.com/SscSPs/bank_portal/internal/core/ports/services"
	"github.com/SscSPs/bank_portal/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// LoginPath is where clients are sent when their session ends.
const LoginPath = "/login"

// AbortSessionExpired answers 401 and tells the client to go to the login page.
func AbortSessionExpired(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": msg, "redirect": LoginPath})
}

// SessionAuth creates a Gin middleware handler that validates the portal JWT
// and resolves the session it names.
func SessionAuth(jwtSecret string, sessions portssvc.SessionResolverSvc) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			logger.Warn("Authorization header missing")
			AbortSessionExpired(c, "Authorization header required")
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			logger.Warn("Authorization header format invalid")
			AbortSessionExpired(c, "Authorization header format must be Bearer {token}")
			return
		}

		claims, err := utils.ParseAndValidateJWT(parts[1], jwtSecret)
		if err != nil {
			logger.Warn("Invalid token", slog.String("error", err.Error()))
			msg := "Invalid token"
			if errors.Is(err, jwt.ErrTokenExpired) {
				msg = "Token has expired"
			} else if errors.Is(err, jwt.ErrTokenNotValidYet) {
				msg = "Token not valid yet"
			}
			AbortSessionExpired(c, msg)
			return
		}

		sessionID := claims.Subject
		if sessionID == "" {
			logger.Error("Session ID (subject) missing from valid token")
			AbortSessionExpired(c, "Invalid token claims")
			return
		}

		sess, err := sessions.ResolveSession(c.Request.Context(), sessionID)
		if err != nil {
			if errors.Is(err, apperrors.ErrSessionExpired) {
				logger.Info("Session no longer valid", slog.String("session_id", sessionID))
				AbortSessionExpired(c, "Session expired")
				return
			}
			logger.Error("Failed to resolve session", slog.String("session_id", sessionID), slog.String("error", err.Error()))
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve session"})
			return
		}

		enrichedLogger := logger.With(
			slog.Int64("user_id", sess.User.ID),
			slog.String("session_id", sess.ID),
		)
		ctx := WithLogger(WithSession(c.Request.Context(), sess), enrichedLogger)
		c.Request = c.Request.WithContext(ctx)
		c.Set(string(sessionKey), sess)
		c.Set(string(loggerKey), enrichedLogger)

		c.Next()
	}
}
