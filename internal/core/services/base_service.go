package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/bank_portal/internal/apperrors"
	"github.com/SscSPs/bank_portal/internal/core/domain"
	"github.com/SscSPs/bank_portal/internal/middleware"
)

// BaseService provides common functionality for all services
type BaseService struct{}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	logger := middleware.GetLoggerFromCtx(ctx)
	if logger == nil {
		// Return a default logger if not found in context
		return slog.Default()
	}
	return logger
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+2)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	logger.Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	logger.Debug(msg, keyvals...)
}

// Authorize checks that the session user holds a role granting capability.
func (s *BaseService) Authorize(ctx context.Context, sess *domain.Session, capability domain.Capability) error {
	if sess == nil {
		return apperrors.ErrSessionExpired
	}
	if !domain.Can(sess.Roles(), capability) {
		s.LogDebug(ctx, "Capability denied",
			slog.Int64("user_id", sess.User.ID),
			slog.String("capability", string(capability)))
		return fmt.Errorf("%w: %s requires one of the roles allowed for %s", apperrors.ErrForbidden, sess.User.Username, capability)
	}
	return nil
}
