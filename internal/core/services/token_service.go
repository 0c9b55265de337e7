package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/SscSPs/bank_portal/internal/core/domain"
	portssvc "github.com/SscSPs/bank_portal/internal/core/ports/services"
	"github.com/SscSPs/bank_portal/internal/platform/config"
	"github.com/SscSPs/bank_portal/internal/utils"
)

// tokenService signs portal access tokens. The token never carries the
// upstream bearer token, only the id of the session holding it.
type tokenService struct {
	BaseService
	cfg *config.Config
}

// NewTokenService creates a new instance of tokenService.
func NewTokenService(cfg *config.Config) portssvc.TokenSvc {
	return &tokenService{cfg: cfg}
}

// GenerateAccessToken creates a new JWT access token for the given session.
func (s *tokenService) GenerateAccessToken(ctx context.Context, sess *domain.Session) (string, time.Time, error) {
	expiry := s.cfg.JWTExpiryDuration
	expiryTime := time.Now().Add(expiry)
	if !sess.ExpiresAt.IsZero() && sess.ExpiresAt.Before(expiryTime) {
		expiryTime = sess.ExpiresAt
		expiry = time.Until(expiryTime)
	}

	accessToken, err := utils.GenerateJWT(sess.ID, s.cfg.JWTSecret, expiry, s.cfg.JWTIssuer)
	if err != nil {
		s.LogError(ctx, err, "Failed to generate access token", slog.Int64("user_id", sess.User.ID))
		return "", time.Time{}, err
	}
	return accessToken, expiryTime, nil
}
