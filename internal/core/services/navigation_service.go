package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/bank_portal/internal/apperrors"
	"github.com/SscSPs/bank_portal/internal/core/domain"
	portssvc "github.com/SscSPs/bank_portal/internal/core/ports/services"
)

type identityRefresher interface {
	RefreshIdentity(ctx context.Context, sess *domain.Session) (*domain.Session, error)
}

type navigationService struct {
	BaseService
	identity identityRefresher
}

// NewNavigationService creates the role-gated navigation service.
func NewNavigationService(identity identityRefresher) portssvc.NavigationSvc {
	return &navigationService{identity: identity}
}

// Menu builds the menu of the session's layout. When the stored profile has
// no known role the profile is re-read once before giving up.
func (s *navigationService) Menu(ctx context.Context, sess *domain.Session) (*domain.Menu, error) {
	roles := sess.Roles()
	if roles.IsEmpty() {
		refreshed, err := s.identity.RefreshIdentity(ctx, sess)
		if err != nil {
			if errors.Is(err, apperrors.ErrSessionExpired) {
				return nil, err
			}
			s.LogError(ctx, err, "Failed to refresh identity for navigation", slog.Int64("user_id", sess.User.ID))
			return nil, fmt.Errorf("%w: %v", apperrors.ErrIdentityUnresolved, err)
		}
		roles = refreshed.Roles()
	}

	menu, ok := domain.BuildMenu(roles)
	if !ok {
		s.LogDebug(ctx, "No known role for user", slog.Int64("user_id", sess.User.ID))
		return nil, apperrors.ErrIdentityUnresolved
	}
	return &menu, nil
}
