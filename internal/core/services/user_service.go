package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/bank_portal/internal/apperrors"
	"github.com/SscSPs/bank_portal/internal/core/domain"
	"github.com/SscSPs/bank_portal/internal/core/ports/gateways"
	portssvc "github.com/SscSPs/bank_portal/internal/core/ports/services"
)

type userService struct {
	BaseService
	api gateways.Factory[gateways.UsersAPI]
}

// NewUserService creates the user administration client.
func NewUserService(api gateways.Factory[gateways.UsersAPI]) portssvc.UserSvcFacade {
	return &userService{api: api}
}

func (s *userService) ListUsers(ctx context.Context, sess *domain.Session) ([]domain.User, error) {
	if err := s.Authorize(ctx, sess, domain.CapViewUsers); err != nil {
		return nil, err
	}
	return s.api(sess).ListUsers(ctx)
}

func (s *userService) GetUser(ctx context.Context, sess *domain.Session, userID int64) (*domain.User, error) {
	if sess.User.ID != userID {
		if err := s.Authorize(ctx, sess, domain.CapViewUsers); err != nil {
			return nil, err
		}
	}
	return s.api(sess).GetUser(ctx, userID)
}

func (s *userService) GetUserByUsername(ctx context.Context, sess *domain.Session, username string) (*domain.User, error) {
	if err := s.Authorize(ctx, sess, domain.CapViewUsers); err != nil {
		return nil, err
	}
	return s.api(sess).GetUserByUsername(ctx, strings.TrimSpace(username))
}

func (s *userService) SearchUsers(ctx context.Context, sess *domain.Session, name string) ([]domain.User, error) {
	if err := s.Authorize(ctx, sess, domain.CapViewUsers); err != nil {
		return nil, err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperrors.NewValidationError("name", "search term is required")
	}
	return s.api(sess).SearchUsers(ctx, name)
}

func (s *userService) CreateUser(ctx context.Context, sess *domain.Session, cmd domain.NewUser) (*domain.User, error) {
	if err := s.Authorize(ctx, sess, domain.CapAdministrateUsers); err != nil {
		return nil, err
	}
	cmd.Username = strings.TrimSpace(cmd.Username)
	switch {
	case cmd.Username == "":
		return nil, apperrors.NewValidationError("username", "username is required")
	case cmd.Password == "":
		return nil, apperrors.NewValidationError("password", "password is required")
	case !strings.Contains(cmd.Email, "@"):
		return nil, apperrors.NewValidationError("email", "a valid email is required")
	}
	for i, r := range cmd.Roles {
		role, ok := domain.ParseRole(r)
		if !ok {
			return nil, apperrors.NewValidationError("roles", fmt.Sprintf("unknown role %q", r))
		}
		cmd.Roles[i] = role.WireName()
	}
	client := s.api(sess)
	created, err := client.CreateUser(ctx, cmd)
	if err != nil {
		return nil, err
	}
	s.LogInfo(ctx, "User created", slog.Int64("created_user_id", created.ID))
	return client.GetUser(ctx, created.ID)
}

func (s *userService) SetActive(ctx context.Context, sess *domain.Session, userID int64, active bool) (*domain.User, error) {
	if err := s.Authorize(ctx, sess, domain.CapAdministrateUsers); err != nil {
		return nil, err
	}
	if userID == sess.User.ID && !active {
		return nil, apperrors.NewValidationError("isActive", "you cannot deactivate your own user")
	}
	client := s.api(sess)
	if _, err := client.SetUserActive(ctx, userID, active); err != nil {
		return nil, err
	}
	s.LogInfo(ctx, "User status changed", slog.Int64("target_user_id", userID), slog.Bool("active", active))
	return client.GetUser(ctx, userID)
}

func (s *userService) AddRole(ctx context.Context, sess *domain.Session, userID int64, role domain.Role) (*domain.User, error) {
	if err := s.Authorize(ctx, sess, domain.CapAdministrateUsers); err != nil {
		return nil, err
	}
	normalized, ok := domain.ParseRole(string(role))
	if !ok {
		return nil, apperrors.NewValidationError("role", fmt.Sprintf("unknown role %q", role))
	}
	role = normalized
	client := s.api(sess)
	if _, err := client.AddRole(ctx, userID, role); err != nil {
		return nil, err
	}
	s.LogInfo(ctx, "Role granted", slog.Int64("target_user_id", userID), slog.String("role", string(role)))
	return client.GetUser(ctx, userID)
}
