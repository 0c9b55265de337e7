package services

import (
	"context"
	"log/slog"
	"strings"

	"github.com/SscSPs/bank_portal/internal/apperrors"
	"github.com/SscSPs/bank_portal/internal/core/domain"
	"github.com/SscSPs/bank_portal/internal/core/ports/gateways"
	portssvc "github.com/SscSPs/bank_portal/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

type groupService struct {
	BaseService
	api gateways.Factory[gateways.GroupsAPI]
}

// NewGroupService creates the account group client.
func NewGroupService(api gateways.Factory[gateways.GroupsAPI]) portssvc.GroupSvcFacade {
	return &groupService{api: api}
}

func (s *groupService) ListAll(ctx context.Context, sess *domain.Session) ([]domain.Group, error) {
	if err := s.Authorize(ctx, sess, domain.CapManageGroups); err != nil {
		return nil, err
	}
	return s.api(sess).ListGroups(ctx)
}

func (s *groupService) ListMine(ctx context.Context, sess *domain.Session) ([]domain.Group, error) {
	return s.api(sess).UserGroups(ctx, sess.User.ID)
}

func (s *groupService) GetGroup(ctx context.Context, sess *domain.Session, groupID int64) (*domain.Group, error) {
	return s.api(sess).GetGroup(ctx, groupID)
}

func (s *groupService) Accounts(ctx context.Context, sess *domain.Session, groupID int64) ([]domain.Account, error) {
	return s.api(sess).GroupAccounts(ctx, groupID)
}

func (s *groupService) Balance(ctx context.Context, sess *domain.Session, groupID int64) (decimal.Decimal, error) {
	return s.api(sess).GroupBalance(ctx, groupID)
}

func (s *groupService) Statistics(ctx context.Context, sess *domain.Session, groupID int64) (*domain.GroupStatistics, error) {
	return s.api(sess).GroupStatistics(ctx, groupID)
}

func (s *groupService) CreateGroup(ctx context.Context, sess *domain.Session, cmd domain.NewGroup) (*domain.Group, error) {
	cmd.GroupName = strings.TrimSpace(cmd.GroupName)
	if cmd.GroupName == "" {
		return nil, apperrors.NewValidationError("groupName", "group name is required")
	}
	switch cmd.GroupType {
	case domain.GroupFamily, domain.GroupBusiness, domain.GroupJoint:
	default:
		return nil, apperrors.NewValidationError("groupType", "group type must be FAMILY, BUSINESS or JOINT")
	}
	if cmd.OwnerID == 0 {
		cmd.OwnerID = sess.User.ID
	}
	if cmd.OwnerID != sess.User.ID {
		if err := s.Authorize(ctx, sess, domain.CapManageGroups); err != nil {
			return nil, err
		}
	}
	client := s.api(sess)
	created, err := client.CreateGroup(ctx, cmd)
	if err != nil {
		return nil, err
	}
	s.LogInfo(ctx, "Group created", slog.Int64("group_id", created.ID))
	return client.GetGroup(ctx, created.ID)
}

func (s *groupService) DeleteGroup(ctx context.Context, sess *domain.Session, groupID int64) ([]domain.Group, error) {
	if err := s.Authorize(ctx, sess, domain.CapManageGroups); err != nil {
		return nil, err
	}
	client := s.api(sess)
	if err := client.DeleteGroup(ctx, groupID); err != nil {
		return nil, err
	}
	s.LogInfo(ctx, "Group deleted", slog.Int64("group_id", groupID))
	return client.ListGroups(ctx)
}

func (s *groupService) AddAccount(ctx context.Context, sess *domain.Session, groupID, accountID int64) ([]domain.Account, error) {
	client := s.api(sess)
	if _, err := client.AddAccountToGroup(ctx, groupID, accountID); err != nil {
		return nil, err
	}
	return client.GroupAccounts(ctx, groupID)
}

func (s *groupService) RemoveAccount(ctx context.Context, sess *domain.Session, groupID, accountID int64) ([]domain.Account, error) {
	client := s.api(sess)
	if _, err := client.RemoveAccountFromGroup(ctx, groupID, accountID); err != nil {
		return nil, err
	}
	return client.GroupAccounts(ctx, groupID)
}

func (s *groupService) SetStatus(ctx context.Context, sess *domain.Session, groupID int64, status domain.AccountStatus) (*domain.Group, error) {
	if err := s.Authorize(ctx, sess, domain.CapManageGroups); err != nil {
		return nil, err
	}
	client := s.api(sess)
	if _, err := client.SetGroupStatus(ctx, groupID, status); err != nil {
		return nil, err
	}
	return client.GetGroup(ctx, groupID)
}
