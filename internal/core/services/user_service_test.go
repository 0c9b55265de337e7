package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/bank_portal/internal/apperrors"
	"github.com/SscSPs/bank_portal/internal/core/domain"
	"github.com/SscSPs/bank_portal/internal/core/ports/gateways"
	portssvc "github.com/SscSPs/bank_portal/internal/core/ports/services"
	"github.com/SscSPs/bank_portal/internal/core/services"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type UserServiceTestSuite struct {
	suite.Suite
	api     *MockBankAPI
	service portssvc.UserSvcFacade
	admin   *domain.Session
	manager *domain.Session
	ctx     context.Context
}

func (s *UserServiceTestSuite) SetupTest() {
	s.api = new(MockBankAPI)
	s.service = services.NewUserService(gateways.Narrow[gateways.UsersAPI](s.api.factory()))
	s.admin = sessionWithRoles("a1", 1, "ROLE_ADMIN")
	s.manager = sessionWithRoles("m1", 20, "ROLE_MANAGER")
	s.ctx = context.Background()
}

func (s *UserServiceTestSuite) TearDownTest() {
	s.api.AssertExpectations(s.T())
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}

func (s *UserServiceTestSuite) TestCreateUser_NormalizesRolesAndReReads() {
	stored := &domain.User{ID: 12, Username: "teller1", Roles: []string{"ROLE_TELLER"}}
	mock.InOrder(
		s.api.On("CreateUser", s.ctx, mock.MatchedBy(func(cmd domain.NewUser) bool {
			return cmd.Username == "teller1" && len(cmd.Roles) == 1 && cmd.Roles[0] == "ROLE_TELLER"
		})).Return(&domain.User{ID: 12}, nil).Once(),
		s.api.On("GetUser", s.ctx, int64(12)).Return(stored, nil).Once(),
	)

	got, err := s.service.CreateUser(s.ctx, s.admin, domain.NewUser{
		Username: " teller1 ",
		Email:    "teller1@bank.test",
		Password: "secret1",
		Roles:    []string{"teller"},
	})
	s.Require().NoError(err)
	s.Equal(stored, got)
}

func (s *UserServiceTestSuite) TestCreateUser_ManagerForbidden() {
	_, err := s.service.CreateUser(s.ctx, s.manager, domain.NewUser{Username: "x", Email: "x@bank.test", Password: "secret1"})
	s.ErrorIs(err, apperrors.ErrForbidden)
	s.api.AssertNotCalled(s.T(), "CreateUser", mock.Anything, mock.Anything)
}

func (s *UserServiceTestSuite) TestSetActive_ReReadsUser() {
	disabled := &domain.User{ID: 5, IsActive: false}
	mock.InOrder(
		s.api.On("SetUserActive", s.ctx, int64(5), false).Return(&domain.User{ID: 5}, nil).Once(),
		s.api.On("GetUser", s.ctx, int64(5)).Return(disabled, nil).Once(),
	)

	got, err := s.service.SetActive(s.ctx, s.admin, 5, false)
	s.Require().NoError(err)
	s.Equal(disabled, got)
}

func (s *UserServiceTestSuite) TestSetActive_CannotDisableSelf() {
	_, err := s.service.SetActive(s.ctx, s.admin, 1, false)
	s.ErrorIs(err, apperrors.ErrValidation)
	s.api.AssertNotCalled(s.T(), "SetUserActive", mock.Anything, mock.Anything, mock.Anything)
}

func (s *UserServiceTestSuite) TestAddRole_ReReadsUser() {
	promoted := &domain.User{ID: 5, Roles: []string{"ROLE_CUSTOMER", "ROLE_TELLER"}}
	mock.InOrder(
		s.api.On("AddRole", s.ctx, int64(5), domain.RoleTeller).Return(&domain.User{ID: 5}, nil).Once(),
		s.api.On("GetUser", s.ctx, int64(5)).Return(promoted, nil).Once(),
	)

	got, err := s.service.AddRole(s.ctx, s.admin, 5, "ROLE_TELLER")
	s.Require().NoError(err)
	s.Equal(promoted, got)
}

func (s *UserServiceTestSuite) TestAddRole_UnknownRoleMakesNoCall() {
	_, err := s.service.AddRole(s.ctx, s.admin, 5, "AUDITOR")
	s.ErrorIs(err, apperrors.ErrValidation)
	s.api.AssertNotCalled(s.T(), "AddRole", mock.Anything, mock.Anything, mock.Anything)
}
