package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/bank_portal/internal/apperrors"
	"github.com/SscSPs/bank_portal/internal/core/domain"
	"github.com/SscSPs/bank_portal/internal/core/ports/gateways"
	portssvc "github.com/SscSPs/bank_portal/internal/core/ports/services"
	"github.com/SscSPs/bank_portal/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type DecoratorServiceTestSuite struct {
	suite.Suite
	api      *MockBankAPI
	service  portssvc.DecoratorSvc
	customer *domain.Session
	manager  *domain.Session
	ctx      context.Context
}

func (s *DecoratorServiceTestSuite) SetupTest() {
	s.api = new(MockBankAPI)
	s.service = services.NewDecoratorService(gateways.Narrow[gateways.DecoratorsAPI](s.api.factory()))
	s.customer = sessionWithRoles("c1", 10, "ROLE_CUSTOMER")
	s.manager = sessionWithRoles("m1", 20, "ROLE_MANAGER")
	s.ctx = context.Background()
}

func (s *DecoratorServiceTestSuite) TearDownTest() {
	s.api.AssertExpectations(s.T())
}

func TestDecoratorServiceTestSuite(t *testing.T) {
	suite.Run(t, new(DecoratorServiceTestSuite))
}

func (s *DecoratorServiceTestSuite) TestAdd_ReReadsAccountDecorators() {
	limit := decimal.NewFromInt(500)
	cmd := domain.NewDecorator{DecoratorType: domain.OverdraftProtection, AccountID: 3, OverdraftLimit: &limit}
	list := []domain.Decorator{{ID: 8, AccountID: 3, DecoratorType: domain.OverdraftProtection, IsActive: true}}
	mock.InOrder(
		s.api.On("AddDecorator", s.ctx, cmd).Return(&domain.Decorator{ID: 8}, nil).Once(),
		s.api.On("AccountDecorators", s.ctx, int64(3)).Return(list, nil).Once(),
	)

	got, err := s.service.Add(s.ctx, s.manager, cmd)
	s.Require().NoError(err)
	s.Equal(list, got)
}

func (s *DecoratorServiceTestSuite) TestAdd_OverdraftWithoutLimitMakesNoCall() {
	_, err := s.service.Add(s.ctx, s.manager, domain.NewDecorator{DecoratorType: domain.OverdraftProtection, AccountID: 3})
	s.ErrorIs(err, apperrors.ErrValidation)
	s.api.AssertNotCalled(s.T(), "AddDecorator", mock.Anything, mock.Anything)
}

func (s *DecoratorServiceTestSuite) TestAdd_CustomerForbidden() {
	_, err := s.service.Add(s.ctx, s.customer, domain.NewDecorator{DecoratorType: domain.PremiumServices, AccountID: 3, TierLevel: "GOLD"})
	s.ErrorIs(err, apperrors.ErrForbidden)
	s.api.AssertNotCalled(s.T(), "AddDecorator", mock.Anything, mock.Anything)
}

func (s *DecoratorServiceTestSuite) TestActivate_ReReadsAccountDecorators() {
	list := []domain.Decorator{{ID: 8, AccountID: 3, IsActive: true}}
	mock.InOrder(
		s.api.On("ActivateDecorator", s.ctx, int64(8)).Return(&domain.Decorator{ID: 8, IsActive: true}, nil).Once(),
		s.api.On("AccountDecorators", s.ctx, int64(3)).Return(list, nil).Once(),
	)

	got, err := s.service.Activate(s.ctx, s.manager, 3, 8)
	s.Require().NoError(err)
	s.Equal(list, got)
}

func (s *DecoratorServiceTestSuite) TestRemove_ReReadsAccountDecorators() {
	mock.InOrder(
		s.api.On("RemoveDecorator", s.ctx, int64(8)).Return(nil).Once(),
		s.api.On("AccountDecorators", s.ctx, int64(3)).Return([]domain.Decorator{}, nil).Once(),
	)

	got, err := s.service.Remove(s.ctx, s.manager, 3, 8)
	s.Require().NoError(err)
	s.Empty(got)
}

func (s *DecoratorServiceTestSuite) TestRemove_FailureSkipsReRead() {
	s.api.On("RemoveDecorator", s.ctx, int64(8)).Return(apperrors.NewAPIError(404, "Decorator not found")).Once()

	_, err := s.service.Remove(s.ctx, s.manager, 3, 8)
	s.ErrorIs(err, apperrors.ErrNotFound)
	s.api.AssertNotCalled(s.T(), "AccountDecorators", mock.Anything, mock.Anything)
}
