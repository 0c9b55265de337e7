package handlers_test

import (
	"net/http"

	"github.com/SscSPs/bank_portal/internal/apperrors"
	"github.com/SscSPs/bank_portal/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

func (suite *PortalHandlerTestSuite) TestAddDecorator_ReturnsAccountDecorators() {
	suite.mockDecorators.On("Add", mock.Anything, suite.session, mock.MatchedBy(func(cmd domain.NewDecorator) bool {
		return cmd.AccountID == 3 && cmd.DecoratorType == domain.Insurance &&
			cmd.CoverageAmount != nil && cmd.CoverageAmount.Equal(decimal.NewFromInt(5000))
	})).Return([]domain.Decorator{{ID: 8, AccountID: 3, DecoratorType: domain.Insurance, IsActive: true}}, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/decorators/accounts/3",
		map[string]any{"decoratorType": "INSURANCE", "coverageAmount": 5000, "insuranceType": "BASIC"}, true)

	suite.Equal(http.StatusCreated, w.Code)
	suite.mockDecorators.AssertExpectations(suite.T())
}

func (suite *PortalHandlerTestSuite) TestAddDecorator_ForbiddenIsInline() {
	suite.mockDecorators.On("Add", mock.Anything, suite.session, mock.Anything).
		Return(nil, apperrors.ErrForbidden).Once()

	w := suite.do(http.MethodPost, "/api/v1/decorators/accounts/3", map[string]any{"decoratorType": "PREMIUM_SERVICES"}, true)

	suite.Equal(http.StatusForbidden, w.Code)
	suite.NotContains(suite.decode(w), "redirect")
}

func (suite *PortalHandlerTestSuite) TestRemoveDecorator() {
	suite.mockDecorators.On("Remove", mock.Anything, suite.session, int64(3), int64(8)).Return([]domain.Decorator{}, nil).Once()

	w := suite.do(http.MethodDelete, "/api/v1/decorators/accounts/3/8", nil, true)

	suite.Equal(http.StatusOK, w.Code)
	suite.mockDecorators.AssertExpectations(suite.T())
}

func (suite *PortalHandlerTestSuite) TestApplyMonthlyFees_NoContent() {
	suite.mockDecorators.On("ApplyMonthlyFees", mock.Anything, suite.session).Return(nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/decorators/apply-monthly-fees", nil, true)

	suite.Equal(http.StatusNoContent, w.Code)
}
