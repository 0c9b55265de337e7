package handlers_test

import (
	"encoding/json"
	"net/http"

	"github.com/SscSPs/bank_portal/internal/core/domain"
	"github.com/SscSPs/bank_portal/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

func (suite *PortalHandlerTestSuite) TestChangeStrategy_ReturnsReReadReport() {
	report := &domain.InterestReport{
		AccountNumber:   "ACC-3",
		AccountType:     "SAVINGS",
		CurrentStrategy: "TIERED",
		CurrentBalance:  decimal.NewFromInt(10000),
		YearlyInterest:  decimal.RequireFromString("250.00"),
	}
	suite.mockInterest.On("ChangeStrategy", mock.Anything, suite.session, int64(3), "TIERED").Return(report, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/interest/accounts/3/change-strategy", map[string]string{"strategyName": "TIERED"}, true)

	suite.Equal(http.StatusOK, w.Code)
	var got domain.InterestReport
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &got))
	suite.Equal("TIERED", got.CurrentStrategy)
	suite.True(got.YearlyInterest.Equal(decimal.RequireFromString("250")))
	suite.mockInterest.AssertExpectations(suite.T())
}

func (suite *PortalHandlerTestSuite) TestChangeStrategy_MissingNameMakesNoCall() {
	w := suite.do(http.MethodPost, "/api/v1/interest/accounts/3/change-strategy", map[string]string{}, true)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockInterest.AssertNotCalled(suite.T(), "ChangeStrategy", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *PortalHandlerTestSuite) TestCompareStrategies_RequiresBoth() {
	w := suite.do(http.MethodGet, "/api/v1/interest/accounts/3/compare?strategy1=SIMPLE", nil, true)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockInterest.AssertNotCalled(suite.T(), "Compare", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *PortalHandlerTestSuite) TestFutureInterest() {
	suite.mockInterest.On("FutureInterest", mock.Anything, suite.session, int64(3), 12).
		Return(decimal.RequireFromString("312.40"), nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/interest/accounts/3/future?months=12", nil, true)

	suite.Equal(http.StatusOK, w.Code)
	var got dto.AmountResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &got))
	suite.True(got.Amount.Equal(decimal.RequireFromString("312.4")))
}

func (suite *PortalHandlerTestSuite) TestFutureInterest_RejectsZeroMonths() {
	w := suite.do(http.MethodGet, "/api/v1/interest/accounts/3/future?months=0", nil, true)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockInterest.AssertNotCalled(suite.T(), "FutureInterest", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *PortalHandlerTestSuite) TestApplyAllInterest_NoContent() {
	suite.mockInterest.On("ApplyAll", mock.Anything, suite.session).Return(nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/interest/apply-all", nil, true)

	suite.Equal(http.StatusNoContent, w.Code)
	suite.mockInterest.AssertExpectations(suite.T())
}
