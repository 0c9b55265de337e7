package handlers_test

import (
	"encoding/json"
	"net/http"

	"github.com/SscSPs/bank_portal/internal/apperrors"
	"github.com/SscSPs/bank_portal/internal/core/domain"
	"github.com/SscSPs/bank_portal/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

func (suite *PortalHandlerTestSuite) TestCreateGroup_Created() {
	cmd := domain.NewGroup{GroupName: "Household", GroupType: domain.GroupFamily, MaxAccounts: 4}
	suite.mockGroups.On("CreateGroup", mock.Anything, suite.session, cmd).
		Return(&domain.Group{ID: 4, GroupName: "Household", GroupType: domain.GroupFamily}, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/groups",
		map[string]any{"groupName": "Household", "groupType": "FAMILY", "maxAccounts": 4}, true)

	suite.Equal(http.StatusCreated, w.Code)
	suite.mockGroups.AssertExpectations(suite.T())
}

func (suite *PortalHandlerTestSuite) TestCreateGroup_MissingNameMakesNoCall() {
	w := suite.do(http.MethodPost, "/api/v1/groups", map[string]any{"groupType": "FAMILY"}, true)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockGroups.AssertNotCalled(suite.T(), "CreateGroup", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *PortalHandlerTestSuite) TestAddAccountToGroup_ReturnsMembers() {
	members := []domain.Account{{ID: 1, AccountNumber: "ACC-1"}, {ID: 9, AccountNumber: "ACC-9"}}
	suite.mockGroups.On("AddAccount", mock.Anything, suite.session, int64(4), int64(9)).Return(members, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/groups/4/accounts/9", nil, true)

	suite.Equal(http.StatusOK, w.Code)
	var got []domain.Account
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &got))
	suite.Len(got, 2)
}

func (suite *PortalHandlerTestSuite) TestRemoveAccountFromGroup_InvalidAccountID() {
	w := suite.do(http.MethodDelete, "/api/v1/groups/4/accounts/nine", nil, true)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockGroups.AssertNotCalled(suite.T(), "RemoveAccount", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *PortalHandlerTestSuite) TestGroupBalance() {
	suite.mockGroups.On("Balance", mock.Anything, suite.session, int64(4)).Return(decimal.RequireFromString("1250.50"), nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/groups/4/balance", nil, true)

	suite.Equal(http.StatusOK, w.Code)
	var got dto.AmountResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &got))
	suite.True(got.Amount.Equal(decimal.RequireFromString("1250.5")))
}

func (suite *PortalHandlerTestSuite) TestDeleteGroup_NotFound() {
	suite.mockGroups.On("DeleteGroup", mock.Anything, suite.session, int64(99)).
		Return(nil, apperrors.NewAPIError(http.StatusNotFound, "Group not found")).Once()

	w := suite.do(http.MethodDelete, "/api/v1/groups/99", nil, true)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.Equal("Group not found", suite.decode(w)["error"])
}
