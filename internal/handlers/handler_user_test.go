package handlers_test

import (
	"encoding/json"
	"net/http"

	"github.com/SscSPs/bank_portal/internal/apperrors"
	"github.com/SscSPs/bank_portal/internal/core/domain"
	"github.com/SscSPs/bank_portal/internal/dto"
	"github.com/stretchr/testify/mock"
)

func (suite *PortalHandlerTestSuite) TestCreateUser_RolesWithoutPrefix() {
	suite.signInAs("admin-1", 1, "ROLE_ADMIN")
	suite.mockUsers.On("CreateUser", mock.Anything, suite.session, mock.MatchedBy(func(cmd domain.NewUser) bool {
		return cmd.Username == "teller1" && cmd.Email == "teller1@bank.test"
	})).Return(&domain.User{ID: 12, Username: "teller1", Email: "teller1@bank.test", Roles: []string{"ROLE_TELLER"}, IsActive: true}, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/users", map[string]any{
		"username":  "teller1",
		"email":     "teller1@bank.test",
		"password":  "secret1",
		"firstName": "Tom",
		"lastName":  "Teller",
		"roles":     []string{"ROLE_TELLER"},
	}, true)

	suite.Equal(http.StatusCreated, w.Code)
	var got dto.UserResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &got))
	suite.Equal(int64(12), got.UserID)
	suite.Equal([]domain.Role{domain.RoleTeller}, got.Roles)
	suite.NotContains(w.Body.String(), "secret1")
}

func (suite *PortalHandlerTestSuite) TestCreateUser_InvalidEmailMakesNoCall() {
	w := suite.do(http.MethodPost, "/api/v1/users", map[string]any{
		"username":  "teller1",
		"email":     "not-an-email",
		"password":  "secret1",
		"firstName": "Tom",
		"lastName":  "Teller",
	}, true)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockUsers.AssertNotCalled(suite.T(), "CreateUser", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *PortalHandlerTestSuite) TestSetUserActive_RequiresFlag() {
	w := suite.do(http.MethodPatch, "/api/v1/users/5/status", map[string]any{}, true)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockUsers.AssertNotCalled(suite.T(), "SetActive", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *PortalHandlerTestSuite) TestSetUserActive_Disable() {
	suite.mockUsers.On("SetActive", mock.Anything, suite.session, int64(5), false).
		Return(&domain.User{ID: 5, Username: "bob", IsActive: false}, nil).Once()

	w := suite.do(http.MethodPatch, "/api/v1/users/5/status", map[string]any{"active": false}, true)

	suite.Equal(http.StatusOK, w.Code)
	suite.Equal(false, suite.decode(w)["isActive"])
	suite.mockUsers.AssertExpectations(suite.T())
}

func (suite *PortalHandlerTestSuite) TestGetUser_NotFound() {
	suite.mockUsers.On("GetUser", mock.Anything, suite.session, int64(404)).
		Return(nil, apperrors.NewAPIError(http.StatusNotFound, "User not found")).Once()

	w := suite.do(http.MethodGet, "/api/v1/users/404", nil, true)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.Equal("User not found", suite.decode(w)["error"])
}
