package handlers_test

import (
	"encoding/json"
	"net/http"

	"github.com/SscSPs/bank_portal/internal/core/domain"
	"github.com/stretchr/testify/mock"
)

func (suite *PortalHandlerTestSuite) TestMarkNotificationRead_ReturnsInbox() {
	inbox := []domain.Notification{{ID: 1, Title: "Deposit", IsRead: true}, {ID: 2, Title: "Transfer", IsRead: false}}
	suite.mockInbox.On("MarkRead", mock.Anything, suite.session, int64(1)).Return(inbox, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/notifications/1/read", nil, true)

	suite.Equal(http.StatusOK, w.Code)
	var got []domain.Notification
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &got))
	suite.Len(got, 2)
	suite.True(got[0].IsRead)
}

func (suite *PortalHandlerTestSuite) TestUnreadCount() {
	suite.mockInbox.On("UnreadCount", mock.Anything, suite.session).Return(3, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/notifications/unread/count", nil, true)

	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`{"count":3}`, w.Body.String())
}

func (suite *PortalHandlerTestSuite) TestDeleteNotification_InvalidID() {
	w := suite.do(http.MethodDelete, "/api/v1/notifications/x", nil, true)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockInbox.AssertNotCalled(suite.T(), "Delete", mock.Anything, mock.Anything, mock.Anything)
}
