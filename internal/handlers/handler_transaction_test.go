package handlers_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"

	"github.com/SscSPs/bank_portal/internal/adapters/bankapi"
	"github.com/SscSPs/bank_portal/internal/apperrors"
	"github.com/SscSPs/bank_portal/internal/core/domain"
	"github.com/SscSPs/bank_portal/internal/core/ports/gateways"
	portssvc "github.com/SscSPs/bank_portal/internal/core/ports/services"
	"github.com/SscSPs/bank_portal/internal/core/services"
	"github.com/SscSPs/bank_portal/internal/handlers"
	"github.com/SscSPs/bank_portal/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// upstreamLog records the requests a fake core banking API received.
type upstreamLog struct {
	mu    sync.Mutex
	calls []string
}

func (l *upstreamLog) add(r *http.Request) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.calls = append(l.calls, r.Method+" "+r.URL.Path)
}

func (l *upstreamLog) list() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.calls...)
}

// approvalRouter serves the portal with the real approval service talking to upstream.
func (suite *PortalHandlerTestSuite) approvalRouter(upstream http.HandlerFunc) *gin.Engine {
	srv := httptest.NewServer(upstream)
	suite.T().Cleanup(srv.Close)

	conn, err := bankapi.NewConnector(bankapi.Options{BaseURL: srv.URL})
	suite.Require().NoError(err)

	router := gin.New()
	router.Use(middleware.Analytics(suite.events))
	handlers.RegisterRoutes(router, suite.cfg, &portssvc.ServiceContainer{
		Session:  suite.mockSessions,
		Token:    services.NewTokenService(suite.cfg),
		Approval: services.NewApprovalService(gateways.Narrow[gateways.TransactionsAPI](conn.Factory())),
	})
	return router
}

func (suite *PortalHandlerTestSuite) TestApprove_ReturnsUpstreamPendingList() {
	suite.signInAs("mgr-1", 20, "ROLE_MANAGER")
	log := &upstreamLog{}
	router := suite.approvalRouter(func(w http.ResponseWriter, r *http.Request) {
		log.add(r)
		suite.Equal("Bearer upstream-token-mgr-1", r.Header.Get("Authorization"))
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/api/transactions/42/approve":
			var decision domain.ApprovalDecision
			suite.NoError(json.NewDecoder(r.Body).Decode(&decision))
			suite.Equal(int64(20), decision.ManagerID)
			suite.Equal("looks fine", decision.Comments)
			_, _ = io.WriteString(w, `{"id":42,"transactionType":"TRANSFER","status":"COMPLETED","amount":2500}`)
		case r.Method == http.MethodGet && r.URL.Path == "/api/transactions/pending-approval":
			// 42 is still listed: the portal must show what the server says.
			_, _ = io.WriteString(w, `[{"id":42,"transactionType":"TRANSFER","status":"PENDING","amount":2500},{"id":43,"transactionType":"WITHDRAWAL","status":"PENDING","amount":900}]`)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})
	suite.mockSessions.On("ResolveSession", mock.Anything, "mgr-1").Return(suite.session, nil)

	w := suite.serve(router, http.MethodPost, "/api/v1/transactions/42/approve", map[string]string{"comments": "looks fine"})

	suite.Equal(http.StatusOK, w.Code)
	var pending []domain.Transaction
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &pending))
	suite.Require().Len(pending, 2)
	suite.Equal(int64(42), pending[0].ID)
	suite.Equal(int64(43), pending[1].ID)
	suite.Equal([]string{
		"POST /api/transactions/42/approve",
		"GET /api/transactions/pending-approval",
	}, log.list())

	tracked := suite.events.named("transaction_approved")
	suite.Require().Len(tracked, 1)
	suite.Equal("20", tracked[0].UserID)
	suite.Equal(int64(42), tracked[0].Props["transaction_id"])
}

func (suite *PortalHandlerTestSuite) TestApprove_CustomerMakesNoUpstreamCall() {
	log := &upstreamLog{}
	router := suite.approvalRouter(func(w http.ResponseWriter, r *http.Request) {
		log.add(r)
		_, _ = io.WriteString(w, `[]`)
	})
	suite.mockSessions.On("ResolveSession", mock.Anything, suite.session.ID).Return(suite.session, nil)

	w := suite.serve(router, http.MethodPost, "/api/v1/transactions/42/approve", nil)

	suite.Equal(http.StatusForbidden, w.Code)
	suite.NotContains(suite.decode(w), "redirect")
	suite.Empty(log.list())
}

func (suite *PortalHandlerTestSuite) TestApprove_Upstream401RedirectsToLogin() {
	suite.signInAs("mgr-1", 20, "ROLE_MANAGER")
	router := suite.approvalRouter(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = io.WriteString(w, `{"message":"JWT expired"}`)
	})
	suite.mockSessions.On("ResolveSession", mock.Anything, "mgr-1").Return(suite.session, nil)

	w := suite.serve(router, http.MethodPost, "/api/v1/transactions/42/approve", nil)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.Equal("/login", suite.decode(w)["redirect"])
}

func (suite *PortalHandlerTestSuite) TestReject_RequiresReason() {
	suite.signInAs("mgr-1", 20, "ROLE_MANAGER")

	w := suite.do(http.MethodPost, "/api/v1/transactions/42/reject", map[string]string{"comments": "no"}, true)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockApprovals.AssertNotCalled(suite.T(), "Reject", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *PortalHandlerTestSuite) TestReject_ReturnsPendingList() {
	suite.signInAs("mgr-1", 20, "ROLE_MANAGER")
	remaining := []domain.Transaction{{ID: 43, TransactionType: "WITHDRAWAL", Status: "PENDING", Amount: decimal.NewFromInt(900)}}
	suite.mockApprovals.On("Reject", mock.Anything, mock.Anything, int64(42), "Suspicious", "call the customer").
		Return(remaining, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/transactions/42/reject",
		map[string]string{"reason": "Suspicious", "comments": "call the customer"}, true)

	suite.Equal(http.StatusOK, w.Code)
	var got []domain.Transaction
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &got))
	suite.Len(got, 1)
	suite.Len(suite.events.named("transaction_rejected"), 1)
	suite.mockApprovals.AssertExpectations(suite.T())
}

func (suite *PortalHandlerTestSuite) TestCancel_WithoutBody() {
	suite.mockApprovals.On("Cancel", mock.Anything, suite.session, int64(5), "").
		Return([]domain.Transaction{}, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/transactions/5/cancel", nil, true)

	suite.Equal(http.StatusOK, w.Code)
	suite.mockApprovals.AssertExpectations(suite.T())
}

func (suite *PortalHandlerTestSuite) TestCancel_ConflictIsInline() {
	suite.mockApprovals.On("Cancel", mock.Anything, suite.session, int64(5), "changed my mind").
		Return(nil, apperrors.NewAPIError(http.StatusConflict, "Transaction already processed")).Once()

	w := suite.do(http.MethodPost, "/api/v1/transactions/5/cancel", map[string]string{"reason": "changed my mind"}, true)

	suite.Equal(http.StatusConflict, w.Code)
	suite.Equal("Transaction already processed", suite.decode(w)["error"])
}

func (suite *PortalHandlerTestSuite) TestProcessPending_ReturnsList() {
	suite.signInAs("mgr-1", 20, "ROLE_MANAGER")
	suite.mockApprovals.On("ProcessAll", mock.Anything, mock.Anything).Return([]domain.Transaction{}, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/transactions/process-pending", nil, true)

	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`[]`, w.Body.String())
}
