package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/bank_portal/internal/core/ports/services"
	"github.com/SscSPs/bank_portal/internal/dto"
	"github.com/SscSPs/bank_portal/internal/middleware"
	"github.com/gin-gonic/gin"
)

// transactionHandler serves transaction history and the approval queue.
type transactionHandler struct {
	history   portssvc.TransactionHistorySvc
	approvals portssvc.ApprovalSvc
}

func registerTransactionRoutes(rg *gin.RouterGroup, history portssvc.TransactionHistorySvc, approvals portssvc.ApprovalSvc) {
	h := &transactionHandler{history: history, approvals: approvals}

	txns := rg.Group("/transactions")
	{
		txns.GET("", h.listTransactions)
		txns.GET("/recent", h.listRecent)
		txns.GET("/pending-approval", h.listPending)
		txns.POST("/process-pending", h.processPending)
		txns.GET("/:id", h.getTransaction)
		txns.POST("/:id/approve", h.approve)
		txns.POST("/:id/reject", h.reject)
		txns.POST("/:id/cancel", h.cancel)
	}
}

// listTransactions godoc
// @Summary List all transactions
// @Description Staff only.
// @Tags transactions
// @Produce json
// @Success 200 {array} domain.Transaction
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/v1/transactions [get]
func (h *transactionHandler) listTransactions(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}
	txns, err := h.history.ListAll(c.Request.Context(), sess)
	if err != nil {
		respondError(c, err, "Failed to list transactions")
		return
	}
	c.JSON(http.StatusOK, txns)
}

// listRecent godoc
// @Summary Recent transactions of the signed-in user
// @Tags transactions
// @Produce json
// @Param limit query int false "Maximum number of transactions (1-100)"
// @Success 200 {array} domain.Transaction
// @Security BearerAuth
// @Router /api/v1/transactions/recent [get]
func (h *transactionHandler) listRecent(c *gin.Context) {
	var params dto.ListTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}
	sess, ok := currentSession(c)
	if !ok {
		return
	}
	txns, err := h.history.Recent(c.Request.Context(), sess, params.Limit)
	if err != nil {
		respondError(c, err, "Failed to list recent transactions")
		return
	}
	c.JSON(http.StatusOK, txns)
}

// listPending godoc
// @Summary Pending approvals
// @Description Transactions awaiting a manager's decision. Managers and admins only.
// @Tags transactions
// @Produce json
// @Success 200 {array} domain.Transaction
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/v1/transactions/pending-approval [get]
func (h *transactionHandler) listPending(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}
	txns, err := h.approvals.ListPending(c.Request.Context(), sess)
	if err != nil {
		respondError(c, err, "Failed to list pending transactions")
		return
	}
	c.JSON(http.StatusOK, txns)
}

// getTransaction godoc
// @Summary Get a transaction
// @Tags transactions
// @Produce json
// @Param id path int true "Transaction ID"
// @Success 200 {object} domain.Transaction
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/v1/transactions/{id} [get]
func (h *transactionHandler) getTransaction(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}
	id, ok := int64Param(c, "id")
	if !ok {
		return
	}
	txn, err := h.approvals.GetTransaction(c.Request.Context(), sess, id)
	if err != nil {
		respondError(c, err, "Failed to retrieve transaction")
		return
	}
	c.JSON(http.StatusOK, txn)
}

// approve godoc
// @Summary Approve a pending transaction
// @Description Returns the re-read pending list.
// @Tags transactions
// @Accept json
// @Produce json
// @Param id path int true "Transaction ID"
// @Param decision body dto.ApproveRequest false "Comments"
// @Success 200 {array} domain.Transaction
// @Failure 403 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/v1/transactions/{id}/approve [post]
func (h *transactionHandler) approve(c *gin.Context) {
	id, ok := int64Param(c, "id")
	if !ok {
		return
	}
	var req dto.ApproveRequest
	if c.Request.ContentLength > 0 && !bindJSON(c, &req, "ApproveTransaction") {
		return
	}
	sess, ok := currentSession(c)
	if !ok {
		return
	}
	pending, err := h.approvals.Approve(c.Request.Context(), sess, id, req.Comments)
	if err != nil {
		respondError(c, err, "Failed to approve transaction")
		return
	}
	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Transaction approved", slog.Int64("transaction_id", id))
	middleware.TrackEvent(c, "transaction_approved", map[string]any{"transaction_id": id})
	c.JSON(http.StatusOK, pending)
}

// reject godoc
// @Summary Reject a pending transaction
// @Description A reason is required. Returns the re-read pending list.
// @Tags transactions
// @Accept json
// @Produce json
// @Param id path int true "Transaction ID"
// @Param decision body dto.RejectRequest true "Reason and comments"
// @Success 200 {array} domain.Transaction
// @Failure 400 {object} ErrorResponse "Missing reason"
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/v1/transactions/{id}/reject [post]
func (h *transactionHandler) reject(c *gin.Context) {
	id, ok := int64Param(c, "id")
	if !ok {
		return
	}
	var req dto.RejectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "A rejection reason is required"})
		return
	}
	sess, ok := currentSession(c)
	if !ok {
		return
	}
	pending, err := h.approvals.Reject(c.Request.Context(), sess, id, req.Reason, req.Comments)
	if err != nil {
		respondError(c, err, "Failed to reject transaction")
		return
	}
	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Transaction rejected", slog.Int64("transaction_id", id))
	middleware.TrackEvent(c, "transaction_rejected", map[string]any{"transaction_id": id})
	c.JSON(http.StatusOK, pending)
}

// cancel godoc
// @Summary Cancel a pending transaction
// @Description Approvers get the pending list back, everyone else their recent transactions.
// @Tags transactions
// @Accept json
// @Produce json
// @Param id path int true "Transaction ID"
// @Param body body dto.CancelRequest false "Reason"
// @Success 200 {array} domain.Transaction
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/v1/transactions/{id}/cancel [post]
func (h *transactionHandler) cancel(c *gin.Context) {
	id, ok := int64Param(c, "id")
	if !ok {
		return
	}
	var req dto.CancelRequest
	if c.Request.ContentLength > 0 && !bindJSON(c, &req, "CancelTransaction") {
		return
	}
	sess, ok := currentSession(c)
	if !ok {
		return
	}
	list, err := h.approvals.Cancel(c.Request.Context(), sess, id, req.Reason)
	if err != nil {
		respondError(c, err, "Failed to cancel transaction")
		return
	}
	c.JSON(http.StatusOK, list)
}

// processPending godoc
// @Summary Process all pending transactions
// @Tags transactions
// @Produce json
// @Success 200 {array} domain.Transaction
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/v1/transactions/process-pending [post]
func (h *transactionHandler) processPending(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}
	pending, err := h.approvals.ProcessAll(c.Request.Context(), sess)
	if err != nil {
		respondError(c, err, "Failed to process pending transactions")
		return
	}
	c.JSON(http.StatusOK, pending)
}
