package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	portssvc "github.com/SscSPs/bank_portal/internal/core/ports/services"
	"github.com/SscSPs/bank_portal/internal/dto"
	"github.com/SscSPs/bank_portal/internal/middleware"
	"github.com/gin-gonic/gin"
)

// accountHandler handles HTTP requests related to accounts.
type accountHandler struct {
	accountService portssvc.AccountSvcFacade
	historyService portssvc.TransactionHistorySvc
}

// newAccountHandler creates a new accountHandler.
func newAccountHandler(as portssvc.AccountSvcFacade, hs portssvc.TransactionHistorySvc) *accountHandler {
	return &accountHandler{
		accountService: as,
		historyService: hs,
	}
}

// registerAccountRoutes registers routes related to accounts.
func registerAccountRoutes(rg *gin.RouterGroup, accountService portssvc.AccountSvcFacade, historyService portssvc.TransactionHistorySvc) {
	h := newAccountHandler(accountService, historyService)

	accounts := rg.Group("/accounts")
	{
		accounts.GET("", h.listAccounts)
		accounts.POST("", h.createAccount)
		accounts.POST("/open", h.openAccount)
		accounts.GET("/mine", h.listMyAccounts)
		accounts.GET("/total-balance", h.getTotalBalance)
		accounts.GET("/exists/:accountNumber", h.accountExists)
		accounts.GET("/summary/:accountNumber", h.getAccountSummary)
		accounts.GET("/user/:userId", h.listUserAccounts)
		accounts.GET("/user/:userId/summary", h.getUserSummary)
		accounts.GET("/:id", h.getAccount)
		accounts.GET("/:id/balance", h.getAccountBalance)
		accounts.GET("/:id/transactions", h.listAccountTransactions)
		accounts.PUT("/:id", h.updateAccount)
		accounts.PATCH("/:id/status", h.setAccountStatus)
		accounts.DELETE("/:id", h.closeAccount)
	}
}

// listAccounts godoc
// @Summary List all accounts
// @Description Lists every account. Staff only.
// @Tags accounts
// @Produce  json
// @Success 200 {array} domain.Account
// @Failure 401 {object} SessionExpiredResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/v1/accounts [get]
func (h *accountHandler) listAccounts(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}
	accounts, err := h.accountService.ListAll(c.Request.Context(), sess)
	if err != nil {
		respondError(c, err, "Failed to list accounts")
		return
	}
	c.JSON(http.StatusOK, accounts)
}

// listMyAccounts godoc
// @Summary List my accounts
// @Description Lists the accounts of the signed-in user
// @Tags accounts
// @Produce  json
// @Success 200 {array} domain.Account
// @Failure 401 {object} SessionExpiredResponse
// @Security BearerAuth
// @Router /api/v1/accounts/mine [get]
func (h *accountHandler) listMyAccounts(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}
	accounts, err := h.accountService.ListMine(c.Request.Context(), sess)
	if err != nil {
		respondError(c, err, "Failed to list accounts")
		return
	}
	c.JSON(http.StatusOK, accounts)
}

// listUserAccounts godoc
// @Summary List a user's accounts
// @Tags accounts
// @Produce  json
// @Param   userId path int true "User ID"
// @Success 200 {array} domain.Account
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/v1/accounts/user/{userId} [get]
func (h *accountHandler) listUserAccounts(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}
	userID, ok := int64Param(c, "userId")
	if !ok {
		return
	}
	accounts, err := h.accountService.ListForUser(c.Request.Context(), sess, userID)
	if err != nil {
		respondError(c, err, "Failed to list accounts")
		return
	}
	c.JSON(http.StatusOK, accounts)
}

// getUserSummary godoc
// @Summary Customer summary
// @Description Profile and account overview of a user, read through the banking facade
// @Tags accounts
// @Produce  json
// @Param   userId path int true "User ID"
// @Success 200 {object} domain.UserSummary
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/v1/accounts/user/{userId}/summary [get]
func (h *accountHandler) getUserSummary(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}
	userID, ok := int64Param(c, "userId")
	if !ok {
		return
	}
	summary, err := h.accountService.UserSummary(c.Request.Context(), sess, userID)
	if err != nil {
		respondError(c, err, "Failed to load customer summary")
		return
	}
	c.JSON(http.StatusOK, summary)
}

// getTotalBalance godoc
// @Summary Total balance
// @Description Aggregate balance of the signed-in user's accounts
// @Tags accounts
// @Produce  json
// @Success 200 {object} domain.TotalBalance
// @Security BearerAuth
// @Router /api/v1/accounts/total-balance [get]
func (h *accountHandler) getTotalBalance(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}
	total, err := h.accountService.TotalBalance(c.Request.Context(), sess)
	if err != nil {
		respondError(c, err, "Failed to load total balance")
		return
	}
	c.JSON(http.StatusOK, total)
}

// accountExists godoc
// @Summary Check an account number
// @Tags accounts
// @Produce  json
// @Param   accountNumber path string true "Account number"
// @Success 200 {object} dto.AccountExistsResponse
// @Security BearerAuth
// @Router /api/v1/accounts/exists/{accountNumber} [get]
func (h *accountHandler) accountExists(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}
	number := strings.TrimSpace(c.Param("accountNumber"))
	exists, err := h.accountService.Exists(c.Request.Context(), sess, number)
	if err != nil {
		respondError(c, err, "Failed to look up account")
		return
	}
	c.JSON(http.StatusOK, dto.AccountExistsResponse{AccountNumber: number, Exists: exists})
}

// getAccountSummary godoc
// @Summary Account summary
// @Description Facade view of one account by number
// @Tags accounts
// @Produce  json
// @Param   accountNumber path string true "Account number"
// @Success 200 {object} domain.AccountSummary
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/v1/accounts/summary/{accountNumber} [get]
func (h *accountHandler) getAccountSummary(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}
	summary, err := h.accountService.AccountSummary(c.Request.Context(), sess, c.Param("accountNumber"))
	if err != nil {
		respondError(c, err, "Failed to load account summary")
		return
	}
	c.JSON(http.StatusOK, summary)
}

// getAccount godoc
// @Summary Get an account by ID
// @Description Retrieves details for a specific account by its ID
// @Tags accounts
// @Produce  json
// @Param   id path int true "Account ID"
// @Success 200 {object} domain.Account
// @Failure 401 {object} SessionExpiredResponse
// @Failure 404 {object} ErrorResponse "Account not found"
// @Security BearerAuth
// @Router /api/v1/accounts/{id} [get]
func (h *accountHandler) getAccount(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}
	accountID, ok := int64Param(c, "id")
	if !ok {
		return
	}
	account, err := h.accountService.GetAccount(c.Request.Context(), sess, accountID)
	if err != nil {
		respondError(c, err, "Failed to retrieve account")
		return
	}
	c.JSON(http.StatusOK, account)
}

// getAccountBalance godoc
// @Summary Account balance
// @Tags accounts
// @Produce  json
// @Param   id path int true "Account ID"
// @Success 200 {object} domain.Balance
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/v1/accounts/{id}/balance [get]
func (h *accountHandler) getAccountBalance(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}
	accountID, ok := int64Param(c, "id")
	if !ok {
		return
	}
	balance, err := h.accountService.GetBalance(c.Request.Context(), sess, accountID)
	if err != nil {
		respondError(c, err, "Failed to retrieve balance")
		return
	}
	c.JSON(http.StatusOK, balance)
}

// listAccountTransactions godoc
// @Summary Account transactions
// @Tags accounts
// @Produce  json
// @Param   id path int true "Account ID"
// @Success 200 {array} domain.Transaction
// @Security BearerAuth
// @Router /api/v1/accounts/{id}/transactions [get]
func (h *accountHandler) listAccountTransactions(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}
	accountID, ok := int64Param(c, "id")
	if !ok {
		return
	}
	txns, err := h.historyService.ForAccount(c.Request.Context(), sess, accountID)
	if err != nil {
		respondError(c, err, "Failed to list transactions")
		return
	}
	c.JSON(http.StatusOK, txns)
}

// createAccount godoc
// @Summary Create a new account
// @Description Opens an account for a customer. Tellers, managers and admins only.
// @Tags accounts
// @Accept  json
// @Produce  json
// @Param   account body dto.CreateAccountRequest true "Account details"
// @Success 201 {object} domain.Account
// @Failure 400 {object} ErrorResponse "Invalid input format or validation error"
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/v1/accounts [post]
func (h *accountHandler) createAccount(c *gin.Context) {
	var req dto.CreateAccountRequest
	if !bindJSON(c, &req, "CreateAccount") {
		return
	}
	sess, ok := currentSession(c)
	if !ok {
		return
	}

	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	logger.Info("Received request to create account", slog.Int64("owner_id", req.UserID), slog.String("account_type", string(req.AccountType)))

	account, err := h.accountService.CreateAccount(c.Request.Context(), sess, req.ToDomain())
	if err != nil {
		respondError(c, err, "Failed to create account")
		return
	}
	c.JSON(http.StatusCreated, account)
}

// openAccount godoc
// @Summary Open an account through the banking facade
// @Tags accounts
// @Accept  json
// @Produce  json
// @Param   account body dto.CreateAccountRequest true "Account details"
// @Success 201 {object} domain.AccountOpening
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/v1/accounts/open [post]
func (h *accountHandler) openAccount(c *gin.Context) {
	var req dto.CreateAccountRequest
	if !bindJSON(c, &req, "OpenAccount") {
		return
	}
	sess, ok := currentSession(c)
	if !ok {
		return
	}
	opening, err := h.accountService.OpenAccount(c.Request.Context(), sess, req.ToDomain())
	if err != nil {
		respondError(c, err, "Failed to open account")
		return
	}
	c.JSON(http.StatusCreated, opening)
}

// updateAccount godoc
// @Summary Update an account
// @Description Changes rates and limits. Returns the re-read account.
// @Tags accounts
// @Accept  json
// @Produce  json
// @Param   id path int true "Account ID"
// @Param   account body dto.UpdateAccountRequest true "Account update"
// @Success 200 {object} domain.Account
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/v1/accounts/{id} [put]
func (h *accountHandler) updateAccount(c *gin.Context) {
	accountID, ok := int64Param(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateAccountRequest
	if !bindJSON(c, &req, "UpdateAccount") {
		return
	}
	sess, ok := currentSession(c)
	if !ok {
		return
	}
	account, err := h.accountService.UpdateAccount(c.Request.Context(), sess, accountID, req.ToDomain())
	if err != nil {
		respondError(c, err, "Failed to update account")
		return
	}
	c.JSON(http.StatusOK, account)
}

// setAccountStatus godoc
// @Summary Change account status
// @Description Freezes, suspends, reactivates or closes an account. A closed account cannot change again.
// @Tags accounts
// @Accept  json
// @Produce  json
// @Param   id path int true "Account ID"
// @Param   status body dto.SetStatusRequest true "New status"
// @Success 200 {object} domain.Account
// @Failure 403 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Account is closed"
// @Security BearerAuth
// @Router /api/v1/accounts/{id}/status [patch]
func (h *accountHandler) setAccountStatus(c *gin.Context) {
	accountID, ok := int64Param(c, "id")
	if !ok {
		return
	}
	var req dto.SetStatusRequest
	if !bindJSON(c, &req, "SetAccountStatus") {
		return
	}
	sess, ok := currentSession(c)
	if !ok {
		return
	}
	account, err := h.accountService.SetStatus(c.Request.Context(), sess, accountID, req.Status)
	if err != nil {
		respondError(c, err, "Failed to change account status")
		return
	}
	c.JSON(http.StatusOK, account)
}

// closeAccount godoc
// @Summary Close an account
// @Tags accounts
// @Param   id path int true "Account ID"
// @Success 204 "No Content"
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/v1/accounts/{id} [delete]
func (h *accountHandler) closeAccount(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}
	accountID, ok := int64Param(c, "id")
	if !ok {
		return
	}
	if err := h.accountService.CloseAccount(c.Request.Context(), sess, accountID); err != nil {
		respondError(c, err, "Failed to close account")
		return
	}
	c.Status(http.StatusNoContent)
}
